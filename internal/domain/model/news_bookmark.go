package model

import "time"

// NewsBookmark is a saved news article, owned by a user.
type NewsBookmark struct {
	ID          uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      uint       `gorm:"not null;index" json:"user_id"`
	Title       string     `gorm:"size:300;not null" json:"title"`
	URL         string     `gorm:"type:text;not null" json:"url"`
	Source      string     `gorm:"size:100" json:"source"`
	StockSymbol string     `gorm:"size:20" json:"stock_symbol"`
	StockName   string     `gorm:"size:100" json:"stock_name"`
	Summary     string     `gorm:"type:text" json:"summary"`
	PublishedAt *time.Time `json:"published_at"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for GORM.
func (NewsBookmark) TableName() string {
	return "news_bookmarks"
}
