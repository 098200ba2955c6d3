package model

import "time"

// Note is an investment note owned by a single user. Tags form a global
// namespace shared by all users; the join rows go away with the note, the
// tags themselves stay.
type Note struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	StockSymbol *string   `gorm:"size:20" json:"stock_symbol"`
	StockName   *string   `gorm:"size:100" json:"stock_name"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Tags []Tag `gorm:"many2many:note_tags;constraint:OnDelete:CASCADE" json:"tags"`
}

// TableName specifies the table name for GORM.
func (Note) TableName() string {
	return "notes"
}

// Tag labels notes. Tag names are unique across the whole system and tags
// have no owner.
type Tag struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"size:50;not null;uniqueIndex" json:"name"`
	Color     string    `gorm:"size:7;default:'#007bff'" json:"color"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for GORM.
func (Tag) TableName() string {
	return "tags"
}
