package model

import "time"

// User represents a registered account. Owned rows (notes, bookmarks,
// watchlist entries) are removed by the database when the user is deleted.
type User struct {
	ID           uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string     `gorm:"size:50;not null;uniqueIndex" json:"username"`
	Email        string     `gorm:"size:100;not null;uniqueIndex" json:"email"`
	PasswordHash string     `gorm:"size:255;not null" json:"-"`
	IsAdmin      bool       `gorm:"default:false" json:"is_admin"`
	IsActive     bool       `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	LastLoginAt  *time.Time `json:"last_login,omitempty"`

	Notes         []Note           `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	NewsBookmarks []NewsBookmark   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Watchlist     []WatchlistEntry `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name for GORM.
func (User) TableName() string {
	return "users"
}
