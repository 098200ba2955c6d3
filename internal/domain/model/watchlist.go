package model

import "time"

// Stock type constants
const (
	StockTypeListed   = "listed"
	StockTypeUnlisted = "unlisted"
	StockTypeIPO      = "ipo"
	StockTypeUnicorn  = "unicorn"
)

// WatchlistEntry is a stock a user follows. A user may watch the same symbol
// on different markets, but not twice on the same market.
type WatchlistEntry struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      uint      `gorm:"not null;uniqueIndex:idx_watchlist_owner_symbol_market" json:"user_id"`
	StockSymbol string    `gorm:"size:20;not null;uniqueIndex:idx_watchlist_owner_symbol_market" json:"stock_symbol"`
	StockName   string    `gorm:"size:100;not null" json:"stock_name"`
	Market      string    `gorm:"size:10;not null;uniqueIndex:idx_watchlist_owner_symbol_market" json:"market"`
	StockType   string    `gorm:"size:20;default:'listed'" json:"stock_type"`
	Notes       string    `gorm:"type:text" json:"notes"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for GORM.
func (WatchlistEntry) TableName() string {
	return "watchlist_entries"
}
