package model

import "time"

// Well-known counter names.
const (
	StatTotalUsers = "total_users"
	StatTotalNotes = "total_notes"
	StatTotalNews  = "total_news"
)

// SystemStat is a named integer counter. Counters are bumped incrementally on
// writes and overwritten with live counts by the admin stats fetch.
type SystemStat struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	StatName  string    `gorm:"size:50;not null;uniqueIndex" json:"stat_name"`
	StatValue int64     `gorm:"default:0" json:"stat_value"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (SystemStat) TableName() string {
	return "system_stats"
}
