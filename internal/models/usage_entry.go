package models

import "time"

// UsageEntry: one recorded consumption event. Written only when a stock
// quantity strictly decreases; deleting an item does not log usage.
// Append-only, never edited.
type UsageEntry struct {
	ID       uint      `gorm:"primaryKey" json:"-"`
	Date     time.Time `gorm:"index;not null" json:"date"`
	ItemName string    `gorm:"size:200;not null" json:"itemName"`
	Box      string    `gorm:"size:100;not null" json:"box"`
	Quantity int       `gorm:"not null" json:"quantity"`
}

// MonthlyUsageRow: per-(item, box) summed usage within one calendar month.
type MonthlyUsageRow struct {
	ItemName string `json:"itemName"`
	Box      string `json:"box"`
	Quantity int    `json:"quantity"`
}
