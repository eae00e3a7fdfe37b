package models

import "time"

// DeckOrderItem: one line of the reorder list. Quantity is free text
// ("10 packs"), never parsed or summed — deliberately a different type
// than StockItem.Quantity.
type DeckOrderItem struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	ProductName string    `gorm:"size:200;not null" json:"productName"`
	Quantity    string    `gorm:"size:50;not null" json:"quantity"`
	Colour      string    `gorm:"size:100" json:"colour"`
	Size        string    `gorm:"size:100" json:"size"`
	Link        string    `gorm:"size:500" json:"link"`
	Position    int       `gorm:"not null" json:"-"`
	CreatedAt   time.Time `json:"createdAt"`
}
