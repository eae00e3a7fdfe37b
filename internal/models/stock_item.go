package models

// StockItem: a single deck-supply product inside a storage box.
// Position is the explicit sort key of the default ordering; the store owns
// it and rewrites it on every order-affecting mutation.
type StockItem struct {
	ID       string `gorm:"primaryKey;size:36" json:"id"`
	Name     string `gorm:"size:200;not null" json:"name"`
	Quantity int    `gorm:"not null" json:"quantity"`
	Box      string `gorm:"size:100;not null;index" json:"box"`
	Position int    `gorm:"not null" json:"-"`
}
