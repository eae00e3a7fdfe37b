package models

// Task: a deck to-do entry, independent of stock tracking.
type Task struct {
	ID        string `gorm:"primaryKey;size:36" json:"id"`
	Text      string `gorm:"size:500;not null" json:"text"`
	Completed bool   `gorm:"not null" json:"completed"`
	Position  int    `gorm:"not null" json:"-"`
}
