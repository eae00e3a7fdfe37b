package models

// CustomBox: a user-defined addition to the fixed box enumeration.
// Append-only; no rename or delete is exposed.
type CustomBox struct {
	Name string `gorm:"primaryKey;size:100" json:"name"`
}
