package models

// MetaEntry: a small key/value row for backend bookkeeping, currently only
// the stock written marker. Lets an emptied stock table stay empty across
// restarts instead of reading as "never written".
type MetaEntry struct {
	Name  string `gorm:"primaryKey;size:100"`
	Value string `gorm:"size:200;not null"`
}
