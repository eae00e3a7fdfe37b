package models

import "time"

type NotificationType string

const (
	NotificationAdded   NotificationType = "added"
	NotificationDeleted NotificationType = "deleted"
	NotificationUpdated NotificationType = "updated"
)

// Notification: a human-readable activity message. The log keeps at most
// the 50 most recent entries; edits are silent and emit nothing.
type Notification struct {
	ID        string           `gorm:"primaryKey;size:36" json:"id"`
	Type      NotificationType `gorm:"size:20;not null" json:"type"`
	ItemName  string           `gorm:"size:200;not null" json:"itemName"`
	Message   string           `gorm:"size:255;not null" json:"message"`
	Timestamp time.Time        `gorm:"not null" json:"timestamp"`
}
