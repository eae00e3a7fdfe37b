package store

import (
	"errors"

	"oktodeck-backend/internal/models"
)

// ErrNotFound is returned by mutations that target an id no longer present.
// Remove and UndoRemove deliberately stay idempotent no-ops instead.
var ErrNotFound = errors.New("record not found")

// Backend is the persistent mirror of the in-memory collections. Loads are
// full re-selects; stock saves are wholesale so the explicit positions stay
// authoritative. found is false when a collection has never been written
// (or failed to deserialize), which tells the caller to fall back to its
// default — the seed catalog for stock, empty for everything else.
type Backend interface {
	LoadStock() (items []models.StockItem, found bool, err error)
	SaveStock([]models.StockItem) error

	LoadUsage() ([]models.UsageEntry, error)
	AppendUsage(models.UsageEntry) error
	SaveUsage([]models.UsageEntry) error

	LoadNotifications() ([]models.Notification, error)
	SaveNotifications([]models.Notification) error

	LoadCustomBoxes() ([]string, error)
	SaveCustomBoxes([]string) error

	LoadDeckOrder() ([]models.DeckOrderItem, error)
	SaveDeckOrder([]models.DeckOrderItem) error

	LoadTasks() ([]models.Task, error)
	SaveTasks([]models.Task) error
}

// Event describes a committed mutation. Subscribers react by re-fetching
// the named collection; no payload is carried.
type Event struct {
	Collection string `json:"collection"`
	Action     string `json:"action"`
}

// Publisher receives change events. Publish must not block.
type Publisher interface {
	Publish(Event)
}
