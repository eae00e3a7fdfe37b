package store

import (
	"encoding/json"
	"os"
	"path/filepath"

	"oktodeck-backend/internal/models"
)

// File names keep the original device-storage key names, one JSON array
// per collection. A file that is missing or fails to parse resets its
// collection to the default.
const (
	stockFile         = "oktoDeckStock.json"
	usageFile         = "oktoDeckUsage.json"
	notificationsFile = "oktoDeckNotifications.json"
	boxesFile         = "oktoDeckBoxes.json"
	deckOrderFile     = "yachtCountDeckOrder.json"
	tasksFile         = "oktoDeckTasks.json"
)

// FileBackend is the local fallback store for running without Postgres.
type FileBackend struct {
	dir string
}

func NewFileBackend(dir string) *FileBackend {
	return &FileBackend{dir: dir}
}

func (b *FileBackend) LoadStock() ([]models.StockItem, bool, error) {
	items, ok := readArray[models.StockItem](b.path(stockFile))
	return items, ok, nil
}

func (b *FileBackend) SaveStock(items []models.StockItem) error {
	return b.writeArray(stockFile, items)
}

func (b *FileBackend) LoadUsage() ([]models.UsageEntry, error) {
	entries, _ := readArray[models.UsageEntry](b.path(usageFile))
	return entries, nil
}

func (b *FileBackend) AppendUsage(e models.UsageEntry) error {
	entries, _ := readArray[models.UsageEntry](b.path(usageFile))
	return b.writeArray(usageFile, append(entries, e))
}

func (b *FileBackend) SaveUsage(entries []models.UsageEntry) error {
	return b.writeArray(usageFile, entries)
}

func (b *FileBackend) LoadNotifications() ([]models.Notification, error) {
	ns, _ := readArray[models.Notification](b.path(notificationsFile))
	return ns, nil
}

func (b *FileBackend) SaveNotifications(ns []models.Notification) error {
	return b.writeArray(notificationsFile, ns)
}

func (b *FileBackend) LoadCustomBoxes() ([]string, error) {
	names, _ := readArray[string](b.path(boxesFile))
	return names, nil
}

func (b *FileBackend) SaveCustomBoxes(names []string) error {
	return b.writeArray(boxesFile, names)
}

func (b *FileBackend) LoadDeckOrder() ([]models.DeckOrderItem, error) {
	items, _ := readArray[models.DeckOrderItem](b.path(deckOrderFile))
	return items, nil
}

func (b *FileBackend) SaveDeckOrder(items []models.DeckOrderItem) error {
	return b.writeArray(deckOrderFile, items)
}

func (b *FileBackend) LoadTasks() ([]models.Task, error) {
	tasks, _ := readArray[models.Task](b.path(tasksFile))
	return tasks, nil
}

func (b *FileBackend) SaveTasks(tasks []models.Task) error {
	return b.writeArray(tasksFile, tasks)
}

func (b *FileBackend) path(name string) string {
	return filepath.Join(b.dir, name)
}

// readArray returns ok=false for a missing or corrupt file, which the
// caller treats as "collection never written".
func readArray[T any](path string) ([]T, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	var out []T
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, false
	}
	return out, true
}

func (b *FileBackend) writeArray(name string, v any) error {
	if err := os.MkdirAll(b.dir, 0o755); err != nil {
		return err
	}
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return os.WriteFile(b.path(name), data, 0o644)
}
