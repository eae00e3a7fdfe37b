// Package store implements the inventory state core: an in-memory ordered
// stock list mirrored to a persistent backend, the append-only usage
// ledger, the single-slot undo buffer and the bounded notification log.
//
// All mutations apply in memory first and then persist. A persistence
// failure is returned to the caller but never rolls the memory state back:
// the tool favors availability, reconciliation happens through a full
// reload.
package store

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"oktodeck-backend/internal/catalog"
	"oktodeck-backend/internal/models"
)

// maxNotifications bounds the activity log; the oldest entry is dropped
// when a 51st arrives.
const maxNotifications = 50

type undoRecord struct {
	item  models.StockItem
	index int
}

// Store is the authoritative in-memory inventory state. A single mutex
// serializes all mutations, matching the original single-writer model.
type Store struct {
	mu      sync.Mutex
	backend Backend
	pub     Publisher
	log     *zap.SugaredLogger

	items         []models.StockItem
	usage         []models.UsageEntry
	notifications []models.Notification
	customBoxes   []string
	undo          *undoRecord
}

// New loads all collections from the backend. A stock collection that was
// never written (or failed to deserialize) falls back to the built-in seed
// catalog, which is persisted immediately.
func New(backend Backend, pub Publisher, log *zap.SugaredLogger) (*Store, error) {
	s := &Store{backend: backend, pub: pub, log: log}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	items, found, err := s.backend.LoadStock()
	if err != nil {
		return fmt.Errorf("load stock: %w", err)
	}
	if !found {
		items = catalog.Default()
		if err := s.backend.SaveStock(items); err != nil {
			return fmt.Errorf("persist seed catalog: %w", err)
		}
	}

	usage, err := s.backend.LoadUsage()
	if err != nil {
		return fmt.Errorf("load usage: %w", err)
	}
	notifications, err := s.backend.LoadNotifications()
	if err != nil {
		return fmt.Errorf("load notifications: %w", err)
	}
	boxes, err := s.backend.LoadCustomBoxes()
	if err != nil {
		return fmt.Errorf("load custom boxes: %w", err)
	}

	s.items = items
	s.usage = usage
	s.notifications = notifications
	s.customBoxes = boxes
	return nil
}

// Reload replaces the in-memory state wholesale from the backend. Any
// in-flight optimistic update that never reached the backend is lost,
// which is the accepted eventual-consistency window.
func (s *Store) Reload() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.undo = nil
	return s.load()
}

// Items returns a copy of the stock list in store order.
func (s *Store) Items() []models.StockItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.StockItem, len(s.items))
	copy(out, s.items)
	return out
}

// TotalQuantity sums on-hand units across all items.
func (s *Store) TotalQuantity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, it := range s.items {
		total += it.Quantity
	}
	return total
}

// Add inserts a new item immediately after the last existing item of the
// same box, or at the end if the box has none, keeping box groups together
// in the default ordering. An empty (after trim) name is a silent no-op.
// A fresh add invalidates any pending undo.
func (s *Store) Add(name string, quantity int, box string) (models.StockItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.StockItem{}, nil
	}
	if quantity < 0 {
		quantity = 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item := models.StockItem{
		ID:       uuid.NewString(),
		Name:     name,
		Quantity: quantity,
		Box:      box,
	}

	insertAt := len(s.items)
	for i := len(s.items) - 1; i >= 0; i-- {
		if s.items[i].Box == box {
			insertAt = i + 1
			break
		}
	}
	s.items = append(s.items, models.StockItem{})
	copy(s.items[insertAt+1:], s.items[insertAt:])
	s.items[insertAt] = item
	s.renumber()
	s.undo = nil

	s.appendNotification(models.NotificationAdded, name,
		fmt.Sprintf("Added %q to %s", name, box))
	err := s.persistStock()
	s.publish("stock", "added")
	return item, err
}

// ChangeQuantity applies a relative delta, clamped at zero. A strict
// decrease appends exactly one usage entry for the realized difference.
func (s *Store) ChangeQuantity(id string, delta int) (models.StockItem, error) {
	return s.mutateQuantity(id, func(old int) int { return old + delta })
}

// SetQuantity sets an absolute value with the same clamping and
// usage-logging semantics as ChangeQuantity.
func (s *Store) SetQuantity(id string, value int) (models.StockItem, error) {
	return s.mutateQuantity(id, func(int) int { return value })
}

func (s *Store) mutateQuantity(id string, next func(old int) int) (models.StockItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return models.StockItem{}, ErrNotFound
	}

	item := &s.items[idx]
	oldQty := item.Quantity
	newQty := next(oldQty)
	if newQty < 0 {
		newQty = 0
	}
	item.Quantity = newQty

	var usageErr error
	if diff := oldQty - newQty; diff > 0 {
		usageErr = s.recordUsage(item.Name, item.Box, diff)
	}

	err := s.persistStock()
	s.publish("stock", "updated")
	if err == nil {
		err = usageErr
	}
	return *item, err
}

// Remove deletes an item and parks it in the undo buffer together with its
// position, overwriting any previous pending undo. Unknown ids are a
// silent no-op. Deletion logs no usage.
func (s *Store) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil
	}

	item := s.items[idx]
	s.undo = &undoRecord{item: item, index: idx}
	s.items = append(s.items[:idx], s.items[idx+1:]...)
	s.renumber()

	s.appendNotification(models.NotificationDeleted, item.Name,
		fmt.Sprintf("Deleted %q from %s", item.Name, item.Box))
	err := s.persistStock()
	s.publish("stock", "deleted")
	return err
}

// UndoRemove reinserts the buffered item at min(original index, current
// length) and clears the buffer. ok is false when nothing is pending.
func (s *Store) UndoRemove() (item models.StockItem, ok bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.undo == nil {
		return models.StockItem{}, false, nil
	}

	rec := *s.undo
	s.undo = nil
	at := rec.index
	if at > len(s.items) {
		at = len(s.items)
	}
	s.items = append(s.items, models.StockItem{})
	copy(s.items[at+1:], s.items[at:])
	s.items[at] = rec.item
	s.renumber()

	err = s.persistStock()
	s.publish("stock", "restored")
	return rec.item, true, err
}

// Edit renames and/or reboxes in place. Ordering, the undo buffer and the
// notification log are untouched; edits are silent.
func (s *Store) Edit(id, name, box string) (models.StockItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.StockItem{}, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return models.StockItem{}, ErrNotFound
	}

	s.items[idx].Name = name
	if box != "" {
		s.items[idx].Box = box
	}

	err := s.persistStock()
	s.publish("stock", "updated")
	return s.items[idx], err
}

// Reorder replaces the ordering wholesale. Unknown ids are ignored; items
// missing from the sequence keep their relative order at the tail, so a
// stale client cannot drop records.
func (s *Store) Reorder(ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	byID := make(map[string]int, len(s.items))
	for i, it := range s.items {
		byID[it.ID] = i
	}

	ordered := make([]models.StockItem, 0, len(s.items))
	taken := make(map[string]bool, len(ids))
	for _, id := range ids {
		if i, ok := byID[id]; ok && !taken[id] {
			ordered = append(ordered, s.items[i])
			taken[id] = true
		}
	}
	for _, it := range s.items {
		if !taken[it.ID] {
			ordered = append(ordered, it)
		}
	}
	s.items = ordered
	s.renumber()

	err := s.persistStock()
	s.publish("stock", "reordered")
	return err
}

// Boxes returns the fixed enumeration followed by custom boxes.
func (s *Store) Boxes() (all []string, custom []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	custom = make([]string, len(s.customBoxes))
	copy(custom, s.customBoxes)
	all = append(append([]string{}, models.BoxOptions...), custom...)
	return all, custom
}

// AddCustomBox appends a user-defined box name. added is false for empty
// names and duplicates (against both the enumeration and earlier customs).
func (s *Store) AddCustomBox(name string) (added bool, err error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, fixed := models.BoxRank(name); fixed {
		return false, nil
	}
	for _, b := range s.customBoxes {
		if b == name {
			return false, nil
		}
	}
	s.customBoxes = append(s.customBoxes, name)

	err = s.backend.SaveCustomBoxes(s.customBoxes)
	if err != nil {
		s.log.Errorw("persist custom boxes failed", "box", name, zap.Error(err))
		err = fmt.Errorf("save custom boxes: %w", err)
	}
	s.publish("boxes", "added")
	return true, err
}

// Notifications returns the activity log, newest first.
func (s *Store) Notifications() []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Notification, 0, len(s.notifications))
	for i := len(s.notifications) - 1; i >= 0; i-- {
		out = append(out, s.notifications[i])
	}
	return out
}

// ClearNotifications empties the activity log.
func (s *Store) ClearNotifications() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = nil
	err := s.backend.SaveNotifications(nil)
	if err != nil {
		s.log.Errorw("persist notifications failed", zap.Error(err))
		err = fmt.Errorf("save notifications: %w", err)
	}
	s.publish("notifications", "cleared")
	return err
}

// Reset restores the seed catalog and clears the usage ledger and the
// notification log. Custom boxes survive a reset.
func (s *Store) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = catalog.Default()
	s.usage = nil
	s.notifications = nil
	s.undo = nil

	err := s.persistStock()
	if e := s.backend.SaveUsage(nil); e != nil && err == nil {
		err = fmt.Errorf("save usage: %w", e)
	}
	if e := s.backend.SaveNotifications(nil); e != nil && err == nil {
		err = fmt.Errorf("save notifications: %w", e)
	}
	s.publish("stock", "reset")
	return err
}

// callers must hold s.mu.
func (s *Store) indexOf(id string) int {
	for i, it := range s.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

// callers must hold s.mu.
func (s *Store) renumber() {
	for i := range s.items {
		s.items[i].Position = i
	}
}

// callers must hold s.mu.
func (s *Store) persistStock() error {
	if err := s.backend.SaveStock(s.items); err != nil {
		s.log.Errorw("persist stock failed", zap.Error(err))
		return fmt.Errorf("save stock: %w", err)
	}
	return nil
}

// callers must hold s.mu.
func (s *Store) appendNotification(typ models.NotificationType, itemName, message string) {
	s.notifications = append(s.notifications, models.Notification{
		ID:        uuid.NewString(),
		Type:      typ,
		ItemName:  itemName,
		Message:   message,
		Timestamp: time.Now(),
	})
	if len(s.notifications) > maxNotifications {
		s.notifications = s.notifications[len(s.notifications)-maxNotifications:]
	}
	if err := s.backend.SaveNotifications(s.notifications); err != nil {
		s.log.Errorw("persist notifications failed", zap.Error(err))
	}
}

func (s *Store) publish(collection, action string) {
	if s.pub != nil {
		s.pub.Publish(Event{Collection: collection, Action: action})
	}
}
