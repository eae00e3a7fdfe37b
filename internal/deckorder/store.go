// Package deckorder implements the reorder list. It is deliberately
// independent of the stock store: no undo, no usage linkage, free-text
// quantities, and its own persistence.
package deckorder

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"oktodeck-backend/internal/models"
	"oktodeck-backend/internal/store"
)

// Fields is the caller-supplied part of a deck order line. Update uses
// nil pointers for "leave unchanged".
type Fields struct {
	ProductName *string `json:"productName"`
	Quantity    *string `json:"quantity"`
	Colour      *string `json:"colour"`
	Size        *string `json:"size"`
	Link        *string `json:"link"`
}

type Store struct {
	mu      sync.Mutex
	backend store.Backend
	pub     store.Publisher
	log     *zap.SugaredLogger
	items   []models.DeckOrderItem
}

func New(backend store.Backend, pub store.Publisher, log *zap.SugaredLogger) (*Store, error) {
	items, err := backend.LoadDeckOrder()
	if err != nil {
		return nil, fmt.Errorf("load deck order: %w", err)
	}
	return &Store{backend: backend, pub: pub, log: log, items: items}, nil
}

// Items returns the list in insertion order.
func (s *Store) Items() []models.DeckOrderItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.DeckOrderItem, len(s.items))
	copy(out, s.items)
	return out
}

// Add appends a new line. The product name may be seeded from a stock
// item; a blank name is a silent no-op. A blank quantity defaults to the
// literal text "1".
func (s *Store) Add(f Fields) (models.DeckOrderItem, error) {
	name := ""
	if f.ProductName != nil {
		name = strings.TrimSpace(*f.ProductName)
	}
	if name == "" {
		return models.DeckOrderItem{}, nil
	}

	item := models.DeckOrderItem{
		ID:          uuid.NewString(),
		ProductName: name,
		Quantity:    "1",
		CreatedAt:   time.Now(),
	}
	if f.Quantity != nil && strings.TrimSpace(*f.Quantity) != "" {
		item.Quantity = *f.Quantity
	}
	if f.Colour != nil {
		item.Colour = *f.Colour
	}
	if f.Size != nil {
		item.Size = *f.Size
	}
	if f.Link != nil {
		item.Link = *f.Link
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	item.Position = len(s.items)
	s.items = append(s.items, item)

	err := s.persist()
	s.publish("added")
	return item, err
}

// Update patches the named fields of one line.
func (s *Store) Update(id string, f Fields) (models.DeckOrderItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, it := range s.items {
		if it.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.DeckOrderItem{}, store.ErrNotFound
	}

	item := &s.items[idx]
	if f.ProductName != nil && strings.TrimSpace(*f.ProductName) != "" {
		item.ProductName = strings.TrimSpace(*f.ProductName)
	}
	if f.Quantity != nil {
		item.Quantity = *f.Quantity
	}
	if f.Colour != nil {
		item.Colour = *f.Colour
	}
	if f.Size != nil {
		item.Size = *f.Size
	}
	if f.Link != nil {
		item.Link = *f.Link
	}

	err := s.persist()
	s.publish("updated")
	return *item, err
}

// Delete is immediate and permanent; there is no undo here. Unknown ids
// are a silent no-op.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, it := range s.items {
		if it.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			for j := range s.items {
				s.items[j].Position = j
			}
			err := s.persist()
			s.publish("deleted")
			return err
		}
	}
	return nil
}

// Clear empties the whole list. Callers gate this behind an explicit
// confirmation.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	err := s.persist()
	s.publish("cleared")
	return err
}

// callers must hold s.mu.
func (s *Store) persist() error {
	if err := s.backend.SaveDeckOrder(s.items); err != nil {
		s.log.Errorw("persist deck order failed", zap.Error(err))
		return fmt.Errorf("save deck order: %w", err)
	}
	return nil
}

func (s *Store) publish(action string) {
	if s.pub != nil {
		s.pub.Publish(store.Event{Collection: "deck_orders", Action: action})
	}
}
