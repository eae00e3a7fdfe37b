// Package tasks implements the deck to-do list.
package tasks

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"oktodeck-backend/internal/models"
	"oktodeck-backend/internal/store"
)

type Store struct {
	mu      sync.Mutex
	backend store.Backend
	pub     store.Publisher
	log     *zap.SugaredLogger
	tasks   []models.Task
}

func New(backend store.Backend, pub store.Publisher, log *zap.SugaredLogger) (*Store, error) {
	tasks, err := backend.LoadTasks()
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}
	return &Store{backend: backend, pub: pub, log: log, tasks: tasks}, nil
}

// Stats summarizes completion for the progress bar.
type Stats struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Percent   int `json:"percent"`
}

func (s *Store) Tasks() []models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

func (s *Store) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := Stats{Total: len(s.tasks)}
	for _, t := range s.tasks {
		if t.Completed {
			st.Completed++
		}
	}
	if st.Total > 0 {
		st.Percent = int(float64(st.Completed)/float64(st.Total)*100 + 0.5)
	}
	return st
}

// Add appends a task; a blank text is a silent no-op.
func (s *Store) Add(text string) (models.Task, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.Task{}, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	task := models.Task{ID: uuid.NewString(), Text: text, Position: len(s.tasks)}
	s.tasks = append(s.tasks, task)

	err := s.persist()
	s.publish("added")
	return task, err
}

func (s *Store) Toggle(id string) (models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Completed = !s.tasks[i].Completed
			err := s.persist()
			s.publish("updated")
			return s.tasks[i], err
		}
	}
	return models.Task{}, store.ErrNotFound
}

// Delete is a silent no-op for unknown ids.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, t := range s.tasks {
		if t.ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			for j := range s.tasks {
				s.tasks[j].Position = j
			}
			err := s.persist()
			s.publish("deleted")
			return err
		}
	}
	return nil
}

// Clear empties the list; used by the app reset.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = nil
	err := s.persist()
	s.publish("cleared")
	return err
}

// callers must hold s.mu.
func (s *Store) persist() error {
	if err := s.backend.SaveTasks(s.tasks); err != nil {
		s.log.Errorw("persist tasks failed", zap.Error(err))
		return fmt.Errorf("save tasks: %w", err)
	}
	return nil
}

func (s *Store) publish(action string) {
	if s.pub != nil {
		s.pub.Publish(store.Event{Collection: "tasks", Action: action})
	}
}
