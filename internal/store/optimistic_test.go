package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"oktodeck-backend/internal/models"
)

// flakyBackend simulates a backing store that goes away after startup,
// the disk-full / connection-lost case.
type flakyBackend struct {
	*FileBackend
	failing bool
}

var errBackendDown = errors.New("backend down")

func (b *flakyBackend) SaveStock(items []models.StockItem) error {
	if b.failing {
		return errBackendDown
	}
	return b.FileBackend.SaveStock(items)
}

func (b *flakyBackend) AppendUsage(e models.UsageEntry) error {
	if b.failing {
		return errBackendDown
	}
	return b.FileBackend.AppendUsage(e)
}

func TestMutationsSurvivePersistenceFailure(t *testing.T) {
	fb := NewFileBackend(t.TempDir())
	require.NoError(t, fb.SaveStock([]models.StockItem{}))
	flaky := &flakyBackend{FileBackend: fb}

	s, err := New(flaky, nil, zap.NewNop().Sugar())
	require.NoError(t, err)

	item, err := s.Add("Tape", 5, "BOX BS1")
	require.NoError(t, err)

	flaky.failing = true

	// The error is surfaced, but the in-memory mutation stands.
	got, err := s.ChangeQuantity(item.ID, -2)
	require.Error(t, err)
	require.Equal(t, 3, got.Quantity)
	require.Equal(t, 3, s.Items()[0].Quantity)
	require.Len(t, s.UsageEntries(), 1)

	require.Error(t, s.Remove(item.ID))
	require.Empty(t, s.Items())

	// Undo still works against memory.
	restored, ok, err := s.UndoRemove()
	require.Error(t, err)
	require.True(t, ok)
	require.Equal(t, item.ID, restored.ID)

	// Once the backend is back the next write persists the full state.
	flaky.failing = false
	_, err = s.ChangeQuantity(item.ID, -1)
	require.NoError(t, err)

	persisted, found, err := fb.LoadStock()
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, persisted, 1)
	require.Equal(t, 2, persisted[0].Quantity)
}
