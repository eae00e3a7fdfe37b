package tasks

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"oktodeck-backend/internal/store"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(store.NewFileBackend(t.TempDir()), nil, zap.NewNop().Sugar())
	require.NoError(t, err)
	return s
}

func TestAddAndToggle(t *testing.T) {
	s := newTestStore(t)

	task, err := s.Add("Polish rails")
	require.NoError(t, err)
	require.NotEmpty(t, task.ID)
	require.False(t, task.Completed)

	task, err = s.Toggle(task.ID)
	require.NoError(t, err)
	require.True(t, task.Completed)

	task, err = s.Toggle(task.ID)
	require.NoError(t, err)
	require.False(t, task.Completed)

	_, err = s.Toggle("ghost")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestAddBlankTextIsSilentNoOp(t *testing.T) {
	s := newTestStore(t)
	task, err := s.Add("   ")
	require.NoError(t, err)
	require.Empty(t, task.ID)
	require.Empty(t, s.Tasks())
}

func TestStatsRoundsPercent(t *testing.T) {
	s := newTestStore(t)
	require.Equal(t, Stats{}, s.Stats())

	ids := make([]string, 0, 3)
	for _, text := range []string{"A", "B", "C"} {
		task, err := s.Add(text)
		require.NoError(t, err)
		ids = append(ids, task.ID)
	}

	_, err := s.Toggle(ids[0])
	require.NoError(t, err)
	// 1 of 3 complete rounds to 33.
	require.Equal(t, Stats{Total: 3, Completed: 1, Percent: 33}, s.Stats())

	_, err = s.Toggle(ids[1])
	require.NoError(t, err)
	// 2 of 3 rounds to 67.
	require.Equal(t, Stats{Total: 3, Completed: 2, Percent: 67}, s.Stats())
}

func TestDeleteAndClear(t *testing.T) {
	s := newTestStore(t)
	task, err := s.Add("A")
	require.NoError(t, err)
	_, err = s.Add("B")
	require.NoError(t, err)

	require.NoError(t, s.Delete(task.ID))
	require.Len(t, s.Tasks(), 1)
	require.NoError(t, s.Delete("ghost"))

	require.NoError(t, s.Clear())
	require.Empty(t, s.Tasks())
}
