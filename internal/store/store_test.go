package store

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"oktodeck-backend/internal/models"
)

// newTestStore starts from an explicitly empty stock collection so tests
// control every row. The file backend in a temp dir is the real fallback
// implementation, not a mock.
func newTestStore(t *testing.T) (*Store, *FileBackend) {
	t.Helper()
	fb := NewFileBackend(t.TempDir())
	require.NoError(t, fb.SaveStock([]models.StockItem{}))

	s, err := New(fb, nil, zap.NewNop().Sugar())
	require.NoError(t, err)
	return s, fb
}

func mustAdd(t *testing.T, s *Store, name string, qty int, box string) models.StockItem {
	t.Helper()
	item, err := s.Add(name, qty, box)
	require.NoError(t, err)
	require.NotEmpty(t, item.ID)
	return item
}

func TestNewSeedsCatalogWhenStockNeverWritten(t *testing.T) {
	fb := NewFileBackend(t.TempDir())
	s, err := New(fb, nil, zap.NewNop().Sugar())
	require.NoError(t, err)

	items := s.Items()
	require.NotEmpty(t, items)
	require.Equal(t, "3M Blue Tape 1 Inch", items[0].Name)
	require.Equal(t, "BOX BS1", items[0].Box)

	// Seed must have been persisted immediately.
	persisted, found, err := fb.LoadStock()
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, persisted, len(items))
}

func TestAddInsertsAfterLastItemOfSameBox(t *testing.T) {
	s, _ := newTestStore(t)
	mustAdd(t, s, "Tape A", 1, "BOX BS1")
	mustAdd(t, s, "Pads", 1, "BOX BS3")
	mustAdd(t, s, "Tape B", 1, "BOX BS1")

	items := s.Items()
	require.Equal(t, []string{"Tape A", "Tape B", "Pads"},
		[]string{items[0].Name, items[1].Name, items[2].Name})

	// Unknown box goes to the end.
	mustAdd(t, s, "Loose Thing", 1, "BOX BS9")
	items = s.Items()
	require.Equal(t, "Loose Thing", items[3].Name)
}

func TestAddBlankNameIsSilentNoOp(t *testing.T) {
	s, _ := newTestStore(t)
	item, err := s.Add("   ", 1, "BOX BS1")
	require.NoError(t, err)
	require.Empty(t, item.ID)
	require.Empty(t, s.Items())
	require.Empty(t, s.Notifications())
}

func TestAddEmitsNotificationAndClearsUndo(t *testing.T) {
	s, _ := newTestStore(t)
	a := mustAdd(t, s, "Tape", 2, "BOX BS1")
	require.NoError(t, s.Remove(a.ID))

	// A fresh add invalidates the pending undo.
	mustAdd(t, s, "Pads", 1, "BOX BS3")
	_, ok, err := s.UndoRemove()
	require.NoError(t, err)
	require.False(t, ok)

	ns := s.Notifications()
	require.Len(t, ns, 3) // added, deleted, added — newest first
	require.Equal(t, models.NotificationAdded, ns[0].Type)
	require.Equal(t, "Pads", ns[0].ItemName)
	require.Equal(t, models.NotificationDeleted, ns[1].Type)
}

func TestChangeQuantityClampsAndLogsUsage(t *testing.T) {
	s, _ := newTestStore(t)
	item := mustAdd(t, s, "Tape", 5, "BOX BS1")

	got, err := s.ChangeQuantity(item.ID, -2)
	require.NoError(t, err)
	require.Equal(t, 3, got.Quantity)

	// Over-decrement clamps at zero; usage records the realized delta.
	got, err = s.ChangeQuantity(item.ID, -10)
	require.NoError(t, err)
	require.Equal(t, 0, got.Quantity)

	// Increase never logs usage.
	got, err = s.ChangeQuantity(item.ID, 4)
	require.NoError(t, err)
	require.Equal(t, 4, got.Quantity)

	usage := s.UsageEntries()
	require.Len(t, usage, 2)
	require.Equal(t, 2, usage[0].Quantity)
	require.Equal(t, 3, usage[1].Quantity)
	require.Equal(t, "Tape", usage[0].ItemName)
	require.Equal(t, "BOX BS1", usage[0].Box)
}

func TestSetQuantitySameSemanticsAsChange(t *testing.T) {
	s, _ := newTestStore(t)
	item := mustAdd(t, s, "Tape", 5, "BOX BS1")

	got, err := s.SetQuantity(item.ID, 2)
	require.NoError(t, err)
	require.Equal(t, 2, got.Quantity)

	got, err = s.SetQuantity(item.ID, -3)
	require.NoError(t, err)
	require.Equal(t, 0, got.Quantity)

	got, err = s.SetQuantity(item.ID, 9)
	require.NoError(t, err)
	require.Equal(t, 9, got.Quantity)

	usage := s.UsageEntries()
	require.Len(t, usage, 2)
	require.Equal(t, 3, usage[0].Quantity)
	require.Equal(t, 2, usage[1].Quantity)
}

func TestQuantityNeverNegativeAcrossSequences(t *testing.T) {
	s, _ := newTestStore(t)
	item := mustAdd(t, s, "Tape", 1, "BOX BS1")
	deltas := []int{-5, 3, -1, -7, 2, -2, -2}
	for _, d := range deltas {
		_, err := s.ChangeQuantity(item.ID, d)
		require.NoError(t, err)
		for _, it := range s.Items() {
			require.GreaterOrEqual(t, it.Quantity, 0)
		}
	}
}

func TestMutateUnknownIDReturnsNotFound(t *testing.T) {
	s, _ := newTestStore(t)
	_, err := s.ChangeQuantity("missing", -1)
	require.ErrorIs(t, err, ErrNotFound)
	_, err = s.SetQuantity("missing", 3)
	require.ErrorIs(t, err, ErrNotFound)
	_, err = s.Edit("missing", "New Name", "")
	require.ErrorIs(t, err, ErrNotFound)

	// Remove stays an idempotent no-op.
	require.NoError(t, s.Remove("missing"))
}

func TestRemoveThenUndoRestoresItemAtIndex(t *testing.T) {
	s, _ := newTestStore(t)
	mustAdd(t, s, "A", 1, "BOX BS1")
	b := mustAdd(t, s, "B", 7, "BOX BS1")
	mustAdd(t, s, "C", 1, "BOX BS1")

	require.NoError(t, s.Remove(b.ID))
	require.Len(t, s.Items(), 2)

	restored, ok, err := s.UndoRemove()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, b.ID, restored.ID)

	items := s.Items()
	require.Equal(t, "B", items[1].Name)
	require.Equal(t, 7, items[1].Quantity)
	require.Equal(t, "BOX BS1", items[1].Box)
}

func TestUndoIndexClampsWhenListShrank(t *testing.T) {
	s, _ := newTestStore(t)
	a := mustAdd(t, s, "A", 1, "BOX BS1")
	mustAdd(t, s, "B", 1, "BOX BS1")
	c := mustAdd(t, s, "C", 1, "BOX BS1")

	require.NoError(t, s.Remove(c.ID)) // index 2 buffered
	require.NoError(t, s.Remove(a.ID)) // second remove overwrites the buffer

	restored, ok, err := s.UndoRemove()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, a.ID, restored.ID)

	// Only the most recent deletion was undoable; C is gone for good.
	_, ok, err = s.UndoRemove()
	require.NoError(t, err)
	require.False(t, ok)

	names := []string{}
	for _, it := range s.Items() {
		names = append(names, it.Name)
	}
	require.Equal(t, []string{"A", "B"}, names)
}

func TestUndoOnEmptyBufferIsNoOp(t *testing.T) {
	s, _ := newTestStore(t)
	_, ok, err := s.UndoRemove()
	require.NoError(t, err)
	require.False(t, ok)
}

func TestEditRenamesInPlaceWithoutNotification(t *testing.T) {
	s, _ := newTestStore(t)
	mustAdd(t, s, "A", 1, "BOX BS1")
	b := mustAdd(t, s, "B", 1, "BOX BS1")
	before := len(s.Notifications())

	got, err := s.Edit(b.ID, "B Renamed", "BOX BS2")
	require.NoError(t, err)
	require.Equal(t, "B Renamed", got.Name)
	require.Equal(t, "BOX BS2", got.Box)

	items := s.Items()
	require.Equal(t, b.ID, items[1].ID) // position unchanged
	require.Len(t, s.Notifications(), before)

	// Blank name is a silent no-op.
	got, err = s.Edit(b.ID, "   ", "")
	require.NoError(t, err)
	require.Empty(t, got.ID)
	require.Equal(t, "B Renamed", s.Items()[1].Name)
}

func TestReorderReplacesOrderingWholesale(t *testing.T) {
	s, _ := newTestStore(t)
	a := mustAdd(t, s, "A", 1, "BOX BS1")
	b := mustAdd(t, s, "B", 1, "BOX BS1")
	c := mustAdd(t, s, "C", 1, "BOX BS1")

	require.NoError(t, s.Reorder([]string{c.ID, a.ID, b.ID}))
	items := s.Items()
	require.Equal(t, []string{"C", "A", "B"},
		[]string{items[0].Name, items[1].Name, items[2].Name})

	// Ids missing from the sequence keep relative order at the tail;
	// unknown ids are ignored.
	require.NoError(t, s.Reorder([]string{b.ID, "ghost"}))
	items = s.Items()
	require.Equal(t, []string{"B", "C", "A"},
		[]string{items[0].Name, items[1].Name, items[2].Name})
}

func TestNotificationLogCapsAtFifty(t *testing.T) {
	s, _ := newTestStore(t)
	for i := 0; i < 51; i++ {
		mustAdd(t, s, fmt.Sprintf("Item %02d", i), 1, "BOX BS1")
	}

	ns := s.Notifications()
	require.Len(t, ns, 50)
	// Newest first; the very first add has been dropped.
	require.Equal(t, "Item 50", ns[0].ItemName)
	require.Equal(t, "Item 01", ns[49].ItemName)
}

func TestClearNotifications(t *testing.T) {
	s, _ := newTestStore(t)
	mustAdd(t, s, "A", 1, "BOX BS1")
	require.NotEmpty(t, s.Notifications())
	require.NoError(t, s.ClearNotifications())
	require.Empty(t, s.Notifications())
}

func TestCustomBoxes(t *testing.T) {
	s, _ := newTestStore(t)

	added, err := s.AddCustomBox("ENGINE ROOM")
	require.NoError(t, err)
	require.True(t, added)

	// Duplicates and enumeration collisions are rejected.
	added, err = s.AddCustomBox("ENGINE ROOM")
	require.NoError(t, err)
	require.False(t, added)
	added, err = s.AddCustomBox("BOX BS1")
	require.NoError(t, err)
	require.False(t, added)
	added, err = s.AddCustomBox("  ")
	require.NoError(t, err)
	require.False(t, added)

	all, custom := s.Boxes()
	require.Equal(t, []string{"ENGINE ROOM"}, custom)
	require.Len(t, all, len(models.BoxOptions)+1)
	require.Equal(t, "ENGINE ROOM", all[len(all)-1])
}

func TestReloadReplacesStateWholesale(t *testing.T) {
	s, fb := newTestStore(t)
	mustAdd(t, s, "A", 1, "BOX BS1")

	// Simulate an external writer changing the backing store.
	require.NoError(t, fb.SaveStock([]models.StockItem{
		{ID: "x1", Name: "External", Quantity: 3, Box: "BOX BS2", Position: 0},
	}))

	require.NoError(t, s.Reload())
	items := s.Items()
	require.Len(t, items, 1)
	require.Equal(t, "External", items[0].Name)

	// Reload also drops any pending undo.
	_, ok, err := s.UndoRemove()
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMutationsSurviveRestart(t *testing.T) {
	s, fb := newTestStore(t)
	a := mustAdd(t, s, "A", 5, "BOX BS1")
	_, err := s.ChangeQuantity(a.ID, -2)
	require.NoError(t, err)

	reopened, err := New(fb, nil, zap.NewNop().Sugar())
	require.NoError(t, err)

	items := reopened.Items()
	require.Len(t, items, 1)
	require.Equal(t, 3, items[0].Quantity)
	require.Len(t, reopened.UsageEntries(), 1)
	require.Len(t, reopened.Notifications(), 1)
}

func TestResetRestoresSeedAndClearsDerivedState(t *testing.T) {
	s, _ := newTestStore(t)
	a := mustAdd(t, s, "A", 5, "BOX BS1")
	_, err := s.ChangeQuantity(a.ID, -1)
	require.NoError(t, err)
	added, err := s.AddCustomBox("AFT LOCKER")
	require.NoError(t, err)
	require.True(t, added)

	require.NoError(t, s.Reset())
	require.Equal(t, "3M Blue Tape 1 Inch", s.Items()[0].Name)
	require.Empty(t, s.UsageEntries())
	require.Empty(t, s.Notifications())

	// Custom boxes survive a reset.
	_, custom := s.Boxes()
	require.Equal(t, []string{"AFT LOCKER"}, custom)
}
