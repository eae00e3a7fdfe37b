package store

import (
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"oktodeck-backend/internal/models"
)

// recordUsage appends one ledger entry for a realized quantity decrease.
// Called only from the quantity-mutation path; callers must hold s.mu.
func (s *Store) recordUsage(itemName, box string, quantity int) error {
	if quantity <= 0 {
		return nil
	}
	entry := models.UsageEntry{
		Date:     time.Now(),
		ItemName: itemName,
		Box:      box,
		Quantity: quantity,
	}
	s.usage = append(s.usage, entry)
	if err := s.backend.AppendUsage(entry); err != nil {
		s.log.Errorw("persist usage entry failed", "item", itemName, zap.Error(err))
		return fmt.Errorf("append usage: %w", err)
	}
	return nil
}

// UsageEntries returns the full ledger in insertion order.
func (s *Store) UsageEntries() []models.UsageEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.UsageEntry, len(s.usage))
	copy(out, s.usage)
	return out
}

// AvailableMonths returns the distinct "YYYY-MM" keys present in the
// ledger, most recent first. Keys use the entry's local calendar month.
func (s *Store) AvailableMonths() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]bool)
	var months []string
	for _, e := range s.usage {
		key := monthKey(e.Date)
		if !seen[key] {
			seen[key] = true
			months = append(months, key)
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(months)))
	return months
}

// MonthlyUsage aggregates ledger entries of the named calendar month by
// (item, box), summing quantities. Rows come back sorted by summed
// quantity descending; ties keep first-appearance order.
func (s *Store) MonthlyUsage(month string) ([]models.MonthlyUsageRow, error) {
	ref, err := time.ParseInLocation("2006-01", month, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid month key %q: %w", month, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	index := make(map[string]int)
	rows := make([]models.MonthlyUsageRow, 0)
	for _, e := range s.usage {
		d := e.Date.Local()
		if d.Year() != ref.Year() || d.Month() != ref.Month() {
			continue
		}
		key := e.ItemName + "|" + e.Box
		i, ok := index[key]
		if !ok {
			i = len(rows)
			index[key] = i
			rows = append(rows, models.MonthlyUsageRow{ItemName: e.ItemName, Box: e.Box})
		}
		rows[i].Quantity += e.Quantity
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Quantity > rows[j].Quantity
	})
	return rows, nil
}

func monthKey(t time.Time) string {
	return t.Local().Format("2006-01")
}
