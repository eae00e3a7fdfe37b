package store

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"oktodeck-backend/internal/models"
)

type SortMode string

const (
	SortDefault  SortMode = "default"
	SortNameAsc  SortMode = "name-asc"
	SortNameDesc SortMode = "name-desc"
	SortQtyAsc   SortMode = "qty-asc"
	SortQtyDesc  SortMode = "qty-desc"
)

// ValidSortMode reports whether m names a known sort mode. The empty
// string counts as default.
func ValidSortMode(m SortMode) bool {
	switch m {
	case "", SortDefault, SortNameAsc, SortNameDesc, SortQtyAsc, SortQtyDesc:
		return true
	}
	return false
}

// BoxAll is the box-filter sentinel that matches every box.
const BoxAll = "all"

// Query is the read-side filter/sort selection.
type Query struct {
	Search string
	Box    string
	Sort   SortMode
}

// BoxGroup is one box section of a grouped view.
type BoxGroup struct {
	Box   string             `json:"box"`
	Items []models.StockItem `json:"items"`
}

// View is the displayed list: grouped by box when browsing everything,
// flat while searching or filtered to a single box.
type View struct {
	Grouped bool               `json:"grouped"`
	Items   []models.StockItem `json:"items"`
	Groups  []BoxGroup         `json:"groups,omitempty"`
}

// View derives the displayed list. Pure read; the store is not mutated.
func (s *Store) View(q Query) View {
	s.mu.Lock()
	items := make([]models.StockItem, len(s.items))
	copy(items, s.items)
	s.mu.Unlock()

	filtered := items[:0:0]
	for _, it := range items {
		if matchesSearch(it.Name, q.Search) && matchesBox(it.Box, q.Box) {
			filtered = append(filtered, it)
		}
	}
	sortItems(filtered, q.Sort)

	searching := strings.TrimSpace(q.Search) != ""
	boxed := q.Box != "" && q.Box != BoxAll
	if searching || boxed {
		return View{Grouped: false, Items: filtered}
	}
	return View{Grouped: true, Items: filtered, Groups: groupByBox(filtered)}
}

// matchesSearch applies the token-AND rule: every whitespace-delimited
// token of the trimmed, lowercased term must be a substring of the
// lowercased name. "blue tape" matches "3M Blue Tape 1 Inch" but not
// "3M Blue Applicator Pads".
func matchesSearch(name, term string) bool {
	tokens := strings.Fields(strings.ToLower(strings.TrimSpace(term)))
	if len(tokens) == 0 {
		return true
	}
	lower := strings.ToLower(name)
	for _, tok := range tokens {
		if !strings.Contains(lower, tok) {
			return false
		}
	}
	return true
}

func matchesBox(box, filter string) bool {
	return filter == "" || filter == BoxAll || box == filter
}

func sortItems(items []models.StockItem, mode SortMode) {
	switch mode {
	case SortNameAsc, SortNameDesc:
		cl := collate.New(language.English, collate.IgnoreCase)
		sort.SliceStable(items, func(i, j int) bool {
			cmp := cl.CompareString(items[i].Name, items[j].Name)
			if mode == SortNameAsc {
				return cmp < 0
			}
			return cmp > 0
		})
	case SortQtyAsc:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Quantity < items[j].Quantity
		})
	case SortQtyDesc:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Quantity > items[j].Quantity
		})
	default:
		// store order
	}
}

// groupByBox sections items by box. Groups follow the fixed enumeration's
// declared order; custom boxes come after, alphabetically. Item order
// within a group is the (already sorted) input order.
func groupByBox(items []models.StockItem) []BoxGroup {
	byBox := make(map[string][]models.StockItem)
	var boxes []string
	for _, it := range items {
		if _, seen := byBox[it.Box]; !seen {
			boxes = append(boxes, it.Box)
		}
		byBox[it.Box] = append(byBox[it.Box], it)
	}

	sort.SliceStable(boxes, func(i, j int) bool {
		ri, iFixed := models.BoxRank(boxes[i])
		rj, jFixed := models.BoxRank(boxes[j])
		switch {
		case iFixed && jFixed:
			return ri < rj
		case iFixed:
			return true
		case jFixed:
			return false
		default:
			return boxes[i] < boxes[j]
		}
	})

	groups := make([]BoxGroup, 0, len(boxes))
	for _, b := range boxes {
		groups = append(groups, BoxGroup{Box: b, Items: byBox[b]})
	}
	return groups
}
