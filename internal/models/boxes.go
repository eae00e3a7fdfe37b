package models

// BoxOptions is the fixed box enumeration in display order. Grouped views
// order box groups by this list; custom boxes sort alphabetically after it.
var BoxOptions = []string{
	"BOX BS1", "BOX BS2", "BOX BS3", "BOX BS4", "BOX BS5 & BS5+", "BOX BS6",
	"BOX BS7", "BOX BS8", "BOX BS9", "BOX BS10", "BOX BS11", "BOX BS12",
	"BOX BS13 LSA", "BOX BS14", "BOX BS15", "BOX BS16", "BOX BS17", "BOX BS18",
	"BOX BS19", "BOX BS20", "BOX BS21", "BOX BS22", "BOX PPE",
	"BOX PS1", "BOX PS2", "BOX PS3", "BOX PS4", "BOX PS5", "BOX PS6",
	"BOX PS7", "BOX PS8", "BOX PS9", "BOX PS10", "BOX PS11",
	"PAINT INVENTORY", "ESTECH INVENTORY",
}

var boxRank = func() map[string]int {
	m := make(map[string]int, len(BoxOptions))
	for i, b := range BoxOptions {
		m[b] = i
	}
	return m
}()

// BoxRank returns the position of a box in the fixed enumeration.
// ok is false for custom boxes.
func BoxRank(box string) (int, bool) {
	r, ok := boxRank[box]
	return r, ok
}
