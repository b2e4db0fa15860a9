package schedule

import "strings"

// Slot is a bookable advisor time window from the fixed catalog.
type Slot struct {
	ID    string `json:"slot_id"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// catalog is the fixed demo inventory. Identity is the slot ID.
var catalog = []Slot{
	{ID: "SLOT-101", Start: "2026-01-02 10:00 AM", End: "10:30 AM"},
	{ID: "SLOT-102", Start: "2026-01-02 11:00 AM", End: "11:30 AM"},
	{ID: "SLOT-103", Start: "2026-01-02 03:00 PM", End: "03:30 PM"},
	{ID: "SLOT-104", Start: "2026-01-02 05:00 PM", End: "05:30 PM"},
}

// Catalog returns a copy of the slot catalog.
func Catalog() []Slot {
	out := make([]Slot, len(catalog))
	copy(out, catalog)
	return out
}

// PickTwo selects the pair of slots to offer for a time preference.
// The day preference is accepted for future day-aware availability but does
// not affect selection yet.
func PickTwo(dayPreference, timePreference string) []Slot {
	tp := strings.ToLower(timePreference)

	var candidates []Slot
	switch {
	case strings.Contains(tp, "even"), strings.Contains(tp, "5"), strings.Contains(tp, "6"):
		candidates = []Slot{catalog[3], catalog[2], catalog[1]}
	case strings.Contains(tp, "after"), strings.Contains(tp, "3"), strings.Contains(tp, "4"):
		candidates = []Slot{catalog[2], catalog[1], catalog[3]}
	default:
		candidates = []Slot{catalog[0], catalog[1], catalog[2]}
	}

	return candidates[:2]
}
