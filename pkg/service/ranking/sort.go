// Package ranking derives ordered views from a vendor collection. Every
// function works on a copy of its input and never reorders the caller's
// slice.
package ranking

import (
	"cmp"
	"slices"

	"github.com/secmon-lab/cmseval/pkg/domain/model"
	"github.com/secmon-lab/cmseval/pkg/domain/types"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// newCollator returns the name collation: English, case-insensitive.
// A Collator is not safe for concurrent use, so one is built per call.
func newCollator() *collate.Collator {
	return collate.New(language.English, collate.IgnoreCase)
}

// Sort returns a new slice ordered by key and direction. The sort is stable
// in both directions: vendors with equal keys keep their input order.
func Sort(vendors []*model.Vendor, key types.SortKey, dir types.SortDirection) []*model.Vendor {
	sorted := slices.Clone(vendors)

	var compare func(a, b *model.Vendor) int
	switch key {
	case types.SortByTotalScore:
		compare = func(a, b *model.Vendor) int { return cmp.Compare(a.TotalScore, b.TotalScore) }
	case types.SortByName:
		col := newCollator()
		compare = func(a, b *model.Vendor) int { return col.CompareString(a.Name, b.Name) }
	default:
		compare = func(a, b *model.Vendor) int { return cmp.Compare(a.Priority, b.Priority) }
	}
	if dir == types.SortDesc {
		asc := compare
		compare = func(a, b *model.Vendor) int { return -asc(a, b) }
	}

	slices.SortStableFunc(sorted, compare)
	return sorted
}

// SortState is the table sort selection. The zero value sorts by priority
// ascending.
type SortState struct {
	Key       types.SortKey       `json:"key"`
	Direction types.SortDirection `json:"direction"`
}

// DefaultSortState returns priority ascending
func DefaultSortState() SortState {
	return SortState{Key: types.SortByPriority, Direction: types.SortAsc}
}

// Toggle returns the state after selecting key: the same key flips the
// direction, a different key starts ascending.
func (s SortState) Toggle(key types.SortKey) SortState {
	current := s.Key
	if current == "" {
		current = types.SortByPriority
	}
	if current == key {
		dir := s.Direction
		if dir == "" {
			dir = types.SortAsc
		}
		return SortState{Key: key, Direction: dir.Flip()}
	}
	return SortState{Key: key, Direction: types.SortAsc}
}

// Apply sorts vendors with the state
func (s SortState) Apply(vendors []*model.Vendor) []*model.Vendor {
	return Sort(vendors, s.Key, s.Direction)
}

// TopN returns the first n vendors by ascending priority. n <= 0 yields an
// empty slice; n beyond the length yields all vendors.
func TopN(vendors []*model.Vendor, n int) []*model.Vendor {
	if n <= 0 {
		return []*model.Vendor{}
	}
	sorted := Sort(vendors, types.SortByPriority, types.SortAsc)
	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

// TopPerformers is the size of the "top performers" view
const TopPerformers = 5

// TopByScore returns the first n vendors by descending total score
func TopByScore(vendors []*model.Vendor, n int) []*model.Vendor {
	if n <= 0 {
		return []*model.Vendor{}
	}
	sorted := Sort(vendors, types.SortByTotalScore, types.SortDesc)
	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}
