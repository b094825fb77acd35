package ranking

import (
	"cmp"
	"slices"
	"strings"

	"github.com/secmon-lab/cmseval/pkg/domain/model"
)

// FastestMigrations returns up to n vendors ordered by ascending migration
// duration
func FastestMigrations(vendors []*model.Vendor, n int) []*model.Vendor {
	if n <= 0 {
		return []*model.Vendor{}
	}
	sorted := slices.Clone(vendors)
	slices.SortStableFunc(sorted, func(a, b *model.Vendor) int {
		if c := cmp.Compare(a.Migration.TimeWeeks, b.Migration.TimeWeeks); c != 0 {
			return c
		}
		return strings.Compare(a.ID.String(), b.ID.String())
	})
	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

// StepWeek returns the week in which step index (0-based) of a plan of
// total steps completes, spreading the steps evenly over weeks. The result
// is ceil((index+1) * weeks / total); a plan without steps returns 0.
func StepWeek(index, total, weeks int) int {
	if total <= 0 || index < 0 {
		return 0
	}
	num := (index + 1) * weeks
	week := num / total
	if num%total != 0 && num > 0 {
		week++
	}
	return week
}
