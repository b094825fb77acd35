package usecase

import (
	"context"
	"errors"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/cmseval/pkg/domain/model"
	"github.com/secmon-lab/cmseval/pkg/domain/types"
	"github.com/secmon-lab/cmseval/pkg/service/ranking"
)

const (
	// TopChoiceCount is the size of the priority shortlist
	TopChoiceCount = 3
	// MigrationOverviewCount caps the migration complexity list
	MigrationOverviewCount = 8
)

// DefaultCompareIDs are compared when no vendor is selected
var DefaultCompareIDs = []types.VendorID{"sanity", "craft", "strapi", "wordpress"}

// Overview summarises the priority shortlist
type Overview struct {
	TotalVendors      int             `json:"totalVendors"`
	TopChoices        []*model.Vendor `json:"topChoices"`
	AvgScore          int             `json:"avgScore"`
	AvgMigrationWeeks int             `json:"avgMigrationWeeks"`
	LowCostChoices    int             `json:"lowCostChoices"`
}

// Analysis is the portfolio view over all vendors
type Analysis struct {
	TotalVendors      int             `json:"totalVendors"`
	AvgScore          int             `json:"avgScore"`
	ByType            []ranking.Group `json:"byType"`
	ByHosting         []ranking.Group `json:"byHosting"`
	Distribution      []ranking.Band  `json:"distribution"`
	TopPerformers     []*model.Vendor `json:"topPerformers"`
	FastestMigrations []*model.Vendor `json:"fastestMigrations"`
}

// ComparisonRow is one field across the compared vendors, in column order
type ComparisonRow struct {
	ID      string             `json:"id"`
	Section string             `json:"section"`
	Label   string             `json:"label"`
	Kind    model.FieldKind    `json:"kind"`
	Values  []model.FieldValue `json:"values"`
}

// Comparison is the side-by-side matrix
type Comparison struct {
	Vendors []*model.Vendor  `json:"vendors"`
	Missing []types.VendorID `json:"missing"`
	Rows    []ComparisonRow  `json:"rows"`
}

// TimelineStep is one migration step with the week it completes in
type TimelineStep struct {
	Name string `json:"name"`
	Week int    `json:"week"`
}

// Timeline is the migration plan of one vendor
type Timeline struct {
	VendorID  types.VendorID `json:"vendorId"`
	Name      string         `json:"name"`
	Priority  int            `json:"priority"`
	Effort    types.Level    `json:"effort"`
	TimeWeeks int            `json:"timeWeeks"`
	Steps     []TimelineStep `json:"steps"`
	Risks     []string       `json:"risks"`
}

// AnalysisUseCase derives read-only views from the vendor store
type AnalysisUseCase struct {
	vendors *VendorUseCase
}

func NewAnalysisUseCase(vendors *VendorUseCase) *AnalysisUseCase {
	return &AnalysisUseCase{vendors: vendors}
}

func (uc *AnalysisUseCase) Overview(ctx context.Context) (*Overview, error) {
	all := uc.vendors.List(ctx)
	top := ranking.TopN(all, TopChoiceCount)

	avgScore, err := averageOrZero(ranking.AverageScore(top))
	if err != nil {
		return nil, err
	}
	avgWeeks, err := averageOrZero(ranking.AverageMigrationWeeks(top))
	if err != nil {
		return nil, err
	}

	var lowCost int
	for _, v := range top {
		if v.Cost.EstimatedTotal.IsLow() {
			lowCost++
		}
	}

	return &Overview{
		TotalVendors:      len(all),
		TopChoices:        top,
		AvgScore:          avgScore,
		AvgMigrationWeeks: avgWeeks,
		LowCostChoices:    lowCost,
	}, nil
}

func (uc *AnalysisUseCase) Analysis(ctx context.Context) (*Analysis, error) {
	all := uc.vendors.List(ctx)

	avg, err := averageOrZero(ranking.AverageScore(all))
	if err != nil {
		return nil, err
	}

	return &Analysis{
		TotalVendors:      len(all),
		AvgScore:          avg,
		ByType:            ranking.GroupByType(all),
		ByHosting:         ranking.GroupByHosting(all),
		Distribution:      ranking.ScoreDistribution(all),
		TopPerformers:     ranking.TopByScore(all, ranking.TopPerformers),
		FastestMigrations: ranking.FastestMigrations(all, MigrationOverviewCount),
	}, nil
}

// Compare builds the comparison matrix with one column per requested vendor,
// in request order. Duplicate IDs are compared once; unknown IDs are listed
// in Missing. An empty request compares DefaultCompareIDs.
func (uc *AnalysisUseCase) Compare(ctx context.Context, ids []types.VendorID) *Comparison {
	if len(ids) == 0 {
		ids = DefaultCompareIDs
	}
	return buildComparison(uc.vendors.List(ctx), ids)
}

// buildComparison lays out ids against an already taken copy of the store
func buildComparison(all []*model.Vendor, ids []types.VendorID) *Comparison {
	result := &Comparison{
		Vendors: []*model.Vendor{},
		Missing: []types.VendorID{},
	}

	seen := make(map[types.VendorID]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		v, ok := model.FindVendor(all, id)
		if !ok {
			result.Missing = append(result.Missing, id)
			continue
		}
		result.Vendors = append(result.Vendors, v)
	}

	fields := model.CompareFields()
	result.Rows = make([]ComparisonRow, 0, len(fields))
	for _, f := range fields {
		row := ComparisonRow{
			ID:      f.ID,
			Section: f.Section,
			Label:   f.Label,
			Kind:    f.Kind,
			Values:  make([]model.FieldValue, 0, len(result.Vendors)),
		}
		for _, v := range result.Vendors {
			row.Values = append(row.Values, f.Value(v))
		}
		result.Rows = append(result.Rows, row)
	}

	return result
}

// Timelines returns migration plans by ascending priority. A non-empty
// vendorID restricts the result to that vendor.
func (uc *AnalysisUseCase) Timelines(ctx context.Context, vendorID types.VendorID) ([]*Timeline, error) {
	all := uc.vendors.Sorted(ctx, types.SortByPriority, types.SortAsc)

	timelines := make([]*Timeline, 0, len(all))
	for _, v := range all {
		if vendorID != "" && v.ID != vendorID {
			continue
		}
		timelines = append(timelines, buildTimeline(v))
	}

	if vendorID != "" && len(timelines) == 0 {
		return nil, goerr.Wrap(ErrVendorNotFound, "vendor not found", goerr.V(VendorIDKey, vendorID))
	}
	return timelines, nil
}

func buildTimeline(v *model.Vendor) *Timeline {
	steps := make([]TimelineStep, 0, len(v.Migration.Steps))
	for i, name := range v.Migration.Steps {
		steps = append(steps, TimelineStep{
			Name: name,
			Week: ranking.StepWeek(i, len(v.Migration.Steps), v.Migration.TimeWeeks),
		})
	}
	return &Timeline{
		VendorID:  v.ID,
		Name:      v.Name,
		Priority:  v.Priority,
		Effort:    v.Migration.Effort,
		TimeWeeks: v.Migration.TimeWeeks,
		Steps:     steps,
		Risks:     v.Migration.Risks,
	}
}

// averageOrZero maps an empty-input average to zero
func averageOrZero(avg int, err error) (int, error) {
	if errors.Is(err, ranking.ErrEmptyInput) {
		return 0, nil
	}
	if err != nil {
		return 0, goerr.Wrap(err, "failed to compute average")
	}
	return avg, nil
}
