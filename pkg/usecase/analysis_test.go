package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/cmseval/pkg/domain/model"
	"github.com/secmon-lab/cmseval/pkg/domain/types"
	"github.com/secmon-lab/cmseval/pkg/repository/memory"
	"github.com/secmon-lab/cmseval/pkg/usecase"
)

func TestAnalysisUseCase_Overview(t *testing.T) {
	ctx := context.Background()
	uc := newUseCases(t, memory.New())

	overview, err := uc.Analysis.Overview(ctx)
	gt.NoError(t, err).Required()

	gt.Value(t, overview.TotalVendors).Equal(7)
	gt.Array(t, overview.TopChoices).Length(3)
	gt.Value(t, overview.TopChoices[0].ID).Equal("sanity")
	gt.Value(t, overview.TopChoices[1].ID).Equal("craft")
	gt.Value(t, overview.TopChoices[2].ID).Equal("strapi")
	// (95+88+80)/3 = 87.67
	gt.Value(t, overview.AvgScore).Equal(88)
	// (6+8+7)/3 = 7
	gt.Value(t, overview.AvgMigrationWeeks).Equal(7)
	// sanity and strapi are Low-Mid
	gt.Value(t, overview.LowCostChoices).Equal(2)
}

func TestAnalysisUseCase_Overview_EmptyStore(t *testing.T) {
	ctx := context.Background()
	uc := newUseCases(t, memory.New())
	_, err := uc.Exchange.ImportJSON(ctx, []byte(`{"vendors": [], "version": "2.0"}`))
	gt.NoError(t, err).Required()

	overview, err := uc.Analysis.Overview(ctx)
	gt.NoError(t, err).Required()
	gt.Value(t, overview.TotalVendors).Equal(0)
	gt.Array(t, overview.TopChoices).Length(0)
	gt.Value(t, overview.AvgScore).Equal(0)
}

func TestAnalysisUseCase_Analysis(t *testing.T) {
	ctx := context.Background()
	uc := newUseCases(t, memory.New())

	analysis, err := uc.Analysis.Analysis(ctx)
	gt.NoError(t, err).Required()

	gt.Value(t, analysis.TotalVendors).Equal(7)
	gt.Value(t, analysis.AvgScore).Equal(75)
	gt.Array(t, analysis.ByType).Length(5)
	gt.Array(t, analysis.ByHosting).Length(3)
	gt.Array(t, analysis.TopPerformers).Length(5)
	gt.Value(t, analysis.TopPerformers[0].ID).Equal("sanity")
	gt.Array(t, analysis.FastestMigrations).Length(7)

	var counted int
	for _, b := range analysis.Distribution {
		counted += b.Count
	}
	gt.Value(t, counted).Equal(7)
}

func TestAnalysisUseCase_Compare(t *testing.T) {
	ctx := context.Background()
	uc := newUseCases(t, memory.New())

	t.Run("columns follow the requested order", func(t *testing.T) {
		cmp := uc.Analysis.Compare(ctx, []types.VendorID{"wordpress", "sanity", "ghost", "sanity"})

		gt.Array(t, cmp.Vendors).Length(2)
		gt.Value(t, cmp.Vendors[0].ID).Equal("wordpress")
		gt.Value(t, cmp.Vendors[1].ID).Equal("sanity")
		gt.Value(t, cmp.Missing).Equal([]types.VendorID{"ghost"})

		gt.Array(t, cmp.Rows).Length(len(model.CompareFields()))
		for _, row := range cmp.Rows {
			gt.Array(t, row.Values).Length(2)
		}

		row := findRow(t, cmp, "totalScore")
		gt.Value(t, row.Values[0].Number).Equal(61)
		gt.Value(t, row.Values[1].Number).Equal(95)

		soc2 := findRow(t, cmp, "metadata.soc2")
		gt.Value(t, soc2.Kind).Equal(model.FieldKindBool)
	})

	t.Run("empty request uses the default selection", func(t *testing.T) {
		cmp := uc.Analysis.Compare(ctx, nil)
		gt.Array(t, cmp.Vendors).Length(4)
		gt.Value(t, cmp.Vendors[3].ID).Equal("wordpress")
		gt.Array(t, cmp.Missing).Length(0)
	})
}

func findRow(t *testing.T, cmp *usecase.Comparison, id string) usecase.ComparisonRow {
	t.Helper()
	for _, row := range cmp.Rows {
		if row.ID == id {
			return row
		}
	}
	t.Fatalf("row %s not found", id)
	return usecase.ComparisonRow{}
}

func TestAnalysisUseCase_Timelines(t *testing.T) {
	ctx := context.Background()
	uc := newUseCases(t, memory.New())

	all, err := uc.Analysis.Timelines(ctx, "")
	gt.NoError(t, err).Required()
	gt.Array(t, all).Length(7)
	gt.Value(t, all[0].VendorID).Equal("sanity")
	// storyblok has priority 5, wordpress 6
	gt.Value(t, all[4].VendorID).Equal("storyblok")

	one, err := uc.Analysis.Timelines(ctx, "craft")
	gt.NoError(t, err).Required()
	gt.Array(t, one).Length(1)
	steps := one[0].Steps
	gt.Bool(t, len(steps) > 0).True()
	gt.Value(t, steps[len(steps)-1].Week).Equal(one[0].TimeWeeks)

	_, err = uc.Analysis.Timelines(ctx, "ghost")
	gt.Error(t, err).Is(usecase.ErrVendorNotFound)
}
