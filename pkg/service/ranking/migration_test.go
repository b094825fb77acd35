package ranking_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/cmseval/pkg/domain/model"
	"github.com/secmon-lab/cmseval/pkg/domain/types"
	"github.com/secmon-lab/cmseval/pkg/service/ranking"
)

func TestFastestMigrations(t *testing.T) {
	weeks := func(id string, w int) *model.Vendor {
		return &model.Vendor{ID: types.VendorID(id), Migration: model.Migration{TimeWeeks: w}}
	}
	input := []*model.Vendor{weeks("a", 8), weeks("b", 4), weeks("c", 6), weeks("d", 4)}

	gt.Value(t, ids(ranking.FastestMigrations(input, 8))).Equal([]types.VendorID{"b", "d", "c", "a"})
	gt.Value(t, ids(ranking.FastestMigrations(input, 2))).Equal([]types.VendorID{"b", "d"})
	gt.Array(t, ranking.FastestMigrations(input, 0)).Length(0)
	gt.Value(t, input[0].ID).Equal("a")
}

func TestStepWeek(t *testing.T) {
	// five steps over six weeks
	got := make([]int, 0, 5)
	for i := range 5 {
		got = append(got, ranking.StepWeek(i, 5, 6))
	}
	gt.Value(t, got).Equal([]int{2, 3, 4, 5, 6})

	gt.Value(t, ranking.StepWeek(0, 4, 4)).Equal(1)
	gt.Value(t, ranking.StepWeek(3, 4, 4)).Equal(4)
	gt.Value(t, ranking.StepWeek(0, 0, 4)).Equal(0)
}
