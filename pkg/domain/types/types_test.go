package types_test

import (
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/cmseval/pkg/domain/types"
)

func TestVendorID_Validate(t *testing.T) {
	tests := []struct {
		name    string
		id      types.VendorID
		wantErr bool
	}{
		{"seed id", "sanity", false},
		{"draft id", "new-0190c6f4-0000-7000-8000-000000000000", false},
		{"empty", "", true},
		{"leading space", " sanity", true},
		{"trailing space", "sanity ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.id.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("VendorID.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestVendorID_IsDraft(t *testing.T) {
	gt.B(t, types.VendorID("sanity").IsDraft()).False()
	gt.B(t, types.VendorID("newsroom").IsDraft()).False()
	gt.B(t, types.VendorID("new-123").IsDraft()).True()
}

func TestNewDraftVendorID(t *testing.T) {
	a := types.NewDraftVendorID()
	b := types.NewDraftVendorID()

	gt.B(t, a.IsDraft()).True()
	gt.B(t, strings.HasPrefix(a.String(), types.DraftVendorPrefix)).True()
	gt.Value(t, a).NotEqual(b)
	gt.NoError(t, a.Validate())
}

func TestLevel(t *testing.T) {
	tests := []struct {
		level types.Level
		valid bool
		score int
	}{
		{types.LevelLow, true, 1},
		{types.LevelMedium, true, 2},
		{types.LevelHigh, true, 3},
		{types.Level("Critical"), false, 1},
		{types.Level(""), false, 1},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			gt.Value(t, tt.level.IsValid()).Equal(tt.valid)
			gt.Value(t, tt.level.Score()).Equal(tt.score)
		})
	}

	_, err := types.ParseLevel("medium")
	gt.Value(t, err).NotNil()

	level, err := types.ParseLevel("Medium")
	gt.NoError(t, err).Required()
	gt.Value(t, level).Equal(types.LevelMedium)
}

func TestCostTier(t *testing.T) {
	for _, tier := range types.AllCostTiers() {
		gt.B(t, tier.IsValid()).True()
	}
	gt.B(t, types.CostTier("Cheap").IsValid()).False()

	gt.B(t, types.CostLow.IsLow()).True()
	gt.B(t, types.CostLowMid.IsLow()).True()
	gt.B(t, types.CostMid.IsLow()).False()
	gt.B(t, types.CostVeryHigh.IsLow()).False()

	_, err := types.ParseCostTier("Very High")
	gt.NoError(t, err)
}

func TestScoreDimension(t *testing.T) {
	gt.Array(t, types.AllScoreDimensions()).Length(9)
	gt.B(t, types.DimensionOpsTco.IsValid()).True()
	gt.B(t, types.ScoreDimension("seoTooling").IsValid()).False()

	for _, d := range types.AllScoreDimensions() {
		gt.String(t, d.Label()).NotEqual(d.String())
	}
	gt.Value(t, types.ScoreDimension("seoTooling").Label()).Equal("seoTooling")
}

func TestParseSort(t *testing.T) {
	key, err := types.ParseSortKey("")
	gt.NoError(t, err).Required()
	gt.Value(t, key).Equal(types.SortByPriority)

	_, err = types.ParseSortKey("cost")
	gt.Value(t, err).NotNil()

	dir, err := types.ParseSortDirection("desc")
	gt.NoError(t, err).Required()
	gt.Value(t, dir).Equal(types.SortDesc)
	gt.Value(t, dir.Flip()).Equal(types.SortAsc)
	gt.Value(t, types.SortAsc.Flip()).Equal(types.SortDesc)

	_, err = types.ParseSortDirection("up")
	gt.Value(t, err).NotNil()
}
