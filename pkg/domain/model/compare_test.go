package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/cmseval/pkg/domain/model"
)

func TestCompareFields(t *testing.T) {
	v := model.NewDraftVendor("new-1", 4)
	v.TotalScore = 60
	v.Metadata.SOC2 = true

	seen := map[string]bool{}
	for _, f := range model.CompareFields() {
		gt.B(t, seen[f.ID]).False()
		seen[f.ID] = true

		val := f.Value(v)
		gt.Value(t, val.Kind).Equal(f.Kind)
	}

	tests := []struct {
		id   string
		want string
	}{
		{"priority", "4"},
		{"totalScore", "60"},
		{"features.sso", "3/5"},
		{"metadata.soc2", "Yes"},
		{"metadata.livePreview", "No"},
		{"cost.estimatedTotal", "Mid"},
		{"migration.risks", "Integration complexity"},
		{"migration.effort", "Medium"},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			f, ok := model.LookupCompareField(tt.id)
			gt.B(t, ok).True()
			gt.Value(t, f.Value(v).String()).Equal(tt.want)
		})
	}

	_, ok := model.LookupCompareField("metadata.unknown")
	gt.B(t, ok).False()
}

func TestCompareFields_ListValueIsCopied(t *testing.T) {
	v := model.NewDraftVendor("new-1", 4)
	f, ok := model.LookupCompareField("migration.risks")
	gt.B(t, ok).True()

	val := f.Value(v)
	val.List[0] = "mutated"
	gt.Value(t, v.Migration.Risks[0]).Equal("Integration complexity")
}
