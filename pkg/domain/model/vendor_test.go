package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/cmseval/pkg/domain/model"
	"github.com/secmon-lab/cmseval/pkg/domain/types"
)

func TestVendor_Clone(t *testing.T) {
	orig := model.NewDraftVendor("new-1", 8)
	copied := orig.Clone()

	gt.Value(t, copied).Equal(orig)

	copied.Name = "Changed"
	copied.Migration.Steps[0] = "Changed step"
	copied.Metadata.Highlights = append(copied.Metadata.Highlights, "extra")
	copied.Features.SSO = 0

	gt.Value(t, orig.Name).Equal("New CMS")
	gt.Value(t, orig.Migration.Steps[0]).Equal("Planning")
	gt.Array(t, orig.Metadata.Highlights).Length(2)
	gt.Value(t, orig.Features.SSO).Equal(3)
}

func TestVendor_CloneNil(t *testing.T) {
	var v *model.Vendor
	gt.Value(t, v.Clone()).Nil()
}

func TestNewDraftVendor(t *testing.T) {
	v := model.NewDraftVendor("new-42", 8)

	gt.Value(t, v.ID).Equal(types.VendorID("new-42"))
	gt.Value(t, v.Priority).Equal(8)
	gt.Value(t, v.Cost.EstimatedTotal).Equal(types.CostMid)
	gt.Value(t, v.Migration.Effort).Equal(types.LevelMedium)
	gt.Value(t, v.Migration.TimeWeeks).Equal(6)
	for _, score := range v.WeightedScores.Map() {
		gt.Value(t, score).Equal(3)
	}
	gt.B(t, v.Metadata.SOC2).False()
}

func TestWeightedScores_Map(t *testing.T) {
	ws := model.WeightedScores{EditorUx: 5, OpsTco: 2, LocalizationScheduling: 1}
	m := ws.Map()

	gt.Value(t, len(m)).Equal(9)
	gt.Value(t, m[types.DimensionEditorUx]).Equal(5)
	gt.Value(t, ws.Get(types.DimensionOpsTco)).Equal(2)
	gt.Value(t, ws.Get(types.DimensionLocalizationScheduling)).Equal(1)
	gt.Value(t, ws.Get(types.ScoreDimension("unknown"))).Equal(0)
}

func TestFindVendor(t *testing.T) {
	vendors := []*model.Vendor{
		{ID: "sanity", Name: "Sanity"},
		{ID: "craft", Name: "Craft CMS"},
	}

	v, ok := model.FindVendor(vendors, "craft")
	gt.B(t, ok).True()
	gt.Value(t, v.Name).Equal("Craft CMS")

	_, ok = model.FindVendor(vendors, "strapi")
	gt.B(t, ok).False()

	v, ok = model.FindVendorByName(vendors, "Sanity")
	gt.B(t, ok).True()
	gt.Value(t, v.ID).Equal(types.VendorID("sanity"))

	_, ok = model.FindVendorByName(vendors, "All SaaS")
	gt.B(t, ok).False()
}

func TestVendor_IsPriorityChoice(t *testing.T) {
	gt.B(t, (&model.Vendor{Priority: 1}).IsPriorityChoice()).True()
	gt.B(t, (&model.Vendor{Priority: 3}).IsPriorityChoice()).True()
	gt.B(t, (&model.Vendor{Priority: 4}).IsPriorityChoice()).False()
}
