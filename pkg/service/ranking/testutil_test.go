package ranking_test

import (
	"github.com/secmon-lab/cmseval/pkg/domain/model"
	"github.com/secmon-lab/cmseval/pkg/domain/types"
)

func vendor(id, name string, priority, score int) *model.Vendor {
	return &model.Vendor{
		ID:         types.VendorID(id),
		Name:       name,
		Priority:   priority,
		TotalScore: score,
	}
}

func ids(vendors []*model.Vendor) []types.VendorID {
	out := make([]types.VendorID, 0, len(vendors))
	for _, v := range vendors {
		out = append(out, v.ID)
	}
	return out
}
