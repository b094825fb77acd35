// Package seed provides the built-in evaluation dataset: the curated vendor
// records, the risk register and the migration scenarios.
package seed

import (
	_ "embed"
	"encoding/json"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/cmseval/pkg/domain/model"
)

//go:embed seed.json
var seedJSON []byte

// Dataset is the decoded seed document
type Dataset struct {
	Vendors   []*model.Vendor           `json:"vendors"`
	Risks     []model.RiskAssessment    `json:"risks"`
	Scenarios []model.MigrationScenario `json:"scenarios"`
}

var decode = sync.OnceValues(func() (*Dataset, error) {
	var ds Dataset
	if err := json.Unmarshal(seedJSON, &ds); err != nil {
		return nil, goerr.Wrap(err, "failed to decode seed dataset")
	}
	return &ds, nil
})

// Load returns a fresh copy of the seed dataset. Callers own the result.
func Load() (*Dataset, error) {
	ds, err := decode()
	if err != nil {
		return nil, err
	}
	return &Dataset{
		Vendors:   model.CloneVendors(ds.Vendors),
		Risks:     append([]model.RiskAssessment(nil), ds.Risks...),
		Scenarios: append([]model.MigrationScenario(nil), ds.Scenarios...),
	}, nil
}

// Vendors returns a fresh copy of the seed vendor records
func Vendors() ([]*model.Vendor, error) {
	ds, err := Load()
	if err != nil {
		return nil, err
	}
	return ds.Vendors, nil
}
