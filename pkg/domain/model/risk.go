package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/cmseval/pkg/domain/types"
)

// RiskAssessment pairs a migration risk with the vendor it concerns.
// VendorID is the reference used for lookups; VendorName is the label from
// the source data and is kept for display when the reference is empty or
// does not resolve.
type RiskAssessment struct {
	Risk       string         `json:"risk" toml:"risk"`
	VendorID   types.VendorID `json:"vendorId,omitempty" toml:"vendor_id"`
	VendorName string         `json:"vendor" toml:"vendor"`
	Likelihood types.Level    `json:"likelihood" toml:"likelihood"`
	Impact     types.Level    `json:"impact" toml:"impact"`
	Mitigation string         `json:"mitigation" toml:"mitigation"`
}

// Validate checks if the RiskAssessment is well formed
func (r *RiskAssessment) Validate() error {
	if r.Risk == "" {
		return goerr.New("risk description is required")
	}
	if !r.Likelihood.IsValid() {
		return goerr.New("invalid likelihood", goerr.V("risk", r.Risk), goerr.V("likelihood", r.Likelihood))
	}
	if !r.Impact.IsValid() {
		return goerr.New("invalid impact", goerr.V("risk", r.Risk), goerr.V("impact", r.Impact))
	}
	return nil
}

// MigrationScenario maps a named use case to the recommended vendor
type MigrationScenario struct {
	ID          string `json:"id" toml:"id"`
	Name        string `json:"name" toml:"name"`
	Description string `json:"description" toml:"description"`
	BestVendor  string `json:"bestCms" toml:"best_cms"`
	Rationale   string `json:"rationale" toml:"rationale"`
}

// Validate checks if the MigrationScenario is well formed
func (s *MigrationScenario) Validate() error {
	if s.ID == "" {
		return goerr.New("scenario ID is required")
	}
	if s.Name == "" {
		return goerr.New("scenario name is required", goerr.V("id", s.ID))
	}
	if s.BestVendor == "" {
		return goerr.New("scenario recommended vendor is required", goerr.V("id", s.ID))
	}
	return nil
}
