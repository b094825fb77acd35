package model_test

import (
	"testing"

	"github.com/secmon-lab/cmseval/pkg/domain/model"
	"github.com/secmon-lab/cmseval/pkg/domain/types"
)

func TestRiskAssessment_Validate(t *testing.T) {
	tests := []struct {
		name    string
		risk    model.RiskAssessment
		wantErr bool
	}{
		{
			name:    "valid",
			risk:    model.RiskAssessment{Risk: "Ops overhead", Likelihood: types.LevelMedium, Impact: types.LevelHigh},
			wantErr: false,
		},
		{
			name:    "missing description",
			risk:    model.RiskAssessment{Likelihood: types.LevelLow, Impact: types.LevelLow},
			wantErr: true,
		},
		{
			name:    "invalid likelihood",
			risk:    model.RiskAssessment{Risk: "x", Likelihood: "Sometimes", Impact: types.LevelLow},
			wantErr: true,
		},
		{
			name:    "invalid impact",
			risk:    model.RiskAssessment{Risk: "x", Likelihood: types.LevelLow, Impact: ""},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.risk.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("RiskAssessment.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestMigrationScenario_Validate(t *testing.T) {
	valid := model.MigrationScenario{ID: "rapid-marketing", Name: "Rapid", BestVendor: "Sanity"}
	if err := valid.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	for _, s := range []model.MigrationScenario{
		{Name: "Rapid", BestVendor: "Sanity"},
		{ID: "x", BestVendor: "Sanity"},
		{ID: "x", Name: "Rapid"},
	} {
		if err := s.Validate(); err == nil {
			t.Errorf("expected error for %+v", s)
		}
	}
}
