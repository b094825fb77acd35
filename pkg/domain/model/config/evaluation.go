package config

import "github.com/secmon-lab/cmseval/pkg/domain/model"

// Evaluation holds reference data supplied on top of the built-in dataset
type Evaluation struct {
	Risks     []model.RiskAssessment
	Scenarios []model.MigrationScenario
}

// RiskCount returns the number of configured risk assessments, nil-safe
func (e *Evaluation) RiskCount() int {
	if e == nil {
		return 0
	}
	return len(e.Risks)
}

// ScenarioCount returns the number of configured scenarios, nil-safe
func (e *Evaluation) ScenarioCount() int {
	if e == nil {
		return 0
	}
	return len(e.Scenarios)
}
