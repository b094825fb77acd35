// Package riskscore rates migration risks on a likelihood × impact matrix.
package riskscore

import (
	"github.com/secmon-lab/cmseval/pkg/domain/model"
	"github.com/secmon-lab/cmseval/pkg/domain/types"
)

// MaxLevel is the highest attainable risk level (High × High)
const MaxLevel = 9

// Level returns likelihood × impact. Each side scores 1..3; unknown values
// score 1, so the result is one of 1, 2, 3, 4, 6 or 9.
func Level(likelihood, impact types.Level) int {
	return likelihood.Score() * impact.Score()
}

// TierOf classifies a risk level: up to 2 is Low, up to 4 is Medium,
// anything higher is High.
func TierOf(level int) types.Level {
	switch {
	case level <= 2:
		return types.LevelLow
	case level <= 4:
		return types.LevelMedium
	default:
		return types.LevelHigh
	}
}

// Assess returns the level and tier of one assessment
func Assess(r model.RiskAssessment) (int, types.Level) {
	level := Level(r.Likelihood, r.Impact)
	return level, TierOf(level)
}

// Summary counts assessments per tier
type Summary struct {
	Total  int `json:"total"`
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// Count returns the number of assessments in tier
func (s Summary) Count(tier types.Level) int {
	switch tier {
	case types.LevelHigh:
		return s.High
	case types.LevelMedium:
		return s.Medium
	case types.LevelLow:
		return s.Low
	default:
		return 0
	}
}

// Summarize counts assessments per tier
func Summarize(assessments []model.RiskAssessment) Summary {
	var s Summary
	for _, r := range assessments {
		_, tier := Assess(r)
		switch tier {
		case types.LevelHigh:
			s.High++
		case types.LevelMedium:
			s.Medium++
		default:
			s.Low++
		}
		s.Total++
	}
	return s
}
