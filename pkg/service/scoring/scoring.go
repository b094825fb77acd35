// Package scoring turns a vendor's nine weighted sub-scores into the single
// 0-100 total used for ranking.
package scoring

import (
	"github.com/secmon-lab/cmseval/pkg/domain/model"
	"github.com/secmon-lab/cmseval/pkg/domain/types"
)

const (
	// MinSubScore and MaxSubScore bound every feature and weighted sub-score
	MinSubScore = 0
	MaxSubScore = 5

	// scale maps the maximum weighted sum (5) onto 100
	scale = 20
	// weights are kept in hundredths so sums stay exact
	weightDenominator = 100
)

// Weight is the share of one dimension in the total score
type Weight struct {
	Dimension types.ScoreDimension `json:"dimension"`
	Percent   int                  `json:"percent"`
}

// Fraction returns the weight as a value in [0,1]
func (w Weight) Fraction() float64 {
	return float64(w.Percent) / weightDenominator
}

var weightTable = []Weight{
	{Dimension: types.DimensionEditorUx, Percent: 25},
	{Dimension: types.DimensionVisualEditingPreview, Percent: 15},
	{Dimension: types.DimensionModelingFlexibility, Percent: 15},
	{Dimension: types.DimensionDeveloperExperience, Percent: 10},
	{Dimension: types.DimensionAPIPower, Percent: 5},
	{Dimension: types.DimensionGovernanceSecurity, Percent: 10},
	{Dimension: types.DimensionOpsTco, Percent: 10},
	{Dimension: types.DimensionEcosystemIntegrations, Percent: 5},
	{Dimension: types.DimensionLocalizationScheduling, Percent: 5},
}

// Weights returns the fixed weight table in dimension order
func Weights() []Weight {
	return append([]Weight(nil), weightTable...)
}

// WeightSum returns the sum of all weights in percent. It is always 100.
func WeightSum() int {
	var sum int
	for _, w := range weightTable {
		sum += w.Percent
	}
	return sum
}

// ComputeTotalScore returns the weighted total of a full set of sub-scores
func ComputeTotalScore(scores model.WeightedScores) int {
	return ComputeTotalScoreMap(scores.Map())
}

// ComputeTotalScoreMap returns Σ(score × weight) × 20 rounded half-up.
// A dimension absent from scores contributes nothing. The result is not
// clamped: sub-scores in [0,5] keep it within [0,100].
func ComputeTotalScoreMap(scores map[types.ScoreDimension]int) int {
	var sum int
	for _, w := range weightTable {
		score, ok := scores[w.Dimension]
		if !ok {
			continue
		}
		sum += score * w.Percent
	}
	return roundHalfUp(sum*scale, weightDenominator)
}

// ClampSubScore bounds a candidate sub-score to [0,5]
func ClampSubScore(value int) int {
	return min(max(value, MinSubScore), MaxSubScore)
}

// ClampFeatures bounds every feature score to [0,5]
func ClampFeatures(f model.Features) model.Features {
	return model.Features{
		EditorUx:           ClampSubScore(f.EditorUx),
		VisualEditing:      ClampSubScore(f.VisualEditing),
		PreviewSpeed:       ClampSubScore(f.PreviewSpeed),
		ModelingFlex:       ClampSubScore(f.ModelingFlex),
		APIPower:           ClampSubScore(f.APIPower),
		RolesRbac:          ClampSubScore(f.RolesRbac),
		SSO:                ClampSubScore(f.SSO),
		Compliance:         ClampSubScore(f.Compliance),
		Localization:       ClampSubScore(f.Localization),
		ReleasesScheduling: ClampSubScore(f.ReleasesScheduling),
		SEOTooling:         ClampSubScore(f.SEOTooling),
		PerfCdn:            ClampSubScore(f.PerfCdn),
		Extensibility:      ClampSubScore(f.Extensibility),
	}
}

// ClampWeightedScores bounds every weighted sub-score to [0,5]
func ClampWeightedScores(w model.WeightedScores) model.WeightedScores {
	return model.WeightedScores{
		EditorUx:               ClampSubScore(w.EditorUx),
		VisualEditingPreview:   ClampSubScore(w.VisualEditingPreview),
		ModelingFlexibility:    ClampSubScore(w.ModelingFlexibility),
		DeveloperExperience:    ClampSubScore(w.DeveloperExperience),
		APIPower:               ClampSubScore(w.APIPower),
		GovernanceSecurity:     ClampSubScore(w.GovernanceSecurity),
		OpsTco:                 ClampSubScore(w.OpsTco),
		EcosystemIntegrations:  ClampSubScore(w.EcosystemIntegrations),
		LocalizationScheduling: ClampSubScore(w.LocalizationScheduling),
	}
}

// Rescore clamps the vendor's scores in place and overwrites its total
func Rescore(v *model.Vendor) {
	v.Features = ClampFeatures(v.Features)
	v.WeightedScores = ClampWeightedScores(v.WeightedScores)
	v.TotalScore = ComputeTotalScore(v.WeightedScores)
}

// roundHalfUp returns num/den rounded to the nearest integer, halves toward
// +Inf. den must be positive.
func roundHalfUp(num, den int) int {
	return floorDiv(2*num+den, 2*den)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
