package riskscore_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/cmseval/pkg/domain/model"
	"github.com/secmon-lab/cmseval/pkg/domain/types"
	"github.com/secmon-lab/cmseval/pkg/seed"
	"github.com/secmon-lab/cmseval/pkg/service/riskscore"
)

func TestLevelAndTier(t *testing.T) {
	tests := []struct {
		name       string
		likelihood types.Level
		impact     types.Level
		wantLevel  int
		wantTier   types.Level
	}{
		{"high high", types.LevelHigh, types.LevelHigh, 9, types.LevelHigh},
		{"low low", types.LevelLow, types.LevelLow, 1, types.LevelLow},
		{"medium medium", types.LevelMedium, types.LevelMedium, 4, types.LevelMedium},
		{"low medium", types.LevelLow, types.LevelMedium, 2, types.LevelLow},
		{"low high", types.LevelLow, types.LevelHigh, 3, types.LevelMedium},
		{"medium high", types.LevelMedium, types.LevelHigh, 6, types.LevelHigh},
		{"unknown scores as low", types.Level("Severe"), types.LevelHigh, 3, types.LevelMedium},
		{"empty scores as low", "", "", 1, types.LevelLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level := riskscore.Level(tt.likelihood, tt.impact)
			gt.Value(t, level).Equal(tt.wantLevel)
			gt.Value(t, riskscore.TierOf(level)).Equal(tt.wantTier)
		})
	}
}

func TestLevel_IsSymmetricAndBounded(t *testing.T) {
	allowed := map[int]bool{1: true, 2: true, 3: true, 4: true, 6: true, 9: true}
	for _, l := range types.AllLevels() {
		for _, i := range types.AllLevels() {
			level := riskscore.Level(l, i)
			gt.Bool(t, allowed[level]).True()
			gt.Value(t, riskscore.Level(i, l)).Equal(level)
			gt.Bool(t, level <= riskscore.MaxLevel).True()
		}
	}
}

func TestSummarize(t *testing.T) {
	ds, err := seed.Load()
	gt.NoError(t, err).Required()

	s := riskscore.Summarize(ds.Risks)
	gt.Value(t, s).Equal(riskscore.Summary{Total: 6, High: 2, Medium: 4, Low: 0})
	gt.Value(t, s.Count(types.LevelHigh)).Equal(2)
	gt.Value(t, s.Count(types.Level("x"))).Equal(0)

	t.Run("empty", func(t *testing.T) {
		gt.Value(t, riskscore.Summarize(nil)).Equal(riskscore.Summary{})
	})

	t.Run("low tier", func(t *testing.T) {
		s := riskscore.Summarize([]model.RiskAssessment{
			{Risk: "r", Likelihood: types.LevelLow, Impact: types.LevelMedium},
		})
		gt.Value(t, s.Low).Equal(1)
	})
}
