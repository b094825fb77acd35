package ranking

import (
	"math"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/cmseval/pkg/domain/model"
)

// ErrEmptyInput is returned by aggregates over an empty vendor set
var ErrEmptyInput = goerr.New("empty vendor set")

// Band is one score range of the distribution, bounds inclusive. The
// highest and lowest bands are open-ended.
type Band struct {
	Label string `json:"label"`
	Min   int    `json:"min"`
	Max   int    `json:"max"`
	Count int    `json:"count"`
}

// Contains reports whether score falls in [Min, Max]
func (b Band) Contains(score int) bool {
	return score >= b.Min && score <= b.Max
}

var bands = []Band{
	{Label: "Excellent", Min: 90, Max: math.MaxInt},
	{Label: "Very Good", Min: 80, Max: 89},
	{Label: "Good", Min: 70, Max: 79},
	{Label: "Fair", Min: 60, Max: 69},
	{Label: "Needs Improvement", Min: math.MinInt, Max: 59},
}

// ScoreDistribution counts vendors per score band, highest band first. The
// bands cover every integer, so the counts always sum to len(vendors).
func ScoreDistribution(vendors []*model.Vendor) []Band {
	dist := make([]Band, len(bands))
	copy(dist, bands)
	for _, v := range vendors {
		for i := range dist {
			if dist[i].Contains(v.TotalScore) {
				dist[i].Count++
				break
			}
		}
	}
	return dist
}

// AverageScore returns the mean total score rounded half-up
func AverageScore(vendors []*model.Vendor) (int, error) {
	return average(vendors, func(v *model.Vendor) int { return v.TotalScore })
}

// AverageMigrationWeeks returns the mean migration duration rounded half-up
func AverageMigrationWeeks(vendors []*model.Vendor) (int, error) {
	return average(vendors, func(v *model.Vendor) int { return v.Migration.TimeWeeks })
}

func average(vendors []*model.Vendor, value func(*model.Vendor) int) (int, error) {
	if len(vendors) == 0 {
		return 0, goerr.Wrap(ErrEmptyInput, "cannot average")
	}
	var sum int
	for _, v := range vendors {
		sum += value(v)
	}
	return roundHalfUp(sum, len(vendors)), nil
}

func roundHalfUp(num, den int) int {
	n, d := 2*num+den, 2*den
	q := n / d
	if n%d != 0 && n < 0 {
		q--
	}
	return q
}
