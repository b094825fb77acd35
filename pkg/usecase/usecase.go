package usecase

import (
	"time"

	"github.com/secmon-lab/cmseval/pkg/domain/interfaces"
	"github.com/secmon-lab/cmseval/pkg/domain/model/config"
	"github.com/secmon-lab/cmseval/pkg/utils/metrics"
)

type UseCases struct {
	repo       interfaces.SnapshotRepository
	evaluation *config.Evaluation
	metrics    *metrics.Metrics
	now        func() time.Time

	Vendor   *VendorUseCase
	Analysis *AnalysisUseCase
	Risk     *RiskUseCase
	Exchange *ExchangeUseCase
}

type Option func(*UseCases)

// WithEvaluation adds configured risks and scenarios to the built-in ones
func WithEvaluation(cfg *config.Evaluation) Option {
	return func(uc *UseCases) {
		uc.evaluation = cfg
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(uc *UseCases) {
		uc.metrics = m
	}
}

// WithClock replaces time.Now for snapshot and export timestamps
func WithClock(now func() time.Time) Option {
	return func(uc *UseCases) {
		uc.now = now
	}
}

func New(repo interfaces.SnapshotRepository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo: repo,
		now:  time.Now,
	}

	for _, opt := range opts {
		opt(uc)
	}

	uc.Vendor = NewVendorUseCase(repo, uc.metrics, uc.now)
	uc.Analysis = NewAnalysisUseCase(uc.Vendor)
	uc.Risk = NewRiskUseCase(uc.Vendor, uc.evaluation)
	uc.Exchange = NewExchangeUseCase(uc.Vendor, uc.Risk, uc.metrics, uc.now)

	return uc
}
