package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/cmseval/pkg/cli/config"
	"github.com/secmon-lab/cmseval/pkg/usecase"
	"github.com/secmon-lab/cmseval/pkg/utils/logging"
	"github.com/secmon-lab/cmseval/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

// storeConfig groups the flags every command needs to open the vendor store
type storeConfig struct {
	repo       config.Repository
	evaluation config.Evaluation
}

func (x *storeConfig) Flags() []cli.Flag {
	flags := x.repo.Flags()
	flags = append(flags, x.evaluation.Flags()...)
	return flags
}

// open connects the snapshot repository and hydrates the store. The caller
// must call the returned closer.
func (x *storeConfig) open(ctx context.Context, opts ...usecase.Option) (*usecase.UseCases, func(), error) {
	evaluation, err := x.evaluation.Configure()
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to load evaluation config")
	}
	if evaluation != nil {
		logging.Default().Info("Evaluation config loaded",
			"risks", evaluation.RiskCount(),
			"scenarios", evaluation.ScenarioCount(),
		)
		opts = append(opts, usecase.WithEvaluation(evaluation))
	}

	repo, err := x.repo.Configure(ctx)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to initialize repository")
	}
	closer := func() { safe.Close(ctx, repo) }

	uc := usecase.New(repo, opts...)
	source, err := uc.Vendor.Hydrate(ctx)
	if err != nil {
		closer()
		return nil, nil, goerr.Wrap(err, "failed to hydrate vendor store")
	}
	logging.Default().Info("Vendor store hydrated", "source", source, "vendors", uc.Vendor.Count(ctx))

	return uc, closer, nil
}
