package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/cmseval/pkg/cli/config"
	"github.com/secmon-lab/cmseval/pkg/service/gcs"
	"github.com/secmon-lab/cmseval/pkg/service/slack"
	"github.com/secmon-lab/cmseval/pkg/usecase"
	"github.com/secmon-lab/cmseval/pkg/utils/errutil"
	"github.com/secmon-lab/cmseval/pkg/utils/logging"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
)

type exportJob struct {
	format      string
	dst         string
	contentType string
	render      func(ctx context.Context) ([]byte, error)
}

func cmdExport() *cli.Command {
	var jsonDst string
	var markdownDst string
	var store storeConfig
	var slackCfg config.Slack

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "json",
			Usage:       "Write the JSON export to a file path or gs://bucket/object",
			Sources:     cli.EnvVars("CMSEVAL_EXPORT_JSON"),
			Destination: &jsonDst,
		},
		&cli.StringFlag{
			Name:        "markdown",
			Aliases:     []string{"md"},
			Usage:       "Write the Markdown report to a file path or gs://bucket/object",
			Sources:     cli.EnvVars("CMSEVAL_EXPORT_MARKDOWN"),
			Destination: &markdownDst,
		},
	}
	flags = append(flags, store.Flags()...)
	flags = append(flags, slackCfg.Flags()...)

	return &cli.Command{
		Name:    "export",
		Aliases: []string{"e"},
		Usage:   "Export the evaluation as JSON and/or a Markdown report",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if jsonDst == "" && markdownDst == "" {
				return goerr.Wrap(config.ErrMissingOption, "at least one of --json or --markdown is required")
			}

			notifier, err := slackCfg.Configure()
			if err != nil {
				return err
			}

			uc, closer, err := store.open(ctx)
			if err != nil {
				return err
			}
			defer closer()

			var jobs []exportJob
			if jsonDst != "" {
				jobs = append(jobs, exportJob{
					format:      usecase.FormatJSON,
					dst:         jsonDst,
					contentType: "application/json",
					render:      uc.Exchange.ExportJSON,
				})
			}
			if markdownDst != "" {
				jobs = append(jobs, exportJob{
					format:      usecase.FormatMarkdown,
					dst:         markdownDst,
					contentType: "text/markdown; charset=utf-8",
					render:      uc.Exchange.ExportMarkdown,
				})
			}

			if err := runExports(ctx, jobs); err != nil {
				return err
			}

			if notifier != nil {
				if err := notifyExport(ctx, uc, notifier, jobs); err != nil {
					// the export itself is complete
					_ = errutil.Handle(ctx, err, "Failed to send export notification")
				}
			}
			return nil
		},
	}
}

// runExports renders and writes every job concurrently. A Cloud Storage
// client is opened only when a destination needs one.
func runExports(ctx context.Context, jobs []exportJob) error {
	var client *gcs.Client
	for _, job := range jobs {
		if gcs.IsURL(job.dst) {
			c, err := gcs.New(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize cloud storage")
			}
			defer func() {
				if err := c.Close(); err != nil {
					logging.Default().Error("failed to close cloud storage client", "error", err.Error())
				}
			}()
			client = c
			break
		}
	}

	eg, ctx := errgroup.WithContext(ctx)
	for _, job := range jobs {
		eg.Go(func() error {
			data, err := job.render(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to render export", goerr.V("format", job.format))
			}
			if err := writeDestination(ctx, client, job.dst, job.contentType, data); err != nil {
				return err
			}
			logging.From(ctx).Info("Export written", "format", job.format, "dst", job.dst, "bytes", len(data))
			return nil
		})
	}
	return eg.Wait()
}

func writeDestination(ctx context.Context, client *gcs.Client, dst, contentType string, data []byte) error {
	if gcs.IsURL(dst) {
		obj, err := gcs.ParseURL(dst)
		if err != nil {
			return err
		}
		return client.Upload(ctx, obj, contentType, data)
	}

	if dir := filepath.Dir(dst); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return goerr.Wrap(err, "failed to create export directory", goerr.V("dir", dir))
		}
	}
	// #nosec G306 - exports are meant to be shared
	if err := os.WriteFile(dst, data, 0644); err != nil {
		return goerr.Wrap(err, "failed to write export", goerr.V("path", dst))
	}
	return nil
}

func notifyExport(ctx context.Context, uc *usecase.UseCases, notifier slack.Service, jobs []exportJob) error {
	overview, err := uc.Analysis.Overview(ctx)
	if err != nil {
		return err
	}
	risks, err := uc.Risk.Register(ctx, "")
	if err != nil {
		return err
	}

	summary := &slack.ExportSummary{
		TotalVendors: overview.TotalVendors,
		HighRisks:    risks.Summary.High,
	}
	envelope, err := uc.Exchange.Envelope(ctx)
	if err != nil {
		return err
	}
	summary.AvgScore = envelope.Metadata.AvgScore
	for _, v := range overview.TopChoices {
		summary.TopChoices = append(summary.TopChoices, slack.Choice{Name: v.Name, Score: v.TotalScore})
	}
	for _, job := range jobs {
		summary.Destinations = append(summary.Destinations, fmt.Sprintf("%s: %s", job.format, job.dst))
	}

	return notifier.NotifyExport(ctx, summary)
}
