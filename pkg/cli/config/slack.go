package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/cmseval/pkg/service/slack"
	"github.com/urfave/cli/v3"
)

// Slack holds CLI flags for the export notification webhook
type Slack struct {
	webhookURL string
	channel    string
}

func (x *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-webhook-url",
			Usage:       "Slack incoming webhook URL for export notifications",
			Category:    "Slack",
			Destination: &x.webhookURL,
			Sources:     cli.EnvVars("CMSEVAL_SLACK_WEBHOOK_URL"),
		},
		&cli.StringFlag{
			Name:        "slack-channel",
			Usage:       "Override the webhook's default channel",
			Category:    "Slack",
			Destination: &x.channel,
			Sources:     cli.EnvVars("CMSEVAL_SLACK_CHANNEL"),
		},
	}
}

func (x Slack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("webhook-url.len", len(x.webhookURL)),
		slog.String("channel", x.channel),
	)
}

// IsConfigured checks if a webhook URL is set
func (x *Slack) IsConfigured() bool {
	return x.webhookURL != ""
}

// Configure returns the notifier, or nil when no webhook is configured
func (x *Slack) Configure() (slack.Service, error) {
	if !x.IsConfigured() {
		return nil, nil
	}

	var opts []slack.Option
	if x.channel != "" {
		opts = append(opts, slack.WithChannel(x.channel))
	}
	svc, err := slack.New(x.webhookURL, opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to initialize slack notifier")
	}
	return svc, nil
}
