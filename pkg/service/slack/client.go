package slack

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/m-mizutani/goerr/v2"
	"github.com/slack-go/slack"
)

// maxSectionBytes keeps a section block under Slack's 3000 character limit
const maxSectionBytes = 2900

// client implements Service over an incoming webhook
type client struct {
	webhookURL string
	channel    string
	httpClient *http.Client
}

// Option is a functional option for client configuration
type Option func(*client)

// WithChannel overrides the webhook's default channel
func WithChannel(channel string) Option {
	return func(c *client) {
		c.channel = channel
	}
}

// WithHTTPClient sets the HTTP client used to post messages
func WithHTTPClient(hc *http.Client) Option {
	return func(c *client) {
		c.httpClient = hc
	}
}

// New creates a Slack notifier posting to the incoming webhook URL
func New(webhookURL string, opts ...Option) (Service, error) {
	if webhookURL == "" {
		return nil, goerr.New("Slack webhook URL is required")
	}

	c := &client{
		webhookURL: webhookURL,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// NotifyExport posts the export summary
func (c *client) NotifyExport(ctx context.Context, summary *ExportSummary) error {
	msg := buildExportMessage(summary)
	msg.Channel = c.channel

	if err := slack.PostWebhookCustomHTTPContext(ctx, c.webhookURL, c.httpClient, msg); err != nil {
		return goerr.Wrap(err, "failed to post export notification")
	}
	return nil
}

func buildExportMessage(summary *ExportSummary) *slack.WebhookMessage {
	var ranking strings.Builder
	for i, choice := range summary.TopChoices {
		fmt.Fprintf(&ranking, "%d. *%s* (%d/100)\n", i+1, choice.Name, choice.Score)
	}
	if ranking.Len() == 0 {
		ranking.WriteString("_no vendors_")
	}

	stats := fmt.Sprintf("*Vendors:* %d   *Average score:* %d   *High risks:* %d",
		summary.TotalVendors, summary.AvgScore, summary.HighRisks)

	destinations := make([]string, 0, len(summary.Destinations))
	for _, d := range summary.Destinations {
		destinations = append(destinations, "`"+d+"`")
	}

	blocks := []slack.Block{
		slack.NewHeaderBlock(slack.NewTextBlockObject(slack.PlainTextType, "CMS evaluation exported", false, false)),
		slack.NewSectionBlock(slack.NewTextBlockObject(slack.MarkdownType, stats, false, false), nil, nil),
		slack.NewSectionBlock(slack.NewTextBlockObject(slack.MarkdownType, truncateToMaxBytes(ranking.String(), maxSectionBytes), false, false), nil, nil),
	}
	if len(destinations) > 0 {
		blocks = append(blocks, slack.NewContextBlock("",
			slack.NewTextBlockObject(slack.MarkdownType, truncateToMaxBytes(strings.Join(destinations, " "), maxSectionBytes), false, false)))
	}

	return &slack.WebhookMessage{
		Text:   fmt.Sprintf("CMS evaluation exported: %d vendors, average score %d", summary.TotalVendors, summary.AvgScore),
		Blocks: &slack.Blocks{BlockSet: blocks},
	}
}

// truncateToMaxBytes cuts s to at most n bytes without splitting a rune
func truncateToMaxBytes(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := n
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
