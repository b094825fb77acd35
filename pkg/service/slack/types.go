package slack

import "context"

// Service posts evaluation updates to Slack
type Service interface {
	NotifyExport(ctx context.Context, summary *ExportSummary) error
}

// Choice is one ranked vendor in a notification
type Choice struct {
	Name  string
	Score int
}

// ExportSummary describes a finished export
type ExportSummary struct {
	Destinations []string
	TotalVendors int
	AvgScore     int
	TopChoices   []Choice
	HighRisks    int
}
