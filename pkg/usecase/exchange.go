package usecase

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"strings"
	"text/template"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/cmseval/pkg/domain/model"
	"github.com/secmon-lab/cmseval/pkg/domain/types"
	"github.com/secmon-lab/cmseval/pkg/service/ranking"
	"github.com/secmon-lab/cmseval/pkg/service/scoring"
	"github.com/secmon-lab/cmseval/pkg/utils/logging"
	"github.com/secmon-lab/cmseval/pkg/utils/metrics"
)

// Export formats
const (
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
)

//go:embed report/report.md
var reportTmpl string

var reportTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"cell": markdownCell,
	"join": strings.Join,
	"add1": func(i int) int { return i + 1 },
}).Parse(reportTmpl))

// ExchangeUseCase converts the vendor store to and from its export formats
type ExchangeUseCase struct {
	vendors *VendorUseCase
	risks   *RiskUseCase
	metrics *metrics.Metrics
	now     func() time.Time
}

func NewExchangeUseCase(vendors *VendorUseCase, risks *RiskUseCase, m *metrics.Metrics, now func() time.Time) *ExchangeUseCase {
	if now == nil {
		now = time.Now
	}
	return &ExchangeUseCase{
		vendors: vendors,
		risks:   risks,
		metrics: m,
		now:     now,
	}
}

// Envelope wraps the current collection in the export document
func (uc *ExchangeUseCase) Envelope(ctx context.Context) (*model.ExportEnvelope, error) {
	vendors := uc.vendors.List(ctx)

	avg, err := averageOrZero(ranking.AverageScore(vendors))
	if err != nil {
		return nil, err
	}

	top := ranking.TopN(vendors, TopChoiceCount)
	topChoices := make([]string, 0, len(top))
	for _, v := range top {
		topChoices = append(topChoices, v.Name)
	}

	return &model.ExportEnvelope{
		Vendors:  vendors,
		Version:  model.DataVersion,
		Exported: uc.now().UTC(),
		Metadata: model.ExportMetadata{
			TotalVendors: len(vendors),
			TopChoices:   topChoices,
			AvgScore:     avg,
		},
	}, nil
}

// ExportJSON renders the export document as indented JSON
func (uc *ExchangeUseCase) ExportJSON(ctx context.Context) ([]byte, error) {
	envelope, err := uc.Envelope(ctx)
	if err != nil {
		return nil, err
	}

	data, err := json.MarshalIndent(envelope, "", "  ")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to encode export")
	}

	uc.metrics.IncExport(FormatJSON)
	return data, nil
}

type importDocument struct {
	Vendors []*model.Vendor `json:"vendors"`
	Version string          `json:"version"`
}

// ImportJSON replaces the collection with the vendors of an export document.
// Malformed documents, a missing vendors array, another data version,
// empty or duplicate vendor IDs are rejected and leave the store untouched.
// Totals are recomputed from the weighted scores. Returns the number of
// imported vendors.
func (uc *ExchangeUseCase) ImportJSON(ctx context.Context, data []byte) (int, error) {
	vendors, err := decodeImport(data)
	if err != nil {
		uc.metrics.IncImport(false)
		return 0, err
	}

	recomputeTotals(vendors)
	uc.vendors.replaceAll(ctx, vendors)
	uc.metrics.IncImport(true)

	logging.From(ctx).Info("Vendors imported", "vendors", len(vendors))
	return len(vendors), nil
}

func decodeImport(data []byte) ([]*model.Vendor, error) {
	var doc importDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, goerr.Wrap(ErrInvalidPayload, "import is not valid JSON", goerr.V("error", err.Error()))
	}
	if doc.Vendors == nil {
		return nil, goerr.Wrap(ErrInvalidPayload, "import has no vendors array")
	}
	if doc.Version != model.DataVersion {
		return nil, goerr.Wrap(ErrVersionMismatch, "import version is not supported",
			goerr.V(VersionKey, doc.Version),
			goerr.V("expected", model.DataVersion),
		)
	}

	vendors := compactVendors(doc.Vendors)
	seen := make(map[types.VendorID]struct{}, len(vendors))
	for _, v := range vendors {
		if err := v.ID.Validate(); err != nil {
			return nil, goerr.Wrap(ErrInvalidPayload, "vendor has invalid ID", goerr.V("name", v.Name))
		}
		if _, dup := seen[v.ID]; dup {
			return nil, goerr.Wrap(ErrInvalidPayload, "duplicate vendor ID", goerr.V(VendorIDKey, v.ID))
		}
		seen[v.ID] = struct{}{}
	}
	return vendors, nil
}

type reportScore struct {
	Label   string
	Score   int
	Percent int
}

type reportStep struct {
	Number int
	Name   string
	Week   int
}

type reportVendor struct {
	*model.Vendor
	Scores []reportScore
	Steps  []reportStep
}

type reportData struct {
	Generated    string
	Version      string
	TotalVendors int
	AvgScore     int
	TopChoices   []string
	Ranked       []*model.Vendor
	Vendors      []reportVendor
	Comparison   *Comparison
	Risks        *RiskView
}

// ExportMarkdown renders the evaluation report: ranking by score, one
// section per vendor by priority, the comparison table and the risk register
func (uc *ExchangeUseCase) ExportMarkdown(ctx context.Context) ([]byte, error) {
	envelope, err := uc.Envelope(ctx)
	if err != nil {
		return nil, err
	}
	risks, err := uc.risks.Register(ctx, "")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build risk register")
	}

	byPriority := ranking.Sort(envelope.Vendors, types.SortByPriority, types.SortAsc)
	ids := make([]types.VendorID, 0, len(byPriority))
	sections := make([]reportVendor, 0, len(byPriority))
	for _, v := range byPriority {
		ids = append(ids, v.ID)
		sections = append(sections, buildReportVendor(v))
	}

	comparison := &Comparison{Vendors: []*model.Vendor{}, Rows: []ComparisonRow{}}
	if len(ids) > 0 {
		comparison = buildComparison(envelope.Vendors, ids)
	}

	data := reportData{
		Generated:    envelope.Exported.Format(time.RFC3339),
		Version:      envelope.Version,
		TotalVendors: envelope.Metadata.TotalVendors,
		AvgScore:     envelope.Metadata.AvgScore,
		TopChoices:   envelope.Metadata.TopChoices,
		Ranked:       ranking.Sort(envelope.Vendors, types.SortByTotalScore, types.SortDesc),
		Vendors:      sections,
		Comparison:   comparison,
		Risks:        risks,
	}

	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, data); err != nil {
		return nil, goerr.Wrap(err, "failed to render markdown report")
	}

	uc.metrics.IncExport(FormatMarkdown)
	return buf.Bytes(), nil
}

func buildReportVendor(v *model.Vendor) reportVendor {
	rv := reportVendor{Vendor: v}
	for _, w := range scoring.Weights() {
		rv.Scores = append(rv.Scores, reportScore{
			Label:   w.Dimension.Label(),
			Score:   v.WeightedScores.Get(w.Dimension),
			Percent: w.Percent,
		})
	}
	for i, name := range v.Migration.Steps {
		rv.Steps = append(rv.Steps, reportStep{
			Number: i + 1,
			Name:   name,
			Week:   ranking.StepWeek(i, len(v.Migration.Steps), v.Migration.TimeWeeks),
		})
	}
	return rv
}

var cellReplacer = strings.NewReplacer("|", `\|`, "\r\n", " ", "\n", " ")

// markdownCell makes a value safe inside a table cell
func markdownCell(v any) string {
	var s string
	switch x := v.(type) {
	case string:
		s = x
	case interface{ String() string }:
		s = x.String()
	default:
		b, _ := json.Marshal(x)
		s = string(b)
	}
	return cellReplacer.Replace(s)
}
