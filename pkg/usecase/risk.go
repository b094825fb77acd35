package usecase

import (
	"context"
	"slices"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/cmseval/pkg/domain/model"
	"github.com/secmon-lab/cmseval/pkg/domain/model/config"
	"github.com/secmon-lab/cmseval/pkg/domain/types"
	"github.com/secmon-lab/cmseval/pkg/seed"
	"github.com/secmon-lab/cmseval/pkg/service/ranking"
	"github.com/secmon-lab/cmseval/pkg/service/riskscore"
)

// UnresolvedVendor labels a risk whose vendor reference matches no vendor
const UnresolvedVendor = "unresolved"

// RiskEntry is a register row with its computed rating
type RiskEntry struct {
	model.RiskAssessment
	Level int         `json:"level"`
	Tier  types.Level `json:"tier"`
	// Resolved is false when VendorID is empty or unknown to the store
	Resolved    bool   `json:"resolved"`
	VendorLabel string `json:"vendorLabel"`
}

// VendorRisks lists the migration risks recorded on one vendor
type VendorRisks struct {
	VendorID types.VendorID `json:"vendorId"`
	Name     string         `json:"name"`
	Priority int            `json:"priority"`
	Risks    []string       `json:"risks"`
}

// RiskView is the risk register with its per-tier summary
type RiskView struct {
	Entries     []*RiskEntry      `json:"entries"`
	Summary     riskscore.Summary `json:"summary"`
	VendorRisks []*VendorRisks    `json:"vendorRisks"`
}

// ScenarioView is a migration scenario with its recommended vendor resolved
type ScenarioView struct {
	model.MigrationScenario
	Vendor   *model.Vendor `json:"vendorRecord,omitempty"`
	Resolved bool          `json:"resolved"`
}

type RiskUseCase struct {
	vendors    *VendorUseCase
	evaluation *config.Evaluation
}

func NewRiskUseCase(vendors *VendorUseCase, evaluation *config.Evaluation) *RiskUseCase {
	return &RiskUseCase{
		vendors:    vendors,
		evaluation: evaluation,
	}
}

// Assessments returns the built-in risks followed by configured ones
func (uc *RiskUseCase) Assessments() ([]model.RiskAssessment, error) {
	ds, err := seed.Load()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load seed risks")
	}
	risks := ds.Risks
	if uc.evaluation != nil {
		risks = append(risks, uc.evaluation.Risks...)
	}
	return risks, nil
}

// Register rates every assessment and resolves its vendor. A non-empty
// vendorID keeps only that vendor's risks. The summary always covers the
// returned entries.
func (uc *RiskUseCase) Register(ctx context.Context, vendorID types.VendorID) (*RiskView, error) {
	assessments, err := uc.Assessments()
	if err != nil {
		return nil, err
	}
	vendors := uc.vendors.List(ctx)

	view := &RiskView{
		Entries: make([]*RiskEntry, 0, len(assessments)),
	}

	kept := make([]model.RiskAssessment, 0, len(assessments))
	for _, r := range assessments {
		if vendorID != "" && r.VendorID != vendorID {
			continue
		}
		kept = append(kept, r)

		level, tier := riskscore.Assess(r)
		entry := &RiskEntry{
			RiskAssessment: r,
			Level:          level,
			Tier:           tier,
			VendorLabel:    UnresolvedVendor,
		}
		if r.VendorID != "" {
			if v, ok := model.FindVendor(vendors, r.VendorID); ok {
				entry.Resolved = true
				entry.VendorLabel = v.Name
			}
		}
		view.Entries = append(view.Entries, entry)
	}
	view.Summary = riskscore.Summarize(kept)

	var subjects []*model.Vendor
	if vendorID != "" {
		if v, ok := model.FindVendor(vendors, vendorID); ok {
			subjects = []*model.Vendor{v}
		}
	} else {
		subjects = ranking.TopN(vendors, TopChoiceCount)
	}
	view.VendorRisks = make([]*VendorRisks, 0, len(subjects))
	for _, v := range subjects {
		view.VendorRisks = append(view.VendorRisks, &VendorRisks{
			VendorID: v.ID,
			Name:     v.Name,
			Priority: v.Priority,
			Risks:    slices.Clone(v.Migration.Risks),
		})
	}

	return view, nil
}

// Scenarios returns the built-in scenarios followed by configured ones, each
// with its recommended vendor looked up by name
func (uc *RiskUseCase) Scenarios(ctx context.Context) ([]*ScenarioView, error) {
	ds, err := seed.Load()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load seed scenarios")
	}
	scenarios := ds.Scenarios
	if uc.evaluation != nil {
		scenarios = append(scenarios, uc.evaluation.Scenarios...)
	}

	vendors := uc.vendors.List(ctx)
	views := make([]*ScenarioView, 0, len(scenarios))
	for _, s := range scenarios {
		view := &ScenarioView{MigrationScenario: s}
		if v, ok := model.FindVendorByName(vendors, s.BestVendor); ok {
			view.Vendor = v
			view.Resolved = true
		}
		views = append(views, view)
	}
	return views, nil
}
