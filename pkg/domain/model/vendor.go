package model

import (
	"slices"

	"github.com/secmon-lab/cmseval/pkg/domain/types"
)

// Vendor is one evaluated CMS product
type Vendor struct {
	ID             types.VendorID `json:"id"`
	Name           string         `json:"name"`
	Type           string         `json:"type"`
	Hosting        string         `json:"hosting"`
	APIModel       string         `json:"apiModel"`
	Priority       int            `json:"priority"`
	Features       Features       `json:"features"`
	WeightedScores WeightedScores `json:"weightedScores"`
	TotalScore     int            `json:"totalScore"`
	Cost           Cost           `json:"cost"`
	Migration      Migration      `json:"migration"`
	Metadata       Metadata       `json:"metadata"`
}

// Features holds the thirteen descriptive feature scores (0-5). They are for
// display only and do not feed the total score.
type Features struct {
	EditorUx           int `json:"editorUx"`
	VisualEditing      int `json:"visualEditing"`
	PreviewSpeed       int `json:"previewSpeed"`
	ModelingFlex       int `json:"modelingFlex"`
	APIPower           int `json:"apiPower"`
	RolesRbac          int `json:"rolesRbac"`
	SSO                int `json:"sso"`
	Compliance         int `json:"compliance"`
	Localization       int `json:"localization"`
	ReleasesScheduling int `json:"releasesScheduling"`
	SEOTooling         int `json:"seoTooling"`
	PerfCdn            int `json:"perfCdn"`
	Extensibility      int `json:"extensibility"`
}

// WeightedScores holds the nine sub-scores (0-5) that feed the total score
type WeightedScores struct {
	EditorUx               int `json:"editorUx"`
	VisualEditingPreview   int `json:"visualEditingPreview"`
	ModelingFlexibility    int `json:"modelingFlexibility"`
	DeveloperExperience    int `json:"developerExperience"`
	APIPower               int `json:"apiPower"`
	GovernanceSecurity     int `json:"governanceSecurity"`
	OpsTco                 int `json:"opsTco"`
	EcosystemIntegrations  int `json:"ecosystemIntegrations"`
	LocalizationScheduling int `json:"localizationScheduling"`
}

// Map returns the sub-scores keyed by dimension
func (w WeightedScores) Map() map[types.ScoreDimension]int {
	return map[types.ScoreDimension]int{
		types.DimensionEditorUx:               w.EditorUx,
		types.DimensionVisualEditingPreview:   w.VisualEditingPreview,
		types.DimensionModelingFlexibility:    w.ModelingFlexibility,
		types.DimensionDeveloperExperience:    w.DeveloperExperience,
		types.DimensionAPIPower:               w.APIPower,
		types.DimensionGovernanceSecurity:     w.GovernanceSecurity,
		types.DimensionOpsTco:                 w.OpsTco,
		types.DimensionEcosystemIntegrations:  w.EcosystemIntegrations,
		types.DimensionLocalizationScheduling: w.LocalizationScheduling,
	}
}

// Get returns the sub-score of one dimension; unknown dimensions return 0
func (w WeightedScores) Get(d types.ScoreDimension) int {
	return w.Map()[d]
}

// Cost holds the qualitative cost tiers of a vendor
type Cost struct {
	LicenseSaas    types.CostTier `json:"licenseSaas"`
	Hosting        types.CostTier `json:"hosting"`
	PluginsApps    types.CostTier `json:"pluginsApps"`
	OpsTime        types.CostTier `json:"opsTime"`
	EstimatedTotal types.CostTier `json:"estimatedTotal"`
}

// Migration describes the estimated migration onto a vendor
type Migration struct {
	Effort     types.Level `json:"effort"`
	TimeWeeks  int         `json:"timeWeeks"`
	Complexity string      `json:"complexity"`
	Risks      []string    `json:"risks"`
	Steps      []string    `json:"steps"`
}

// Metadata holds capability flags and free-text notes
type Metadata struct {
	SOC2         bool     `json:"soc2"`
	SSOAvailable bool     `json:"ssoAvailable"`
	LivePreview  bool     `json:"livePreview"`
	PluginMarket bool     `json:"pluginMarket"`
	Notes        string   `json:"notes"`
	BestFor      string   `json:"bestFor"`
	Highlights   []string `json:"highlights"`
}

// IsPriorityChoice reports whether the vendor is one of the top three by
// manual priority.
func (v *Vendor) IsPriorityChoice() bool {
	return v.Priority <= 3
}

// Clone returns a deep copy of the vendor
func (v *Vendor) Clone() *Vendor {
	if v == nil {
		return nil
	}
	copied := *v
	copied.Migration.Risks = slices.Clone(v.Migration.Risks)
	copied.Migration.Steps = slices.Clone(v.Migration.Steps)
	copied.Metadata.Highlights = slices.Clone(v.Metadata.Highlights)
	return &copied
}

// CloneVendors deep copies a vendor list, preserving order
func CloneVendors(vendors []*Vendor) []*Vendor {
	copied := make([]*Vendor, 0, len(vendors))
	for _, v := range vendors {
		copied = append(copied, v.Clone())
	}
	return copied
}

// NewDraftVendor returns a vendor with mid-range defaults, as created by the
// "add vendor" action. The total score is left for the caller to compute.
func NewDraftVendor(id types.VendorID, priority int) *Vendor {
	return &Vendor{
		ID:       id,
		Name:     "New CMS",
		Type:     "Headless SaaS",
		Hosting:  "SaaS",
		APIModel: "REST/GraphQL",
		Priority: priority,
		Features: Features{
			EditorUx:           3,
			VisualEditing:      3,
			PreviewSpeed:       3,
			ModelingFlex:       3,
			APIPower:           3,
			RolesRbac:          3,
			SSO:                3,
			Compliance:         3,
			Localization:       3,
			ReleasesScheduling: 3,
			SEOTooling:         3,
			PerfCdn:            3,
			Extensibility:      3,
		},
		WeightedScores: WeightedScores{
			EditorUx:               3,
			VisualEditingPreview:   3,
			ModelingFlexibility:    3,
			DeveloperExperience:    3,
			APIPower:               3,
			GovernanceSecurity:     3,
			OpsTco:                 3,
			EcosystemIntegrations:  3,
			LocalizationScheduling: 3,
		},
		Cost: Cost{
			LicenseSaas:    types.CostMid,
			Hosting:        types.CostMid,
			PluginsApps:    types.CostMid,
			OpsTime:        types.CostMid,
			EstimatedTotal: types.CostMid,
		},
		Migration: Migration{
			Effort:     types.LevelMedium,
			TimeWeeks:  6,
			Complexity: "Standard setup and configuration",
			Risks:      []string{"Integration complexity"},
			Steps:      []string{"Planning", "Setup", "Migration", "Testing", "Launch"},
		},
		Metadata: Metadata{
			Notes:      "New CMS option for evaluation",
			BestFor:    "To be determined",
			Highlights: []string{"Feature 1", "Feature 2"},
		},
	}
}

// FindVendor returns the vendor with the given ID
func FindVendor(vendors []*Vendor, id types.VendorID) (*Vendor, bool) {
	for _, v := range vendors {
		if v.ID == id {
			return v, true
		}
	}
	return nil, false
}

// FindVendorByName returns the first vendor whose name matches exactly
func FindVendorByName(vendors []*Vendor, name string) (*Vendor, bool) {
	for _, v := range vendors {
		if v.Name == name {
			return v, true
		}
	}
	return nil, false
}
