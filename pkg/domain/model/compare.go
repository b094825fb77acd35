package model

import (
	"strconv"
	"strings"

	"github.com/secmon-lab/cmseval/pkg/domain/types"
)

// FieldKind tells how a comparison value should be read and rendered
type FieldKind string

const (
	FieldKindText   FieldKind = "text"
	FieldKindNumber FieldKind = "number"
	FieldKindScore  FieldKind = "score"
	FieldKindBool   FieldKind = "boolean"
	FieldKindList   FieldKind = "list"
)

// FieldValue is a typed cell of the comparison matrix. Exactly one of the
// value fields is meaningful, selected by Kind.
type FieldValue struct {
	Kind   FieldKind `json:"kind"`
	Text   string    `json:"text,omitempty"`
	Number int       `json:"number"`
	Bool   bool      `json:"bool"`
	List   []string  `json:"list,omitempty"`
}

// String renders the value as plain text
func (f FieldValue) String() string {
	switch f.Kind {
	case FieldKindNumber:
		return strconv.Itoa(f.Number)
	case FieldKindScore:
		return strconv.Itoa(f.Number) + "/5"
	case FieldKindBool:
		if f.Bool {
			return "Yes"
		}
		return "No"
	case FieldKindList:
		return strings.Join(f.List, "; ")
	default:
		return f.Text
	}
}

// CompareField describes one row of the side-by-side comparison
type CompareField struct {
	ID      string
	Section string
	Label   string
	Kind    FieldKind
	get     func(v *Vendor) FieldValue
}

// Value reads the field from a vendor
func (f CompareField) Value(v *Vendor) FieldValue {
	return f.get(v)
}

func textField(section, id, label string, get func(v *Vendor) string) CompareField {
	return CompareField{ID: id, Section: section, Label: label, Kind: FieldKindText, get: func(v *Vendor) FieldValue {
		return FieldValue{Kind: FieldKindText, Text: get(v)}
	}}
}

func numberField(section, id, label string, get func(v *Vendor) int) CompareField {
	return CompareField{ID: id, Section: section, Label: label, Kind: FieldKindNumber, get: func(v *Vendor) FieldValue {
		return FieldValue{Kind: FieldKindNumber, Number: get(v)}
	}}
}

func scoreField(section, id, label string, get func(v *Vendor) int) CompareField {
	return CompareField{ID: id, Section: section, Label: label, Kind: FieldKindScore, get: func(v *Vendor) FieldValue {
		return FieldValue{Kind: FieldKindScore, Number: get(v)}
	}}
}

func boolField(section, id, label string, get func(v *Vendor) bool) CompareField {
	return CompareField{ID: id, Section: section, Label: label, Kind: FieldKindBool, get: func(v *Vendor) FieldValue {
		return FieldValue{Kind: FieldKindBool, Bool: get(v)}
	}}
}

func costField(section, id, label string, get func(v *Vendor) types.CostTier) CompareField {
	return textField(section, id, label, func(v *Vendor) string { return get(v).String() })
}

func listField(section, id, label string, get func(v *Vendor) []string) CompareField {
	return CompareField{ID: id, Section: section, Label: label, Kind: FieldKindList, get: func(v *Vendor) FieldValue {
		return FieldValue{Kind: FieldKindList, List: append([]string(nil), get(v)...)}
	}}
}

// Comparison sections, in display order
const (
	SectionOverview     = "overview"
	SectionFeatures     = "features"
	SectionCapabilities = "capabilities"
	SectionMigration    = "migration"
)

var compareFields = []CompareField{
	numberField(SectionOverview, "priority", "Priority Ranking", func(v *Vendor) int { return v.Priority }),
	textField(SectionOverview, "type", "Type", func(v *Vendor) string { return v.Type }),
	textField(SectionOverview, "hosting", "Hosting", func(v *Vendor) string { return v.Hosting }),
	textField(SectionOverview, "apiModel", "API Model", func(v *Vendor) string { return v.APIModel }),
	numberField(SectionOverview, "totalScore", "Overall Score", func(v *Vendor) int { return v.TotalScore }),

	scoreField(SectionFeatures, "features.editorUx", "Editor UX", func(v *Vendor) int { return v.Features.EditorUx }),
	scoreField(SectionFeatures, "features.visualEditing", "Visual Editing", func(v *Vendor) int { return v.Features.VisualEditing }),
	scoreField(SectionFeatures, "features.previewSpeed", "Preview Speed", func(v *Vendor) int { return v.Features.PreviewSpeed }),
	scoreField(SectionFeatures, "features.modelingFlex", "Modeling Flexibility", func(v *Vendor) int { return v.Features.ModelingFlex }),
	scoreField(SectionFeatures, "features.apiPower", "API Power", func(v *Vendor) int { return v.Features.APIPower }),
	scoreField(SectionFeatures, "features.rolesRbac", "Roles & RBAC", func(v *Vendor) int { return v.Features.RolesRbac }),
	scoreField(SectionFeatures, "features.sso", "SSO", func(v *Vendor) int { return v.Features.SSO }),
	scoreField(SectionFeatures, "features.compliance", "Compliance", func(v *Vendor) int { return v.Features.Compliance }),
	scoreField(SectionFeatures, "features.localization", "Localization", func(v *Vendor) int { return v.Features.Localization }),
	scoreField(SectionFeatures, "features.releasesScheduling", "Releases & Scheduling", func(v *Vendor) int { return v.Features.ReleasesScheduling }),
	scoreField(SectionFeatures, "features.seoTooling", "SEO Tooling", func(v *Vendor) int { return v.Features.SEOTooling }),
	scoreField(SectionFeatures, "features.perfCdn", "Performance & CDN", func(v *Vendor) int { return v.Features.PerfCdn }),
	scoreField(SectionFeatures, "features.extensibility", "Extensibility", func(v *Vendor) int { return v.Features.Extensibility }),

	boolField(SectionCapabilities, "metadata.soc2", "SOC 2 Compliant", func(v *Vendor) bool { return v.Metadata.SOC2 }),
	boolField(SectionCapabilities, "metadata.ssoAvailable", "SSO Available", func(v *Vendor) bool { return v.Metadata.SSOAvailable }),
	boolField(SectionCapabilities, "metadata.livePreview", "Live Preview", func(v *Vendor) bool { return v.Metadata.LivePreview }),
	boolField(SectionCapabilities, "metadata.pluginMarket", "Plugin Marketplace", func(v *Vendor) bool { return v.Metadata.PluginMarket }),

	textField(SectionMigration, "migration.effort", "Migration Effort", func(v *Vendor) string { return v.Migration.Effort.String() }),
	numberField(SectionMigration, "migration.timeWeeks", "Migration Time (weeks)", func(v *Vendor) int { return v.Migration.TimeWeeks }),
	textField(SectionMigration, "migration.complexity", "Complexity", func(v *Vendor) string { return v.Migration.Complexity }),
	listField(SectionMigration, "migration.risks", "Migration Risks", func(v *Vendor) []string { return v.Migration.Risks }),
	costField(SectionMigration, "cost.licenseSaas", "License / SaaS", func(v *Vendor) types.CostTier { return v.Cost.LicenseSaas }),
	costField(SectionMigration, "cost.hosting", "Hosting Cost", func(v *Vendor) types.CostTier { return v.Cost.Hosting }),
	costField(SectionMigration, "cost.pluginsApps", "Plugins / Apps", func(v *Vendor) types.CostTier { return v.Cost.PluginsApps }),
	costField(SectionMigration, "cost.opsTime", "Ops Time", func(v *Vendor) types.CostTier { return v.Cost.OpsTime }),
	costField(SectionMigration, "cost.estimatedTotal", "Estimated Total Cost", func(v *Vendor) types.CostTier { return v.Cost.EstimatedTotal }),
}

// CompareFields returns the comparison rows in display order
func CompareFields() []CompareField {
	return append([]CompareField(nil), compareFields...)
}

// LookupCompareField returns the descriptor with the given ID
func LookupCompareField(id string) (CompareField, bool) {
	for _, f := range compareFields {
		if f.ID == id {
			return f, true
		}
	}
	return CompareField{}, false
}
