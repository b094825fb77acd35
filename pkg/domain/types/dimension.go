package types

// ScoreDimension names one of the nine weighted scoring dimensions
type ScoreDimension string

const (
	DimensionEditorUx               ScoreDimension = "editorUx"
	DimensionVisualEditingPreview   ScoreDimension = "visualEditingPreview"
	DimensionModelingFlexibility    ScoreDimension = "modelingFlexibility"
	DimensionDeveloperExperience    ScoreDimension = "developerExperience"
	DimensionAPIPower               ScoreDimension = "apiPower"
	DimensionGovernanceSecurity     ScoreDimension = "governanceSecurity"
	DimensionOpsTco                 ScoreDimension = "opsTco"
	DimensionEcosystemIntegrations  ScoreDimension = "ecosystemIntegrations"
	DimensionLocalizationScheduling ScoreDimension = "localizationScheduling"
)

// AllScoreDimensions returns the nine dimensions in weight table order
func AllScoreDimensions() []ScoreDimension {
	return []ScoreDimension{
		DimensionEditorUx,
		DimensionVisualEditingPreview,
		DimensionModelingFlexibility,
		DimensionDeveloperExperience,
		DimensionAPIPower,
		DimensionGovernanceSecurity,
		DimensionOpsTco,
		DimensionEcosystemIntegrations,
		DimensionLocalizationScheduling,
	}
}

// IsValid checks if the dimension is one of the nine known dimensions
func (d ScoreDimension) IsValid() bool {
	for _, known := range AllScoreDimensions() {
		if d == known {
			return true
		}
	}
	return false
}

// String returns the string representation of the dimension
func (d ScoreDimension) String() string {
	return string(d)
}

var dimensionLabels = map[ScoreDimension]string{
	DimensionEditorUx:               "Editor UX",
	DimensionVisualEditingPreview:   "Visual Editing & Preview",
	DimensionModelingFlexibility:    "Modeling Flexibility",
	DimensionDeveloperExperience:    "Developer Experience",
	DimensionAPIPower:               "API Power",
	DimensionGovernanceSecurity:     "Governance & Security",
	DimensionOpsTco:                 "Ops & TCO",
	DimensionEcosystemIntegrations:  "Ecosystem & Integrations",
	DimensionLocalizationScheduling: "Localization & Scheduling",
}

// Label returns the human readable name of the dimension
func (d ScoreDimension) Label() string {
	if label, ok := dimensionLabels[d]; ok {
		return label
	}
	return string(d)
}
