package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/cmseval/pkg/cli/config"
	"github.com/secmon-lab/cmseval/pkg/domain/types"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "evaluation.toml")
	gt.NoError(t, os.WriteFile(path, []byte(content), 0600)).Required()
	return path
}

func TestLoadEvaluation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name: "valid configuration",
			content: `
[[risk]]
risk = "Editor training backlog"
vendor_id = "sanity"
likelihood = "High"
impact = "Medium"
mitigation = "Schedule onboarding sessions"

[[risk]]
risk = "Budget freeze"
vendor = "All vendors"
likelihood = "Low"
impact = "High"
mitigation = "Secure budget early"

[[scenario]]
id = "docs-portal"
name = "Documentation portal"
description = "Versioned developer docs"
best_cms = "Strapi"
rationale = "Self-hosted and code-first"
`,
		},
		{
			name:    "empty file",
			content: "",
		},
		{
			name: "invalid level name",
			content: `
[[risk]]
risk = "Unclear"
likelihood = "Critical"
impact = "High"
`,
			wantErr: config.ErrInvalidConfig,
		},
		{
			name: "missing risk description",
			content: `
[[risk]]
likelihood = "Low"
impact = "Low"
`,
			wantErr: config.ErrInvalidConfig,
		},
		{
			name: "unknown vendor ID",
			content: `
[[risk]]
risk = "Lock-in"
vendor_id = "drupal"
likelihood = "Low"
impact = "Low"
`,
			wantErr: config.ErrUnknownVendor,
		},
		{
			name: "scenario recommending unknown vendor",
			content: `
[[scenario]]
id = "intranet"
name = "Intranet"
best_cms = "Drupal"
`,
			wantErr: config.ErrUnknownVendor,
		},
		{
			name: "duplicate scenario ID in file",
			content: `
[[scenario]]
id = "intranet"
name = "Intranet"
best_cms = "Sanity"

[[scenario]]
id = "intranet"
name = "Intranet again"
best_cms = "Strapi"
`,
			wantErr: config.ErrDuplicateScenarioID,
		},
		{
			name: "scenario ID clashing with built-in",
			content: `
[[scenario]]
id = "rapid-marketing"
name = "Marketing"
best_cms = "Sanity"
`,
			wantErr: config.ErrDuplicateScenarioID,
		},
		{
			name:    "malformed TOML",
			content: `[[risk]`,
			wantErr: config.ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := config.LoadEvaluation(writeConfig(t, tt.content))
			if tt.wantErr != nil {
				gt.Error(t, err).Is(tt.wantErr)
				return
			}
			gt.NoError(t, err).Required()
			gt.Value(t, cfg).NotNil()
		})
	}
}

func TestLoadEvaluation_FillsVendorName(t *testing.T) {
	cfg, err := config.LoadEvaluation(writeConfig(t, `
[[risk]]
risk = "Editor training backlog"
vendor_id = "craft"
likelihood = "High"
impact = "Medium"
`))
	gt.NoError(t, err).Required()
	gt.Array(t, cfg.Risks).Length(1).Required()
	gt.Value(t, cfg.Risks[0].VendorID).Equal(types.VendorID("craft"))
	gt.Value(t, cfg.Risks[0].VendorName).Equal("Craft CMS")
	gt.Value(t, cfg.Risks[0].Likelihood).Equal(types.LevelHigh)
}

func TestLoadEvaluation_MissingFile(t *testing.T) {
	_, err := config.LoadEvaluation(filepath.Join(t.TempDir(), "absent.toml"))
	gt.Error(t, err).Is(config.ErrConfigNotFound)
}
