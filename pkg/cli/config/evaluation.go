package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/secmon-lab/cmseval/pkg/domain/model"
	domainConfig "github.com/secmon-lab/cmseval/pkg/domain/model/config"
	"github.com/secmon-lab/cmseval/pkg/domain/types"
	"github.com/secmon-lab/cmseval/pkg/seed"
	"github.com/urfave/cli/v3"
)

// EvaluationFile is the TOML layout of the evaluation config
type EvaluationFile struct {
	Risks     []model.RiskAssessment    `toml:"risk"`
	Scenarios []model.MigrationScenario `toml:"scenario"`
}

// Evaluation holds the CLI flag pointing at the evaluation config
type Evaluation struct {
	path string
}

func (x *Evaluation) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "evaluation-config",
			Aliases:     []string{"c"},
			Usage:       "TOML file with extra risk assessments and migration scenarios",
			Category:    "Evaluation",
			Sources:     cli.EnvVars("CMSEVAL_EVALUATION_CONFIG"),
			Destination: &x.path,
		},
	}
}

func (x Evaluation) LogValue() slog.Value {
	return slog.GroupValue(slog.String("path", x.path))
}

// Configure loads the evaluation config, or returns nil when no path is set
func (x *Evaluation) Configure() (*domainConfig.Evaluation, error) {
	if x.path == "" {
		return nil, nil
	}
	return LoadEvaluation(x.path)
}

// LoadEvaluation reads and validates an evaluation config file
func LoadEvaluation(path string) (*domainConfig.Evaluation, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, goerr.Wrap(ErrConfigNotFound, "evaluation config does not exist", goerr.V(ConfigPathKey, path))
		}
		return nil, goerr.Wrap(err, "failed to read evaluation config", goerr.V(ConfigPathKey, path))
	}

	var file EvaluationFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, goerr.Wrap(ErrInvalidConfig, "failed to parse TOML config",
			goerr.V(ConfigPathKey, path), goerr.V("error", err.Error()))
	}

	ds, err := seed.Load()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load seed dataset")
	}

	if err := file.Validate(ds); err != nil {
		return nil, goerr.Wrap(err, "evaluation config validation failed", goerr.V(ConfigPathKey, path))
	}

	return &domainConfig.Evaluation{
		Risks:     file.Risks,
		Scenarios: file.Scenarios,
	}, nil
}

// Validate checks levels, scenario IDs and vendor references against the
// built-in dataset. Risks naming a known vendor ID without a label get the
// vendor's name filled in.
func (f *EvaluationFile) Validate(ds *seed.Dataset) error {
	names := make(map[types.VendorID]string, len(ds.Vendors))
	known := make(map[string]bool, len(ds.Vendors))
	for _, v := range ds.Vendors {
		names[v.ID] = v.Name
		known[v.Name] = true
	}

	for i := range f.Risks {
		r := &f.Risks[i]
		if err := r.Validate(); err != nil {
			return goerr.Wrap(ErrInvalidConfig, err.Error(), goerr.V(RiskIndexKey, i))
		}
		if r.VendorID == "" {
			continue
		}
		name, ok := names[r.VendorID]
		if !ok {
			return goerr.Wrap(ErrUnknownVendor, "risk references an unknown vendor",
				goerr.V(RiskIndexKey, i), goerr.V(VendorIDKey, r.VendorID))
		}
		if r.VendorName == "" {
			r.VendorName = name
		}
	}

	scenarioIDs := make(map[string]bool, len(ds.Scenarios)+len(f.Scenarios))
	for _, s := range ds.Scenarios {
		scenarioIDs[s.ID] = true
	}
	for i := range f.Scenarios {
		s := &f.Scenarios[i]
		if err := s.Validate(); err != nil {
			return goerr.Wrap(ErrInvalidConfig, err.Error(), goerr.V(ScenarioIndexKey, i))
		}
		if scenarioIDs[s.ID] {
			return goerr.Wrap(ErrDuplicateScenarioID, "scenario ID is already defined", goerr.V(ScenarioIDKey, s.ID))
		}
		scenarioIDs[s.ID] = true

		if !known[s.BestVendor] {
			return goerr.Wrap(ErrUnknownVendor, "scenario recommends an unknown vendor",
				goerr.V(ScenarioIDKey, s.ID), goerr.V(VendorNameKey, s.BestVendor))
		}
	}

	return nil
}
