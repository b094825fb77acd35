package config

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for configuration validation
var (
	ErrConfigNotFound      = goerr.New("configuration file not found")
	ErrInvalidConfig       = goerr.New("invalid configuration")
	ErrDuplicateScenarioID = goerr.New("duplicate scenario ID")
	ErrUnknownVendor       = goerr.New("unknown vendor reference")
	ErrInvalidBackend      = goerr.New("invalid repository backend")
	ErrMissingOption       = goerr.New("required option is missing")
)

// Context keys for error values
const (
	ConfigPathKey    = "config_path"
	ScenarioIDKey    = "scenario_id"
	VendorIDKey      = "vendor_id"
	VendorNameKey    = "vendor_name"
	RiskIndexKey     = "risk_index"
	ScenarioIndexKey = "scenario_index"
	BackendKey       = "backend"
)
