package config_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/cmseval/pkg/cli/config"
)

func TestConfigErrors_SentinelIdentification(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		sentinelError error
		wantMatch     bool
	}{
		{
			name:          "ErrConfigNotFound can be identified",
			err:           goerr.Wrap(config.ErrConfigNotFound, "failed to load config"),
			sentinelError: config.ErrConfigNotFound,
			wantMatch:     true,
		},
		{
			name:          "ErrDuplicateScenarioID can be identified",
			err:           goerr.Wrap(config.ErrDuplicateScenarioID, "found duplicate"),
			sentinelError: config.ErrDuplicateScenarioID,
			wantMatch:     true,
		},
		{
			name:          "ErrUnknownVendor can be identified",
			err:           goerr.Wrap(config.ErrUnknownVendor, "unknown", goerr.V(config.VendorIDKey, "drupal")),
			sentinelError: config.ErrUnknownVendor,
			wantMatch:     true,
		},
		{
			name:          "ErrInvalidBackend can be identified",
			err:           goerr.Wrap(config.ErrInvalidBackend, "unsupported", goerr.V(config.BackendKey, "mysql")),
			sentinelError: config.ErrInvalidBackend,
			wantMatch:     true,
		},
		{
			name:          "Different sentinel errors do not match",
			err:           goerr.Wrap(config.ErrConfigNotFound, "failed to load config"),
			sentinelError: config.ErrInvalidConfig,
			wantMatch:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matched := errors.Is(tt.err, tt.sentinelError)
			gt.Value(t, matched).Equal(tt.wantMatch)
		})
	}
}

func TestConfigErrors_ContextValues(t *testing.T) {
	err := goerr.Wrap(config.ErrUnknownVendor, "scenario recommends an unknown vendor",
		goerr.V(config.ScenarioIDKey, "intranet"),
		goerr.V(config.VendorNameKey, "Drupal"),
	)

	var ge *goerr.Error
	gt.Bool(t, errors.As(err, &ge)).True()
	values := ge.Values()
	gt.Value(t, values[config.ScenarioIDKey]).Equal("intranet")
	gt.Value(t, values[config.VendorNameKey]).Equal("Drupal")
}
