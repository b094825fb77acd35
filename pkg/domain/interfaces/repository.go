package interfaces

import (
	"context"

	"github.com/secmon-lab/cmseval/pkg/domain/model"
)

// SnapshotRepository persists the vendor store under a single key.
//
// Load returns the raw stored document so the caller decides how to treat
// malformed or outdated payloads. A missing snapshot is reported with the
// backend's ErrNotFound.
type SnapshotRepository interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, snapshot *model.Snapshot) error
	Clear(ctx context.Context) error
	Close() error
}
