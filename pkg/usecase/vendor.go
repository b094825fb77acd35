package usecase

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/cmseval/pkg/domain/interfaces"
	"github.com/secmon-lab/cmseval/pkg/domain/model"
	"github.com/secmon-lab/cmseval/pkg/domain/types"
	"github.com/secmon-lab/cmseval/pkg/seed"
	"github.com/secmon-lab/cmseval/pkg/service/ranking"
	"github.com/secmon-lab/cmseval/pkg/service/scoring"
	"github.com/secmon-lab/cmseval/pkg/utils/errutil"
	"github.com/secmon-lab/cmseval/pkg/utils/logging"
	"github.com/secmon-lab/cmseval/pkg/utils/metrics"
)

// HydrationSource tells where the store contents came from at startup
type HydrationSource string

const (
	HydratedFromSnapshot HydrationSource = "snapshot"
	HydratedFromSeed     HydrationSource = "seed"
)

// VendorUseCase owns the in-memory vendor collection. The collection is the
// source of truth for the session; the snapshot repository only mirrors it.
// Every reader receives deep copies.
type VendorUseCase struct {
	mu      sync.RWMutex
	vendors []*model.Vendor

	// serializes snapshot writes so an older state never overwrites a newer one
	persistMu sync.Mutex

	repo    interfaces.SnapshotRepository
	metrics *metrics.Metrics
	now     func() time.Time
}

func NewVendorUseCase(repo interfaces.SnapshotRepository, m *metrics.Metrics, now func() time.Time) *VendorUseCase {
	if now == nil {
		now = time.Now
	}
	return &VendorUseCase{
		vendors: []*model.Vendor{},
		repo:    repo,
		metrics: m,
		now:     now,
	}
}

// Hydrate fills the store from the persisted snapshot, or from the seed
// dataset when the snapshot is missing, unreadable or of another version.
// Total scores are recomputed in both cases.
func (uc *VendorUseCase) Hydrate(ctx context.Context) (HydrationSource, error) {
	logger := logging.From(ctx)

	source := HydratedFromSnapshot
	vendors, err := uc.loadSnapshot(ctx)
	if err != nil {
		logger.Info("Snapshot not usable, loading seed dataset", "reason", err.Error())

		vendors, err = seed.Vendors()
		if err != nil {
			return "", goerr.Wrap(err, "failed to load seed vendors")
		}
		source = HydratedFromSeed
	}

	recomputeTotals(vendors)

	uc.mu.Lock()
	uc.vendors = vendors
	n := len(uc.vendors)
	uc.mu.Unlock()

	uc.metrics.SetVendorCount(n)
	logger.Info("Vendor store hydrated", "source", source, "vendors", n)
	return source, nil
}

func (uc *VendorUseCase) loadSnapshot(ctx context.Context) ([]*model.Vendor, error) {
	if uc.repo == nil {
		return nil, goerr.New("no snapshot repository configured")
	}

	data, err := uc.repo.Load(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load snapshot")
	}

	var snapshot model.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, goerr.Wrap(ErrInvalidPayload, "snapshot is not valid JSON", goerr.V("error", err.Error()))
	}
	if snapshot.Vendors == nil {
		return nil, goerr.Wrap(ErrInvalidPayload, "snapshot has no vendors array")
	}
	if snapshot.Version != model.DataVersion {
		return nil, goerr.Wrap(ErrVersionMismatch, "snapshot version is not supported",
			goerr.V(VersionKey, snapshot.Version))
	}

	return compactVendors(snapshot.Vendors), nil
}

// List returns the vendors in stored order
func (uc *VendorUseCase) List(ctx context.Context) []*model.Vendor {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return model.CloneVendors(uc.vendors)
}

// Sorted returns the vendors ordered by key and direction
func (uc *VendorUseCase) Sorted(ctx context.Context, key types.SortKey, dir types.SortDirection) []*model.Vendor {
	return ranking.Sort(uc.List(ctx), key, dir)
}

// Count returns the number of stored vendors
func (uc *VendorUseCase) Count(ctx context.Context) int {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return len(uc.vendors)
}

func (uc *VendorUseCase) Get(ctx context.Context, id types.VendorID) (*model.Vendor, error) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	v, ok := model.FindVendor(uc.vendors, id)
	if !ok {
		return nil, goerr.Wrap(ErrVendorNotFound, "vendor not found", goerr.V(VendorIDKey, id))
	}
	return v.Clone(), nil
}

// Add appends a draft vendor with mid-range defaults at the lowest priority
func (uc *VendorUseCase) Add(ctx context.Context) (*model.Vendor, error) {
	uc.mu.Lock()
	v := model.NewDraftVendor(types.NewDraftVendorID(), len(uc.vendors)+1)
	v.TotalScore = scoring.ComputeTotalScore(v.WeightedScores)
	uc.vendors = append(uc.vendors, v)
	created := v.Clone()
	uc.mu.Unlock()

	uc.committed(ctx, metrics.OpAdd)
	logging.From(ctx).Info("Vendor added", "id", created.ID, "priority", created.Priority)
	return created, nil
}

// Save replaces the vendor with the same ID. Scores are clamped to [0,5]
// and the total is recomputed before the replacement is committed.
func (uc *VendorUseCase) Save(ctx context.Context, vendor *model.Vendor) (*model.Vendor, error) {
	if vendor == nil {
		return nil, goerr.Wrap(ErrInvalidVendor, "vendor is nil")
	}
	if err := vendor.ID.Validate(); err != nil {
		return nil, goerr.Wrap(ErrInvalidVendor, "invalid vendor ID", goerr.V("error", err.Error()))
	}

	updated := vendor.Clone()
	scoring.Rescore(updated)

	uc.mu.Lock()
	idx := indexOf(uc.vendors, updated.ID)
	if idx < 0 {
		uc.mu.Unlock()
		return nil, goerr.Wrap(ErrVendorNotFound, "vendor not found", goerr.V(VendorIDKey, updated.ID))
	}
	uc.vendors[idx] = updated
	saved := updated.Clone()
	uc.mu.Unlock()

	uc.committed(ctx, metrics.OpSave)
	logging.From(ctx).Info("Vendor saved", "id", saved.ID, "total_score", saved.TotalScore)
	return saved, nil
}

// Delete removes a draft vendor. Seed vendors cannot be deleted.
func (uc *VendorUseCase) Delete(ctx context.Context, id types.VendorID) error {
	if !id.IsDraft() {
		return goerr.Wrap(ErrVendorNotDeletable, "vendor is not a draft", goerr.V(VendorIDKey, id))
	}

	uc.mu.Lock()
	idx := indexOf(uc.vendors, id)
	if idx < 0 {
		uc.mu.Unlock()
		return goerr.Wrap(ErrVendorNotFound, "vendor not found", goerr.V(VendorIDKey, id))
	}
	uc.vendors = append(uc.vendors[:idx:idx], uc.vendors[idx+1:]...)
	uc.mu.Unlock()

	uc.committed(ctx, metrics.OpDelete)
	logging.From(ctx).Info("Vendor deleted", "id", id)
	return nil
}

// Reset restores the seed dataset
func (uc *VendorUseCase) Reset(ctx context.Context) error {
	vendors, err := seed.Vendors()
	if err != nil {
		return goerr.Wrap(err, "failed to load seed vendors")
	}
	recomputeTotals(vendors)

	uc.mu.Lock()
	uc.vendors = vendors
	uc.mu.Unlock()

	uc.committed(ctx, metrics.OpReset)
	logging.From(ctx).Info("Vendor store reset to seed", "vendors", len(vendors))
	return nil
}

// replaceAll swaps the whole collection. vendors must already be rescored
// and owned by the store.
func (uc *VendorUseCase) replaceAll(ctx context.Context, vendors []*model.Vendor) {
	uc.mu.Lock()
	uc.vendors = vendors
	uc.mu.Unlock()

	uc.committed(ctx, metrics.OpImport)
}

// Persist writes the current collection to the snapshot repository
func (uc *VendorUseCase) Persist(ctx context.Context) error {
	if uc.repo == nil {
		return nil
	}

	uc.persistMu.Lock()
	defer uc.persistMu.Unlock()

	snapshot := &model.Snapshot{
		Vendors:     uc.List(ctx),
		LastUpdated: uc.now().UTC(),
		Version:     model.DataVersion,
	}
	if err := uc.repo.Save(ctx, snapshot); err != nil {
		return goerr.Wrap(err, "failed to persist vendor snapshot", goerr.V("vendors", len(snapshot.Vendors)))
	}
	return nil
}

// committed records a mutation and mirrors the store to the repository. A
// failed write is reported but does not undo the mutation.
func (uc *VendorUseCase) committed(ctx context.Context, op string) {
	uc.metrics.IncMutation(op)
	uc.metrics.SetVendorCount(uc.Count(ctx))

	if err := uc.Persist(ctx); err != nil {
		uc.metrics.IncPersistFailure()
		_ = errutil.Handle(ctx, err, "Failed to persist vendor store")
	}
}

func indexOf(vendors []*model.Vendor, id types.VendorID) int {
	for i, v := range vendors {
		if v.ID == id {
			return i
		}
	}
	return -1
}

func recomputeTotals(vendors []*model.Vendor) {
	for _, v := range vendors {
		v.TotalScore = scoring.ComputeTotalScore(v.WeightedScores)
	}
}

// compactVendors drops null entries of a decoded vendor array
func compactVendors(vendors []*model.Vendor) []*model.Vendor {
	out := make([]*model.Vendor, 0, len(vendors))
	for _, v := range vendors {
		if v != nil {
			out = append(out, v)
		}
	}
	return out
}
