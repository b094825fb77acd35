package firestore

import (
	"context"
	"encoding/json"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/cmseval/pkg/domain/interfaces"
	"github.com/secmon-lab/cmseval/pkg/domain/model"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrNotFound is returned by Load when the snapshot document does not exist
var ErrNotFound = goerr.New("snapshot document not found")

// snapshotDocument keeps the snapshot as encoded JSON so that a malformed
// or outdated payload can still be loaded and rejected by the caller.
type snapshotDocument struct {
	Data      string    `firestore:"data"`
	Version   string    `firestore:"version"`
	Vendors   int       `firestore:"vendors"`
	UpdatedAt time.Time `firestore:"updated_at"`
}

type Firestore struct {
	client           *firestore.Client
	collectionPrefix string
}

var _ interfaces.SnapshotRepository = &Firestore{}

type Option func(*Firestore)

func WithCollectionPrefix(prefix string) Option {
	return func(f *Firestore) {
		f.collectionPrefix = prefix
	}
}

// New creates a Firestore backed repository. An empty databaseID selects
// the default database.
func New(ctx context.Context, projectID, databaseID string, opts ...Option) (*Firestore, error) {
	if databaseID == "" {
		databaseID = firestore.DefaultDatabaseID
	}
	client, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client",
			goerr.V("projectID", projectID),
			goerr.V("databaseID", databaseID),
		)
	}

	f := &Firestore{
		client: client,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

func (f *Firestore) snapshotsCollection() string {
	if f.collectionPrefix != "" {
		return f.collectionPrefix + "_snapshots"
	}
	return "snapshots"
}

func (f *Firestore) doc() *firestore.DocumentRef {
	return f.client.Collection(f.snapshotsCollection()).Doc(model.SnapshotKey)
}

func (f *Firestore) Load(ctx context.Context) ([]byte, error) {
	snap, err := f.doc().Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "snapshot not stored", goerr.V("key", model.SnapshotKey))
		}
		return nil, goerr.Wrap(err, "failed to get snapshot", goerr.V("key", model.SnapshotKey))
	}

	var doc snapshotDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, goerr.Wrap(err, "failed to decode snapshot document")
	}
	return []byte(doc.Data), nil
}

func (f *Firestore) Save(ctx context.Context, snapshot *model.Snapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return goerr.Wrap(err, "failed to encode snapshot")
	}

	doc := &snapshotDocument{
		Data:      string(data),
		Version:   snapshot.Version,
		Vendors:   len(snapshot.Vendors),
		UpdatedAt: snapshot.LastUpdated,
	}
	if _, err := f.doc().Set(ctx, doc); err != nil {
		return goerr.Wrap(err, "failed to save snapshot", goerr.V("key", model.SnapshotKey))
	}
	return nil
}

func (f *Firestore) Clear(ctx context.Context) error {
	if _, err := f.doc().Delete(ctx); err != nil && status.Code(err) != codes.NotFound {
		return goerr.Wrap(err, "failed to delete snapshot", goerr.V("key", model.SnapshotKey))
	}
	return nil
}

func (f *Firestore) Close() error {
	if f.client != nil {
		return f.client.Close()
	}
	return nil
}
