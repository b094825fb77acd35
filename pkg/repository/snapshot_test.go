package repository_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/cmseval/pkg/domain/interfaces"
	"github.com/secmon-lab/cmseval/pkg/domain/model"
	"github.com/secmon-lab/cmseval/pkg/repository/file"
	"github.com/secmon-lab/cmseval/pkg/repository/firestore"
	"github.com/secmon-lab/cmseval/pkg/repository/memory"
	"github.com/secmon-lab/cmseval/pkg/repository/redis"
	"github.com/secmon-lab/cmseval/pkg/seed"
)

func isNotFound(err error) bool {
	return errors.Is(err, memory.ErrNotFound) ||
		errors.Is(err, file.ErrNotFound) ||
		errors.Is(err, redis.ErrNotFound) ||
		errors.Is(err, firestore.ErrNotFound)
}

func runSnapshotRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.SnapshotRepository) {
	t.Helper()

	t.Run("Load before Save returns not found", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		_, err := repo.Load(ctx)
		gt.Error(t, err)
		gt.Bool(t, isNotFound(err)).True()
	})

	t.Run("Save then Load returns the same snapshot", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		vendors, err := seed.Vendors()
		gt.NoError(t, err).Required()

		saved := &model.Snapshot{
			Vendors:     vendors,
			LastUpdated: time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC),
			Version:     model.DataVersion,
		}
		gt.NoError(t, repo.Save(ctx, saved)).Required()

		data, err := repo.Load(ctx)
		gt.NoError(t, err).Required()

		var loaded model.Snapshot
		gt.NoError(t, json.Unmarshal(data, &loaded)).Required()
		gt.Value(t, loaded.Version).Equal(model.DataVersion)
		gt.Bool(t, loaded.LastUpdated.Equal(saved.LastUpdated)).True()
		gt.Value(t, loaded.Vendors).Equal(saved.Vendors)
	})

	t.Run("Save overwrites the previous snapshot", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		first := &model.Snapshot{
			Vendors: []*model.Vendor{{ID: "a", Name: "A"}, {ID: "b", Name: "B"}},
			Version: model.DataVersion,
		}
		second := &model.Snapshot{
			Vendors: []*model.Vendor{{ID: "c", Name: "C"}},
			Version: model.DataVersion,
		}
		gt.NoError(t, repo.Save(ctx, first)).Required()
		gt.NoError(t, repo.Save(ctx, second)).Required()

		data, err := repo.Load(ctx)
		gt.NoError(t, err).Required()

		var loaded model.Snapshot
		gt.NoError(t, json.Unmarshal(data, &loaded)).Required()
		gt.Array(t, loaded.Vendors).Length(1)
		gt.Value(t, loaded.Vendors[0].ID).Equal("c")
	})

	t.Run("Clear removes the snapshot", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		gt.NoError(t, repo.Save(ctx, &model.Snapshot{Version: model.DataVersion})).Required()
		gt.NoError(t, repo.Clear(ctx)).Required()

		_, err := repo.Load(ctx)
		gt.Bool(t, isNotFound(err)).True()

		// clearing an empty repository is not an error
		gt.NoError(t, repo.Clear(ctx))
	})
}

func TestMemorySnapshotRepository(t *testing.T) {
	runSnapshotRepositoryTest(t, func(t *testing.T) interfaces.SnapshotRepository {
		return memory.New()
	})
}

func TestFileSnapshotRepository(t *testing.T) {
	runSnapshotRepositoryTest(t, func(t *testing.T) interfaces.SnapshotRepository {
		repo, err := file.New(filepath.Join(t.TempDir(), "data", "snapshot.json"))
		gt.NoError(t, err).Required()
		return repo
	})
}

func newRedisRepository(t *testing.T) interfaces.SnapshotRepository {
	t.Helper()

	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set")
	}

	ctx := context.Background()
	prefix := fmt.Sprintf("test_%d", time.Now().UnixNano())
	repo, err := redis.New(ctx, addr, redis.WithKeyPrefix(prefix), redis.WithTTL(10*time.Minute))
	if err != nil {
		t.Fatalf("failed to create redis repository: %v", err)
	}
	t.Cleanup(func() {
		_ = repo.Clear(ctx)
		if err := repo.Close(); err != nil {
			t.Errorf("failed to close redis repository: %v", err)
		}
	})
	return repo
}

func TestRedisSnapshotRepository(t *testing.T) {
	runSnapshotRepositoryTest(t, newRedisRepository)
}

func newFirestoreRepository(t *testing.T) interfaces.SnapshotRepository {
	t.Helper()

	projectID := os.Getenv("TEST_FIRESTORE_PROJECT_ID")
	if projectID == "" {
		t.Skip("TEST_FIRESTORE_PROJECT_ID not set")
	}
	databaseID := os.Getenv("TEST_FIRESTORE_DATABASE_ID")

	ctx := context.Background()
	prefix := fmt.Sprintf("test_%d", time.Now().UnixNano())
	repo, err := firestore.New(ctx, projectID, databaseID, firestore.WithCollectionPrefix(prefix))
	if err != nil {
		t.Fatalf("failed to create firestore repository: %v", err)
	}
	t.Cleanup(func() {
		_ = repo.Clear(ctx)
		if err := repo.Close(); err != nil {
			t.Errorf("failed to close firestore repository: %v", err)
		}
	})
	return repo
}

func TestFirestoreSnapshotRepository(t *testing.T) {
	runSnapshotRepositoryTest(t, newFirestoreRepository)
}
