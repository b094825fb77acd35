package config

import (
	"context"
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/cmseval/pkg/domain/interfaces"
	"github.com/secmon-lab/cmseval/pkg/repository/file"
	"github.com/secmon-lab/cmseval/pkg/repository/firestore"
	"github.com/secmon-lab/cmseval/pkg/repository/memory"
	"github.com/secmon-lab/cmseval/pkg/repository/redis"
	"github.com/secmon-lab/cmseval/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// Repository backends
const (
	BackendMemory    = "memory"
	BackendFile      = "file"
	BackendRedis     = "redis"
	BackendFirestore = "firestore"
)

// Repository holds CLI flags for snapshot repository configuration
type Repository struct {
	backend             string
	filePath            string
	redisAddr           string
	redisKeyPrefix      string
	redisTTL            time.Duration
	projectID           string
	databaseID          string
	firestoreCollection string
}

// Flags returns CLI flags for repository configuration
func (r *Repository) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "repository-backend",
			Usage:       "Snapshot backend type (memory, file, redis or firestore)",
			Value:       BackendFile,
			Category:    "Repository",
			Sources:     cli.EnvVars("CMSEVAL_REPOSITORY_BACKEND"),
			Destination: &r.backend,
		},
		&cli.StringFlag{
			Name:        "file-path",
			Usage:       "Snapshot file, or a directory to hold cms-dashboard-data.json",
			Value:       ".",
			Category:    "Repository",
			Sources:     cli.EnvVars("CMSEVAL_FILE_PATH"),
			Destination: &r.filePath,
		},
		&cli.StringFlag{
			Name:        "redis-addr",
			Usage:       "Redis address (host:port or redis:// URL)",
			Category:    "Repository",
			Sources:     cli.EnvVars("CMSEVAL_REDIS_ADDR"),
			Destination: &r.redisAddr,
		},
		&cli.StringFlag{
			Name:        "redis-key-prefix",
			Usage:       "Namespace prepended to the snapshot key",
			Category:    "Repository",
			Sources:     cli.EnvVars("CMSEVAL_REDIS_KEY_PREFIX"),
			Destination: &r.redisKeyPrefix,
		},
		&cli.DurationFlag{
			Name:        "redis-ttl",
			Usage:       "Expiry of the snapshot key (0 keeps it forever)",
			Category:    "Repository",
			Sources:     cli.EnvVars("CMSEVAL_REDIS_TTL"),
			Destination: &r.redisTTL,
		},
		&cli.StringFlag{
			Name:        "firestore-project-id",
			Usage:       "Firestore Project ID (required when using firestore backend)",
			Category:    "Repository",
			Sources:     cli.EnvVars("CMSEVAL_FIRESTORE_PROJECT_ID"),
			Destination: &r.projectID,
		},
		&cli.StringFlag{
			Name:        "firestore-database-id",
			Usage:       "Firestore Database ID",
			Category:    "Repository",
			Sources:     cli.EnvVars("CMSEVAL_FIRESTORE_DATABASE_ID"),
			Destination: &r.databaseID,
		},
		&cli.StringFlag{
			Name:        "firestore-collection-prefix",
			Usage:       "Prefix of the Firestore snapshot collection",
			Category:    "Repository",
			Sources:     cli.EnvVars("CMSEVAL_FIRESTORE_COLLECTION_PREFIX"),
			Destination: &r.firestoreCollection,
		},
	}
}

// Backend returns the configured backend type
func (r *Repository) Backend() string {
	return r.backend
}

func (r Repository) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("backend", r.backend),
		slog.String("file_path", r.filePath),
		slog.Int("redis_addr.len", len(r.redisAddr)),
		slog.String("firestore_project_id", r.projectID),
	)
}

// Configure initializes and returns a repository based on the configured backend.
// The caller is responsible for calling Close() on the returned repository.
func (r *Repository) Configure(ctx context.Context) (interfaces.SnapshotRepository, error) {
	switch r.backend {
	case BackendFirestore:
		if r.projectID == "" {
			return nil, goerr.Wrap(ErrMissingOption, "firestore-project-id is required when using firestore backend")
		}
		var opts []firestore.Option
		if r.firestoreCollection != "" {
			opts = append(opts, firestore.WithCollectionPrefix(r.firestoreCollection))
		}
		repo, err := firestore.New(ctx, r.projectID, r.databaseID, opts...)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to initialize firestore repository")
		}
		logging.Default().Info("Using Firestore repository",
			"project_id", r.projectID,
			"database_id", r.databaseID,
		)
		return repo, nil

	case BackendRedis:
		if r.redisAddr == "" {
			return nil, goerr.Wrap(ErrMissingOption, "redis-addr is required when using redis backend")
		}
		var opts []redis.Option
		if r.redisKeyPrefix != "" {
			opts = append(opts, redis.WithKeyPrefix(r.redisKeyPrefix))
		}
		if r.redisTTL > 0 {
			opts = append(opts, redis.WithTTL(r.redisTTL))
		}
		repo, err := redis.New(ctx, r.redisAddr, opts...)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to initialize redis repository")
		}
		logging.Default().Info("Using Redis repository", "key", repo.Key())
		return repo, nil

	case BackendFile:
		repo, err := file.New(r.filePath)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to initialize file repository")
		}
		logging.Default().Info("Using file repository", "path", repo.Path())
		return repo, nil

	case BackendMemory:
		logging.Default().Info("Using in-memory repository (development mode)")
		return memory.New(), nil

	default:
		return nil, goerr.Wrap(ErrInvalidBackend, "unsupported repository backend", goerr.V(BackendKey, r.backend))
	}
}
