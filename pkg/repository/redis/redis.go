// Package redis stores the snapshot under a single Redis key.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/redis/go-redis/v9"
	"github.com/secmon-lab/cmseval/pkg/domain/interfaces"
	"github.com/secmon-lab/cmseval/pkg/domain/model"
)

// ErrNotFound is returned by Load when the key does not exist
var ErrNotFound = goerr.New("snapshot key not found")

type cmdable interface {
	Ping(context.Context) *redis.StatusCmd
	Get(context.Context, string) *redis.StringCmd
	Set(context.Context, string, any, time.Duration) *redis.StatusCmd
	Del(context.Context, ...string) *redis.IntCmd
}

type Redis struct {
	store     cmdable
	raw       *redis.Client
	keyPrefix string
	ttl       time.Duration
}

var _ interfaces.SnapshotRepository = &Redis{}

type Option func(*Redis)

// WithKeyPrefix namespaces the snapshot key as <prefix>:cms-dashboard-data
func WithKeyPrefix(prefix string) Option {
	return func(r *Redis) {
		r.keyPrefix = prefix
	}
}

// WithTTL expires the snapshot after ttl. Zero keeps it forever.
func WithTTL(ttl time.Duration) Option {
	return func(r *Redis) {
		r.ttl = ttl
	}
}

// New connects to Redis and verifies connectivity. addr is either a
// host:port pair or a redis:// URL.
func New(ctx context.Context, addr string, opts ...Option) (*Redis, error) {
	if addr == "" {
		return nil, goerr.New("redis address is required")
	}

	var redisOpts *redis.Options
	if parsed, err := redis.ParseURL(addr); err == nil {
		redisOpts = parsed
	} else {
		redisOpts = &redis.Options{Addr: addr}
	}

	raw := redis.NewClient(redisOpts)
	if err := raw.Ping(ctx).Err(); err != nil {
		_ = raw.Close()
		return nil, goerr.Wrap(err, "failed to ping redis", goerr.V("addr", redisOpts.Addr))
	}

	return newRedis(raw, raw, opts...), nil
}

func newRedis(store cmdable, raw *redis.Client, opts ...Option) *Redis {
	r := &Redis{
		store: store,
		raw:   raw,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Key returns the Redis key holding the snapshot
func (r *Redis) Key() string {
	if r.keyPrefix != "" {
		return r.keyPrefix + ":" + model.SnapshotKey
	}
	return model.SnapshotKey
}

func (r *Redis) Load(ctx context.Context) ([]byte, error) {
	data, err := r.store.Get(ctx, r.Key()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, goerr.Wrap(ErrNotFound, "snapshot not stored", goerr.V("key", r.Key()))
		}
		return nil, goerr.Wrap(err, "failed to get snapshot", goerr.V("key", r.Key()))
	}
	return data, nil
}

func (r *Redis) Save(ctx context.Context, snapshot *model.Snapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return goerr.Wrap(err, "failed to encode snapshot")
	}
	if err := r.store.Set(ctx, r.Key(), data, r.ttl).Err(); err != nil {
		return goerr.Wrap(err, "failed to set snapshot", goerr.V("key", r.Key()))
	}
	return nil
}

func (r *Redis) Clear(ctx context.Context) error {
	if err := r.store.Del(ctx, r.Key()).Err(); err != nil {
		return goerr.Wrap(err, "failed to delete snapshot", goerr.V("key", r.Key()))
	}
	return nil
}

func (r *Redis) Close() error {
	if r.raw != nil {
		return r.raw.Close()
	}
	return nil
}
