package memory

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/cmseval/pkg/domain/interfaces"
	"github.com/secmon-lab/cmseval/pkg/domain/model"
)

// ErrNotFound is returned by Load when nothing has been saved
var ErrNotFound = goerr.New("snapshot not found")

// Memory keeps the encoded snapshot in process memory
type Memory struct {
	mu   sync.RWMutex
	data []byte
}

var _ interfaces.SnapshotRepository = &Memory{}

// Option configures Memory
type Option func(*Memory)

// WithRaw preloads the repository with an encoded snapshot, which may be
// malformed. Used to exercise hydration fallbacks.
func WithRaw(data []byte) Option {
	return func(m *Memory) {
		m.data = append([]byte(nil), data...)
	}
}

func New(opts ...Option) *Memory {
	m := &Memory{}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Memory) Load(ctx context.Context) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.data == nil {
		return nil, goerr.Wrap(ErrNotFound, "no snapshot stored", goerr.V("key", model.SnapshotKey))
	}
	return append([]byte(nil), m.data...), nil
}

func (m *Memory) Save(ctx context.Context, snapshot *model.Snapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return goerr.Wrap(err, "failed to encode snapshot")
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = data
	return nil
}

func (m *Memory) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = nil
	return nil
}

func (m *Memory) Close() error {
	return nil
}
