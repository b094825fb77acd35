// Package file stores the snapshot as a JSON document on the local disk.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/cmseval/pkg/domain/interfaces"
	"github.com/secmon-lab/cmseval/pkg/domain/model"
	"github.com/secmon-lab/cmseval/pkg/utils/safe"
)

// ErrNotFound is returned by Load when the snapshot file does not exist
var ErrNotFound = goerr.New("snapshot file not found")

type File struct {
	path string
	perm fs.FileMode
}

var _ interfaces.SnapshotRepository = &File{}

type Option func(*File)

// WithPermission sets the mode of the written file. Default is 0600.
func WithPermission(perm fs.FileMode) Option {
	return func(f *File) {
		f.perm = perm
	}
}

// New returns a repository backed by the file at path. When path is a
// directory, the snapshot is stored as <dir>/cms-dashboard-data.json.
func New(path string, opts ...Option) (*File, error) {
	if path == "" {
		return nil, goerr.New("snapshot file path is required")
	}

	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, model.SnapshotKey+".json")
	}

	f := &File{
		path: path,
		perm: 0600,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// Path returns the snapshot file location
func (f *File) Path() string {
	return f.path
}

func (f *File) Load(ctx context.Context) ([]byte, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, goerr.Wrap(ErrNotFound, "snapshot file does not exist", goerr.V("path", f.path))
		}
		return nil, goerr.Wrap(err, "failed to read snapshot file", goerr.V("path", f.path))
	}
	return data, nil
}

// Save writes the snapshot to a temporary file in the same directory and
// renames it into place, so readers never observe a partial document.
func (f *File) Save(ctx context.Context, snapshot *model.Snapshot) error {
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return goerr.Wrap(err, "failed to encode snapshot")
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return goerr.Wrap(err, "failed to create snapshot directory", goerr.V("dir", dir))
	}

	tmp, err := os.CreateTemp(dir, ".snapshot-*.json")
	if err != nil {
		return goerr.Wrap(err, "failed to create temporary snapshot file", goerr.V("dir", dir))
	}
	tmpName := tmp.Name()
	defer func() {
		// no-op once renamed
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		safe.Close(ctx, tmp)
		return goerr.Wrap(err, "failed to write snapshot", goerr.V("path", tmpName))
	}
	if err := tmp.Chmod(f.perm); err != nil {
		safe.Close(ctx, tmp)
		return goerr.Wrap(err, "failed to set snapshot permission", goerr.V("path", tmpName))
	}
	if err := tmp.Close(); err != nil {
		return goerr.Wrap(err, "failed to close snapshot file", goerr.V("path", tmpName))
	}

	if err := os.Rename(tmpName, f.path); err != nil {
		return goerr.Wrap(err, "failed to replace snapshot file", goerr.V("path", f.path))
	}
	return nil
}

func (f *File) Clear(ctx context.Context) error {
	if err := os.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return goerr.Wrap(err, "failed to remove snapshot file", goerr.V("path", f.path))
	}
	return nil
}

func (f *File) Close() error {
	return nil
}
