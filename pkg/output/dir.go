package output

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/matzehuels/evalcharts/pkg/errors"
	"github.com/matzehuels/evalcharts/pkg/observability"
)

// DefaultDir is the output directory used when none is given, relative to
// the working directory.
const DefaultDir = "plots"

// Dir is an output directory. It is created on first write.
type Dir struct {
	path string

	once   sync.Once
	ensure error
}

// New returns an output directory rooted at path. An empty path selects
// [DefaultDir].
func New(path string) *Dir {
	if path == "" {
		path = DefaultDir
	}
	return &Dir{path: path}
}

// Path returns the directory path as given.
func (d *Dir) Path() string { return d.path }

// Resolve returns the absolute directory path.
func (d *Dir) Resolve() (string, error) {
	abs, err := filepath.Abs(d.path)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidPath, err, "resolve %s", d.path)
	}
	return abs, nil
}

// Ensure creates the directory and any missing parents. It is idempotent.
func (d *Dir) Ensure() error {
	d.once.Do(func() {
		if err := os.MkdirAll(d.path, 0o755); err != nil {
			d.ensure = errors.Wrap(errors.ErrCodeWriteFailed, err, "create output directory %s", d.path)
		}
	})
	return d.ensure
}

// FileName returns the file name for stem with extension ext.
func FileName(stem, ext string) string {
	return stem + "." + ext
}

// Write stores data as <stem>.<ext> and returns the file's absolute path.
func (d *Dir) Write(ctx context.Context, stem, ext string, data []byte) (string, error) {
	if err := errors.ValidateStem(stem); err != nil {
		return "", err
	}
	if err := d.Ensure(); err != nil {
		return "", err
	}
	dir, err := d.Resolve()
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, FileName(stem, ext))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		werr := errors.Wrap(errors.ErrCodeWriteFailed, err, "write %s", path)
		observability.Output().OnWrite(ctx, path, len(data), werr)
		return "", werr
	}
	observability.Output().OnWrite(ctx, path, len(data), nil)
	return path, nil
}
