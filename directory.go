package tempfile

import (
	"context"

	"github.com/pkg/errors"
)

// Directory is a handle to a temporary directory. A new handle is empty;
// Create binds it to a freshly created directory and Remove deletes the
// directory together with its contents. A handle is single-use: once
// removed, it cannot be bound again.
type Directory struct {
	good bool
	path string
	opts *options
}

// NewDirectory returns an empty directory handle.
func NewDirectory(opts ...Option) *Directory {
	return &Directory{opts: buildOptions(opts)}
}

// Create claims a new uniquely-named directory under the first usable
// candidate root and binds the handle to it. Calling Create on a handle that
// is bound, or was bound before, fails without side effects.
func (d *Directory) Create(ctx context.Context) error {
	creationMu.Lock()
	defer creationMu.Unlock()

	if d.good || d.path != "" {
		return errors.New("temporary directory already created")
	}

	path, err := searchAndCreate(ctx, d.opts, func(p string) error {
		return d.opts.fs.Mkdir(p, defaultDirMode)
	})
	if err != nil {
		return errors.Wrap(err, "cannot create temporary directory")
	}

	d.path = path
	d.good = true

	log(ctx).Debugw("created temporary directory", "path", path)

	return nil
}

// Remove deletes the directory and everything in it. Immediate children that
// are regular files are removed individually first, best-effort, then the
// whole tree. Remove fails without side effects when the handle owns nothing
// or the directory is already gone; a second call after a successful one is
// such a no-op failure.
func (d *Directory) Remove(ctx context.Context) error {
	creationMu.Lock()
	defer creationMu.Unlock()

	return d.removeLocked(ctx)
}

func (d *Directory) removeLocked(ctx context.Context) error {
	if !d.good || !d.opts.fs.IsDir(d.path) {
		return errors.New("no temporary directory to remove")
	}

	for _, f := range d.opts.fs.RegularFiles(d.path) {
		if err := d.opts.fs.Remove(f); err != nil {
			log(ctx).Debugw("cannot remove file", "path", f, "error", err)
		}
	}

	if err := d.opts.fs.RemoveAll(d.path); err != nil {
		return errors.Wrap(err, "cannot remove temporary directory")
	}

	d.good = false

	log(ctx).Debugw("removed temporary directory", "path", d.path)

	return nil
}

// Path returns the directory path. It is meaningful only while Good reports
// true.
func (d *Directory) Path() string { return d.path }

// Good reports whether the handle currently owns an existing directory.
func (d *Directory) Good() bool { return d.good }
