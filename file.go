package tempfile

import (
	"context"

	"github.com/pkg/errors"
)

// File is a handle to a temporary file. It has the same lifecycle as
// Directory: constructed empty, bound by Create, released by Remove,
// single-use. Creation walks the same candidate roots with the same
// random-name retry budget, creating a new empty file as the terminal
// action.
type File struct {
	good bool
	path string
	opts *options
}

// NewFile returns an empty file handle.
func NewFile(opts ...Option) *File {
	return &File{opts: buildOptions(opts)}
}

// Create claims a new uniquely-named empty file under the first usable
// candidate root and binds the handle to it. Calling Create on a handle that
// is bound, or was bound before, fails without side effects.
func (f *File) Create(ctx context.Context) error {
	creationMu.Lock()
	defer creationMu.Unlock()

	if f.good || f.path != "" {
		return errors.New("temporary file already created")
	}

	path, err := searchAndCreate(ctx, f.opts, func(p string) error {
		return f.opts.fs.CreateNewFile(p, defaultFileMode)
	})
	if err != nil {
		return errors.Wrap(err, "cannot create temporary file")
	}

	f.path = path
	f.good = true

	log(ctx).Debugw("created temporary file", "path", path)

	return nil
}

// Remove deletes the file. It fails without side effects when the handle
// owns nothing or the file is already gone.
func (f *File) Remove(ctx context.Context) error {
	creationMu.Lock()
	defer creationMu.Unlock()

	return f.removeLocked(ctx)
}

func (f *File) removeLocked(ctx context.Context) error {
	if !f.good || !f.opts.fs.Exists(f.path) {
		return errors.New("no temporary file to remove")
	}

	if err := f.opts.fs.Remove(f.path); err != nil {
		return errors.Wrap(err, "cannot remove temporary file")
	}

	f.good = false

	log(ctx).Debugw("removed temporary file", "path", f.path)

	return nil
}

// Path returns the file path. It is meaningful only while Good reports true.
func (f *File) Path() string { return f.path }

// Good reports whether the handle currently owns an existing file.
func (f *File) Good() bool { return f.good }
