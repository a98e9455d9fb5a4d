package tempfile

import (
	"context"
	"io"
)

// ScopedDirectory wraps a Directory whose creation happens at construction
// and whose removal is guaranteed by Close. Construction does not report
// creation failure; callers check Good after constructing:
//
//	d := tempfile.NewScopedDirectory(ctx)
//	defer d.Close()
//	if !d.Good() { ... }
type ScopedDirectory struct {
	dir *Directory

	// retained for logging during cleanup
	ctx context.Context
}

// NewScopedDirectory constructs a directory handle and immediately attempts
// to create its backing directory. A failed creation leaves Good reporting
// false.
func NewScopedDirectory(ctx context.Context, opts ...Option) *ScopedDirectory {
	sd := &ScopedDirectory{dir: NewDirectory(opts...), ctx: ctx}

	if err := sd.dir.Create(ctx); err != nil {
		log(ctx).Debugw("scoped directory creation failed", "error", err)
	}

	return sd
}

// Close removes the backing directory and its contents. Removal failures are
// logged and swallowed; Close never returns an error and may be called more
// than once.
func (sd *ScopedDirectory) Close() error {
	if err := sd.dir.Remove(sd.ctx); err != nil {
		log(sd.ctx).Debugw("scoped directory cleanup skipped", "error", err)
	}

	return nil
}

// Path returns the directory path. It is meaningful only while Good reports
// true.
func (sd *ScopedDirectory) Path() string { return sd.dir.Path() }

// Good reports whether construction actually created a directory that still
// belongs to this handle.
func (sd *ScopedDirectory) Good() bool { return sd.dir.Good() }

// ScopedFile wraps a File the same way ScopedDirectory wraps a Directory:
// creation at construction, removal guaranteed by Close, construction
// failure observable only through Good.
type ScopedFile struct {
	file *File
	ctx  context.Context
}

// NewScopedFile constructs a file handle and immediately attempts to create
// its backing file. A failed creation leaves Good reporting false.
func NewScopedFile(ctx context.Context, opts ...Option) *ScopedFile {
	sf := &ScopedFile{file: NewFile(opts...), ctx: ctx}

	if err := sf.file.Create(ctx); err != nil {
		log(ctx).Debugw("scoped file creation failed", "error", err)
	}

	return sf
}

// Close removes the backing file. Removal failures are logged and swallowed;
// Close never returns an error and may be called more than once.
func (sf *ScopedFile) Close() error {
	if err := sf.file.Remove(sf.ctx); err != nil {
		log(sf.ctx).Debugw("scoped file cleanup skipped", "error", err)
	}

	return nil
}

// Path returns the file path. It is meaningful only while Good reports true.
func (sf *ScopedFile) Path() string { return sf.file.Path() }

// Good reports whether construction actually created a file that still
// belongs to this handle.
func (sf *ScopedFile) Good() bool { return sf.file.Good() }

var (
	_ io.Closer = (*ScopedDirectory)(nil)
	_ io.Closer = (*ScopedFile)(nil)
)
