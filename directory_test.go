package tempfile

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dparrini/go-tempfile/internal/osfs"
	"github.com/dparrini/go-tempfile/internal/testlogging"
)

var nameSuffixPattern = regexp.MustCompile(`^[a-z0-9_]{8}$`)

func TestDirectoryCreateRemove(t *testing.T) {
	ctx := testlogging.Context(t)
	root := t.TempDir()

	d := NewDirectory(WithRoots(root))
	require.False(t, d.Good())

	require.NoError(t, d.Create(ctx))
	require.True(t, d.Good())
	require.DirExists(t, d.Path())
	require.Equal(t, root, filepath.Dir(d.Path()))

	require.NoError(t, d.Remove(ctx))
	require.False(t, d.Good())
	require.NoDirExists(t, d.Path())
}

func TestDirectoryPathShape(t *testing.T) {
	ctx := testlogging.Context(t)
	root := t.TempDir()

	d := NewDirectory(WithRoots(root), WithPrefix("myprefix"))
	require.NoError(t, d.Create(ctx))

	defer d.Remove(ctx) //nolint:errcheck

	base := filepath.Base(d.Path())
	require.True(t, len(base) > len("myprefix"))
	require.Equal(t, "myprefix", base[:len("myprefix")])
	require.True(t, nameSuffixPattern.MatchString(base[len("myprefix"):]), "unexpected name %q", base)
}

func TestDirectoryDefaultPrefix(t *testing.T) {
	ctx := testlogging.Context(t)

	d := NewDirectory(WithRoots(t.TempDir()))
	require.NoError(t, d.Create(ctx))

	defer d.Remove(ctx) //nolint:errcheck

	require.Equal(t, DefaultPrefix, filepath.Base(d.Path())[:len(DefaultPrefix)])
}

func TestDirectoryEnvironmentRoot(t *testing.T) {
	ctx := testlogging.Context(t)
	root := t.TempDir()

	// TEMP has the highest priority of the default enumeration
	t.Setenv("TEMP", root)

	d := NewDirectory()
	require.NoError(t, d.Create(ctx))

	defer d.Remove(ctx) //nolint:errcheck

	require.Equal(t, root, filepath.Dir(d.Path()))
}

func TestDirectoryCreateTwiceFails(t *testing.T) {
	ctx := testlogging.Context(t)

	d := NewDirectory(WithRoots(t.TempDir()))
	require.NoError(t, d.Create(ctx))

	defer d.Remove(ctx) //nolint:errcheck

	path := d.Path()

	require.Error(t, d.Create(ctx))
	require.True(t, d.Good())
	require.Equal(t, path, d.Path())
}

func TestDirectoryIsSingleUse(t *testing.T) {
	ctx := testlogging.Context(t)

	d := NewDirectory(WithRoots(t.TempDir()))
	require.NoError(t, d.Create(ctx))
	require.NoError(t, d.Remove(ctx))

	// a released handle cannot be bound again
	require.Error(t, d.Create(ctx))
	require.False(t, d.Good())
}

func TestDirectoryRemoveIsIdempotent(t *testing.T) {
	ctx := testlogging.Context(t)

	d := NewDirectory(WithRoots(t.TempDir()))
	require.NoError(t, d.Create(ctx))

	require.NoError(t, d.Remove(ctx))
	require.Error(t, d.Remove(ctx))
	require.False(t, d.Good())
}

func TestDirectoryRemoveEmptyHandle(t *testing.T) {
	ctx := testlogging.Context(t)

	d := NewDirectory(WithRoots(t.TempDir()))
	require.Error(t, d.Remove(ctx))
	require.False(t, d.Good())
}

func TestDirectoryZeroRoots(t *testing.T) {
	ctx := testlogging.Context(t)

	d := NewDirectory(WithRoots())
	require.Error(t, d.Create(ctx))
	require.False(t, d.Good())
}

func TestDirectoryUnusableRoots(t *testing.T) {
	ctx := testlogging.Context(t)

	missing := filepath.Join(t.TempDir(), "missing")

	d := NewDirectory(WithRoots(
		filepath.Join(missing, "a"),
		filepath.Join(missing, "b"),
	), WithMaxAttempts(3))

	require.Error(t, d.Create(ctx))
	require.False(t, d.Good())
}

func TestDirectorySkipsOverlongRoot(t *testing.T) {
	ctx := testlogging.Context(t)

	short := t.TempDir()
	long := filepath.Join(short, strings.Repeat("d", 64))
	require.NoError(t, os.Mkdir(long, 0o700))

	// a budget the first root always exceeds and the second exactly meets
	limit := len(short) + 1 + len(DefaultPrefix) + 8 + 1

	d := NewDirectory(WithRoots(long, short), WithMaxPathLength(limit), WithMaxAttempts(5))
	require.NoError(t, d.Create(ctx))

	defer d.Remove(ctx) //nolint:errcheck

	require.Equal(t, short, filepath.Dir(d.Path()))
}

func TestDirectoryRetriesCollisions(t *testing.T) {
	ctx := testlogging.Context(t)

	fs := &mockFS{Interface: osfs.Real{}, existsRemainingCollisions: 7}

	d := NewDirectory(WithRoots(t.TempDir()), withFS(fs))
	require.NoError(t, d.Create(ctx))
	require.True(t, d.Good())

	require.NoError(t, d.Remove(ctx))
}

func TestDirectoryMovesToNextRootAfterExhaustion(t *testing.T) {
	ctx := testlogging.Context(t)

	first := t.TempDir()
	second := t.TempDir()

	// every attempt against the first root fails with a create error
	fs := &mockFS{Interface: osfs.Real{}, mkdirRemainingErrors: 4}

	d := NewDirectory(WithRoots(first, second), WithMaxAttempts(4), withFS(fs))
	require.NoError(t, d.Create(ctx))

	defer d.Remove(ctx) //nolint:errcheck

	require.Equal(t, second, filepath.Dir(d.Path()))
}

func TestDirectoryExhaustedAttempts(t *testing.T) {
	ctx := testlogging.Context(t)

	fs := &mockFS{Interface: osfs.Real{}, existsRemainingCollisions: 1000}

	d := NewDirectory(WithRoots(t.TempDir()), WithMaxAttempts(10), withFS(fs))
	require.Error(t, d.Create(ctx))
	require.False(t, d.Good())
}

func TestDirectoryPopulatedCleanup(t *testing.T) {
	ctx := testlogging.Context(t)

	d := NewDirectory(WithRoots(t.TempDir()))
	require.NoError(t, d.Create(ctx))

	require.NoError(t, os.WriteFile(filepath.Join(d.Path(), "a.txt"), []byte("a"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(d.Path(), "b.txt"), []byte("b"), 0o600))
	require.NoError(t, os.MkdirAll(filepath.Join(d.Path(), "nested", "deeper"), 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(d.Path(), "nested", "c.txt"), []byte("c"), 0o600))

	require.NoError(t, d.Remove(ctx))
	require.NoDirExists(t, d.Path())
}

func TestDirectoryRemoveFailureKeepsOwnership(t *testing.T) {
	ctx := testlogging.Context(t)

	fs := &mockFS{Interface: osfs.Real{}, removeAllRemainingErrors: 1}

	d := NewDirectory(WithRoots(t.TempDir()), withFS(fs))
	require.NoError(t, d.Create(ctx))

	require.Error(t, d.Remove(ctx))
	require.True(t, d.Good())

	// the injected failure was consumed, retry succeeds
	require.NoError(t, d.Remove(ctx))
	require.False(t, d.Good())
}
