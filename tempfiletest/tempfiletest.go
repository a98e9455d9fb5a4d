// Package tempfiletest provides helpers for tests that need temporary
// directories and files with guaranteed cleanup.
package tempfiletest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dparrini/go-tempfile"
	"github.com/dparrini/go-tempfile/internal/testlogging"
)

// Directory creates a temporary directory that is removed when the test
// finishes. When the test fails, the directory is left behind for
// inspection.
func Directory(t testing.TB, opts ...tempfile.Option) string {
	t.Helper()

	d := tempfile.NewScopedDirectory(testlogging.Context(t), opts...)
	if !d.Good() {
		t.Fatal("cannot create temporary directory")
	}

	t.Cleanup(func() {
		if t.Failed() {
			t.Logf("temporary files left in %v", d.Path())
			return
		}

		d.Close() //nolint:errcheck
	})

	return d.Path()
}

// File creates a temporary file that is removed when the test finishes.
// When the test fails, the file is left behind for inspection.
func File(t testing.TB, opts ...tempfile.Option) string {
	t.Helper()

	f := tempfile.NewScopedFile(testlogging.Context(t), opts...)
	if !f.Good() {
		t.Fatal("cannot create temporary file")
	}

	t.Cleanup(func() {
		if t.Failed() {
			t.Logf("temporary file left at %v", f.Path())
			return
		}

		f.Close() //nolint:errcheck
	})

	return f.Path()
}

// WriteFile writes contents to the named file under dir, creating parent
// directories as needed, and returns the full path.
func WriteFile(t testing.TB, dir, name, contents string) string {
	t.Helper()

	p := filepath.Join(dir, name)

	if err := os.MkdirAll(filepath.Dir(p), 0o700); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(p, []byte(contents), 0o600); err != nil {
		t.Fatal(err)
	}

	return p
}
