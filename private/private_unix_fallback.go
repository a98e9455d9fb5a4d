//go:build linux || freebsd || darwin || openbsd

package private

import (
	"os"

	"github.com/pkg/errors"
)

// createUnixFallback creates a temporary file that does not need to be
// removed on close, by unlinking it immediately while the handle stays open.
func createUnixFallback(dir string) (*os.File, error) {
	f, err := os.CreateTemp(dir, "pt-")
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	if derr := os.Remove(f.Name()); derr != nil {
		f.Close() //nolint:errcheck
		return nil, errors.Wrap(derr, "unable to unlink temporary file")
	}

	return f, nil
}
