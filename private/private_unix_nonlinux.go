//go:build freebsd || darwin || openbsd

package private

import (
	"os"
)

// Create creates a temporary file in dir that will be automatically deleted
// on close. When dir is empty the OS default temp directory is used.
func Create(dir string) (*os.File, error) {
	if dir == "" {
		dir = os.TempDir()
	}

	return createUnixFallback(dir)
}
