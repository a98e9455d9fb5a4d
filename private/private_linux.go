package private

import (
	"errors"
	"os"
	"sync/atomic"
	"syscall"

	"golang.org/x/sys/unix"
)

var tmpfileUnsupported atomic.Bool //nolint:gochecknoglobals

// Create creates a temporary file in dir that will be automatically deleted
// on close. When dir is empty the OS default temp directory is used.
func Create(dir string) (*os.File, error) {
	if dir == "" {
		dir = os.TempDir()
	}

	if tmpfileUnsupported.Load() {
		// already tried O_TMPFILE, was unsupported, fall back to generic
		// Unix method.
		return createUnixFallback(dir)
	}

	// on reasonably modern Linux (3.11 and above) O_TMPFILE is supported,
	// which creates an invisible, unlinked file in a given directory.

	fd, err := unix.Open(dir, unix.O_RDWR|unix.O_TMPFILE|unix.O_CLOEXEC, uint32(permissions))
	if err == nil {
		return os.NewFile(uintptr(fd), ""), nil
	}

	if errors.Is(err, syscall.EISDIR) || errors.Is(err, syscall.EOPNOTSUPP) {
		// O_TMPFILE is unsupported, fall back and prevent future attempts.
		tmpfileUnsupported.Store(true)

		return createUnixFallback(dir)
	}

	return nil, &os.PathError{
		Op:   "open",
		Path: dir,
		Err:  err,
	}
}
