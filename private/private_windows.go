//go:build windows

package private

import (
	"errors"
	"os"
	"path/filepath"

	"golang.org/x/sys/windows"

	"github.com/dparrini/go-tempfile/internal/namegen"
)

const maxAttempts = 100

// Create creates a temporary file in dir that will be automatically deleted
// on close. When dir is empty the OS default temp directory is used.
func Create(dir string) (*os.File, error) {
	if dir == "" {
		dir = os.TempDir()
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		name := filepath.Join(dir, "pt-"+namegen.Token())

		h, err := windows.CreateFile(
			windows.StringToUTF16Ptr(name),
			windows.GENERIC_READ|windows.GENERIC_WRITE|windows.DELETE,
			windows.FILE_SHARE_DELETE,
			nil,
			windows.CREATE_NEW,
			windows.FILE_ATTRIBUTE_TEMPORARY|windows.FILE_FLAG_DELETE_ON_CLOSE,
			0,
		)
		if errors.Is(err, windows.ERROR_FILE_EXISTS) {
			continue
		}

		if err != nil {
			return nil, &os.PathError{Op: "open", Path: name, Err: err}
		}

		return os.NewFile(uintptr(h), name), nil
	}

	return nil, errors.New("cannot create temporary file: name space exhausted")
}
