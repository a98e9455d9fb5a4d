package tempfile

import (
	"os"
	"sync/atomic"

	"github.com/pkg/errors"

	"github.com/dparrini/go-tempfile/internal/osfs"
)

// mockFS wraps another filesystem implementation and injects a configured
// number of failures or name collisions before delegating.
type mockFS struct {
	osfs.Interface

	mkdirRemainingErrors         int32
	createNewFileRemainingErrors int32
	removeAllRemainingErrors     int32
	existsRemainingCollisions    int32
}

func (m *mockFS) Mkdir(path string, perm os.FileMode) error {
	if atomic.AddInt32(&m.mkdirRemainingErrors, -1) >= 0 {
		return errors.Errorf("underlying problem")
	}

	return m.Interface.Mkdir(path, perm)
}

func (m *mockFS) CreateNewFile(path string, perm os.FileMode) error {
	if atomic.AddInt32(&m.createNewFileRemainingErrors, -1) >= 0 {
		return errors.Errorf("underlying problem")
	}

	return m.Interface.CreateNewFile(path, perm)
}

func (m *mockFS) RemoveAll(path string) error {
	if atomic.AddInt32(&m.removeAllRemainingErrors, -1) >= 0 {
		return errors.Errorf("underlying problem")
	}

	return m.Interface.RemoveAll(path)
}

func (m *mockFS) Exists(path string) bool {
	if atomic.AddInt32(&m.existsRemainingCollisions, -1) >= 0 {
		return true
	}

	return m.Interface.Exists(path)
}
