// Package osfs defines the filesystem surface the library relies on and its
// operating-system-backed implementation. The interface exists so tests can
// substitute failure-injecting implementations.
package osfs

import (
	"os"
	"path/filepath"
)

// Interface is the set of filesystem primitives used to create and clean up
// temporary resources.
type Interface interface {
	Mkdir(path string, perm os.FileMode) error
	CreateNewFile(path string, perm os.FileMode) error
	Remove(path string) error
	RemoveAll(path string) error
	Exists(path string) bool
	IsDir(path string) bool
	RegularFiles(dir string) []string
}

// Real is an Interface backed by the operating system.
type Real struct{}

func (Real) Mkdir(path string, perm os.FileMode) error {
	//nolint:wrapcheck
	return os.Mkdir(path, perm)
}

// CreateNewFile creates an empty file at the given path, failing if a file
// already exists there.
func (Real) CreateNewFile(path string, perm os.FileMode) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		//nolint:wrapcheck
		return err
	}

	//nolint:wrapcheck
	return f.Close()
}

func (Real) Remove(path string) error {
	//nolint:wrapcheck
	return os.Remove(path)
}

func (Real) RemoveAll(path string) error {
	//nolint:wrapcheck
	return os.RemoveAll(path)
}

func (Real) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (Real) IsDir(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}

// RegularFiles lists the immediate children of dir that are regular files.
// A directory that cannot be read yields an empty result.
func (Real) RegularFiles(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var files []string

	for _, e := range entries {
		if e.Type().IsRegular() {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}

	return files
}

var _ Interface = Real{}
