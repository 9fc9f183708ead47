// Package storage is the filesystem contract the editor core consumes
// : read/write/stat/list_dir. The only implementation shipped
// is an os-backed one; no pack example wraps a third-party filesystem
// abstraction for this, so stdlib is the grounded, justified choice (see
// DESIGN.md).
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Storage is the contract consumed by buffer.Load/Save.
type Storage interface {
	Read(path string) ([]byte, error)
	Write(path string, data []byte) error
	Stat(path string) (os.FileInfo, error)
	ListDir(path string) ([]string, error)
}

// OSStorage implements Storage directly against the local filesystem.
type OSStorage struct{}

// New returns the default, os-backed Storage.
func New() OSStorage { return OSStorage{} }

func (OSStorage) Read(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return data, nil
}

func (OSStorage) Write(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}

func (OSStorage) Stat(path string) (os.FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	return info, nil
}

// ListDir returns entry names sorted lexically, with a trailing "/" on
// directories, as requires.
func (OSStorage) ListDir(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", path, err)
	}

	names := make([]string, 0, len(entries))

	for _, e := range entries {
		name := e.Name()
		if e.IsDir() {
			name += "/"
		}

		names = append(names, name)
	}

	sort.Strings(names)

	return names, nil
}

// Exists is a small convenience used by buffer.Load callers that need to
// distinguish "new file" from "read error".
func Exists(s Storage, path string) bool {
	_, err := s.Stat(path)

	return err == nil
}

// Abs normalizes path the way :cd/:lcd want it applied.
func Abs(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("abs %s: %w", path, err)
	}

	return abs, nil
}
