package storage

import (
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Store saves and serves files under a single root directory. Names are
// sanitized before they ever touch the filesystem, so a resolved path can
// not escape the root.
type Store struct {
	Root string
}

// New creates the root directory if needed and returns a Store over it.
func New(root string) (*Store, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, err
	}
	return &Store{Root: root}, nil
}

// SanitizeFilename strips directory components and unsafe characters from a
// client-supplied filename. Returns "" when nothing safe remains.
func SanitizeFilename(name string) string {
	// Windows clients send backslash-separated paths
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(name)

	var b strings.Builder
	for _, r := range name {
		switch {
		case r == '/' || r == os.PathSeparator || r == 0:
		case r < 0x20 || r == 0x7f:
		default:
			b.WriteRune(r)
		}
	}
	name = b.String()

	if name == "." || name == ".." {
		return ""
	}
	return name
}

// Save writes r to name inside the root, overwriting any existing file of
// the same name. name must already be sanitized.
func (s *Store) Save(name string, r io.Reader) error {
	f, err := os.Create(filepath.Join(s.Root, name))
	if err != nil {
		return err
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// List returns the names of the regular files in the root.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.Root)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

// Open opens a previously stored file. name must already be sanitized.
func (s *Store) Open(name string) (*os.File, error) {
	return os.Open(filepath.Join(s.Root, name))
}
