package disk

import (
	"fmt"
	"os"
	"path/filepath"
)

// Store archives uploaded files under a local directory. It implements
// port.FileArchiver.
type Store struct {
	dir string
}

// NewStore creates a Store rooted at dir. The directory is created on first
// save, not here, so a disabled-then-enabled archive needs no setup step.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Save writes content under the archive directory and returns the saved
// path. Only the base name of the upload is used, so path traversal in a
// client-supplied filename cannot escape the directory.
func (s *Store) Save(content []byte, filename string) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("creating archive dir: %w", err)
	}

	path := filepath.Join(s.dir, filepath.Base(filename))
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}
