package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mrsetia1/flowmint/internal/application/usecase"
)

var _ usecase.ObjectStore = (*LocalStore)(nil)

// LocalStore writes uploads to a directory on disk. Files land under dir
// and are served back at /uploads/<key> by the HTTP layer's static route.
type LocalStore struct {
	dir string
}

// NewLocalStore creates the upload directory if needed.
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStore{dir: dir}, nil
}

// Save writes the object to disk and returns its public path. The key is
// generated upstream (ULID + sanitized extension) so a plain Join is safe.
func (s *LocalStore) Save(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error) {
	f, err := os.Create(filepath.Join(s.dir, key))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		// Remove the partial file; an aborted upload must not leave state.
		os.Remove(f.Name())
		return "", fmt.Errorf("write upload: %w", err)
	}
	return "/uploads/" + key, nil
}
