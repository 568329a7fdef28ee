package usecase

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/oklog/ulid/v2"

	"github.com/mrsetia1/flowmint/internal/application/dto"
)

// maxExtLen caps how much of a client-supplied extension is kept.
const maxExtLen = 10

// UploadUseCase stores uploaded files through the configured ObjectStore.
type UploadUseCase struct {
	store ObjectStore
}

// NewUploadUseCase builds the use case.
func NewUploadUseCase(store ObjectStore) *UploadUseCase {
	return &UploadUseCase{store: store}
}

// Save writes the uploaded content under a fresh object key and returns the
// public path. The client filename is never used as the key; only its
// extension survives, sanitized.
func (uc *UploadUseCase) Save(ctx context.Context, originalName string, r io.Reader, size int64, contentType string) (*dto.UploadResponse, error) {
	key := newObjectKey(originalName)
	path, err := uc.store.Save(ctx, key, r, size, contentType)
	if err != nil {
		return nil, err
	}
	return &dto.UploadResponse{FilePath: path}, nil
}

// newObjectKey generates a ULID-based object name. ULIDs sort by creation
// time, which keeps bucket listings chronological.
func newObjectKey(originalName string) string {
	return strings.ToLower(ulid.Make().String()) + sanitizeExt(originalName)
}

func sanitizeExt(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if len(ext) < 2 || len(ext) > maxExtLen {
		return ""
	}
	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return ext
}
