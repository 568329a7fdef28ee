package usecase

import (
	"context"
	"io"
)

// ObjectStore is the upload storage port. Save writes the object under key
// and returns the public path or URL where it can be fetched. Implemented
// by the local-disk and S3 drivers in infrastructure/storage.
type ObjectStore interface {
	Save(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error)
}
