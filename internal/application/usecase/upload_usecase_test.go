package usecase

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureStore records the Save call and returns a fixed public path shape.
type captureStore struct {
	key         string
	contentType string
	body        string
}

func (s *captureStore) Save(_ context.Context, key string, r io.Reader, _ int64, contentType string) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	s.key, s.contentType, s.body = key, contentType, string(b)
	return "/uploads/" + key, nil
}

func TestUploadSave_GeneratesKeyAndReturnsPath(t *testing.T) {
	store := &captureStore{}
	uc := NewUploadUseCase(store)

	out, err := uc.Save(context.Background(), "photo.PNG", strings.NewReader("fake-bytes"), 10, "image/png")
	require.NoError(t, err)

	assert.Equal(t, "/uploads/"+store.key, out.FilePath)
	assert.Equal(t, "fake-bytes", store.body)
	assert.Equal(t, "image/png", store.contentType)

	// Key keeps only the sanitized extension, never the client name.
	assert.True(t, strings.HasSuffix(store.key, ".png"), "key %q should end in .png", store.key)
	assert.NotContains(t, store.key, "photo")
}

func TestSanitizeExt(t *testing.T) {
	assert.Equal(t, ".png", sanitizeExt("a.png"))
	assert.Equal(t, ".jpg", sanitizeExt("weird name.JPG"))
	assert.Equal(t, "", sanitizeExt("noext"))
	assert.Equal(t, "", sanitizeExt("escape.p/ng"))
	assert.Equal(t, "", sanitizeExt("dots..."))
	assert.Equal(t, "", sanitizeExt("long.extension-way-too-long"))
}

func TestNewObjectKey_Unique(t *testing.T) {
	k1 := newObjectKey("a.png")
	k2 := newObjectKey("a.png")
	assert.NotEqual(t, k1, k2)
}
