package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore_SaveWritesFileAndReturnsPath(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir)
	require.NoError(t, err)

	path, err := store.Save(context.Background(), "01abc.png", strings.NewReader("image-bytes"), 11, "image/png")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/01abc.png", path)

	got, err := os.ReadFile(filepath.Join(dir, "01abc.png"))
	require.NoError(t, err)
	assert.Equal(t, "image-bytes", string(got))
}

func TestNewLocalStore_CreatesNestedDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	_, err := NewLocalStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
