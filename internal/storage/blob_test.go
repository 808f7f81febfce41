package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskBlobStorePut(t *testing.T) {
	dir := t.TempDir()
	store := NewDiskBlobStore(dir, "/profile-images")

	ref, err := store.Put([]byte("image bytes"), "image/png", "avatar.png")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(ref, "/profile-images/"))
	assert.True(t, strings.HasSuffix(ref, "_avatar.png"), "original name kept as suffix")

	data, err := os.ReadFile(filepath.Join(dir, filepath.Base(ref)))
	require.NoError(t, err)
	assert.Equal(t, []byte("image bytes"), data)
}

func TestDiskBlobStorePutGeneratesUniqueNames(t *testing.T) {
	store := NewDiskBlobStore(t.TempDir(), "/profile-images")

	first, err := store.Put([]byte("a"), "image/png", "avatar.png")
	require.NoError(t, err)
	second, err := store.Put([]byte("b"), "image/png", "avatar.png")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "same original name must not collide")
}

func TestDiskBlobStorePutWithoutOriginalName(t *testing.T) {
	dir := t.TempDir()
	store := NewDiskBlobStore(dir, "/profile-images")

	ref, err := store.Put([]byte("a"), "image/webp", "")
	require.NoError(t, err)
	assert.NotContains(t, filepath.Base(ref), "_")

	_, err = os.Stat(filepath.Join(dir, filepath.Base(ref)))
	assert.NoError(t, err)
}

func TestDiskBlobStorePutStripsDirectoryFromName(t *testing.T) {
	dir := t.TempDir()
	store := NewDiskBlobStore(dir, "/profile-images")

	ref, err := store.Put([]byte("a"), "image/png", "../../etc/passwd")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(ref, "_passwd"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "the blob lands inside the root directory")
}

func TestDiskBlobStorePutEmptyData(t *testing.T) {
	store := NewDiskBlobStore(t.TempDir(), "/profile-images")

	_, err := store.Put(nil, "image/png", "avatar.png")
	assert.ErrorIs(t, err, ErrEmptyBlob)
}

func TestDiskBlobStoreCreatesRootDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	store := NewDiskBlobStore(dir, "/profile-images")

	_, err := store.Put([]byte("a"), "image/png", "avatar.png")
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
