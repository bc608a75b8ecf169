package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndDelete(t *testing.T) {
	local, err := NewLocal(t.TempDir(), "/uploads")
	require.NoError(t, err)

	url, err := local.Save("workers", "photo.JPG", strings.NewReader("image-bytes"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/uploads/workers/"))
	assert.True(t, strings.HasSuffix(url, ".jpg"))

	rel := strings.TrimPrefix(url, "/uploads/")
	onDisk := filepath.Join(local.Root(), filepath.FromSlash(rel))
	content, err := os.ReadFile(onDisk)
	require.NoError(t, err)
	assert.Equal(t, "image-bytes", string(content))

	require.NoError(t, local.Delete(url))
	_, err = os.Stat(onDisk)
	assert.True(t, os.IsNotExist(err))
}

func TestSaveRejectsUnknownExtension(t *testing.T) {
	local, err := NewLocal(t.TempDir(), "/uploads")
	require.NoError(t, err)

	_, err = local.Save("workers", "payload.exe", strings.NewReader("nope"))
	assert.ErrorIs(t, err, ErrUnsupportedExtension)
}

func TestSaveGeneratesUniqueFilenames(t *testing.T) {
	local, err := NewLocal(t.TempDir(), "/uploads")
	require.NoError(t, err)

	first, err := local.Save("workers", "photo.png", strings.NewReader("a"))
	require.NoError(t, err)
	second, err := local.Save("workers", "photo.png", strings.NewReader("b"))
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestDeleteIgnoresForeignPaths(t *testing.T) {
	local, err := NewLocal(t.TempDir(), "/uploads")
	require.NoError(t, err)

	assert.NoError(t, local.Delete("/somewhere/else.png"))
	assert.NoError(t, local.Delete("/uploads/../escape.png"))
	assert.NoError(t, local.Delete("/uploads/workers/missing.png"))
}
