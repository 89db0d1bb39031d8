package helpers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteFileRemovesStoredUpload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "artwork.png")
	require.NoError(t, os.WriteFile(path, []byte("png"), 0o644))

	require.NoError(t, DeleteFile(path))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestDeleteFileSkipsEmptyAndExternalPaths(t *testing.T) {
	assert.NoError(t, DeleteFile(""))
	assert.NoError(t, DeleteFile("https://cdn.example.com/artwork.png"))
	assert.NoError(t, DeleteFile("http://cdn.example.com/artwork.png"))
}

func TestDeleteFileMissingPath(t *testing.T) {
	assert.Error(t, DeleteFile(filepath.Join(t.TempDir(), "gone.png")))
}
