package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ship/internal/adapters/fs"
	"go.trai.ch/ship/internal/core/domain"
)

func TestHasher_ComputeFileHash(t *testing.T) {
	path := filepath.Join(t.TempDir(), "App_win64.zip")
	require.NoError(t, os.WriteFile(path, []byte("hello world"), 0o600))

	h := fs.NewHasher()

	first, err := h.ComputeFileHash(path)
	require.NoError(t, err)
	assert.Len(t, first, 16)

	second, err := h.ComputeFileHash(path)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	require.NoError(t, os.WriteFile(path, []byte("hello world!"), 0o600))
	third, err := h.ComputeFileHash(path)
	require.NoError(t, err)
	assert.NotEqual(t, first, third)
}

func TestHasher_ComputeFileHash_Missing(t *testing.T) {
	_, err := fs.NewHasher().ComputeFileHash(filepath.Join(t.TempDir(), "missing"))

	assert.ErrorIs(t, err, domain.ErrIO)
}
