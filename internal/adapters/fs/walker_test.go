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

func TestWalker_WalkFiles(t *testing.T) {
	tmpDir := t.TempDir()

	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "dir1"), 0o750))
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "dir2"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "file1.txt"), []byte("content1"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "dir1", "file2.txt"), []byte("content2"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "dir2", "file3.txt"), []byte("content3"), 0o600))

	var files []string
	for p, err := range fs.NewWalker().WalkFiles(tmpDir, nil) {
		require.NoError(t, err)
		files = append(files, p)
	}

	assert.Equal(t, []string{
		filepath.Join(tmpDir, "dir1", "file2.txt"),
		filepath.Join(tmpDir, "dir2", "file3.txt"),
		filepath.Join(tmpDir, "file1.txt"),
	}, files)
}

func TestWalker_WalkFiles_SkipsMarkedPaths(t *testing.T) {
	tmpDir := t.TempDir()

	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "Config", ".svn", "pristine"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "Config", ".svn", "pristine", "version.txt"), []byte("x"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "Config", "version.txt"), []byte("y"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "notes.svn-base"), []byte("z"), 0o600))

	var files []string
	for p, err := range fs.NewWalker().WalkFiles(tmpDir, []string{".svn"}) {
		require.NoError(t, err)
		files = append(files, p)
	}

	assert.Equal(t, []string{filepath.Join(tmpDir, "Config", "version.txt")}, files)
}

func TestWalker_WalkFiles_MissingRoot(t *testing.T) {
	var files []string
	for p, err := range fs.NewWalker().WalkFiles(filepath.Join(t.TempDir(), "missing"), nil) {
		require.NoError(t, err)
		files = append(files, p)
	}

	assert.Empty(t, files)
}

func TestWalker_WalkFiles_ReadFailure(t *testing.T) {
	file := filepath.Join(t.TempDir(), "version.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))

	var errs []error
	for p, err := range fs.NewWalker().WalkFiles(filepath.Join(file, "Config"), nil) {
		assert.Empty(t, p)
		errs = append(errs, err)
	}

	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], domain.ErrIO)
	assert.ErrorContains(t, errs[0], domain.ErrWalkFailed.Error())
}

func TestWalker_WalkFiles_EarlyBreak(t *testing.T) {
	tmpDir := t.TempDir()
	for _, name := range []string{"a", "b", "c"} {
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, name), nil, 0o600))
	}

	count := 0
	for range fs.NewWalker().WalkFiles(tmpDir, nil) {
		count++
		break
	}

	assert.Equal(t, 1, count)
}

func TestMatchesAny(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		patterns []string
		want     bool
	}{
		{name: "no patterns", path: "Data/a.txt", patterns: nil, want: false},
		{name: "substring in directory", path: "Data/.svn/entries", patterns: []string{".svn"}, want: true},
		{name: "substring in file name", path: "Data/a.meta", patterns: []string{".meta"}, want: true},
		{name: "empty pattern ignored", path: "Data/a.txt", patterns: []string{""}, want: false},
		{name: "no match", path: "Data/a.txt", patterns: []string{".svn", "Temp"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fs.MatchesAny(tt.path, tt.patterns))
		})
	}
}
