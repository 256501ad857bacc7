// Package fs provides file system adapters for walking, copying, and hashing files.
package fs

import (
	"errors"
	"io/fs"
	"iter"
	"path/filepath"
	"strings"

	"go.trai.ch/ship/internal/core/domain"
	"go.trai.ch/ship/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FileWalker = (*Walker)(nil)

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields every file under root in lexical order. Any path containing
// one of skip is left out, and a matching directory is not descended into.
// A missing root yields nothing. Any other read failure is yielded as an
// ErrIO error and ends the walk.
func (w *Walker) WalkFiles(root string, skip []string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		stopped := false
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if path == root && errors.Is(err, fs.ErrNotExist) {
					return filepath.SkipAll
				}
				return zerr.With(zerr.Wrap(err, domain.ErrWalkFailed.Error()), "path", path)
			}

			if MatchesAny(path, skip) {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			if d.IsDir() {
				return nil
			}

			if !yield(path, nil) {
				stopped = true
				return filepath.SkipAll
			}

			return nil
		})
		if err != nil && !stopped {
			yield("", errors.Join(domain.ErrIO, err))
		}
	}
}

// MatchesAny reports whether path contains any of patterns as a substring.
func MatchesAny(path string, patterns []string) bool {
	for _, p := range patterns {
		if p != "" && strings.Contains(path, p) {
			return true
		}
	}
	return false
}
