package fs

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/ship/internal/core/domain"
	"go.trai.ch/ship/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.DirectoryCopier = (*Copier)(nil)

// Copier mirrors directory trees.
type Copier struct{}

// NewCopier creates a new Copier.
func NewCopier() *Copier {
	return &Copier{}
}

// CopyTree mirrors src into dst. Entries whose path contains any of
// ignorePatterns are skipped together with their subtree. Existing files at
// the destination are overwritten. A failed copy is not rolled back.
func (c *Copier) CopyTree(src, dst string, ignorePatterns []string) error {
	info, err := os.Stat(src)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return errors.Join(domain.ErrIO, zerr.With(domain.ErrSourceNotFound, "src", src))
		}
		return copyError(err, src)
	}
	if !info.IsDir() {
		return errors.Join(domain.ErrIO, zerr.With(domain.ErrSourceNotFound, "src", src))
	}

	dst = withTrailingSeparator(dst)
	if err := os.MkdirAll(dst, domain.DirPerm); err != nil {
		return copyError(err, dst)
	}

	return c.copyDir(src, dst, ignorePatterns)
}

// copyDir expects dst to end with a separator and to exist.
func (c *Copier) copyDir(src, dst string, ignorePatterns []string) error {
	entries, err := os.ReadDir(src)
	if err != nil {
		return copyError(err, src)
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		if MatchesAny(srcPath, ignorePatterns) {
			continue
		}
		dstPath := dst + entry.Name()

		isDir := entry.IsDir()
		if entry.Type()&fs.ModeSymlink != 0 {
			target, err := os.Stat(srcPath)
			if err != nil {
				return copyError(err, srcPath)
			}
			isDir = target.IsDir()
		}

		if isDir {
			if err := os.MkdirAll(dstPath, domain.DirPerm); err != nil {
				return copyError(err, dstPath)
			}
			if err := c.copyDir(srcPath, withTrailingSeparator(dstPath), ignorePatterns); err != nil {
				return err
			}
			continue
		}

		if err := copyFile(srcPath, dstPath); err != nil {
			return err
		}
	}

	return nil
}

func copyFile(src, dst string) (err error) {
	in, err := os.Open(src) //nolint:gosec // Path comes from walking the copy source
	if err != nil {
		return copyError(err, src)
	}
	defer func() {
		_ = in.Close()
	}()

	info, err := in.Stat()
	if err != nil {
		return copyError(err, src)
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, info.Mode().Perm()) //nolint:gosec // Destination mirrors the source tree
	if err != nil {
		return copyError(err, dst)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = copyError(cerr, dst)
		}
	}()

	if _, err := io.Copy(out, in); err != nil {
		return copyError(err, dst)
	}
	return nil
}

func copyError(err error, path string) error {
	return errors.Join(domain.ErrIO, zerr.With(zerr.Wrap(err, domain.ErrCopyFailed.Error()), "path", path))
}

func withTrailingSeparator(p string) string {
	if strings.HasSuffix(p, string(filepath.Separator)) {
		return p
	}
	return p + string(filepath.Separator)
}
