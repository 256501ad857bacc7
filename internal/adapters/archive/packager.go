// Package archive packages build outputs into bundle archives.
package archive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/jonboulle/clockwork"
	"github.com/klauspost/compress/zip"
	"go.trai.ch/ship/internal/core/domain"
	"go.trai.ch/ship/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Packager = (*Packager)(nil)

// tempSuffix marks an archive that is still being written.
const tempSuffix = ".tmp"

// Packager writes zip bundles.
type Packager struct {
	clock  clockwork.Clock
	hasher ports.Hasher
	logger ports.Logger
}

// NewPackager creates a new Packager.
func NewPackager(clock clockwork.Clock, hasher ports.Hasher, logger ports.Logger) *Packager {
	return &Packager{clock: clock, hasher: hasher, logger: logger}
}

// PackageWithData archives the artifact and the shared data directory under "Data".
func (p *Packager) PackageWithData(
	ctx context.Context, layout ports.ArchiveLayout, artifactRelPath, bundleName string,
) (*domain.ArchiveResult, error) {
	return p.pack(ctx, layout, artifactRelPath, bundleName, true)
}

// PackageWithoutData archives the artifact alone.
func (p *Packager) PackageWithoutData(
	ctx context.Context, layout ports.ArchiveLayout, artifactRelPath, bundleName string,
) (*domain.ArchiveResult, error) {
	return p.pack(ctx, layout, artifactRelPath, bundleName, false)
}

func (p *Packager) pack(
	ctx context.Context, layout ports.ArchiveLayout, artifactRelPath, bundleName string, withData bool,
) (*domain.ArchiveResult, error) {
	artifact := filepath.Join(layout.OutputRoot, artifactRelPath)
	if _, err := os.Stat(artifact); err != nil {
		return nil, errors.Join(domain.ErrIO, zerr.With(zerr.Wrap(err, domain.ErrArtifactNotFound.Error()), "artifact", artifact))
	}
	if withData {
		if _, err := os.Stat(layout.DataDir); err != nil {
			return nil, errors.Join(domain.ErrIO, zerr.With(zerr.Wrap(err, domain.ErrArtifactNotFound.Error()), "data", layout.DataDir))
		}
	}

	ext := layout.Ext
	if ext == "" {
		ext = domain.DefaultArchiveExt
	}
	final := filepath.Join(layout.OutputRoot, bundleName+ext)
	tmp := final + tempSuffix

	entries, err := p.write(ctx, tmp, artifact, filepath.ToSlash(artifactRelPath), layout.DataDir, withData)
	if err != nil {
		_ = os.Remove(tmp)
		return nil, err
	}

	if err := os.Rename(tmp, final); err != nil {
		_ = os.Remove(tmp)
		return nil, errors.Join(domain.ErrIO, zerr.With(zerr.Wrap(err, domain.ErrArchiveFinalize.Error()), "archive", final))
	}

	info, err := os.Stat(final)
	if err != nil {
		return nil, errors.Join(domain.ErrIO, zerr.With(zerr.Wrap(err, domain.ErrArchiveFinalize.Error()), "archive", final))
	}
	checksum, err := p.hasher.ComputeFileHash(final)
	if err != nil {
		return nil, err
	}

	p.logger.Info(fmt.Sprintf("packaged %s (%s, %d entries)", final, humanize.Bytes(uint64(info.Size())), entries)) //nolint:gosec // Size is never negative

	return &domain.ArchiveResult{
		Path:     final,
		Size:     info.Size(),
		Checksum: checksum,
		Entries:  entries,
	}, nil
}

// write creates the archive at dest. The zip writer and the file are closed on every path.
func (p *Packager) write(
	ctx context.Context, dest, artifact, artifactEntry, dataDir string, withData bool,
) (entries int, err error) {
	f, err := os.Create(dest) //nolint:gosec // Destination is under the output root
	if err != nil {
		return 0, errors.Join(domain.ErrIO, zerr.With(zerr.Wrap(err, domain.ErrArchiveCreate.Error()), "archive", dest))
	}

	zw := zip.NewWriter(f)
	defer func() {
		if cerr := zw.Close(); cerr != nil && err == nil {
			err = errors.Join(domain.ErrIO, zerr.With(zerr.Wrap(cerr, domain.ErrArchiveFinalize.Error()), "archive", dest))
		}
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Join(domain.ErrIO, zerr.With(zerr.Wrap(cerr, domain.ErrArchiveFinalize.Error()), "archive", dest))
		}
	}()

	comment := "This archive was created at " + p.clock.Now().Format(domain.ArchiveCommentLayout)
	if err := zw.SetComment(comment); err != nil {
		return 0, errors.Join(domain.ErrIO, zerr.With(zerr.Wrap(err, domain.ErrArchiveFinalize.Error()), "archive", dest))
	}

	info, err := os.Stat(artifact)
	if err != nil {
		return 0, errors.Join(domain.ErrIO, zerr.With(zerr.Wrap(err, domain.ErrArtifactNotFound.Error()), "artifact", artifact))
	}

	var n int
	if info.IsDir() {
		n, err = addTree(ctx, zw, artifact, artifactEntry)
	} else {
		n, err = addFile(zw, artifact, path.Base(artifactEntry), info)
	}
	entries += n
	if err != nil {
		return entries, err
	}

	if withData {
		n, err = addTree(ctx, zw, dataDir, domain.DataEntryPrefix)
		entries += n
		if err != nil {
			return entries, err
		}
	}

	return entries, nil
}

// addTree adds root and its subtree with entry names under prefix.
func addTree(ctx context.Context, zw *zip.Writer, root, prefix string) (int, error) {
	count := 0
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		name := prefix
		if rel != "." {
			name = path.Join(prefix, filepath.ToSlash(rel))
		}

		info, err := d.Info()
		if err != nil {
			return err
		}

		if d.IsDir() {
			if err := addDir(zw, name, info); err != nil {
				return err
			}
			count++
			return nil
		}

		switch {
		case info.Mode()&fs.ModeSymlink != 0:
			if err := addLink(zw, p, name, info); err != nil {
				return err
			}
		case info.Mode().IsRegular():
			if _, err := addFile(zw, p, name, info); err != nil {
				return err
			}
		default:
			return nil
		}
		count++
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrIO) {
			return count, err
		}
		return count, errors.Join(domain.ErrIO, zerr.With(zerr.Wrap(err, domain.ErrArchiveWrite.Error()), "root", root))
	}
	return count, nil
}

func addDir(zw *zip.Writer, name string, info fs.FileInfo) error {
	hdr, err := zip.FileInfoHeader(info)
	if err != nil {
		return entryError(err, name)
	}
	hdr.Name = name + "/"
	hdr.Method = zip.Store
	if _, err := zw.CreateHeader(hdr); err != nil {
		return entryError(err, name)
	}
	return nil
}

func addFile(zw *zip.Writer, src, name string, info fs.FileInfo) (int, error) {
	hdr, err := zip.FileInfoHeader(info)
	if err != nil {
		return 0, entryError(err, name)
	}
	hdr.Name = name
	hdr.Method = zip.Deflate

	w, err := zw.CreateHeader(hdr)
	if err != nil {
		return 0, entryError(err, name)
	}

	f, err := os.Open(src) //nolint:gosec // Source is below the output root
	if err != nil {
		return 0, entryError(err, name)
	}
	defer f.Close() //nolint:errcheck // Read-only file

	if _, err := io.Copy(w, f); err != nil {
		return 0, entryError(err, name)
	}
	return 1, nil
}

// addLink stores a symbolic link as a link entry whose body is the link target.
func addLink(zw *zip.Writer, src, name string, info fs.FileInfo) error {
	target, err := os.Readlink(src)
	if err != nil {
		return entryError(err, name)
	}

	hdr, err := zip.FileInfoHeader(info)
	if err != nil {
		return entryError(err, name)
	}
	hdr.Name = name
	hdr.Method = zip.Store

	w, err := zw.CreateHeader(hdr)
	if err != nil {
		return entryError(err, name)
	}
	if _, err := io.WriteString(w, filepath.ToSlash(target)); err != nil {
		return entryError(err, name)
	}
	return nil
}

func entryError(err error, name string) error {
	return errors.Join(domain.ErrIO, zerr.With(zerr.Wrap(err, domain.ErrArchiveWrite.Error()), "entry", name))
}
