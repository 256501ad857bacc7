package ports

import "iter"

// DirectoryCopier replicates directory trees.
//
//go:generate mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type DirectoryCopier interface {
	// CopyTree mirrors src into dst, skipping every entry whose path contains
	// one of ignorePatterns together with its subtree.
	CopyTree(src, dst string, ignorePatterns []string) error
}

// FileWalker enumerates files below a root.
type FileWalker interface {
	// WalkFiles yields every file under root whose path contains none of skip.
	// A failure to read part of the tree is yielded once as an error and ends the walk.
	WalkFiles(root string, skip []string) iter.Seq2[string, error]
}

// Hasher computes content digests.
type Hasher interface {
	// ComputeFileHash returns the hex digest of the file at path.
	ComputeFileHash(path string) (string, error)
}
