package ports

import (
	"context"
	"iter"
)

//go:generate mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks

// ChangeKind classifies a FileChange.
type ChangeKind uint8

const (
	ChangeCreated ChangeKind = iota
	ChangeWritten
	ChangeRemoved
	ChangeRenamed
)

// FileChange is a single change below a watched template root.
type FileChange struct {
	Path string
	Kind ChangeKind
}

// Watcher reports changes to the files below a directory tree.
// Directories created after Start are watched as well.
type Watcher interface {
	// Start watches root. Directories named in skip are not watched.
	Start(ctx context.Context, root string, skip []string) error
	Stop() error
	// Changes yields until the watcher stops or its context is canceled.
	Changes() iter.Seq[FileChange]
}
