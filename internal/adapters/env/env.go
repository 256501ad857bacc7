// Package env provides the environment snapshot adapter.
package env

import (
	"errors"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/joho/godotenv"
	"go.trai.ch/ship/internal/core/domain"
	"go.trai.ch/ship/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.Environment       = (*Snapshot)(nil)
	_ ports.EnvironmentLoader = (*Loader)(nil)
)

// Snapshot is an immutable copy of an environment.
type Snapshot struct {
	vars map[string]string
}

// NewSnapshot builds a Snapshot from "KEY=VALUE" entries. Later entries win.
func NewSnapshot(environ []string) *Snapshot {
	vars := make(map[string]string, len(environ))
	for _, entry := range environ {
		if k, v, ok := strings.Cut(entry, "="); ok && k != "" {
			vars[k] = v
		}
	}
	return &Snapshot{vars: vars}
}

// Environ returns every entry as "KEY=VALUE", sorted by key.
func (s *Snapshot) Environ() []string {
	keys := slices.Sorted(maps.Keys(s.vars))
	result := make([]string, 0, len(keys))
	for _, k := range keys {
		result = append(result, k+"="+s.vars[k])
	}
	return result
}

// Lookup returns the value of key and whether it is set.
func (s *Snapshot) Lookup(key string) (string, bool) {
	v, ok := s.vars[key]
	return v, ok
}

// Loader snapshots the process environment and overlays a project's .env file.
type Loader struct {
	environ func() []string
}

// NewLoader creates a Loader reading the current process environment.
func NewLoader() *Loader {
	return &Loader{environ: os.Environ}
}

// NewLoaderFrom creates a Loader reading the given environment instead of the process one.
func NewLoaderFrom(environ []string) *Loader {
	return &Loader{environ: func() []string { return slices.Clone(environ) }}
}

// Load returns the environment with variables from root/.env added.
// Process variables take precedence over the file. A missing file is not an error.
func (l *Loader) Load(root string) (ports.Environment, error) {
	snapshot := NewSnapshot(l.environ())

	path := filepath.Join(root, domain.EnvFileName)
	fileVars, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return snapshot, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrEnvFileLoadFailed.Error()), "path", path)
	}

	for k, v := range fileVars {
		if _, exists := snapshot.vars[k]; !exists {
			snapshot.vars[k] = v
		}
	}

	return snapshot, nil
}
