// Package ledger stores one build record per target under the output root.
package ledger

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/ship/internal/core/domain"
	"go.trai.ch/ship/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.RecordStore = (*Store)(nil)

const recordExt = ".json"

// Store implements ports.RecordStore using a file-per-target strategy.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Get retrieves the record of target, or nil when the target was never packaged.
func (s *Store) Get(outputRoot string, target domain.BuildTarget) (*domain.BuildRecord, error) {
	return readRecord(recordPath(outputRoot, target))
}

// Put stores record, replacing any previous record of the same target.
func (s *Store) Put(outputRoot string, record domain.BuildRecord) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrRecordMarshalFailed.Error())
	}

	filename := recordPath(outputRoot, record.Target)
	if err := os.MkdirAll(filepath.Dir(filename), domain.DirPerm); err != nil {
		return errors.Join(domain.ErrIO, zerr.Wrap(err, domain.ErrRecordWriteFailed.Error()))
	}

	//nolint:gosec // Path is constructed from the output root and a known target name
	if err := os.WriteFile(filename, append(data, '\n'), domain.FilePerm); err != nil {
		return errors.Join(domain.ErrIO, zerr.Wrap(err, domain.ErrRecordWriteFailed.Error()))
	}

	return nil
}

// List returns every stored record ordered by target name.
func (s *Store) List(outputRoot string) ([]domain.BuildRecord, error) {
	dir := domain.RecordsPath(outputRoot)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, errors.Join(domain.ErrIO, zerr.Wrap(err, domain.ErrRecordReadFailed.Error()))
	}

	var records []domain.BuildRecord
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), recordExt) {
			continue
		}
		record, err := readRecord(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		if record != nil {
			records = append(records, *record)
		}
	}

	return records, nil
}

func readRecord(filename string) (*domain.BuildRecord, error) {
	//nolint:gosec // Path is constructed from the output root and a known target name
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, errors.Join(domain.ErrIO, zerr.Wrap(err, domain.ErrRecordReadFailed.Error()))
	}

	var record domain.BuildRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRecordUnmarshalFailed.Error()), "path", filename)
	}

	return &record, nil
}

func recordPath(outputRoot string, target domain.BuildTarget) string {
	return filepath.Join(domain.RecordsPath(outputRoot), target.String()+recordExt)
}
