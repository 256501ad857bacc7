package ports

import "go.trai.ch/ship/internal/core/domain"

// RecordStore persists the last build record of each target.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type RecordStore interface {
	// Get returns the record for target under outputRoot.
	// Returns nil, nil if not found.
	Get(outputRoot string, target domain.BuildTarget) (*domain.BuildRecord, error)

	// Put stores the record.
	Put(outputRoot string, record domain.BuildRecord) error

	// List returns every stored record ordered by target.
	List(outputRoot string) ([]domain.BuildRecord, error)
}
