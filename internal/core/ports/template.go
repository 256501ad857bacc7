package ports

import "go.trai.ch/ship/internal/core/domain"

// TemplateRenderer renders a single text template to disk.
//
//go:generate mockgen -source=template.go -destination=mocks/mock_template.go -package=mocks
type TemplateRenderer interface {
	// Render reads job.Path, substitutes every known placeholder, and writes
	// the result below job.OutputDir with the template root prefix removed.
	// It returns the path written.
	Render(job domain.TemplateJob) (string, error)
}
