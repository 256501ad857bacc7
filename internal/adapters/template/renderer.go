// Package template renders build metadata templates.
package template

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/ship/internal/core/domain"
	"go.trai.ch/ship/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.TemplateRenderer = (*Renderer)(nil)

// Renderer writes rendered templates to disk.
type Renderer struct{}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render reads the template, substitutes placeholders, and overwrites the output file.
// Unknown placeholders are kept verbatim unless the job is strict.
func (r *Renderer) Render(job domain.TemplateJob) (string, error) {
	rel, err := OutputPath(job.TemplateRoot, job.Path)
	if err != nil {
		return "", err
	}

	text, err := os.ReadFile(job.Path)
	if err != nil {
		return "", errors.Join(domain.ErrIO, zerr.With(zerr.Wrap(err, domain.ErrTemplateRead.Error()), "template", job.Path))
	}

	rendered, missing := Substitute(string(text), job.Substitutions)
	if job.Strict && len(missing) > 0 {
		err := zerr.With(domain.ErrTemplateUnresolved, "template", job.Path)
		err = zerr.With(err, "placeholders", strings.Join(missing, ","))
		return "", errors.Join(domain.ErrTemplate, err)
	}

	out := filepath.Join(job.OutputDir, rel)
	if err := os.MkdirAll(filepath.Dir(out), domain.DirPerm); err != nil {
		return "", errors.Join(domain.ErrIO, zerr.With(zerr.Wrap(err, domain.ErrOutputParentCreate.Error()), "path", out))
	}
	if err := os.WriteFile(out, []byte(rendered), domain.FilePerm); err != nil {
		return "", errors.Join(domain.ErrIO, zerr.With(zerr.Wrap(err, domain.ErrTemplateWrite.Error()), "path", out))
	}

	return out, nil
}

// OutputPath strips the template root and one separator from path.
func OutputPath(templateRoot, path string) (string, error) {
	prefix := filepath.Clean(templateRoot) + string(filepath.Separator)
	cleaned := filepath.Clean(path)

	if !strings.HasPrefix(cleaned, prefix) {
		err := zerr.With(domain.ErrTemplateOutsideRoot, "template", path)
		return "", errors.Join(domain.ErrTemplate, zerr.With(err, "root", templateRoot))
	}

	return cleaned[len(prefix):], nil
}

// Substitute replaces every $KEY$ whose KEY is in substitutions in a single pass.
// Replacement values are not scanned again. An unknown placeholder is kept
// verbatim and its closing "$" may open the next one, so "$X$KEY$" still
// resolves KEY. It returns the sorted names of placeholders that had no
// substitution.
func Substitute(text string, substitutions map[string]string) (string, []string) {
	var (
		b       strings.Builder
		missing []string
	)
	b.Grow(len(text))

	for i := 0; i < len(text); {
		if text[i] != '$' {
			b.WriteByte(text[i])
			i++
			continue
		}

		n := nameLen(text[i+1:])
		end := i + 1 + n
		if n == 0 || end >= len(text) || text[end] != '$' {
			b.WriteByte('$')
			i++
			continue
		}

		key := text[i+1 : end]
		if v, ok := substitutions[key]; ok {
			b.WriteString(v)
			i = end + 1
			continue
		}

		if !slices.Contains(missing, key) {
			missing = append(missing, key)
		}
		b.WriteString(text[i:end])
		i = end
	}

	slices.Sort(missing)
	return b.String(), missing
}

// nameLen returns the length of the placeholder name at the start of s.
// Names start with a letter or underscore followed by letters, digits, or underscores.
func nameLen(s string) int {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '_', c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z':
		case c >= '0' && c <= '9' && i > 0:
		default:
			return i
		}
	}
	return len(s)
}
