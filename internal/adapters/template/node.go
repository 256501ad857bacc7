package template

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ship/internal/core/ports"
)

// NodeID is the unique identifier for the template renderer Graft node.
const NodeID graft.ID = "adapter.template"

func init() {
	graft.Register(graft.Node[ports.TemplateRenderer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.TemplateRenderer, error) {
			return NewRenderer(), nil
		},
	})
}
