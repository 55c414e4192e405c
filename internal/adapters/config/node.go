package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.rok.dev/rok/internal/core/ports"
)

const NodeID graft.ID = "adapter.project_loader"

func init() {
	graft.Register(graft.Node[ports.ProjectLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.ProjectLoader, error) {
			return NewLoader(), nil
		},
	})
}
