package registry

import (
	"context"
	"path/filepath"

	"github.com/grindlemire/graft"
	"go.rok.dev/rok/internal/core/ports"
)

const NodeID graft.ID = "adapter.rock_resolver"

func init() {
	graft.Register(graft.Node[ports.RockResolver]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.RockResolver, error) {
			return NewResolver(filepath.Join(".rok", "cache", "registry.json")), nil
		},
	})
}
