package installer

import (
	"context"

	"github.com/grindlemire/graft"
	"go.rok.dev/rok/internal/core/ports"
)

const NodeID graft.ID = "adapter.rock_installer"

func init() {
	graft.Register(graft.Node[ports.RockInstaller]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.RockInstaller, error) {
			return New(), nil
		},
	})
}
