package resolve

import (
	"context"

	"github.com/grindlemire/graft"
	"go.rok.dev/rok/internal/adapters/prompt"
	"go.rok.dev/rok/internal/adapters/tree"
	"go.rok.dev/rok/internal/core/ports"
)

const NodeID graft.ID = "resolve.planner"

func init() {
	graft.Register(graft.Node[*Resolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{tree.NodeID, prompt.NodeID},
		Run: func(ctx context.Context) (*Resolver, error) {
			installTree, err := graft.Dep[ports.InstallTree](ctx)
			if err != nil {
				return nil, err
			}
			prompter, err := graft.Dep[ports.Prompter](ctx)
			if err != nil {
				return nil, err
			}
			return New(installTree, prompter), nil
		},
	})
}
