package scaffold

import (
	"context"
	"fmt"

	"github.com/grindlemire/graft"
	"go.rok.dev/rok/internal/adapters/prompt"
	"go.rok.dev/rok/internal/core/ports"
)

const NodeID graft.ID = "scaffold.creator"

func init() {
	graft.Register(graft.Node[*Scaffolder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{prompt.NodeID},
		Run: func(ctx context.Context) (*Scaffolder, error) {
			prompter, err := graft.Dep[ports.Prompter](ctx)
			if err != nil {
				return nil, err
			}
			text, ok := prompter.(TextPrompter)
			if !ok {
				return nil, fmt.Errorf("prompter %T does not support free text input", prompter)
			}
			return New(prompter, text), nil
		},
	})
}
