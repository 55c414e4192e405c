package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.rok.dev/rok/internal/adapters/config"
	"go.rok.dev/rok/internal/adapters/logger"
	"go.rok.dev/rok/internal/adapters/tree"
	"go.rok.dev/rok/internal/core/ports"
	"go.rok.dev/rok/internal/exec"
	"go.rok.dev/rok/internal/resolve"
	"go.rok.dev/rok/internal/scaffold"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			resolve.NodeID,
			exec.NodeID,
			scaffold.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.ProjectLoader](ctx)
			if err != nil {
				return nil, err
			}
			planner, err := graft.Dep[*resolve.Resolver](ctx)
			if err != nil {
				return nil, err
			}
			executor, err := graft.Dep[*exec.Executor](ctx)
			if err != nil {
				return nil, err
			}
			scaffolder, err := graft.Dep[*scaffold.Scaffolder](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(loader, planner, executor, scaffolder, log, tree.DefaultRoot()), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: application, Logger: log}, nil
		},
	})
}
