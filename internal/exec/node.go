package exec

import (
	"context"

	"github.com/grindlemire/graft"
	"go.rok.dev/rok/internal/adapters/installer"
	"go.rok.dev/rok/internal/adapters/logger"
	"go.rok.dev/rok/internal/adapters/registry"
	"go.rok.dev/rok/internal/adapters/telemetry"
	"go.rok.dev/rok/internal/adapters/tree"
	"go.rok.dev/rok/internal/core/ports"
)

const NodeID graft.ID = "exec.executor"

func init() {
	graft.Register(graft.Node[*Executor]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{registry.NodeID, installer.NodeID, tree.StoreNodeID, telemetry.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Executor, error) {
			resolver, err := graft.Dep[ports.RockResolver](ctx)
			if err != nil {
				return nil, err
			}
			rockInstaller, err := graft.Dep[ports.RockInstaller](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[ports.LockfileStore](ctx)
			if err != nil {
				return nil, err
			}
			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(resolver, rockInstaller, store, tel, log), nil
		},
	})
}
