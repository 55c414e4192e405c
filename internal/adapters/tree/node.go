package tree

import (
	"context"
	"os"
	"path/filepath"

	"github.com/grindlemire/graft"
	"go.rok.dev/rok/internal/core/ports"
)

const (
	StoreNodeID graft.ID = "adapter.lockfile_store"
	NodeID      graft.ID = "adapter.install_tree"
)

// DefaultRoot returns the default install tree root for the current project.
func DefaultRoot() string {
	if root := os.Getenv("ROK_TREE"); root != "" {
		return root
	}
	return filepath.Join(".rok", "tree")
}

func init() {
	graft.Register(graft.Node[ports.LockfileStore]{
		ID:        StoreNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.LockfileStore, error) {
			return NewStore(filepath.Join(DefaultRoot(), LockfileName)), nil
		},
	})

	graft.Register(graft.Node[ports.InstallTree]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{StoreNodeID},
		Run: func(ctx context.Context) (ports.InstallTree, error) {
			store, err := graft.Dep[ports.LockfileStore](ctx)
			if err != nil {
				return nil, err
			}
			return New(DefaultRoot(), store), nil
		},
	})
}
