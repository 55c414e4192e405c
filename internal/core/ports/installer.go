package ports

import (
	"context"

	"go.rok.dev/rok/internal/core/domain"
)

// RockInstaller performs the actual fetch and build of one resolved rock
// into the tree root. The plan resolver and executor never do this
// themselves; how sources are downloaded and compiled is the installer's
// concern alone.
//
//go:generate go run go.uber.org/mock/mockgen -source=installer.go -destination=mocks/mock_installer.go -package=mocks
type RockInstaller interface {
	// Install fetches and builds the rock under the tree root.
	Install(ctx context.Context, rock domain.RemoteRock, root string) error
}
