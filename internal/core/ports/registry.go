package ports

import (
	"context"

	"go.rok.dev/rok/internal/core/domain"
)

// RockResolver turns a requirement into one concrete downloadable version
// by querying rock registry metadata.
//
//go:generate go run go.uber.org/mock/mockgen -source=registry.go -destination=mocks/mock_registry.go -package=mocks
type RockResolver interface {
	// Resolve picks the highest published version satisfying the requirement.
	// It should consult a local metadata cache before going to the network.
	Resolve(ctx context.Context, req domain.PackageReq) (domain.RemoteRock, error)
}
