package ports

import "go.rok.dev/rok/internal/core/domain"

// LockfileStore persists the lockfile backing an install tree.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type LockfileStore interface {
	// Load reads the lockfile. A missing lockfile yields an empty one.
	Load() (*domain.Lockfile, error)

	// Save persists the lockfile.
	Save(lf *domain.Lockfile) error
}
