// Package ports defines the core interfaces for the application.
package ports

import (
	"go.rok.dev/rok/internal/core/domain"
)

// MatchPredicate narrows a tree match query to installed rocks with
// particular properties (e.g. a specific pin state).
type MatchPredicate func(pkg domain.LocalPackage) bool

// InstallTree is the queryable view of one install tree: the rocks installed
// under a tree root, as recorded by its lockfile.
//
//go:generate go run go.uber.org/mock/mockgen -source=tree.go -destination=mocks/mock_tree.go -package=mocks
type InstallTree interface {
	// Match returns the installed rocks that satisfy the requirement and the
	// predicate. The result distinguishes no match, exactly one match, and
	// several matches of an underspecified requirement.
	Match(req domain.PackageReq, pred MatchPredicate) (domain.RockMatches, error)

	// Lockfile returns the tree's installation record.
	Lockfile() (*domain.Lockfile, error)
}
