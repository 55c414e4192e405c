package tree

import (
	"path/filepath"
	"sort"

	"go.rok.dev/rok/internal/core/domain"
	"go.rok.dev/rok/internal/core/ports"
)

var _ ports.InstallTree = (*Tree)(nil)

// Tree implements ports.InstallTree over a tree root directory.
type Tree struct {
	root  string
	store ports.LockfileStore
}

// New creates an install tree rooted at the given directory, reading its
// state through the given lockfile store.
func New(root string, store ports.LockfileStore) *Tree {
	return &Tree{
		root:  filepath.Clean(root),
		store: store,
	}
}

// Root returns the tree root directory.
func (t *Tree) Root() string {
	return t.root
}

// Lockfile returns the tree's installation record.
func (t *Tree) Lockfile() (*domain.Lockfile, error) {
	return t.store.Load()
}

// Match returns the installed rocks satisfying the requirement and the
// predicate. Matches are ordered by version, then identity, so repeated
// queries are deterministic.
func (t *Tree) Match(req domain.PackageReq, pred ports.MatchPredicate) (domain.RockMatches, error) {
	lf, err := t.store.Load()
	if err != nil {
		return domain.RockMatches{}, err
	}

	type hit struct {
		id      domain.LocalPackageID
		version string
	}
	var hits []hit
	for id, pkg := range lf.Packages {
		if pkg.Name != req.Name() {
			continue
		}
		if !req.Matches(pkg.Version) {
			continue
		}
		if pred != nil && !pred(pkg) {
			continue
		}
		hits = append(hits, hit{id: id, version: pkg.Version})
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].version != hits[j].version {
			return hits[i].version < hits[j].version
		}
		return hits[i].id < hits[j].id
	})

	ids := make([]domain.LocalPackageID, 0, len(hits))
	for _, h := range hits {
		ids = append(ids, h.id)
	}
	return domain.MatchesOf(ids), nil
}
