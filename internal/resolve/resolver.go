// Package resolve computes the install plan: which build behaviour each
// requested rock gets, given what the tree already holds.
package resolve

import (
	"fmt"

	"go.rok.dev/rok/internal/core/domain"
	"go.rok.dev/rok/internal/core/ports"
	"go.trai.ch/zerr"
)

// outcome is the tagged result of deciding one requirement.
type outcome int

const (
	outcomeFresh outcome = iota
	outcomeForce
	outcomeSkip
)

// Resolver turns requested requirements into install specs by reconciling
// them against the install tree's lockfile.
type Resolver struct {
	tree   ports.InstallTree
	prompt ports.Prompter
}

// New creates a new Resolver.
func New(tree ports.InstallTree, prompt ports.Prompter) *Resolver {
	return &Resolver{
		tree:   tree,
		prompt: prompt,
	}
}

// Resolve decides, for each requirement in order, whether to install fresh,
// force a reinstall, or drop the requirement after the user declines an
// overwrite. Dropped requirements are absent from the returned plan; every
// other requirement appears exactly once, in input order.
//
// The call is atomic from the caller's point of view: a tree query failure or
// prompt failure aborts the whole resolution with no partial plan.
func (r *Resolver) Resolve(
	reqs []domain.PackageReq,
	pin domain.PinnedState,
	force bool,
) ([]domain.InstallSpec, error) {
	lockfile, err := r.tree.Lockfile()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read lockfile")
	}

	specs := make([]domain.InstallSpec, 0, len(reqs))
	for _, req := range reqs {
		matches, err := r.tree.Match(req, func(pkg domain.LocalPackage) bool {
			return pkg.Pin == pin
		})
		if err != nil {
			queryErr := zerr.Wrap(err, "failed to query install tree")
			return nil, zerr.With(queryErr, "package", req.String())
		}

		decision, err := r.decide(req, matches, lockfile, force)
		if err != nil {
			return nil, err
		}

		switch decision {
		case outcomeSkip:
			continue
		case outcomeForce:
			specs = append(specs, domain.NewInstallSpec(req, domain.BehaviourForce, pin))
		case outcomeFresh:
			specs = append(specs, domain.NewInstallSpec(req, domain.BehaviourFresh, pin))
		}
	}

	return specs, nil
}

// decide computes the outcome for a single requirement. The decision never
// mutates anything; the prompt is its only side effect.
func (r *Resolver) decide(
	req domain.PackageReq,
	matches domain.RockMatches,
	lockfile *domain.Lockfile,
	force bool,
) (outcome, error) {
	// A rock that is installed only as a dependency may have a different
	// on-disk layout than an entrypoint install would produce, so a direct
	// request for it always forces a rebuild.
	effectiveForce := force || (!matches.IsEmpty() && noneIsEntrypoint(lockfile, matches.IDs()))

	switch {
	case effectiveForce:
		return outcomeForce, nil
	case matches.IsEmpty():
		return outcomeFresh, nil
	}

	overwrite, err := r.prompt.Confirm(fmt.Sprintf("Package %s already exists. Overwrite?", req), false)
	if err != nil {
		promptErr := zerr.Wrap(err, "failed to confirm reinstall")
		return outcomeSkip, zerr.With(promptErr, "package", req.String())
	}
	if overwrite {
		return outcomeForce, nil
	}
	return outcomeSkip, nil
}

func noneIsEntrypoint(lockfile *domain.Lockfile, ids []domain.LocalPackageID) bool {
	for _, id := range ids {
		if lockfile.IsEntrypoint(id) {
			return false
		}
	}
	return true
}
