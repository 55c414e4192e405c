// Package exec turns an install plan into installed rocks and lockfile
// entries.
package exec

import (
	"context"
	"fmt"
	"runtime"

	"go.rok.dev/rok/internal/core/domain"
	"go.rok.dev/rok/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Executor installs every spec of a plan and records the results.
type Executor struct {
	resolver  ports.RockResolver
	installer ports.RockInstaller
	store     ports.LockfileStore
	telemetry ports.Telemetry
	logger    ports.Logger
}

// New creates an executor from its collaborator ports.
func New(
	resolver ports.RockResolver,
	installer ports.RockInstaller,
	store ports.LockfileStore,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *Executor {
	return &Executor{
		resolver:  resolver,
		installer: installer,
		store:     store,
		telemetry: telemetry,
		logger:    logger,
	}
}

// Apply resolves and installs every spec under the tree root, then records
// the installs in the lockfile. Downloads and builds run concurrently; the
// lockfile update is a single sequential pass afterwards, so a failed
// install never leaves a partial record.
func (e *Executor) Apply(ctx context.Context, specs []domain.InstallSpec, root string) error {
	if len(specs) == 0 {
		return nil
	}

	resolved := make([]domain.RemoteRock, len(specs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, spec := range specs {
		g.Go(func() error {
			rock, err := e.installOne(gctx, spec, root)
			if err != nil {
				return err
			}
			resolved[i] = rock
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	return e.record(specs, resolved)
}

func (e *Executor) installOne(ctx context.Context, spec domain.InstallSpec, root string) (domain.RemoteRock, error) {
	ctx, vertex := e.telemetry.Record(ctx, fmt.Sprintf("install %s", spec.Req.Name()))

	rock, err := e.resolver.Resolve(ctx, spec.Req)
	if err != nil {
		vertex.Complete(err)
		return domain.RemoteRock{}, err
	}

	fmt.Fprintf(vertex.Stdout(), "resolved %s to %s\n", spec.Req.Name(), rock.Version)

	if err := e.installer.Install(ctx, rock, root); err != nil {
		vertex.Complete(err)
		return domain.RemoteRock{}, zerr.With(err, "rock", rock.Name)
	}

	vertex.Complete(nil)
	e.logger.Info(fmt.Sprintf("installed %s %s", rock.Name, rock.Version))
	return rock, nil
}

// record updates the lockfile for the completed installs. Forced installs
// first evict every entry the requirement matched.
func (e *Executor) record(specs []domain.InstallSpec, rocks []domain.RemoteRock) error {
	lf, err := e.store.Load()
	if err != nil {
		return err
	}

	for i, spec := range specs {
		if spec.Behaviour == domain.BehaviourForce {
			evictMatching(lf, spec)
		}
		lf.Insert(domain.LocalPackage{
			Name:    rocks[i].Name,
			Version: rocks[i].Version,
			Pin:     spec.Pin,
			Entry:   spec.Entry,
			Source:  rocks[i].URL,
		})
	}

	return e.store.Save(lf)
}

func evictMatching(lf *domain.Lockfile, spec domain.InstallSpec) {
	for id, pkg := range lf.Packages {
		if pkg.Name != spec.Req.Name() {
			continue
		}
		if pkg.Pin != spec.Pin {
			continue
		}
		if !spec.Req.Matches(pkg.Version) {
			continue
		}
		lf.Remove(id)
	}
}
