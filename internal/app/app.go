// Package app implements the application layer for rok.
package app

import (
	"context"
	"fmt"

	"go.rok.dev/rok/internal/core/domain"
	"go.rok.dev/rok/internal/core/ports"
	"go.rok.dev/rok/internal/exec"
	"go.rok.dev/rok/internal/resolve"
	"go.rok.dev/rok/internal/scaffold"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	loader     ports.ProjectLoader
	planner    *resolve.Resolver
	executor   *exec.Executor
	scaffolder *scaffold.Scaffolder
	logger     ports.Logger
	treeRoot   string
}

// New creates a new App instance.
func New(
	loader ports.ProjectLoader,
	planner *resolve.Resolver,
	executor *exec.Executor,
	scaffolder *scaffold.Scaffolder,
	logger ports.Logger,
	treeRoot string,
) *App {
	return &App{
		loader:     loader,
		planner:    planner,
		executor:   executor,
		scaffolder: scaffolder,
		logger:     logger,
		treeRoot:   treeRoot,
	}
}

// InstallOptions carries the flags of an install invocation.
type InstallOptions struct {
	// Pin records the installs as pinned.
	Pin bool

	// Force reinstalls rocks even when the tree already holds them.
	Force bool
}

// Install resolves the requested rocks into an install plan and applies it.
// With no explicit arguments the project manifest's dependencies are
// installed instead.
func (a *App) Install(ctx context.Context, args []string, opts InstallOptions) error {
	reqs, err := a.requirements(args)
	if err != nil {
		return err
	}
	if len(reqs) == 0 {
		return domain.ErrNoRequirements
	}

	plan, err := a.planner.Resolve(reqs, domain.PinnedStateFrom(opts.Pin), opts.Force)
	if err != nil {
		return zerr.Wrap(err, "failed to resolve install plan")
	}
	if len(plan) == 0 {
		a.logger.Info("nothing to install")
		return nil
	}

	return a.executor.Apply(ctx, plan, a.treeRoot)
}

// NewProject scaffolds a new project directory.
func (a *App) NewProject(target string, opts scaffold.Options) error {
	if target == "" {
		return zerr.New("target directory is required")
	}
	if err := a.scaffolder.Create(target, opts); err != nil {
		return err
	}
	a.logger.Info(fmt.Sprintf("created project in %s", target))
	return nil
}

// requirements parses the install arguments, falling back to the project
// manifest when none were given.
func (a *App) requirements(args []string) ([]domain.PackageReq, error) {
	if len(args) > 0 {
		reqs := make([]domain.PackageReq, 0, len(args))
		for _, arg := range args {
			req, err := domain.ParsePackageReq(arg)
			if err != nil {
				return nil, zerr.With(err, "argument", arg)
			}
			reqs = append(reqs, req)
		}
		return reqs, nil
	}

	project, err := a.loader.Load(".")
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load project manifest")
	}
	return project.Dependencies, nil
}
