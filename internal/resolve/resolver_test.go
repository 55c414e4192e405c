package resolve_test

import (
	"errors"
	"testing"

	"go.rok.dev/rok/internal/core/domain"
	"go.rok.dev/rok/internal/core/ports/mocks"
	"go.rok.dev/rok/internal/resolve"
	"go.uber.org/mock/gomock"
)

// lockfileWith builds a lockfile holding the given packages and returns it
// together with their identities, in insertion order.
func lockfileWith(pkgs ...domain.LocalPackage) (*domain.Lockfile, []domain.LocalPackageID) {
	lf := domain.NewLockfile()
	ids := make([]domain.LocalPackageID, 0, len(pkgs))
	for _, pkg := range pkgs {
		ids = append(ids, lf.Insert(pkg))
	}
	return lf, ids
}

func TestResolve_NoMatch_Fresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTree := mocks.NewMockInstallTree(ctrl)
	mockPrompt := mocks.NewMockPrompter(ctrl)

	req := domain.MustParsePackageReq("lpeg")

	mockTree.EXPECT().Lockfile().Return(domain.NewLockfile(), nil)
	mockTree.EXPECT().Match(req, gomock.Any()).Return(domain.NoMatch(), nil)
	// No Confirm expectation: prompting here would fail the test.

	r := resolve.New(mockTree, mockPrompt)
	specs, err := r.Resolve([]domain.PackageReq{req}, domain.Unpinned, false)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if len(specs) != 1 {
		t.Fatalf("Expected 1 spec, got %d", len(specs))
	}
	if specs[0].Behaviour != domain.BehaviourFresh {
		t.Errorf("Expected Fresh behaviour, got %v", specs[0].Behaviour)
	}
	if specs[0].Entry != domain.EntryEntrypoint {
		t.Errorf("Expected Entrypoint entry type, got %v", specs[0].Entry)
	}
	if specs[0].Opt != domain.OptRequired {
		t.Errorf("Expected Required opt state, got %v", specs[0].Opt)
	}
}

func TestResolve_ForceFlag_AlwaysForce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTree := mocks.NewMockInstallTree(ctrl)
	mockPrompt := mocks.NewMockPrompter(ctrl)

	installed := domain.LocalPackage{Name: "lpeg", Version: "1.1.0", Entry: domain.EntryEntrypoint}
	lf, ids := lockfileWith(installed)

	matchedReq := domain.MustParsePackageReq("lpeg")
	freshReq := domain.MustParsePackageReq("luasocket")

	mockTree.EXPECT().Lockfile().Return(lf, nil)
	mockTree.EXPECT().Match(matchedReq, gomock.Any()).Return(domain.SingleMatch(ids[0]), nil)
	mockTree.EXPECT().Match(freshReq, gomock.Any()).Return(domain.NoMatch(), nil)

	r := resolve.New(mockTree, mockPrompt)
	specs, err := r.Resolve([]domain.PackageReq{matchedReq, freshReq}, domain.Unpinned, true)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if len(specs) != 2 {
		t.Fatalf("Expected 2 specs, got %d", len(specs))
	}
	for _, spec := range specs {
		if spec.Behaviour != domain.BehaviourForce {
			t.Errorf("Expected Force behaviour for %s, got %v", spec.Req, spec.Behaviour)
		}
	}
}

func TestResolve_OnlyDependencyMatches_ForcesWithoutPrompt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTree := mocks.NewMockInstallTree(ctrl)
	mockPrompt := mocks.NewMockPrompter(ctrl)

	// lpeg is present twice, both times pulled in as a dependency.
	lf, ids := lockfileWith(
		domain.LocalPackage{Name: "lpeg", Version: "1.0.0", Entry: domain.EntryDependency},
		domain.LocalPackage{Name: "lpeg", Version: "1.1.0", Entry: domain.EntryDependency},
	)

	req := domain.MustParsePackageReq("lpeg")

	mockTree.EXPECT().Lockfile().Return(lf, nil)
	mockTree.EXPECT().Match(req, gomock.Any()).Return(domain.ManyMatches(ids), nil)

	r := resolve.New(mockTree, mockPrompt)
	specs, err := r.Resolve([]domain.PackageReq{req}, domain.Unpinned, false)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if len(specs) != 1 {
		t.Fatalf("Expected 1 spec, got %d", len(specs))
	}
	if specs[0].Behaviour != domain.BehaviourForce {
		t.Errorf("Expected Force behaviour for dependency-only install, got %v", specs[0].Behaviour)
	}
}

func TestResolve_EntrypointMatch_PromptAccepted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTree := mocks.NewMockInstallTree(ctrl)
	mockPrompt := mocks.NewMockPrompter(ctrl)

	lf, ids := lockfileWith(
		domain.LocalPackage{Name: "lpeg", Version: "1.1.0", Entry: domain.EntryEntrypoint},
	)

	reqA := domain.MustParsePackageReq("lpeg")
	reqB := domain.MustParsePackageReq("luasocket")

	mockTree.EXPECT().Lockfile().Return(lf, nil)
	mockTree.EXPECT().Match(reqA, gomock.Any()).Return(domain.SingleMatch(ids[0]), nil)
	mockTree.EXPECT().Match(reqB, gomock.Any()).Return(domain.NoMatch(), nil)
	mockPrompt.EXPECT().Confirm("Package lpeg already exists. Overwrite?", false).Return(true, nil)

	r := resolve.New(mockTree, mockPrompt)
	specs, err := r.Resolve([]domain.PackageReq{reqA, reqB}, domain.Unpinned, false)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if len(specs) != 2 {
		t.Fatalf("Expected 2 specs, got %d", len(specs))
	}
	if specs[0].Req.Name() != "lpeg" || specs[0].Behaviour != domain.BehaviourForce {
		t.Errorf("Expected [lpeg Force] first, got [%s %v]", specs[0].Req, specs[0].Behaviour)
	}
	if specs[1].Req.Name() != "luasocket" || specs[1].Behaviour != domain.BehaviourFresh {
		t.Errorf("Expected [luasocket Fresh] second, got [%s %v]", specs[1].Req, specs[1].Behaviour)
	}
}

func TestResolve_EntrypointMatch_PromptDeclined_DropsRequirement(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTree := mocks.NewMockInstallTree(ctrl)
	mockPrompt := mocks.NewMockPrompter(ctrl)

	lf, ids := lockfileWith(
		domain.LocalPackage{Name: "lpeg", Version: "1.1.0", Entry: domain.EntryEntrypoint},
	)

	reqA := domain.MustParsePackageReq("lpeg")
	reqB := domain.MustParsePackageReq("luasocket")

	mockTree.EXPECT().Lockfile().Return(lf, nil)
	mockTree.EXPECT().Match(reqA, gomock.Any()).Return(domain.SingleMatch(ids[0]), nil)
	mockTree.EXPECT().Match(reqB, gomock.Any()).Return(domain.NoMatch(), nil)
	mockPrompt.EXPECT().Confirm("Package lpeg already exists. Overwrite?", false).Return(false, nil)

	r := resolve.New(mockTree, mockPrompt)
	specs, err := r.Resolve([]domain.PackageReq{reqA, reqB}, domain.Unpinned, false)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	// lpeg is dropped entirely: filtering, not tri-state tagging.
	if len(specs) != 1 {
		t.Fatalf("Expected 1 spec, got %d", len(specs))
	}
	if specs[0].Req.Name() != "luasocket" || specs[0].Behaviour != domain.BehaviourFresh {
		t.Errorf("Expected only [luasocket Fresh], got [%s %v]", specs[0].Req, specs[0].Behaviour)
	}
}

func TestResolve_MixedMatches_EntrypointPresent_Prompts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTree := mocks.NewMockInstallTree(ctrl)
	mockPrompt := mocks.NewMockPrompter(ctrl)

	// One entrypoint install among the matches is enough to require a prompt.
	lf, ids := lockfileWith(
		domain.LocalPackage{Name: "lpeg", Version: "1.0.0", Entry: domain.EntryDependency},
		domain.LocalPackage{Name: "lpeg", Version: "1.1.0", Entry: domain.EntryEntrypoint},
	)

	req := domain.MustParsePackageReq("lpeg")

	mockTree.EXPECT().Lockfile().Return(lf, nil)
	mockTree.EXPECT().Match(req, gomock.Any()).Return(domain.ManyMatches(ids), nil)
	mockPrompt.EXPECT().Confirm(gomock.Any(), false).Return(true, nil)

	r := resolve.New(mockTree, mockPrompt)
	specs, err := r.Resolve([]domain.PackageReq{req}, domain.Unpinned, false)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if len(specs) != 1 || specs[0].Behaviour != domain.BehaviourForce {
		t.Fatalf("Expected a single Force spec, got %v", specs)
	}
}

func TestResolve_PreservesInputOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTree := mocks.NewMockInstallTree(ctrl)
	mockPrompt := mocks.NewMockPrompter(ctrl)

	names := []string{"argparse", "lpeg", "luasocket", "penlight"}
	reqs := make([]domain.PackageReq, 0, len(names))
	for _, name := range names {
		reqs = append(reqs, domain.MustParsePackageReq(name))
	}

	mockTree.EXPECT().Lockfile().Return(domain.NewLockfile(), nil)
	for _, req := range reqs {
		mockTree.EXPECT().Match(req, gomock.Any()).Return(domain.NoMatch(), nil)
	}

	r := resolve.New(mockTree, mockPrompt)
	specs, err := r.Resolve(reqs, domain.Unpinned, false)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if len(specs) != len(names) {
		t.Fatalf("Expected %d specs, got %d", len(names), len(specs))
	}
	for i, name := range names {
		if specs[i].Req.Name() != name {
			t.Errorf("Expected spec %d to be %q, got %q", i, name, specs[i].Req.Name())
		}
	}
}

func TestResolve_CarriesPinState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTree := mocks.NewMockInstallTree(ctrl)
	mockPrompt := mocks.NewMockPrompter(ctrl)

	req := domain.MustParsePackageReq("lpeg")

	mockTree.EXPECT().Lockfile().Return(domain.NewLockfile(), nil)
	mockTree.EXPECT().Match(req, gomock.Any()).Return(domain.NoMatch(), nil)

	r := resolve.New(mockTree, mockPrompt)
	specs, err := r.Resolve([]domain.PackageReq{req}, domain.Pinned, false)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if specs[0].Pin != domain.Pinned {
		t.Errorf("Expected Pinned spec, got %v", specs[0].Pin)
	}
}

func TestResolve_MatchPredicateFiltersOnPinState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTree := mocks.NewMockInstallTree(ctrl)
	mockPrompt := mocks.NewMockPrompter(ctrl)

	req := domain.MustParsePackageReq("lpeg")

	mockTree.EXPECT().Lockfile().Return(domain.NewLockfile(), nil)
	mockTree.EXPECT().Match(req, gomock.Any()).DoAndReturn(
		func(_ domain.PackageReq, pred func(domain.LocalPackage) bool) (domain.RockMatches, error) {
			if pred(domain.LocalPackage{Name: "lpeg", Pin: domain.Unpinned}) {
				t.Error("Expected predicate to reject unpinned installs when resolving pinned")
			}
			if !pred(domain.LocalPackage{Name: "lpeg", Pin: domain.Pinned}) {
				t.Error("Expected predicate to accept pinned installs when resolving pinned")
			}
			return domain.NoMatch(), nil
		})

	r := resolve.New(mockTree, mockPrompt)
	if _, err := r.Resolve([]domain.PackageReq{req}, domain.Pinned, false); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
}

func TestResolve_LockfileError_AbortsWholeCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTree := mocks.NewMockInstallTree(ctrl)
	mockPrompt := mocks.NewMockPrompter(ctrl)

	mockTree.EXPECT().Lockfile().Return(nil, domain.ErrLockfileReadFailed)

	r := resolve.New(mockTree, mockPrompt)
	specs, err := r.Resolve([]domain.PackageReq{domain.MustParsePackageReq("lpeg")}, domain.Unpinned, false)

	if !errors.Is(err, domain.ErrLockfileReadFailed) {
		t.Errorf("Expected ErrLockfileReadFailed, got %v", err)
	}
	if specs != nil {
		t.Errorf("Expected no partial plan, got %v", specs)
	}
}

func TestResolve_TreeQueryError_AbortsWholeCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTree := mocks.NewMockInstallTree(ctrl)
	mockPrompt := mocks.NewMockPrompter(ctrl)

	reqA := domain.MustParsePackageReq("lpeg")
	reqB := domain.MustParsePackageReq("luasocket")
	storeErr := domain.ErrLockfileReadFailed

	mockTree.EXPECT().Lockfile().Return(domain.NewLockfile(), nil)
	mockTree.EXPECT().Match(reqA, gomock.Any()).Return(domain.NoMatch(), nil)
	mockTree.EXPECT().Match(reqB, gomock.Any()).Return(domain.RockMatches{}, storeErr)

	r := resolve.New(mockTree, mockPrompt)
	specs, err := r.Resolve([]domain.PackageReq{reqA, reqB}, domain.Unpinned, false)

	if !errors.Is(err, storeErr) {
		t.Errorf("Expected the store error to surface, got %v", err)
	}
	if specs != nil {
		t.Errorf("Expected no partial plan even after a successful requirement, got %v", specs)
	}
}

func TestResolve_PromptError_AbortsWholeCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTree := mocks.NewMockInstallTree(ctrl)
	mockPrompt := mocks.NewMockPrompter(ctrl)

	lf, ids := lockfileWith(
		domain.LocalPackage{Name: "lpeg", Version: "1.1.0", Entry: domain.EntryEntrypoint},
	)

	req := domain.MustParsePackageReq("lpeg")

	mockTree.EXPECT().Lockfile().Return(lf, nil)
	mockTree.EXPECT().Match(req, gomock.Any()).Return(domain.SingleMatch(ids[0]), nil)
	mockPrompt.EXPECT().Confirm(gomock.Any(), false).Return(false, domain.ErrPromptUnavailable)

	r := resolve.New(mockTree, mockPrompt)
	specs, err := r.Resolve([]domain.PackageReq{req}, domain.Unpinned, false)

	if !errors.Is(err, domain.ErrPromptUnavailable) {
		t.Errorf("Expected ErrPromptUnavailable, got %v", err)
	}
	if specs != nil {
		t.Errorf("Expected no partial plan, got %v", specs)
	}
}

func TestResolve_EmptyRequirements_EmptyPlan(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTree := mocks.NewMockInstallTree(ctrl)
	mockPrompt := mocks.NewMockPrompter(ctrl)

	mockTree.EXPECT().Lockfile().Return(domain.NewLockfile(), nil)

	r := resolve.New(mockTree, mockPrompt)
	specs, err := r.Resolve(nil, domain.Unpinned, false)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(specs) != 0 {
		t.Errorf("Expected empty plan, got %v", specs)
	}
}
