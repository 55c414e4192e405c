package domain

// OptState records whether a requirement is mandatory for the caller.
// Explicit user requests are always Required; Optional exists for
// dependency-declared extras.
type OptState int

const (
	// OptRequired marks an install the caller cannot proceed without.
	OptRequired OptState = iota

	// OptOptional marks an install whose failure is tolerable.
	OptOptional
)

// String returns the human-readable name of the opt state.
func (o OptState) String() string {
	if o == OptOptional {
		return "optional"
	}
	return "required"
}

// InstallSpec instructs the install executor what to do for one requirement.
// It is produced by the install plan resolver; ownership transfers to the
// executor that carries it out.
type InstallSpec struct {
	// Req is the requirement this spec was resolved from.
	Req PackageReq

	// Behaviour selects between a fresh install and a forced rebuild.
	Behaviour BuildBehaviour

	// Pin is the pin state the install is recorded with.
	Pin PinnedState

	// Entry records how the installed rock enters the tree.
	Entry EntryType

	// Opt records whether the install is mandatory.
	Opt OptState
}

// NewInstallSpec builds a spec for a direct user request: the entry type is
// Entrypoint and the opt state Required.
func NewInstallSpec(req PackageReq, behaviour BuildBehaviour, pin PinnedState) InstallSpec {
	return InstallSpec{
		Req:       req,
		Behaviour: behaviour,
		Pin:       pin,
		Entry:     EntryEntrypoint,
		Opt:       OptRequired,
	}
}
