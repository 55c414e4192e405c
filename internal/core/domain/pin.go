package domain

// PinnedState records whether an installed rock is protected from version
// drift. It applies both to lockfile entries and to the target state of a
// resolution: a lockfile entry only satisfies a requirement when both carry
// the same pin state.
type PinnedState int

const (
	// Unpinned rocks follow normal version resolution.
	Unpinned PinnedState = iota

	// Pinned rocks are excluded from version drift.
	Pinned
)

// PinnedStateFrom converts a boolean flag (e.g. a --pin CLI flag) to a PinnedState.
func PinnedStateFrom(pinned bool) PinnedState {
	if pinned {
		return Pinned
	}
	return Unpinned
}

// String returns the human-readable name of the pin state.
func (p PinnedState) String() string {
	if p == Pinned {
		return "pinned"
	}
	return "unpinned"
}
