package domain

// BuildBehaviour is the action an install executor takes for one requirement.
type BuildBehaviour int

const (
	// BehaviourFresh installs a rock that is not present in the tree.
	BehaviourFresh BuildBehaviour = iota

	// BehaviourForce rebuilds and reinstalls a rock even when a matching
	// install is already recorded in the lockfile.
	BehaviourForce
)

// BehaviourFrom converts a force flag to the corresponding behaviour.
func BehaviourFrom(force bool) BuildBehaviour {
	if force {
		return BehaviourForce
	}
	return BehaviourFresh
}

// String returns the human-readable name of the behaviour.
func (b BuildBehaviour) String() string {
	if b == BehaviourForce {
		return "force"
	}
	return "fresh"
}
