package domain

// RemoteRock is a concrete, downloadable rock version resolved from a
// registry: the output of turning a version constraint into one exact
// version with a source location.
type RemoteRock struct {
	// Name is the rock name.
	Name string `json:"name"`

	// Version is the exact resolved version.
	Version string `json:"version"`

	// URL is the source archive location.
	URL string `json:"url"`

	// Checksum is the expected content digest of the source archive,
	// when the registry publishes one.
	Checksum string `json:"checksum,omitempty"`
}
