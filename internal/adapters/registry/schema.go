package registry

import "time"

// rockManifest represents the registry's metadata response for one rock.
type rockManifest struct {
	Name     string         `json:"name"`
	Summary  string         `json:"summary,omitempty"`
	Versions []rockVersion  `json:"versions"`
}

// rockVersion represents one published version of a rock.
type rockVersion struct {
	Version  string `json:"version"`
	URL      string `json:"url"`
	Checksum string `json:"checksum,omitempty"`
}

// cacheEntry represents a cached resolution result.
type cacheEntry struct {
	Name      string    `json:"name"`
	Version   string    `json:"version"`
	URL       string    `json:"url"`
	Checksum  string    `json:"checksum,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
