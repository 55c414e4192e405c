package config

// Manifest represents the structure of the rok.yaml project file.
type Manifest struct {
	Package      string            `yaml:"package"`
	Version      string            `yaml:"version"`
	Lua          string            `yaml:"lua,omitempty"`
	Description  DescriptionDTO    `yaml:"description,omitempty"`
	Dependencies map[string]string `yaml:"dependencies,omitempty"`
}

// DescriptionDTO represents the descriptive metadata block of a manifest.
type DescriptionDTO struct {
	Summary    string   `yaml:"summary,omitempty"`
	Maintainer string   `yaml:"maintainer,omitempty"`
	License    string   `yaml:"license,omitempty"`
	Labels     []string `yaml:"labels,omitempty"`
}
