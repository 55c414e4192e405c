// Package config provides the project manifest loader for rok.
package config

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"go.rok.dev/rok/internal/core/domain"
	"go.rok.dev/rok/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// ManifestName is the file name of the project manifest.
const ManifestName = "rok.yaml"

var projectNameRe = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

var _ ports.ProjectLoader = (*FileLoader)(nil)

// FileLoader implements ports.ProjectLoader using a YAML file.
type FileLoader struct {
	Filename string
}

// NewLoader creates a loader for the default manifest file name.
func NewLoader() *FileLoader {
	return &FileLoader{Filename: ManifestName}
}

// Load reads the manifest from the given working directory.
func (l *FileLoader) Load(cwd string) (*domain.Project, error) {
	return Load(filepath.Join(cwd, l.Filename))
}

// Load reads a manifest file from the given path and returns a domain.Project.
func Load(path string) (*domain.Project, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		readErr := zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
		return nil, zerr.With(readErr, "path", path)
	}

	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		parseErr := zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
		return nil, zerr.With(parseErr, "path", path)
	}

	return projectFrom(&manifest, path)
}

func projectFrom(manifest *Manifest, path string) (*domain.Project, error) {
	if manifest.Package == "" {
		return nil, zerr.With(domain.ErrMissingProjectName, "path", path)
	}
	if !projectNameRe.MatchString(manifest.Package) {
		return nil, zerr.With(domain.ErrInvalidProjectName, "package", manifest.Package)
	}

	project := &domain.Project{
		Name:    manifest.Package,
		Version: manifest.Version,
		Description: domain.ProjectDescription{
			Summary:    manifest.Description.Summary,
			Maintainer: manifest.Description.Maintainer,
			License:    manifest.Description.License,
			Labels:     manifest.Description.Labels,
		},
	}

	if manifest.Lua != "" {
		lua, err := domain.ParsePackageReq("lua " + manifest.Lua)
		if err != nil {
			return nil, zerr.With(err, "path", path)
		}
		project.Lua = lua
	}

	// Sort dependency names so the parsed requirement order is stable.
	names := make([]string, 0, len(manifest.Dependencies))
	for name := range manifest.Dependencies {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		constraint := strings.TrimSpace(manifest.Dependencies[name])
		input := name
		if constraint != "" && constraint != "*" {
			input = name + " " + constraint
		}
		req, err := domain.ParsePackageReq(input)
		if err != nil {
			return nil, zerr.With(err, "path", path)
		}
		project.Dependencies = append(project.Dependencies, req)
	}

	return project, nil
}
