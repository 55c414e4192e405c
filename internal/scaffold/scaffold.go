// Package scaffold creates new project directories with a starter manifest.
package scaffold

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"

	"go.rok.dev/rok/internal/adapters/config"
	"go.rok.dev/rok/internal/core/domain"
	"go.rok.dev/rok/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var projectNameRe = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// TextPrompter reads one line of free text from the user.
type TextPrompter interface {
	ReadText(msg, def string) (string, error)
}

// Options carries the fields of a new project. Empty fields are prompted
// for interactively.
type Options struct {
	Name        string
	Description string
	License     string
	Maintainer  string
	Labels      []string
	LuaVersion  string
}

// Scaffolder writes new project skeletons.
type Scaffolder struct {
	confirm ports.Prompter
	text    TextPrompter
}

// New creates a scaffolder from its prompting collaborators.
func New(confirm ports.Prompter, text TextPrompter) *Scaffolder {
	return &Scaffolder{confirm: confirm, text: text}
}

// Create scaffolds a project under target: a rok.yaml manifest and a
// src/main.lua stub. If target already holds a manifest the user must
// confirm the overwrite; declining aborts.
func (s *Scaffolder) Create(target string, opts Options) error {
	manifestPath := filepath.Join(target, config.ManifestName)
	if _, err := os.Stat(manifestPath); err == nil {
		ok, err := s.confirm.Confirm("Target directory already has a project, write anyway?", false)
		if err != nil {
			return err
		}
		if !ok {
			return zerr.With(domain.ErrProjectExists, "target", target)
		}
	}

	filled, err := s.fill(target, opts)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(target, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create project directory")
	}

	if err := writeManifest(manifestPath, filled); err != nil {
		return err
	}
	return writeMainStub(target)
}

// fill prompts for every field the caller left empty and validates the
// result.
func (s *Scaffolder) fill(target string, opts Options) (Options, error) {
	var err error

	if opts.Name == "" {
		def := defaultName(target)
		opts.Name, err = s.text.ReadText("Package name:", def)
		if err != nil {
			return opts, err
		}
	}
	if opts.Name == "" || !projectNameRe.MatchString(opts.Name) {
		return opts, zerr.With(domain.ErrInvalidProjectName, "name", opts.Name)
	}

	if opts.Description == "" {
		opts.Description, err = s.text.ReadText("Description:", "")
		if err != nil {
			return opts, err
		}
	}

	if opts.License == "" {
		opts.License, err = s.text.ReadText("License:", "none")
		if err != nil {
			return opts, err
		}
	}
	if opts.License == "none" {
		opts.License = ""
	}

	if opts.Labels == nil {
		var line string
		line, err = s.text.ReadText("Labels (comma separated):", "")
		if err != nil {
			return opts, err
		}
		opts.Labels, err = ParseLabels(line)
		if err != nil {
			return opts, err
		}
	} else if err := validateLabels(opts.Labels); err != nil {
		return opts, err
	}

	if opts.Maintainer == "" {
		opts.Maintainer, err = s.text.ReadText("Maintainer:", defaultMaintainer())
		if err != nil {
			return opts, err
		}
	}

	if opts.LuaVersion == "" {
		var v string
		v, err = s.text.ReadText("Lowest supported Lua version:", "5.1")
		if err != nil {
			return opts, err
		}
		opts.LuaVersion = ">= " + v
	}
	if _, err := domain.ParsePackageReq("lua " + opts.LuaVersion); err != nil {
		return opts, err
	}

	return opts, nil
}

// ParseLabels splits a comma-separated label list, rejecting punctuation
// other than hyphens and underscores inside names.
func ParseLabels(input string) ([]string, error) {
	if strings.TrimSpace(input) == "" {
		return nil, nil
	}
	for _, r := range input {
		if r == '-' || r == '_' || r == ',' || r == ' ' {
			continue
		}
		if unicode.IsPunct(r) || unicode.IsSymbol(r) {
			return nil, zerr.With(domain.ErrInvalidLabel, "character", string(r))
		}
	}

	parts := strings.Split(input, ",")
	labels := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			labels = append(labels, trimmed)
		}
	}
	return labels, nil
}

func validateLabels(labels []string) error {
	for _, label := range labels {
		if _, err := ParseLabels(label); err != nil {
			return err
		}
	}
	return nil
}

func defaultName(target string) string {
	abs, err := filepath.Abs(target)
	if err != nil {
		return filepath.Base(target)
	}
	return filepath.Base(abs)
}

func defaultMaintainer() string {
	u, err := user.Current()
	if err != nil {
		return ""
	}
	if u.Name != "" {
		return u.Name
	}
	return u.Username
}

func writeManifest(path string, opts Options) error {
	manifest := config.Manifest{
		Package: opts.Name,
		Version: "0.1.0",
		Lua:     opts.LuaVersion,
		Description: config.DescriptionDTO{
			Summary:    opts.Description,
			Maintainer: opts.Maintainer,
			License:    opts.License,
			Labels:     opts.Labels,
		},
	}

	data, err := yaml.Marshal(manifest)
	if err != nil {
		return zerr.Wrap(err, "failed to marshal project manifest")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return zerr.Wrap(err, "failed to write project manifest")
	}
	return nil
}

// writeMainStub creates src/main.lua unless a src directory already
// exists, in which case it is left untouched.
func writeMainStub(target string) error {
	srcDir := filepath.Join(target, "src")
	if _, err := os.Stat(srcDir); err == nil {
		fmt.Fprintf(os.Stderr, "Directory %s/ already exists - we won't make any changes to it.\n", srcDir)
		return nil
	}

	if err := os.MkdirAll(srcDir, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create source directory")
	}
	stub := []byte(`print("Hello world!")` + "\n")
	if err := os.WriteFile(filepath.Join(srcDir, "main.lua"), stub, 0o644); err != nil {
		return zerr.Wrap(err, "failed to write main.lua stub")
	}
	return nil
}
