package domain

import (
	"strings"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/zerr"
)

// PackageReq identifies a desired rock: a name plus a version constraint.
// A requirement without an explicit constraint matches any installed version.
// PackageReq values are immutable once created.
type PackageReq struct {
	name       string
	constraint *semver.Constraints
	raw        string
}

// ParsePackageReq parses a requirement string of the form
// "name" or "name <constraint>", e.g. "lpeg", "lpeg 1.0" or "lpeg >= 1.0, < 2".
func ParsePackageReq(input string) (PackageReq, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return PackageReq{}, ErrEmptyPackageReq
	}

	name, rawConstraint, _ := strings.Cut(trimmed, " ")
	rawConstraint = strings.TrimSpace(rawConstraint)

	if rawConstraint == "" {
		return PackageReq{name: name}, nil
	}

	constraint, err := semver.NewConstraint(rawConstraint)
	if err != nil {
		parseErr := zerr.Wrap(err, ErrInvalidVersionConstraint.Error())
		parseErr = zerr.With(parseErr, "package", name)
		return PackageReq{}, zerr.With(parseErr, "constraint", rawConstraint)
	}

	return PackageReq{name: name, constraint: constraint, raw: rawConstraint}, nil
}

// MustParsePackageReq parses a requirement string and panics on failure.
// Intended for tests and compile-time-known requirements.
func MustParsePackageReq(input string) PackageReq {
	req, err := ParsePackageReq(input)
	if err != nil {
		panic(err)
	}
	return req
}

// Name returns the package name of the requirement.
func (r PackageReq) Name() string {
	return r.name
}

// Matches reports whether the given version string satisfies the
// requirement's constraint. A requirement without a constraint matches
// every parseable version.
func (r PackageReq) Matches(version string) bool {
	v, err := semver.NewVersion(version)
	if err != nil {
		return false
	}
	if r.constraint == nil {
		return true
	}
	return r.constraint.Check(v)
}

// String renders the requirement the way the user wrote it.
func (r PackageReq) String() string {
	if r.raw == "" {
		return r.name
	}
	return r.name + " " + r.raw
}
