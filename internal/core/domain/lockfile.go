package domain

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// LockfileVersion is the current lockfile schema version.
const LockfileVersion = 1

// LocalPackageID is the opaque identity of one installed rock recorded in the
// lockfile. It is deterministic over the identity material of the install so
// that repeated installs of the same rock produce the same identity.
type LocalPackageID string

// NewLocalPackageID derives the identity for an installed rock from its name,
// resolved version and pin state.
func NewLocalPackageID(name, version string, pin PinnedState) LocalPackageID {
	h := xxhash.New()
	_, _ = h.WriteString(name)
	_, _ = h.Write([]byte{0})
	_, _ = h.WriteString(version)
	_, _ = h.Write([]byte{0})
	_, _ = h.WriteString(pin.String())
	return LocalPackageID(fmt.Sprintf("%016x", h.Sum64()))
}

// EntryType records how a rock ended up in the tree.
type EntryType int

const (
	// EntryDependency marks a rock pulled in transitively by another install.
	EntryDependency EntryType = iota

	// EntryEntrypoint marks a rock the user requested directly.
	EntryEntrypoint
)

// String returns the human-readable name of the entry type.
func (e EntryType) String() string {
	if e == EntryEntrypoint {
		return "entrypoint"
	}
	return "dependency"
}

// LocalPackage is one installed rock as recorded in the lockfile.
type LocalPackage struct {
	// Name is the rock name (e.g. "lpeg").
	Name string `json:"name"`

	// Version is the resolved version string (e.g. "1.1.0").
	Version string `json:"version"`

	// Pin records whether this install is protected from version drift.
	Pin PinnedState `json:"pin"`

	// Entry records whether this rock was requested directly or pulled in
	// as a dependency of another rock.
	Entry EntryType `json:"entry"`

	// Source is the URL the rock's sources were fetched from, when known.
	Source string `json:"source,omitempty"`

	// Dependencies lists the identities of rocks this install depends on.
	Dependencies []LocalPackageID `json:"dependencies,omitempty"`
}

// ID returns the identity of the installed rock.
func (p LocalPackage) ID() LocalPackageID {
	return NewLocalPackageID(p.Name, p.Version, p.Pin)
}

// Lockfile is the persisted record of every rock installed into a tree.
// The on-disk shape is owned by the tree adapter; this type is the in-memory
// view the resolver and executor work against.
type Lockfile struct {
	// Version is the lockfile schema version, kept for future migrations.
	Version int `json:"version"`

	// Packages maps installed rock identities to their records. The key is
	// a string for serialization compatibility.
	Packages map[LocalPackageID]LocalPackage `json:"packages"`
}

// NewLockfile returns an empty lockfile at the current schema version.
func NewLockfile() *Lockfile {
	return &Lockfile{
		Version:  LockfileVersion,
		Packages: make(map[LocalPackageID]LocalPackage),
	}
}

// IsEntrypoint reports whether the identified rock was installed as a direct,
// user-requested entrypoint. Unknown identities are not entrypoints.
func (l *Lockfile) IsEntrypoint(id LocalPackageID) bool {
	pkg, ok := l.Packages[id]
	return ok && pkg.Entry == EntryEntrypoint
}

// Insert records an installed rock and returns its identity.
// An existing record with the same identity is replaced.
func (l *Lockfile) Insert(pkg LocalPackage) LocalPackageID {
	if l.Packages == nil {
		l.Packages = make(map[LocalPackageID]LocalPackage)
	}
	id := pkg.ID()
	l.Packages[id] = pkg
	return id
}

// Remove drops the identified rock from the lockfile, if present.
func (l *Lockfile) Remove(id LocalPackageID) {
	delete(l.Packages, id)
}
