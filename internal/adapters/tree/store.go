// Package tree implements the install tree adapter: a directory of installed
// rocks whose state is recorded by a flat JSON lockfile.
package tree

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.rok.dev/rok/internal/core/domain"
	"go.trai.ch/zerr"
)

// LockfileName is the file name of the lockfile inside a tree root.
const LockfileName = "rok.lock.json"

// Store implements ports.LockfileStore using a flat JSON file.
type Store struct {
	path string
	mu   sync.Mutex
}

// NewStore creates a lockfile store backed by the file at the given path.
func NewStore(path string) *Store {
	return &Store{path: filepath.Clean(path)}
}

// Load reads the lockfile from disk. A missing or empty file yields an empty
// lockfile at the current schema version.
func (s *Store) Load() (*domain.Lockfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.NewLockfile(), nil
		}
		readErr := zerr.Wrap(err, domain.ErrLockfileReadFailed.Error())
		return nil, zerr.With(readErr, "path", s.path)
	}

	if len(data) == 0 {
		return domain.NewLockfile(), nil
	}

	lf := domain.NewLockfile()
	if err := json.Unmarshal(data, lf); err != nil {
		parseErr := zerr.Wrap(err, domain.ErrLockfileUnmarshalFailed.Error())
		return nil, zerr.With(parseErr, "path", s.path)
	}

	return lf, nil
}

// Save persists the lockfile, creating the tree root if necessary.
func (s *Store) Save(lf *domain.Lockfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(lf, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrLockfileMarshalFailed.Error())
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create tree root for lockfile")
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		writeErr := zerr.Wrap(err, domain.ErrLockfileWriteFailed.Error())
		return zerr.With(writeErr, "path", s.path)
	}

	return nil
}
