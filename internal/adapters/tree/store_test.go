package tree_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.rok.dev/rok/internal/adapters/tree"
	"go.rok.dev/rok/internal/core/domain"
)

func TestStore_LoadMissingFile_ReturnsEmptyLockfile(t *testing.T) {
	store := tree.NewStore(filepath.Join(t.TempDir(), tree.LockfileName))

	lf, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, domain.LockfileVersion, lf.Version)
	assert.Empty(t, lf.Packages)
}

func TestStore_SaveThenLoad_RoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", tree.LockfileName)
	store := tree.NewStore(path)

	lf := domain.NewLockfile()
	id := lf.Insert(domain.LocalPackage{
		Name:    "lpeg",
		Version: "1.1.0",
		Pin:     domain.Pinned,
		Entry:   domain.EntryEntrypoint,
	})

	require.NoError(t, store.Save(lf))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Contains(t, loaded.Packages, id)
	assert.Equal(t, "lpeg", loaded.Packages[id].Name)
	assert.Equal(t, domain.Pinned, loaded.Packages[id].Pin)
	assert.True(t, loaded.IsEntrypoint(id))
}

func TestStore_LoadCorruptFile_SurfacesStoreError(t *testing.T) {
	path := filepath.Join(t.TempDir(), tree.LockfileName)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	store := tree.NewStore(path)
	_, err := store.Load()
	require.Error(t, err)
}

func TestStore_LoadEmptyFile_ReturnsEmptyLockfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), tree.LockfileName)
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	store := tree.NewStore(path)
	lf, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, lf.Packages)
}
