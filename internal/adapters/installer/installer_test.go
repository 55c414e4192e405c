package installer_test

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/opencontainers/go-digest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.rok.dev/rok/internal/adapters/installer"
	"go.rok.dev/rok/internal/core/domain"
)

func rockArchive(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, content := range files {
		f, err := w.Create(name)
		require.NoError(t, err)
		_, err = f.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func serveArchive(t *testing.T, archive []byte) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(archive)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestInstall_UnpacksIntoTree(t *testing.T) {
	archive := rockArchive(t, map[string]string{
		"lpeg.lua":     "return {}",
		"doc/lpeg.md":  "docs",
		"rockspec.txt": "package = 'lpeg'",
	})
	server := serveArchive(t, archive)
	root := t.TempDir()

	err := installer.New().Install(context.Background(), domain.RemoteRock{
		Name:    "lpeg",
		Version: "1.1.0",
		URL:     server.URL + "/lpeg-1.1.0.src.rock",
	}, root)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(root, "lpeg", "1.1.0", "lpeg.lua"))
	require.NoError(t, err)
	assert.Equal(t, "return {}", string(data))

	_, err = os.Stat(filepath.Join(root, "lpeg", "1.1.0", "doc", "lpeg.md"))
	assert.NoError(t, err)
}

func TestInstall_VerifiesChecksum(t *testing.T) {
	archive := rockArchive(t, map[string]string{"init.lua": "return true"})
	server := serveArchive(t, archive)
	root := t.TempDir()

	rock := domain.RemoteRock{
		Name:     "luasocket",
		Version:  "3.1.0",
		URL:      server.URL + "/luasocket-3.1.0.src.rock",
		Checksum: digest.SHA256.FromBytes(archive).Encoded(),
	}
	require.NoError(t, installer.New().Install(context.Background(), rock, root))
}

func TestInstall_RejectsBadChecksum(t *testing.T) {
	archive := rockArchive(t, map[string]string{"init.lua": "return true"})
	server := serveArchive(t, archive)
	root := t.TempDir()

	rock := domain.RemoteRock{
		Name:     "luasocket",
		Version:  "3.1.0",
		URL:      server.URL + "/luasocket-3.1.0.src.rock",
		Checksum: "deadbeef",
	}
	err := installer.New().Install(context.Background(), rock, root)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInstallFailed))
}

func TestInstall_DownloadFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(server.Close)

	err := installer.New().Install(context.Background(), domain.RemoteRock{
		Name:    "lpeg",
		Version: "1.1.0",
		URL:     server.URL + "/missing.src.rock",
	}, t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInstallFailed))
}

func TestInstall_CorruptArchive(t *testing.T) {
	server := serveArchive(t, []byte("this is not a zip file"))

	err := installer.New().Install(context.Background(), domain.RemoteRock{
		Name:    "lpeg",
		Version: "1.1.0",
		URL:     server.URL + "/lpeg-1.1.0.src.rock",
	}, t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInstallFailed))
}
