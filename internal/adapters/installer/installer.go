// Package installer fetches rock archives and unpacks them into the tree.
package installer

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/opencontainers/go-digest"
	"go.rok.dev/rok/internal/core/domain"
	"go.trai.ch/zerr"
)

// maxRockSize caps how much of an archive we are willing to buffer.
const maxRockSize = 512 << 20

// Installer implements ports.RockInstaller by downloading a rock archive
// over HTTP and extracting it under the tree root.
type Installer struct {
	httpClient *http.Client
}

// New creates an installer with a default HTTP client.
func New() *Installer {
	return &Installer{
		httpClient: &http.Client{Timeout: 5 * time.Minute},
	}
}

// Install fetches the rock archive and unpacks it into
// root/<name>/<version>.
func (i *Installer) Install(ctx context.Context, rock domain.RemoteRock, root string) error {
	data, err := i.fetch(ctx, rock.URL)
	if err != nil {
		return err
	}

	if rock.Checksum != "" {
		computed := digest.SHA256.FromBytes(data).Encoded()
		if computed != rock.Checksum {
			err := zerr.Wrap(fmt.Errorf("checksum mismatch: got %s, want %s", computed, rock.Checksum), domain.ErrInstallFailed.Error())
			return zerr.With(err, "rock", rock.Name)
		}
	}

	dest := filepath.Join(root, rock.Name, rock.Version)
	if err := unpack(data, dest); err != nil {
		return zerr.With(err, "rock", rock.Name)
	}
	return nil
}

func (i *Installer) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrInstallFailed.Error())
	}

	resp, err := i.httpClient.Do(req)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrInstallFailed.Error())
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		err := zerr.Wrap(fmt.Errorf("unexpected status %d", resp.StatusCode), domain.ErrInstallFailed.Error())
		return nil, zerr.With(err, "url", url)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxRockSize))
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrInstallFailed.Error())
	}
	return data, nil
}

// unpack extracts a rock archive (a zip file) into dest.
func unpack(data []byte, dest string) error {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return zerr.Wrap(err, domain.ErrInstallFailed.Error())
	}

	if err := os.MkdirAll(dest, 0o750); err != nil {
		return zerr.Wrap(err, domain.ErrInstallFailed.Error())
	}

	for _, f := range reader.File {
		target := filepath.Join(dest, filepath.Clean(f.Name))
		if !strings.HasPrefix(target, filepath.Clean(dest)+string(os.PathSeparator)) {
			return zerr.With(zerr.Wrap(fmt.Errorf("archive entry escapes destination"), domain.ErrInstallFailed.Error()), "entry", f.Name)
		}

		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0o750); err != nil {
				return zerr.Wrap(err, domain.ErrInstallFailed.Error())
			}
			continue
		}

		if err := os.MkdirAll(filepath.Dir(target), 0o750); err != nil {
			return zerr.Wrap(err, domain.ErrInstallFailed.Error())
		}

		if err := extractFile(f, target); err != nil {
			return err
		}
	}
	return nil
}

func extractFile(f *zip.File, target string) error {
	src, err := f.Open()
	if err != nil {
		return zerr.Wrap(err, domain.ErrInstallFailed.Error())
	}
	defer func() { _ = src.Close() }()

	data, err := io.ReadAll(io.LimitReader(src, maxRockSize))
	if err != nil {
		return zerr.Wrap(err, domain.ErrInstallFailed.Error())
	}

	if err := os.WriteFile(target, data, 0o644); err != nil {
		return zerr.Wrap(err, domain.ErrInstallFailed.Error())
	}
	return nil
}
