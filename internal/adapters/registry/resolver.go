// Package registry implements the rock metadata resolver against a rocks
// registry's HTTP API, with an on-disk cache of resolved versions.
package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/Masterminds/semver/v3"
	"go.rok.dev/rok/internal/core/domain"
	"go.rok.dev/rok/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultBaseURL is the registry queried when none is configured.
const DefaultBaseURL = "https://rocks.rok.dev"

var _ ports.RockResolver = (*Resolver)(nil)

// Resolver implements ports.RockResolver over a registry HTTP API.
type Resolver struct {
	httpClient *http.Client
	baseURL    string
	cachePath  string
	mu         sync.Mutex
}

// NewResolver creates a resolver against the default registry, caching
// resolutions under the given path.
func NewResolver(cachePath string) *Resolver {
	return NewResolverWithBaseURL(DefaultBaseURL, cachePath)
}

// NewResolverWithBaseURL creates a resolver against a specific registry.
func NewResolverWithBaseURL(baseURL, cachePath string) *Resolver {
	return &Resolver{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    baseURL,
		cachePath:  cachePath,
	}
}

// Resolve picks the highest published version satisfying the requirement.
// Resolutions are cached on disk keyed by the requirement string.
func (r *Resolver) Resolve(ctx context.Context, req domain.PackageReq) (domain.RemoteRock, error) {
	if cached, ok := r.checkCache(req.String()); ok {
		return cached, nil
	}

	manifest, err := r.fetchManifest(ctx, req.Name())
	if err != nil {
		return domain.RemoteRock{}, err
	}

	rock, err := pickVersion(manifest, req)
	if err != nil {
		return domain.RemoteRock{}, err
	}

	if err := r.updateCache(req.String(), rock); err != nil {
		return domain.RemoteRock{}, zerr.Wrap(err, "failed to update registry cache")
	}

	return rock, nil
}

func (r *Resolver) fetchManifest(ctx context.Context, name string) (*rockManifest, error) {
	endpoint := fmt.Sprintf("%s/api/v1/rocks/%s", r.baseURL, url.PathEscape(name))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to build registry request")
	}

	resp, err := r.httpClient.Do(httpReq)
	if err != nil {
		reqErr := zerr.Wrap(err, domain.ErrRegistryUnavailable.Error())
		return nil, zerr.With(reqErr, "url", endpoint)
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusOK:
		// fall through to decode
	case http.StatusNotFound:
		return nil, zerr.With(domain.ErrRockNotFound, "package", name)
	default:
		statusErr := zerr.With(domain.ErrRegistryUnavailable, "status", resp.StatusCode)
		return nil, zerr.With(statusErr, "url", endpoint)
	}

	var manifest rockManifest
	if err := json.NewDecoder(resp.Body).Decode(&manifest); err != nil {
		decodeErr := zerr.Wrap(err, "failed to parse registry response")
		return nil, zerr.With(decodeErr, "url", endpoint)
	}

	return &manifest, nil
}

// pickVersion selects the highest published version satisfying the
// requirement. Unparseable published versions are skipped.
func pickVersion(manifest *rockManifest, req domain.PackageReq) (domain.RemoteRock, error) {
	var (
		best        *semver.Version
		bestVersion rockVersion
	)
	for _, published := range manifest.Versions {
		v, err := semver.NewVersion(published.Version)
		if err != nil {
			continue
		}
		if !req.Matches(published.Version) {
			continue
		}
		if best == nil || v.GreaterThan(best) {
			best = v
			bestVersion = published
		}
	}

	if best == nil {
		noneErr := zerr.With(domain.ErrNoMatchingVersion, "package", req.Name())
		return domain.RemoteRock{}, zerr.With(noneErr, "requirement", req.String())
	}

	return domain.RemoteRock{
		Name:     manifest.Name,
		Version:  bestVersion.Version,
		URL:      bestVersion.URL,
		Checksum: bestVersion.Checksum,
	}, nil
}

type cacheFile map[string]cacheEntry

func (r *Resolver) checkCache(key string) (domain.RemoteRock, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := os.Open(r.cachePath)
	if err != nil {
		return domain.RemoteRock{}, false
	}
	defer func() { _ = f.Close() }()

	var cache cacheFile
	if err := json.NewDecoder(f).Decode(&cache); err != nil {
		return domain.RemoteRock{}, false
	}

	entry, ok := cache[key]
	if !ok {
		return domain.RemoteRock{}, false
	}
	return domain.RemoteRock{
		Name:     entry.Name,
		Version:  entry.Version,
		URL:      entry.URL,
		Checksum: entry.Checksum,
	}, true
}

func (r *Resolver) updateCache(key string, rock domain.RemoteRock) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cache := make(cacheFile)
	if data, err := os.ReadFile(r.cachePath); err == nil { //nolint:gosec // cache path is internal
		// A corrupt cache is discarded, not an error.
		_ = json.Unmarshal(data, &cache)
	}

	cache[key] = cacheEntry{
		Name:      rock.Name,
		Version:   rock.Version,
		URL:       rock.URL,
		Checksum:  rock.Checksum,
		Timestamp: time.Now().UTC(),
	}

	data, err := json.MarshalIndent(cache, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(r.cachePath), 0o750); err != nil {
		return err
	}
	return os.WriteFile(r.cachePath, data, 0o600)
}
