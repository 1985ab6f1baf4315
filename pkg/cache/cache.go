// Package cache stores rendered rink artifacts.
//
// Backends implement [Cache]: [NullCache] (disabled), [FileCache] (CLI,
// one JSON file per entry), [RedisCache] and [MongoCache] (shared by
// server instances). [Open] selects one from a [Config].
//
// Keys come from a [Keyer]. The default keyer hashes the normalized plan
// together with everything that changes the output bytes, so two requests
// that normalize to the same drawing share an entry:
//
//	key := keyer.ArtifactKey(cache.Hash(planJSON), cache.ArtifactKeyOpts{Format: "png", Style: "classic", DPI: 100})
//	data, hit, err := c.Get(ctx, key)
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the stored data and true, or nil and false on a miss.
	// Expired entries are misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl <= 0 never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases connections held by the backend.
	Close() error
}

// TTLArtifact is how long rendered artifacts are kept. Rink geometry only
// changes with a new release, so entries can live long.
const TTLArtifact = 7 * 24 * time.Hour

// ArtifactKeyOpts are the render settings that change an artifact's bytes.
type ArtifactKeyOpts struct {
	Format      string  `json:"format"`
	Style       string  `json:"style"`
	DPI         float64 `json:"dpi"`
	Transparent bool    `json:"transparent,omitempty"`
	Title       string  `json:"title,omitempty"`
}

// Keyer derives cache keys.
type Keyer interface {
	// ArtifactKey returns the key for one rendered format of a plan.
	ArtifactKey(planHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes key components into fixed-length keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// ArtifactKey returns "artifact:<sha256>".
func (DefaultKeyer) ArtifactKey(planHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", planHash, opts)
}
