// Package cache provides content-addressed caching for pipeline results.
//
// The build pipeline is deterministic in the word set it encodes, so a
// snapshot can be cached under the hash of its normalized word list and
// reused on subsequent runs. Rendered artifacts (DOT, SVG) are cached under
// the snapshot hash plus their render options.
package cache

import (
	"context"
	"time"
)

// TTLs for the two cached result kinds. Snapshot entries are keyed by the
// content hash of their input, so they only go stale when the pipeline
// itself changes; artifacts are cheaper to rebuild and expire sooner.
const (
	TTLSnapshot = 30 * 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache is the storage interface for pipeline results.
// Implementations: [FileCache] for CLI runs, [NullCache] to disable caching.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with a time-to-live. A ttl of 0 never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// SnapshotKeyOpts are the options that change a snapshot's content and must
// therefore be part of its cache key.
type SnapshotKeyOpts struct {
	KeepCase bool // input normalization affects the encoded word set
}

// ArtifactKeyOpts are the options that change a rendered artifact.
type ArtifactKeyOpts struct {
	Format string // "dot" or "svg"
}

// Keyer generates cache keys for the pipeline stages.
type Keyer interface {
	// SnapshotKey generates a key for an exported graph snapshot from the
	// hash of the normalized word list.
	SnapshotKey(wordsHash string, opts SnapshotKeyOpts) string

	// ArtifactKey generates a key for a rendered artifact from the hash of
	// the snapshot it was rendered from.
	ArtifactKey(snapshotHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer generates hashed, prefix-namespaced keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer { return &DefaultKeyer{} }

// SnapshotKey generates a key for a graph snapshot.
func (k *DefaultKeyer) SnapshotKey(wordsHash string, opts SnapshotKeyOpts) string {
	return hashKey("snapshot", wordsHash, opts)
}

// ArtifactKey generates a key for a rendered artifact.
func (k *DefaultKeyer) ArtifactKey(snapshotHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", snapshotHash, opts)
}
