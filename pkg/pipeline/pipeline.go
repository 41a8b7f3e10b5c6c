// Package pipeline provides the core construction pipeline for wordlattice.
//
// This package implements the complete build → minimize → verify → export
// sequence that can be used by the CLI and by library consumers. By
// centralizing this logic, every entry point gets the same stage ordering
// and the same integrity gate.
//
// # Architecture
//
// The pipeline consists of four stages, run strictly in order on one
// goroutine (each stage fully consumes the previous stage's output):
//
//  1. Build: insert every word into a raw trie (pkg/lattice)
//  2. Minimize: merge equivalent suffix subgraphs bottom-up
//  3. Verify: prove the merged graph encodes exactly the input word set -
//     a failed check is fatal and blocks export
//  4. Export: assign stable ids and levels, emit the graph snapshot
//
// Optionally a render stage produces DOT/SVG artifacts from the snapshot.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, words, pipeline.Options{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	snapshot := result.Graph
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/wordlattice/wordlattice/pkg/cache"
	"github.com/wordlattice/wordlattice/pkg/errors"
	"github.com/wordlattice/wordlattice/pkg/graph"
)

// Format constants for rendered artifacts. The JSON snapshot is not a
// format: it is the pipeline's primary output, always produced.
const (
	FormatDOT = "dot"
	FormatSVG = "svg"
)

// ValidFormats is the set of supported artifact formats.
var ValidFormats = map[string]bool{
	FormatDOT: true,
	FormatSVG: true,
}

// ValidateFormat checks that an artifact format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeMalformedInput, "invalid format: %q (must be one of: dot, svg)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// Options contains all configuration for the construction pipeline.
type Options struct {
	// KeepCase disables input lowercasing. Must match the normalization the
	// word list was read with; it is part of the snapshot cache key.
	KeepCase bool `json:"keep_case,omitempty"`

	// Formats lists artifact formats to render ("dot", "svg").
	// Empty means snapshot only.
	Formats []string `json:"formats,omitempty"`

	// RankByLevel groups DOT output by BFS level.
	RankByLevel bool `json:"rank_by_level,omitempty"`

	// Refresh bypasses the snapshot cache and rebuilds from scratch.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// ValidateAndSetDefaults checks fields and applies defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// SnapshotKeyOpts returns the cache key options for the snapshot stage.
func (o *Options) SnapshotKeyOpts() cache.SnapshotKeyOpts {
	return cache.SnapshotKeyOpts{KeepCase: o.KeepCase}
}

// ArtifactKeyOpts returns the cache key options for one artifact format.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{Format: format}
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Graph is the exported snapshot.
	Graph graph.Graph

	// SnapshotHash is the content hash of the serialized snapshot.
	SnapshotHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains counts and stage timings.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	WordCount   int
	NodeCount   int
	EdgeCount   int
	MergedNodes int

	BuildTime    time.Duration
	MinimizeTime time.Duration
	VerifyTime   time.Duration
	ExportTime   time.Duration
	RenderTime   time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	SnapshotHit bool // snapshot came from cache (build/minimize/verify skipped)
	RenderHit   bool // all artifacts came from cache
}
