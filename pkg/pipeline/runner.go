package pipeline

import (
	"bytes"
	"context"
	stderrors "errors"
	"time"

	"github.com/charmbracelet/log"

	"github.com/wordlattice/wordlattice/pkg/cache"
	"github.com/wordlattice/wordlattice/pkg/errors"
	"github.com/wordlattice/wordlattice/pkg/graph"
	"github.com/wordlattice/wordlattice/pkg/lattice"
	"github.com/wordlattice/wordlattice/pkg/render"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger - it does not
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If c is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// Execute runs the complete build → minimize → verify → export pipeline,
// then renders any requested artifact formats. Words must already be
// normalized and deduplicated (pkg/wordlist does both).
//
// The verify stage is a gate: if the minimized graph does not encode
// exactly the input word set, or contains a cycle, Execute returns an
// INTEGRITY_VIOLATION / GRAPH_CYCLE error and no snapshot is produced.
func (r *Runner) Execute(ctx context.Context, words []string, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)

	result := &Result{Artifacts: make(map[string][]byte)}
	result.Stats.WordCount = len(words)

	snapshot, hit, err := r.ConstructWithCacheInfo(ctx, words, opts, &result.Stats)
	if err != nil {
		return nil, err
	}
	result.Graph = snapshot
	result.CacheInfo.SnapshotHit = hit

	data, err := graph.MarshalGraph(snapshot)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "serialize snapshot")
	}
	result.SnapshotHash = cache.Hash(data)
	result.Stats.NodeCount = len(snapshot.Nodes)
	result.Stats.EdgeCount = len(snapshot.Edges)

	opts.Logger.Info("exported snapshot",
		"nodes", result.Stats.NodeCount,
		"edges", result.Stats.EdgeCount,
		"cached", hit)

	if len(opts.Formats) > 0 {
		renderStart := time.Now()
		artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, snapshot, result.SnapshotHash, opts)
		if err != nil {
			return nil, err
		}
		result.Artifacts = artifacts
		result.CacheInfo.RenderHit = renderHit
		result.Stats.RenderTime = time.Since(renderStart)

		opts.Logger.Info("rendered artifacts",
			"formats", opts.Formats,
			"duration", result.Stats.RenderTime)
	}

	return result, nil
}

// ConstructWithCacheInfo produces the snapshot for a word list, consulting
// the cache first, and reports whether the snapshot came from cache.
func (r *Runner) ConstructWithCacheInfo(ctx context.Context, words []string, opts Options, stats *Stats) (graph.Graph, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return graph.Graph{}, false, err
	}
	r.applyLogger(&opts)

	key := r.Keyer.SnapshotKey(cache.HashWords(words), opts.SnapshotKeyOpts())

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			if snapshot, err := graph.ReadGraph(bytes.NewReader(data)); err == nil {
				return snapshot, true, nil
			}
			// Undecodable entry - fall through to rebuild
		}
	}

	snapshot, err := r.Construct(words, opts, stats)
	if err != nil {
		return graph.Graph{}, false, err
	}

	if data, err := graph.MarshalGraph(snapshot); err == nil {
		_ = r.Cache.Set(ctx, key, data, cache.TTLSnapshot)
	}
	return snapshot, false, nil
}

// Construct runs the uncached build → minimize → verify → export sequence.
// Stage timings are recorded into stats when it is non-nil.
func (r *Runner) Construct(words []string, opts Options, stats *Stats) (graph.Graph, error) {
	if stats == nil {
		stats = &Stats{}
	}

	buildStart := time.Now()
	l := lattice.New()
	for _, w := range words {
		if err := l.Insert(w); err != nil {
			return graph.Graph{}, errors.Wrap(errors.ErrCodeMalformedInput, err, "insert %q", w)
		}
	}
	stats.BuildTime = time.Since(buildStart)

	opts.Logger.Info("built trie",
		"words", l.WordCount(),
		"nodes", l.NodeCount(),
		"duration", stats.BuildTime)

	minimizeStart := time.Now()
	stats.MergedNodes = l.Minimize()
	stats.MinimizeTime = time.Since(minimizeStart)

	opts.Logger.Info("minimized lattice",
		"merged", stats.MergedNodes,
		"nodes", l.NodeCount(),
		"duration", stats.MinimizeTime)

	verifyStart := time.Now()
	err := l.Verify(words)
	stats.VerifyTime = time.Since(verifyStart)
	if err != nil {
		return graph.Graph{}, classifyVerify(err)
	}

	opts.Logger.Debug("verified word set", "duration", stats.VerifyTime)

	exportStart := time.Now()
	snapshot := graph.Export(l)
	stats.ExportTime = time.Since(exportStart)

	return snapshot, nil
}

// RenderWithCacheInfo renders artifacts for the requested formats with
// per-format caching and reports whether every artifact came from cache.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, snapshot graph.Graph, snapshotHash string, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	artifacts := make(map[string][]byte, len(opts.Formats))
	allCached := true

	for _, format := range opts.Formats {
		key := r.Keyer.ArtifactKey(snapshotHash, opts.ArtifactKeyOpts(format))
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			artifacts[format] = data
			continue
		}
		allCached = false

		data, err := renderFormat(snapshot, format, opts)
		if err != nil {
			return nil, false, errors.Wrap(errors.ErrCodeInternal, err, "render %s", format)
		}
		artifacts[format] = data
		_ = r.Cache.Set(ctx, key, data, cache.TTLArtifact)
	}

	return artifacts, allCached, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func renderFormat(snapshot graph.Graph, format string, opts Options) ([]byte, error) {
	dot := render.ToDOT(snapshot, render.Options{RankByLevel: opts.RankByLevel})
	switch format {
	case FormatDOT:
		return []byte(dot), nil
	case FormatSVG:
		return render.RenderSVG(dot)
	}
	return nil, ValidateFormat(format)
}

// classifyVerify maps a verification failure onto the application error
// codes: a cycle witness becomes GRAPH_CYCLE, everything else (word-set
// mismatch, dangling edge) is INTEGRITY_VIOLATION.
func classifyVerify(err error) error {
	var ie *lattice.IntegrityError
	if stderrors.As(err, &ie) && len(ie.Cycle) > 0 {
		return errors.Wrap(errors.ErrCodeCycle, err, "minimized graph is cyclic")
	}
	return errors.Wrap(errors.ErrCodeIntegrity, err, "minimized graph does not match input")
}

func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
