package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wordlattice/wordlattice/pkg/graph"
	"github.com/wordlattice/wordlattice/pkg/pipeline"
	"github.com/wordlattice/wordlattice/pkg/wordlist"
)

// buildCommand creates the build command.
func (c *CLI) buildCommand() *cobra.Command {
	var (
		output      string
		formatsStr  string
		rankByLevel bool
		failFast    bool
		keepCase    bool
		noCache     bool
		refresh     bool
	)

	cmd := &cobra.Command{
		Use:   "build <words.txt>",
		Short: "Build a minimized lattice snapshot from a word list",
		Long: `Build a minimized lattice snapshot from a word list.

The input is a flat file with one word per line. Words are trimmed,
lowercased (unless --keep-case), and deduplicated; malformed lines are
reported and skipped (or abort the run with --fail-fast).

The pipeline inserts every word into a trie, merges shared suffixes into a
minimal acyclic acceptor, verifies the result still encodes exactly the
input words, and writes the node/edge snapshot as JSON. Additional formats
(dot, svg) can be rendered from the same snapshot.

Results are cached locally keyed by the word-list content; use --refresh to
force a rebuild or --no-cache to disable caching entirely.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := withLogger(cmd.Context(), c.Logger)

			words, rejected, err := wordlist.LoadFile(args[0], wordlist.Options{
				FailFast: failFast,
				KeepCase: keepCase,
			})
			if err != nil {
				return err
			}
			for _, rec := range rejected {
				printWarning("skipped %v", rec)
			}
			if len(words) == 0 {
				return fmt.Errorf("%s: no usable words", args[0])
			}

			runner, err := c.newRunner(noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			opts := pipeline.Options{
				KeepCase:    keepCase,
				Formats:     parseFormats(formatsStr, c.Config.Formats),
				RankByLevel: rankByLevel,
				Refresh:     refresh,
				Logger:      c.Logger,
			}

			prog := newProgress(loggerFromContext(ctx))
			spin := newSpinnerWithContext(ctx, fmt.Sprintf("Encoding %d words...", len(words)))
			spin.Start()
			result, err := runner.Execute(ctx, words, opts)
			if err != nil {
				spin.StopWithError("Build failed")
				return err
			}
			spin.Stop()
			prog.done("Pipeline finished")

			if err := graph.WriteGraphFile(result.Graph, output); err != nil {
				return err
			}

			printSuccess("Encoded %d words into %d nodes and %d edges",
				result.Stats.WordCount, result.Stats.NodeCount, result.Stats.EdgeCount)
			if result.CacheInfo.SnapshotHit {
				printDetail("Snapshot from cache")
			} else {
				printDetail("Merged %d equivalent nodes", result.Stats.MergedNodes)
			}
			printFile(output)

			for format, data := range result.Artifacts {
				path := replaceExt(output, "."+format)
				if err := os.WriteFile(path, data, 0o644); err != nil {
					return err
				}
				printFile(path)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "lattice.json", "snapshot output path")
	cmd.Flags().StringVarP(&formatsStr, "formats", "f", "", "extra artifact formats (dot,svg)")
	cmd.Flags().BoolVar(&rankByLevel, "rank-by-level", false, "group DOT output by BFS level")
	cmd.Flags().BoolVar(&failFast, "fail-fast", false, "abort on the first malformed input line")
	cmd.Flags().BoolVar(&keepCase, "keep-case", false, "do not lowercase input words")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the result cache")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "ignore cached results and rebuild")

	return cmd
}

// parseFormats splits a comma-separated format list, falling back to the
// configured defaults when the flag is empty.
func parseFormats(s string, fallback []string) []string {
	if s == "" {
		return fallback
	}
	var formats []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			formats = append(formats, f)
		}
	}
	return formats
}

// replaceExt swaps the extension of path for ext.
func replaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
