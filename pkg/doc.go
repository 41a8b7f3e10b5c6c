// Package pkg provides the core libraries for wordlattice dictionary encoding.
//
// # Overview
//
// Wordlattice turns a flat word list into a minimal acyclic word acceptor: a
// trie whose shared suffixes are merged into one subgraph each, verified to
// still encode exactly the input words, and exported as an immutable
// node/edge snapshot. The pkg directory is organized by pipeline stage:
//
//  1. [lattice] - Construction core (trie build, minimization, verification)
//  2. [graph] - Exported snapshot types and JSON serialization
//  3. [traverse] - Prefix/suffix/word queries over a snapshot
//  4. [pipeline] - Orchestration (build → minimize → verify → export → render)
//  5. [wordlist] - Word-list input reading and normalization
//  6. [render] - DOT and SVG artifact generation
//  7. [cache] - Content-addressed result caching
//  8. [errors] - Coded application errors
//
// # Architecture
//
// The typical data flow:
//
//	words.txt
//	    ↓  wordlist (normalize, dedupe)
//	[]string
//	    ↓  lattice (build trie, merge suffixes, verify)
//	*lattice.Lattice
//	    ↓  graph (assign ids and levels)
//	graph.Graph ──→ render (DOT/SVG)
//	    ↓  traverse
//	prefixes / suffixes / words through a node
//
// The verify stage is a gate: a minimization that loses or invents words, or
// produces a cycle, aborts the pipeline before any snapshot is written.
//
// [lattice]: https://pkg.go.dev/github.com/wordlattice/wordlattice/pkg/lattice
// [graph]: https://pkg.go.dev/github.com/wordlattice/wordlattice/pkg/graph
// [traverse]: https://pkg.go.dev/github.com/wordlattice/wordlattice/pkg/traverse
// [pipeline]: https://pkg.go.dev/github.com/wordlattice/wordlattice/pkg/pipeline
// [wordlist]: https://pkg.go.dev/github.com/wordlattice/wordlattice/pkg/wordlist
// [render]: https://pkg.go.dev/github.com/wordlattice/wordlattice/pkg/render
// [cache]: https://pkg.go.dev/github.com/wordlattice/wordlattice/pkg/cache
// [errors]: https://pkg.go.dev/github.com/wordlattice/wordlattice/pkg/errors
package pkg
