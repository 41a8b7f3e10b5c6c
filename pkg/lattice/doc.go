// Package lattice builds a space-efficient dictionary index: a trie over a
// word list whose common suffixes are merged into shared subgraphs,
// producing a minimal acyclic word acceptor instead of a tree.
//
// # Pipeline
//
// The construction pipeline has three stages, run strictly in order:
//
//  1. Build: [Lattice.Insert] adds each word as a character path from the
//     ROOT node, creating nodes only where paths diverge and linking the
//     last node of every word to the shared END node.
//  2. Minimize: [Lattice.Minimize] merges structurally equivalent nodes
//     bottom-up using hashed signatures, rewiring all incoming edges to a
//     single canonical representative.
//  3. Verify: [Lattice.Verify] re-enumerates every root-to-END path and
//     proves the merged structure still encodes exactly the original word
//     set, and that it is acyclic.
//
// Verification is a gate: downstream consumers (pkg/graph export, traversal)
// must not run on a lattice that failed it.
//
// # Representation
//
// Nodes live in an index-addressed arena keyed by dense integer ids, so a
// shared suffix is simply multiple edges carrying the same child id. A
// node's label is the character a path consumes when entering it; ROOT and
// END are sentinel nodes in the same id space with non-character labels.
//
// # Example
//
//	l := lattice.New()
//	for _, w := range []string{"cats", "rats", "bats"} {
//		if err := l.Insert(w); err != nil {
//			return err
//		}
//	}
//	l.Minimize()
//	if err := l.Verify([]string{"cats", "rats", "bats"}); err != nil {
//		return err
//	}
package lattice
