// Package traverse implements read-only path queries over an exported
// lattice snapshot: the prefixes reaching a node, the suffixes leaving it,
// and the complete dictionary words passing through it.
package traverse
