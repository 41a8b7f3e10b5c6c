// Package graph defines the exported lattice snapshot: a flat node/edge
// model with stable integer ids and BFS levels, plus JSON serialization
// with referential validation on read.
//
// A snapshot is produced once by [Export] after the lattice has passed
// integrity verification, and is treated as immutable by every downstream
// consumer. Traversal (pkg/traverse) and external visualizers operate on
// this model only; the construction-time lattice is never shared.
package graph
