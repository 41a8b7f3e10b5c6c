package lattice

import (
	"sort"
	"strconv"
	"strings"
)

// Minimize merges every pair of structurally equivalent subgraphs, turning
// the raw trie into a minimal acyclic word acceptor. Two nodes are
// equivalent when they have the same signature: the same terminal edge and
// the same (label, canonical child id) set. Equal signatures mean the same
// reachable suffix set, so all incoming edges of the loser are rewired to
// the first node seen with that signature and the loser is discarded.
//
// Nodes are processed deepest-first so a child's canonical identity is
// final before any parent's signature is computed; within a depth the scan
// runs in ascending node id, making the merge deterministic for a given
// insertion history. Runtime is linear in the raw trie size: one hashed
// signature lookup per node.
//
// Minimize returns the number of nodes merged away. It is idempotent:
// minimizing an already-minimal lattice merges nothing.
func (l *Lattice) Minimize() int {
	order := make([]*node, 0, len(l.nodes))
	for _, n := range l.nodes {
		if n.id == rootID || n.id == endID {
			continue
		}
		order = append(order, n)
	}
	sort.Slice(order, func(i, j int) bool {
		if order[i].depth != order[j].depth {
			return order[i].depth > order[j].depth
		}
		return order[i].id < order[j].id
	})

	canonical := make(map[string]int, len(order))
	merged := 0

	for _, n := range order {
		sig := l.signature(n)
		winner, ok := canonical[sig]
		if !ok {
			canonical[sig] = n.id
			continue
		}
		l.redirect(n.id, winner)
		merged++
	}
	return merged
}

// signature builds the canonicalization key of a node. Children are already
// canonical (deepest-first processing), so their ids identify suffix sets.
// The END edge is part of the key (a bare terminal leaf must not collide
// with a non-terminal leaf), and so is the node's own label: a path's
// characters are node labels, so nodes spelling different characters are
// never interchangeable even with identical children.
func (l *Lattice) signature(n *node) string {
	parts := make([]string, 0, len(n.children))
	for label, child := range n.children {
		parts = append(parts, label+":"+strconv.Itoa(child))
	}
	sort.Strings(parts)
	return n.label + "|" + strings.Join(parts, ";")
}

// redirect rewires every edge pointing at the loser to point at the winner,
// then discards the loser. The winner keeps its identity for the remainder
// of the run.
func (l *Lattice) redirect(loser, winner int) {
	seen := make(map[int]bool)
	for _, p := range l.parents[loser] {
		if seen[p] {
			continue
		}
		seen[p] = true
		parent := l.nodes[p]
		for label, child := range parent.children {
			if child == loser {
				parent.children[label] = winner
				l.parents[winner] = append(l.parents[winner], p)
			}
		}
	}
	delete(l.parents, loser)
	delete(l.nodes, loser)
}
