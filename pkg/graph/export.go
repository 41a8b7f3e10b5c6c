package graph

import (
	"maps"
	"slices"

	"github.com/wordlattice/wordlattice/pkg/lattice"
)

// Export assigns a stable integer id to every surviving node of a verified
// lattice and emits the node/edge snapshot consumed by traversal and by
// external visualizers.
//
// Ids are assigned in BFS discovery order from the root (the root is always
// id 0), with a node's outgoing edges visited in sorted label order so the
// numbering is deterministic for a given lattice. Levels come from
// [lattice.Lattice.Levels] (minimum root distance).
//
// Export must only run after [lattice.Lattice.Verify] has passed; it does
// not re-check integrity. The lattice must hold at least one word: with no
// words the END node is unreachable, so the snapshot contains only the ROOT
// node and [Graph.End] reports -1.
func Export(l *lattice.Lattice) Graph {
	levels := l.Levels()

	var g Graph
	ids := map[int]int{l.Root(): 0}
	rootLabel, _ := l.Label(l.Root())
	g.Nodes = append(g.Nodes, Node{ID: 0, Label: rootLabel, Level: levels[l.Root()]})

	queue := []int{l.Root()}
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		children := l.Children(curr)
		for _, label := range slices.Sorted(maps.Keys(children)) {
			child := children[label]
			cid, seen := ids[child]
			if !seen {
				cid = len(g.Nodes)
				ids[child] = cid
				childLabel, _ := l.Label(child)
				g.Nodes = append(g.Nodes, Node{ID: cid, Label: childLabel, Level: levels[child]})
				queue = append(queue, child)
			}
			g.Edges = append(g.Edges, Edge{Source: ids[curr], Target: cid})
		}
	}
	return g
}
