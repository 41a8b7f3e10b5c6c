package graph

// Sentinel labels for the two non-character nodes, mirrored from the
// lattice so that snapshot consumers do not need to import pkg/lattice.
const (
	LabelRoot = "ROOT"
	LabelEnd  = "END"
)

// Node is a vertex of an exported snapshot. IDs are dense non-negative
// integers assigned in BFS discovery order from the root, stable for a
// single run and never reused. Level is the minimum BFS distance from the
// root; it is layout metadata, not acceptance semantics.
type Node struct {
	ID    int    `json:"id"`
	Label string `json:"label"` // single character, or ROOT/END
	Level int    `json:"level"`
}

// Edge is a directed connection (source id -> target id). The target's
// label is the next character after following the source. Shared suffixes
// appear as multiple edges carrying the same target id.
type Edge struct {
	Source int `json:"source"`
	Target int `json:"target"`
}

// Graph is the immutable snapshot emitted after a verified minimization.
// It is the only artifact downstream consumers (traversal, visualizers)
// see; once emitted it is never mutated, so concurrent reads need no
// synchronization.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Root returns the id of the ROOT node, or -1 if the snapshot has none.
func (g Graph) Root() int {
	for _, n := range g.Nodes {
		if n.Label == LabelRoot {
			return n.ID
		}
	}
	return -1
}

// End returns the id of the END node, or -1 if the snapshot has none.
func (g Graph) End() int {
	for _, n := range g.Nodes {
		if n.Label == LabelEnd {
			return n.ID
		}
	}
	return -1
}

// NodeByID returns the node with the given id and true, or a zero node and
// false if the id is not in the snapshot.
func (g Graph) NodeByID(id int) (Node, bool) {
	for _, n := range g.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}
