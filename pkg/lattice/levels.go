package lattice

// Levels returns the level of every node: the minimum number of edges on
// any path from the root, computed by BFS and recorded the first time a
// node is discovered. Shared-suffix nodes are reachable at several
// distances; the minimum is the defined level. The root has level 0.
//
// Levels are layout metadata for the exported snapshot, not part of the
// acceptance semantics.
func (l *Lattice) Levels() map[int]int {
	levels := make(map[int]int, len(l.nodes))
	levels[rootID] = 0

	queue := []int{rootID}
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		for _, child := range l.nodes[curr].children {
			if _, seen := levels[child]; seen {
				continue
			}
			levels[child] = levels[curr] + 1
			queue = append(queue, child)
		}
	}
	return levels
}
