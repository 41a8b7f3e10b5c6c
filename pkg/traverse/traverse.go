package traverse

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/wordlattice/wordlattice/pkg/graph"
)

// ErrUnknownNode is returned when a query references a node id that is not
// present in the snapshot. No partial result is returned.
var ErrUnknownNode = errors.New("node not in snapshot")

// DefaultMaxResults is the advisory cap on enumerated strings. Word count
// through a pivot is the product of its prefix and suffix counts, so
// high-fan-in snapshots can blow up combinatorially without a cap.
const DefaultMaxResults = 10000

// Options configures a Traverser.
type Options struct {
	// MaxResults caps the number of strings any single query returns.
	// Zero means DefaultMaxResults; negative means unlimited.
	MaxResults int
}

// Traverser answers prefix/suffix/word queries against an immutable
// snapshot. It indexes the edge list once at construction; queries never
// mutate node or edge data, so a single Traverser is safe for concurrent
// use by independent callers.
type Traverser struct {
	nodes map[int]graph.Node
	out   map[int][]int
	in    map[int][]int
	root  int
	end   int
	max   int

	mu      sync.Mutex
	suffixc map[int][]string // memoized suffix sets, guarded by mu
}

// New builds a Traverser over a snapshot.
func New(g graph.Graph, opts Options) *Traverser {
	max := opts.MaxResults
	if max == 0 {
		max = DefaultMaxResults
	}

	t := &Traverser{
		nodes:   make(map[int]graph.Node, len(g.Nodes)),
		out:     make(map[int][]int),
		in:      make(map[int][]int),
		root:    g.Root(),
		end:     g.End(),
		max:     max,
		suffixc: make(map[int][]string),
	}
	for _, n := range g.Nodes {
		t.nodes[n.ID] = n
	}
	for _, e := range g.Edges {
		t.out[e.Source] = append(t.out[e.Source], e.Target)
		t.in[e.Target] = append(t.in[e.Target], e.Source)
	}
	return t
}

// Prefixes returns every distinct string spelled along a root-to-node path,
// ending in the pivot's own label. Sentinel labels contribute the empty
// string, so Prefixes(root) is [""] and Prefixes(end) enumerates complete
// words. An empty list means no path exists, which after integrity
// verification only happens for an unreachable (bug-state) node.
//
// The walk runs backward along incoming edges with an explicit work stack.
func (t *Traverser) Prefixes(id int) ([]string, error) {
	if _, ok := t.nodes[id]; !ok {
		return nil, fmt.Errorf("node %d: %w", id, ErrUnknownNode)
	}
	if id == t.root {
		return []string{""}, nil
	}

	type frame struct {
		id  int
		acc string
	}

	var results []string
	stack := []frame{{id, t.characterLabel(id)}}
	for len(stack) > 0 && !t.capped(len(results)) {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, parent := range t.in[f.id] {
			if parent == t.root {
				results = append(results, f.acc)
				continue
			}
			stack = append(stack, frame{parent, t.nodes[parent].Label + f.acc})
		}
	}
	sort.Strings(results)
	return results, nil
}

// Suffixes returns every distinct string spelled along a node-to-END path,
// excluding the END sentinel and the pivot's own label. A terminal node
// with no other outgoing edges has suffixes [""].
//
// Suffix sets are memoized per node: shared suffixes mean naive walks
// repeat work across the many parents of a canonical node.
func (t *Traverser) Suffixes(id int) ([]string, error) {
	if _, ok := t.nodes[id]; !ok {
		return nil, fmt.Errorf("node %d: %w", id, ErrUnknownNode)
	}
	if id == t.end {
		return []string{""}, nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	suffixes := t.suffixSet(id)

	out := make([]string, 0, len(suffixes))
	for i, s := range suffixes {
		if t.capped(i) {
			break
		}
		out = append(out, s)
	}
	sort.Strings(out)
	return out, nil
}

// suffixSet computes the memoized suffix set of a node. Recursion depth is
// bounded by the longest word: acyclicity is an invariant proven by the
// integrity check, not an assumption. Caller holds mu.
func (t *Traverser) suffixSet(id int) []string {
	if cached, ok := t.suffixc[id]; ok {
		return cached
	}

	var suffixes []string
	for _, child := range t.out[id] {
		if child == t.end {
			suffixes = append(suffixes, "")
			continue
		}
		label := t.nodes[child].Label
		for _, s := range t.suffixSet(child) {
			suffixes = append(suffixes, label+s)
		}
	}
	t.suffixc[id] = suffixes
	return suffixes
}

// WordsThrough returns the cross-product {prefix + suffix} of every
// root-to-node prefix and node-to-END suffix: all complete words whose path
// passes through the pivot. The pivot's label is already the last character
// of each prefix, so the concatenation spells it exactly once;
// WordsThrough(root) enumerates the whole dictionary.
func (t *Traverser) WordsThrough(id int) ([]string, error) {
	prefixes, err := t.Prefixes(id)
	if err != nil {
		return nil, err
	}
	suffixes, err := t.Suffixes(id)
	if err != nil {
		return nil, err
	}

	var words []string
	for _, p := range prefixes {
		for _, s := range suffixes {
			if t.capped(len(words)) {
				sort.Strings(words)
				return words, nil
			}
			words = append(words, p+s)
		}
	}
	sort.Strings(words)
	return words, nil
}

// characterLabel returns the label a node contributes to a spelled string:
// its own character, or the empty string for the ROOT/END sentinels.
func (t *Traverser) characterLabel(id int) string {
	label := t.nodes[id].Label
	if label == graph.LabelRoot || label == graph.LabelEnd {
		return ""
	}
	return label
}

func (t *Traverser) capped(n int) bool {
	return t.max > 0 && n >= t.max
}
