package lattice

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrDanglingEdge is returned by [Lattice.Verify] when an edge references a
// node id that is not present in the lattice. This indicates graph
// corruption; a correct build and minimization never produce it.
var ErrDanglingEdge = errors.New("edge references a missing node")

// IntegrityError reports that the minimized lattice does not encode exactly
// the original word set, or that it contains a cycle. It is fatal: a
// corrupted minimization silently changes which words the structure
// represents, so export must not proceed.
type IntegrityError struct {
	Missing []string // words in the input that the lattice no longer spells
	Extra   []string // words the lattice spells that were never inserted
	Cycle   []string // labels of a witness path, non-nil when a cycle exists
}

func (e *IntegrityError) Error() string {
	if len(e.Cycle) > 0 {
		return fmt.Sprintf("lattice contains a cycle: %s", strings.Join(e.Cycle, " -> "))
	}
	return fmt.Sprintf("word set mismatch: %d missing %v, %d extra %v",
		len(e.Missing), e.Missing, len(e.Extra), e.Extra)
}

// Verify proves that the lattice still encodes exactly the given word set:
// it re-derives every root-to-END path by exhaustive DFS and asserts set
// equality with the distinct input words, after asserting the graph is
// acyclic (the enumeration is only bounded because the graph is finite and
// acyclic). On failure it returns an *IntegrityError naming the mismatching
// words or the cycle witness path; on corruption it returns ErrDanglingEdge.
func (l *Lattice) Verify(words []string) error {
	if err := l.checkEdges(); err != nil {
		return err
	}
	if witness := l.findCycle(); witness != nil {
		return &IntegrityError{Cycle: witness}
	}

	want := make(map[string]bool, len(words))
	for _, w := range words {
		want[w] = true
	}
	got := l.enumerate()

	var missing, extra []string
	for w := range want {
		if !got[w] {
			missing = append(missing, w)
		}
	}
	for w := range got {
		if !want[w] {
			extra = append(extra, w)
		}
	}
	if len(missing) > 0 || len(extra) > 0 {
		sort.Strings(missing)
		sort.Strings(extra)
		return &IntegrityError{Missing: missing, Extra: extra}
	}
	return nil
}

func (l *Lattice) checkEdges() error {
	for _, n := range l.nodes {
		for label, child := range n.children {
			if _, ok := l.nodes[child]; !ok {
				return fmt.Errorf("edge %d -[%s]-> %d: %w", n.id, label, child, ErrDanglingEdge)
			}
		}
	}
	return nil
}

// enumerate collects every word spelled by a root-to-END path, using an
// explicit work stack. Characters come from node labels; the sentinels
// contribute nothing.
func (l *Lattice) enumerate() map[string]bool {
	type frame struct {
		id     int
		prefix string
	}

	words := make(map[string]bool)
	stack := []frame{{rootID, ""}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, child := range l.nodes[f.id].children {
			if child == endID {
				words[f.prefix] = true
				continue
			}
			stack = append(stack, frame{child, f.prefix + l.nodes[child].label})
		}
	}
	return words
}

// findCycle runs a white/gray/black DFS and returns the labels along a
// witness path ending in the repeated node, or nil if the graph is acyclic.
func (l *Lattice) findCycle() []string {
	const (
		white = iota
		gray
		black
	)

	color := make(map[int]int, len(l.nodes))
	var path []int
	var witness []string

	var dfs func(id int) bool
	dfs = func(id int) bool {
		color[id] = gray
		path = append(path, id)
		for _, child := range l.nodes[id].children {
			switch color[child] {
			case white:
				if dfs(child) {
					return true
				}
			case gray:
				start := 0
				for i, p := range path {
					if p == child {
						start = i
						break
					}
				}
				for _, p := range path[start:] {
					witness = append(witness, l.nodes[p].label)
				}
				witness = append(witness, l.nodes[child].label)
				return true
			}
		}
		color[id] = black
		path = path[:len(path)-1]
		return false
	}

	if dfs(rootID) {
		return witness
	}
	return nil
}
