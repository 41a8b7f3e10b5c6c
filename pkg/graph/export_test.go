package graph

import (
	"reflect"
	"testing"

	"github.com/wordlattice/wordlattice/pkg/lattice"
)

func buildSnapshot(t *testing.T, words []string) Graph {
	t.Helper()
	l := lattice.New()
	for _, w := range words {
		if err := l.Insert(w); err != nil {
			t.Fatalf("Insert(%q): %v", w, err)
		}
	}
	l.Minimize()
	if err := l.Verify(words); err != nil {
		t.Fatalf("Verify: %v", err)
	}
	return Export(l)
}

func TestExport(t *testing.T) {
	tests := []struct {
		name      string
		words     []string
		wantNodes int
		wantEdges int
	}{
		{name: "Empty", words: nil, wantNodes: 1, wantEdges: 0},
		{name: "SingleWord", words: []string{"cat"}, wantNodes: 5, wantEdges: 4},
		{name: "SharedPrefix", words: []string{"cat", "cap"}, wantNodes: 6, wantEdges: 6},
		{name: "SharedSuffix", words: []string{"cats", "rats", "bats"}, wantNodes: 8, wantEdges: 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := buildSnapshot(t, tt.words)

			if got := len(g.Nodes); got != tt.wantNodes {
				t.Errorf("nodes = %d, want %d", got, tt.wantNodes)
			}
			if got := len(g.Edges); got != tt.wantEdges {
				t.Errorf("edges = %d, want %d", got, tt.wantEdges)
			}

			if g.Root() != 0 {
				t.Errorf("Root() = %d, want 0", g.Root())
			}
			if g.Nodes[0].Label != LabelRoot || g.Nodes[0].Level != 0 {
				t.Errorf("first node = %+v, want ROOT at level 0", g.Nodes[0])
			}
			if len(tt.words) > 0 && g.End() < 0 {
				t.Error("snapshot has no END node")
			}
			// A wordless lattice never reaches END, so the export is
			// root-only and End reports absence.
			if len(tt.words) == 0 && g.End() != -1 {
				t.Errorf("End() = %d for an empty word set, want -1", g.End())
			}
		})
	}
}

func TestExportIDsDense(t *testing.T) {
	g := buildSnapshot(t, []string{"tap", "taps", "top", "tops"})

	for i, n := range g.Nodes {
		if n.ID != i {
			t.Errorf("node at position %d has id %d, want ids in discovery order", i, n.ID)
		}
	}

	seen := make(map[int]bool, len(g.Nodes))
	for _, n := range g.Nodes {
		seen[n.ID] = true
	}
	for _, e := range g.Edges {
		if !seen[e.Source] || !seen[e.Target] {
			t.Errorf("edge %d->%d references an unexported node", e.Source, e.Target)
		}
	}
}

func TestExportDeterministic(t *testing.T) {
	words := []string{"stop", "stops", "top", "tops", "drop"}
	a := buildSnapshot(t, words)
	b := buildSnapshot(t, words)

	if !reflect.DeepEqual(a, b) {
		t.Error("two exports of the same word set differ")
	}
}

func TestExportLevels(t *testing.T) {
	g := buildSnapshot(t, []string{"cats", "rats", "bats"})

	// Recompute minimum root distance over the exported edges and compare.
	out := make(map[int][]int)
	for _, e := range g.Edges {
		out[e.Source] = append(out[e.Source], e.Target)
	}

	dist := map[int]int{g.Root(): 0}
	queue := []int{g.Root()}
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		for _, next := range out[curr] {
			if _, seen := dist[next]; seen {
				continue
			}
			dist[next] = dist[curr] + 1
			queue = append(queue, next)
		}
	}

	for _, n := range g.Nodes {
		if n.Level != dist[n.ID] {
			t.Errorf("node %d (%q): level %d, want BFS distance %d", n.ID, n.Label, n.Level, dist[n.ID])
		}
	}
}

func TestNodeByID(t *testing.T) {
	g := buildSnapshot(t, []string{"ab"})

	n, ok := g.NodeByID(g.Root())
	if !ok || n.Label != LabelRoot {
		t.Errorf("NodeByID(root) = %+v, %v", n, ok)
	}
	if _, ok := g.NodeByID(999); ok {
		t.Error("NodeByID(999) found a node")
	}
}
