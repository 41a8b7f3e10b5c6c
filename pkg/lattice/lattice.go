package lattice

import (
	"errors"
	"fmt"
	"unicode"
)

var (
	// ErrEmptyWord is returned by [Lattice.Insert] when the word has no
	// characters. The lattice encodes non-empty words only.
	ErrEmptyWord = errors.New("word must not be empty")

	// ErrReservedRune is returned by [Lattice.Insert] when a word contains a
	// whitespace or control rune. Those runes are reserved: they collide with
	// the one-word-per-record input format and with the ROOT/END sentinel
	// labels of the exported graph.
	ErrReservedRune = errors.New("word contains a reserved rune")

	// ErrUnknownNode is returned by accessors when the node id does not exist
	// in the lattice.
	ErrUnknownNode = errors.New("unknown node")
)

// Sentinel labels for the two non-character nodes. Every other node is
// labeled with exactly one character.
const (
	LabelRoot = "ROOT"
	LabelEnd  = "END"
)

// Reserved ids for the two sentinel nodes. Character nodes start at 2.
const (
	rootID = 0
	endID  = 1
)

// node is a vertex in the lattice arena. Nodes are addressed by dense
// integer ids so that shared suffixes are plain fan-in: multiple parents
// holding the same child id, no shared-ownership semantics.
type node struct {
	id       int
	label    string
	depth    int            // trie depth at creation; minimization order
	children map[string]int // child label -> child id
}

// Lattice is a trie over a word list whose common suffixes can be merged
// into shared subgraphs ([Lattice.Minimize]), yielding a minimal acyclic
// word acceptor. It has exactly one ROOT node and one shared END node; a
// root-to-END path spells a complete word.
//
// The zero value is not usable - use [New]. A Lattice is not safe for
// concurrent use; the exported snapshot (pkg/graph) is.
type Lattice struct {
	nodes   map[int]*node
	parents map[int][]int // child id -> parent ids, one entry per edge
	nextID  int
	words   int
}

// New creates an empty lattice containing only the ROOT and END nodes.
func New() *Lattice {
	l := &Lattice{
		nodes:   make(map[int]*node),
		parents: make(map[int][]int),
		nextID:  endID + 1,
	}
	l.nodes[rootID] = &node{id: rootID, label: LabelRoot, children: map[string]int{}}
	l.nodes[endID] = &node{id: endID, label: LabelEnd, children: map[string]int{}}
	return l
}

// ValidateWord reports whether a word may be inserted. It returns
// ErrEmptyWord for the empty string and ErrReservedRune (wrapped with the
// offending rune) for whitespace or control characters.
func ValidateWord(word string) error {
	if word == "" {
		return ErrEmptyWord
	}
	for _, r := range word {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return fmt.Errorf("%w: %q", ErrReservedRune, r)
		}
	}
	return nil
}

// Insert adds a word as a character path from the root, creating nodes only
// where the path diverges, and links the final node to the shared END node.
// Inserting the same word twice is a no-op. Insertion order does not affect
// the resulting trie shape.
//
// Insert must not be called after [Lattice.Minimize]: the minimized graph
// does not support incremental updates.
func (l *Lattice) Insert(word string) error {
	if err := ValidateWord(word); err != nil {
		return err
	}

	curr := l.nodes[rootID]
	depth := 0
	for _, r := range word {
		depth++
		label := string(r)
		childID, ok := curr.children[label]
		if !ok {
			childID = l.newNode(label, depth)
			l.addEdge(curr.id, label, childID)
		}
		curr = l.nodes[childID]
	}

	if _, ok := curr.children[LabelEnd]; !ok {
		l.addEdge(curr.id, LabelEnd, endID)
		l.words++
	}
	return nil
}

func (l *Lattice) newNode(label string, depth int) int {
	id := l.nextID
	l.nextID++
	l.nodes[id] = &node{id: id, label: label, depth: depth, children: map[string]int{}}
	return id
}

func (l *Lattice) addEdge(from int, label string, to int) {
	l.nodes[from].children[label] = to
	l.parents[to] = append(l.parents[to], from)
}

// Root returns the id of the ROOT node.
func (l *Lattice) Root() int { return rootID }

// End returns the id of the shared END node.
func (l *Lattice) End() int { return endID }

// Label returns the label of a node: a single character, or one of the
// ROOT/END sentinels. Returns ErrUnknownNode for ids not in the lattice.
func (l *Lattice) Label(id int) (string, error) {
	n, ok := l.nodes[id]
	if !ok {
		return "", fmt.Errorf("node %d: %w", id, ErrUnknownNode)
	}
	return n.label, nil
}

// Children returns the outgoing edges of a node as a label -> child id map.
// The returned map is a copy; modifying it does not affect the lattice.
func (l *Lattice) Children(id int) map[string]int {
	n, ok := l.nodes[id]
	if !ok {
		return nil
	}
	out := make(map[string]int, len(n.children))
	for label, c := range n.children {
		out[label] = c
	}
	return out
}

// IsTerminal reports whether a root-to-id path spells a complete word,
// i.e. whether the node links to END.
func (l *Lattice) IsTerminal(id int) bool {
	n, ok := l.nodes[id]
	if !ok {
		return false
	}
	_, terminal := n.children[LabelEnd]
	return terminal
}

// NodeCount returns the number of nodes, including the two sentinels.
func (l *Lattice) NodeCount() int { return len(l.nodes) }

// EdgeCount returns the number of directed edges.
func (l *Lattice) EdgeCount() int {
	count := 0
	for _, n := range l.nodes {
		count += len(n.children)
	}
	return count
}

// WordCount returns the number of distinct words inserted.
func (l *Lattice) WordCount() int { return l.words }
