package graph

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

var (
	// ErrDuplicateNodeID is returned by [ReadGraph] when two nodes in a
	// snapshot carry the same id. Node ids must be unique.
	ErrDuplicateNodeID = errors.New("duplicate node ID")

	// ErrInvalidNodeID is returned by [ReadGraph] when a node id is negative.
	ErrInvalidNodeID = errors.New("node ID must be non-negative")

	// ErrInvalidEdgeEndpoint is returned by [ReadGraph] when an edge
	// references an id not present in the node collection. This indicates
	// snapshot corruption.
	ErrInvalidEdgeEndpoint = errors.New("invalid edge endpoint")

	// ErrMissingRoot is returned by [ReadGraph] when no node carries the
	// ROOT label. Every snapshot has exactly one root.
	ErrMissingRoot = errors.New("snapshot has no ROOT node")
)

// MarshalGraph converts a snapshot to indented JSON bytes.
func MarshalGraph(g Graph) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteGraph(g, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteGraph writes a snapshot as JSON to w.
// The output can be re-imported with [ReadGraph] for round-trip processing.
func WriteGraph(g Graph, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(g); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteGraphFile writes a snapshot to a JSON file at path.
func WriteGraphFile(g Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteGraph(g, f)
}

// ReadGraph decodes a JSON snapshot from r and validates it: node ids must
// be unique and non-negative, every edge endpoint must reference a node in
// the collection, and a ROOT node must exist. Errors are wrapped with the
// offending node or edge for context.
func ReadGraph(r io.Reader) (Graph, error) {
	var g Graph
	if err := json.NewDecoder(r).Decode(&g); err != nil {
		return Graph{}, fmt.Errorf("decode: %w", err)
	}

	seen := make(map[int]bool, len(g.Nodes))
	for _, n := range g.Nodes {
		if n.ID < 0 {
			return Graph{}, fmt.Errorf("node %d: %w", n.ID, ErrInvalidNodeID)
		}
		if seen[n.ID] {
			return Graph{}, fmt.Errorf("node %d: %w", n.ID, ErrDuplicateNodeID)
		}
		seen[n.ID] = true
	}
	for _, e := range g.Edges {
		if !seen[e.Source] || !seen[e.Target] {
			return Graph{}, fmt.Errorf("edge %d->%d: %w", e.Source, e.Target, ErrInvalidEdgeEndpoint)
		}
	}
	if g.Root() < 0 {
		return Graph{}, ErrMissingRoot
	}
	return g, nil
}

// ReadGraphFile reads a JSON file at path and returns the validated snapshot.
func ReadGraphFile(path string) (Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return Graph{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadGraph(f)
}
