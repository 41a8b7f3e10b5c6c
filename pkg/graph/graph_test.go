package graph

import (
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestWriteReadRoundTrip(t *testing.T) {
	g := buildSnapshot(t, []string{"cats", "rats", "bats"})

	path := filepath.Join(t.TempDir(), "lattice.json")
	if err := WriteGraphFile(g, path); err != nil {
		t.Fatalf("WriteGraphFile: %v", err)
	}

	got, err := ReadGraphFile(path)
	if err != nil {
		t.Fatalf("ReadGraphFile: %v", err)
	}
	if !reflect.DeepEqual(got, g) {
		t.Error("round-tripped snapshot differs from the original")
	}
}

func TestMarshalGraph(t *testing.T) {
	g := buildSnapshot(t, []string{"ab"})

	data, err := MarshalGraph(g)
	if err != nil {
		t.Fatalf("MarshalGraph: %v", err)
	}
	for _, field := range []string{`"nodes"`, `"edges"`, `"id"`, `"label"`, `"level"`, `"source"`, `"target"`} {
		if !strings.Contains(string(data), field) {
			t.Errorf("serialized snapshot missing %s", field)
		}
	}
}

func TestReadGraph(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{
			name: "Valid",
			input: `{
				"nodes": [
					{"id": 0, "label": "ROOT", "level": 0},
					{"id": 1, "label": "a", "level": 1},
					{"id": 2, "label": "END", "level": 2}
				],
				"edges": [
					{"source": 0, "target": 1},
					{"source": 1, "target": 2}
				]
			}`,
		},
		{
			name: "DuplicateNodeID",
			input: `{
				"nodes": [
					{"id": 0, "label": "ROOT", "level": 0},
					{"id": 0, "label": "a", "level": 1}
				],
				"edges": []
			}`,
			wantErr: ErrDuplicateNodeID,
		},
		{
			name: "NegativeNodeID",
			input: `{
				"nodes": [{"id": -1, "label": "ROOT", "level": 0}],
				"edges": []
			}`,
			wantErr: ErrInvalidNodeID,
		},
		{
			name: "DanglingEdge",
			input: `{
				"nodes": [{"id": 0, "label": "ROOT", "level": 0}],
				"edges": [{"source": 0, "target": 7}]
			}`,
			wantErr: ErrInvalidEdgeEndpoint,
		},
		{
			name: "MissingRoot",
			input: `{
				"nodes": [{"id": 0, "label": "a", "level": 0}],
				"edges": []
			}`,
			wantErr: ErrMissingRoot,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := ReadGraph(strings.NewReader(tt.input))
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("ReadGraph: %v", err)
				}
				if g.Root() != 0 {
					t.Errorf("Root() = %d, want 0", g.Root())
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ReadGraph = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestReadGraphInvalidJSON(t *testing.T) {
	if _, err := ReadGraph(strings.NewReader("{not json")); err == nil {
		t.Fatal("ReadGraph accepted malformed JSON")
	}
}

func TestReadGraphFileMissing(t *testing.T) {
	if _, err := ReadGraphFile(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("ReadGraphFile accepted a missing file")
	}
}
