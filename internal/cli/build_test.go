package cli

import (
	"reflect"
	"testing"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		fallback []string
		want     []string
	}{
		{name: "Empty", input: "", fallback: []string{"dot"}, want: []string{"dot"}},
		{name: "Single", input: "svg", want: []string{"svg"}},
		{name: "Multiple", input: "dot,svg", want: []string{"dot", "svg"}},
		{name: "Whitespace", input: " dot , svg ", want: []string{"dot", "svg"}},
		{name: "TrailingComma", input: "dot,", want: []string{"dot"}},
		{name: "FlagOverridesFallback", input: "svg", fallback: []string{"dot"}, want: []string{"svg"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseFormats(tt.input, tt.fallback); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseFormats(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestReplaceExt(t *testing.T) {
	tests := []struct {
		path string
		ext  string
		want string
	}{
		{path: "lattice.json", ext: ".dot", want: "lattice.dot"},
		{path: "out/lattice.json", ext: ".svg", want: "out/lattice.svg"},
		{path: "noext", ext: ".dot", want: "noext.dot"},
	}

	for _, tt := range tests {
		if got := replaceExt(tt.path, tt.ext); got != tt.want {
			t.Errorf("replaceExt(%q, %q) = %q, want %q", tt.path, tt.ext, got, tt.want)
		}
	}
}
