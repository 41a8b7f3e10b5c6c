package pipeline

import (
	"context"
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/wordlattice/wordlattice/pkg/cache"
	"github.com/wordlattice/wordlattice/pkg/errors"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

func newTestRunner(c cache.Cache) *Runner {
	return NewRunner(c, nil, quietLogger())
}

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{format: "dot"},
		{format: "svg"},
		{format: "png", wantErr: true},
		{format: "", wantErr: true},
		{format: "DOT", wantErr: true},
	}

	for _, tt := range tests {
		t.Run("Format_"+tt.format, func(t *testing.T) {
			err := ValidateFormat(tt.format)
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeMalformedInput) {
					t.Errorf("ValidateFormat(%q) = %v, want MALFORMED_INPUT", tt.format, err)
				}
				return
			}
			if err != nil {
				t.Errorf("ValidateFormat(%q) = %v", tt.format, err)
			}
		})
	}
}

func TestOptionsValidateAndSetDefaults(t *testing.T) {
	t.Run("DefaultsApplied", func(t *testing.T) {
		opts := Options{}
		if err := opts.ValidateAndSetDefaults(); err != nil {
			t.Fatalf("ValidateAndSetDefaults: %v", err)
		}
		if opts.Logger == nil {
			t.Error("Logger not defaulted")
		}
	})

	t.Run("InvalidFormat", func(t *testing.T) {
		opts := Options{Formats: []string{"png"}}
		if err := opts.ValidateAndSetDefaults(); err == nil {
			t.Error("accepted invalid format")
		}
	})

	t.Run("Idempotent", func(t *testing.T) {
		opts := Options{}
		if err := opts.ValidateAndSetDefaults(); err != nil {
			t.Fatal(err)
		}
		logger := opts.Logger
		if err := opts.ValidateAndSetDefaults(); err != nil {
			t.Fatal(err)
		}
		if opts.Logger != logger {
			t.Error("second call replaced the logger")
		}
	})
}

func TestExecute(t *testing.T) {
	runner := newTestRunner(nil)
	words := []string{"cats", "rats", "bats"}

	result, err := runner.Execute(context.Background(), words, Options{})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if result.Stats.WordCount != 3 {
		t.Errorf("WordCount = %d, want 3", result.Stats.WordCount)
	}
	if result.Stats.NodeCount != 8 {
		t.Errorf("NodeCount = %d, want 8", result.Stats.NodeCount)
	}
	if result.Stats.EdgeCount != 9 {
		t.Errorf("EdgeCount = %d, want 9", result.Stats.EdgeCount)
	}
	if result.Stats.MergedNodes != 6 {
		t.Errorf("MergedNodes = %d, want 6", result.Stats.MergedNodes)
	}
	if result.SnapshotHash == "" {
		t.Error("SnapshotHash is empty")
	}
	if result.CacheInfo.SnapshotHit {
		t.Error("SnapshotHit = true on a null cache")
	}
	if result.Graph.Root() != 0 {
		t.Errorf("Root() = %d, want 0", result.Graph.Root())
	}
	if len(result.Artifacts) != 0 {
		t.Errorf("Artifacts = %v, want none without formats", result.Artifacts)
	}
}

func TestExecuteMalformedWord(t *testing.T) {
	runner := newTestRunner(nil)

	_, err := runner.Execute(context.Background(), []string{"two words"}, Options{})
	if !errors.Is(err, errors.ErrCodeMalformedInput) {
		t.Fatalf("Execute = %v, want MALFORMED_INPUT", err)
	}
}

func TestExecuteDOTArtifact(t *testing.T) {
	runner := newTestRunner(nil)

	result, err := runner.Execute(context.Background(), []string{"cat", "cap"}, Options{Formats: []string{FormatDOT}})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	dot, ok := result.Artifacts[FormatDOT]
	if !ok {
		t.Fatal("no dot artifact produced")
	}
	if !strings.Contains(string(dot), "digraph lattice") {
		t.Errorf("dot artifact does not look like DOT: %.60s", dot)
	}
}

func TestExecuteSnapshotCaching(t *testing.T) {
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	runner := newTestRunner(fc)
	ctx := context.Background()
	words := []string{"tap", "taps", "top", "tops"}

	first, err := runner.Execute(ctx, words, Options{})
	if err != nil {
		t.Fatalf("first Execute: %v", err)
	}
	if first.CacheInfo.SnapshotHit {
		t.Error("first run hit the cache")
	}

	second, err := runner.Execute(ctx, words, Options{})
	if err != nil {
		t.Fatalf("second Execute: %v", err)
	}
	if !second.CacheInfo.SnapshotHit {
		t.Error("second run missed the cache")
	}
	if !reflect.DeepEqual(first.Graph, second.Graph) {
		t.Error("cached snapshot differs from the built one")
	}

	refreshed, err := runner.Execute(ctx, words, Options{Refresh: true})
	if err != nil {
		t.Fatalf("refresh Execute: %v", err)
	}
	if refreshed.CacheInfo.SnapshotHit {
		t.Error("Refresh still hit the cache")
	}
}

func TestConstructStats(t *testing.T) {
	runner := newTestRunner(nil)

	var stats Stats
	opts := Options{Logger: quietLogger()}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	snapshot, err := runner.Construct([]string{"cat", "bat"}, opts, &stats)
	if err != nil {
		t.Fatalf("Construct: %v", err)
	}

	if len(snapshot.Nodes) != 6 {
		t.Errorf("nodes = %d, want 6", len(snapshot.Nodes))
	}
	if stats.MergedNodes != 2 {
		t.Errorf("MergedNodes = %d, want 2", stats.MergedNodes)
	}
	if stats.BuildTime <= 0 || stats.MinimizeTime <= 0 || stats.VerifyTime <= 0 {
		t.Error("stage timings not recorded")
	}
}

func TestNewRunnerDefaults(t *testing.T) {
	runner := NewRunner(nil, nil, nil)
	if runner.Cache == nil || runner.Keyer == nil || runner.Logger == nil {
		t.Error("NewRunner left a nil collaborator")
	}
	if err := runner.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}
