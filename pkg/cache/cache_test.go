package cache

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"
)

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	t.Run("Miss", func(t *testing.T) {
		_, hit, err := c.Get(ctx, "absent")
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if hit {
			t.Error("hit on absent key")
		}
	})

	t.Run("SetGet", func(t *testing.T) {
		want := []byte("snapshot-data")
		if err := c.Set(ctx, "key1", want, TTLSnapshot); err != nil {
			t.Fatalf("Set: %v", err)
		}
		got, hit, err := c.Get(ctx, "key1")
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if !hit {
			t.Fatal("miss after Set")
		}
		if !bytes.Equal(got, want) {
			t.Errorf("Get = %q, want %q", got, want)
		}
	})

	t.Run("NoTTLNeverExpires", func(t *testing.T) {
		if err := c.Set(ctx, "forever", []byte("x"), 0); err != nil {
			t.Fatalf("Set: %v", err)
		}
		if _, hit, _ := c.Get(ctx, "forever"); !hit {
			t.Error("entry with zero ttl expired")
		}
	})

	t.Run("Expires", func(t *testing.T) {
		if err := c.Set(ctx, "shortlived", []byte("x"), time.Nanosecond); err != nil {
			t.Fatalf("Set: %v", err)
		}
		time.Sleep(10 * time.Millisecond)
		if _, hit, _ := c.Get(ctx, "shortlived"); hit {
			t.Error("expired entry still hit")
		}
	})

	t.Run("Delete", func(t *testing.T) {
		if err := c.Set(ctx, "doomed", []byte("x"), 0); err != nil {
			t.Fatalf("Set: %v", err)
		}
		if err := c.Delete(ctx, "doomed"); err != nil {
			t.Fatalf("Delete: %v", err)
		}
		if _, hit, _ := c.Get(ctx, "doomed"); hit {
			t.Error("hit after Delete")
		}
	})

	t.Run("DeleteMissing", func(t *testing.T) {
		if err := c.Delete(ctx, "never-existed"); err != nil {
			t.Errorf("Delete(missing) = %v, want nil", err)
		}
	})

	t.Run("Overwrite", func(t *testing.T) {
		_ = c.Set(ctx, "k", []byte("old"), 0)
		_ = c.Set(ctx, "k", []byte("new"), 0)
		got, _, _ := c.Get(ctx, "k")
		if string(got) != "new" {
			t.Errorf("Get = %q, want \"new\"", got)
		}
	})
}

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()

	if err := c.Set(ctx, "k", []byte("v"), TTLSnapshot); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, hit, err := c.Get(ctx, "k"); err != nil || hit {
		t.Errorf("Get = hit %v, err %v; want miss, nil", hit, err)
	}
	if err := c.Delete(ctx, "k"); err != nil {
		t.Errorf("Delete: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	t.Run("Stable", func(t *testing.T) {
		a := k.SnapshotKey("hash1", SnapshotKeyOpts{})
		b := k.SnapshotKey("hash1", SnapshotKeyOpts{})
		if a != b {
			t.Errorf("same input produced different keys: %s vs %s", a, b)
		}
	})

	t.Run("Namespaced", func(t *testing.T) {
		if s := k.SnapshotKey("h", SnapshotKeyOpts{}); !strings.HasPrefix(s, "snapshot:") {
			t.Errorf("snapshot key %q missing namespace prefix", s)
		}
		if a := k.ArtifactKey("h", ArtifactKeyOpts{Format: "dot"}); !strings.HasPrefix(a, "artifact:") {
			t.Errorf("artifact key %q missing namespace prefix", a)
		}
	})

	t.Run("OptionsChangeKey", func(t *testing.T) {
		a := k.SnapshotKey("h", SnapshotKeyOpts{KeepCase: false})
		b := k.SnapshotKey("h", SnapshotKeyOpts{KeepCase: true})
		if a == b {
			t.Error("KeepCase did not change the snapshot key")
		}

		dot := k.ArtifactKey("h", ArtifactKeyOpts{Format: "dot"})
		svg := k.ArtifactKey("h", ArtifactKeyOpts{Format: "svg"})
		if dot == svg {
			t.Error("format did not change the artifact key")
		}
	})

	t.Run("HashChangesKey", func(t *testing.T) {
		a := k.SnapshotKey("h1", SnapshotKeyOpts{})
		b := k.SnapshotKey("h2", SnapshotKeyOpts{})
		if a == b {
			t.Error("different word hashes produced the same key")
		}
	})
}

func TestHashWords(t *testing.T) {
	a := HashWords([]string{"cat", "dog"})
	b := HashWords([]string{"cat", "dog"})
	c := HashWords([]string{"dog", "cat"})

	if a != b {
		t.Error("same word list hashed differently")
	}
	if a == c {
		t.Error("hash ignores word order")
	}
	if len(a) != 64 {
		t.Errorf("hash length = %d, want 64 hex chars", len(a))
	}
}
