package cli

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
formats = ["dot", "svg"]
max_results = 500
cache_dir = "/tmp/wl-cache"
keep_case = true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if !reflect.DeepEqual(cfg.Formats, []string{"dot", "svg"}) {
		t.Errorf("Formats = %v", cfg.Formats)
	}
	if cfg.MaxResults != 500 {
		t.Errorf("MaxResults = %d, want 500", cfg.MaxResults)
	}
	if cfg.CacheDir != "/tmp/wl-cache" {
		t.Errorf("CacheDir = %q", cfg.CacheDir)
	}
	if !cfg.KeepCase {
		t.Error("KeepCase = false, want true")
	}
}

func TestLoadConfigMissing(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatal("LoadConfig accepted a missing file")
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("formats = not-a-list"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("LoadConfig accepted invalid TOML")
	}
}

func TestCacheDir(t *testing.T) {
	c := &CLI{Config: Config{CacheDir: "/custom/cache"}}
	dir, err := c.cacheDir()
	if err != nil {
		t.Fatalf("cacheDir: %v", err)
	}
	if dir != "/custom/cache" {
		t.Errorf("cacheDir = %q, want configured override", dir)
	}

	c = &CLI{}
	dir, err = c.cacheDir()
	if err != nil {
		t.Fatalf("cacheDir: %v", err)
	}
	if filepath.Base(dir) != appName {
		t.Errorf("default cacheDir = %q, want a %s directory", dir, appName)
	}
}
