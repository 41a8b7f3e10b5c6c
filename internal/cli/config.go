package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds user defaults loaded from the TOML config file. Every field
// can be overridden per invocation by a flag.
type Config struct {
	// Formats are the artifact formats rendered by default ("dot", "svg").
	Formats []string `toml:"formats"`

	// MaxResults caps traversal query output. Zero uses the library default.
	MaxResults int `toml:"max_results"`

	// CacheDir overrides the result cache location (~/.cache/wordlattice).
	CacheDir string `toml:"cache_dir"`

	// KeepCase disables input lowercasing.
	KeepCase bool `toml:"keep_case"`
}

// ConfigPath returns the config file location:
// $XDG_CONFIG_HOME/wordlattice/config.toml (or the OS equivalent).
func ConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appName, "config.toml"), nil
}

// LoadConfig reads and decodes the TOML config file at path.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfigOrDefault loads the user's config file, returning the zero
// Config when the file does not exist or cannot be parsed. A broken config
// never blocks the CLI; flags and built-in defaults still work.
func LoadConfigOrDefault() Config {
	path, err := ConfigPath()
	if err != nil {
		return Config{}
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		return Config{}
	}
	return cfg
}
