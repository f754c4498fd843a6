package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk YAML configuration shape for simplefind.
// Pointer fields distinguish "unset" from zero values.
type FileConfig struct {
	CaseSensitive *bool   `yaml:"case_sensitive,omitempty"`
	Literal       *bool   `yaml:"literal,omitempty"`
	Threads       *int    `yaml:"threads,omitempty"`
	MaxBytes      *int64  `yaml:"max_bytes,omitempty"`
	NoColor       *bool   `yaml:"no_color,omitempty"`
	Format        *string `yaml:"format,omitempty"`
	Baseline      *string `yaml:"baseline,omitempty"`
}

// Formats accepted by the format key.
var Formats = []string{"table", "text", "json", "sarif"}

// ErrNotFound is returned when no config file exists at the searched locations.
var ErrNotFound = errors.New("no config file")

// LoadFile reads a YAML config file from the provided path.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadLocal searches for a project config file in dir.
// It supports .simplefind.yml/.yaml and simplefind.yml/.yaml.
func LoadLocal(dir string) (FileConfig, error) {
	for _, name := range []string{".simplefind.yml", ".simplefind.yaml", "simplefind.yml", "simplefind.yaml"} {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return FileConfig{}, ErrNotFound
}

// LoadGlobal loads the global config file from XDG base directory or ~/.config.
func LoadGlobal() (FileConfig, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			base = filepath.Join(home, ".config")
		}
	}
	if base == "" {
		return FileConfig{}, ErrNotFound
	}
	p := filepath.Join(base, "simplefind", "config.yml")
	if _, err := os.Stat(p); err == nil {
		return LoadFile(p)
	}
	return FileConfig{}, ErrNotFound
}

// Validate rejects values no command can honour.
func (fc FileConfig) Validate() error {
	if fc.Threads != nil && *fc.Threads < 0 {
		return fmt.Errorf("threads must be >= 0, got %d", *fc.Threads)
	}
	if fc.MaxBytes != nil && *fc.MaxBytes < 0 {
		return fmt.Errorf("max_bytes must be >= 0, got %d", *fc.MaxBytes)
	}
	if fc.Format != nil {
		for _, f := range Formats {
			if *fc.Format == f {
				return nil
			}
		}
		return fmt.Errorf("unknown format %q", *fc.Format)
	}
	return nil
}

// Marshal renders fc as YAML, as written by `config init`.
func (fc FileConfig) Marshal() ([]byte, error) {
	return yaml.Marshal(&fc)
}
