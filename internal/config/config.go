// Package config reads the optional fieldgen.toml project file. Values from
// the file sit between the built-in defaults and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/creasty/defaults"
)

// FileName is the project file looked up from the package directory.
const FileName = "fieldgen.toml"

// Config controls a generation run.
type Config struct {
	// Output is the generated file. A relative path from the project file
	// is taken relative to the package directory.
	Output string `toml:"output" default:"fields_gen.go"`
	// Package overrides the package clause of the generated file.
	Package string `toml:"package"`
	// Types names the types to generate. Empty selects every type
	// carrying a //fields: directive.
	Types   []string `toml:"types"`
	NoColor bool     `toml:"no_color"`
}

// Default returns a Config with only the built-in defaults set.
func Default() *Config {
	cfg := &Config{}
	if err := defaults.Set(cfg); err != nil {
		panic(fmt.Sprintf("config defaults: %v", err))
	}
	return cfg
}

// Load decodes the project file at path over the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	return cfg, nil
}

// Find looks for FileName in dir and its parents, stopping at the module
// root, the first directory holding a go.mod.
func Find(dir string) (string, bool, error) {
	if dir == "" {
		dir = "."
	}
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			break
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// ForPackage returns the configuration for the package in dir: the file at
// path when given, otherwise the nearest project file, otherwise the
// defaults.
func ForPackage(dir, path string) (*Config, error) {
	if path == "" {
		found, ok, err := Find(dir)
		if err != nil {
			return nil, err
		}
		if !ok {
			return Default(), nil
		}
		path = found
	}
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// OutputPath resolves Output against the package directory.
func (c *Config) OutputPath(dir string) string {
	if filepath.IsAbs(c.Output) {
		return c.Output
	}
	return filepath.Join(dir, c.Output)
}
