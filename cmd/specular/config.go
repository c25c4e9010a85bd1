package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type resolveConfig struct {
	InternalModule string `toml:"internal-module"`
	NoSynthesis    bool   `toml:"no-synthesis"`
}

type fileConfig struct {
	Resolve resolveConfig `toml:"resolve"`
}

// findSpecularToml walks from startDir toward the filesystem root looking
// for a specular.toml.
func findSpecularToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "specular.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// loadConfig reads the nearest specular.toml. A missing file is not an
// error; every setting has a default.
func loadConfig(startDir string) (fileConfig, bool, error) {
	path, ok, err := findSpecularToml(startDir)
	if err != nil || !ok {
		return fileConfig{}, false, err
	}
	var cfg fileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return fileConfig{}, true, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	return cfg, true, nil
}
