package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFindSpecularTomlWalksParents(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "docs", "api")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	manifest := filepath.Join(root, "specular.toml")
	if err := os.WriteFile(manifest, []byte("[resolve]\n"), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	path, ok, err := findSpecularToml(nested)
	if err != nil {
		t.Fatalf("findSpecularToml: %v", err)
	}
	if !ok || path != manifest {
		t.Fatalf("found %q (ok=%v), want %q", path, ok, manifest)
	}
}

func TestLoadConfigValues(t *testing.T) {
	root := t.TempDir()
	data := `# project settings
[resolve]
internal-module = "hidden"
no-synthesis = true
`
	if err := os.WriteFile(filepath.Join(root, "specular.toml"), []byte(data), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	cfg, ok, err := loadConfig(root)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if !ok {
		t.Fatalf("manifest not found")
	}
	if cfg.Resolve.InternalModule != "hidden" || !cfg.Resolve.NoSynthesis {
		t.Fatalf("config = %+v", cfg)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, ok, err := loadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if ok {
		t.Fatalf("unexpected manifest found")
	}
	if cfg.Resolve.InternalModule != "" || cfg.Resolve.NoSynthesis {
		t.Fatalf("defaults = %+v, want zero values", cfg)
	}
}
