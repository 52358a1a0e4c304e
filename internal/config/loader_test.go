package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromFiles_MergeOK(t *testing.T) {
	dir := t.TempDir()
	f1 := filepath.Join(dir, "a.yaml")
	f2 := filepath.Join(dir, "b.yaml")
	os.WriteFile(f1, []byte(`
defaults:
  file_pattern: "*.go"
  directory: "/src"
excludes:
  - ".git"
`), 0o644)
	os.WriteFile(f2, []byte(`
defaults:
  file_pattern: "*.py"
output:
  color: never
excludes:
  - "vendor"
`), 0o644)
	cfg, err := LoadFromFiles([]string{f2, f1})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Defaults.FilePattern != "*.py" {
		t.Fatalf("later file should win, got %q", cfg.Defaults.FilePattern)
	}
	if cfg.Defaults.Directory != "/src" {
		t.Fatalf("earlier scalar should survive, got %q", cfg.Defaults.Directory)
	}
	if cfg.Output.Color != "never" {
		t.Fatalf("want color never, got %q", cfg.Output.Color)
	}
	if len(cfg.Excludes) != 2 {
		t.Fatalf("excludes should accumulate, got %v", cfg.Excludes)
	}
	if Get().Defaults.FilePattern != "*.py" {
		t.Fatalf("Get() should return the loaded config")
	}
}

func TestLoadFromFiles_BadYAML(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "a.yaml")
	os.WriteFile(f, []byte("defaults: [not, a, mapping"), 0o644)
	if _, err := LoadFromFiles([]string{f}); err == nil {
		t.Fatalf("want error for malformed yaml")
	}
}

func TestLoadFromFiles_IgnoresNonYAML(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "a.yaml")
	os.WriteFile(f, []byte("defaults:\n  directory: /a\n"), 0o644)
	cfg, err := LoadFromFiles([]string{f, filepath.Join(dir, "notes.txt")})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Defaults.Directory != "/a" {
		t.Fatalf("yaml file not loaded, got %+v", cfg)
	}
}
