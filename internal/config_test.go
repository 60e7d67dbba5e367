package internal

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Prompt != "> " || !cfg.Color || cfg.Debug {
		t.Errorf("unexpected defaults %+v", cfg)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("a missing file should not be an error: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lako.toml")
	contents := "prompt = \"lako> \"\ncolor = false\ndebug = true\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Prompt != "lako> " || cfg.Color || !cfg.Debug {
		t.Errorf("unexpected config %+v", cfg)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lako.toml")
	if err := os.WriteFile(path, []byte("prompt = [not toml"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); !IsIOError(err) {
		t.Errorf("expected a wrapped I/O error, got %v", err)
	}
}
