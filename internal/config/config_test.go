// FILE: internal/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "theme: green\nglyphs: ascii\nflip: true\nshow-turn: false\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Theme != "green" {
		t.Errorf("theme, want: %q got: %q", "green", cfg.Theme)
	}
	if cfg.Glyphs != "ascii" {
		t.Errorf("glyphs, want: %q got: %q", "ascii", cfg.Glyphs)
	}
	if !cfg.Flip {
		t.Error("flip not set")
	}
	if cfg.ShowTurnValue() {
		t.Error("show-turn: false not honored")
	}
}

func TestLoadFileMissing(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("missing file should not error, got %v", err)
	}
	if cfg != (Config{}) {
		t.Errorf("want zero config, got %+v", cfg)
	}
	if !cfg.ShowTurnValue() {
		t.Error("show-turn should default to on")
	}
}

func TestLoadFileInvalidTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("theme: neon\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadFile(path)
	if err == nil || !strings.Contains(err.Error(), "must be one of") {
		t.Errorf("want oneof violation, got %v", err)
	}
}

func TestLoadFileBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("theme: [unclosed\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadFile(path)
	if err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Errorf("want parse error, got %v", err)
	}
}

func TestValidateZero(t *testing.T) {
	if err := (Config{}).Validate(); err != nil {
		t.Errorf("zero config should validate, got %v", err)
	}
}
