package config

import (
	"os"
	"path/filepath"
	"testing"

	"nibbled/internal/frame"
)

func TestDefaultPalette(t *testing.T) {
	p, err := DefaultConfig().Palette()
	if err != nil {
		t.Fatal(err)
	}
	if p.Foreground != frame.ColorWhite {
		t.Errorf("expected white foreground, got %+v", p.Foreground)
	}
	if p.Background != frame.ColorBlack {
		t.Errorf("expected black background, got %+v", p.Background)
	}
}

func TestLoadFileMissingFallsBackToDefaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Editor.TickMS != DefaultConfig().Editor.TickMS {
		t.Error("missing config should yield defaults")
	}
}

func TestLoadFileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nibbled.toml")
	content := "[editor]\ntick_ms = 33\n\n[theme]\nbackground = \"#101010\"\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Editor.TickMS != 33 {
		t.Errorf("expected tick_ms 33, got %d", cfg.Editor.TickMS)
	}
	if cfg.Theme.Background != "#101010" {
		t.Errorf("expected overridden background, got %s", cfg.Theme.Background)
	}
	// Untouched fields keep their default.
	if cfg.Theme.Foreground != "#FFFFFF" {
		t.Errorf("expected default foreground, got %s", cfg.Theme.Foreground)
	}
}

func TestPaletteBadColor(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Theme.Address = "chartreuse"
	if _, err := cfg.Palette(); err == nil {
		t.Error("expected an error for an unparseable color")
	}
}
