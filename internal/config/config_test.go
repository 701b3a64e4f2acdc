package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadBlastEmbeddedMatchesDefault(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadBlast("")
	if err != nil {
		t.Fatalf("LoadBlast() failed: %v", err)
	}
	if cfg != DefaultBlastConfig() {
		t.Errorf("embedded config %+v differs from DefaultBlastConfig() %+v", cfg, DefaultBlastConfig())
	}
}

func TestLoadBlastCustomPathOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mine.yaml")
	writeFile(t, path, "timing:\n  ticks_per_fall_phase: 9\nrender:\n  cell_width: 2\n")

	cfg, err := LoadBlast(path)
	if err != nil {
		t.Fatalf("LoadBlast() failed: %v", err)
	}
	if cfg.Timing.TicksPerFallPhase != 9 {
		t.Errorf("TicksPerFallPhase = %d, want 9", cfg.Timing.TicksPerFallPhase)
	}
	if cfg.Render.CellWidth != 2 {
		t.Errorf("CellWidth = %d, want 2", cfg.Render.CellWidth)
	}
	if cfg.Timing.TicksPerFillPhase != DefaultBlastConfig().Timing.TicksPerFillPhase {
		t.Error("unset fields should keep their defaults")
	}
}

func TestLoadBlastCustomPathErrors(t *testing.T) {
	if _, err := LoadBlast(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	writeFile(t, bad, "timing: [not, a, map\n")
	if _, err := LoadBlast(bad); err == nil {
		t.Error("malformed custom config should fail")
	}
}

func TestLoadBlastSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	writeFile(t, filepath.Join(work, "configs", "blast.yaml"), "gameplay:\n  queue_limit: 7\n")
	cfg, err := LoadBlast("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Gameplay.QueueLimit != 7 {
		t.Errorf("local config not used, QueueLimit = %d", cfg.Gameplay.QueueLimit)
	}

	writeFile(t, filepath.Join(home, ".blast", "configs", "blast.yaml"), "gameplay:\n  queue_limit: 2\n")
	cfg, err = LoadBlast("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Gameplay.QueueLimit != 2 {
		t.Errorf("user config should win over local, QueueLimit = %d", cfg.Gameplay.QueueLimit)
	}
}

func TestNormalize(t *testing.T) {
	cfg := BlastConfig{
		Timing: BlastTiming{TicksPerProjectileStep: -1, TicksPerFallPhase: 0},
		Render: BlastRender{CellWidth: 12},
	}
	cfg.Normalize()
	def := DefaultBlastConfig()

	if cfg.Timing.TicksPerProjectileStep != def.Timing.TicksPerProjectileStep {
		t.Errorf("negative ticks should reset, got %d", cfg.Timing.TicksPerProjectileStep)
	}
	if cfg.Timing.TicksPerFallPhase != 0 {
		t.Error("zero ticks is a valid instant phase")
	}
	if cfg.Render.CellWidth != def.Render.CellWidth {
		t.Errorf("CellWidth = %d, want %d", cfg.Render.CellWidth, def.Render.CellWidth)
	}
	if cfg.Timing.MaxTicksPerAction <= 0 || cfg.Gameplay.QueueLimit <= 0 {
		t.Error("limits must be positive after Normalize")
	}
	if cfg.Render.BlockGlyph == "" || cfg.Render.ProjectileGlyph == "" {
		t.Error("glyphs must be set after Normalize")
	}
}
