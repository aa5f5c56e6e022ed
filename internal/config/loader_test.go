package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadQubeEmbeddedDefault(t *testing.T) {
	cfg, err := LoadQube("")
	if err != nil {
		t.Fatalf("LoadQube(\"\") failed: %v", err)
	}

	if cfg.Game.WinTile != 2048 {
		t.Errorf("WinTile = %d, want 2048", cfg.Game.WinTile)
	}
	if cfg.Game.Spawn4 != 0.10 {
		t.Errorf("Spawn4 = %f, want 0.10", cfg.Game.Spawn4)
	}
	if cfg.Game.Mapper != MapperStatic {
		t.Errorf("Mapper = %q, want %q", cfg.Game.Mapper, MapperStatic)
	}
}

func TestLoadQubeCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "qube.yaml")

	data := []byte("game:\n  win_tile: 4096\n  spawn4: 0.25\n  mapper: oriented\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("cannot write test config: %v", err)
	}

	cfg, err := LoadQube(path)
	if err != nil {
		t.Fatalf("LoadQube(%q) failed: %v", path, err)
	}

	if cfg.Game.WinTile != 4096 {
		t.Errorf("WinTile = %d, want 4096", cfg.Game.WinTile)
	}
	if cfg.Game.Spawn4 != 0.25 {
		t.Errorf("Spawn4 = %f, want 0.25", cfg.Game.Spawn4)
	}
	if cfg.Game.Mapper != MapperOriented {
		t.Errorf("Mapper = %q, want %q", cfg.Game.Mapper, MapperOriented)
	}
}

func TestLoadQubeMissingCustomPath(t *testing.T) {
	_, err := LoadQube(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("LoadQube with missing custom path should fail")
	}
}

func TestNormalizePartialConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "qube.yaml")

	// Only the win tile is given; the rest should fall back to defaults.
	if err := os.WriteFile(path, []byte("game:\n  win_tile: 1024\n"), 0o600); err != nil {
		t.Fatalf("cannot write test config: %v", err)
	}

	cfg, err := LoadQube(path)
	if err != nil {
		t.Fatalf("LoadQube(%q) failed: %v", path, err)
	}

	if cfg.Game.WinTile != 1024 {
		t.Errorf("WinTile = %d, want 1024", cfg.Game.WinTile)
	}
	if cfg.Game.Spawn4 != 0.10 {
		t.Errorf("Spawn4 = %f, want default 0.10", cfg.Game.Spawn4)
	}
	if cfg.Game.Mapper != MapperStatic {
		t.Errorf("Mapper = %q, want default %q", cfg.Game.Mapper, MapperStatic)
	}
}
