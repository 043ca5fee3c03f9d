package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Maze.Width < 2 || cfg.Maze.Height < 2 {
		t.Errorf("default maze dims %dx%d", cfg.Maze.Width, cfg.Maze.Height)
	}
	if cfg.Maze.Generator == "" {
		t.Error("default generator empty")
	}
	if cfg.Player.Health <= 0 {
		t.Errorf("default health %d", cfg.Player.Health)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rogue.yaml")
	data := []byte("maze:\n  width: 7\n  height: 5\n  generator: binarytree\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Maze.Width != 7 || cfg.Maze.Height != 5 {
		t.Errorf("maze dims = %dx%d, want 7x5", cfg.Maze.Width, cfg.Maze.Height)
	}
	if cfg.Maze.Generator != "binarytree" {
		t.Errorf("generator = %q", cfg.Maze.Generator)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("missing explicit config path should fail loudly")
	}
}

func TestLoadRejectsTinyMaze(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rogue.yaml")
	data := []byte("maze:\n  width: 1\n  height: 1\n  generator: binarytree\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("1x1 maze should be rejected")
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultGameConfig()
	if err := ApplyPreset(&cfg, DifficultyFixed); err != nil {
		t.Fatalf("ApplyPreset(fixed): %v", err)
	}
	if cfg.Progression.Enabled {
		t.Error("fixed preset should disable progression")
	}
	if cfg.Progression.GrowthPerLevel() != 0 {
		t.Error("disabled progression should report zero growth")
	}

	cfg = DefaultGameConfig()
	if err := ApplyPreset(&cfg, DifficultyHard); err != nil {
		t.Fatalf("ApplyPreset(hard): %v", err)
	}
	if !cfg.Progression.Enabled || cfg.Progression.MaxWidth != 0 {
		t.Error("hard preset should grow without caps")
	}
	if cfg.Player.Health >= DefaultGameConfig().Player.Health {
		t.Error("hard preset should lower starting health")
	}
}

func TestApplyPresetUnknown(t *testing.T) {
	cfg := DefaultGameConfig()
	if err := ApplyPreset(&cfg, "hardd"); err == nil {
		t.Error("misspelled preset should be rejected")
	}
	if cfg != DefaultGameConfig() {
		t.Error("rejected preset should leave the config untouched")
	}
}
