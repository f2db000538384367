package config

import (
	"os"
	"path/filepath"
	"testing"

	"shinobi/internal/game"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LogLevel != "warn" {
		t.Fatalf("log level=%q, want warn", cfg.LogLevel)
	}
	if cfg.DBPath != "" || len(cfg.Missions) != 0 {
		t.Fatalf("expected empty defaults, got %+v", cfg)
	}
}

func TestLoadMalformedFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte(":\n  - ["), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestMissionCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shinobi.yaml")
	body := `
db_path: /tmp/custom.db
log_level: debug
missions:
  - id: run
    title: Morning Run
    category: Physical Training
    difficulty: easy
    rewards:
      stamina: 8
      Strength: 4
    experience: 12
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DBPath != "/tmp/custom.db" {
		t.Fatalf("db_path=%q", cfg.DBPath)
	}

	missions, err := cfg.MissionCatalog()
	if err != nil {
		t.Fatalf("MissionCatalog: %v", err)
	}
	if len(missions) != 1 {
		t.Fatalf("missions=%d, want 1", len(missions))
	}
	m := missions[0]
	if m.Category != game.CategoryPhysical || m.Difficulty != game.DifficultyEasy {
		t.Fatalf("parsed enums wrong: %+v", m)
	}
	// Rewards come back in stat display order regardless of YAML order.
	if len(m.StatRewards) != 2 || m.StatRewards[0].Stat != game.StatStrength || m.StatRewards[1].Stat != game.StatStamina {
		t.Fatalf("rewards=%+v", m.StatRewards)
	}
}

func TestMissionCatalogRejectsBadStat(t *testing.T) {
	cfg := Config{Missions: []MissionDef{{
		ID:         "x",
		Title:      "X",
		Category:   "Physical Training",
		Difficulty: "easy",
		Rewards:    map[string]int{"luck": 5},
		Experience: 10,
	}}}
	if _, err := cfg.MissionCatalog(); err == nil {
		t.Fatalf("expected error for unknown stat name")
	}
}

func TestMissionCatalogEmptyIsNil(t *testing.T) {
	missions, err := Default().MissionCatalog()
	if err != nil {
		t.Fatalf("MissionCatalog: %v", err)
	}
	if missions != nil {
		t.Fatalf("expected nil catalog for empty config")
	}
}
