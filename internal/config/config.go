package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"shinobi/internal/game"
)

// Config is the optional ~/.shinobi.yaml file. Everything has a working
// default; a missing file is not an error.
type Config struct {
	DBPath   string       `yaml:"db_path"`
	LogLevel string       `yaml:"log_level"`
	Missions []MissionDef `yaml:"missions"`
}

// MissionDef is a custom catalog entry. Stat names, category, and difficulty
// are validated when the catalog is built, not when the file is read.
type MissionDef struct {
	ID         string         `yaml:"id"`
	Title      string         `yaml:"title"`
	Category   string         `yaml:"category"`
	Difficulty string         `yaml:"difficulty"`
	Rewards    map[string]int `yaml:"rewards"`
	Experience int            `yaml:"experience"`
}

func Default() Config {
	return Config{LogLevel: "warn"}
}

// DefaultPath returns ~/.shinobi.yaml.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(homeDir, ".shinobi.yaml"), nil
}

// Load reads the config at path. A missing file returns defaults; a file
// that exists but fails to parse is an error, since silently ignoring an
// edited config is worse than failing.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "warn"
	}
	return cfg, nil
}

// MissionCatalog builds the mission list from the config, or nil when no
// custom missions are defined (callers then use the built-in catalog).
func (c Config) MissionCatalog() ([]game.Mission, error) {
	if len(c.Missions) == 0 {
		return nil, nil
	}
	out := make([]game.Mission, 0, len(c.Missions))
	for _, def := range c.Missions {
		cat, err := game.ParseCategory(def.Category)
		if err != nil {
			return nil, fmt.Errorf("mission %s: %w", def.ID, err)
		}
		diff, err := game.ParseDifficulty(def.Difficulty)
		if err != nil {
			return nil, fmt.Errorf("mission %s: %w", def.ID, err)
		}
		m := game.Mission{
			ID:               def.ID,
			Title:            def.Title,
			Category:         cat,
			Difficulty:       diff,
			ExperienceReward: def.Experience,
		}
		rewards := make(map[game.Stat]int, len(def.Rewards))
		for name, amount := range def.Rewards {
			stat, err := game.ParseStat(name)
			if err != nil {
				return nil, fmt.Errorf("mission %s: %w", def.ID, err)
			}
			rewards[stat] = amount
		}
		// Deterministic reward order for display.
		for _, s := range game.Stats {
			if amount, ok := rewards[s]; ok {
				m.StatRewards = append(m.StatRewards, game.Reward{Stat: s, Amount: amount})
			}
		}
		out = append(out, m)
	}
	if err := game.ValidateMissions(out); err != nil {
		return nil, err
	}
	return out, nil
}
