package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/informaticalaredo/GrowthMaster/internal/catalog"
	"github.com/informaticalaredo/GrowthMaster/internal/model"
)

// Config holds all application configuration.
type Config struct {
	Game struct {
		MaxRounds      int     `yaml:"max_rounds" env:"MAX_ROUNDS"`
		InitialBudget  float64 `yaml:"initial_budget" env:"INITIAL_BUDGET"`
		SelectionLimit int     `yaml:"selection_limit" env:"SELECTION_LIMIT"`
	} `yaml:"game"`
	Economics   model.Economics `yaml:"economics"`
	CatalogFile string          `yaml:"catalog_file" env:"CATALOG_FILE"`
	Autoplay    struct {
		Cron   string           `yaml:"cron" env:"AUTOPLAY_CRON"`
		Policy string           `yaml:"policy" env:"AUTOPLAY_POLICY"`
		Plan   map[int][]string `yaml:"plan"`
	} `yaml:"autoplay"`
	Batch struct {
		Games   int    `yaml:"games" env:"BATCH_GAMES"`
		Workers int    `yaml:"workers" env:"BATCH_WORKERS"`
		Seed    uint64 `yaml:"seed"`
	} `yaml:"batch"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path" env:"SQLITE_PATH"`
	} `yaml:"database"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
// Keys missing from both keep their defaults, so an explicit zero is kept as is.
func Load(path string) (*Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func defaults() *Config {
	cfg := &Config{Economics: catalog.DefaultEconomics()}
	cfg.Game.MaxRounds = catalog.MaxRounds
	cfg.Game.InitialBudget = catalog.InitialBudget
	cfg.Game.SelectionLimit = catalog.SelectionLimit
	cfg.Autoplay.Cron = "*/2 * * * * *"
	cfg.Autoplay.Policy = "greedy"
	cfg.Batch.Games = 1000
	cfg.Batch.Workers = 4
	cfg.Batch.Seed = 1
	return cfg
}

// Validate checks that all values are usable.
func (c *Config) Validate() error {
	if c.Game.MaxRounds < 1 {
		return fmt.Errorf("game.max_rounds must be at least 1")
	}
	if c.Game.SelectionLimit < 1 {
		return fmt.Errorf("game.selection_limit must be at least 1")
	}
	if c.Economics.AdsCostPerRound <= 0 {
		return fmt.Errorf("economics.ads_cost_per_round must be positive")
	}
	if c.Economics.Margin < 0 || c.Economics.Margin > 1 {
		return fmt.Errorf("economics.margin must be within [0, 1]")
	}
	if c.Economics.EventProbability < 0 || c.Economics.EventProbability > 1 {
		return fmt.Errorf("economics.event_probability must be within [0, 1]")
	}
	switch c.Autoplay.Policy {
	case "greedy", "scripted", "idle":
	default:
		return fmt.Errorf("autoplay.policy %q is not one of greedy, scripted, idle", c.Autoplay.Policy)
	}
	if c.Batch.Games < 1 || c.Batch.Workers < 1 {
		return fmt.Errorf("batch.games and batch.workers must be positive")
	}
	return nil
}

// Catalog resolves the configured catalog, falling back to the built-in one.
func (c *Config) Catalog() (*catalog.Catalog, error) {
	if c.CatalogFile == "" {
		return catalog.Default(), nil
	}
	return catalog.Load(c.CatalogFile)
}
