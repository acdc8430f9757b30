package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config carries solver defaults and logging settings. Instance and solution
// paths stay on the command line; they change per run, the config does not.
type Config struct {
	Solver  SolverConfig  `json:"solver"`
	Logging LoggingConfig `json:"logging"`
}

type SolverConfig struct {
	// OrderPolicy is "by_release_ascending" or "by_weight_descending".
	OrderPolicy string `json:"order_policy"`
	// Horizon caps start times; zero derives the bound from the instance.
	Horizon int64 `json:"horizon"`
}

type LoggingConfig struct {
	Level string `json:"level"`
}

func (c *Config) SetDefaults() {
	if c.Solver.OrderPolicy == "" {
		c.Solver.OrderPolicy = "by_release_ascending"
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}

func (c Config) Validate() error {
	if c.Solver.OrderPolicy != "by_release_ascending" &&
		c.Solver.OrderPolicy != "by_weight_descending" {
		return fmt.Errorf("unknown order policy %s", c.Solver.OrderPolicy)
	}

	if c.Solver.Horizon < 0 {
		return fmt.Errorf("horizon cannot be negative")
	}

	return nil
}

// Load reads the config file, applies FLEXSHOP_-prefixed environment
// overrides, then defaults and validation. An empty path yields defaults
// with environment overrides only.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		var parser koanf.Parser

		switch ext := strings.ToLower(filepath.Ext(path)); ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		default:
			return nil, fmt.Errorf("unsupported config format: %s", ext)
		}

		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, err
		}
	}

	if err := k.Load(env.Provider("FLEXSHOP_", ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "flexshop_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}

	cfg.SetDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
