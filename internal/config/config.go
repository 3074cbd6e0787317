// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jonathan/buildwise/internal/types"
)

// DefaultPort is used when neither the config file nor the environment sets a port.
const DefaultPort = 8080

// Config represents the configuration that can be loaded from a JSON or YAML file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	Port int `json:"port,omitempty" yaml:"port,omitempty"` // HTTP listen port

	// Rate tables applied to requests that do not override them
	Wages     types.WageRates     `json:"wages" yaml:"wages"`
	Materials types.MaterialRates `json:"materials" yaml:"materials"`

	// Behavior
	RateLimitEnabled *bool `json:"rate_limit_enabled,omitempty" yaml:"rate_limit_enabled,omitempty"` // nil means "use RATE_LIMIT_ENABLED"
	Verbose          bool  `json:"verbose,omitempty" yaml:"verbose,omitempty"`                       // Print detailed debug information
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Port:      DefaultPort,
		Wages:     types.DefaultWageRates(),
		Materials: types.DefaultMaterialRates(),
	}
}

// LoadConfig loads configuration from a JSON or YAML file.
// Files ending in .yaml or .yml are decoded as YAML, everything else as JSON.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	return &cfg, nil
}

// Load resolves the effective configuration: the file at path (if any) merged
// over Default(), then BUILDWISE_PORT from the environment, then validated.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		loaded, err := LoadConfig(path)
		if err != nil {
			return Config{}, err
		}
		cfg = loaded.MergeWithDefaults(cfg)
	}

	if err := cfg.ApplyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from environment variables.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("BUILDWISE_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config error: BUILDWISE_PORT must be an integer, got %q", v)
		}
		c.Port = port
	}
	return nil
}

// Validate checks that the configuration has valid values.
// Zero rates are allowed here since MergeWithDefaults fills them.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	wages := []struct {
		name  string
		value float64
	}{
		{"mason_daily_inr", c.Wages.MasonDailyINR},
		{"helper_daily_inr", c.Wages.HelperDailyINR},
		{"carpenter_daily_inr", c.Wages.CarpenterDailyINR},
		{"bar_bender_daily_inr", c.Wages.BarBenderDailyINR},
		{"electrician_daily_inr", c.Wages.ElectricianDailyINR},
		{"plumber_daily_inr", c.Wages.PlumberDailyINR},
		{"painter_daily_inr", c.Wages.PainterDailyINR},
	}
	for _, w := range wages {
		if w.value < 0 {
			return fmt.Errorf("config error: 'wages.%s' must be non-negative", w.name)
		}
	}

	materials := []struct {
		name  string
		value float64
	}{
		{"cement_bag_inr", c.Materials.CementBagINR},
		{"steel_kg_inr", c.Materials.SteelKgINR},
		{"sand_cuft_inr", c.Materials.SandCuftINR},
		{"aggregate_cuft_inr", c.Materials.AggregateCuftINR},
		{"brick_per_piece_inr", c.Materials.BrickPerPieceINR},
	}
	for _, m := range materials {
		if m.value < 0 {
			return fmt.Errorf("config error: 'materials.%s' must be non-negative", m.name)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with zero fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	result.Wages = result.Wages.MergeWithDefaults(defaults.Wages)
	result.Materials = result.Materials.MergeWithDefaults(defaults.Materials)

	if result.RateLimitEnabled == nil {
		result.RateLimitEnabled = defaults.RateLimitEnabled
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
