/*
Package config loads the service configuration from YAML.

PURPOSE:
  Carries the tunable parameters of the service: HTTP settings, storage
  paths, the optional Redis cache address, and the tax policy knobs the
  projection engine is parameterized with. A default configuration is
  embedded in the binary; a user-supplied file overrides individual fields.

SEE ALSO:
  - projection/metrics.go: TaxPolicy the tax section maps onto
  - cmd/server/main.go: Wires the loaded config into the service
*/
package config

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/warp/growth-engine/projection"
)

//go:embed default-config.yaml
var defaultYAML []byte

// Config is the full service configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Tax    TaxConfig    `yaml:"tax"`
}

// ServerConfig holds HTTP and storage settings.
type ServerConfig struct {
	Port      int    `yaml:"port"`
	DBPath    string `yaml:"db_path"`
	RedisAddr string `yaml:"redis_addr"` // empty disables response caching
}

// TaxConfig holds the capital-gains rule parameters. Values mirror
// projection.TaxPolicy; see Policy().
type TaxConfig struct {
	ExemptFraction float64 `yaml:"exempt_fraction"`
	Allowance      float64 `yaml:"allowance"`
	Rate           float64 `yaml:"rate"`
	InflationRate  float64 `yaml:"inflation_rate"`
}

// Policy maps the YAML values onto the engine's tax policy.
func (t TaxConfig) Policy() projection.TaxPolicy {
	return projection.TaxPolicy{
		ExemptFraction: decimal.NewFromFloat(t.ExemptFraction),
		Allowance:      decimal.NewFromFloat(t.Allowance),
		Rate:           decimal.NewFromFloat(t.Rate),
		InflationRate:  decimal.NewFromFloat(t.InflationRate),
	}
}

// Default returns the embedded default configuration.
func Default() (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return nil, fmt.Errorf("parse embedded default config: %w", err)
	}
	return &cfg, nil
}

// Load returns the default configuration with the given file merged over
// it. Fields omitted in the file keep their default values. An empty path
// returns the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}
	if path == "" {
		return cfg, validate(cfg)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, validate(cfg)
}

func validate(cfg *Config) error {
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", cfg.Server.Port)
	}
	if cfg.Tax.ExemptFraction < 0 || cfg.Tax.ExemptFraction > 1 {
		return fmt.Errorf("exempt fraction %v outside [0,1]", cfg.Tax.ExemptFraction)
	}
	if cfg.Tax.Rate < 0 || cfg.Tax.Rate > 1 {
		return fmt.Errorf("tax rate %v outside [0,1]", cfg.Tax.Rate)
	}
	if cfg.Tax.InflationRate <= -1 {
		return fmt.Errorf("inflation rate %v at or below -100%%", cfg.Tax.InflationRate)
	}
	return nil
}
