// Package config loads service configuration from defaults, an optional
// .env file and the process environment.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// Config is the full service configuration.
type Config struct {
	Port             string           `koanf:"port"`
	DBURL            string           `koanf:"db_url"`
	SuggestThreshold float64          `koanf:"suggest_threshold"`
	CORSOrigins      []string         `koanf:"cors_origins"`
	CocktailDB       CocktailDBConfig `koanf:"cocktaildb"`
	Breaker          BreakerConfig    `koanf:"breaker"`
	Log              LogConfig        `koanf:"log"`
}

// CocktailDBConfig points at the upstream recipe API.
type CocktailDBConfig struct {
	URL     string        `koanf:"url"`
	Timeout time.Duration `koanf:"timeout"`
}

// BreakerConfig tunes the upstream circuit breaker.
type BreakerConfig struct {
	MaxFailures uint32        `koanf:"max_failures"`
	OpenTimeout time.Duration `koanf:"open_timeout"`
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

func defaults() Config {
	return Config{
		Port:             "8080",
		SuggestThreshold: 0.6,
		CORSOrigins:      []string{"http://localhost:3000"},
		CocktailDB: CocktailDBConfig{
			URL:     "https://www.thecocktaildb.com/api/json/v1/1",
			Timeout: 5 * time.Second,
		},
		Breaker: BreakerConfig{
			MaxFailures: 5,
			OpenTimeout: 30 * time.Second,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// envKeys maps environment variables onto koanf paths. Variables not listed
// here are ignored.
var envKeys = map[string]string{
	"PORT":                 "port",
	"DB_URL":               "db_url",
	"SUGGEST_THRESHOLD":    "suggest_threshold",
	"CORS_ORIGINS":         "cors_origins",
	"COCKTAILDB_URL":       "cocktaildb.url",
	"COCKTAILDB_TIMEOUT":   "cocktaildb.timeout",
	"BREAKER_MAX_FAILURES": "breaker.max_failures",
	"BREAKER_OPEN_TIMEOUT": "breaker.open_timeout",
	"LOG_LEVEL":            "log.level",
	"LOG_FORMAT":           "log.format",
}

// Load reads configuration. A .env file in the working directory is loaded
// first when present; real environment variables take precedence over it.
func Load() (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	d := defaults()
	if err := k.Load(structs.Provider(&d, "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	provider := env.Provider("", ".", func(key string) string {
		return envKeys[key]
	})
	if err := k.Load(provider, nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	if origins, ok := k.Get("cors_origins").(string); ok {
		if err := k.Set("cors_origins", splitList(origins)); err != nil {
			return nil, fmt.Errorf("parse CORS_ORIGINS: %w", err)
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports missing or out-of-range settings.
func (c *Config) Validate() error {
	var errs []error
	if c.DBURL == "" {
		errs = append(errs, errors.New("DB_URL is required"))
	}
	if c.CocktailDB.URL == "" {
		errs = append(errs, errors.New("COCKTAILDB_URL must not be empty"))
	}
	if c.CocktailDB.Timeout <= 0 {
		errs = append(errs, errors.New("COCKTAILDB_TIMEOUT must be positive"))
	}
	if c.SuggestThreshold < 0 || c.SuggestThreshold > 1 {
		errs = append(errs, fmt.Errorf("SUGGEST_THRESHOLD must be within [0, 1], got %v", c.SuggestThreshold))
	}
	return errors.Join(errs...)
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
