// SPDX-License-Identifier: MIT

// Package config loads run settings from defaults, an optional YAML file,
// STARTUPSEG_* environment variables and command-line flags, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/startupseg/logging"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// EnvPrefix is the prefix of environment overrides, e.g. STARTUPSEG_K_MAX.
const EnvPrefix = "STARTUPSEG"

// Seeding strategies accepted in Config.Init.
const (
	InitKMeansPlusPlus = "kmeans++"
	InitRandom         = "random"
)

// Config holds the tunables of one clustering run. KMin and KMax bound the
// elbow sweep; K > 0 fixes the cluster count and skips the sweep. Parallelism
// bounds both concurrent restarts and concurrent k values.
type Config struct {
	KMin int `yaml:"k_min" mapstructure:"k_min"`
	KMax int `yaml:"k_max" mapstructure:"k_max"`
	K    int `yaml:"k" mapstructure:"k"`

	Seed          int64  `yaml:"seed" mapstructure:"seed"`
	Restarts      int    `yaml:"restarts" mapstructure:"restarts"`
	MaxIterations int    `yaml:"max_iterations" mapstructure:"max_iterations"`
	Init          string `yaml:"init" mapstructure:"init"`
	Parallelism   int    `yaml:"parallelism" mapstructure:"parallelism"`

	LogLevel string `yaml:"log_level" mapstructure:"log_level"`
}

// Default returns the settings used when nothing overrides them.
func Default() Config {
	return Config{
		KMin:          2,
		KMax:          10,
		Seed:          42,
		Restarts:      10,
		MaxIterations: 300,
		Init:          InitKMeansPlusPlus,
		Parallelism:   1,
		LogLevel:      logging.LevelInfo,
	}
}

// Validate checks for invalid configuration values.
func (c *Config) Validate() error {
	if c.KMin < 1 {
		return fmt.Errorf("%w: k_min must be >= 1, got %d", ErrInvalidConfig, c.KMin)
	}
	if c.KMax < c.KMin {
		return fmt.Errorf("%w: k_max (%d) must be >= k_min (%d)", ErrInvalidConfig, c.KMax, c.KMin)
	}
	if c.K < 0 {
		return fmt.Errorf("%w: k must be >= 0, got %d", ErrInvalidConfig, c.K)
	}
	if c.Restarts < 1 {
		return fmt.Errorf("%w: restarts must be >= 1, got %d", ErrInvalidConfig, c.Restarts)
	}
	if c.MaxIterations < 1 {
		return fmt.Errorf("%w: max_iterations must be >= 1, got %d", ErrInvalidConfig, c.MaxIterations)
	}
	if c.Parallelism < 1 {
		return fmt.Errorf("%w: parallelism must be >= 1, got %d", ErrInvalidConfig, c.Parallelism)
	}
	if c.Init != InitKMeansPlusPlus && c.Init != InitRandom {
		return fmt.Errorf("%w: init must be %q or %q, got %q", ErrInvalidConfig, InitKMeansPlusPlus, InitRandom, c.Init)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

// flag name → config key
var flagKeys = map[string]string{
	"k-min":          "k_min",
	"k-max":          "k_max",
	"k":              "k",
	"seed":           "seed",
	"restarts":       "restarts",
	"max-iterations": "max_iterations",
	"init":           "init",
	"parallelism":    "parallelism",
	"log-level":      "log_level",
}

// RegisterFlags adds the tunable flags to fs with Default() values.
func RegisterFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.Int("k-min", d.KMin, "smallest k tried by the elbow sweep")
	fs.Int("k-max", d.KMax, "largest k tried by the elbow sweep")
	fs.Int("k", d.K, "fixed number of clusters; 0 selects k with the elbow sweep")
	fs.Int64("seed", d.Seed, "base random seed")
	fs.Int("restarts", d.Restarts, "independently seeded runs per k")
	fs.Int("max-iterations", d.MaxIterations, "iteration cap per run")
	fs.String("init", d.Init, "centroid seeding: kmeans++ or random")
	fs.Int("parallelism", d.Parallelism, "concurrent runs")
	fs.String("log-level", d.LogLevel, "error, info, debug or trace")
}

// Load resolves the configuration. path may be empty; fs may be nil.
// Only flags the user actually set override the file and environment.
func Load(fs *pflag.FlagSet, path string) (Config, error) {
	v := viper.New()
	d := Default()
	v.SetDefault("k_min", d.KMin)
	v.SetDefault("k_max", d.KMax)
	v.SetDefault("k", d.K)
	v.SetDefault("seed", d.Seed)
	v.SetDefault("restarts", d.Restarts)
	v.SetDefault("max_iterations", d.MaxIterations)
	v.SetDefault("init", d.Init)
	v.SetDefault("parallelism", d.Parallelism)
	v.SetDefault("log_level", d.LogLevel)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("config: bind flag %s: %w", name, err)
				}
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}
