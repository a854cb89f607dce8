// Package config loads magicforest settings from defaults, an optional YAML
// file, MAGICFOREST_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/magicforest/frontier"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. MAGICFOREST_SEARCH_STRATEGY.
const EnvPrefix = "MAGICFOREST"

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config holds all application configuration.
type Config struct {
	Search  SearchConfig  `mapstructure:"search"`
	Output  OutputConfig  `mapstructure:"output"`
	Logger  LoggerConfig  `mapstructure:"logger"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// SearchConfig holds frontier search settings.
type SearchConfig struct {
	Strategy string `mapstructure:"strategy"`
	StopRule string `mapstructure:"stop_rule"`
	Workers  int    `mapstructure:"workers"`
	MaxDepth int    `mapstructure:"max_depth"`
	Trace    bool   `mapstructure:"trace"`
}

// OutputConfig holds result rendering settings.
type OutputConfig struct {
	Format string `mapstructure:"format"`
}

// LoggerConfig holds logger settings.
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

// MetricsConfig holds metrics export settings. An empty File disables export.
type MetricsConfig struct {
	File string `mapstructure:"file"`
}

// FlagKeys maps command-line flag names to configuration keys.
var FlagKeys = map[string]string{
	"strategy":     "search.strategy",
	"stop":         "search.stop_rule",
	"workers":      "search.workers",
	"max-depth":    "search.max_depth",
	"trace":        "search.trace",
	"output":       "output.format",
	"log-level":    "logger.level",
	"log-format":   "logger.format",
	"log-file":     "logger.output_path",
	"metrics-file": "metrics.file",
}

// Load resolves configuration. configPath may be empty; flags may be nil.
// Precedence: flags set on the command line, environment, file, defaults.
func Load(configPath string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if flags != nil {
		for name, key := range FlagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %q: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("search.strategy", frontier.Sequential.String())
	v.SetDefault("search.stop_rule", frontier.AllStable.String())
	v.SetDefault("search.workers", 0)
	v.SetDefault("search.max_depth", 0)
	v.SetDefault("search.trace", false)

	v.SetDefault("output.format", "text")

	v.SetDefault("logger.level", "warn")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output_path", "stderr")

	v.SetDefault("metrics.file", "")
}

// Validate checks enumerations and numeric ranges.
func (c *Config) Validate() error {
	if _, err := frontier.ParseStrategy(c.Search.Strategy); err != nil {
		return fmt.Errorf("%w: search.strategy: %v", ErrInvalid, err)
	}
	if _, err := frontier.ParseStopRule(c.Search.StopRule); err != nil {
		return fmt.Errorf("%w: search.stop_rule: %v", ErrInvalid, err)
	}
	if c.Search.Workers < 0 {
		return fmt.Errorf("%w: search.workers cannot be negative (%d)", ErrInvalid, c.Search.Workers)
	}
	if c.Search.MaxDepth < 0 {
		return fmt.Errorf("%w: search.max_depth cannot be negative (%d)", ErrInvalid, c.Search.MaxDepth)
	}
	switch c.Output.Format {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("%w: output.format must be text, json or yaml, got %q", ErrInvalid, c.Output.Format)
	}
	switch c.Logger.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: logger.format must be console or json, got %q", ErrInvalid, c.Logger.Format)
	}

	return nil
}

// SearchOptions translates the search settings into frontier options.
// The config must have passed Validate.
func (c *Config) SearchOptions() []frontier.Option {
	strategy, _ := frontier.ParseStrategy(c.Search.Strategy)
	rule, _ := frontier.ParseStopRule(c.Search.StopRule)
	opts := []frontier.Option{
		frontier.WithStrategy(strategy),
		frontier.WithStopRule(rule),
		frontier.WithWorkers(c.Search.Workers),
		frontier.WithMaxDepth(c.Search.MaxDepth),
	}
	if c.Search.Trace {
		opts = append(opts, frontier.WithTrace())
	}

	return opts
}
