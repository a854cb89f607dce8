package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/magicforest/frontier"
	"github.com/katalvlaran/magicforest/internal/config"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "magicforest.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "sequential", cfg.Search.Strategy)
	assert.Equal(t, "all", cfg.Search.StopRule)
	assert.Equal(t, 0, cfg.Search.Workers)
	assert.False(t, cfg.Search.Trace)
	assert.Equal(t, "text", cfg.Output.Format)
	assert.Equal(t, "warn", cfg.Logger.Level)
	assert.Equal(t, "console", cfg.Logger.Format)
	assert.Equal(t, "stderr", cfg.Logger.OutputPath)
	assert.Empty(t, cfg.Metrics.File)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
search:
  strategy: pipelined
  stop_rule: any
  trace: true
output:
  format: yaml
logger:
  level: debug
`)
	cfg, err := config.Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "pipelined", cfg.Search.Strategy)
	assert.Equal(t, "any", cfg.Search.StopRule)
	assert.True(t, cfg.Search.Trace)
	assert.Equal(t, "yaml", cfg.Output.Format)
	assert.Equal(t, "debug", cfg.Logger.Level)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	assert.Error(t, err)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "search:\n  strategy: pipelined\n")
	t.Setenv("MAGICFOREST_SEARCH_STRATEGY", "parallel")
	t.Setenv("MAGICFOREST_SEARCH_WORKERS", "4")

	cfg, err := config.Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "parallel", cfg.Search.Strategy)
	assert.Equal(t, 4, cfg.Search.Workers)
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("MAGICFOREST_OUTPUT_FORMAT", "yaml")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("output", "text", "")
	fs.Int("workers", 0, "")
	require.NoError(t, fs.Parse([]string{"--output", "json"}))

	cfg, err := config.Load("", fs)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Output.Format)
	// unset flags fall through to defaults
	assert.Equal(t, 0, cfg.Search.Workers)
}

func TestValidate(t *testing.T) {
	base := func() config.Config {
		cfg, err := config.Load("", nil)
		require.NoError(t, err)
		return *cfg
	}
	for name, mutate := range map[string]func(*config.Config){
		"strategy":      func(c *config.Config) { c.Search.Strategy = "greedy" },
		"stop rule":     func(c *config.Config) { c.Search.StopRule = "first" },
		"workers":       func(c *config.Config) { c.Search.Workers = -2 },
		"max depth":     func(c *config.Config) { c.Search.MaxDepth = -1 },
		"output format": func(c *config.Config) { c.Output.Format = "csv" },
		"log format":    func(c *config.Config) { c.Logger.Format = "xml" },
	} {
		cfg := base()
		mutate(&cfg)
		err := cfg.Validate()
		assert.True(t, errors.Is(err, config.ErrInvalid), "%s: got %v", name, err)
	}
}

func TestSearchOptions(t *testing.T) {
	cfg, err := config.Load("", nil)
	require.NoError(t, err)
	cfg.Search.Strategy = "parallel"
	cfg.Search.StopRule = "any"
	cfg.Search.Trace = true

	o := frontier.DefaultOptions()
	for _, opt := range cfg.SearchOptions() {
		opt(&o)
	}
	assert.Equal(t, frontier.Parallel, o.Strategy)
	assert.Equal(t, frontier.AnyStable, o.StopRule)
	assert.True(t, o.Trace)
}
