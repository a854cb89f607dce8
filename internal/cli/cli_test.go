package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/katalvlaran/magicforest/forest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func init() {
	color.NoColor = true
}

// run executes a fresh command tree and returns stdout and the error.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRun_Text(t *testing.T) {
	cases := []struct {
		args []string
		want string
	}{
		{[]string{"0", "0", "0"}, "Forest [goats=0, wolves=0, lions=0]\n"},
		{[]string{"1", "1", "0"}, "Forest [goats=0, wolves=0, lions=1]\n"},
		{[]string{"1", "1", "1"}, "Forest [goats=2, wolves=0, lions=0]\nForest [goats=0, wolves=2, lions=0]\nForest [goats=0, wolves=0, lions=2]\n"},
		{[]string{"--stop", "any", "3", "1", "1"}, "Forest [goats=4, wolves=0, lions=0]\n"},
		{[]string{"--strategy", "pipelined", "0", "1", "1"}, "Forest [goats=1, wolves=0, lions=0]\n"},
	}
	for _, tc := range cases {
		t.Run(strings.Join(tc.args, " "), func(t *testing.T) {
			out, err := run(t, tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, out)
		})
	}
}

func TestRun_Trace(t *testing.T) {
	out, err := run(t, "--trace", "--stop", "any", "3", "1", "1")
	require.NoError(t, err)
	assert.Equal(t, "Forest [goats=4, wolves=0, lions=0]\n  via lion-eats-wolf\n", out)

	out, err = run(t, "--trace", "5", "0", "0")
	require.NoError(t, err)
	assert.Equal(t, "Forest [goats=5, wolves=0, lions=0]\n  via (initial)\n", out)
}

func TestRun_JSON(t *testing.T) {
	out, err := run(t, "-o", "json", "--trace", "--strategy", "parallel", "3", "1", "1")
	require.NoError(t, err)

	var got report
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, forestView{Goats: 3, Wolves: 1, Lions: 1}, got.Initial)
	assert.Equal(t, "parallel", got.Strategy)
	assert.Equal(t, "all", got.StopRule)
	assert.Equal(t, 3, got.Depth)
	require.Len(t, got.Stable, 3)
	assert.Equal(t, []string{forest.LionEatsGoat, forest.WolfEatsGoat, forest.LionEatsWolf}, got.Stable[0].Path)
}

func TestRun_YAML(t *testing.T) {
	out, err := run(t, "--output", "yaml", "1", "0", "1")
	require.NoError(t, err)

	var got report
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, 1, got.Depth)
	assert.Equal(t, []stableView{{Wolves: 1}}, got.Stable)
}

func TestRun_Errors(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want error
	}{
		{"no args", nil, ErrUsage},
		{"two args", []string{"1", "2"}, ErrUsage},
		{"four args", []string{"1", "2", "3", "4"}, ErrUsage},
		{"not a number", []string{"1", "x", "3"}, ErrParse},
		{"float", []string{"1.5", "2", "3"}, ErrParse},
		{"negative after --", []string{"--", "1", "-2", "3"}, ErrInvalidInput},
		{"negative as flag", []string{"-1", "2", "3"}, ErrInvalidInput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := run(t, tc.args...)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}

	_, err := run(t, "--strategy", "random", "1", "1", "1")
	assert.Error(t, err)
	_, err = run(t, "--max-depth", "1", "3", "1", "1")
	assert.Error(t, err)
}

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	PrintError(&buf, errors.Join(ErrParse, errors.New("lions count \"x\"")))
	assert.True(t, strings.HasPrefix(buf.String(), "ERROR: "), buf.String())
	assert.NotContains(t, buf.String(), "USAGE")

	buf.Reset()
	_, err := run(t, "1")
	PrintError(&buf, err)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, UsageLine, lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "ERROR: wrong number of arguments"), lines[1])

	buf.Reset()
	PrintError(&buf, nil)
	assert.Empty(t, buf.String())
}

func TestRun_ConfigAndMetricsFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "magicforest.yaml")
	metricsPath := filepath.Join(dir, "metrics.prom")
	require.NoError(t, os.WriteFile(cfgPath, []byte("search:\n  stop_rule: any\n"), 0o644))

	out, err := run(t, "--config", cfgPath, "--metrics-file", metricsPath, "3", "1", "1")
	require.NoError(t, err)
	assert.Equal(t, "Forest [goats=4, wolves=0, lions=0]\n", out)

	data, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "magicforest_levels_total 2")
	assert.Contains(t, string(data), `magicforest_searches_total{outcome="ok",strategy="sequential"} 1`)
}

func TestVersion(t *testing.T) {
	SetVersion("1.2.3")
	defer SetVersion("dev")

	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "1.2.3\n", out)

	out, err = run(t, "--version")
	require.NoError(t, err)
	assert.Equal(t, "1.2.3\n", out)
}
