// Package cli implements the magicforest command line: argument parsing,
// configuration, running the frontier search and rendering its result.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var version = "dev"

// SetVersion overrides the version reported by --version and "version".
func SetVersion(v string) {
	if v == "" {
		return
	}
	version = v
}

// NewRootCommand builds the command tree. Each call returns an independent
// tree, so tests can run commands side by side.
func NewRootCommand() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:     "magicforest [flags] <goats> <wolves> <lions>",
		Version: version,
		Short:   "Find the stable populations of a magic forest",
		Long: `magicforest explores every population reachable from an initial count of
goats, wolves and lions, where a wolf may eat a goat (and becomes a lion), a
lion may eat a goat (and becomes a wolf) and a lion may eat a wolf (and becomes
a goat). It prints the stable populations, in which no meal is possible.`,
		Args:          exactCounts,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, args, configPath)
		},
	}
	rootCmd.SetVersionTemplate("{{.Version}}\n")
	rootCmd.SetFlagErrorFunc(flagError)

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML configuration file")

	flags := rootCmd.Flags()
	flags.String("strategy", "sequential", "Frontier expansion: sequential, parallel or pipelined")
	flags.String("stop", "all", "Stop rule: all (every forest stable) or any (first stable forest)")
	flags.Int("workers", 0, "Goroutines for the parallel strategy (0 = GOMAXPROCS)")
	flags.Int("max-depth", 0, "Fail after this many meals without stopping (0 = no limit)")
	flags.Bool("trace", false, "Print the meals leading to each stable forest")
	flags.StringP("output", "o", "text", "Output format: text, json or yaml")
	flags.String("log-level", "warn", "Log level: debug, info, warn or error")
	flags.String("log-format", "console", "Log format: console or json")
	flags.String("log-file", "stderr", "Log destination: stderr, stdout or a file path")
	flags.String("metrics-file", "", "Write prometheus metrics in text format to this file")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the magicforest version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	})

	return rootCmd
}

// exactCounts requires the three animal counts.
func exactCounts(_ *cobra.Command, args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("%w: expected 3 (goats, wolves, lions), got %d", ErrUsage, len(args))
	}

	return nil
}

// Execute runs the command line with ctx for cancellation.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}
