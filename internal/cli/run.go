package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/katalvlaran/magicforest/forest"
	"github.com/katalvlaran/magicforest/frontier"
	"github.com/katalvlaran/magicforest/internal/config"
	"github.com/katalvlaran/magicforest/internal/logging"
	"github.com/katalvlaran/magicforest/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// parseForest turns the three positional arguments into the initial forest.
func parseForest(args []string) (forest.Forest, error) {
	names := [3]string{"goats", "wolves", "lions"}
	var counts [3]int
	for i, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return forest.Forest{}, fmt.Errorf("%w: %s count %q", ErrParse, names[i], arg)
		}
		counts[i] = n
	}
	f, err := forest.New(counts[0], counts[1], counts[2])
	if err != nil {
		return forest.Forest{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return f, nil
}

func runSearch(cmd *cobra.Command, args []string, configPath string) error {
	initial, err := parseForest(args)
	if err != nil {
		return err
	}

	cfg, err := config.Load(configPath, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := logging.New(logging.Config{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		OutputPath: cfg.Logger.OutputPath,
	})
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	reg := prometheus.NewRegistry()
	collector := metrics.NewCollector(reg)

	opts := append(cfg.SearchOptions(),
		frontier.WithContext(cmd.Context()),
		frontier.WithLogger(logger),
		frontier.WithOnLevel(collector.ObserveLevel),
	)

	logger.Info("search started",
		zap.Stringer("initial", initial),
		zap.String("strategy", cfg.Search.Strategy),
		zap.String("stop_rule", cfg.Search.StopRule))
	start := time.Now()
	res, searchErr := frontier.Search(initial, opts...)
	elapsed := time.Since(start)

	stable := 0
	if res != nil {
		stable = len(res.Stable)
	}
	collector.ObserveSearch(cfg.Search.Strategy, elapsed, stable, searchErr)
	if cfg.Metrics.File != "" {
		if err := prometheus.WriteToTextfile(cfg.Metrics.File, reg); err != nil {
			logger.Error("failed to write metrics", zap.String("file", cfg.Metrics.File), zap.Error(err))
			if searchErr == nil {
				return fmt.Errorf("writing metrics: %w", err)
			}
		}
	}
	if searchErr != nil {
		logger.Error("search failed", zap.Error(searchErr), zap.Duration("elapsed", elapsed))
		return searchErr
	}

	logger.Info("search finished",
		zap.Int("depth", res.Depth),
		zap.Int("explored", res.Explored),
		zap.Int("stable", stable),
		zap.Duration("elapsed", elapsed))

	return render(cmd.OutOrStdout(), cfg.Output.Format, res)
}
