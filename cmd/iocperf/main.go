// Command iocperf runs the benchmark scenarios against every container adapter.
//
// Usage:
//
//	iocperf [--config iocperf.yaml] [--env .env]
//
// Settings in the configuration file can be overridden with IOCPERF_* environment variables.
package main

import (
	"context"
	"os"
	"os/signal"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sectrean/di-bench/adapter"
	"github.com/sectrean/di-bench/adapter/dig"
	"github.com/sectrean/di-bench/adapter/dikit"
	"github.com/sectrean/di-bench/harness"
	"github.com/sectrean/di-bench/internal/config"
	"github.com/sectrean/di-bench/internal/errors"
)

func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var configPath, envFile string

	cmd := &cobra.Command{
		Use:   "iocperf",
		Short: "Run the container benchmark scenarios",
		Long: `Run the benchmark scenarios against every selected container adapter.

Settings are read from the configuration file and an optional env file.
IOCPERF_* environment variables override the file values.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), configPath, envFile)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a YAML configuration file")
	cmd.Flags().StringVar(&envFile, "env", ".env", "path to an env file with IOCPERF_* variables")

	return cmd
}

func run(ctx context.Context, configPath, envFile string) error {
	cfg, err := config.Load(configPath, envFile)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	adapters, err := selectAdapters(cfg.Adapters, logger)
	if err != nil {
		return err
	}

	runner, err := harness.NewRunner(
		harness.WithIterations(cfg.Iterations),
		harness.WithWorkers(cfg.Workers),
		harness.WithScenarios(cfg.Scenarios...),
		harness.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	report, err := runner.Run(ctx, adapters...)
	if err != nil {
		return err
	}

	return report.Err()
}

func newLogger(cfg config.LogConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, errors.Wrap(err, "new logger")
	}

	zapCfg := zap.NewProductionConfig()
	if cfg.Development {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}

// selectAdapters returns the adapters with the given names, or every adapter if names is empty.
func selectAdapters(names []string, logger *zap.Logger) ([]adapter.Adapter, error) {
	all := []adapter.Adapter{
		dikit.New(dikit.WithLogger(logger.Named("di-bench"))),
		dig.New(dig.WithLogger(logger.Named("dig"))),
	}
	if len(names) == 0 {
		return all, nil
	}

	selected := make([]adapter.Adapter, 0, len(names))
	for _, name := range names {
		i := slices.IndexFunc(all, func(a adapter.Adapter) bool {
			return strings.EqualFold(a.Name(), name)
		})
		if i < 0 {
			return nil, errors.Errorf("unknown adapter %q", name)
		}
		selected = append(selected, all[i])
	}

	return selected, nil
}
