package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/momentics/hioload-ring/control"
	"github.com/momentics/hioload-ring/facade"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the ring scenario",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd.Flags())
		if err != nil {
			return err
		}
		logger, err := newLogger(cfg.LogLevel)
		if err != nil {
			return err
		}
		defer logger.Sync() //nolint:errcheck

		return run(cfg, logger)
	},
}

func run(cfg *control.Config, logger *zap.Logger) error {
	opts := []facade.Option{facade.WithLogger(logger)}
	if cfg.Pooled {
		p, err := facade.NewPool(cfg, logger)
		if err != nil {
			return err
		}
		defer func() {
			if err := p.Close(); err != nil {
				logger.Warn("region pool close failed", zap.Error(err))
			}
		}()
		opts = append(opts, facade.WithPool(p))
	}

	b, err := facade.Open(cfg, opts...)
	if err != nil {
		logger.Error("failed to initialize ring buffer", zap.Error(err))
		return err
	}

	metrics := control.NewMetricsRegistry()
	s := &scenario{ring: b.Ring(), logger: logger, metrics: metrics}
	s.run()
	logger.Debug("ring state", zap.Any("state", b.DumpState()))

	if err := metrics.Record("release", b.Close()); err != nil {
		logger.Error("failed to free the ring buffer", zap.Error(err))
		return err
	}
	logger.Info("ring buffer freed successfully")
	logger.Info("outcomes", zap.Any("counts", metrics.GetSnapshot()))
	return nil
}
