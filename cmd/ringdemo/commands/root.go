package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/momentics/hioload-ring/control"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ringdemo",
	Short: "Fixed-capacity byte ring demonstration",
	Long: `ringdemo binds a byte ring to heap or mmap storage and runs the
standard scenario against it, logging the status of every step.`,
	SilenceUsage: true,
}

var flags struct {
	configPath string
	capacity   int
	backend    string
	pooled     bool
	logLevel   string
}

// Command returns the root cobra command for mounting into a parent CLI.
func Command() *cobra.Command {
	return rootCmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	bindFlags(rootCmd.PersistentFlags())
	rootCmd.AddCommand(runCmd)
}

func bindFlags(fs *pflag.FlagSet) {
	def := control.DefaultConfig()
	fs.StringVarP(&flags.configPath, "config", "c", "", "YAML config file")
	fs.IntVar(&flags.capacity, "capacity", def.Capacity, "ring capacity in bytes")
	fs.StringVar(&flags.backend, "backend", def.Backend, "storage backend (heap, mmap)")
	fs.BoolVar(&flags.pooled, "pooled", def.Pooled, "draw storage from a region pool")
	fs.StringVar(&flags.logLevel, "log-level", def.LogLevel, "log level (debug, info, warn, error)")
}

// loadConfig reads the config file, if any, then applies explicitly set flags.
func loadConfig(fs *pflag.FlagSet) (*control.Config, error) {
	cfg := control.DefaultConfig()
	if flags.configPath != "" {
		var err error
		if cfg, err = control.LoadFile(flags.configPath); err != nil {
			return nil, err
		}
	}
	if fs.Changed("capacity") {
		cfg.Capacity = flags.capacity
	}
	if fs.Changed("backend") {
		cfg.Backend = flags.backend
	}
	if fs.Changed("pooled") {
		cfg.Pooled = flags.pooled
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = flags.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	zc := zap.NewDevelopmentConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.DisableStacktrace = true
	return zc.Build()
}
