// Package cmd implements the docmap command line interface.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"docmap/internal/config"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "docmap",
	Short: "Interactive graph view of a documentation tree",
	Long: `docmap turns a documentation directory into an explorable graph:
pages and sections become nodes, the directory structure and curated
related-topic links become edges. The serve command exposes the graph
and per-viewer interactive sessions over HTTP and SSE.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path (default: search standard locations)")
}

// loadConfig loads the config from the --config flag or standard locations
func loadConfig() (*config.Config, error) {
	if configPath != "" {
		cfg, _, err := config.LoadFromPath(configPath)
		return cfg, err
	}
	cfg, _, err := config.Load()
	return cfg, err
}

// newLogger builds the zap logger from the logging config
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Logging.Level, err)
	}

	var zapCfg zap.Config
	if cfg.Logging.Development {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
