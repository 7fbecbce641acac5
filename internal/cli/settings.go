package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/rileyhilliard/senso/internal/config"
	"github.com/rileyhilliard/senso/internal/errors"
	"github.com/rileyhilliard/senso/internal/logger"
	"github.com/rileyhilliard/senso/internal/monitor"
)

// loadSettings resolves the config file, applies explicitly set flags on top,
// and validates the result. It also returns the path the config came from.
func loadSettings(cmd *cobra.Command) (*config.Config, string, error) {
	cfg, path, err := config.Resolve(cfgFile)
	if err != nil {
		return nil, "", err
	}

	applyFlagOverrides(cmd, cfg)

	if err := config.Validate(cfg); err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

// applyFlagOverrides copies persistent flags the user set into cfg.
// Unset flags leave the file and environment values alone.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("tick-rate") {
		cfg.TickRate = tickRateFlag
	}
	if flags.Changed("history") {
		cfg.HistorySize = historyFlag
	}
	if flags.Changed("backend") {
		cfg.Backends = append([]string(nil), backendFlag...)
	}
}

// startLogging installs the async file logger for the lifetime of a command.
func startLogging(cfg *config.Config) (logger.Logger, io.Closer, error) {
	closer, err := logger.Init(logger.Options{Path: cfg.Log.File, Level: cfg.Log.Level})
	if err != nil {
		return nil, nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't open the log file",
			"Set log.file to a writable path, or leave it empty to log to the temp directory.")
	}
	return logger.Default(), closer, nil
}

// bandsFromConfig converts the display section into dashboard colour bands.
func bandsFromConfig(cfg *config.Config) monitor.Bands {
	return monitor.Bands{
		WarningPercent:  cfg.Display.WarningPercent,
		CriticalPercent: cfg.Display.CriticalPercent,
		DefaultCritical: cfg.Display.DefaultCritical,
	}
}
