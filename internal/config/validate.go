package config

import (
	"fmt"
	"strings"

	"github.com/rileyhilliard/senso/internal/errors"
)

// KnownBackends are the sensor sources senso can enumerate.
var KnownBackends = map[string]bool{
	BackendHwmon: true,
	BackendNVML:  true,
}

// LogLevels are the accepted values of log.level.
var LogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg.TickRate < MinTickRate {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("tick_rate %s is too fast (minimum is %s)", cfg.TickRate, MinTickRate),
			"Try something like '100ms' or '1s'.")
	}

	if cfg.HistorySize < 1 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("history_size needs to be at least 1 (got %d)", cfg.HistorySize),
			"The default keeps the last 100 readings per sensor.")
	}

	if err := validateBackends(cfg.Backends); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Valid backends are 'hwmon' and 'nvml'.")
	}

	if !LogLevels[cfg.Log.Level] {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("log.level '%s' isn't a level senso knows", cfg.Log.Level),
			"Use one of: debug, info, warn, error.")
	}

	if err := validateDisplay(cfg.Display); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'display' section of your config.")
	}

	return nil
}

func validateBackends(backends []string) error {
	if len(backends) == 0 {
		return fmt.Errorf("backends is empty - senso needs at least one sensor source")
	}
	seen := make(map[string]bool)
	for _, b := range backends {
		name := strings.TrimSpace(b)
		if !KnownBackends[name] {
			return fmt.Errorf("unknown backend '%s'", b)
		}
		if seen[name] {
			return fmt.Errorf("backend '%s' is listed twice", name)
		}
		seen[name] = true
	}
	return nil
}

func validateDisplay(d DisplayConfig) error {
	if d.WarningPercent < 0 || d.WarningPercent > 100 {
		return fmt.Errorf("display.warning_percent needs to be 0-100 (got %d)", d.WarningPercent)
	}
	if d.CriticalPercent < 0 || d.CriticalPercent > 100 {
		return fmt.Errorf("display.critical_percent needs to be 0-100 (got %d)", d.CriticalPercent)
	}
	if d.WarningPercent >= d.CriticalPercent {
		return fmt.Errorf("display.warning_percent (%d%%) is higher than critical_percent (%d%%) - should be the other way around", d.WarningPercent, d.CriticalPercent)
	}
	if d.DefaultCritical <= 0 {
		return fmt.Errorf("display.default_critical needs to be above 0 (got %g)", d.DefaultCritical)
	}
	return nil
}
