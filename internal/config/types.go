package config

import (
	"time"

	"github.com/rileyhilliard/senso/internal/history"
)

const (
	// DefaultTickRate is how often sensors are sampled and the screen redrawn.
	DefaultTickRate = 100 * time.Millisecond
	// MinTickRate is the fastest supported tick.
	MinTickRate = 10 * time.Millisecond
	// DefaultHwmonRoot is the sysfs hwmon class directory.
	DefaultHwmonRoot = "/sys/class/hwmon"
)

// Known backend names.
const (
	BackendHwmon = "hwmon"
	BackendNVML  = "nvml"
)

// Config represents the complete senso configuration.
type Config struct {
	// TickRate is the sampling and redraw interval.
	TickRate time.Duration `yaml:"tick_rate" mapstructure:"tick_rate"`

	// HistorySize is the number of readings kept per temperature label.
	HistorySize int `yaml:"history_size" mapstructure:"history_size"`

	// Backends lists the sensor sources to enumerate, in display order.
	Backends []string `yaml:"backends" mapstructure:"backends"`

	Hwmon   HwmonConfig   `yaml:"hwmon" mapstructure:"hwmon"`
	Log     LogConfig     `yaml:"log" mapstructure:"log"`
	Display DisplayConfig `yaml:"display" mapstructure:"display"`
}

// HwmonConfig controls the sysfs backend.
type HwmonConfig struct {
	// Root is the hwmon class directory. Supports ~ and ${HOME}.
	Root string `yaml:"root" mapstructure:"root"`
}

// LogConfig controls the log file. The terminal is owned by the dashboard,
// so logs never go to stdout.
type LogConfig struct {
	// File is truncated at startup. Empty means $TMPDIR/senso.log.
	File string `yaml:"file" mapstructure:"file"`

	// Level is one of debug, info, warn, error.
	Level string `yaml:"level" mapstructure:"level"`
}

// DisplayConfig sets the colour bands of temperature graphs.
// Readings are banded by their percentage of the feature's critical value.
type DisplayConfig struct {
	// WarningPercent is where readings turn from cool to warm.
	WarningPercent int `yaml:"warning_percent" mapstructure:"warning_percent"`

	// CriticalPercent is where readings turn from warm to hot.
	CriticalPercent int `yaml:"critical_percent" mapstructure:"critical_percent"`

	// DefaultCritical is used for features that report no critical value.
	DefaultCritical float64 `yaml:"default_critical" mapstructure:"default_critical"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		TickRate:    DefaultTickRate,
		HistorySize: history.DefaultCapacity,
		Backends:    []string{BackendHwmon, BackendNVML},
		Hwmon: HwmonConfig{
			Root: DefaultHwmonRoot,
		},
		Log: LogConfig{
			Level: "info",
		},
		Display: DisplayConfig{
			WarningPercent:  50,
			CriticalPercent: 80,
			DefaultCritical: 100,
		},
	}
}
