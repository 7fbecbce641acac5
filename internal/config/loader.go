package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/rileyhilliard/senso/internal/errors"
)

const (
	// ConfigFileName is the per-directory config file name.
	ConfigFileName = ".senso.yaml"
	// GlobalConfigDir is the directory for global config.
	GlobalConfigDir = ".config/senso"
	// GlobalConfigFile is the global config file name.
	GlobalConfigFile = "config.yaml"
	// EnvPrefix prefixes environment overrides, e.g. SENSO_TICK_RATE.
	EnvPrefix = "SENSO"
	// EnvFile is loaded from the working directory before env binding.
	EnvFile = ".env"
)

// Find locates the config file using the search order:
// 1. Explicit path (from --config flag)
// 2. .senso.yaml in current directory
// 3. ~/.config/senso/config.yaml (global defaults)
//
// Returns the path to the config file, or empty string if not found.
func Find(explicit string) (string, error) {
	// 1. Explicit path takes precedence
	if explicit != "" {
		path := ExpandTilde(explicit)
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				return "", errors.WrapWithCode(err, errors.ErrConfig,
					"Specified config file not found: "+explicit,
					"Check the path is correct")
			}
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot access config file: "+explicit,
				"Check file permissions")
		}
		return path, nil
	}

	// 2. Current directory
	cwd, err := os.Getwd()
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot determine current directory",
			"Check directory permissions")
	}

	localConfig := filepath.Join(cwd, ConfigFileName)
	if _, err := os.Stat(localConfig); err == nil {
		return localConfig, nil
	}

	// 3. Global config
	if home, err := os.UserHomeDir(); err == nil {
		globalConfig := filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
		if _, err := os.Stat(globalConfig); err == nil {
			return globalConfig, nil
		}
	}

	return "", nil
}

// Load reads config from path, layering SENSO_* environment variables (and a
// .env file in the working directory) over the file and the defaults.
// An empty path loads defaults and environment only.
func Load(path string) (*Config, error) {
	// A missing .env is the common case.
	_ = godotenv.Load(EnvFile)

	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			if os.IsNotExist(err) {
				return nil, errors.WrapWithCode(err, errors.ErrConfig,
					"Config file not found",
					"Run 'senso config > "+ConfigFileName+"' to create one, or specify one with --config")
			}
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to read config file",
				"Check the file exists and is valid YAML")
		}
	}

	return parseConfig(v, path)
}

// Resolve finds and loads the config in one step.
// It returns the config and the path it was read from ("" for defaults).
func Resolve(explicit string) (*Config, string, error) {
	path, err := Find(explicit)
	if err != nil {
		return nil, "", err
	}
	cfg, err := Load(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

// newViper creates a viper instance with defaults and env binding.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

// setDefaults registers every key so AutomaticEnv can override it.
func setDefaults(v *viper.Viper) {
	def := DefaultConfig()
	v.SetDefault("tick_rate", def.TickRate.String())
	v.SetDefault("history_size", def.HistorySize)
	v.SetDefault("backends", def.Backends)
	v.SetDefault("hwmon.root", def.Hwmon.Root)
	v.SetDefault("log.file", def.Log.File)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("display.warning_percent", def.Display.WarningPercent)
	v.SetDefault("display.critical_percent", def.Display.CriticalPercent)
	v.SetDefault("display.default_critical", def.Display.DefaultCritical)
}

// parseConfig converts viper config to our Config struct with defaults merged in.
func parseConfig(v *viper.Viper, path string) (*Config, error) {
	cfg := DefaultConfig()

	if err := v.Unmarshal(cfg); err != nil {
		source := "your environment"
		if path != "" {
			source = path
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid config format",
			"Check the values in "+source)
	}

	cfg.Hwmon.Root = Expand(cfg.Hwmon.Root)
	cfg.Log.File = Expand(cfg.Log.File)

	return cfg, nil
}
