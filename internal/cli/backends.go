package cli

import (
	"fmt"

	"github.com/rileyhilliard/senso/internal/config"
	"github.com/rileyhilliard/senso/internal/errors"
	"github.com/rileyhilliard/senso/internal/logger"
	"github.com/rileyhilliard/senso/internal/sensor"
	"github.com/rileyhilliard/senso/internal/sensor/gpu"
	"github.com/rileyhilliard/senso/internal/sensor/hwmon"
)

// backendOpener starts one named backend.
type backendOpener func(cfg *config.Config, log logger.Logger) (sensor.Backend, error)

// backendOpeners maps config names to constructors. Tests replace entries.
var backendOpeners = map[string]backendOpener{
	config.BackendHwmon: func(cfg *config.Config, log logger.Logger) (sensor.Backend, error) {
		return hwmon.NewOS(cfg.Hwmon.Root, log), nil
	},
	config.BackendNVML: func(cfg *config.Config, log logger.Logger) (sensor.Backend, error) {
		return gpu.New(log)
	},
}

// skippedBackend records a backend that could not be started.
type skippedBackend struct {
	Name string
	Err  error
}

// openBackends starts every configured backend in config order. Backends that
// fail to start are logged and returned as skipped. It is an error only when
// nothing could be started.
func openBackends(cfg *config.Config, log logger.Logger) (sensor.Backend, []skippedBackend, error) {
	var (
		opened  []sensor.Backend
		skipped []skippedBackend
	)

	for _, name := range cfg.Backends {
		open, ok := backendOpeners[name]
		if !ok {
			skipped = append(skipped, skippedBackend{Name: name, Err: fmt.Errorf("unknown backend %q", name)})
			continue
		}
		b, err := open(cfg, log)
		if err != nil {
			log.Warn("backend %s unavailable: %v", name, err)
			skipped = append(skipped, skippedBackend{Name: name, Err: err})
			continue
		}
		log.Info("backend %s started", name)
		opened = append(opened, b)
	}

	if len(opened) == 0 {
		return nil, skipped, errors.New(errors.ErrSensor,
			"No sensor backend could be started",
			"Check that /sys/class/hwmon exists or that the NVIDIA driver is loaded.")
	}
	if len(opened) == 1 {
		return opened[0], skipped, nil
	}
	return sensor.Combine(opened...), skipped, nil
}
