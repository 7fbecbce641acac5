// Package gpu exposes NVIDIA GPUs as sensor chips through NVML.
package gpu

import (
	"errors"
	"fmt"
	"sync"

	"github.com/NVIDIA/go-nvml/pkg/nvml"

	"github.com/rileyhilliard/senso/internal/logger"
	"github.com/rileyhilliard/senso/internal/sensor"
)

// BackendName prefixes every chip ID produced by this backend.
const BackendName = "nvml"

const milliWattsToWatts = 1000

// ErrNVMLFailure wraps any non-success NVML return code.
var ErrNVMLFailure = errors.New("NVML operation failed")

// library is the subset of NVML the backend needs.
type library interface {
	Init() nvml.Return
	Shutdown() nvml.Return
	DeviceGetCount() (int, nvml.Return)
	DeviceGetHandleByIndex(index int) (nvml.Device, nvml.Return)
}

// systemLibrary calls the process-wide NVML bindings.
type systemLibrary struct{}

func (systemLibrary) Init() nvml.Return     { return nvml.Init() }
func (systemLibrary) Shutdown() nvml.Return { return nvml.Shutdown() }
func (systemLibrary) DeviceGetCount() (int, nvml.Return) {
	return nvml.DeviceGetCount()
}
func (systemLibrary) DeviceGetHandleByIndex(index int) (nvml.Device, nvml.Return) {
	return nvml.DeviceGetHandleByIndex(index)
}

// Backend reports one chip per GPU.
type Backend struct {
	lib  library
	log  logger.Logger
	once sync.Once
}

// New initializes NVML. It fails when the driver or library is unavailable.
func New(log logger.Logger) (*Backend, error) {
	return newBackend(systemLibrary{}, log)
}

func newBackend(lib library, log logger.Logger) (*Backend, error) {
	if log == nil {
		log = logger.Noop()
	}
	if ret := lib.Init(); ret != nvml.SUCCESS {
		return nil, nvmlError(ret)
	}
	return &Backend{lib: lib, log: log}, nil
}

func nvmlError(ret nvml.Return) error {
	return fmt.Errorf("%w: %v", ErrNVMLFailure, nvml.ErrorString(ret))
}

func (b *Backend) Name() string {
	return BackendName
}

// Close shuts NVML down. Later calls are no-ops.
func (b *Backend) Close() error {
	var err error
	b.once.Do(func() {
		if ret := b.lib.Shutdown(); ret != nvml.SUCCESS {
			err = nvmlError(ret)
		}
	})
	return err
}

// Chips lists every GPU in device index order. A device whose UUID cannot be
// read has no stable identity and is skipped.
func (b *Backend) Chips() ([]sensor.Chip, error) {
	count, ret := b.lib.DeviceGetCount()
	if ret != nvml.SUCCESS {
		return nil, nvmlError(ret)
	}

	chips := make([]sensor.Chip, 0, count)
	for i := 0; i < count; i++ {
		device, ret := b.lib.DeviceGetHandleByIndex(i)
		if ret != nvml.SUCCESS {
			b.log.Debug("nvml: device %d: %v", i, nvml.ErrorString(ret))
			continue
		}
		chip, err := b.readDevice(device)
		if err != nil {
			b.log.Debug("nvml: device %d: %v", i, err)
			continue
		}
		chips = append(chips, chip)
	}
	return chips, nil
}

func (b *Backend) readDevice(device nvml.Device) (sensor.Chip, error) {
	uuid, ret := device.GetUUID()
	if ret != nvml.SUCCESS {
		return sensor.Chip{}, nvmlError(ret)
	}
	name, ret := device.GetName()
	if ret != nvml.SUCCESS {
		name = uuid
	}

	features := []sensor.Feature{b.temperature(device)}
	features = append(features, b.fans(device)...)
	if power, ok := b.power(device); ok {
		features = append(features, power)
	}

	return sensor.Chip{
		ID:       sensor.ChipID(BackendName + ":" + uuid),
		Name:     name,
		Prefix:   "nvidia",
		Bus:      "pci",
		Features: features,
	}, nil
}

// temperature reports the core temperature with the slowdown threshold as
// max and the shutdown threshold as crit.
func (b *Backend) temperature(device nvml.Device) sensor.Feature {
	f := sensor.Feature{Name: "temp1", Label: "GPU", Kind: sensor.KindTemperature}

	if temp, ret := device.GetTemperature(nvml.TEMPERATURE_GPU); ret == nvml.SUCCESS {
		f.SubFeatures = append(f.SubFeatures, sensor.SubFeature{Name: "temp1_input", Kind: sensor.SubInput, Value: float64(temp)})
	} else {
		b.log.Debug("nvml: temperature: %v", nvml.ErrorString(ret))
	}
	if limit, ret := device.GetTemperatureThreshold(nvml.TEMPERATURE_THRESHOLD_SLOWDOWN); ret == nvml.SUCCESS {
		f.SubFeatures = append(f.SubFeatures, sensor.SubFeature{Name: "temp1_max", Kind: sensor.SubMax, Value: float64(limit)})
	}
	if limit, ret := device.GetTemperatureThreshold(nvml.TEMPERATURE_THRESHOLD_SHUTDOWN); ret == nvml.SUCCESS {
		f.SubFeatures = append(f.SubFeatures, sensor.SubFeature{Name: "temp1_crit", Kind: sensor.SubCrit, Value: float64(limit)})
	}
	return f
}

// fans reports each fan's duty as a percentage.
func (b *Backend) fans(device nvml.Device) []sensor.Feature {
	count, ret := device.GetNumFans()
	if ret != nvml.SUCCESS {
		return nil
	}

	var features []sensor.Feature
	for i := 0; i < count; i++ {
		speed, ret := device.GetFanSpeed_v2(i)
		if ret != nvml.SUCCESS {
			b.log.Debug("nvml: fan %d: %v", i, nvml.ErrorString(ret))
			continue
		}
		name := fmt.Sprintf("fan%d", i+1)
		features = append(features, sensor.Feature{
			Name:  name,
			Label: fmt.Sprintf("Fan %d", i+1),
			Kind:  sensor.KindFan,
			Unit:  "%",
			SubFeatures: []sensor.SubFeature{
				{Name: name + "_input", Kind: sensor.SubInput, Value: float64(speed)},
			},
		})
	}
	return features
}

func (b *Backend) power(device nvml.Device) (sensor.Feature, bool) {
	usage, ret := device.GetPowerUsage()
	if ret != nvml.SUCCESS {
		return sensor.Feature{}, false
	}
	return sensor.Feature{
		Name:  "power1",
		Label: "Power",
		Kind:  sensor.KindPower,
		SubFeatures: []sensor.SubFeature{
			{Name: "power1_input", Kind: sensor.SubInput, Value: float64(usage) / milliWattsToWatts},
		},
	}, true
}
