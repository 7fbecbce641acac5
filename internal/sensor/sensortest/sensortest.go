// Package sensortest provides an in-memory sensor backend for tests.
package sensortest

import (
	"fmt"
	"sync"

	"github.com/rileyhilliard/senso/internal/sensor"
)

// Backend is a sensor.Backend whose chip list can be replaced between calls.
type Backend struct {
	mu     sync.Mutex
	name   string
	chips  []sensor.Chip
	err    error
	calls  int
	closed bool
}

// New creates a backend that returns chips on every enumeration.
func New(chips ...sensor.Chip) *Backend {
	return &Backend{name: "fake", chips: chips}
}

// Named sets the backend name and returns b.
func (b *Backend) Named(name string) *Backend {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.name = name
	return b
}

// SetChips replaces the chips returned by later enumerations.
func (b *Backend) SetChips(chips ...sensor.Chip) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.chips = chips
}

// SetError makes later enumerations fail with err. Pass nil to recover.
func (b *Backend) SetError(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.err = err
}

// Calls returns how many times Chips was called.
func (b *Backend) Calls() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls
}

// Closed reports whether Close was called.
func (b *Backend) Closed() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.closed
}

func (b *Backend) Name() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.name
}

func (b *Backend) Chips() ([]sensor.Chip, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls++
	if b.err != nil {
		return nil, b.err
	}
	out := make([]sensor.Chip, len(b.chips))
	copy(out, b.chips)
	return out, nil
}

func (b *Backend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	return nil
}

// Chip builds a chip with the given id. The prefix and name derive from id.
func Chip(id string, features ...sensor.Feature) sensor.Chip {
	return sensor.Chip{
		ID:       sensor.ChipID("fake:" + id),
		Name:     fmt.Sprintf("%s-virtual-0", id),
		Prefix:   id,
		Bus:      "virtual",
		Features: features,
	}
}

// Temp builds a temperature feature with an input reading.
func Temp(label string, input float64) sensor.Feature {
	return sensor.Feature{
		Name:        "temp",
		Label:       label,
		Kind:        sensor.KindTemperature,
		SubFeatures: []sensor.SubFeature{{Name: "temp_input", Kind: sensor.SubInput, Value: input}},
	}
}

// TempWithCrit builds a temperature feature with input and critical readings.
func TempWithCrit(label string, input, crit float64) sensor.Feature {
	f := Temp(label, input)
	f.SubFeatures = append(f.SubFeatures, sensor.SubFeature{Name: "temp_crit", Kind: sensor.SubCrit, Value: crit})
	return f
}

// Fan builds a fan feature with an input reading.
func Fan(label string, rpm float64) sensor.Feature {
	return sensor.Feature{
		Name:        "fan",
		Label:       label,
		Kind:        sensor.KindFan,
		SubFeatures: []sensor.SubFeature{{Name: "fan_input", Kind: sensor.SubInput, Value: rpm}},
	}
}
