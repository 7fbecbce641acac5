package monitor

import (
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/senso/internal/history"
	"github.com/rileyhilliard/senso/internal/logger"
	"github.com/rileyhilliard/senso/internal/sensor"
	"github.com/rileyhilliard/senso/internal/sensor/hwmon"
	"github.com/rileyhilliard/senso/internal/sensor/sensortest"
)

func TestSampler_RecordsEachTick(t *testing.T) {
	fake := sensortest.New(sensortest.Chip("coretemp", sensortest.Temp("Core 0", 45.0)))
	store := history.NewStore()
	s := NewSampler(sensor.NewRegistry(fake), store, history.DefaultCapacity, logger.Noop())

	n, err := s.Tick()
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, ok := store.Series("Core 0")
	require.True(t, ok)
	assert.Equal(t, []float64{45.0}, got)

	fake.SetChips(sensortest.Chip("coretemp", sensortest.Temp("Core 0", 46.0)))
	_, err = s.Tick()
	require.NoError(t, err)

	got, _ = store.Series("Core 0")
	assert.Equal(t, []float64{45.0, 46.0}, got)
}

func TestSampler_OnlyTemperatureFeatures(t *testing.T) {
	fake := sensortest.New(sensortest.Chip("it87",
		sensortest.Temp("SYSTIN", 33),
		sensortest.Fan("fan1", 1100),
	))
	store := history.NewStore()
	s := NewSampler(sensor.NewRegistry(fake), store, 10, logger.Noop())

	n, err := s.Tick()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, []string{"SYSTIN"}, store.Labels())
}

func TestSampler_MissingInputRecordsZero(t *testing.T) {
	feature := sensor.Feature{
		Name:        "temp1",
		Label:       "Tctl",
		Kind:        sensor.KindTemperature,
		SubFeatures: []sensor.SubFeature{{Name: "temp1_crit", Kind: sensor.SubCrit, Value: 95}},
	}
	fake := sensortest.New(sensortest.Chip("k10temp", feature))
	store := history.NewStore()
	s := NewSampler(sensor.NewRegistry(fake), store, 10, logger.Noop())

	_, err := s.Tick()
	require.NoError(t, err)

	got, ok := store.Series("Tctl")
	require.True(t, ok)
	assert.Equal(t, []float64{0}, got)
}

func TestSampler_UnreadableHwmonInputRecordsZero(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/sys/class/hwmon/hwmon0", 0o755))
	write := func(name, content string) {
		require.NoError(t, afero.WriteFile(fs, "/sys/class/hwmon/hwmon0/"+name, []byte(content), 0o644))
	}
	write("name", "coretemp\n")
	write("temp1_label", "Core 0\n")
	write("temp1_input", "45000\n")

	store := history.NewStore()
	backend := hwmon.New(fs, "/sys/class/hwmon", logger.Noop())
	s := NewSampler(sensor.NewRegistry(backend), store, 10, logger.Noop())

	n, err := s.Tick()
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	write("temp1_input", "\x00\xff")
	n, err = s.Tick()
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, ok := store.Series("Core 0")
	require.True(t, ok)
	assert.Equal(t, []float64{45.0, 0.0}, got)
}

func TestSampler_SharedLabelsInterleave(t *testing.T) {
	fake := sensortest.New(
		sensortest.Chip("acpitz", sensortest.Temp("temp1", 30)),
		sensortest.Chip("nvme", sensortest.Temp("temp1", 40)),
	)
	store := history.NewStore()
	s := NewSampler(sensor.NewRegistry(fake), store, 10, logger.Noop())

	_, err := s.Tick()
	require.NoError(t, err)

	got, _ := store.Series("temp1")
	assert.Equal(t, []float64{30, 40}, got)
}

func TestSampler_CapacityBoundsSeries(t *testing.T) {
	fake := sensortest.New()
	store := history.NewStore()
	s := NewSampler(sensor.NewRegistry(fake), store, 3, logger.Noop())

	for i := 1; i <= 5; i++ {
		fake.SetChips(sensortest.Chip("cpu", sensortest.Temp("Package id 0", float64(i))))
		_, err := s.Tick()
		require.NoError(t, err)
	}

	got, _ := store.Series("Package id 0")
	assert.Equal(t, []float64{3, 4, 5}, got)
}

func TestSampler_DefaultCapacity(t *testing.T) {
	s := NewSampler(sensor.NewRegistry(sensortest.New()), history.NewStore(), 0, nil)
	assert.Equal(t, history.DefaultCapacity, s.capacity)
}

func TestSampler_EnumerationErrorReturned(t *testing.T) {
	fake := sensortest.New()
	boom := errors.New("nvml: driver not loaded")
	fake.SetError(boom)
	store := history.NewStore()
	s := NewSampler(sensor.NewRegistry(fake), store, 10, logger.Noop())

	n, err := s.Tick()
	assert.ErrorIs(t, err, boom)
	assert.Zero(t, n)
	assert.Zero(t, store.Len())
}

func TestSampler_NoChipsIsNotAnError(t *testing.T) {
	s := NewSampler(sensor.NewRegistry(sensortest.New()), history.NewStore(), 10, logger.Noop())

	n, err := s.Tick()
	require.NoError(t, err)
	assert.Zero(t, n)
}
