package sensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFeature_DisplayLabel(t *testing.T) {
	assert.Equal(t, "Core 0", Feature{Name: "temp2", Label: "Core 0"}.DisplayLabel())
	assert.Equal(t, "temp2", Feature{Name: "temp2"}.DisplayLabel())
}

func TestFeature_Readings(t *testing.T) {
	f := Feature{
		Name: "temp1",
		Kind: KindTemperature,
		SubFeatures: []SubFeature{
			{Name: "temp1_input", Kind: SubInput, Value: 42.5},
			{Name: "temp1_crit", Kind: SubCrit, Value: 95},
		},
	}

	assert.Equal(t, 42.5, f.Current())
	assert.Equal(t, 95.0, f.Critical(100))

	v, ok := f.Value(SubMax)
	assert.False(t, ok)
	assert.Zero(t, v)
}

func TestFeature_DefaultsWhenMissing(t *testing.T) {
	f := Feature{Name: "temp1", Kind: KindTemperature}

	assert.Equal(t, 0.0, f.Current())
	assert.Equal(t, 100.0, f.Critical(100))
}

func TestChip_DisplayNameAndTemperatures(t *testing.T) {
	c := Chip{
		ID:     "hwmon:hwmon1",
		Name:   "coretemp-isa-0000",
		Prefix: "coretemp",
		Features: []Feature{
			{Name: "fan1", Kind: KindFan},
			{Name: "temp1", Label: "Package id 0", Kind: KindTemperature},
			{Name: "temp2", Label: "Core 0", Kind: KindTemperature},
		},
	}

	assert.Equal(t, "coretemp/coretemp-isa-0000", c.DisplayName())

	temps := c.Temperatures()
	if assert.Len(t, temps, 2) {
		assert.Equal(t, "Package id 0", temps[0].DisplayLabel())
		assert.Equal(t, "Core 0", temps[1].DisplayLabel())
	}
}

func TestFeatureKind_StringAndUnit(t *testing.T) {
	tests := []struct {
		kind FeatureKind
		name string
		unit string
	}{
		{KindTemperature, "temperature", "°C"},
		{KindFan, "fan", "RPM"},
		{KindVoltage, "voltage", "V"},
		{KindPower, "power", "W"},
		{KindCurrent, "current", "A"},
		{KindHumidity, "humidity", "%"},
		{KindOther, "other", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.kind.String())
			assert.Equal(t, tt.unit, tt.kind.Unit())
		})
	}
}

func TestFeature_DisplayUnit(t *testing.T) {
	assert.Equal(t, "RPM", Feature{Kind: KindFan}.DisplayUnit())
	assert.Equal(t, "%", Feature{Kind: KindFan, Unit: "%"}.DisplayUnit())
}
