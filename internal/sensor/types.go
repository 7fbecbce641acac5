package sensor

import "fmt"

// ChipID is a stable identity for a chip across enumerations.
// Backends prefix it with their own name, e.g. "hwmon:hwmon2" or "nvml:GPU-1a2b".
type ChipID string

// FeatureKind classifies what a feature measures.
type FeatureKind int

const (
	KindOther FeatureKind = iota
	KindTemperature
	KindFan
	KindVoltage
	KindPower
	KindCurrent
	KindHumidity
)

// String returns the display name of the kind.
func (k FeatureKind) String() string {
	switch k {
	case KindTemperature:
		return "temperature"
	case KindFan:
		return "fan"
	case KindVoltage:
		return "voltage"
	case KindPower:
		return "power"
	case KindCurrent:
		return "current"
	case KindHumidity:
		return "humidity"
	default:
		return "other"
	}
}

// Unit returns the unit suffix used when rendering readings of this kind.
func (k FeatureKind) Unit() string {
	switch k {
	case KindTemperature:
		return "°C"
	case KindFan:
		return "RPM"
	case KindVoltage:
		return "V"
	case KindPower:
		return "W"
	case KindCurrent:
		return "A"
	case KindHumidity:
		return "%"
	default:
		return ""
	}
}

// SubKind identifies one reading under a feature.
type SubKind string

const (
	SubInput     SubKind = "input"
	SubMax       SubKind = "max"
	SubMin       SubKind = "min"
	SubCrit      SubKind = "crit"
	SubCritAlarm SubKind = "crit_alarm"
	SubAlarm     SubKind = "alarm"
	SubLowest    SubKind = "lowest"
	SubHighest   SubKind = "highest"
	SubAverage   SubKind = "average"
)

// SubKinds lists every sub-reading kind in display order.
var SubKinds = []SubKind{
	SubInput, SubMax, SubMin, SubCrit, SubCritAlarm, SubAlarm, SubLowest, SubHighest, SubAverage,
}

// SubFeature is a single reading of a feature.
type SubFeature struct {
	Name  string
	Kind  SubKind
	Value float64
}

// Feature is a named metric on a chip.
type Feature struct {
	Name        string
	Label       string
	Kind        FeatureKind
	SubFeatures []SubFeature
	// Unit overrides the kind's default unit, e.g. "%" for GPU fan duty.
	Unit string
}

// DisplayUnit returns the unit readings of this feature are shown in.
func (f Feature) DisplayUnit() string {
	if f.Unit != "" {
		return f.Unit
	}
	return f.Kind.Unit()
}

// DisplayLabel returns the label, falling back to the raw feature name.
func (f Feature) DisplayLabel() string {
	if f.Label != "" {
		return f.Label
	}
	return f.Name
}

// Value returns the reading of the given kind.
func (f Feature) Value(kind SubKind) (float64, bool) {
	for _, sf := range f.SubFeatures {
		if sf.Kind == kind {
			return sf.Value, true
		}
	}
	return 0, false
}

// Current returns the input reading, or 0 when it is unavailable.
func (f Feature) Current() float64 {
	v, _ := f.Value(SubInput)
	return v
}

// Critical returns the critical threshold, or fallback when the chip
// does not report one.
func (f Feature) Critical(fallback float64) float64 {
	if v, ok := f.Value(SubCrit); ok && v > 0 {
		return v
	}
	return fallback
}

// Chip is a snapshot of one sensor device.
type Chip struct {
	ID       ChipID
	Name     string
	Prefix   string
	Bus      string
	Features []Feature
}

// DisplayName returns "prefix/name" as shown in the chip list.
func (c Chip) DisplayName() string {
	return fmt.Sprintf("%s/%s", c.Prefix, c.Name)
}

// Temperatures returns the chip's temperature features in order.
func (c Chip) Temperatures() []Feature {
	var temps []Feature
	for _, f := range c.Features {
		if f.Kind == KindTemperature {
			temps = append(temps, f)
		}
	}
	return temps
}
