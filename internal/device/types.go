package device

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Device is a named entity with a state-dependent textual report.
//
// Implementations must keep Name stable for the lifetime of the value and
// must not mutate state inside Report.
type Device interface {
	// Name returns the immutable identifier of the device.
	Name() string

	// Report renders the current state as a single human-readable line.
	Report() string
}

// Kind classifies the concrete device type.
type Kind string

// Kind constants.
const (
	KindSocket      Kind = "socket"
	KindThermometer Kind = "thermometer"
)

// AllKinds returns all valid kind values.
func AllKinds() []Kind {
	return []Kind{KindSocket, KindThermometer}
}

// KindOf returns the kind of a concrete device, or "" for foreign implementations.
func KindOf(d Device) Kind {
	switch d.(type) {
	case *Socket:
		return KindSocket
	case *Thermometer:
		return KindThermometer
	default:
		return ""
	}
}

// ParseKind converts a string to a Kind (case-insensitive).
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, valid := range AllKinds() {
		if k == valid {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidKind, s)
}

// WattageUnit is the unit a socket reports its power draw in.
type WattageUnit int

// Wattage units.
const (
	Milliwatt WattageUnit = iota
	Gigawatt
)

// String returns the short form used in reports ("mw", "gw").
func (u WattageUnit) String() string {
	switch u {
	case Milliwatt:
		return "mw"
	case Gigawatt:
		return "gw"
	default:
		return fmt.Sprintf("WattageUnit(%d)", int(u))
	}
}

// ParseWattageUnit converts "mw"/"milliwatt" or "gw"/"gigawatt" to a WattageUnit.
func ParseWattageUnit(s string) (WattageUnit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mw", "milliwatt":
		return Milliwatt, nil
	case "gw", "gigawatt":
		return Gigawatt, nil
	default:
		return 0, fmt.Errorf("%w: wattage %q", ErrInvalidUnit, s)
	}
}

// UnmarshalYAML decodes a wattage unit from its short or long name.
func (u *WattageUnit) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := ParseWattageUnit(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*u = parsed
	return nil
}

// MarshalYAML encodes the unit as its short name.
func (u WattageUnit) MarshalYAML() (any, error) {
	return u.String(), nil
}

// TemperatureUnit is the scale a thermometer reports in.
type TemperatureUnit int

// Temperature units.
const (
	Celsius TemperatureUnit = iota
	Fahrenheit
)

// String returns the short form used in reports ("c", "f").
func (u TemperatureUnit) String() string {
	switch u {
	case Celsius:
		return "c"
	case Fahrenheit:
		return "f"
	default:
		return fmt.Sprintf("TemperatureUnit(%d)", int(u))
	}
}

// ParseTemperatureUnit converts "c"/"celsius" or "f"/"fahrenheit" to a TemperatureUnit.
func ParseTemperatureUnit(s string) (TemperatureUnit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "c", "celsius":
		return Celsius, nil
	case "f", "fahrenheit":
		return Fahrenheit, nil
	default:
		return 0, fmt.Errorf("%w: temperature %q", ErrInvalidUnit, s)
	}
}

// UnmarshalYAML decodes a temperature unit from its short or long name.
func (u *TemperatureUnit) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := ParseTemperatureUnit(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*u = parsed
	return nil
}

// MarshalYAML encodes the unit as its short name.
func (u TemperatureUnit) MarshalYAML() (any, error) {
	return u.String(), nil
}

// Wattage is a power reading with its unit.
type Wattage struct {
	Value uint64      `yaml:"value"`
	Unit  WattageUnit `yaml:"unit"`
}

// String renders the reading as "{value} {unit}".
func (w Wattage) String() string {
	return fmt.Sprintf("%d %s", w.Value, w.Unit)
}

// Temperature is a temperature reading with its unit.
type Temperature struct {
	Value uint64          `yaml:"value"`
	Unit  TemperatureUnit `yaml:"unit"`
}

// String renders the reading as "{value} {unit}".
func (t Temperature) String() string {
	return fmt.Sprintf("%d %s", t.Value, t.Unit)
}
