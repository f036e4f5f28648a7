package layout

import (
	"fmt"
	"strings"

	"github.com/nerrad567/smart-house-core/internal/device"
	"github.com/nerrad567/smart-house-core/internal/location"
)

// Validate checks the layout for structural errors and dangling references.
// Returns an error describing the first failure found.
func (l *Layout) Validate() error {
	if err := location.ValidateName(l.House); err != nil {
		return fmt.Errorf("%w: house: %w", ErrInvalidLayout, err)
	}

	kinds := make(map[string]device.Kind, len(l.Devices))
	for i, d := range l.Devices {
		kind, err := validateDevice(d)
		if err != nil {
			return fmt.Errorf("devices[%d]: %w", i, err)
		}
		if _, dup := kinds[d.Name]; dup {
			return fmt.Errorf("devices[%d]: %w: %q", i, ErrDuplicateDevice, d.Name)
		}
		kinds[d.Name] = kind
	}

	for i, r := range l.Rooms {
		if err := location.ValidateName(r.Name); err != nil {
			return fmt.Errorf("rooms[%d]: %w: %w", i, ErrInvalidLayout, err)
		}
		for _, ref := range r.Devices {
			if _, ok := kinds[ref]; !ok {
				return fmt.Errorf("rooms[%d] %q: %w: %q", i, r.Name, ErrUnknownDevice, ref)
			}
		}
	}

	for i, rs := range l.Reports {
		if err := validateReport(rs, kinds); err != nil {
			return fmt.Errorf("reports[%d]: %w", i, err)
		}
	}

	return nil
}

// validateDevice checks a single device definition and returns its kind.
func validateDevice(d DeviceSpec) (device.Kind, error) {
	if err := device.ValidateName(d.Name); err != nil {
		return "", err
	}

	kind, err := device.ParseKind(d.Kind)
	if err != nil {
		return "", err
	}

	switch kind {
	case device.KindSocket:
		if d.Temperature != nil {
			return "", fmt.Errorf("%w: socket %q cannot have a temperature", ErrInvalidLayout, d.Name)
		}
	case device.KindThermometer:
		if d.On || d.Wattage != nil {
			return "", fmt.Errorf("%w: thermometer %q cannot have power state", ErrInvalidLayout, d.Name)
		}
	}
	return kind, nil
}

// validateReport checks a report definition against the defined devices.
func validateReport(rs ReportSpec, kinds map[string]device.Kind) error {
	switch strings.ToLower(rs.Provider) {
	case ProviderOwning:
		return requireKind(rs.Socket, device.KindSocket, kinds)
	case ProviderBorrowing:
		if err := requireKind(rs.Socket, device.KindSocket, kinds); err != nil {
			return err
		}
		return requireKind(rs.Thermometer, device.KindThermometer, kinds)
	case ProviderRegistry:
		if len(rs.Devices) == 0 {
			return fmt.Errorf("%w: registry provider needs at least one device", ErrInvalidLayout)
		}
		for _, ref := range rs.Devices {
			if _, ok := kinds[ref]; !ok {
				return fmt.Errorf("%w: %q", ErrUnknownDevice, ref)
			}
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidProvider, rs.Provider)
	}
}

// requireKind checks that ref names a defined device of the wanted kind.
func requireKind(ref string, want device.Kind, kinds map[string]device.Kind) error {
	if ref == "" {
		return fmt.Errorf("%w: %s is required", ErrInvalidLayout, want)
	}
	got, ok := kinds[ref]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownDevice, ref)
	}
	if got != want {
		return fmt.Errorf("%w: %q is a %s, not a %s", device.ErrKindMismatch, ref, got, want)
	}
	return nil
}
