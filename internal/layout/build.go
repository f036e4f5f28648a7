package layout

import (
	"fmt"
	"strings"

	"github.com/nerrad567/smart-house-core/internal/device"
	"github.com/nerrad567/smart-house-core/internal/location"
	"github.com/nerrad567/smart-house-core/internal/report"
)

// Build registers the layout's devices in reg and wires the house and
// report providers. A nil reg gets a fresh registry.
//
// Rooms hold the registered devices themselves, so later state changes made
// through the registry show up in borrowing and registry reports. Owning
// providers take their own copy at build time.
func (l *Layout) Build(reg *device.Registry) (*Plan, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	if reg == nil {
		reg = device.NewRegistry()
	}

	handles := make(map[string]device.Handle, len(l.Devices))
	for _, spec := range l.Devices {
		h, err := reg.Add(newDevice(spec))
		if err != nil {
			return nil, fmt.Errorf("registering %q: %w", spec.Name, err)
		}
		handles[spec.Name] = h
	}

	house := location.NewHouse(l.House)
	for _, rs := range l.Rooms {
		room := location.NewRoom(rs.Name)
		for _, ref := range rs.Devices {
			d, err := reg.Get(handles[ref])
			if err != nil {
				return nil, fmt.Errorf("room %q: %w", rs.Name, err)
			}
			room.AddDevice(d)
		}
		house.AddRoom(room)
	}

	plan := &Plan{House: house, Registry: reg}
	for i, rs := range l.Reports {
		p, err := buildProvider(rs, reg, handles)
		if err != nil {
			return nil, fmt.Errorf("reports[%d]: %w", i, err)
		}
		name := rs.Name
		if name == "" {
			name = fmt.Sprintf("report-%d", i+1)
		}
		plan.Reports = append(plan.Reports, NamedReport{Name: name, Provider: p})
	}

	return plan, nil
}

// newDevice creates a device in the state described by spec.
// spec must already be validated.
func newDevice(spec DeviceSpec) device.Device {
	kind, _ := device.ParseKind(spec.Kind)
	if kind == device.KindThermometer {
		t := device.NewThermometer(spec.Name)
		if spec.Temperature != nil {
			t.SetTemperature(*spec.Temperature)
		}
		return t
	}

	s := device.NewSocket(spec.Name)
	if spec.Wattage != nil {
		s.SetWattage(*spec.Wattage)
	}
	if spec.On {
		s.PlugIn()
	}
	return s
}

// buildProvider constructs the provider a report definition asks for.
func buildProvider(rs ReportSpec, reg *device.Registry, handles map[string]device.Handle) (report.Configurable, error) {
	switch strings.ToLower(rs.Provider) {
	case ProviderOwning:
		s, err := reg.Socket(handles[rs.Socket])
		if err != nil {
			return nil, err
		}
		return report.NewOwningProvider(s), nil

	case ProviderBorrowing:
		s, err := reg.Socket(handles[rs.Socket])
		if err != nil {
			return nil, err
		}
		t, err := reg.Thermometer(handles[rs.Thermometer])
		if err != nil {
			return nil, err
		}
		return report.NewBorrowingProvider(s, t), nil

	case ProviderRegistry:
		hs := make([]device.Handle, 0, len(rs.Devices))
		for _, ref := range rs.Devices {
			hs = append(hs, handles[ref])
		}
		return report.NewRegistryProvider(reg, hs...), nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidProvider, rs.Provider)
	}
}
