package layout

import (
	"github.com/nerrad567/smart-house-core/internal/device"
	"github.com/nerrad567/smart-house-core/internal/location"
	"github.com/nerrad567/smart-house-core/internal/report"
)

// Provider names accepted in a report definition.
const (
	ProviderOwning    = "owning"
	ProviderBorrowing = "borrowing"
	ProviderRegistry  = "registry"
)

// Layout is the decoded layout document.
type Layout struct {
	House   string       `yaml:"house"`
	Devices []DeviceSpec `yaml:"devices"`
	Rooms   []RoomSpec   `yaml:"rooms"`
	Reports []ReportSpec `yaml:"reports"`
}

// DeviceSpec defines one device and its initial state.
type DeviceSpec struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`

	// Socket state
	On      bool            `yaml:"on,omitempty"`
	Wattage *device.Wattage `yaml:"wattage,omitempty"`

	// Thermometer state
	Temperature *device.Temperature `yaml:"temperature,omitempty"`
}

// RoomSpec places previously defined devices in a room.
type RoomSpec struct {
	Name    string   `yaml:"name"`
	Devices []string `yaml:"devices,omitempty"`
}

// ReportSpec selects a provider and the devices it reports on.
type ReportSpec struct {
	Name        string   `yaml:"name,omitempty"`
	Provider    string   `yaml:"provider"`
	Socket      string   `yaml:"socket,omitempty"`
	Thermometer string   `yaml:"thermometer,omitempty"`
	Devices     []string `yaml:"devices,omitempty"`
}

// NamedReport is a provider ready to run against the plan's house.
type NamedReport struct {
	Name     string
	Provider report.Configurable
}

// Plan is the result of building a layout.
type Plan struct {
	House    *location.House
	Registry *device.Registry
	Reports  []NamedReport
}

// SetLogger sets the logger on every provider in the plan.
func (p *Plan) SetLogger(logger report.Logger) {
	for _, r := range p.Reports {
		r.Provider.SetLogger(logger)
	}
}

// SetMissingPolicy sets the missing-device policy on every provider in the plan.
func (p *Plan) SetMissingPolicy(policy report.MissingPolicy) {
	for _, r := range p.Reports {
		r.Provider.SetMissingPolicy(policy)
	}
}

// Run produces the text of every report, in plan order.
func (p *Plan) Run() []string {
	out := make([]string, 0, len(p.Reports))
	for _, r := range p.Reports {
		out = append(out, p.House.CreateReport(r.Provider))
	}
	return out
}
