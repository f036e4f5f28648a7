package report

import (
	"fmt"
	"strings"

	"github.com/nerrad567/smart-house-core/internal/device"
	"github.com/nerrad567/smart-house-core/internal/location"
)

// Logger defines the logging interface used by report providers.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// lineFormat is the per-room report line: house, room, device report.
const lineFormat = "Device was detected in %s, %s, dev: %s\n"

// Line renders a single report line for a device at a location.
func Line(loc location.Location, d device.Device) string {
	return fmt.Sprintf(lineFormat, loc.House, loc.Room, d.Report())
}

// Builder runs the report-building walk shared by every provider.
type Builder struct {
	missing MissingPolicy
	logger  Logger
}

// NewBuilder creates a builder with the silent missing-device policy.
func NewBuilder() *Builder {
	return &Builder{
		missing: SilentMissing,
		logger:  noopLogger{},
	}
}

// SetLogger sets the logger for the builder.
func (b *Builder) SetLogger(logger Logger) {
	b.logger = logger
}

// SetMissingPolicy sets the policy applied to devices found in no room.
// A nil policy restores SilentMissing.
func (b *Builder) SetMissingPolicy(p MissingPolicy) {
	if p == nil {
		p = SilentMissing
	}
	b.missing = p
}

// Build returns one line per room of h that lists d, in room order.
func (b *Builder) Build(h *location.House, d device.Device) string {
	var sb strings.Builder
	found := 0

	for _, room := range h.Rooms() {
		loc, err := h.DeviceLocation(room, d.Name())
		if err != nil {
			continue
		}
		sb.WriteString(Line(loc, d))
		found++
	}

	if found == 0 {
		b.logger.Debug("device not detected in any room", "house", h.Name(), "device", d.Name())
		sb.WriteString(b.missing(h, d))
	}
	return sb.String()
}

// base carries the builder shared by the provider types.
type base struct {
	builder *Builder
}

func newBase() base {
	return base{builder: NewBuilder()}
}

// SetLogger sets the logger used while building reports.
func (p *base) SetLogger(logger Logger) {
	p.builder.SetLogger(logger)
}

// SetMissingPolicy sets the policy applied to devices found in no room.
func (p *base) SetMissingPolicy(policy MissingPolicy) {
	p.builder.SetMissingPolicy(policy)
}
