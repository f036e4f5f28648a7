package report

import (
	"strings"

	"github.com/nerrad567/smart-house-core/internal/device"
	"github.com/nerrad567/smart-house-core/internal/location"
)

// Provider produces a report for a house.
type Provider = location.Reporter

// Configurable is a Provider whose logger and missing-device policy can be set.
type Configurable interface {
	Provider
	SetLogger(logger Logger)
	SetMissingPolicy(policy MissingPolicy)
}

// Compile-time interface checks.
var (
	_ Configurable = (*OwningProvider)(nil)
	_ Configurable = (*BorrowingProvider)(nil)
	_ Configurable = (*RegistryProvider)(nil)
)

// OwningProvider reports on a single socket it owns exclusively.
type OwningProvider struct {
	base
	socket *device.Socket
}

// NewOwningProvider takes a private copy of s. Later changes to s are not
// seen by the provider.
func NewOwningProvider(s *device.Socket) *OwningProvider {
	return &OwningProvider{
		base:   newBase(),
		socket: s.Clone(),
	}
}

// Socket returns the owned socket.
func (p *OwningProvider) Socket() *device.Socket {
	return p.socket
}

// CreateReport reports every room of h that holds the owned socket.
func (p *OwningProvider) CreateReport(h *location.House) string {
	return p.builder.Build(h, p.socket)
}

// BorrowingProvider reports on a socket and a thermometer owned elsewhere.
// Both must stay alive while the provider is in use.
type BorrowingProvider struct {
	base
	socket *device.Socket
	thermo *device.Thermometer
}

// NewBorrowingProvider references s and t without copying them.
func NewBorrowingProvider(s *device.Socket, t *device.Thermometer) *BorrowingProvider {
	return &BorrowingProvider{
		base:   newBase(),
		socket: s,
		thermo: t,
	}
}

// CreateReport returns the socket's lines followed by the thermometer's.
func (p *BorrowingProvider) CreateReport(h *location.House) string {
	var sb strings.Builder
	sb.WriteString(p.builder.Build(h, p.socket))
	sb.WriteString(p.builder.Build(h, p.thermo))
	return sb.String()
}

// RegistryProvider reports on devices identified by registry handles.
// Handles are resolved on every report, so the provider never holds a
// device reference between calls.
type RegistryProvider struct {
	base
	registry *device.Registry
	handles  []device.Handle
}

// NewRegistryProvider creates a provider over the given handles, reported in order.
func NewRegistryProvider(reg *device.Registry, handles ...device.Handle) *RegistryProvider {
	hs := make([]device.Handle, len(handles))
	copy(hs, handles)
	return &RegistryProvider{
		base:     newBase(),
		registry: reg,
		handles:  hs,
	}
}

// Handles returns the tracked handles in report order.
func (p *RegistryProvider) Handles() []device.Handle {
	hs := make([]device.Handle, len(p.handles))
	copy(hs, p.handles)
	return hs
}

// CreateReport resolves each handle and concatenates the per-device lines.
// Handles that no longer resolve are skipped.
func (p *RegistryProvider) CreateReport(h *location.House) string {
	var sb strings.Builder
	for _, handle := range p.handles {
		d, err := p.registry.Get(handle)
		if err != nil {
			p.builder.logger.Warn("skipping unresolved device handle", "handle", handle, "error", err)
			continue
		}
		sb.WriteString(p.builder.Build(h, d))
	}
	return sb.String()
}
