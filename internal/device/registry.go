package device

import (
	"fmt"
	"sync"
)

// Logger defines the logging interface used by the Registry.
// This allows different logging implementations to be used.
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

// Handle is a stable identifier for a device owned by a Registry.
type Handle string

// Registry owns devices and hands out stable handles to them.
//
// Rooms and providers may keep handles instead of direct references and
// resolve them at report time. Handles stay valid for the life of the
// registry; devices are never removed.
//
// All public methods are thread-safe.
type Registry struct {
	mu      sync.RWMutex
	devices map[Handle]Device
	order   []Handle // Insertion order for List and FindByName
	logger  Logger
}

// NewRegistry creates an empty device registry.
func NewRegistry() *Registry {
	return &Registry{
		devices: make(map[Handle]Device),
		logger:  noopLogger{},
	}
}

// SetLogger sets the logger for the registry.
func (r *Registry) SetLogger(logger Logger) {
	r.logger = logger
}

// Add validates and registers a device, returning its new handle.
func (r *Registry) Add(d Device) (Handle, error) {
	if err := ValidateDevice(d); err != nil {
		return "", err
	}

	h := GenerateHandle()

	r.mu.Lock()
	r.devices[h] = d
	r.order = append(r.order, h)
	r.mu.Unlock()

	r.logger.Debug("device registered", "handle", h, "name", d.Name(), "kind", KindOf(d))
	return h, nil
}

// Get resolves a handle.
// Returns ErrDeviceNotFound if the handle is unknown.
func (r *Registry) Get(h Handle) (Device, error) {
	r.mu.RLock()
	d, ok := r.devices[h]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: handle %s", ErrDeviceNotFound, h)
	}
	return d, nil
}

// Socket resolves a handle that must refer to a Socket.
func (r *Registry) Socket(h Handle) (*Socket, error) {
	d, err := r.Get(h)
	if err != nil {
		return nil, err
	}
	s, ok := d.(*Socket)
	if !ok {
		return nil, fmt.Errorf("%w: %s is a %s, not a socket", ErrKindMismatch, d.Name(), KindOf(d))
	}
	return s, nil
}

// Thermometer resolves a handle that must refer to a Thermometer.
func (r *Registry) Thermometer(h Handle) (*Thermometer, error) {
	d, err := r.Get(h)
	if err != nil {
		return nil, err
	}
	t, ok := d.(*Thermometer)
	if !ok {
		return nil, fmt.Errorf("%w: %s is a %s, not a thermometer", ErrKindMismatch, d.Name(), KindOf(d))
	}
	return t, nil
}

// FindByName returns the handle of the first registered device with the given name.
// Returns ErrDeviceNotFound if no device has that name.
func (r *Registry) FindByName(name string) (Handle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, h := range r.order {
		if r.devices[h].Name() == name {
			return h, nil
		}
	}
	return "", fmt.Errorf("%w: name %q", ErrDeviceNotFound, name)
}

// List returns all handles in registration order.
func (r *Registry) List() []Handle {
	r.mu.RLock()
	defer r.mu.RUnlock()

	handles := make([]Handle, len(r.order))
	copy(handles, r.order)
	return handles
}

// Count returns the number of registered devices.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.devices)
}

// Stats returns registry statistics for monitoring.
type Stats struct {
	TotalDevices int
	ByKind       map[Kind]int
}

// GetStats returns current registry statistics.
func (r *Registry) GetStats() Stats {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := Stats{
		TotalDevices: len(r.devices),
		ByKind:       make(map[Kind]int),
	}
	for _, d := range r.devices {
		stats.ByKind[KindOf(d)]++
	}
	return stats
}
