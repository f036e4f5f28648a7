package device

import (
	"fmt"
	"sync"
)

// Socket is a power outlet that reports whether it is on and how much it draws.
type Socket struct {
	name string

	mu      sync.RWMutex
	on      bool
	wattage Wattage
}

// NewSocket creates a powered-off socket drawing 0 mw.
func NewSocket(name string) *Socket {
	return &Socket{
		name:    name,
		wattage: Wattage{Value: 0, Unit: Milliwatt},
	}
}

// Name returns the socket name.
func (s *Socket) Name() string {
	return s.name
}

// Report renders "socket {name} is off" or "socket {name} - {value} {unit}".
func (s *Socket) Report() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.on {
		return fmt.Sprintf("socket %s is off", s.name)
	}
	return fmt.Sprintf("socket %s - %s", s.name, s.wattage)
}

// PlugIn switches the socket on.
func (s *Socket) PlugIn() {
	s.mu.Lock()
	s.on = true
	s.mu.Unlock()
}

// PlugOut switches the socket off.
func (s *Socket) PlugOut() {
	s.mu.Lock()
	s.on = false
	s.mu.Unlock()
}

// IsOn reports whether the socket is powered.
func (s *Socket) IsOn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.on
}

// Wattage returns the current power reading.
func (s *Socket) Wattage() Wattage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.wattage
}

// SetWattage records a new power reading.
func (s *Socket) SetWattage(w Wattage) {
	s.mu.Lock()
	s.wattage = w
	s.mu.Unlock()
}

// Clone returns an independent socket with the same name and state.
// Changes to the clone never affect the original.
func (s *Socket) Clone() *Socket {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return &Socket{
		name:    s.name,
		on:      s.on,
		wattage: s.wattage,
	}
}
