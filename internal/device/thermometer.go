package device

import (
	"fmt"
	"sync"
)

// Thermometer reports a single temperature reading.
type Thermometer struct {
	name string

	mu   sync.RWMutex
	temp Temperature
}

// NewThermometer creates a thermometer reading 0 c.
func NewThermometer(name string) *Thermometer {
	return &Thermometer{
		name: name,
		temp: Temperature{Value: 0, Unit: Celsius},
	}
}

// Name returns the thermometer name.
func (t *Thermometer) Name() string {
	return t.name
}

// Report renders "thermometer {name} - {value} {unit}".
func (t *Thermometer) Report() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return fmt.Sprintf("thermometer %s - %s", t.name, t.temp)
}

// Temperature returns the current reading.
func (t *Thermometer) Temperature() Temperature {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.temp
}

// SetTemperature records a new reading.
func (t *Thermometer) SetTemperature(temp Temperature) {
	t.mu.Lock()
	t.temp = temp
	t.mu.Unlock()
}
