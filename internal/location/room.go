package location

import "github.com/nerrad567/smart-house-core/internal/device"

// Room is a named space holding references to the devices placed in it.
// The room never owns its devices.
type Room struct {
	name    string
	devices []device.Device
}

// NewRoom creates a room with no devices.
func NewRoom(name string) *Room {
	return &Room{name: name}
}

// Name returns the room name.
func (r *Room) Name() string {
	return r.name
}

// AddDevice places a device in the room. Duplicates are allowed.
func (r *Room) AddDevice(d device.Device) {
	r.devices = append(r.devices, d)
}

// Devices returns the names of the devices in insertion order.
func (r *Room) Devices() []string {
	names := make([]string, 0, len(r.devices))
	for _, d := range r.devices {
		names = append(names, d.Name())
	}
	return names
}
