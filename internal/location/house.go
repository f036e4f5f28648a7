package location

import (
	"fmt"

	"github.com/nerrad567/smart-house-core/internal/device"
)

// House is a named building that owns an ordered list of rooms.
type House struct {
	name  string
	rooms []*Room
}

// NewHouse creates a house with no rooms.
func NewHouse(name string) *House {
	return &House{name: name}
}

// Name returns the house name.
func (h *House) Name() string {
	return h.name
}

// AddRoom appends a room. Room names are not checked for uniqueness.
func (h *House) AddRoom(r *Room) {
	h.rooms = append(h.rooms, r)
}

// Rooms returns room names in insertion order.
func (h *House) Rooms() []string {
	names := make([]string, 0, len(h.rooms))
	for _, r := range h.rooms {
		names = append(names, r.Name())
	}
	return names
}

// Room returns the first room with the given name.
// Returns ErrNotFound if no room matches.
func (h *House) Room(name string) (*Room, error) {
	for _, r := range h.rooms {
		if r.Name() == name {
			return r, nil
		}
	}
	return nil, fmt.Errorf("%w: room %q in house %q", ErrNotFound, name, h.name)
}

// AddDevice places a device in the first room named roomName.
// Returns ErrNotFound, leaving every room untouched, if no room matches.
func (h *House) AddDevice(roomName string, d device.Device) error {
	r, err := h.Room(roomName)
	if err != nil {
		return err
	}
	r.AddDevice(d)
	return nil
}

// Devices returns the device names of the first room named roomName.
// Returns ErrNotFound if no room matches.
func (h *House) Devices(roomName string) ([]string, error) {
	r, err := h.Room(roomName)
	if err != nil {
		return nil, err
	}
	return r.Devices(), nil
}

// DeviceLocation resolves where deviceName sits when looked up in roomName.
//
// The error from Devices is returned unchanged when the room is unknown.
// ErrNotFound is returned when the room exists but does not list the device.
func (h *House) DeviceLocation(roomName, deviceName string) (Location, error) {
	names, err := h.Devices(roomName)
	if err != nil {
		return Location{}, err
	}
	for _, n := range names {
		if n == deviceName {
			return Location{House: h.name, Room: roomName}, nil
		}
	}
	return Location{}, fmt.Errorf("%w: device %q in room %q", ErrNotFound, deviceName, roomName)
}

// CreateReport asks the reporter to describe this house.
func (h *House) CreateReport(r Reporter) string {
	return r.CreateReport(h)
}
