package location

import "errors"

var (
	// ErrNotFound is returned when a room name does not exist in the house, or
	// when a device name is not listed in the resolved room.
	ErrNotFound = errors.New("location: not found")

	// ErrInvalidName is returned by ValidateName for empty or oversized names.
	ErrInvalidName = errors.New("location: invalid name")
)
