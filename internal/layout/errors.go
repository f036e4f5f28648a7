package layout

import "errors"

var (
	// ErrInvalidLayout is returned when a layout document is malformed or incomplete.
	ErrInvalidLayout = errors.New("layout: invalid")

	// ErrUnknownDevice is returned when a room or report references an undefined device.
	ErrUnknownDevice = errors.New("layout: unknown device")

	// ErrDuplicateDevice is returned when two device definitions share a name.
	ErrDuplicateDevice = errors.New("layout: duplicate device")

	// ErrInvalidProvider is returned when a report names an unknown provider.
	ErrInvalidProvider = errors.New("layout: invalid provider")
)
