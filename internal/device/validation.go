package device

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// maxNameLength bounds device names so reports stay on one readable line.
const maxNameLength = 100

// ValidateName checks that a device name is non-blank and within length limits.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidName)
	}
	if len(name) > maxNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidName, maxNameLength)
	}
	return nil
}

// ValidateDevice checks a device before it is registered.
func ValidateDevice(d Device) error {
	if isNil(d) {
		return ErrInvalidDevice
	}
	return ValidateName(d.Name())
}

// GenerateHandle creates a new random registry handle.
func GenerateHandle() Handle {
	return Handle(uuid.New().String())
}

// isNil reports whether d is nil or a typed nil pointer of a known kind.
func isNil(d Device) bool {
	switch v := d.(type) {
	case nil:
		return true
	case *Socket:
		return v == nil
	case *Thermometer:
		return v == nil
	default:
		return false
	}
}
