package location

import (
	"fmt"
	"strings"
)

// maxNameLength matches the device package limit.
const maxNameLength = 100

// ValidateName checks if a house or room name is valid.
//
// House and Room accept any name; this check is for callers that build the
// graph from external input, such as layout files.
func ValidateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidName)
	}
	if len(name) > maxNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidName, maxNameLength)
	}
	return nil
}
