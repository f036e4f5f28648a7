package report

import (
	"fmt"
	"strings"

	"github.com/nerrad567/smart-house-core/internal/device"
	"github.com/nerrad567/smart-house-core/internal/location"
)

// MissingPolicy decides what a report says about a device found in no room
// of the house. The returned text is appended verbatim.
type MissingPolicy func(h *location.House, d device.Device) string

// Policy names accepted by ParseMissingPolicy.
const (
	PolicySilent = "silent"
	PolicyNotice = "notice"
)

// SilentMissing omits devices that are in no room.
func SilentMissing(*location.House, device.Device) string {
	return ""
}

// NoticeMissing emits "Device {name} was not detected in {house}\n".
func NoticeMissing(h *location.House, d device.Device) string {
	return fmt.Sprintf("Device %s was not detected in %s\n", d.Name(), h.Name())
}

// ParseMissingPolicy maps a policy name to its function.
// An empty name selects SilentMissing.
func ParseMissingPolicy(name string) (MissingPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", PolicySilent:
		return SilentMissing, nil
	case PolicyNotice:
		return NoticeMissing, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidPolicy, name)
	}
}
