package location

import "fmt"

// Location identifies where a device was found.
// It is a plain value; two locations are equal when both names match.
type Location struct {
	House string `json:"house" yaml:"house"`
	Room  string `json:"room" yaml:"room"`
}

// String renders the location as "{house}, {room}".
func (l Location) String() string {
	return fmt.Sprintf("%s, %s", l.House, l.Room)
}

// Reporter produces a textual report describing a house.
// Report providers implement it; House.CreateReport dispatches to it.
type Reporter interface {
	CreateReport(h *House) string
}
