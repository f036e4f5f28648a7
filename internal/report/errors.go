package report

import "errors"

// ErrInvalidPolicy is returned when a missing-device policy name is not recognised.
var ErrInvalidPolicy = errors.New("report: invalid missing-device policy")
