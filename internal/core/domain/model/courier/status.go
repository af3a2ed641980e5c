package courier

import (
	"fmt"

	"foodcourt/internal/pkg/errs"
)

// Status represents a courier's availability.
// A courier is Busy exactly while bound to one active delivery and Available
// otherwise; the transitions are driven by assignment and release.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Available means the courier can be assigned to an order.
	Available

	// Busy means the courier is bound to an active delivery.
	Busy
)

// getStatusStrings returns a map of Status values to their persisted names.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Available: "AVAILABLE",
		Busy:      "BUSY",
	}
}

// StatusFromString parses a persisted availability name back into a Status.
func StatusFromString(s string) (Status, error) {
	switch s {
	case "AVAILABLE":
		return Available, nil
	case "BUSY":
		return Busy, nil
	default:
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%q is not a valid courier status name", s))
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are Available and Busy.
func (s Status) Validate() error {
	if s != Available && s != Busy {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid", fmt.Errorf("%d is not a valid courier status", s))
	}
	return nil
}

// String returns the persisted name of the status, e.g. "AVAILABLE".
// Implements fmt.Stringer and is safe to call on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}
