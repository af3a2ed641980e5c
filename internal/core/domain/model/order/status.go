package order

import (
	"errors"
	"fmt"

	"foodcourt/internal/pkg/errs"
)

// ErrIllegalTransition is returned when an order status transition is not
// permitted from the current status. Terminal statuses have no outgoing
// transitions, and moving backwards along the lifecycle is never allowed.
var ErrIllegalTransition = errors.New("illegal status transition")

// Status represents the lifecycle state of an order.
// It implements a state machine with an explicit transition table so that
// every status change is checked against the fulfillment workflow.
//
// State transitions:
//
//	Pending ──> Confirmed ──> Preparing ──> ReadyForPickup ──> OutForDelivery ──> Delivered
//	   │            │             │               │
//	   └────────────┴─────────────┴───────────────┴──────> Cancelled
//
// Delivered and Cancelled are terminal: no further transitions are permitted.
// Pending is the sole initial status.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when a customer places an order.
	// The order is waiting for the restaurant to accept or reject it.
	Pending

	// Confirmed indicates the restaurant has accepted the order.
	Confirmed

	// Preparing indicates the kitchen has started preparing the order.
	Preparing

	// ReadyForPickup indicates the order is packed and waiting for a courier.
	ReadyForPickup

	// OutForDelivery indicates a courier has been assigned and is delivering.
	OutForDelivery

	// Delivered indicates the courier completed the delivery. Terminal.
	Delivered

	// Cancelled indicates the order was rejected or cancelled before delivery. Terminal.
	Cancelled
)

// getStatusStrings returns a map of Status values to their persisted names.
// The names match the wire/database representation.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "UNKNOWN",
		Pending:        "PENDING",
		Confirmed:      "CONFIRMED",
		Preparing:      "PREPARING",
		ReadyForPickup: "READY_FOR_PICKUP",
		OutForDelivery: "OUT_FOR_DELIVERY",
		Delivered:      "DELIVERED",
		Cancelled:      "CANCELLED",
	}
}

// getTransitionTable returns the closed set of legal transitions.
// A status missing from the map, or an empty target list, has no exits.
func getTransitionTable() map[Status][]Status {
	return map[Status][]Status{
		Pending:        {Confirmed, Cancelled},
		Confirmed:      {Preparing, Cancelled},
		Preparing:      {ReadyForPickup, Cancelled},
		ReadyForPickup: {OutForDelivery, Cancelled},
		OutForDelivery: {Delivered},
		Delivered:      {},
		Cancelled:      {},
	}
}

// StatusFromString parses a persisted status name back into a Status.
// Returns an error for names outside the closed set.
func StatusFromString(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if name == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid status name", s))
}

// Validate checks if the Status value is a member of the closed status set.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getTransitionTable()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted name of the status, e.g. "READY_FOR_PICKUP".
// Returns "UNKNOWN" for invalid status values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status has no outgoing transitions.
// Delivered and Cancelled are the only terminal statuses.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// CanTransitionTo reports whether moving from s to target is a legal
// transition without performing it.
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range getTransitionTable()[s] {
		if next == target {
			return true
		}
	}
	return false
}

// TransitionTo performs the transition from s to target.
//
// Returns:
//   - (target, nil) when the transition is listed in the transition table
//   - (0, error wrapping ErrIllegalTransition) otherwise, including any
//     attempt to leave a terminal status
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := errors.Join(s.Validate(), target.Validate()); err != nil {
		return 0, err
	}

	if !s.CanTransitionTo(target) {
		return 0, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, s, target)
	}

	return target, nil
}

// ValidateCanHaveCourier validates the consistency between order status and
// courier assignment when restoring an order from persistence.
//
// Rules:
//   - OutForDelivery and Delivered orders must have a courier
//   - Pending through ReadyForPickup orders must not
//   - Cancelled orders may retain the courier link as history when the order
//     was rejected after assignment
func (s Status) ValidateCanHaveCourier(courier bool) error {
	if !courier && (s == OutForDelivery || s == Delivered) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no courier", s),
		)
	}

	if courier && s != OutForDelivery && s != Delivered && s != Cancelled {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a courier", s),
		)
	}

	return nil
}
