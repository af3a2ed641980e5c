package services

import (
	"errors"

	"foodcourt/internal/core/domain/model/courier"
	"foodcourt/internal/core/domain/model/order"
)

// ErrNoCourierAvailable is returned when the availability pool contains no
// courier that can take the order.
var ErrNoCourierAvailable = errors.New("no courier available")

// CourierDispatcher is a domain service that selects a courier for an order
// and executes the assignment on both aggregates.
//
// Selection policy: first available courier in listing order. No
// load-balancing or proximity weighting is applied; the listing order of the
// candidate slice is the tie-break.
//
// Example usage:
//
//	dispatcher := services.NewCourierDispatcher()
//	assigned, err := dispatcher.Dispatch(readyOrder, availableCouriers)
//	if errors.Is(err, services.ErrNoCourierAvailable) {
//	    // pool is empty, order stays ReadyForPickup
//	}
type CourierDispatcher struct{}

// NewCourierDispatcher creates a new CourierDispatcher instance.
func NewCourierDispatcher() CourierDispatcher {
	return CourierDispatcher{}
}

// Dispatch picks the first available courier from candidates and binds it to
// the order: the courier becomes Busy and the order moves to OutForDelivery.
// Both aggregates change together; any failure leaves the caller to discard
// the in-memory state (nothing is persisted here).
//
// Returns:
//   - the assigned courier on success
//   - ErrNoCourierAvailable when no candidate is Available
//   - validation or transition errors from the aggregates otherwise
func (d CourierDispatcher) Dispatch(o *order.Order, candidates []*courier.Courier) (*courier.Courier, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	selected, err := d.firstAvailable(candidates)
	if err != nil {
		return nil, err
	}

	if err = selected.Assign(); err != nil {
		return nil, err
	}

	if err = o.StartDelivery(selected.ID()); err != nil {
		return nil, err
	}

	return selected, nil
}

// firstAvailable returns the first Available courier in listing order.
func (d CourierDispatcher) firstAvailable(candidates []*courier.Courier) (*courier.Courier, error) {
	for _, c := range candidates {
		if err := c.Validate(); err != nil {
			return nil, err
		}
		if c.IsAvailable() {
			return c, nil
		}
	}
	return nil, ErrNoCourierAvailable
}
