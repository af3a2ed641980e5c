package order

import (
	"errors"
	"time"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"
	"foodcourt/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder constructors.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
	// ErrItemsAreRequired is returned when attempting to create an order without line items.
	ErrItemsAreRequired = errs.NewValueIsRequiredError("items")
	// ErrDeliveryAddressIsRequired is returned when attempting to create an order with an empty address.
	ErrDeliveryAddressIsRequired = errs.NewValueIsRequiredError("delivery address")
)

// Order represents a customer's committed purchase from one restaurant.
// It is the aggregate root that owns the order's line items and manages the
// lifecycle from placement through fulfillment to delivery or cancellation.
//
// Order enforces these invariants:
//   - Must have valid customer, restaurant, and order identifiers
//   - Must have at least one line item and a non-empty delivery address
//   - Total equals the sum of unit price times quantity across items,
//     computed once at creation from the price snapshots
//   - Status transitions follow the fulfillment state machine
//   - The courier link is set exactly once, when delivery starts
//
// The struct uses private fields to keep these invariants intact; all
// mutation goes through the lifecycle methods below.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID identifies the customer who placed the order
	customerID kernel.UUID

	// restaurantID identifies the restaurant fulfilling the order
	restaurantID kernel.UUID

	// courierID is the assigned courier's ID (nil until delivery starts)
	courierID *kernel.UUID

	// deliveryAddress is where the courier delivers the order
	deliveryAddress string

	// total is the order amount, a creation-time price snapshot
	total kernel.Money

	// createdAt is the server-assigned creation timestamp
	createdAt time.Time

	// status is the current state in the fulfillment lifecycle
	status Status

	// items are the ordered lines with snapshot names and prices
	items []Item

	// guard ensures the order was created via a constructor
	guard guard.ConstructorGuard
}

// NewOrder creates a freshly placed Order in Pending status.
// The total is computed here as the sum of each item's line total, so later
// catalog price changes can never retroactively alter it. The creation
// timestamp is server-assigned.
//
// Returns a validation error if the id set is invalid, items is empty, or the
// delivery address is blank.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	deliveryAddress string,
	items []Item,
) (*Order, error) {
	o := &Order{
		status:    Pending,
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setRestaurantID(restaurantID),
		o.setDeliveryAddress(deliveryAddress),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	total, err := totalOf(o.items)
	if err != nil {
		return nil, err
	}
	o.total = total

	return o, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage.
// Unlike NewOrder it accepts the persisted status, courier link, total, and
// timestamp as-is, validating only their mutual consistency. The restored
// order behaves identically to one created through normal domain operations.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	courierID *kernel.UUID,
	deliveryAddress string,
	total kernel.Money,
	createdAt time.Time,
	status Status,
	items []Item,
) (*Order, error) {
	o := &Order{
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setRestaurantID(restaurantID),
		o.setDeliveryAddress(deliveryAddress),
		o.setItems(items),
		o.setTotal(total),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return nil, err
		}
		cID := *courierID
		o.courierID = &cID
	}

	if err := o.status.ValidateCanHaveCourier(o.courierID != nil); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the customer who placed the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// RestaurantID returns the identifier of the restaurant fulfilling the order.
func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// Courier returns the assigned courier's ID, or nil before delivery starts.
func (o *Order) Courier() *kernel.UUID {
	return o.courierID
}

// DeliveryAddress returns the destination address.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// Total returns the order amount captured at creation time.
func (o *Order) Total() kernel.Money {
	return o.total
}

// CreatedAt returns the server-assigned creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Items returns the order's line items.
// The returned slice is a copy; items themselves are immutable.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Confirm transitions the order to Confirmed: the restaurant accepted it.
func (o *Order) Confirm() error {
	return o.transition(Confirmed)
}

// StartPreparing transitions the order to Preparing.
func (o *Order) StartPreparing() error {
	return o.transition(Preparing)
}

// MarkReady transitions the order to ReadyForPickup.
func (o *Order) MarkReady() error {
	return o.transition(ReadyForPickup)
}

// StartDelivery binds a courier to the order and transitions it to
// OutForDelivery. The courier link and the status change succeed or fail
// together: an illegal transition leaves the order without a courier.
func (o *Order) StartDelivery(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.TransitionTo(OutForDelivery)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.courierID = &courierID
	return nil
}

// Complete transitions the order to Delivered. Terminal.
func (o *Order) Complete() error {
	return o.transition(Delivered)
}

// Cancel transitions the order to Cancelled. Terminal.
// Legal from any non-terminal status except OutForDelivery; a courier link
// set before cancellation is retained as history.
func (o *Order) Cancel() error {
	return o.transition(Cancelled)
}

// transition applies the status state machine and records the new status.
func (o *Order) transition(target Status) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// totalOf sums the line totals of the given items.
func totalOf(items []Item) (kernel.Money, error) {
	total := kernel.ZeroMoney()
	for _, item := range items {
		lineTotal, err := item.LineTotal()
		if err != nil {
			return kernel.Money{}, err
		}
		total, err = total.Add(lineTotal)
		if err != nil {
			return kernel.Money{}, err
		}
	}
	return total, nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	o.restaurantID = restaurantID
	return nil
}

func (o *Order) setDeliveryAddress(deliveryAddress string) error {
	if deliveryAddress == "" {
		return ErrDeliveryAddressIsRequired
	}
	o.deliveryAddress = deliveryAddress
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setTotal(total kernel.Money) error {
	if err := total.Validate(); err != nil {
		return err
	}
	o.total = total
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
