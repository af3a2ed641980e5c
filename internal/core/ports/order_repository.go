package ports

import (
	"context"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// An order is stored as a header row plus one row per line item; Add persists
// them together, so inside a unit-of-work transaction the write is atomic and
// no partially-written order is ever observable to concurrent readers.
type OrderRepository interface {
	// Add persists a new order aggregate, header and line items together.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate (status and
	// courier link; items are immutable after creation).
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier, including
	// its line items.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllByCustomer retrieves the customer's orders, newest first.
	GetAllByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error)

	// GetAllByRestaurant retrieves the restaurant's orders, newest first.
	GetAllByRestaurant(ctx context.Context, restaurantID kernel.UUID) ([]*order.Order, error)

	// GetAllByCourier retrieves the orders assigned to a courier, newest first.
	GetAllByCourier(ctx context.Context, courierID kernel.UUID) ([]*order.Order, error)
}
