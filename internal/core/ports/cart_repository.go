package ports

import (
	"context"

	"foodcourt/internal/core/domain/model/kernel"
)

// CartLine is a single cart entry: a food item and the quantity the customer
// wants. Cart lines are ephemeral; they are cleared after the order they
// produced has been durably committed.
type CartLine struct {
	CustomerID kernel.UUID
	FoodID     kernel.UUID
	Quantity   int
}

// FoodItem is a catalog entry owned by the catalog collaborator.
// Name and Price are the live catalog values; orders copy them as snapshots
// at placement time.
type FoodItem struct {
	ID           kernel.UUID
	RestaurantID kernel.UUID
	Name         string
	Price        kernel.Money
	IsAvailable  bool
}

// CartRepository is the catalog/cart collaborator contract.
// It is simple CRUD with no invariants of its own; the core only depends on
// reading cart lines, snapshotting current prices, and clearing the cart after
// an order commit.
type CartRepository interface {
	// GetCartLines returns the customer's current cart lines.
	GetCartLines(ctx context.Context, customerID kernel.UUID) ([]CartLine, error)

	// GetFoodItem returns the catalog entry for a food item, the source of the
	// price and name snapshot taken at order placement.
	GetFoodItem(ctx context.Context, foodID kernel.UUID) (*FoodItem, error)

	// AddFoodItem registers a catalog entry.
	AddFoodItem(ctx context.Context, item FoodItem) error

	// AddToCart upserts a cart line: an existing line for the same food item
	// has its quantity increased, otherwise a new line is created.
	AddToCart(ctx context.Context, line CartLine) error

	// ClearCart removes all of the customer's cart lines.
	// Called only after the order transaction has committed; a leftover cart
	// after a crash is stale but harmless and will be re-cleared.
	ClearCart(ctx context.Context, customerID kernel.UUID) error
}
