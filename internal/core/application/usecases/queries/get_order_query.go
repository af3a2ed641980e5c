// Package queries contains read-only operations over the persisted state.
// Query handlers bypass the domain aggregates and read the database directly,
// the read side of the CQRS split: dashboards poll these queries and must not
// acquire aggregate-level machinery to render a list.
package queries

import (
	"errors"
	"time"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order with its line items.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order's full details.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the order to fetch.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// OrderResponse represents an order as the read side exposes it.
// Status is the stored status name; CourierID is nil until a courier
// has been assigned.
type OrderResponse struct {
	ID              kernel.UUID
	CustomerID      kernel.UUID
	RestaurantID    kernel.UUID
	CourierID       *kernel.UUID
	DeliveryAddress string
	Total           kernel.Money
	Status          string
	CreatedAt       time.Time
	Items           []OrderItemResponse
}

// OrderItemResponse represents one order line with its snapshot price.
type OrderItemResponse struct {
	FoodID    kernel.UUID
	Name      string
	UnitPrice kernel.Money
	Quantity  int
}
