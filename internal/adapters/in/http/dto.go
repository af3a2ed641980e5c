package http

import (
	"time"

	"foodcourt/internal/core/application/usecases/queries"
)

// Error is the JSON body returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// PlaceOrderRequest is the body of POST /api/v1/orders.
type PlaceOrderRequest struct {
	CustomerID      string `json:"customer_id"`
	RestaurantID    string `json:"restaurant_id"`
	DeliveryAddress string `json:"delivery_address"`
}

// CreatedResponse carries the identifier of a newly created resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// AssignCourierRequest is the body of POST /api/v1/orders/:id/assign.
type AssignCourierRequest struct {
	CourierID string `json:"courier_id"`
}

// CreateCourierRequest is the body of POST /api/v1/couriers.
type CreateCourierRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// AddFoodItemRequest is the body of POST /api/v1/food-items.
type AddFoodItemRequest struct {
	RestaurantID string `json:"restaurant_id"`
	Name         string `json:"name"`
	Price        string `json:"price"`
}

// AddToCartRequest is the body of POST /api/v1/customers/:id/cart.
type AddToCartRequest struct {
	FoodID   string `json:"food_id"`
	Quantity int    `json:"quantity"`
}

// OrderItem is one snapshot line of an order response.
type OrderItem struct {
	FoodID    string `json:"food_id"`
	Name      string `json:"name"`
	UnitPrice string `json:"unit_price"`
	Quantity  int    `json:"quantity"`
}

// Order is the JSON representation of an order header with its lines.
type Order struct {
	ID              string      `json:"id"`
	CustomerID      string      `json:"customer_id"`
	RestaurantID    string      `json:"restaurant_id"`
	CourierID       *string     `json:"courier_id,omitempty"`
	DeliveryAddress string      `json:"delivery_address"`
	Total           string      `json:"total"`
	Status          string      `json:"status"`
	CreatedAt       time.Time   `json:"created_at"`
	Items           []OrderItem `json:"items"`
}

// Courier is the JSON representation of one courier in the available pool.
type Courier struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

func orderFromResponse(src *queries.OrderResponse) Order {
	items := make([]OrderItem, len(src.Items))
	for i, item := range src.Items {
		items[i] = OrderItem{
			FoodID:    item.FoodID.String(),
			Name:      item.Name,
			UnitPrice: item.UnitPrice.String(),
			Quantity:  item.Quantity,
		}
	}

	order := Order{
		ID:              src.ID.String(),
		CustomerID:      src.CustomerID.String(),
		RestaurantID:    src.RestaurantID.String(),
		DeliveryAddress: src.DeliveryAddress,
		Total:           src.Total.String(),
		Status:          src.Status,
		CreatedAt:       src.CreatedAt,
		Items:           items,
	}
	if src.CourierID != nil {
		courierID := src.CourierID.String()
		order.CourierID = &courierID
	}

	return order
}

func ordersFromResponses(src []queries.OrderResponse) []Order {
	orders := make([]Order, len(src))
	for i := range src {
		orders[i] = orderFromResponse(&src[i])
	}
	return orders
}
