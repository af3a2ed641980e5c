package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads one order's header and line items directly from
// the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns errs.ErrObjectNotFound when no order
// with the given identifier exists.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			restaurant_id,
			courier_id,
			delivery_address,
			total_amount,
			status,
			created_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	response, err := scanOrderRow(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return nil, err
	}

	items, err := h.loadItems(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}
	response.Items = items

	return response, nil
}

func (h GetOrderQueryHandler) loadItems(ctx context.Context, orderID kernel.UUID) ([]OrderItemResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			food_id,
			name,
			unit_price,
			quantity
		FROM order_items
		WHERE order_id = ?
		ORDER BY name
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]OrderItemResponse, 0)
	for rows.Next() {
		var foodID uuid.UUID
		var name string
		var unitPrice decimal.Decimal
		var quantity int

		if err = rows.Scan(&foodID, &name, &unitPrice, &quantity); err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromBytes(foodID[:])
		if idErr != nil {
			return nil, idErr
		}
		price, priceErr := kernel.NewMoneyFromDecimal(unitPrice)
		if priceErr != nil {
			return nil, priceErr
		}

		items = append(items, OrderItemResponse{
			FoodID:    id,
			Name:      name,
			UnitPrice: price,
			Quantity:  quantity,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// scanOrderRow maps one orders row onto an OrderResponse. Shared by the
// single-order and list handlers, which select the same column set.
func scanOrderRow(scan func(dest ...any) error) (*OrderResponse, error) {
	var id, customerID, restaurantID uuid.UUID
	var courierID uuid.NullUUID
	var deliveryAddress, status string
	var totalAmount decimal.Decimal
	var createdAt time.Time

	if err := scan(
		&id,
		&customerID,
		&restaurantID,
		&courierID,
		&deliveryAddress,
		&totalAmount,
		&status,
		&createdAt,
	); err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}
	custID, err := kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return nil, err
	}
	restID, err := kernel.UUIDFromBytes(restaurantID[:])
	if err != nil {
		return nil, err
	}

	var courier *kernel.UUID
	if courierID.Valid {
		cID, courierErr := kernel.UUIDFromBytes(courierID.UUID[:])
		if courierErr != nil {
			return nil, courierErr
		}
		courier = &cID
	}

	total, err := kernel.NewMoneyFromDecimal(totalAmount)
	if err != nil {
		return nil, err
	}

	return &OrderResponse{
		ID:              orderID,
		CustomerID:      custID,
		RestaurantID:    restID,
		CourierID:       courier,
		DeliveryAddress: deliveryAddress,
		Total:           total,
		Status:          status,
		CreatedAt:       createdAt,
	}, nil
}
