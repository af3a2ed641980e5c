package queries

import (
	"context"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetCustomerOrdersQueryHandler lists a customer's orders, newest first.
// List responses carry the order headers only; line items are fetched through
// GetOrderQuery when a single order is opened.
type GetCustomerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerOrdersQueryHandler creates a handler for customer order lists.
func NewGetCustomerOrdersQueryHandler(db *gorm.DB) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{db: db}
}

// Handle executes the query.
func (h GetCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return listOrdersBy(ctx, h.db, "customer_id", query.CustomerID())
}

// listOrdersBy runs the shared newest-first order listing for one filter
// column. The column is interpolated into the statement, so it is restricted
// to the fixed set of order reference columns; everything else stays a bind
// parameter.
func listOrdersBy(ctx context.Context, db *gorm.DB, column string, id kernel.UUID) ([]OrderResponse, error) {
	switch column {
	case "customer_id", "restaurant_id", "courier_id":
	default:
		return nil, errs.NewValueIsInvalidError("column")
	}

	rows, err := db.WithContext(ctx).Raw(`
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
		WHERE `+column+` = ?
		ORDER BY created_at DESC
	`, id.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	for rows.Next() {
		response, scanErr := scanOrderRow(rows.Scan)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, *response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
