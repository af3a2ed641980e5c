package queries

import (
	"context"

	"foodcourt/internal/core/domain/model/courier"
	"foodcourt/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAvailableCouriersQueryHandler lists the available courier pool from the
// database, ordered by name.
type GetAvailableCouriersQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableCouriersQueryHandler creates a handler for courier pool queries.
func NewGetAvailableCouriersQueryHandler(db *gorm.DB) GetAvailableCouriersQueryHandler {
	return GetAvailableCouriersQueryHandler{db: db}
}

// Handle executes the query.
func (h GetAvailableCouriersQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableCouriersQuery,
) ([]CourierResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			phone
		FROM couriers
		WHERE status = ?
		ORDER BY name
	`, courier.Available.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	couriers := make([]CourierResponse, 0)
	for rows.Next() {
		var id uuid.UUID
		var name, phone string

		if err = rows.Scan(&id, &name, &phone); err != nil {
			return nil, err
		}

		courierID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		couriers = append(couriers, CourierResponse{
			ID:    courierID,
			Name:  name,
			Phone: phone,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return couriers, nil
}
