// Package cartrepo persists the food catalog and customer carts.
// Cart lines and catalog entries are plain records, not aggregates, so the
// package maps directly between port structs and rows with no restore step.
package cartrepo

import (
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/ports"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartLineDTO represents a persisted cart line. The (customer_id, food_id)
// pair is the primary key, which lets AddToCart upsert on conflict.
type CartLineDTO struct {
	CustomerID uuid.UUID `gorm:"type:uuid;primaryKey"`
	FoodID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Quantity   int       `gorm:"not null"`
}

// TableName specifies the database table name for cart lines.
func (CartLineDTO) TableName() string {
	return "cart_lines"
}

// FoodItemDTO represents a persisted catalog entry.
type FoodItemDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID       `gorm:"type:uuid;index"`
	Name         string          `gorm:"type:text;not null"`
	Price        decimal.Decimal `gorm:"type:numeric(12,2)"`
	IsAvailable  bool            `gorm:"not null"`
}

// TableName specifies the database table name for catalog entries.
func (FoodItemDTO) TableName() string {
	return "food_items"
}

func cartLineToDomain(dto CartLineDTO) (ports.CartLine, error) {
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return ports.CartLine{}, err
	}

	foodID, err := kernel.UUIDFromBytes(dto.FoodID[:])
	if err != nil {
		return ports.CartLine{}, err
	}

	return ports.CartLine{
		CustomerID: customerID,
		FoodID:     foodID,
		Quantity:   dto.Quantity,
	}, nil
}

func foodItemToDomain(dto FoodItemDTO) (ports.FoodItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.FoodItem{}, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return ports.FoodItem{}, err
	}

	price, err := kernel.NewMoneyFromDecimal(dto.Price)
	if err != nil {
		return ports.FoodItem{}, err
	}

	return ports.FoodItem{
		ID:           id,
		RestaurantID: restaurantID,
		Name:         dto.Name,
		Price:        price,
		IsAvailable:  dto.IsAvailable,
	}, nil
}
