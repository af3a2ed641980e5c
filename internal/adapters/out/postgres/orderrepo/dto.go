// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows: one header
// row in "orders" plus one row per line item in "order_items".
package orderrepo

import (
	"time"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order headers.
// Indexed by customer, restaurant, and courier to serve the dashboard
// list queries.
type OrderDTO struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID      uuid.UUID       `gorm:"type:uuid;index"`
	RestaurantID    uuid.UUID       `gorm:"type:uuid;index"`
	CourierID       *uuid.UUID      `gorm:"type:uuid;index"`
	DeliveryAddress string          `gorm:"type:text"`
	TotalAmount     decimal.Decimal `gorm:"type:numeric(12,2)"`
	Status          string          `gorm:"type:varchar(32);index"`
	CreatedAt       time.Time       `gorm:"index"`
	Items           []ItemDTO       `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order headers.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents a persisted order line with its snapshot name and price.
// The (order_id, food_id) pair is the primary key: a food item appears at most
// once per order.
type ItemDTO struct {
	OrderID   uuid.UUID       `gorm:"type:uuid;primaryKey"`
	FoodID    uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name      string          `gorm:"type:text"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2)"`
	Quantity  int
}

// TableName specifies the database table name for order line items.
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation,
// header and line items together.
func fromDomain(aggregate *order.Order) OrderDTO {
	var courierID *uuid.UUID
	if id := aggregate.Courier(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	items := aggregate.Items()
	itemDTOs := make([]ItemDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, ItemDTO{
			OrderID:   aggregate.ID().Bytes(),
			FoodID:    item.FoodID().Bytes(),
			Name:      item.Name(),
			UnitPrice: item.UnitPrice().Decimal(),
			Quantity:  item.Quantity(),
		})
	}

	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		CustomerID:      aggregate.CustomerID().Bytes(),
		RestaurantID:    aggregate.RestaurantID().Bytes(),
		CourierID:       courierID,
		DeliveryAddress: aggregate.DeliveryAddress(),
		TotalAmount:     aggregate.Total().Decimal(),
		Status:          aggregate.Status().String(),
		CreatedAt:       aggregate.CreatedAt(),
		Items:           itemDTOs,
	}
}

// toDomain converts a database DTO back into an order aggregate using
// RestoreOrder, reconstructing status, courier link, and line items.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}
		courierID = &cID
	}

	total, err := kernel.NewMoneyFromDecimal(dto.TotalAmount)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id, customerID, restaurantID, courierID,
		dto.DeliveryAddress, total, dto.CreatedAt, status, items)
}

func itemToDomain(dto ItemDTO) (order.Item, error) {
	foodID, err := kernel.UUIDFromBytes(dto.FoodID[:])
	if err != nil {
		return order.Item{}, err
	}

	unitPrice, err := kernel.NewMoneyFromDecimal(dto.UnitPrice)
	if err != nil {
		return order.Item{}, err
	}

	return order.NewItem(foodID, dto.Name, unitPrice, dto.Quantity)
}
