package cartrepo

import (
	"context"
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/ports"
	"foodcourt/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCartRepository implements CartRepository using GORM.
type GormCartRepository struct {
	db *gorm.DB
}

// NewGormCartRepository creates a new GORM cart repository.
func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// GetCartLines returns the customer's current cart lines.
func (r *GormCartRepository) GetCartLines(ctx context.Context, customerID kernel.UUID) ([]ports.CartLine, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []CartLineDTO
	if err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID.Bytes()).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	lines := make([]ports.CartLine, 0, len(dtos))
	for _, dto := range dtos {
		line, err := cartLineToDomain(dto)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return lines, nil
}

// GetFoodItem returns the catalog entry for a food item.
func (r *GormCartRepository) GetFoodItem(ctx context.Context, foodID kernel.UUID) (*ports.FoodItem, error) {
	if err := foodID.Validate(); err != nil {
		return nil, err
	}

	var dto FoodItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", foodID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("food item", foodID.String())
		}
		return nil, err
	}

	item, err := foodItemToDomain(dto)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// AddFoodItem registers a catalog entry.
func (r *GormCartRepository) AddFoodItem(ctx context.Context, item ports.FoodItem) error {
	if err := item.ID.Validate(); err != nil {
		return err
	}
	if err := item.RestaurantID.Validate(); err != nil {
		return err
	}
	if item.Name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	dto := FoodItemDTO{
		ID:           item.ID.Bytes(),
		RestaurantID: item.RestaurantID.Bytes(),
		Name:         item.Name,
		Price:        item.Price.Decimal(),
		IsAvailable:  item.IsAvailable,
	}
	return r.db.WithContext(ctx).Create(&dto).Error
}

// AddToCart upserts a cart line: a conflicting (customer_id, food_id) pair has
// its quantity increased instead of inserting a duplicate row.
func (r *GormCartRepository) AddToCart(ctx context.Context, line ports.CartLine) error {
	if err := line.CustomerID.Validate(); err != nil {
		return err
	}
	if err := line.FoodID.Validate(); err != nil {
		return err
	}
	if line.Quantity <= 0 {
		return errs.NewValueIsOutOfRangeError("quantity", line.Quantity, 1, "unbounded")
	}

	dto := CartLineDTO{
		CustomerID: line.CustomerID.Bytes(),
		FoodID:     line.FoodID.Bytes(),
		Quantity:   line.Quantity,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "customer_id"}, {Name: "food_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"quantity": gorm.Expr("cart_lines.quantity + EXCLUDED.quantity"),
		}),
	}).Create(&dto).Error
}

// ClearCart removes all of the customer's cart lines.
func (r *GormCartRepository) ClearCart(ctx context.Context, customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Where("customer_id = ?", customerID.Bytes()).
		Delete(&CartLineDTO{}).Error
}
