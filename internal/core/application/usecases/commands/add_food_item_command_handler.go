package commands

import (
	"context"

	"foodcourt/internal/core/ports"
)

// AddFoodItemCommandHandler registers a new catalog entry.
type AddFoodItemCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewAddFoodItemCommandHandler creates a handler for catalog registration.
func NewAddFoodItemCommandHandler(uowFactory CartUoWFactory) AddFoodItemCommandHandler {
	return AddFoodItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the catalog registration command.
func (h AddFoodItemCommandHandler) Handle(ctx context.Context, command AddFoodItemCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	item := ports.FoodItem{
		ID:           command.FoodID(),
		RestaurantID: command.RestaurantID(),
		Name:         command.Name(),
		Price:        command.Price(),
		IsAvailable:  true,
	}
	if err := uow.CartRepository().AddFoodItem(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
