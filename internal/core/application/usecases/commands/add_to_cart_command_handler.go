package commands

import (
	"context"

	"foodcourt/internal/core/ports"
)

// AddToCartCommandHandler puts a food item into the customer's cart.
// Verifies the catalog entry exists and is available before upserting the
// cart line; a repeated add for the same item accumulates the quantity.
type AddToCartCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewAddToCartCommandHandler creates a handler for cart additions.
func NewAddToCartCommandHandler(uowFactory CartUoWFactory) AddToCartCommandHandler {
	return AddToCartCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cart addition command.
func (h AddToCartCommandHandler) Handle(ctx context.Context, command AddToCartCommand) error {
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

	cartRepo := uow.CartRepository()

	food, err := cartRepo.GetFoodItem(ctx, command.FoodID())
	if err != nil {
		return err
	}
	if !food.IsAvailable {
		return ErrFoodItemIsNotAvailable
	}

	if err = cartRepo.AddToCart(ctx, ports.CartLine{
		CustomerID: command.CustomerID(),
		FoodID:     command.FoodID(),
		Quantity:   command.Quantity(),
	}); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
