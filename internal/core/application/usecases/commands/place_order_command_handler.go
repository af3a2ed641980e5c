package commands

import (
	"context"
	"errors"
	"log/slog"

	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/core/ports"
)

var (
	// ErrCartIsEmpty is returned when the customer places an order with no cart lines.
	ErrCartIsEmpty = errors.New("cart is empty")

	// ErrFoodItemIsNotAvailable is returned when a cart line references a
	// catalog entry that is currently switched off.
	ErrFoodItemIsNotAvailable = errors.New("food item is not available")
)

// PlaceOrderCommandHandler turns the customer's cart into a pending order.
// Reads the cart lines, snapshots the current catalog name and price of each
// item into the order, and persists the header with its line items atomically.
// The cart is cleared only after the order transaction has committed, so a
// failed placement never loses the cart.
type PlaceOrderCommandHandler struct {
	uowFactory OrderCartUoWFactory
	logger     *slog.Logger
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
func NewPlaceOrderCommandHandler(uowFactory OrderCartUoWFactory, logger *slog.Logger) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Handle processes the order placement command.
// Returns ErrCartIsEmpty when the customer has no cart lines and
// ErrFoodItemIsNotAvailable when a line references a disabled catalog entry.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, command PlaceOrderCommand) error {
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
	orderRepo := uow.OrderRepository()

	lines, err := cartRepo.GetCartLines(ctx, command.CustomerID())
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		return ErrCartIsEmpty
	}

	items, err := snapshotItems(ctx, cartRepo, lines)
	if err != nil {
		return err
	}

	newOrder, err := order.NewOrder(
		command.OrderID(),
		command.CustomerID(),
		command.RestaurantID(),
		command.DeliveryAddress(),
		items,
	)
	if err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	// The order is durable at this point. A fresh repository is needed: the
	// one above is bound to the committed transaction. A failed cart clear
	// leaves stale lines behind, which the next placement will overwrite.
	if err = uow.CartRepository().ClearCart(ctx, command.CustomerID()); err != nil {
		h.logger.WarnContext(ctx, "failed to clear cart after order placement",
			slog.String("customer_id", command.CustomerID().String()),
			slog.String("order_id", command.OrderID().String()),
			slog.Any("error", err),
		)
	}

	return nil
}

// snapshotItems converts cart lines into order items, copying the current
// catalog name and price of each food item.
func snapshotItems(ctx context.Context, cartRepo ports.CartRepository, lines []ports.CartLine) ([]order.Item, error) {
	items := make([]order.Item, 0, len(lines))
	for _, line := range lines {
		food, err := cartRepo.GetFoodItem(ctx, line.FoodID)
		if err != nil {
			return nil, err
		}
		if !food.IsAvailable {
			return nil, ErrFoodItemIsNotAvailable
		}

		item, err := order.NewItem(food.ID, food.Name, food.Price, line.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}
