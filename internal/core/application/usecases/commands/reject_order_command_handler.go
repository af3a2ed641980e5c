package commands

import (
	"context"
)

// RejectOrderCommandHandler cancels a non-terminal order.
// If a courier is already linked to the order, the courier is released in the
// same transaction; the link itself stays on the cancelled order as history.
type RejectOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewRejectOrderCommandHandler creates a handler for order cancellation.
func NewRejectOrderCommandHandler(uowFactory UoWFactory) RejectOrderCommandHandler {
	return RejectOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command.
func (h RejectOrderCommandHandler) Handle(ctx context.Context, command RejectOrderCommand) error {
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

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.Cancel(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if courierID := aggregate.Courier(); courierID != nil {
		if err = uow.CourierRepository().Release(ctx, *courierID); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
