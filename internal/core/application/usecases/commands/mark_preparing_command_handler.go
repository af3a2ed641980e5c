package commands

import (
	"context"
)

// MarkPreparingCommandHandler moves a confirmed order to Preparing.
type MarkPreparingCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewMarkPreparingCommandHandler creates a handler for the preparing transition.
func NewMarkPreparingCommandHandler(uowFactory OrderUoWFactory) MarkPreparingCommandHandler {
	return MarkPreparingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the preparing transition command.
func (h MarkPreparingCommandHandler) Handle(ctx context.Context, command MarkPreparingCommand) error {
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

	if err = aggregate.StartPreparing(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
