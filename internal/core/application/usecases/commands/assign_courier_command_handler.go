package commands

import (
	"context"
)

// AssignCourierCommandHandler binds a specific courier to an order and starts
// the delivery. The courier reservation and the order transition happen in one
// transaction: MarkBusy is an atomic compare-and-set on the courier row, and
// any later failure rolls the whole transaction back, so a courier is never
// left Busy without an order to deliver.
//
// Example:
//
//	handler := NewAssignCourierCommandHandler(uowFactory)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrCourierUnavailable):
//	    // busy, unknown, or lost the race to a concurrent assignment
//	case errors.Is(err, order.ErrIllegalTransition):
//	    // order is not ready for pickup
//	case err != nil:
//	    // persistence failure
//	}
type AssignCourierCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignCourierCommandHandler creates a handler for courier assignment operations.
func NewAssignCourierCommandHandler(uowFactory UoWFactory) AssignCourierCommandHandler {
	return AssignCourierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the courier assignment command.
// Reserves the courier first: if the compare-and-set fails there is nothing to
// undo, and if the order transition fails afterwards the rollback restores the
// courier's Available status.
func (h AssignCourierCommandHandler) Handle(ctx context.Context, command AssignCourierCommand) error {
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

	courierRepo := uow.CourierRepository()
	orderRepo := uow.OrderRepository()

	if err := courierRepo.MarkBusy(ctx, command.CourierID()); err != nil {
		return err
	}

	aggregate, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.StartDelivery(command.CourierID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
