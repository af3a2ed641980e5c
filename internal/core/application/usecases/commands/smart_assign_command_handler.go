package commands

import (
	"context"

	"foodcourt/internal/core/domain/services"
)

// SmartAssignCommandHandler assigns an order to the first available courier.
// The dispatcher selects a candidate in memory; the selection is then pinned
// with the same compare-and-set reservation used by direct assignment, so two
// smart assignments racing for the last available courier cannot both win.
//
// Example:
//
//	handler := NewSmartAssignCommandHandler(uowFactory)
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, services.ErrNoCourierAvailable) {
//	    // pool is empty, try again later
//	}
type SmartAssignCommandHandler struct {
	uowFactory UoWFactory
}

// NewSmartAssignCommandHandler creates a handler for dispatcher-driven assignment.
func NewSmartAssignCommandHandler(uowFactory UoWFactory) SmartAssignCommandHandler {
	return SmartAssignCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the smart assignment command.
// Returns services.ErrNoCourierAvailable when the available pool is empty;
// the order is left untouched in that case.
func (h SmartAssignCommandHandler) Handle(ctx context.Context, command SmartAssignCommand) error {
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

	aggregate, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	candidates, err := courierRepo.GetAllAvailable(ctx)
	if err != nil {
		return err
	}
	if len(candidates) == 0 {
		return services.ErrNoCourierAvailable
	}

	selected, err := services.NewCourierDispatcher().Dispatch(aggregate, candidates)
	if err != nil {
		return err
	}

	// Pin the in-memory selection: a concurrent assignment may have taken the
	// courier since GetAllAvailable, in which case the compare-and-set fails
	// and the whole transaction rolls back.
	if err = courierRepo.MarkBusy(ctx, selected.ID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
