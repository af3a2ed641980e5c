package commands_test

import (
	"context"
	"errors"
	"testing"

	"foodcourt/internal/core/application/usecases/commands"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// readyOrder builds an order walked through to ReadyForPickup.
func readyOrder(t *testing.T) *order.Order {
	t.Helper()

	price, err := kernel.MoneyFromString("10.00")
	require.NoError(t, err)
	item, err := order.NewItem(kernel.NewUUID(), "Burger", price, 1)
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"1 Main Street", []order.Item{item})
	require.NoError(t, err)

	require.NoError(t, o.Confirm())
	require.NoError(t, o.StartPreparing())
	require.NoError(t, o.MarkReady())
	return o
}

func TestAssignCourierCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()

	testOrder := readyOrder(t)
	courierID := kernel.NewUUID()
	cmd, err := commands.NewAssignCourierCommand(testOrder.ID(), courierID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	courierRepo := new(MockCourierRepository)
	uow := new(MockUnitOfWork)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		courierRepo.On("MarkBusy", ctx, courierID).Return(nil).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignCourierCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	updated := orderRepo.Calls[1].Arguments[1].(*order.Order)
	assert.Equal(t, order.OutForDelivery, updated.Status())
	require.NotNil(t, updated.Courier())
	assert.True(t, courierID.IsEqual(*updated.Courier()))

	orderRepo.AssertExpectations(t)
	courierRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAssignCourierCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := context.Background()
	cmd := commands.AssignCourierCommand{} // not constructed properly

	factory := new(MockUoWFactory)
	handler := commands.NewAssignCourierCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrAssignCourierCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestAssignCourierCommandHandler_Handle_CourierUnavailable(t *testing.T) {
	ctx := context.Background()

	courierID := kernel.NewUUID()
	cmd, err := commands.NewAssignCourierCommand(kernel.NewUUID(), courierID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	courierRepo := new(MockCourierRepository)
	uow := new(MockUnitOfWork)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		courierRepo.On("MarkBusy", ctx, courierID).
			Return(errs.NewCourierUnavailableError(courierID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignCourierCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrCourierUnavailable)
	orderRepo.AssertNotCalled(t, "Get")
	uow.AssertNotCalled(t, "Commit")
}

func TestAssignCourierCommandHandler_Handle_OrderNotReady_RollsBack(t *testing.T) {
	ctx := context.Background()

	// A pending order cannot start delivery; the reservation must roll back.
	price, err := kernel.MoneyFromString("10.00")
	require.NoError(t, err)
	item, err := order.NewItem(kernel.NewUUID(), "Burger", price, 1)
	require.NoError(t, err)
	pendingOrder, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"1 Main Street", []order.Item{item})
	require.NoError(t, err)

	courierID := kernel.NewUUID()
	cmd, err := commands.NewAssignCourierCommand(pendingOrder.ID(), courierID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	courierRepo := new(MockCourierRepository)
	uow := new(MockUnitOfWork)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		courierRepo.On("MarkBusy", ctx, courierID).Return(nil).Once(),
		orderRepo.On("Get", ctx, pendingOrder.ID()).Return(pendingOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignCourierCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrIllegalTransition)
	orderRepo.AssertNotCalled(t, "Update")
	uow.AssertNotCalled(t, "Commit")
	uow.AssertExpectations(t)
}

func TestAssignCourierCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := context.Background()

	orderID := kernel.NewUUID()
	courierID := kernel.NewUUID()
	cmd, err := commands.NewAssignCourierCommand(orderID, courierID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	courierRepo := new(MockCourierRepository)
	uow := new(MockUnitOfWork)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		courierRepo.On("MarkBusy", ctx, courierID).Return(nil).Once(),
		orderRepo.On("Get", ctx, orderID).
			Return(nil, errs.NewObjectNotFoundError("order", orderID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignCourierCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit")
}

func TestAssignCourierCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := context.Background()

	testOrder := readyOrder(t)
	courierID := kernel.NewUUID()
	cmd, err := commands.NewAssignCourierCommand(testOrder.ID(), courierID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	courierRepo := new(MockCourierRepository)
	uow := new(MockUnitOfWork)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		courierRepo.On("MarkBusy", ctx, courierID).Return(nil).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignCourierCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.EqualError(t, err, "commit error")
}
