package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"foodcourt/internal/core/application/usecases/commands"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func placeOrderFixture(t *testing.T) (commands.PlaceOrderCommand, kernel.UUID, kernel.UUID) {
	t.Helper()
	customerID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), customerID, restaurantID, "1 Main Street")
	require.NoError(t, err)
	return cmd, customerID, restaurantID
}

func TestPlaceOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	cmd, customerID, restaurantID := placeOrderFixture(t)

	foodID := kernel.NewUUID()
	price, err := kernel.MoneyFromString("10.00")
	require.NoError(t, err)

	lines := []ports.CartLine{{CustomerID: customerID, FoodID: foodID, Quantity: 2}}
	food := &ports.FoodItem{
		ID: foodID, RestaurantID: restaurantID,
		Name: "Burger", Price: price, IsAvailable: true,
	}

	cartRepo := new(MockCartRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUnitOfWork)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		cartRepo.On("GetCartLines", ctx, customerID).Return(lines, nil).Once(),
		cartRepo.On("GetFoodItem", ctx, foodID).Return(food, nil).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("ClearCart", ctx, customerID).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewPlaceOrderCommandHandler(factory, discardLogger())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	// The persisted order carries the catalog snapshot: 2 x 10.00.
	addCall := orderRepo.Calls[0]
	added := addCall.Arguments[1].(*order.Order)
	assert.Equal(t, order.Pending, added.Status())
	assert.Equal(t, "20.00", added.Total().String())
	require.Len(t, added.Items(), 1)
	assert.Equal(t, "Burger", added.Items()[0].Name())

	cartRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_EmptyCart(t *testing.T) {
	ctx := context.Background()
	cmd, customerID, _ := placeOrderFixture(t)

	cartRepo := new(MockCartRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUnitOfWork)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		cartRepo.On("GetCartLines", ctx, customerID).Return([]ports.CartLine{}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewPlaceOrderCommandHandler(factory, discardLogger())
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrCartIsEmpty)
	orderRepo.AssertNotCalled(t, "Add")
	uow.AssertNotCalled(t, "Commit")
}

func TestPlaceOrderCommandHandler_Handle_UnavailableFoodItem(t *testing.T) {
	ctx := context.Background()
	cmd, customerID, restaurantID := placeOrderFixture(t)

	foodID := kernel.NewUUID()
	price, err := kernel.MoneyFromString("10.00")
	require.NoError(t, err)

	lines := []ports.CartLine{{CustomerID: customerID, FoodID: foodID, Quantity: 1}}
	food := &ports.FoodItem{
		ID: foodID, RestaurantID: restaurantID,
		Name: "Burger", Price: price, IsAvailable: false,
	}

	cartRepo := new(MockCartRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUnitOfWork)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		cartRepo.On("GetCartLines", ctx, customerID).Return(lines, nil).Once(),
		cartRepo.On("GetFoodItem", ctx, foodID).Return(food, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewPlaceOrderCommandHandler(factory, discardLogger())
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrFoodItemIsNotAvailable)
	orderRepo.AssertNotCalled(t, "Add")
}

func TestPlaceOrderCommandHandler_Handle_ClearCartFailureDoesNotFailPlacement(t *testing.T) {
	ctx := context.Background()
	cmd, customerID, restaurantID := placeOrderFixture(t)

	foodID := kernel.NewUUID()
	price, err := kernel.MoneyFromString("5.00")
	require.NoError(t, err)

	lines := []ports.CartLine{{CustomerID: customerID, FoodID: foodID, Quantity: 1}}
	food := &ports.FoodItem{
		ID: foodID, RestaurantID: restaurantID,
		Name: "Fries", Price: price, IsAvailable: true,
	}

	cartRepo := new(MockCartRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUnitOfWork)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		cartRepo.On("GetCartLines", ctx, customerID).Return(lines, nil).Once(),
		cartRepo.On("GetFoodItem", ctx, foodID).Return(food, nil).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("ClearCart", ctx, customerID).Return(errors.New("connection reset")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewPlaceOrderCommandHandler(factory, discardLogger())
	err = handler.Handle(ctx, cmd)

	// The order committed, so the placement succeeds despite the stale cart.
	require.NoError(t, err)
	uow.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := context.Background()
	cmd := commands.PlaceOrderCommand{} // not constructed properly

	factory := new(MockOrderCartUoWFactory)
	handler := commands.NewPlaceOrderCommandHandler(factory, discardLogger())
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrPlaceOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestPlaceOrderCommandHandler_Handle_AddOrderError(t *testing.T) {
	ctx := context.Background()
	cmd, customerID, restaurantID := placeOrderFixture(t)

	foodID := kernel.NewUUID()
	price, err := kernel.MoneyFromString("5.00")
	require.NoError(t, err)

	lines := []ports.CartLine{{CustomerID: customerID, FoodID: foodID, Quantity: 1}}
	food := &ports.FoodItem{
		ID: foodID, RestaurantID: restaurantID,
		Name: "Fries", Price: price, IsAvailable: true,
	}

	cartRepo := new(MockCartRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUnitOfWork)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		cartRepo.On("GetCartLines", ctx, customerID).Return(lines, nil).Once(),
		cartRepo.On("GetFoodItem", ctx, foodID).Return(food, nil).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(errors.New("insert failed")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewPlaceOrderCommandHandler(factory, discardLogger())
	err = handler.Handle(ctx, cmd)

	require.EqualError(t, err, "insert failed")
	cartRepo.AssertNotCalled(t, "ClearCart")
	uow.AssertNotCalled(t, "Commit")
}
