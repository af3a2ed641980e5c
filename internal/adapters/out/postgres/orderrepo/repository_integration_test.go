package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"foodcourt/internal/adapters/out/postgres/orderrepo"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_items").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_PersistsHeaderAndItems() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
	suite.assertItemCount(2)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_ReturnsOrderWithItems() {
	ctx := context.Background()

	originalOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", originalOrder.ID(), originalOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, originalOrder))

	retrievedOrder, err := suite.repository.Get(ctx, originalOrder.ID())
	suite.Require().NoError(err)

	suite.True(originalOrder.ID().IsEqual(retrievedOrder.ID()))
	suite.True(originalOrder.CustomerID().IsEqual(retrievedOrder.CustomerID()))
	suite.True(originalOrder.RestaurantID().IsEqual(retrievedOrder.RestaurantID()))
	suite.Equal(originalOrder.DeliveryAddress(), retrievedOrder.DeliveryAddress())
	suite.Equal(order.Pending, retrievedOrder.Status())
	suite.Nil(retrievedOrder.Courier())
	suite.Len(retrievedOrder.Items(), 2)

	// The snapshot total survives the round trip: 2 x 10.00 + 1 x 5.00.
	suite.Equal("25.00", retrievedOrder.Total().String())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrievedOrder, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrievedOrder)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StatusTransitions() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Times(2)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.Confirm())
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrievedOrder, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Confirmed, retrievedOrder.Status())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_CourierLinkPersisted() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Times(2)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	courierID := kernel.NewUUID()
	suite.Require().NoError(testOrder.Confirm())
	suite.Require().NoError(testOrder.StartPreparing())
	suite.Require().NoError(testOrder.MarkReady())
	suite.Require().NoError(testOrder.StartDelivery(courierID))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrievedOrder, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.OutForDelivery, retrievedOrder.Status())
	suite.Require().NotNil(retrievedOrder.Courier())
	suite.True(courierID.IsEqual(*retrievedOrder.Courier()))

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	nonExistentOrder := suite.createTestOrder()

	err := suite.repository.Update(ctx, nonExistentOrder)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllByCustomer_ReturnsNewestFirst() {
	ctx := context.Background()

	customerID := kernel.NewUUID()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(3)

	oldest := suite.restoreOrderAt(customerID, time.Now().UTC().Add(-2*time.Hour))
	middle := suite.restoreOrderAt(customerID, time.Now().UTC().Add(-1*time.Hour))
	newest := suite.restoreOrderAt(customerID, time.Now().UTC())

	suite.Require().NoError(suite.repository.Add(ctx, middle))
	suite.Require().NoError(suite.repository.Add(ctx, oldest))
	suite.Require().NoError(suite.repository.Add(ctx, newest))

	orders, err := suite.repository.GetAllByCustomer(ctx, customerID)
	suite.Require().NoError(err)
	suite.Require().Len(orders, 3)

	suite.True(newest.ID().IsEqual(orders[0].ID()))
	suite.True(middle.ID().IsEqual(orders[1].ID()))
	suite.True(oldest.ID().IsEqual(orders[2].ID()))

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllByCustomer_OtherCustomersExcluded() {
	ctx := context.Background()

	customerID := kernel.NewUUID()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(2)

	mine := suite.restoreOrderAt(customerID, time.Now().UTC())
	other := suite.restoreOrderAt(kernel.NewUUID(), time.Now().UTC())

	suite.Require().NoError(suite.repository.Add(ctx, mine))
	suite.Require().NoError(suite.repository.Add(ctx, other))

	orders, err := suite.repository.GetAllByCustomer(ctx, customerID)
	suite.Require().NoError(err)
	suite.Require().Len(orders, 1)
	suite.True(mine.ID().IsEqual(orders[0].ID()))

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllByCourier_ReturnsAssignedOrders() {
	ctx := context.Background()

	courierID := kernel.NewUUID()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(2)

	assigned := suite.createTestOrder()
	suite.Require().NoError(assigned.Confirm())
	suite.Require().NoError(assigned.StartPreparing())
	suite.Require().NoError(assigned.MarkReady())
	suite.Require().NoError(assigned.StartDelivery(courierID))

	unassigned := suite.createTestOrder()

	suite.Require().NoError(suite.repository.Add(ctx, assigned))
	suite.Require().NoError(suite.repository.Add(ctx, unassigned))

	orders, err := suite.repository.GetAllByCourier(ctx, courierID)
	suite.Require().NoError(err)
	suite.Require().Len(orders, 1)
	suite.True(assigned.ID().IsEqual(orders[0].ID()))

	suite.tracker.AssertExpectations(suite.T())
}

// createTestOrder creates a pending order with two line items: 2 x 10.00 + 1 x 5.00.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	burgerPrice, err := kernel.MoneyFromString("10.00")
	suite.Require().NoError(err)
	friesPrice, err := kernel.MoneyFromString("5.00")
	suite.Require().NoError(err)

	burger, err := order.NewItem(kernel.NewUUID(), "Burger", burgerPrice, 2)
	suite.Require().NoError(err)
	fries, err := order.NewItem(kernel.NewUUID(), "Fries", friesPrice, 1)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"1 Main Street", []order.Item{burger, fries})
	suite.Require().NoError(err)
	return testOrder
}

// restoreOrderAt builds a pending order for a customer with an explicit creation time.
func (suite *OrderRepositoryIntegrationTestSuite) restoreOrderAt(
	customerID kernel.UUID, createdAt time.Time,
) *order.Order {
	price, err := kernel.MoneyFromString("7.50")
	suite.Require().NoError(err)
	item, err := order.NewItem(kernel.NewUUID(), "Salad", price, 1)
	suite.Require().NoError(err)

	testOrder, err := order.RestoreOrder(
		kernel.NewUUID(), customerID, kernel.NewUUID(), nil,
		"2 Side Street", price, createdAt, order.Pending, []order.Item{item})
	suite.Require().NoError(err)
	return testOrder
}

// assertOrderCount verifies the number of order headers in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

// assertItemCount verifies the number of line item rows in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertItemCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.ItemDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
