package queries_test

import (
	"context"
	"testing"
	"time"

	"foodcourt/internal/adapters/out/postgres/courierrepo"
	"foodcourt/internal/core/application/usecases/queries"
	"foodcourt/internal/core/domain/model/courier"
	"foodcourt/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetAvailableCouriersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetAvailableCouriersQueryHandler
}

func (suite *GetAvailableCouriersQueryHandlerTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&courierrepo.CourierDTO{}))

	suite.handler = queries.NewGetAvailableCouriersQueryHandler(db)
}

func (suite *GetAvailableCouriersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetAvailableCouriersQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE couriers").Error)
}

func (suite *GetAvailableCouriersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	ctx := context.Background()

	result, err := suite.handler.Handle(ctx, queries.NewGetAvailableCouriersQuery())
	suite.Require().NoError(err)
	suite.Empty(result)
}

func (suite *GetAvailableCouriersQueryHandlerTestSuite) TestHandle_ReturnsAvailableCouriersOrderedByName() {
	ctx := context.Background()

	suite.seedCourier("Bob", "+15550002", courier.Available)
	alice := suite.seedCourier("Alice", "+15550001", courier.Available)
	suite.seedCourier("Carol", "+15550003", courier.Busy)

	result, err := suite.handler.Handle(ctx, queries.NewGetAvailableCouriersQuery())
	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	suite.Equal("Alice", result[0].Name)
	suite.True(alice.ID().IsEqual(result[0].ID))
	suite.Equal("+15550001", result[0].Phone)
	suite.Equal("Bob", result[1].Name)
}

func (suite *GetAvailableCouriersQueryHandlerTestSuite) TestHandle_NotConstructedQuery_Fails() {
	ctx := context.Background()

	var query queries.GetAvailableCouriersQuery
	_, err := suite.handler.Handle(ctx, query)
	suite.Require().ErrorIs(err, queries.ErrGetAvailableCouriersQueryIsNotConstructed)
}

func (suite *GetAvailableCouriersQueryHandlerTestSuite) seedCourier(
	name string,
	phone string,
	status courier.Status,
) *courier.Courier {
	seeded, err := courier.RestoreCourier(kernel.NewUUID(), name, phone, status)
	suite.Require().NoError(err)

	repo := courierrepo.NewGormCourierRepository(suite.db, noopTracker{})
	suite.Require().NoError(repo.Add(context.Background(), seeded))
	return seeded
}

func TestGetAvailableCouriersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetAvailableCouriersQueryHandlerTestSuite))
}
