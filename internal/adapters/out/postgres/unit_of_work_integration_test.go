package postgres_test

import (
	"context"
	"testing"
	"time"

	"trattoria/internal/adapters/out/postgres"
	"trattoria/internal/adapters/out/postgres/orderrepo"
	"trattoria/internal/adapters/out/postgres/reservationrepo"
	"trattoria/internal/adapters/out/postgres/testimonialrepo"
	"trattoria/internal/core/domain/model/kernel"
	"trattoria/internal/core/domain/model/order"
	"trattoria/internal/core/domain/model/reservation"
	"trattoria/internal/core/domain/model/testimonial"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies transaction semantics of the GORM
// unit of work against a real PostgreSQL instance.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
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

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&reservationrepo.ReservationDTO{},
		&testimonialrepo.TestimonialDTO{},
	))

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(
		suite.db.Exec("TRUNCATE TABLE orders, order_items, reservations, testimonials").Error,
	)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func createTestOrder(suite *UnitOfWorkIntegrationTestSuite) *order.Order {
	number := order.GenerateNumber()
	customer, err := order.NewCustomer("Mario Rossi", "mario@example.com", "+1-555-0100")
	suite.Require().NoError(err)
	address, err := order.NewAddress("12 Via Roma", "Boston", "02108", "")
	suite.Require().NoError(err)
	price, err := kernel.NewMoneyFromString("12.00")
	suite.Require().NoError(err)
	item, err := order.NewItem(kernel.NewUUID(), "Margherita", 1, price)
	suite.Require().NoError(err)
	fee, err := kernel.NewMoneyFromString("15.00")
	suite.Require().NoError(err)
	total, err := kernel.NewMoneyFromString("27.00")
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(), number, customer, address,
		price, fee, total, order.PaymentCashOnDelivery, []*order.Item{item},
	)
	suite.Require().NoError(err)
	return testOrder
}

func createTestReservation(suite *UnitOfWorkIntegrationTestSuite) *reservation.Reservation {
	testReservation, err := reservation.NewReservation(
		kernel.NewUUID(), "Giulia Bianchi", "giulia@example.com", "+1-555-0101",
		"2026-10-15", "19:30", 4, "",
	)
	suite.Require().NoError(err)
	return testReservation
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitPersistsAcrossAggregates() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	testOrder := createTestOrder(suite)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))

	testReservation := createTestReservation(suite)
	suite.Require().NoError(uow.ReservationRepository().Add(ctx, testReservation))

	testTestimonial, err := testimonial.NewTestimonial(
		kernel.NewUUID(), "Luca Verdi", 5, "Best carbonara outside of Rome.",
	)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.TestimonialRepository().Add(ctx, testTestimonial))

	suite.Require().NoError(uow.Commit(ctx))

	var orderCount, reservationCount, testimonialCount int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&orderCount).Error)
	suite.Require().NoError(suite.db.Model(&reservationrepo.ReservationDTO{}).Count(&reservationCount).Error)
	suite.Require().NoError(suite.db.Model(&testimonialrepo.TestimonialDTO{}).Count(&testimonialCount).Error)
	suite.Equal(int64(1), orderCount)
	suite.Equal(int64(1), reservationCount)
	suite.Equal(int64(1), testimonialCount)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsChanges() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	testOrder := createTestOrder(suite)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))

	suite.Require().NoError(uow.Rollback(ctx))

	var orderCount int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&orderCount).Error)
	suite.Equal(int64(0), orderCount)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitWithoutBeginFails() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_DoubleBeginIsSafe() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryWithoutTransaction() {
	ctx := context.Background()

	// Repositories obtained without Begin write directly to the database.
	uow := suite.factory.Create()
	testReservation := createTestReservation(suite)
	suite.Require().NoError(uow.ReservationRepository().Add(ctx, testReservation))

	var reservationCount int64
	suite.Require().NoError(suite.db.Model(&reservationrepo.ReservationDTO{}).Count(&reservationCount).Error)
	suite.Equal(int64(1), reservationCount)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
