package queries_test

import (
	"context"
	"testing"
	"time"

	"garmenttrack/internal/adapters/out/postgres/orderrepo"
	"garmenttrack/internal/core/application/usecases/queries"
	"garmenttrack/internal/core/domain/model/kernel"
	"garmenttrack/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// mockAggregateTracker is a no-op tracker for seeding test data through the
// write-side repository.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type GetOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOrdersQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetOrdersQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.TrackingUpdateDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetOrdersQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *GetOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetOrdersQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_tracking_updates CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query, err := queries.NewGetOrdersQuery(nil, nil)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_NoFilters_ReturnsAllOrdersNewestFirst() {
	oldest := suite.seedOrder(suite.newBuyer(), order.Pending, time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC))
	newest := suite.seedOrder(suite.newBuyer(), order.Pending, time.Date(2025, 3, 12, 8, 0, 0, 0, time.UTC))
	middle := suite.seedOrder(suite.newBuyer(), order.Approved, time.Date(2025, 3, 11, 8, 0, 0, 0, time.UTC))

	query, err := queries.NewGetOrdersQuery(nil, nil)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	suite.True(newest.ID().IsEqual(result[0].ID))
	suite.True(middle.ID().IsEqual(result[1].ID))
	suite.True(oldest.ID().IsEqual(result[2].ID))
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_StatusFilter_ReturnsOnlyMatchingOrders() {
	suite.seedOrder(suite.newBuyer(), order.Pending, time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC))
	approved := suite.seedOrder(suite.newBuyer(), order.Approved, time.Date(2025, 3, 11, 8, 0, 0, 0, time.UTC))
	suite.seedOrder(suite.newBuyer(), order.Rejected, time.Date(2025, 3, 12, 8, 0, 0, 0, time.UTC))

	status := order.Approved
	query, err := queries.NewGetOrdersQuery(&status, nil)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(approved.ID().IsEqual(result[0].ID))
	suite.Equal("Approved", result[0].Status)
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_BuyerFilter_ReturnsOnlyBuyersOwnOrders() {
	mine := suite.newBuyer()
	other := suite.newBuyer()
	owned := suite.seedOrder(mine, order.Pending, time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC))
	suite.seedOrder(other, order.Pending, time.Date(2025, 3, 11, 8, 0, 0, 0, time.UTC))

	buyerID := mine.ID()
	query, err := queries.NewGetOrdersQuery(nil, &buyerID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(owned.ID().IsEqual(result[0].ID))
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_CombinedFilters_NarrowsByStatusAndBuyer() {
	mine := suite.newBuyer()
	approvedMine := suite.seedOrder(mine, order.Approved, time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC))
	suite.seedOrder(mine, order.Pending, time.Date(2025, 3, 11, 8, 0, 0, 0, time.UTC))
	suite.seedOrder(suite.newBuyer(), order.Approved, time.Date(2025, 3, 12, 8, 0, 0, 0, time.UTC))

	status := order.Approved
	buyerID := mine.ID()
	query, err := queries.NewGetOrdersQuery(&status, &buyerID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(approvedMine.ID().IsEqual(result[0].ID))
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_ProjectsDenormalizedColumns() {
	buyer := suite.newBuyer()
	seeded := suite.seedOrder(buyer, order.Pending, time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC))

	query, err := queries.NewGetOrdersQuery(nil, nil)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	row := result[0]
	suite.Equal(seeded.Code().String(), row.Code)
	suite.Equal("Rina Akter", row.BuyerName)
	suite.Equal("Classic Polo Shirt", row.ProductName)
	suite.Equal(100, row.Quantity)
	suite.Equal(int64(125000), row.PriceCents)
	suite.Equal("COD", row.PaymentMethod)
	suite.Equal("pending", row.PaymentStatus)
	suite.Equal("Pending", row.Status)
	suite.True(row.CreatedAt.Equal(time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)))
}

// newBuyer creates a valid buyer snapshot with a fresh id.
func (suite *GetOrdersQueryHandlerTestSuite) newBuyer() order.Buyer {
	buyer, err := order.NewBuyer(
		kernel.NewUUID(),
		"Rina Akter",
		"rina@example.com",
		"+8801712345678",
		"House 7, Road 3, Dhanmondi, Dhaka",
		"",
	)
	suite.Require().NoError(err)
	return buyer
}

// seedOrder persists an order for the buyer in the given lifecycle status.
func (suite *GetOrdersQueryHandlerTestSuite) seedOrder(
	buyer order.Buyer, status order.Status, createdAt time.Time,
) *order.Order {
	unitPrice, err := kernel.NewMoney(1250)
	suite.Require().NoError(err)

	product, err := order.NewProductSnapshot(
		kernel.NewUUID(), "Classic Polo Shirt", "Menswear", unitPrice, 50, nil)
	suite.Require().NoError(err)

	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewOrderCode(), buyer, product, 100, order.COD, createdAt)
	suite.Require().NoError(err)

	switch status {
	case order.Approved:
		suite.Require().NoError(o.Approve(createdAt.Add(time.Hour)))
	case order.Rejected:
		suite.Require().NoError(o.Reject())
	case order.Cancelled:
		suite.Require().NoError(o.Cancel(createdAt.Add(time.Hour)))
	case order.Pending, order.StatusUnknown:
	}

	suite.Require().NoError(suite.orderRepo.Add(context.Background(), o))
	return o
}

func TestGetOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrdersQueryHandlerTestSuite))
}
