package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services/pricing"
)

// mockAggregateTracker is a no-op tracker for seeding aggregates in query tests.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {
}

type GetOrdersForSellerQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOrdersForSellerQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetOrdersForSellerQueryHandlerTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{}))

	suite.handler = queries.NewGetOrdersForSellerQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *GetOrdersForSellerQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetOrdersForSellerQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_items").Error)
}

func (suite *GetOrdersForSellerQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query, err := queries.NewGetOrdersForSellerQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetOrdersForSellerQueryHandlerTestSuite) TestHandle_MultiSellerOrder_ReturnsOnlyOwnItems() {
	sellerA := kernel.NewUUID()
	sellerB := kernel.NewUUID()
	itemA := suite.newItem(sellerA, 2, "19.99")
	itemB := suite.newItem(sellerB, 1, "35.00")
	placed := suite.addOrder(itemA, itemB)

	query, err := queries.NewGetOrdersForSellerQuery(sellerA)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(placed.ID(), result[0].ID)
	suite.Equal(placed.Number().String(), result[0].Number)
	suite.Equal(order.StatusPending.String(), result[0].Status)

	// The co-seller's line must never leak into seller A's view.
	suite.Require().Len(result[0].Items, 1)
	suite.Equal(itemA.ProductID(), result[0].Items[0].ProductID)
	suite.Equal(2, result[0].Items[0].Quantity)
	suite.Equal("19.99", result[0].Items[0].UnitPriceAtTime)
	suite.Equal("39.98", result[0].Items[0].LineTotal)
}

func (suite *GetOrdersForSellerQueryHandlerTestSuite) TestHandle_CoSellerOnSameOrder_GetsTheirOwnView() {
	sellerA := kernel.NewUUID()
	sellerB := kernel.NewUUID()
	itemA := suite.newItem(sellerA, 2, "19.99")
	itemB := suite.newItem(sellerB, 1, "35.00")
	placed := suite.addOrder(itemA, itemB)

	query, err := queries.NewGetOrdersForSellerQuery(sellerB)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(placed.ID(), result[0].ID)
	suite.Require().Len(result[0].Items, 1)
	suite.Equal(itemB.ProductID(), result[0].Items[0].ProductID)
	suite.Equal("35.00", result[0].Items[0].LineTotal)
}

func (suite *GetOrdersForSellerQueryHandlerTestSuite) TestHandle_SellerWithNoItems_ReturnsEmptySlice() {
	suite.addOrder(suite.newItem(kernel.NewUUID(), 1, "10.00"))

	query, err := queries.NewGetOrdersForSellerQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Empty(result)
}

func (suite *GetOrdersForSellerQueryHandlerTestSuite) TestHandle_LinesAcrossOrders_GroupedByOrder() {
	seller := kernel.NewUUID()
	first := suite.addOrder(
		suite.newItem(seller, 1, "10.00"),
		suite.newItem(seller, 3, "5.00"),
	)
	second := suite.addOrder(suite.newItem(seller, 2, "7.50"))

	query, err := queries.NewGetOrdersForSellerQuery(seller)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	itemsByOrder := make(map[string]int)
	for _, response := range result {
		itemsByOrder[response.Number] = len(response.Items)
	}
	suite.Equal(2, itemsByOrder[first.Number().String()])
	suite.Equal(1, itemsByOrder[second.Number().String()])
}

func (suite *GetOrdersForSellerQueryHandlerTestSuite) newItem(
	sellerID kernel.UUID,
	quantity int,
	price string,
) order.Item {
	item, err := order.NewItem(
		kernel.NewUUID(),
		kernel.NewUUID(),
		sellerID,
		quantity,
		kernel.MustMoneyFromString(price),
	)
	suite.Require().NoError(err)
	return item
}

func (suite *GetOrdersForSellerQueryHandlerTestSuite) addOrder(items ...order.Item) *order.Order {
	totals, err := pricing.NewCalculator().Quote(items)
	suite.Require().NoError(err)

	placed, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewOrderNumber(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		nil,
		"card",
		items,
		totals,
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), placed))
	return placed
}

func TestGetOrdersForSellerQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrdersForSellerQueryHandlerTestSuite))
}
