package riderrepo_test

import (
	"context"
	"testing"
	"time"

	"quadmesh/internal/adapters/out/postgres/riderrepo"
	"quadmesh/internal/core/domain/model/kernel"
	"quadmesh/internal/core/domain/model/rider"
	"quadmesh/internal/pkg/errs"

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

// RiderRepositoryIntegrationTestSuite provides integration tests for RiderRepository
// using PostgreSQL containers to verify database persistence behavior.
type RiderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *riderrepo.GormRiderRepository
	tracker    *MockAggregateTracker
}

func (suite *RiderRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&riderrepo.RiderDTO{}))
}

func (suite *RiderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE riders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = riderrepo.NewGormRiderRepository(suite.db, suite.tracker)
}

func (suite *RiderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *RiderRepositoryIntegrationTestSuite) TestAddAndGet_RoundTripsRider() {
	ctx := context.Background()

	original := suite.createTestRider("John Kato", "john@example.com")
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()

	err := suite.repository.Add(ctx, original)
	suite.Require().NoError(err)

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal("John Kato", retrieved.Name())
	suite.Equal("john@example.com", retrieved.Email())
	suite.True(retrieved.IsAvailable())
	suite.InDelta(5.0, retrieved.Rating(), 0.001)
	suite.Zero(retrieved.TotalDeliveries())
	suite.InDelta(0.3476, retrieved.CurrentLocation().Latitude(), 0.0001)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *RiderRepositoryIntegrationTestSuite) TestUpdate_AvailabilityFlipPersists() {
	ctx := context.Background()

	testRider := suite.createTestRider("Grace Nambi", "grace@example.com")
	suite.tracker.On("TrackAggregate", testRider.ID(), testRider).Times(3)

	suite.Require().NoError(suite.repository.Add(ctx, testRider))

	suite.Require().NoError(testRider.MarkBusy())
	suite.Require().NoError(suite.repository.Update(ctx, testRider))

	retrieved, err := suite.repository.Get(ctx, testRider.ID())
	suite.Require().NoError(err)
	suite.False(retrieved.IsAvailable())

	testRider.MarkAvailable()
	testRider.CompleteDelivery()
	suite.Require().NoError(suite.repository.Update(ctx, testRider))

	retrieved, err = suite.repository.Get(ctx, testRider.ID())
	suite.Require().NoError(err)
	suite.True(retrieved.IsAvailable())
	suite.Equal(1, retrieved.TotalDeliveries())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *RiderRepositoryIntegrationTestSuite) TestGet_NonExistentRider_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *RiderRepositoryIntegrationTestSuite) TestGetAll_ReturnsEveryRider() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(2)

	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestRider("John Kato", "john@example.com")))
	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestRider("Grace Nambi", "grace@example.com")))

	riders, err := suite.repository.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Len(riders, 2)

	suite.tracker.AssertExpectations(suite.T())
}

// createTestRider creates an available rider positioned near the city centre.
func (suite *RiderRepositoryIntegrationTestSuite) createTestRider(name, email string) *rider.Rider {
	location, err := kernel.NewLocation(0.3476, 32.5825, "Kampala Road")
	suite.Require().NoError(err)

	testRider, err := rider.NewRider(kernel.NewUUID(), name, email, "+256700000000", location, "MM-0001")
	suite.Require().NoError(err)
	return testRider
}

func TestRiderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(RiderRepositoryIntegrationTestSuite))
}
