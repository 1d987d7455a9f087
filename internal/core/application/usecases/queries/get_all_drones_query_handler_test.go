package queries_test

import (
	"context"
	"testing"
	"time"

	"dronedispatch/internal/adapters/out/postgres/dronerepo"
	"dronedispatch/internal/core/application/usecases/queries"
	"dronedispatch/internal/core/domain/model/drone"
	"dronedispatch/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetAllDronesQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetAllDronesQueryHandler
}

func (suite *GetAllDronesQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&dronerepo.DroneDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetAllDronesQueryHandler(db)
}

func (suite *GetAllDronesQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetAllDronesQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE drones CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetAllDronesQueryHandlerTestSuite) seedDrone(serialNumber string, state drone.State) kernel.UUID {
	id := kernel.NewUUID()
	dto := dronerepo.DroneDTO{
		ID:              id.Bytes(),
		SerialNumber:    serialNumber,
		Model:           drone.Middleweight.String(),
		WeightLimit:     300,
		BatteryCapacity: 75,
		State:           state.String(),
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)
	return id
}

func (suite *GetAllDronesQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetAllDronesQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetAllDronesQueryHandlerTestSuite) TestHandle_WithDrones_ReturnsAllOrderedBySerialNumber() {
	suite.seedDrone("DRN-C", drone.Idle)
	expectedID := suite.seedDrone("DRN-A", drone.Loading)
	suite.seedDrone("DRN-B", drone.Idle)

	query := queries.NewGetAllDronesQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	suite.Equal("DRN-A", result[0].SerialNumber)
	suite.Equal("DRN-B", result[1].SerialNumber)
	suite.Equal("DRN-C", result[2].SerialNumber)

	suite.True(result[0].ID.IsEqual(expectedID))
	suite.Equal(drone.Middleweight.String(), result[0].Model)
	suite.InDelta(300.0, result[0].WeightLimit, 0.001)
	suite.Equal(75, result[0].BatteryCapacity)
	suite.Equal(drone.Loading.String(), result[0].State)
}

func TestGetAllDronesQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetAllDronesQueryHandlerTestSuite))
}
