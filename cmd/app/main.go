package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"quadmesh/cmd"
	httpin "quadmesh/internal/adapters/in/http"
	"quadmesh/internal/adapters/out/postgres/escrowrepo"
	"quadmesh/internal/adapters/out/postgres/orderrepo"
	"quadmesh/internal/adapters/out/postgres/partyrepo"
	"quadmesh/internal/adapters/out/postgres/riderrepo"
	"quadmesh/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	var gormDB *gorm.DB
	if configs.StorageMode != "inmemory" {
		gormDB = mustConnectDB(configs)
	}

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := jobs.NewJobManager(
		app.CreateReassignExpiredCommandHandler(),
		slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                      goDotEnvVariable("HTTP_PORT"),
		DBHost:                        goDotEnvVariable("DB_HOST"),
		DBPort:                        goDotEnvVariable("DB_PORT"),
		DBUser:                        goDotEnvVariable("DB_USER"),
		DBPassword:                    goDotEnvVariable("DB_PASSWORD"),
		DBName:                        goDotEnvVariable("DB_NAME"),
		DBSslMode:                     goDotEnvVariable("DB_SSLMODE"),
		StorageMode:                   goDotEnvVariable("STORAGE_MODE"),
		GpsToleranceMeters:            envFloat("GPS_TOLERANCE_METERS", 50),
		RiderAcceptanceTimeoutMinutes: envInt("RIDER_ACCEPTANCE_TIMEOUT_MINUTES", 5),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func envFloat(key string, fallback float64) float64 {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Fatalf("Invalid %s: %v", key, err)
	}
	return value
}

func envInt(key string, fallback int) int {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("Invalid %s: %v", key, err)
	}
	return value
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&riderrepo.RiderDTO{},
		&partyrepo.CustomerDTO{},
		&partyrepo.RestaurantDTO{},
		&escrowrepo.EscrowAccountDTO{},
	); err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	return db
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpin.NewServer(
		app.CreateRegisterCustomerCommandHandler(),
		app.CreateRegisterRestaurantCommandHandler(),
		app.CreateRegisterRiderCommandHandler(),
		app.CreatePlaceOrderCommandHandler(),
		app.CreateProcessPaymentCommandHandler(),
		app.CreateRestaurantConfirmCommandHandler(),
		app.CreateRiderAcceptCommandHandler(),
		app.CreateRiderRejectCommandHandler(),
		app.CreateRiderArrivedAtRestaurantCommandHandler(),
		app.CreateRiderArrivedAtDeliveryCommandHandler(),
		app.CreateConfirmPickupCommandHandler(),
		app.CreateConfirmDeliveryCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateGetOrderJourneyQueryHandler(),
		app.CreateGetActiveOrdersQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
