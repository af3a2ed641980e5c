package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"foodcourt/cmd"
	httpin "foodcourt/internal/adapters/in/http"
	"foodcourt/internal/adapters/out/postgres/cartrepo"
	"foodcourt/internal/adapters/out/postgres/courierrepo"
	"foodcourt/internal/adapters/out/postgres/orderrepo"
	"foodcourt/internal/core/domain/model/kernel"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	config := getConfig()

	createDbIfNotExists(config)

	db, err := gorm.Open(gorm_postgres.Open(connectionString(config)), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&courierrepo.CourierDTO{},
		&cartrepo.CartLineDTO{},
		&cartrepo.FoodItemDTO{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	root := cmd.NewCompositionRoot(config, db, logger)

	startJobs(&root, config, logger)
	startWebServer(&root, config.HTTPPort)
}

func getConfig() cmd.Config {
	// Missing .env is fine; variables may come from the real environment.
	_ = godotenv.Load(".env")

	var config cmd.Config
	if err := envconfig.Process("", &config); err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	return config
}

// createDbIfNotExists connects to the maintenance database and creates the
// application database when it does not exist yet.
func createDbIfNotExists(config cmd.Config) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=postgres sslmode=%s",
		config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBSslMode)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Failed to connect to postgres: %v", err)
	}
	defer db.Close()

	var exists bool
	err = db.QueryRow("SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)",
		config.DBName).Scan(&exists)
	if err != nil {
		log.Fatalf("Failed to check database existence: %v", err)
	}

	if !exists {
		if _, err = db.Exec("CREATE DATABASE " + config.DBName); err != nil {
			log.Fatalf("Failed to create database: %v", err)
		}
	}
}

func connectionString(config cmd.Config) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.DBHost, config.DBPort, config.DBUser, config.DBPassword,
		config.DBName, config.DBSslMode)
}

// startJobs starts the polling dashboard jobs when board identifiers are
// configured.
func startJobs(root *cmd.CompositionRoot, config cmd.Config, logger *slog.Logger) {
	if config.BoardRestaurantID == "" || config.BoardCourierID == "" {
		logger.Info("Board identifiers not configured, polling jobs disabled")
		return
	}

	restaurantID, err := kernel.UUIDFromString(config.BoardRestaurantID)
	if err != nil {
		log.Fatalf("Invalid BOARD_RESTAURANT_ID: %v", err)
	}
	courierID, err := kernel.UUIDFromString(config.BoardCourierID)
	if err != nil {
		log.Fatalf("Invalid BOARD_COURIER_ID: %v", err)
	}

	jobManager := root.CreateJobManager(restaurantID, courierID)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
}

func startWebServer(root *cmd.CompositionRoot, port string) {
	server := httpin.NewServer(
		root.CreatePlaceOrderCommandHandler(),
		root.CreateAcceptOrderCommandHandler(),
		root.CreateRejectOrderCommandHandler(),
		root.CreateMarkPreparingCommandHandler(),
		root.CreateMarkReadyCommandHandler(),
		root.CreateAssignCourierCommandHandler(),
		root.CreateSmartAssignCommandHandler(),
		root.CreateCompleteDeliveryCommandHandler(),
		root.CreateCreateCourierCommandHandler(),
		root.CreateAddFoodItemCommandHandler(),
		root.CreateAddToCartCommandHandler(),
		root.CreateGetOrderQueryHandler(),
		root.CreateGetCustomerOrdersQueryHandler(),
		root.CreateGetRestaurantOrdersQueryHandler(),
		root.CreateGetCourierOrdersQueryHandler(),
		root.CreateGetAvailableCouriersQueryHandler(),
	)

	e := echo.New()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
