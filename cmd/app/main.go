package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"garmenttrack/cmd"
	_ "garmenttrack/docs"
	adapterhttp "garmenttrack/internal/adapters/in/http"
	"garmenttrack/internal/adapters/out/postgres/notificationrepo"
	"garmenttrack/internal/adapters/out/postgres/orderrepo"
	"garmenttrack/internal/adapters/out/rabbitmq"
	"garmenttrack/internal/generated/servers"
	"garmenttrack/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	amqp "github.com/rabbitmq/amqp091-go"
	echoSwagger "github.com/swaggo/echo-swagger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// @title GarmentTrack Order API
// @version 1.0.0
// @description Order lifecycle and production tracking for garment manufacturing.
func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)

	conn, channel := mustConnectRabbitMQ(configs.RabbitMQURL)
	defer conn.Close()
	defer channel.Close()

	notifier, err := rabbitmq.NewRabbitBuyerNotifier(channel)
	if err != nil {
		log.Fatalf("Error creating buyer notifier: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, notifier)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(
		app.CreateDispatchNotificationsCommandHandler(),
		app.CreatePurgeNotificationsCommandHandler(),
		configs.NotificationBatchSize,
		configs.OutboxRetention,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:              goDotEnvVariable("HTTP_PORT"),
		DBHost:                goDotEnvVariable("DB_HOST"),
		DBPort:                goDotEnvVariable("DB_PORT"),
		DBUser:                goDotEnvVariable("DB_USER"),
		DBPassword:            goDotEnvVariable("DB_PASSWORD"),
		DBName:                goDotEnvVariable("DB_NAME"),
		DBSslMode:             goDotEnvVariable("DB_SSLMODE"),
		RabbitMQURL:           goDotEnvVariable("RABBITMQ_URL"),
		NotificationBatchSize: intEnvVariable("NOTIFICATION_BATCH_SIZE"),
		OutboxRetention:       durationEnvVariable("OUTBOX_RETENTION"),
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

func intEnvVariable(key string) int {
	value, err := strconv.Atoi(goDotEnvVariable(key))
	if err != nil {
		log.Fatalf("Error parsing %s: %v", key, err)
	}
	return value
}

func durationEnvVariable(key string) time.Duration {
	value, err := time.ParseDuration(goDotEnvVariable(key))
	if err != nil {
		log.Fatalf("Error parsing %s: %v", key, err)
	}
	return value
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.TrackingUpdateDTO{},
		&notificationrepo.NotificationDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
}

func mustConnectRabbitMQ(url string) (*amqp.Connection, *amqp.Channel) {
	conn, err := amqp.Dial(url)
	if err != nil {
		log.Fatalf("Error connecting to RabbitMQ: %v", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		log.Fatalf("Error opening RabbitMQ channel: %v", err)
	}

	return conn, channel
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	server := adapterhttp.NewServer(
		app.CreatePlaceOrderCommandHandler(),
		app.CreateApproveOrderCommandHandler(),
		app.CreateRejectOrderCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateMarkOrderPaidCommandHandler(),
		app.CreateAddTrackingUpdateCommandHandler(),
		app.CreateGetOrdersQueryHandler(),
		app.CreateGetOrderTimelineQueryHandler(),
	)
	servers.RegisterHandlers(e, server)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
