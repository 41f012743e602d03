package main

import (
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"time"

	"printshop/cmd"
	httpin "printshop/internal/adapters/in/http"
	"printshop/internal/adapters/out/kafka"
	"printshop/internal/adapters/out/postgres/catalogrepo"
	"printshop/internal/adapters/out/postgres/orderrepo"
	"printshop/internal/adapters/out/postgres/userrepo"
	redisout "printshop/internal/adapters/out/redis"
	"printshop/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	goredis "github.com/redis/go-redis/v9"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const defaultPaymentMaxAge = 24 * time.Hour

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)

	notifier, err := kafka.NewOrderNotifier(
		[]string{configs.KafkaHost},
		kafka.Topics{
			OrderCreated:  configs.KafkaOrderCreatedTopic,
			StatusChanged: configs.KafkaStatusChangedTopic,
		},
		logger,
	)
	if err != nil {
		log.Fatalf("Failed to create kafka notifier: %v", err)
	}
	defer notifier.Close()

	redisClient := goredis.NewClient(&goredis.Options{Addr: configs.RedisAddr})
	defer redisClient.Close()
	tracker := redisout.NewInteractionTracker(redisClient)

	app := cmd.NewCompositionRoot(configs, gormDB, notifier, tracker, logger)

	jobManager := jobs.NewJobManager(
		app.CreateCancelStalePaymentsCommandHandler(),
		configs.CancellationSchedule,
		paymentMaxAge(configs, logger),
		logger,
	)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                goDotEnvVariable("HTTP_PORT"),
		DBHost:                  goDotEnvVariable("DB_HOST"),
		DBPort:                  goDotEnvVariable("DB_PORT"),
		DBUser:                  goDotEnvVariable("DB_USER"),
		DBPassword:              goDotEnvVariable("DB_PASSWORD"),
		DBName:                  goDotEnvVariable("DB_NAME"),
		DBSslMode:               goDotEnvVariable("DB_SSLMODE"),
		KafkaHost:               goDotEnvVariable("KAFKA_HOST"),
		KafkaOrderCreatedTopic:  goDotEnvVariable("KAFKA_ORDER_CREATED_TOPIC"),
		KafkaStatusChangedTopic: goDotEnvVariable("KAFKA_STATUS_CHANGED_TOPIC"),
		RedisAddr:               goDotEnvVariable("REDIS_ADDR"),
		CancellationSchedule:    goDotEnvVariable("CANCELLATION_SCHEDULE"),
		PaymentMaxAge:           goDotEnvVariable("PAYMENT_MAX_AGE"),
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

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&userrepo.UserDTO{},
		&catalogrepo.ProductDTO{},
		&catalogrepo.VariantDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&orderrepo.OrderStatusHistoryDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	return gormDB
}

func paymentMaxAge(configs cmd.Config, logger *slog.Logger) time.Duration {
	maxAge, err := time.ParseDuration(configs.PaymentMaxAge)
	if err != nil || maxAge <= 0 {
		logger.Warn("Invalid PAYMENT_MAX_AGE, using default",
			"value", configs.PaymentMaxAge, "default", defaultPaymentMaxAge.String())
		return defaultPaymentMaxAge
	}
	return maxAge
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(nethttp.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateUpdateOrderStatusCommandHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateGetBuyerOrdersQueryHandler(),
		app.CreateGetPartnerOrdersQueryHandler(),
		app.CreateGetAllOrdersQueryHandler(),
		app.CreateGetOrderStatusHistoryQueryHandler(),
		app.CreateOrderContainsPartnerDesignsQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
