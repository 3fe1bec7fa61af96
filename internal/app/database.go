// Package app provides database initialization and setup.
package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/schoolform/order-service/config"
	"github.com/schoolform/order-service/internal/circuitbreaker"
	"github.com/schoolform/order-service/internal/repository"
	"github.com/schoolform/order-service/internal/service"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB                   *repository.MongoDB
	OrdersRepo           repository.OrdersRepositoryInterface
	LoggingService       service.LoggingService
	Archiver             *service.AsyncOrderArchiver
	OrdersCircuitBreaker *circuitbreaker.CircuitBreaker
	LogsCircuitBreaker   *circuitbreaker.CircuitBreaker
}

// InitializeDatabase initializes the MongoDB connection and creates the order
// archive and request log repositories. Returns nil if the database is
// disabled or the connection fails; the service runs without archiving then.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Msg("Connected to MongoDB")

	ttlDays := int(cfg.LogsTTL.Hours() / 24)
	if err := db.SetLogsTTL(context.Background(), ttlDays); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index (may already exist)")
	}

	ordersCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-orders",
	})

	logsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-logs",
	})

	logsRepo := repository.NewLogsRepository(db)
	logsRepoWithCB := repository.NewLogsRepositoryWithCircuitBreaker(logsRepo, logsCB)
	loggingService := service.NewLoggingService(logsRepoWithCB)

	ordersRepo := repository.NewOrdersRepository(db)
	ordersRepoWithCB := repository.NewOrdersRepositoryWithCircuitBreaker(ordersRepo, ordersCB)

	archiver := service.NewAsyncOrderArchiver(ordersRepoWithCB, service.DefaultArchiveConfig())

	return &DatabaseComponents{
		DB:                   db,
		OrdersRepo:           ordersRepoWithCB,
		LoggingService:       loggingService,
		Archiver:             archiver,
		OrdersCircuitBreaker: ordersCB,
		LogsCircuitBreaker:   logsCB,
	}
}
