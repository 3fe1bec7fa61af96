// Package app provides router configuration.
package app

import (
	"context"

	"github.com/schoolform/order-service/config"
	"github.com/schoolform/order-service/internal/http"
	"github.com/schoolform/order-service/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	serviceComponents *ServiceComponents,
	clients *ClientComponents,
	dbComponents *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	var loggingService service.LoggingService
	if dbComponents != nil {
		loggingService = dbComponents.LoggingService
	}

	healthHandler := http.NewHealthHandler()

	// Collaborator circuits feed the readiness probe.
	healthHandler.RegisterCircuitBreaker("sheet", clients.SheetCircuitBreaker)
	healthHandler.RegisterCircuitBreaker("textgen", clients.TextGenCircuitBreaker)
	if dbComponents != nil {
		healthHandler.RegisterCircuitBreaker("mongodb_orders", dbComponents.OrdersCircuitBreaker)
		healthHandler.RegisterCircuitBreaker("mongodb_logs", dbComponents.LogsCircuitBreaker)
		db := dbComponents.DB
		healthHandler.RegisterChecker("mongodb", http.HealthCheckerFunc(func() error {
			return db.HealthCheck(context.Background())
		}))
	}

	routerCfg := http.RouterConfig{
		RateLimit:         cfg.Server.RateLimit,
		RateWindow:        cfg.Server.RateWindow,
		RequestTimeout:    cfg.Server.RequestTimeout,
		EnableIdempotency: true,
		CORSOrigins:       cfg.Server.CORSOrigins,
		SwaggerUser:       cfg.Server.SwaggerUser,
		SwaggerPass:       cfg.Server.SwaggerPass,
		LoggingService:    loggingService,
		Forms:             serviceComponents.Forms,
		Catalog:           serviceComponents.Catalog,
	}

	return &RouterComponents{
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
