// Package app provides application initialization and dependency injection.
package app

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/schoolform/order-service/config"
	"github.com/schoolform/order-service/internal/http"
	"github.com/schoolform/order-service/internal/service"
)

// Components holds the long-lived pieces that need an orderly shutdown.
type Components struct {
	Router  *gin.Engine
	manager *service.FormManager
	db      *DatabaseComponents
}

// InitializeApp creates and wires all application dependencies.
// This is the main orchestration function that initializes all components.
func InitializeApp(cfg config.Config) (*Components, error) {
	// Initialize logger first (needed by other components)
	InitializeLogger()

	clients := InitializeClients(cfg.Sheet, cfg.TextGen)

	// Database components (order archive, request logs); nil when disabled
	dbComponents := InitializeDatabase(cfg.Database)

	serviceComponents, err := InitializeServices(cfg.Catalog, cfg.Session, clients, dbComponents)
	if err != nil {
		return nil, err
	}

	routerComponents := InitializeRouter(serviceComponents, clients, dbComponents, cfg)

	return &Components{
		Router:  http.NewRouter(routerComponents.HealthHandler, routerComponents.Config),
		manager: serviceComponents.Manager,
		db:      dbComponents,
	}, nil
}

// Shutdown stops background workers and closes the database connection.
func (c *Components) Shutdown(ctx context.Context) {
	if c.manager != nil {
		c.manager.Stop()
	}
	if c.db != nil {
		if c.db.Archiver != nil {
			c.db.Archiver.Stop()
		}
		if err := c.db.DB.Close(ctx); err != nil {
			log.Warn().Err(err).Msg("Failed to close MongoDB connection")
		}
	}
}
