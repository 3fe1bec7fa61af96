// Package main is the entry point for the order-service application.
//
// @title           School Supply Order Service API
// @version         1.0.0
// @description     API for filling in and submitting a first-grade school supply order form.
//
//	Forms are short-lived server-side sessions: selections and guardian details are
//	applied incrementally, the total is derived from the catalog, and submission
//	records the order with a spreadsheet endpoint before generating a confirmation.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/schoolform/order-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @tag.name        Catalog
// @tag.description Product catalog operations
//
// @tag.name        Forms
// @tag.description Order form lifecycle operations
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"context"
	"time"

	_ "github.com/schoolform/order-service/docs" // swagger docs

	"github.com/rs/zerolog/log"
	"github.com/schoolform/order-service/config"
	"github.com/schoolform/order-service/internal/app"
)

func main() {
	cfg := config.Load()

	components, err := app.InitializeApp(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Initialization error")
	}

	server := app.NewServer(components.Router, cfg.Server.Port)
	runErr := server.Run()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	components.Shutdown(ctx)

	if runErr != nil {
		log.Fatal().Err(runErr).Msg("Server error")
	}
}
