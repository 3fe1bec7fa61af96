// Package app provides collaborator client initialization.
package app

import (
	"github.com/schoolform/order-service/config"
	"github.com/schoolform/order-service/internal/circuitbreaker"
	"github.com/schoolform/order-service/internal/client"
)

// ClientComponents holds the remote collaborator clients and their breakers.
type ClientComponents struct {
	Sheet                 client.SheetWriter
	TextGen               client.ConfirmationGenerator
	SheetCircuitBreaker   *circuitbreaker.CircuitBreaker
	TextGenCircuitBreaker *circuitbreaker.CircuitBreaker
}

// InitializeClients builds the spreadsheet and text generation clients, each
// wrapped in its own circuit breaker. Misconfigured collaborators (no URL, no
// API key) are still constructed; they report their sentinel errors without
// tripping the breakers.
func InitializeClients(sheetCfg config.SheetConfig, textGenCfg config.TextGenConfig) *ClientComponents {
	sheetCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: sheetCfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: sheetCfg.CircuitBreakerSuccessThreshold,
		Timeout:          sheetCfg.CircuitBreakerTimeout,
		Name:             "sheet",
	})

	textGenCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: textGenCfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: textGenCfg.CircuitBreakerSuccessThreshold,
		Timeout:          textGenCfg.CircuitBreakerTimeout,
		Name:             "textgen",
	})

	sheetClient := client.NewSheetClient(sheetCfg.WebhookURL, sheetCfg.Timeout)
	textGenClient := client.NewTextGenClient(client.TextGenConfig{
		APIKey:      textGenCfg.APIKey,
		Endpoint:    textGenCfg.Endpoint,
		Model:       textGenCfg.Model,
		Temperature: textGenCfg.Temperature,
		Timeout:     textGenCfg.Timeout,
	})

	return &ClientComponents{
		Sheet:                 client.NewSheetWriterWithCircuitBreaker(sheetClient, sheetCB),
		TextGen:               client.NewConfirmationGeneratorWithCircuitBreaker(textGenClient, textGenCB),
		SheetCircuitBreaker:   sheetCB,
		TextGenCircuitBreaker: textGenCB,
	}
}
