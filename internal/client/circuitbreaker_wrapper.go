// Circuit breaker wrappers for the outbound collaborator clients.
package client

import (
	"context"
	"errors"

	"github.com/schoolform/order-service/internal/circuitbreaker"
	"github.com/schoolform/order-service/internal/domain/model"
)

// errSheetRejected marks an application-level rejection so the breaker counts
// it as an endpoint failure. It never escapes Append.
var errSheetRejected = errors.New("sheet endpoint rejected order")

// SheetWriterWithCircuitBreaker wraps a SheetWriter with circuit breaker protection.
type SheetWriterWithCircuitBreaker struct {
	inner          SheetWriter
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewSheetWriterWithCircuitBreaker creates a new sheet writer wrapper with circuit breaker.
func NewSheetWriterWithCircuitBreaker(inner SheetWriter, cb *circuitbreaker.CircuitBreaker) *SheetWriterWithCircuitBreaker {
	return &SheetWriterWithCircuitBreaker{
		inner:          inner,
		circuitBreaker: cb,
	}
}

// Append records the order with circuit breaker protection.
// An open circuit surfaces as a transport failure: the order was not recorded
// and the guardian gets the network error message. A missing endpoint URL
// bypasses the breaker since the endpoint itself is fine.
func (w *SheetWriterWithCircuitBreaker) Append(ctx context.Context, order *model.Order) (SheetResult, error) {
	var result SheetResult
	var innerErr error
	err := w.circuitBreaker.Execute(ctx, func() error {
		result, innerErr = w.inner.Append(ctx, order)
		if errors.Is(innerErr, ErrSheetUnconfigured) {
			return nil
		}
		if innerErr == nil && !result.OK {
			return errSheetRejected
		}
		return innerErr
	})
	if errors.Is(err, errSheetRejected) {
		return result, nil
	}
	if err != nil {
		return SheetResult{}, err
	}
	return result, innerErr
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (w *SheetWriterWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return w.circuitBreaker
}

// ConfirmationGeneratorWithCircuitBreaker wraps a ConfirmationGenerator with
// circuit breaker protection.
type ConfirmationGeneratorWithCircuitBreaker struct {
	inner          ConfirmationGenerator
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewConfirmationGeneratorWithCircuitBreaker creates a new generator wrapper with circuit breaker.
func NewConfirmationGeneratorWithCircuitBreaker(inner ConfirmationGenerator, cb *circuitbreaker.CircuitBreaker) *ConfirmationGeneratorWithCircuitBreaker {
	return &ConfirmationGeneratorWithCircuitBreaker{
		inner:          inner,
		circuitBreaker: cb,
	}
}

// Generate produces the confirmation message with circuit breaker protection.
// An open circuit reports the collaborator as unavailable so the caller falls
// back to the locally synthesized message. A missing API key bypasses the
// breaker since the collaborator itself is fine.
func (w *ConfirmationGeneratorWithCircuitBreaker) Generate(ctx context.Context, order *model.Order) (string, error) {
	var text string
	var innerErr error
	err := w.circuitBreaker.Execute(ctx, func() error {
		text, innerErr = w.inner.Generate(ctx, order)
		if innerErr == ErrTextGenUnavailable {
			// The bare sentinel means no API key is configured; nothing was
			// sent over the wire, so this is not an endpoint failure.
			return nil
		}
		return innerErr
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return "", ErrTextGenUnavailable
	}
	if err != nil {
		return "", err
	}
	return text, innerErr
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (w *ConfirmationGeneratorWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return w.circuitBreaker
}
