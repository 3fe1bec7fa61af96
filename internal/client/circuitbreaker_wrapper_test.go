package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schoolform/order-service/internal/circuitbreaker"
	"github.com/schoolform/order-service/internal/domain/model"
)

type stubSheetWriter struct {
	result SheetResult
	err    error
	calls  int
}

func (s *stubSheetWriter) Append(ctx context.Context, order *model.Order) (SheetResult, error) {
	s.calls++
	return s.result, s.err
}

type stubGenerator struct {
	text  string
	err   error
	calls int
}

func (s *stubGenerator) Generate(ctx context.Context, order *model.Order) (string, error) {
	s.calls++
	return s.text, s.err
}

func newTestBreaker(name string) *circuitbreaker.CircuitBreaker {
	return circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: 2,
		SuccessThreshold: 1,
		Timeout:          time.Minute,
		Name:             name,
	})
}

// TestSheetWriterWithCircuitBreaker_TransportFailuresTrip verifies repeated
// transport errors open the circuit.
func TestSheetWriterWithCircuitBreaker_TransportFailuresTrip(t *testing.T) {
	inner := &stubSheetWriter{err: errors.New("connection refused")}
	cb := newTestBreaker("sheet")
	w := NewSheetWriterWithCircuitBreaker(inner, cb)

	for i := 0; i < 2; i++ {
		_, err := w.Append(context.Background(), testOrder())
		require.Error(t, err)
	}
	assert.True(t, cb.IsOpen())

	// Further calls short-circuit without reaching the endpoint.
	_, err := w.Append(context.Background(), testOrder())
	assert.ErrorIs(t, err, circuitbreaker.ErrCircuitOpen)
	assert.Equal(t, 2, inner.calls)
}

// TestSheetWriterWithCircuitBreaker_UnconfiguredBypasses verifies the missing
// URL sentinel neither trips the breaker nor is swallowed.
func TestSheetWriterWithCircuitBreaker_UnconfiguredBypasses(t *testing.T) {
	inner := &stubSheetWriter{err: ErrSheetUnconfigured}
	cb := newTestBreaker("sheet")
	w := NewSheetWriterWithCircuitBreaker(inner, cb)

	for i := 0; i < 5; i++ {
		_, err := w.Append(context.Background(), testOrder())
		assert.ErrorIs(t, err, ErrSheetUnconfigured)
	}
	assert.False(t, cb.IsOpen())
	assert.Equal(t, 5, inner.calls)
}

// TestSheetWriterWithCircuitBreaker_RejectionTripsButReturnsVerdict verifies an
// application-level rejection counts against the breaker while still reaching
// the caller as a verdict, not an error.
func TestSheetWriterWithCircuitBreaker_RejectionTripsButReturnsVerdict(t *testing.T) {
	inner := &stubSheetWriter{result: SheetResult{OK: false, Message: "quota"}}
	cb := newTestBreaker("sheet")
	w := NewSheetWriterWithCircuitBreaker(inner, cb)

	result, err := w.Append(context.Background(), testOrder())
	require.NoError(t, err)
	assert.False(t, result.OK)
	assert.Equal(t, "quota", result.Message)

	result, err = w.Append(context.Background(), testOrder())
	require.NoError(t, err)
	assert.False(t, result.OK)

	assert.True(t, cb.IsOpen())
}

// TestSheetWriterWithCircuitBreaker_Success passes the verdict through.
func TestSheetWriterWithCircuitBreaker_Success(t *testing.T) {
	inner := &stubSheetWriter{result: SheetResult{OK: true, Message: "recorded"}}
	w := NewSheetWriterWithCircuitBreaker(inner, newTestBreaker("sheet"))

	result, err := w.Append(context.Background(), testOrder())
	require.NoError(t, err)
	assert.True(t, result.OK)
}

// TestConfirmationGeneratorWithCircuitBreaker_OpenCircuitDegrades verifies an
// open circuit surfaces as the unavailable sentinel for fallback handling.
func TestConfirmationGeneratorWithCircuitBreaker_OpenCircuitDegrades(t *testing.T) {
	transportErr := errors.New("connection reset")
	inner := &stubGenerator{err: transportErr}
	cb := newTestBreaker("textgen")
	w := NewConfirmationGeneratorWithCircuitBreaker(inner, cb)

	for i := 0; i < 2; i++ {
		_, err := w.Generate(context.Background(), testOrder())
		assert.ErrorIs(t, err, transportErr)
	}
	require.True(t, cb.IsOpen())

	_, err := w.Generate(context.Background(), testOrder())
	assert.ErrorIs(t, err, ErrTextGenUnavailable)
	assert.Equal(t, 2, inner.calls)
}

// TestConfirmationGeneratorWithCircuitBreaker_MissingKeyBypasses verifies the
// bare no-key sentinel does not count against the breaker.
func TestConfirmationGeneratorWithCircuitBreaker_MissingKeyBypasses(t *testing.T) {
	inner := &stubGenerator{err: ErrTextGenUnavailable}
	cb := newTestBreaker("textgen")
	w := NewConfirmationGeneratorWithCircuitBreaker(inner, cb)

	for i := 0; i < 5; i++ {
		_, err := w.Generate(context.Background(), testOrder())
		assert.ErrorIs(t, err, ErrTextGenUnavailable)
	}
	assert.False(t, cb.IsOpen())
	assert.Equal(t, 5, inner.calls)
}

// TestConfirmationGeneratorWithCircuitBreaker_Success passes text through.
func TestConfirmationGeneratorWithCircuitBreaker_Success(t *testing.T) {
	inner := &stubGenerator{text: "ご注文ありがとうございます"}
	w := NewConfirmationGeneratorWithCircuitBreaker(inner, newTestBreaker("textgen"))

	text, err := w.Generate(context.Background(), testOrder())
	require.NoError(t, err)
	assert.Equal(t, "ご注文ありがとうございます", text)
}
