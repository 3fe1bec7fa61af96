package circuitbreaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

func newBreaker(timeout time.Duration) *CircuitBreaker {
	return New(Config{
		FailureThreshold: 3,
		SuccessThreshold: 2,
		Timeout:          timeout,
		Name:             "test",
	})
}

func fail(cb *CircuitBreaker) error {
	return cb.Execute(context.Background(), func() error { return errBoom })
}

func succeed(cb *CircuitBreaker) error {
	return cb.Execute(context.Background(), func() error { return nil })
}

// TestCircuitBreaker_OpensAfterThreshold tests the closed-to-open transition.
func TestCircuitBreaker_OpensAfterThreshold(t *testing.T) {
	cb := newBreaker(time.Minute)
	assert.Equal(t, StateClosed, cb.State())

	for i := 0; i < 2; i++ {
		assert.ErrorIs(t, fail(cb), errBoom)
		assert.Equal(t, StateClosed, cb.State())
	}

	assert.ErrorIs(t, fail(cb), errBoom)
	assert.Equal(t, StateOpen, cb.State())
	assert.True(t, cb.IsOpen())

	// Open circuit rejects without running fn.
	called := false
	err := cb.Execute(context.Background(), func() error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.False(t, called)
}

// TestCircuitBreaker_SuccessResetsFailureCount verifies intermittent failures
// below the threshold never open the circuit.
func TestCircuitBreaker_SuccessResetsFailureCount(t *testing.T) {
	cb := newBreaker(time.Minute)

	for i := 0; i < 10; i++ {
		require.ErrorIs(t, fail(cb), errBoom)
		require.ErrorIs(t, fail(cb), errBoom)
		require.NoError(t, succeed(cb))
	}
	assert.Equal(t, StateClosed, cb.State())
}

// TestCircuitBreaker_HalfOpenRecovery tests the probe and close path.
func TestCircuitBreaker_HalfOpenRecovery(t *testing.T) {
	cb := newBreaker(10 * time.Millisecond)

	for i := 0; i < 3; i++ {
		fail(cb)
	}
	require.True(t, cb.IsOpen())

	time.Sleep(15 * time.Millisecond)

	// First probe moves to half-open; SuccessThreshold successes close it.
	require.NoError(t, succeed(cb))
	assert.Equal(t, StateHalfOpen, cb.State())
	require.NoError(t, succeed(cb))
	assert.Equal(t, StateClosed, cb.State())
}

// TestCircuitBreaker_HalfOpenFailureReopens tests the probe failure path.
func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	cb := newBreaker(10 * time.Millisecond)

	for i := 0; i < 3; i++ {
		fail(cb)
	}
	require.True(t, cb.IsOpen())

	time.Sleep(15 * time.Millisecond)

	assert.ErrorIs(t, fail(cb), errBoom)
	assert.Equal(t, StateOpen, cb.State())
}

// TestCircuitBreaker_ContextCancellation verifies a cancelled context is
// reported without counting as an endpoint failure.
func TestCircuitBreaker_ContextCancellation(t *testing.T) {
	cb := newBreaker(time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := cb.Execute(ctx, func() error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, StateClosed, cb.State())
	assert.Zero(t, cb.GetStats().FailureCount)
}

// TestCircuitBreaker_GetStats tests the readiness view.
func TestCircuitBreaker_GetStats(t *testing.T) {
	cb := newBreaker(time.Minute)

	stats := cb.GetStats()
	assert.Equal(t, "closed", stats.State)
	assert.True(t, stats.IsHealthy)

	for i := 0; i < 3; i++ {
		fail(cb)
	}

	stats = cb.GetStats()
	assert.Equal(t, "open", stats.State)
	assert.False(t, stats.IsHealthy)
	assert.Equal(t, 3, stats.FailureCount)
	assert.False(t, stats.LastFailure.IsZero())
}
