package resilience

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/youngmea/airo/internal/logger"
)

var (
	errBackend = errors.New("backend down")
	errIgnored = errors.New("blocked prompt")
)

func failing(err error) func(context.Context) error {
	return func(context.Context) error { return err }
}

func TestCircuitOpensAfterConsecutiveFailures(t *testing.T) {
	b := NewCircuitBreaker(CircuitBreakerConfig{Name: "test", MaxFailures: 3, Cooldown: time.Hour}, logger.Discard())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		assert.ErrorIs(t, b.Execute(ctx, failing(errBackend)), errBackend)
	}
	assert.Equal(t, "open", b.State())

	called := false
	err := b.Execute(ctx, func(context.Context) error { called = true; return nil })
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.False(t, called, "open circuit must not call the operation")
}

func TestSuccessResetsFailureCount(t *testing.T) {
	b := NewCircuitBreaker(CircuitBreakerConfig{Name: "test", MaxFailures: 2, Cooldown: time.Hour}, logger.Discard())
	ctx := context.Background()

	_ = b.Execute(ctx, failing(errBackend))
	require.NoError(t, b.Execute(ctx, failing(nil)))
	_ = b.Execute(ctx, failing(errBackend))

	assert.Equal(t, "closed", b.State())
}

func TestIgnoredAndCanceledErrorsDoNotTrip(t *testing.T) {
	b := NewCircuitBreaker(CircuitBreakerConfig{
		Name:        "test",
		MaxFailures: 1,
		Cooldown:    time.Hour,
		Ignore:      func(err error) bool { return errors.Is(err, errIgnored) },
	}, logger.Discard())
	ctx := context.Background()

	assert.ErrorIs(t, b.Execute(ctx, failing(errIgnored)), errIgnored)
	assert.ErrorIs(t, b.Execute(ctx, failing(context.Canceled)), context.Canceled)
	assert.Equal(t, "closed", b.State())

	_ = b.Execute(ctx, failing(context.DeadlineExceeded))
	assert.Equal(t, "open", b.State(), "timeouts count as failures")
}

func TestCircuitHalfOpensAfterCooldown(t *testing.T) {
	b := NewCircuitBreaker(CircuitBreakerConfig{Name: "test", MaxFailures: 1, Cooldown: 20 * time.Millisecond}, logger.Discard())
	ctx := context.Background()

	_ = b.Execute(ctx, failing(errBackend))
	assert.Equal(t, "open", b.State())

	time.Sleep(40 * time.Millisecond)
	assert.Equal(t, "half-open", b.State())

	require.NoError(t, b.Execute(ctx, failing(nil)))
	assert.Equal(t, "closed", b.State())
}
