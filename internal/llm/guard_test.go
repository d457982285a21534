package llm

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/youngmea/airo/internal/config"
	"github.com/youngmea/airo/internal/resilience"
)

func TestGuardFailsFastWhenOpen(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	backend := GeneratorFunc(func(context.Context, Request) (string, error) {
		calls.Add(1)
		return "", errors.New("503")
	})
	g := Guard(backend, config.LLMConfig{Provider: "gemini", BreakerFailures: 2, BreakerCooldown: time.Hour}, discardLogger())

	for i := 0; i < 2; i++ {
		_, err := g.Generate(context.Background(), Request{Prompt: "p"})
		require.Error(t, err)
	}
	_, err := g.Generate(context.Background(), Request{Prompt: "p"})
	assert.ErrorIs(t, err, resilience.ErrCircuitOpen)
	assert.Equal(t, int32(2), calls.Load())
}

func TestGuardPassesTextAndIgnoresEmpty(t *testing.T) {
	t.Parallel()

	var empty atomic.Bool
	backend := GeneratorFunc(func(_ context.Context, req Request) (string, error) {
		if empty.Load() {
			return "", ErrEmptyResponse
		}
		return "echo " + req.Prompt, nil
	})
	g := Guard(backend, config.LLMConfig{Provider: "openai", BreakerFailures: 1, BreakerCooldown: time.Hour}, discardLogger())

	got, err := g.Generate(context.Background(), Request{Prompt: "salom"})
	require.NoError(t, err)
	assert.Equal(t, "echo salom", got)

	empty.Store(true)
	for i := 0; i < 3; i++ {
		_, err = g.Generate(context.Background(), Request{Prompt: "x"})
		assert.ErrorIs(t, err, ErrEmptyResponse)
	}

	empty.Store(false)
	got, err = g.Generate(context.Background(), Request{Prompt: "again"})
	require.NoError(t, err)
	assert.Equal(t, "echo again", got)
}
