package llm

import (
	"context"
	"errors"
	"log/slog"

	"github.com/youngmea/airo/internal/config"
	"github.com/youngmea/airo/internal/resilience"
)

// guarded sends every call through a circuit breaker.
type guarded struct {
	next    Generator
	breaker *resilience.CircuitBreaker
}

// Guard wraps gen with a circuit breaker configured from cfg. After
// cfg.BreakerFailures consecutive failures, calls fail fast with an error
// wrapping resilience.ErrCircuitOpen until cfg.BreakerCooldown has passed.
// Empty or blocked responses do not count as failures.
func Guard(gen Generator, cfg config.LLMConfig, logger *slog.Logger) Generator {
	breaker := resilience.NewCircuitBreaker(resilience.CircuitBreakerConfig{
		Name:        "llm_" + cfg.Provider,
		MaxFailures: cfg.BreakerFailures,
		Cooldown:    cfg.BreakerCooldown,
		Ignore: func(err error) bool {
			return errors.Is(err, ErrEmptyResponse)
		},
	}, logger)
	return &guarded{next: gen, breaker: breaker}
}

func (g *guarded) Generate(ctx context.Context, req Request) (string, error) {
	var text string
	err := g.breaker.Execute(ctx, func(ctx context.Context) error {
		var err error
		text, err = g.next.Generate(ctx, req)
		return err
	})
	if err != nil {
		return "", err
	}
	return text, nil
}
