package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sethvargo/go-retry"
	"github.com/sony/gobreaker"

	"github.com/vilyaua/AI-01/internal/domain"
)

// ResilientOptions configures Resilient.
type ResilientOptions struct {
	Name            string
	Timeout         time.Duration
	MaxRetries      int
	RetryBackoff    time.Duration
	BreakerFailures int
	BreakerCooldown time.Duration
}

// Resilient wraps a Generator with a per-attempt timeout, exponential
// retries on transient failures and a circuit breaker.
//
// Every failure it returns wraps either domain.ErrUpstream or
// domain.ErrMalformedResponse.
type Resilient struct {
	next    Generator
	breaker *gobreaker.CircuitBreaker
	opts    ResilientOptions
	log     *slog.Logger
}

// NewResilient wraps next.
func NewResilient(next Generator, opts ResilientOptions, logger *slog.Logger) *Resilient {
	log := logger.With("provider", opts.Name)

	failures := uint32(max(opts.BreakerFailures, 1))
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "llm-" + opts.Name,
		Timeout: opts.BreakerCooldown,
		ReadyToTrip: func(c gobreaker.Counts) bool {
			return c.ConsecutiveFailures >= failures
		},
		// Bad output is the model's fault, not the endpoint's.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, domain.ErrMalformedResponse) || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("circuit breaker state changed",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	return &Resilient{next: next, breaker: breaker, opts: opts, log: log}
}

// Generate implements Generator.
func (r *Resilient) Generate(ctx context.Context, p Prompt) (string, error) {
	out, err := r.breaker.Execute(func() (interface{}, error) {
		return r.generateWithRetry(ctx, p)
	})
	if err != nil {
		if errors.Is(err, domain.ErrMalformedResponse) {
			return "", fmt.Errorf("llm.Generate: %w", err)
		}
		return "", fmt.Errorf("llm.Generate: %w: %w", domain.ErrUpstream, err)
	}
	return out.(string), nil
}

func (r *Resilient) generateWithRetry(ctx context.Context, p Prompt) (string, error) {
	base := r.opts.RetryBackoff
	if base <= 0 {
		base = 100 * time.Millisecond
	}
	backoff := retry.WithMaxRetries(uint64(max(r.opts.MaxRetries, 0)), retry.NewExponential(base))

	var (
		out     string
		attempt int
	)
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++

		callCtx := ctx
		if r.opts.Timeout > 0 {
			var cancel context.CancelFunc
			callCtx, cancel = context.WithTimeout(ctx, r.opts.Timeout)
			defer cancel()
		}

		text, err := r.next.Generate(callCtx, p)
		if err == nil {
			out = text
			return nil
		}
		if ctx.Err() != nil || permanent(err) {
			return err
		}

		r.log.Warn("generation attempt failed",
			slog.Int("attempt", attempt),
			slog.String("error", err.Error()),
		)
		return retry.RetryableError(err)
	})
	return out, err
}
