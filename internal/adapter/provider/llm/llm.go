// Package llm adapts hosted text-generation APIs to a single Generator
// interface used by the enrichment workflows.
package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/vilyaua/AI-01/internal/config"
	"github.com/vilyaua/AI-01/internal/domain"
)

// Prompt is one system + user instruction pair.
type Prompt struct {
	System      string
	User        string
	Temperature float32

	// Accept reports whether a reply decodes into what the caller needs.
	// Caching layers keep only accepted replies. It is not sent to the model
	// and is not part of the cache key.
	Accept func(reply string) error
}

// accepted applies p.Accept, or requires a JSON object when it is unset.
func (p Prompt) accepted(reply string) bool {
	if p.Accept != nil {
		return p.Accept(reply) == nil
	}
	_, err := ExtractJSON(reply)
	return err == nil
}

// Generator produces raw text for a prompt.
type Generator interface {
	Generate(ctx context.Context, p Prompt) (string, error)
}

// errEmptyResponse is returned by vendor clients when the API answered
// without any text content.
var errEmptyResponse = fmt.Errorf("empty completion: %w", domain.ErrMalformedResponse)

// New builds the configured vendor client wrapped with timeout, retry and
// circuit breaking. It returns a nil Generator when no API key is set.
func New(ctx context.Context, cfg config.LLMConfig, logger *slog.Logger) (Generator, error) {
	if !cfg.Enabled() {
		return nil, nil
	}

	model := cfg.ModelOrDefault()

	var (
		client Generator
		err    error
	)
	switch cfg.Provider {
	case config.ProviderOpenAI:
		client = NewOpenAI(cfg.APIKey, cfg.BaseURL, model, cfg.MaxTokens)
	case config.ProviderAnthropic:
		client = NewAnthropic(cfg.APIKey, cfg.BaseURL, model, cfg.MaxTokens)
	case config.ProviderGemini:
		client, err = NewGemini(ctx, cfg.APIKey, cfg.BaseURL, model, cfg.MaxTokens)
	default:
		err = errors.New("unsupported provider " + cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("llm.New: %w", err)
	}

	logger.Info("text generation enabled",
		slog.String("provider", cfg.Provider),
		slog.String("model", model),
	)

	return NewResilient(client, ResilientOptions{
		Name:            cfg.Provider,
		Timeout:         cfg.Timeout,
		MaxRetries:      cfg.MaxRetries,
		RetryBackoff:    cfg.RetryBackoff,
		BreakerFailures: cfg.BreakerFailures,
		BreakerCooldown: cfg.BreakerCooldown,
	}, logger), nil
}

// statusError carries the HTTP status of a failed vendor call so the retry
// policy can tell client errors from transient ones.
type statusError struct {
	provider string
	status   int
	err      error
}

func (e *statusError) Error() string {
	return fmt.Sprintf("%s: status %d: %v", e.provider, e.status, e.err)
}

func (e *statusError) Unwrap() error { return e.err }

// permanent reports whether retrying err cannot help.
func permanent(err error) bool {
	if errors.Is(err, domain.ErrMalformedResponse) {
		return true
	}
	var se *statusError
	if errors.As(err, &se) {
		return se.status >= 400 && se.status < 500 && se.status != 429
	}
	return false
}
