// Package enrichment turns raw Spanish text into vocabulary data, derives
// verb conjugations and grades learner answers, using a text-generation
// API when one is configured and deterministic fallbacks otherwise.
package enrichment

import (
	"context"
	"log/slog"

	"github.com/vilyaua/AI-01/internal/adapter/provider/llm"
)

// generator is the text-generation call needed by the service.
type generator interface {
	Generate(ctx context.Context, p llm.Prompt) (string, error)
}

// Service implements enrichment, conjugation and evaluation.
type Service struct {
	log *slog.Logger
	gen generator
}

// NewService creates a new enrichment service. A nil gen selects the
// no-credential fallbacks for every operation.
func NewService(logger *slog.Logger, gen generator) *Service {
	return &Service{
		log: logger.With("service", "enrichment"),
		gen: gen,
	}
}

// Configured reports whether a text-generation API is available.
func (s *Service) Configured() bool {
	return s.gen != nil
}
