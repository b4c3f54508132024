package vocabulary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/vilyaua/AI-01/internal/domain"
)

// List returns a learner's entries, newest first.
func (s *Service) List(ctx context.Context, learnerID uuid.UUID) ([]domain.VocabularyEntry, error) {
	if _, err := s.learners.GetByID(ctx, learnerID); err != nil {
		return nil, fmt.Errorf("vocabulary.List: %w", err)
	}
	entries, err := s.entries.ListByLearner(ctx, learnerID)
	if err != nil {
		return nil, fmt.Errorf("vocabulary.List: %w", err)
	}
	return entries, nil
}

// Get returns one entry.
func (s *Service) Get(ctx context.Context, entryID uuid.UUID) (*domain.VocabularyEntry, error) {
	e, err := s.entries.GetByID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("vocabulary.Get: %w", err)
	}
	return e, nil
}

// GetConjugation returns the conjugation of a verb entry, deriving and
// storing it on first request. Repeated or concurrent calls converge on one
// stored row.
func (s *Service) GetConjugation(ctx context.Context, entryID uuid.UUID) (*domain.Conjugation, error) {
	entry, err := s.entries.GetByID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("vocabulary.GetConjugation: %w", err)
	}
	if !entry.IsVerb {
		return nil, fmt.Errorf("vocabulary.GetConjugation: %w", domain.ErrNotAVerb)
	}

	conj, err := s.conjugations.GetByEntryID(ctx, entryID)
	if err == nil {
		return conj, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("vocabulary.GetConjugation: %w", err)
	}

	forms, err := s.enricher.Conjugate(ctx, entry.WordSpanish)
	if err != nil {
		return nil, fmt.Errorf("vocabulary.GetConjugation: %w", err)
	}
	conj, err = s.conjugations.CreateIfAbsent(ctx, entryID, forms)
	if err != nil {
		return nil, fmt.Errorf("vocabulary.GetConjugation: %w", err)
	}

	s.log.InfoContext(ctx, "conjugation derived lazily", slog.String("entry_id", entryID.String()))
	return conj, nil
}
