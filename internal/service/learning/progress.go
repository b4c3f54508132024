package learning

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/vilyaua/AI-01/internal/domain"
)

// History returns the most recent evaluation records of a learner.
func (s *Service) History(ctx context.Context, learnerID uuid.UUID, limit int) ([]domain.EvaluationRecord, error) {
	if _, err := s.learners.GetByID(ctx, learnerID); err != nil {
		return nil, fmt.Errorf("learning.History: %w", err)
	}
	recs, err := s.evaluations.ListByLearner(ctx, learnerID, clampHistoryLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("learning.History: %w", err)
	}
	return recs, nil
}

// Stats aggregates a learner's vocabulary and evaluation totals.
func (s *Service) Stats(ctx context.Context, learnerID uuid.UUID) (domain.LearningStats, error) {
	if _, err := s.learners.GetByID(ctx, learnerID); err != nil {
		return domain.LearningStats{}, fmt.Errorf("learning.Stats: %w", err)
	}

	var (
		stats       domain.LearningStats
		evaluations int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stats, err = s.entries.Stats(gctx, learnerID)
		return err
	})
	g.Go(func() error {
		var err error
		evaluations, err = s.evaluations.CountByLearner(gctx, learnerID)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.LearningStats{}, fmt.Errorf("learning.Stats: %w", err)
	}

	stats.Evaluations = evaluations
	return stats, nil
}
