// Package learning runs translation drills: it picks the next word to
// review, grades answers and keeps per-entry statistics and an evaluation
// log.
package learning

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/vilyaua/AI-01/internal/domain"
	"github.com/vilyaua/AI-01/internal/service/enrichment"
)

type learnerRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Learner, error)
}

type entryRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.VocabularyEntry, error)
	NextForReview(ctx context.Context, learnerID uuid.UUID) (*domain.VocabularyEntry, error)
	RecordReview(ctx context.Context, id uuid.UUID, correct bool, at time.Time) (*domain.VocabularyEntry, error)
	Stats(ctx context.Context, learnerID uuid.UUID) (domain.LearningStats, error)
}

type evaluationRepo interface {
	Create(ctx context.Context, rec domain.EvaluationRecord) (*domain.EvaluationRecord, error)
	ListByLearner(ctx context.Context, learnerID uuid.UUID, limit int) ([]domain.EvaluationRecord, error)
	CountByLearner(ctx context.Context, learnerID uuid.UUID) (int, error)
}

type evaluator interface {
	Evaluate(ctx context.Context, in enrichment.EvaluateInput) domain.Evaluation
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements learning operations.
type Service struct {
	log         *slog.Logger
	learners    learnerRepo
	entries     entryRepo
	evaluations evaluationRepo
	evaluator   evaluator
	tx          txManager
	now         func() time.Time
}

// NewService creates a new learning service instance.
func NewService(
	logger *slog.Logger,
	learners learnerRepo,
	entries entryRepo,
	evaluations evaluationRepo,
	evaluator evaluator,
	tx txManager,
) *Service {
	return &Service{
		log:         logger.With("service", "learning"),
		learners:    learners,
		entries:     entries,
		evaluations: evaluations,
		evaluator:   evaluator,
		tx:          tx,
		now:         func() time.Time { return time.Now().UTC() },
	}
}
