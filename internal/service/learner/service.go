// Package learner registers and looks up learners.
package learner

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/vilyaua/AI-01/internal/domain"
)

// learnerRepo defines the learner repository interface needed by the service.
type learnerRepo interface {
	Create(ctx context.Context, username string, lang domain.NativeLanguage) (*domain.Learner, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Learner, error)
}

// Service implements learner operations.
type Service struct {
	log      *slog.Logger
	learners learnerRepo
}

// NewService creates a new learner service instance.
func NewService(logger *slog.Logger, learners learnerRepo) *Service {
	return &Service{
		log:      logger.With("service", "learner"),
		learners: learners,
	}
}

// Register creates a learner. The username must be unique.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*domain.Learner, error) {
	in = in.normalized()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	l, err := s.learners.Create(ctx, in.Username, in.NativeLanguage)
	if err != nil {
		return nil, fmt.Errorf("learner.Register: %w", err)
	}

	s.log.InfoContext(ctx, "learner registered",
		slog.String("learner_id", l.ID.String()),
		slog.String("native_language", l.NativeLanguage.String()),
	)
	return l, nil
}

// Get returns a learner by ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Learner, error) {
	l, err := s.learners.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("learner.Get: %w", err)
	}
	return l, nil
}
