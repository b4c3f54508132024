package learning

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/vilyaua/AI-01/internal/domain"
	"github.com/vilyaua/AI-01/internal/service/enrichment"
)

// NextQuestion picks the entry reviewed least recently, never-reviewed
// entries first.
func (s *Service) NextQuestion(ctx context.Context, learnerID uuid.UUID) (*Question, error) {
	if _, err := s.learners.GetByID(ctx, learnerID); err != nil {
		return nil, fmt.Errorf("learning.NextQuestion: %w", err)
	}

	entry, err := s.entries.NextForReview(ctx, learnerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("learning.NextQuestion: no vocabulary found for learner: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("learning.NextQuestion: %w", err)
	}

	return &Question{
		EntryID:       entry.ID,
		Question:      entry.Question(),
		CorrectAnswer: entry.WordSpanish,
		WordType:      entry.WordType,
	}, nil
}

// SubmitAnswer grades an answer, then updates the entry statistics and
// appends an evaluation record in one transaction.
func (s *Service) SubmitAnswer(ctx context.Context, learnerID uuid.UUID, in SubmitInput) (*SubmitResult, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	learner, err := s.learners.GetByID(ctx, learnerID)
	if err != nil {
		return nil, fmt.Errorf("learning.SubmitAnswer: %w", err)
	}
	entry, err := s.entries.GetByID(ctx, in.EntryID)
	if err != nil {
		return nil, fmt.Errorf("learning.SubmitAnswer: %w", err)
	}
	if entry.LearnerID != learner.ID {
		return nil, fmt.Errorf("learning.SubmitAnswer: entry %s: %w", in.EntryID, domain.ErrNotFound)
	}

	ev := s.evaluator.Evaluate(ctx, enrichment.EvaluateInput{
		UserAnswer:     in.UserAnswer,
		Question:       entry.WordNative,
		CorrectAnswer:  entry.WordSpanish,
		NativeLanguage: learner.NativeLanguage,
	})

	var res SubmitResult
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		updated, err := s.entries.RecordReview(ctx, entry.ID, ev.IsCorrect, s.now())
		if err != nil {
			return err
		}
		rec, err := s.evaluations.Create(ctx, domain.EvaluationRecord{
			LearnerID:     learner.ID,
			EntryID:       entry.ID,
			UserAnswer:    in.UserAnswer,
			CorrectAnswer: entry.WordSpanish,
			IsCorrect:     ev.IsCorrect,
			Explanation:   ev.Explanation,
		})
		if err != nil {
			return err
		}
		res.Entry = *updated
		res.Record = *rec
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("learning.SubmitAnswer: %w", err)
	}
	res.Evaluation = ev

	s.log.InfoContext(ctx, "answer graded",
		slog.String("learner_id", learner.ID.String()),
		slog.String("entry_id", entry.ID.String()),
		slog.Bool("correct", ev.IsCorrect),
	)
	return &res, nil
}
