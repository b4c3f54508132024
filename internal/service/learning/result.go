package learning

import (
	"github.com/google/uuid"

	"github.com/vilyaua/AI-01/internal/domain"
)

// Question is one translation prompt.
type Question struct {
	EntryID       uuid.UUID
	Question      string
	CorrectAnswer string
	WordType      string
}

// SubmitResult is the outcome of a graded answer.
type SubmitResult struct {
	Evaluation domain.Evaluation
	Entry      domain.VocabularyEntry
	Record     domain.EvaluationRecord
}
