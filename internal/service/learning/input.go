package learning

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/vilyaua/AI-01/internal/domain"
)

const (
	maxAnswerLength     = 200
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// SubmitInput holds a learner's answer to a question.
type SubmitInput struct {
	EntryID    uuid.UUID
	UserAnswer string
}

// Validate validates the submit input.
func (i SubmitInput) Validate() error {
	var errs []domain.FieldError

	if i.EntryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "vocabulary_id", Message: "required"})
	}
	if utf8.RuneCountInString(strings.TrimSpace(i.UserAnswer)) > maxAnswerLength {
		errs = append(errs, domain.FieldError{Field: "user_answer", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func clampHistoryLimit(limit int) int {
	switch {
	case limit <= 0:
		return defaultHistoryLimit
	case limit > maxHistoryLimit:
		return maxHistoryLimit
	}
	return limit
}
