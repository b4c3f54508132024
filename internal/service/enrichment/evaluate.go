package enrichment

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/vilyaua/AI-01/internal/adapter/provider/llm"
	"github.com/vilyaua/AI-01/internal/domain"
)

// EvaluateInput holds one answer to grade.
type EvaluateInput struct {
	UserAnswer     string
	Question       string // native-language prompt shown to the learner
	CorrectAnswer  string // accepted Spanish form
	NativeLanguage domain.NativeLanguage
}

type evaluateReply struct {
	IsCorrect     *bool   `json:"is_correct"`
	CorrectAnswer *string `json:"correct_answer"`
	Explanation   *string `json:"explanation"`
}

// Evaluate grades an answer. It never fails: when no generator is
// configured, or the configured one fails, the answer is compared with
// domain.AnswersMatch and explained by fallbackExplanation.
func (s *Service) Evaluate(ctx context.Context, in EvaluateInput) domain.Evaluation {
	if s.gen == nil {
		return fallbackEvaluation(in)
	}

	ev, err := s.evaluateWithModel(ctx, in)
	if err != nil {
		s.log.WarnContext(ctx, "evaluation fell back to exact match", slog.String("error", err.Error()))
		return fallbackEvaluation(in)
	}
	return ev
}

func (s *Service) evaluateWithModel(ctx context.Context, in EvaluateInput) (domain.Evaluation, error) {
	reply, err := s.gen.Generate(ctx, evaluatePrompt(in))
	if err != nil {
		return domain.Evaluation{}, fmt.Errorf("enrichment.Evaluate: %w", err)
	}

	ev, err := parseEvaluation(reply, in.CorrectAnswer)
	if err != nil {
		return domain.Evaluation{}, fmt.Errorf("enrichment.Evaluate: %w", err)
	}
	return ev, nil
}

// parseEvaluation decodes a grading reply. The model's correct_answer wins
// over expected when present.
func parseEvaluation(reply, expected string) (domain.Evaluation, error) {
	var out evaluateReply
	if err := llm.DecodeJSON(reply, &out); err != nil {
		return domain.Evaluation{}, err
	}
	if out.IsCorrect == nil || out.Explanation == nil {
		return domain.Evaluation{}, fmt.Errorf("missing field: %w", domain.ErrMalformedResponse)
	}

	ev := domain.Evaluation{
		IsCorrect:     *out.IsCorrect,
		CorrectAnswer: expected,
		Explanation:   strings.TrimSpace(*out.Explanation),
	}
	if out.CorrectAnswer != nil && strings.TrimSpace(*out.CorrectAnswer) != "" {
		ev.CorrectAnswer = strings.TrimSpace(*out.CorrectAnswer)
	}
	return ev, nil
}

func fallbackEvaluation(in EvaluateInput) domain.Evaluation {
	correct := domain.AnswersMatch(in.UserAnswer, in.CorrectAnswer)
	return domain.Evaluation{
		IsCorrect:     correct,
		CorrectAnswer: in.CorrectAnswer,
		Explanation:   fallbackExplanation(in.CorrectAnswer, correct),
	}
}

// fallbackExplanation is the single message used by both fallback paths.
func fallbackExplanation(correctAnswer string, correct bool) string {
	msg := fmt.Sprintf("The correct answer is '%s'.", correctAnswer)
	if !correct {
		msg += " Keep practicing!"
	}
	return msg
}
