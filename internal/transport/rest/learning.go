package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/vilyaua/AI-01/internal/domain"
	"github.com/vilyaua/AI-01/internal/service/learning"
)

type learningService interface {
	NextQuestion(ctx context.Context, learnerID uuid.UUID) (*learning.Question, error)
	SubmitAnswer(ctx context.Context, learnerID uuid.UUID, in learning.SubmitInput) (*learning.SubmitResult, error)
	History(ctx context.Context, learnerID uuid.UUID, limit int) ([]domain.EvaluationRecord, error)
	Stats(ctx context.Context, learnerID uuid.UUID) (domain.LearningStats, error)
}

// LearningHandler serves /api/learning.
type LearningHandler struct {
	svc learningService
	log *slog.Logger
}

// NewLearningHandler creates a LearningHandler.
func NewLearningHandler(svc learningService, logger *slog.Logger) *LearningHandler {
	return &LearningHandler{svc: svc, log: logger.With("handler", "learning")}
}

type answerRequest struct {
	VocabularyID uuid.UUID `json:"vocabulary_id"`
	UserAnswer   string    `json:"user_answer"`
}

// Question handles GET /api/learning/{user_id}/question.
func (h *LearningHandler) Question(w http.ResponseWriter, r *http.Request) {
	learnerID, err := pathID(r, "user_id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	q, err := h.svc.NextQuestion(r.Context(), learnerID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toQuestionResponse(q))
}

// Answer handles POST /api/learning/{user_id}/answer.
func (h *LearningHandler) Answer(w http.ResponseWriter, r *http.Request) {
	learnerID, err := pathID(r, "user_id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req answerRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.svc.SubmitAnswer(r.Context(), learnerID, learning.SubmitInput{
		EntryID:    req.VocabularyID,
		UserAnswer: req.UserAnswer,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, evaluationResponse{
		IsCorrect:     res.Evaluation.IsCorrect,
		CorrectAnswer: res.Evaluation.CorrectAnswer,
		Explanation:   res.Evaluation.Explanation,
	})
}

// History handles GET /api/learning/{user_id}/history?limit=N.
func (h *LearningHandler) History(w http.ResponseWriter, r *http.Request) {
	learnerID, err := pathID(r, "user_id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 0 {
			handleError(h.log, w, r, domain.NewValidationError("limit", "must be a non-negative integer"))
			return
		}
	}

	records, err := h.svc.History(r.Context(), learnerID, limit)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toRecordResponses(records))
}

// Stats handles GET /api/learning/{user_id}/stats.
func (h *LearningHandler) Stats(w http.ResponseWriter, r *http.Request) {
	learnerID, err := pathID(r, "user_id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	st, err := h.svc.Stats(r.Context(), learnerID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, statsResponse{
		Entries:        st.Entries,
		Verbs:          st.Verbs,
		TimesCorrect:   st.TimesCorrect,
		TimesIncorrect: st.TimesIncorrect,
		Evaluations:    st.Evaluations,
	})
}
