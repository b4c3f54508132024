package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/vilyaua/AI-01/internal/domain"
	"github.com/vilyaua/AI-01/internal/service/learner"
)

type learnerService interface {
	Register(ctx context.Context, in learner.RegisterInput) (*domain.Learner, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Learner, error)
}

// LearnerHandler serves /api/users.
type LearnerHandler struct {
	svc learnerService
	log *slog.Logger
}

// NewLearnerHandler creates a LearnerHandler.
func NewLearnerHandler(svc learnerService, logger *slog.Logger) *LearnerHandler {
	return &LearnerHandler{svc: svc, log: logger.With("handler", "learner")}
}

type registerRequest struct {
	Username       string `json:"username"`
	NativeLanguage string `json:"native_language"`
}

// Register handles POST /api/users.
func (h *LearnerHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	l, err := h.svc.Register(r.Context(), learner.RegisterInput{
		Username:       req.Username,
		NativeLanguage: domain.NativeLanguage(req.NativeLanguage),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toLearnerResponse(l))
}

// Get handles GET /api/users/{user_id}.
func (h *LearnerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "user_id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	l, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toLearnerResponse(l))
}
