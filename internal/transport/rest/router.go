package rest

import (
	"net/http"

	"github.com/vilyaua/AI-01/internal/transport/middleware"
)

// Handlers groups every REST handler mounted by NewRouter.
type Handlers struct {
	Health     *HealthHandler
	Learner    *LearnerHandler
	Vocabulary *VocabularyHandler
	Learning   *LearningHandler
}

// NewRouter registers all routes on a ServeMux and wraps it in mw.
func NewRouter(h Handlers, mw middleware.Middleware) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", h.Health.Root)
	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("POST /api/users", h.Learner.Register)
	mux.HandleFunc("GET /api/users/{user_id}", h.Learner.Get)

	mux.HandleFunc("POST /api/vocabulary/{user_id}", h.Vocabulary.AddManual)
	mux.HandleFunc("POST /api/vocabulary/{user_id}/from-text", h.Vocabulary.AddFromText)
	mux.HandleFunc("POST /api/vocabulary/{user_id}/from-image", h.Vocabulary.AddFromImage)
	mux.HandleFunc("POST /api/vocabulary/{user_id}/from-audio", h.Vocabulary.AddFromAudio)
	mux.HandleFunc("GET /api/vocabulary/{user_id}", h.Vocabulary.List)
	mux.HandleFunc("GET /api/entries/{vocab_id}", h.Vocabulary.Get)
	mux.HandleFunc("GET /api/vocabulary/{vocab_id}/conjugation", h.Vocabulary.Conjugation)

	mux.HandleFunc("GET /api/learning/{user_id}/question", h.Learning.Question)
	mux.HandleFunc("POST /api/learning/{user_id}/answer", h.Learning.Answer)
	mux.HandleFunc("GET /api/learning/{user_id}/history", h.Learning.History)
	mux.HandleFunc("GET /api/learning/{user_id}/stats", h.Learning.Stats)

	if mw == nil {
		return mux
	}
	return mw(mux)
}
