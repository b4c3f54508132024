package rest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/vilyaua/AI-01/internal/domain"
	"github.com/vilyaua/AI-01/internal/service/vocabulary"
)

type vocabularyService interface {
	AddManual(ctx context.Context, learnerID uuid.UUID, in vocabulary.ManualInput) (*vocabulary.AddResult, error)
	AddFromText(ctx context.Context, learnerID uuid.UUID, text string) (*vocabulary.AddResult, error)
	AddFromImage(ctx context.Context, learnerID uuid.UUID, image []byte) (*vocabulary.AddResult, error)
	AddFromAudio(ctx context.Context, learnerID uuid.UUID, audio []byte, filename string) (*vocabulary.AddResult, error)
	List(ctx context.Context, learnerID uuid.UUID) ([]domain.VocabularyEntry, error)
	Get(ctx context.Context, entryID uuid.UUID) (*domain.VocabularyEntry, error)
	GetConjugation(ctx context.Context, entryID uuid.UUID) (*domain.Conjugation, error)
}

// VocabularyHandler serves vocabulary entry and conjugation endpoints.
type VocabularyHandler struct {
	svc       vocabularyService
	log       *slog.Logger
	maxUpload int64
}

// NewVocabularyHandler creates a VocabularyHandler. maxUpload caps the
// request body of the media endpoints.
func NewVocabularyHandler(svc vocabularyService, logger *slog.Logger, maxUpload int64) *VocabularyHandler {
	return &VocabularyHandler{svc: svc, log: logger.With("handler", "vocabulary"), maxUpload: maxUpload}
}

type manualEntryRequest struct {
	WordSpanish string `json:"word_spanish"`
	WordNative  string `json:"word_native"`
	WordType    string `json:"word_type"`
}

type textEntryRequest struct {
	Text string `json:"text"`
}

// AddManual handles POST /api/vocabulary/{user_id}.
func (h *VocabularyHandler) AddManual(w http.ResponseWriter, r *http.Request) {
	learnerID, err := pathID(r, "user_id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req manualEntryRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.svc.AddManual(r.Context(), learnerID, vocabulary.ManualInput{
		WordSpanish: req.WordSpanish,
		WordNative:  req.WordNative,
		WordType:    req.WordType,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toAddEntryResponse(res))
}

// AddFromText handles POST /api/vocabulary/{user_id}/from-text.
func (h *VocabularyHandler) AddFromText(w http.ResponseWriter, r *http.Request) {
	learnerID, err := pathID(r, "user_id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req textEntryRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.svc.AddFromText(r.Context(), learnerID, req.Text)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toAddEntryResponse(res))
}

// AddFromImage handles POST /api/vocabulary/{user_id}/from-image.
func (h *VocabularyHandler) AddFromImage(w http.ResponseWriter, r *http.Request) {
	learnerID, err := pathID(r, "user_id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	data, _, ok := h.readUpload(w, r)
	if !ok {
		return
	}

	res, err := h.svc.AddFromImage(r.Context(), learnerID, data)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toAddEntryResponse(res))
}

// AddFromAudio handles POST /api/vocabulary/{user_id}/from-audio.
func (h *VocabularyHandler) AddFromAudio(w http.ResponseWriter, r *http.Request) {
	learnerID, err := pathID(r, "user_id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	data, filename, ok := h.readUpload(w, r)
	if !ok {
		return
	}

	res, err := h.svc.AddFromAudio(r.Context(), learnerID, data, filename)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toAddEntryResponse(res))
}

// List handles GET /api/vocabulary/{user_id}.
func (h *VocabularyHandler) List(w http.ResponseWriter, r *http.Request) {
	learnerID, err := pathID(r, "user_id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	entries, err := h.svc.List(r.Context(), learnerID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toEntryResponses(entries))
}

// Get handles GET /api/entries/{vocab_id}.
func (h *VocabularyHandler) Get(w http.ResponseWriter, r *http.Request) {
	entryID, err := pathID(r, "vocab_id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	entry, err := h.svc.Get(r.Context(), entryID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toEntryResponse(*entry))
}

// Conjugation handles GET /api/vocabulary/{vocab_id}/conjugation.
func (h *VocabularyHandler) Conjugation(w http.ResponseWriter, r *http.Request) {
	entryID, err := pathID(r, "vocab_id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	conj, err := h.svc.GetConjugation(r.Context(), entryID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toConjugationResponse(conj))
}

// readUpload reads the multipart "file" field. It writes the error response
// itself and reports false when the upload is unusable.
func (h *VocabularyHandler) readUpload(w http.ResponseWriter, r *http.Request) ([]byte, string, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)

	file, header, err := r.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("upload exceeds %d bytes", h.maxUpload))
			return nil, "", false
		}
		handleError(h.log, w, r, domain.NewValidationError("file", "multipart field is required"))
		return nil, "", false
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		handleError(h.log, w, r, fmt.Errorf("read upload: %w", err))
		return nil, "", false
	}
	return data, header.Filename, true
}
