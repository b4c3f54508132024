package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/vilyaua/AI-01/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

var errInvalidBody = fmt.Errorf("invalid request body: %w", domain.ErrValidation)

// Validation sentinels with a fixed client message.
var validationMessages = []struct {
	err error
	msg string
}{
	{domain.ErrNotAVerb, "word is not a verb"},
	{domain.ErrEmptyExtraction, "no text found in media"},
	{errInvalidBody, "invalid request body"},
}

type fieldErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type validationResponse struct {
	Error  string               `json:"error"`
	Fields []fieldErrorResponse `json:"fields,omitempty"`
}

// writeValidation renders a validation-class error without the wrap
// prefixes added on the way up.
func writeValidation(w http.ResponseWriter, err error) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		resp := validationResponse{Fields: make([]fieldErrorResponse, 0, len(ve.Errors))}
		msgs := make([]string, 0, len(ve.Errors))
		for _, fe := range ve.Errors {
			resp.Fields = append(resp.Fields, fieldErrorResponse{Field: fe.Field, Message: fe.Message})
			msgs = append(msgs, fe.Field+": "+fe.Message)
		}
		resp.Error = strings.Join(msgs, "; ")
		writeJSON(w, http.StatusBadRequest, resp)
		return
	}

	for _, vm := range validationMessages {
		if errors.Is(err, vm.err) {
			writeError(w, http.StatusBadRequest, vm.msg)
			return
		}
	}
	writeError(w, http.StatusBadRequest, "invalid request")
}

// handleError maps domain error classes onto HTTP statuses. Only
// unclassified errors are logged; they are not shown to the client.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeValidation(w, err)
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "already exists")
	case domain.IsGenerationFailure(err):
		log.WarnContext(r.Context(), "generation failed", slog.String("error", err.Error()))
		writeError(w, http.StatusBadGateway, "AI processing error")
	case errors.Is(err, domain.ErrExtraction):
		writeError(w, http.StatusUnprocessableEntity, "could not extract text from media")
	case errors.Is(err, domain.ErrExtractorUnavailable):
		writeError(w, http.StatusServiceUnavailable, "media extraction is not configured")
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// decodeJSON reads a single JSON object from the request body.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		return errInvalidBody
	}
	return nil
}

// pathID parses the named path wildcard as a UUID.
func pathID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		return uuid.Nil, domain.NewValidationError(name, "must be a valid id")
	}
	return id, nil
}
