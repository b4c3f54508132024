package enrichment

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/vilyaua/AI-01/internal/adapter/provider/llm"
	"github.com/vilyaua/AI-01/internal/domain"
)

// enrichReply is the expected generation output. Pointer fields detect
// missing keys.
type enrichReply struct {
	WordSpanish *string `json:"word_spanish"`
	WordNative  *string `json:"word_native"`
	WordType    *string `json:"word_type"`
	IsVerb      *bool   `json:"is_verb"`
}

// Enrich analyzes text for a learner with the given native language.
//
// Without a generator the input is returned as-is with a placeholder gloss.
// With one, a failed call or unusable reply is a hard error.
func (s *Service) Enrich(ctx context.Context, text string, lang domain.NativeLanguage) (domain.Enrichment, error) {
	text = strings.TrimSpace(text)

	var errs []domain.FieldError
	if text == "" {
		errs = append(errs, domain.FieldError{Field: "text", Message: "required"})
	}
	if !lang.IsValid() {
		errs = append(errs, domain.FieldError{Field: "native_language", Message: "must be 'en' or 'ua'"})
	}
	if len(errs) > 0 {
		return domain.Enrichment{}, domain.NewValidationErrors(errs)
	}

	if s.gen == nil {
		return domain.PlaceholderEnrichment(text), nil
	}

	reply, err := s.gen.Generate(ctx, enrichPrompt(text, lang))
	if err != nil {
		s.log.ErrorContext(ctx, "enrichment failed", slog.String("text", text), slog.String("error", err.Error()))
		return domain.Enrichment{}, fmt.Errorf("enrichment.Enrich: %w", err)
	}

	e, err := parseEnrichment(reply)
	if err != nil {
		return domain.Enrichment{}, fmt.Errorf("enrichment.Enrich: %w", err)
	}
	return e, nil
}

func parseEnrichment(reply string) (domain.Enrichment, error) {
	var out enrichReply
	if err := llm.DecodeJSON(reply, &out); err != nil {
		return domain.Enrichment{}, err
	}
	if out.WordSpanish == nil || out.WordNative == nil || out.WordType == nil || out.IsVerb == nil {
		return domain.Enrichment{}, fmt.Errorf("missing field: %w", domain.ErrMalformedResponse)
	}

	e := domain.Enrichment{
		WordSpanish: strings.TrimSpace(*out.WordSpanish),
		WordNative:  strings.TrimSpace(*out.WordNative),
		WordType:    strings.ToLower(strings.TrimSpace(*out.WordType)),
		IsVerb:      *out.IsVerb,
	}
	if e.WordSpanish == "" || e.WordNative == "" || e.WordType == "" {
		return domain.Enrichment{}, fmt.Errorf("empty field: %w", domain.ErrMalformedResponse)
	}
	if domain.IsVerbType(e.WordType) {
		e.IsVerb = true
	}
	return e, nil
}
