package enrichment

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/vilyaua/AI-01/internal/adapter/provider/llm"
	"github.com/vilyaua/AI-01/internal/domain"
)

type conjugateReply struct {
	Yo                *string `json:"yo"`
	Tu                *string `json:"tu"`
	ElEllaUsted       *string `json:"el_ella_usted"`
	Nosotros          *string `json:"nosotros"`
	Vosotros          *string `json:"vosotros"`
	EllosEllasUstedes *string `json:"ellos_ellas_ustedes"`
}

// Conjugate derives the six present-tense forms of a Spanish infinitive.
// Without a generator every form equals the infinitive.
func (s *Service) Conjugate(ctx context.Context, infinitive string) (domain.ConjugationForms, error) {
	infinitive = strings.TrimSpace(infinitive)
	if infinitive == "" {
		return domain.ConjugationForms{}, domain.NewValidationError("word", "required")
	}

	if s.gen == nil {
		return domain.UniformConjugation(infinitive), nil
	}

	reply, err := s.gen.Generate(ctx, conjugatePrompt(infinitive))
	if err != nil {
		s.log.ErrorContext(ctx, "conjugation failed", slog.String("verb", infinitive), slog.String("error", err.Error()))
		return domain.ConjugationForms{}, fmt.Errorf("enrichment.Conjugate: %w", err)
	}

	forms, err := parseConjugation(reply)
	if err != nil {
		return domain.ConjugationForms{}, fmt.Errorf("enrichment.Conjugate: %w", err)
	}
	return forms, nil
}

func parseConjugation(reply string) (domain.ConjugationForms, error) {
	var out conjugateReply
	if err := llm.DecodeJSON(reply, &out); err != nil {
		return domain.ConjugationForms{}, err
	}

	fields := []*string{out.Yo, out.Tu, out.ElEllaUsted, out.Nosotros, out.Vosotros, out.EllosEllasUstedes}
	for _, f := range fields {
		if f == nil || strings.TrimSpace(*f) == "" {
			return domain.ConjugationForms{}, fmt.Errorf("missing form: %w", domain.ErrMalformedResponse)
		}
	}

	return domain.ConjugationForms{
		Yo:                strings.TrimSpace(*out.Yo),
		Tu:                strings.TrimSpace(*out.Tu),
		ElEllaUsted:       strings.TrimSpace(*out.ElEllaUsted),
		Nosotros:          strings.TrimSpace(*out.Nosotros),
		Vosotros:          strings.TrimSpace(*out.Vosotros),
		EllosEllasUstedes: strings.TrimSpace(*out.EllosEllasUstedes),
	}, nil
}
