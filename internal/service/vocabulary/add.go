package vocabulary

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/vilyaua/AI-01/internal/domain"
)

// spanishOCRHint is the language hint passed to the image extractor.
const spanishOCRHint = "spa"

// AddManual stores a word exactly as the learner typed it.
func (s *Service) AddManual(ctx context.Context, learnerID uuid.UUID, in ManualInput) (*AddResult, error) {
	in = in.normalized()
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.learners.GetByID(ctx, learnerID); err != nil {
		return nil, fmt.Errorf("vocabulary.AddManual: %w", err)
	}

	res, err := s.store(ctx, domain.VocabularyEntry{
		LearnerID:   learnerID,
		WordSpanish: in.WordSpanish,
		WordNative:  in.WordNative,
		WordType:    in.WordType,
		IsVerb:      domain.IsVerbType(in.WordType),
	})
	if err != nil {
		return nil, fmt.Errorf("vocabulary.AddManual: %w", err)
	}
	return res, nil
}

// AddFromText enriches raw text and stores the result.
func (s *Service) AddFromText(ctx context.Context, learnerID uuid.UUID, text string) (*AddResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domain.NewValidationError("text", "required")
	}
	learner, err := s.learners.GetByID(ctx, learnerID)
	if err != nil {
		return nil, fmt.Errorf("vocabulary.AddFromText: %w", err)
	}

	res, err := s.enrichAndStore(ctx, learner, text)
	if err != nil {
		return nil, fmt.Errorf("vocabulary.AddFromText: %w", err)
	}
	return res, nil
}

// AddFromImage reads Spanish text from an image, then enriches and stores it.
func (s *Service) AddFromImage(ctx context.Context, learnerID uuid.UUID, image []byte) (*AddResult, error) {
	if len(image) == 0 {
		return nil, domain.NewValidationError("file", "required")
	}
	learner, err := s.learners.GetByID(ctx, learnerID)
	if err != nil {
		return nil, fmt.Errorf("vocabulary.AddFromImage: %w", err)
	}

	if s.images == nil {
		return nil, fmt.Errorf("vocabulary.AddFromImage: %w", domain.ErrExtractorUnavailable)
	}

	text, err := s.images.ExtractText(ctx, image, spanishOCRHint)
	if err != nil {
		return nil, fmt.Errorf("vocabulary.AddFromImage: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("vocabulary.AddFromImage: %w", domain.ErrEmptyExtraction)
	}

	res, err := s.enrichAndStore(ctx, learner, text)
	if err != nil {
		return nil, fmt.Errorf("vocabulary.AddFromImage: %w", err)
	}
	return res, nil
}

// AddFromAudio transcribes speech, then enriches and stores the transcript.
func (s *Service) AddFromAudio(ctx context.Context, learnerID uuid.UUID, audio []byte, filename string) (*AddResult, error) {
	if len(audio) == 0 {
		return nil, domain.NewValidationError("file", "required")
	}
	learner, err := s.learners.GetByID(ctx, learnerID)
	if err != nil {
		return nil, fmt.Errorf("vocabulary.AddFromAudio: %w", err)
	}

	if s.audio == nil {
		return nil, fmt.Errorf("vocabulary.AddFromAudio: %w", domain.ErrExtractorUnavailable)
	}

	text, err := s.audio.Transcribe(ctx, audio, filename)
	if err != nil {
		return nil, fmt.Errorf("vocabulary.AddFromAudio: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("vocabulary.AddFromAudio: %w", domain.ErrEmptyExtraction)
	}

	res, err := s.enrichAndStore(ctx, learner, text)
	if err != nil {
		return nil, fmt.Errorf("vocabulary.AddFromAudio: %w", err)
	}
	return res, nil
}

func (s *Service) enrichAndStore(ctx context.Context, learner *domain.Learner, text string) (*AddResult, error) {
	e, err := s.enricher.Enrich(ctx, text, learner.NativeLanguage)
	if err != nil {
		return nil, err
	}

	res, err := s.store(ctx, domain.VocabularyEntry{
		LearnerID:   learner.ID,
		WordSpanish: e.WordSpanish,
		WordNative:  e.WordNative,
		WordType:    e.WordType,
		IsVerb:      e.IsVerb,
	})
	if err != nil {
		return nil, err
	}
	res.SourceText = strings.TrimSpace(text)
	return res, nil
}

// store persists an entry. For verbs the conjugation is derived first and
// written in the same transaction, so a verb never exists without one.
func (s *Service) store(ctx context.Context, entry domain.VocabularyEntry) (*AddResult, error) {
	var forms domain.ConjugationForms
	if entry.IsVerb {
		var err error
		forms, err = s.enricher.Conjugate(ctx, entry.WordSpanish)
		if err != nil {
			return nil, err
		}
	}

	var res AddResult
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		created, err := s.entries.Create(ctx, entry)
		if err != nil {
			return err
		}
		res.Entry = *created

		if entry.IsVerb {
			conj, err := s.conjugations.CreateIfAbsent(ctx, created.ID, forms)
			if err != nil {
				return err
			}
			res.Conjugation = conj
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "vocabulary entry added",
		slog.String("learner_id", entry.LearnerID.String()),
		slog.String("entry_id", res.Entry.ID.String()),
		slog.Bool("is_verb", entry.IsVerb),
	)
	return &res, nil
}
