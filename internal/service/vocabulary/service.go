// Package vocabulary adds words to a learner's vocabulary from typed text,
// images and audio, and serves entries and their conjugations.
package vocabulary

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/vilyaua/AI-01/internal/domain"
)

type learnerRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Learner, error)
}

type entryRepo interface {
	Create(ctx context.Context, e domain.VocabularyEntry) (*domain.VocabularyEntry, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.VocabularyEntry, error)
	ListByLearner(ctx context.Context, learnerID uuid.UUID) ([]domain.VocabularyEntry, error)
}

type conjugationRepo interface {
	GetByEntryID(ctx context.Context, entryID uuid.UUID) (*domain.Conjugation, error)
	CreateIfAbsent(ctx context.Context, entryID uuid.UUID, f domain.ConjugationForms) (*domain.Conjugation, error)
}

// enricher is the subset of the enrichment service used here.
type enricher interface {
	Enrich(ctx context.Context, text string, lang domain.NativeLanguage) (domain.Enrichment, error)
	Conjugate(ctx context.Context, infinitive string) (domain.ConjugationForms, error)
}

type imageExtractor interface {
	ExtractText(ctx context.Context, image []byte, langHint string) (string, error)
}

type audioExtractor interface {
	Transcribe(ctx context.Context, audio []byte, filename string) (string, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements vocabulary operations.
type Service struct {
	log          *slog.Logger
	learners     learnerRepo
	entries      entryRepo
	conjugations conjugationRepo
	enricher     enricher
	tx           txManager

	images imageExtractor
	audio  audioExtractor
}

// NewService creates a new vocabulary service instance.
func NewService(
	logger *slog.Logger,
	learners learnerRepo,
	entries entryRepo,
	conjugations conjugationRepo,
	enricher enricher,
	tx txManager,
) *Service {
	return &Service{
		log:          logger.With("service", "vocabulary"),
		learners:     learners,
		entries:      entries,
		conjugations: conjugations,
		enricher:     enricher,
		tx:           tx,
	}
}

// SetImageExtractor injects the optional OCR collaborator.
func (s *Service) SetImageExtractor(e imageExtractor) {
	s.images = e
}

// SetAudioExtractor injects the optional transcription collaborator.
func (s *Service) SetAudioExtractor(e audioExtractor) {
	s.audio = e
}
