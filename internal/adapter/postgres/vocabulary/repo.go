// Package vocabulary implements the VocabularyEntry repository using PostgreSQL.
package vocabulary

import (
	"context"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/vilyaua/AI-01/internal/adapter/postgres"
	"github.com/vilyaua/AI-01/internal/domain"
)

const table = "vocabulary_entries"

var columns = []string{
	"id", "learner_id", "word_spanish", "word_native", "word_type", "is_verb",
	"times_correct", "times_incorrect", "last_reviewed_at", "created_at",
}

type row struct {
	ID             uuid.UUID  `db:"id"`
	LearnerID      uuid.UUID  `db:"learner_id"`
	WordSpanish    string     `db:"word_spanish"`
	WordNative     string     `db:"word_native"`
	WordType       string     `db:"word_type"`
	IsVerb         bool       `db:"is_verb"`
	TimesCorrect   int        `db:"times_correct"`
	TimesIncorrect int        `db:"times_incorrect"`
	LastReviewedAt *time.Time `db:"last_reviewed_at"`
	CreatedAt      time.Time  `db:"created_at"`
}

func (r row) toDomain() domain.VocabularyEntry {
	return domain.VocabularyEntry{
		ID:             r.ID,
		LearnerID:      r.LearnerID,
		WordSpanish:    r.WordSpanish,
		WordNative:     r.WordNative,
		WordType:       r.WordType,
		IsVerb:         r.IsVerb,
		TimesCorrect:   r.TimesCorrect,
		TimesIncorrect: r.TimesIncorrect,
		LastReviewedAt: r.LastReviewedAt,
		CreatedAt:      r.CreatedAt,
	}
}

// Repo provides vocabulary entry persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new vocabulary repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts an entry with zeroed review statistics.
// An unknown learner yields domain.ErrNotFound (FK violation).
func (r *Repo) Create(ctx context.Context, e domain.VocabularyEntry) (*domain.VocabularyEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := postgres.Builder.
		Insert(table).
		Columns("learner_id", "word_spanish", "word_native", "word_type", "is_verb").
		Values(e.LearnerID, e.WordSpanish, e.WordNative, e.WordType, e.IsVerb).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	var out row
	if err := postgres.Get(ctx, q, &out, b); err != nil {
		return nil, postgres.MapError(err, "vocabulary_entry", uuid.Nil)
	}
	entry := out.toDomain()
	return &entry, nil
}

// GetByID returns an entry by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.VocabularyEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id})

	var out row
	if err := postgres.Get(ctx, q, &out, b); err != nil {
		return nil, postgres.MapError(err, "vocabulary_entry", id)
	}
	entry := out.toDomain()
	return &entry, nil
}

// ListByLearner returns every entry of a learner, newest first.
func (r *Repo) ListByLearner(ctx context.Context, learnerID uuid.UUID) ([]domain.VocabularyEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"learner_id": learnerID}).
		OrderBy("created_at DESC", "id")

	var rows []row
	if err := postgres.Select(ctx, q, &rows, b); err != nil {
		return nil, postgres.MapError(err, "learner", learnerID)
	}

	entries := make([]domain.VocabularyEntry, 0, len(rows))
	for _, rw := range rows {
		entries = append(entries, rw.toDomain())
	}
	return entries, nil
}

// NextForReview returns the learner's entry that was reviewed least recently.
// Never-reviewed entries come first, oldest first.
func (r *Repo) NextForReview(ctx context.Context, learnerID uuid.UUID) (*domain.VocabularyEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"learner_id": learnerID}).
		OrderBy("last_reviewed_at ASC NULLS FIRST", "created_at ASC").
		Limit(1)

	var out row
	if err := postgres.Get(ctx, q, &out, b); err != nil {
		return nil, postgres.MapError(err, "vocabulary of learner", learnerID)
	}
	entry := out.toDomain()
	return &entry, nil
}

// RecordReview increments the correct or incorrect counter and stamps
// last_reviewed_at in a single statement.
func (r *Repo) RecordReview(ctx context.Context, id uuid.UUID, correct bool, at time.Time) (*domain.VocabularyEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	counter := "times_incorrect"
	if correct {
		counter = "times_correct"
	}

	b := postgres.Builder.
		Update(table).
		Set(counter, sq.Expr(counter+" + 1")).
		Set("last_reviewed_at", at).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	var out row
	if err := postgres.Get(ctx, q, &out, b); err != nil {
		return nil, postgres.MapError(err, "vocabulary_entry", id)
	}
	entry := out.toDomain()
	return &entry, nil
}

type statsRow struct {
	Entries        int64 `db:"entries"`
	Verbs          int64 `db:"verbs"`
	TimesCorrect   int64 `db:"times_correct"`
	TimesIncorrect int64 `db:"times_incorrect"`
}

// Stats aggregates the vocabulary counters of a learner. Evaluations is left zero.
func (r *Repo) Stats(ctx context.Context, learnerID uuid.UUID) (domain.LearningStats, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := postgres.Builder.
		Select(
			"COUNT(*) AS entries",
			"COUNT(*) FILTER (WHERE is_verb) AS verbs",
			"COALESCE(SUM(times_correct), 0) AS times_correct",
			"COALESCE(SUM(times_incorrect), 0) AS times_incorrect",
		).
		From(table).
		Where(sq.Eq{"learner_id": learnerID})

	var out statsRow
	if err := postgres.Get(ctx, q, &out, b); err != nil {
		return domain.LearningStats{}, postgres.MapError(err, "learner", learnerID)
	}
	return domain.LearningStats{
		Entries:        int(out.Entries),
		Verbs:          int(out.Verbs),
		TimesCorrect:   int(out.TimesCorrect),
		TimesIncorrect: int(out.TimesIncorrect),
	}, nil
}
