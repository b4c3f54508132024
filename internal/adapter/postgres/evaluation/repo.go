// Package evaluation implements the append-only EvaluationRecord repository.
package evaluation

import (
	"context"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/vilyaua/AI-01/internal/adapter/postgres"
	"github.com/vilyaua/AI-01/internal/domain"
)

const table = "evaluation_records"

var columns = []string{
	"id", "learner_id", "entry_id", "user_answer", "correct_answer", "is_correct", "explanation", "created_at",
}

type row struct {
	ID            uuid.UUID `db:"id"`
	LearnerID     uuid.UUID `db:"learner_id"`
	EntryID       uuid.UUID `db:"entry_id"`
	UserAnswer    string    `db:"user_answer"`
	CorrectAnswer string    `db:"correct_answer"`
	IsCorrect     bool      `db:"is_correct"`
	Explanation   string    `db:"explanation"`
	CreatedAt     time.Time `db:"created_at"`
}

func (r row) toDomain() domain.EvaluationRecord {
	return domain.EvaluationRecord{
		ID:            r.ID,
		LearnerID:     r.LearnerID,
		EntryID:       r.EntryID,
		UserAnswer:    r.UserAnswer,
		CorrectAnswer: r.CorrectAnswer,
		IsCorrect:     r.IsCorrect,
		Explanation:   r.Explanation,
		CreatedAt:     r.CreatedAt,
	}
}

// Repo provides evaluation record persistence. Records are never updated.
type Repo struct {
	db postgres.Querier
}

// New creates a new evaluation repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create appends one record.
func (r *Repo) Create(ctx context.Context, rec domain.EvaluationRecord) (*domain.EvaluationRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := postgres.Builder.
		Insert(table).
		Columns("learner_id", "entry_id", "user_answer", "correct_answer", "is_correct", "explanation").
		Values(rec.LearnerID, rec.EntryID, rec.UserAnswer, rec.CorrectAnswer, rec.IsCorrect, rec.Explanation).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	var out row
	if err := postgres.Get(ctx, q, &out, b); err != nil {
		return nil, postgres.MapError(err, "evaluation_record", uuid.Nil)
	}
	created := out.toDomain()
	return &created, nil
}

// ListByLearner returns up to limit records of a learner, newest first.
func (r *Repo) ListByLearner(ctx context.Context, learnerID uuid.UUID, limit int) ([]domain.EvaluationRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"learner_id": learnerID}).
		OrderBy("created_at DESC", "id").
		Limit(uint64(limit))

	var rows []row
	if err := postgres.Select(ctx, q, &rows, b); err != nil {
		return nil, postgres.MapError(err, "learner", learnerID)
	}

	records := make([]domain.EvaluationRecord, 0, len(rows))
	for _, rw := range rows {
		records = append(records, rw.toDomain())
	}
	return records, nil
}

// CountByLearner returns how many records a learner has.
func (r *Repo) CountByLearner(ctx context.Context, learnerID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := postgres.Builder.
		Select("COUNT(*)").
		From(table).
		Where(sq.Eq{"learner_id": learnerID})

	var n int64
	if err := postgres.Get(ctx, q, &n, b); err != nil {
		return 0, postgres.MapError(err, "learner", learnerID)
	}
	return int(n), nil
}
