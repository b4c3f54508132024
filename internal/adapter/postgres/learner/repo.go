// Package learner implements the Learner repository using PostgreSQL.
package learner

import (
	"context"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/vilyaua/AI-01/internal/adapter/postgres"
	"github.com/vilyaua/AI-01/internal/domain"
)

const table = "learners"

var columns = []string{"id", "username", "native_language", "created_at"}

type row struct {
	ID             uuid.UUID `db:"id"`
	Username       string    `db:"username"`
	NativeLanguage string    `db:"native_language"`
	CreatedAt      time.Time `db:"created_at"`
}

func (r row) toDomain() *domain.Learner {
	return &domain.Learner{
		ID:             r.ID,
		Username:       r.Username,
		NativeLanguage: domain.NativeLanguage(r.NativeLanguage),
		CreatedAt:      r.CreatedAt,
	}
}

// Repo provides learner persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new learner repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a learner. A taken username yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, username string, lang domain.NativeLanguage) (*domain.Learner, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := postgres.Builder.
		Insert(table).
		Columns("username", "native_language").
		Values(username, lang.String()).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	var out row
	if err := postgres.Get(ctx, q, &out, b); err != nil {
		return nil, postgres.MapError(err, "learner", uuid.Nil)
	}
	return out.toDomain(), nil
}

// GetByID returns a learner by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Learner, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id})

	var out row
	if err := postgres.Get(ctx, q, &out, b); err != nil {
		return nil, postgres.MapError(err, "learner", id)
	}
	return out.toDomain(), nil
}
