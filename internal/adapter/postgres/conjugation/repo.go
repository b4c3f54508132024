// Package conjugation implements the Conjugation repository using PostgreSQL.
package conjugation

import (
	"context"
	"errors"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/vilyaua/AI-01/internal/adapter/postgres"
	"github.com/vilyaua/AI-01/internal/domain"
)

const table = "conjugations"

var columns = []string{
	"id", "entry_id", "yo", "tu", "el_ella_usted", "nosotros", "vosotros", "ellos_ellas_ustedes", "created_at",
}

type row struct {
	ID                uuid.UUID `db:"id"`
	EntryID           uuid.UUID `db:"entry_id"`
	Yo                string    `db:"yo"`
	Tu                string    `db:"tu"`
	ElEllaUsted       string    `db:"el_ella_usted"`
	Nosotros          string    `db:"nosotros"`
	Vosotros          string    `db:"vosotros"`
	EllosEllasUstedes string    `db:"ellos_ellas_ustedes"`
	CreatedAt         time.Time `db:"created_at"`
}

func (r row) toDomain() *domain.Conjugation {
	return &domain.Conjugation{
		ID:      r.ID,
		EntryID: r.EntryID,
		ConjugationForms: domain.ConjugationForms{
			Yo:                r.Yo,
			Tu:                r.Tu,
			ElEllaUsted:       r.ElEllaUsted,
			Nosotros:          r.Nosotros,
			Vosotros:          r.Vosotros,
			EllosEllasUstedes: r.EllosEllasUstedes,
		},
		CreatedAt: r.CreatedAt,
	}
}

// Repo provides conjugation persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new conjugation repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByEntryID returns the conjugation of an entry.
func (r *Repo) GetByEntryID(ctx context.Context, entryID uuid.UUID) (*domain.Conjugation, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := postgres.Builder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"entry_id": entryID})

	var out row
	if err := postgres.Get(ctx, q, &out, b); err != nil {
		return nil, postgres.MapError(err, "conjugation of entry", entryID)
	}
	return out.toDomain(), nil
}

// CreateIfAbsent stores forms for entryID unless a conjugation already exists,
// in which case the stored one is returned unchanged. The UNIQUE(entry_id)
// constraint makes concurrent callers converge on a single row.
func (r *Repo) CreateIfAbsent(ctx context.Context, entryID uuid.UUID, f domain.ConjugationForms) (*domain.Conjugation, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := postgres.Builder.
		Insert(table).
		Columns("entry_id", "yo", "tu", "el_ella_usted", "nosotros", "vosotros", "ellos_ellas_ustedes").
		Values(entryID, f.Yo, f.Tu, f.ElEllaUsted, f.Nosotros, f.Vosotros, f.EllosEllasUstedes).
		Suffix("ON CONFLICT (entry_id) DO NOTHING RETURNING " + strings.Join(columns, ", "))

	var out row
	err := postgres.Get(ctx, q, &out, b)
	if err == nil {
		return out.toDomain(), nil
	}

	mapped := postgres.MapError(err, "conjugation of entry", entryID)
	if !errors.Is(mapped, domain.ErrNotFound) {
		return nil, mapped
	}

	// No row returned: either the conflict branch fired or the entry is gone.
	existing, err := r.GetByEntryID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	return existing, nil
}
