package testhelper

import (
	"testing"

	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v2"
)

// NewMockDB returns a pgxmock pool. Unmet expectations fail the test on cleanup.
func NewMockDB(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("testhelper: pgxmock.NewPool: %v", err)
	}

	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("testhelper: unmet pgxmock expectations: %v", err)
		}
		mock.Close()
	})

	return mock
}

// UUID matches a query argument holding id. squirrel passes values that
// appear in sq.Eq through driver.Valuer, so a uuid.UUID filter reaches the
// driver as its string form while INSERT values stay uuid.UUID.
func UUID(id uuid.UUID) pgxmock.Argument {
	return uuidArg(id)
}

type uuidArg uuid.UUID

func (a uuidArg) Match(v any) bool {
	switch got := v.(type) {
	case uuid.UUID:
		return got == uuid.UUID(a)
	case string:
		return got == uuid.UUID(a).String()
	default:
		return false
	}
}
