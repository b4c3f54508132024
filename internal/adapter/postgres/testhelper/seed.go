package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vilyaua/AI-01/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedLearner inserts a learner with a unique username.
func SeedLearner(t *testing.T, pool *pgxpool.Pool, lang domain.NativeLanguage) domain.Learner {
	t.Helper()

	l := domain.Learner{Username: "learner-" + uniqueSuffix(), NativeLanguage: lang}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO learners (username, native_language) VALUES ($1, $2) RETURNING id, created_at`,
		l.Username, lang.String(),
	).Scan(&l.ID, &l.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedLearner: %v", err)
	}
	return l
}

// SeedEntry inserts a vocabulary entry for learnerID.
func SeedEntry(t *testing.T, pool *pgxpool.Pool, learnerID uuid.UUID, spanish, native, wordType string) domain.VocabularyEntry {
	t.Helper()

	e := domain.VocabularyEntry{
		LearnerID:   learnerID,
		WordSpanish: spanish,
		WordNative:  native,
		WordType:    wordType,
		IsVerb:      domain.IsVerbType(wordType),
	}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO vocabulary_entries (learner_id, word_spanish, word_native, word_type, is_verb)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`,
		e.LearnerID, e.WordSpanish, e.WordNative, e.WordType, e.IsVerb,
	).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedEntry: %v", err)
	}
	return e
}
