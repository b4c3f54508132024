package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// VocabularyEntry is a Spanish word owned by exactly one learner.
type VocabularyEntry struct {
	ID             uuid.UUID
	LearnerID      uuid.UUID
	WordSpanish    string
	WordNative     string
	WordType       string
	IsVerb         bool
	TimesCorrect   int
	TimesIncorrect int
	LastReviewedAt *time.Time
	CreatedAt      time.Time
}

// Question returns the translation prompt shown to the learner for this entry.
func (e VocabularyEntry) Question() string {
	return fmt.Sprintf("Translate '%s' to Spanish", e.WordNative)
}

// ConjugationForms holds the six present-tense person/number forms of a verb.
type ConjugationForms struct {
	Yo                string
	Tu                string
	ElEllaUsted       string
	Nosotros          string
	Vosotros          string
	EllosEllasUstedes string
}

// UniformConjugation returns forms where every slot is word.
// Used when no generator is configured to derive real inflections.
func UniformConjugation(word string) ConjugationForms {
	return ConjugationForms{
		Yo:                word,
		Tu:                word,
		ElEllaUsted:       word,
		Nosotros:          word,
		Vosotros:          word,
		EllosEllasUstedes: word,
	}
}

// Conjugation is the persisted conjugation table of a verb entry.
// At most one exists per entry.
type Conjugation struct {
	ID      uuid.UUID
	EntryID uuid.UUID
	ConjugationForms
	CreatedAt time.Time
}

// EvaluationRecord is one graded answer. Records are append-only.
type EvaluationRecord struct {
	ID            uuid.UUID
	LearnerID     uuid.UUID
	EntryID       uuid.UUID
	UserAnswer    string
	CorrectAnswer string
	IsCorrect     bool
	Explanation   string
	CreatedAt     time.Time
}

// LearningStats summarizes a learner's progress.
type LearningStats struct {
	Entries        int
	Verbs          int
	TimesCorrect   int
	TimesIncorrect int
	Evaluations    int
}
