package vocabulary

import "github.com/vilyaua/AI-01/internal/domain"

// AddResult is a newly stored entry.
type AddResult struct {
	Entry domain.VocabularyEntry
	// Conjugation is set for verbs.
	Conjugation *domain.Conjugation
	// SourceText is the text that was enriched, as typed or as extracted
	// from media. Empty for manual entries.
	SourceText string
}
