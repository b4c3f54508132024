package domain

// Enrichment is the structured analysis of a raw Spanish text.
type Enrichment struct {
	WordSpanish string
	WordNative  string
	WordType    string
	IsVerb      bool
}

// PlaceholderGloss is the native gloss used when no generator is configured.
const PlaceholderGloss = "Translation needed"

// PlaceholderEnrichment returns the enrichment used when no generator is
// configured: the input is kept verbatim and nothing is inferred.
func PlaceholderEnrichment(text string) Enrichment {
	return Enrichment{
		WordSpanish: text,
		WordNative:  PlaceholderGloss,
		WordType:    WordTypeUnknown,
		IsVerb:      false,
	}
}

// Evaluation is the verdict on a learner's answer.
type Evaluation struct {
	IsCorrect     bool
	CorrectAnswer string
	Explanation   string
}
