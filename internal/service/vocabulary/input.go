package vocabulary

import (
	"strings"
	"unicode/utf8"

	"github.com/vilyaua/AI-01/internal/domain"
)

const maxWordLength = 200

// ManualInput holds a word typed in by the learner with its gloss.
type ManualInput struct {
	WordSpanish string
	WordNative  string
	WordType    string
}

func (i ManualInput) normalized() ManualInput {
	i.WordSpanish = strings.TrimSpace(i.WordSpanish)
	i.WordNative = strings.TrimSpace(i.WordNative)
	i.WordType = strings.ToLower(strings.TrimSpace(i.WordType))
	return i
}

// Validate validates the manual entry input.
func (i ManualInput) Validate() error {
	var errs []domain.FieldError

	check := func(field, v string) {
		switch {
		case v == "":
			errs = append(errs, domain.FieldError{Field: field, Message: "required"})
		case utf8.RuneCountInString(v) > maxWordLength:
			errs = append(errs, domain.FieldError{Field: field, Message: "too long"})
		}
	}
	check("word_spanish", i.WordSpanish)
	check("word_native", i.WordNative)
	check("word_type", i.WordType)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
