package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// NormalizeText prepares text for storage and comparison:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - compresses multiple spaces into one
//
// Diacritics, hyphens, and apostrophes are preserved.
func NormalizeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	text = strings.ToLower(text)

	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if r == ' ' {
			if prevSpace {
				continue
			}
			prevSpace = true
		} else {
			prevSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// AnswersMatch compares a submitted answer with the accepted one, ignoring
// case and surrounding whitespace. Both sides are NFC-normalized first so
// "é" typed as e + combining accent equals the precomposed form.
func AnswersMatch(submitted, accepted string) bool {
	return foldAnswer(submitted) == foldAnswer(accepted)
}

func foldAnswer(s string) string {
	s = norm.NFC.String(strings.TrimSpace(s))
	return cases.Fold().String(s)
}
