package learner

import (
	"strings"
	"unicode/utf8"

	"github.com/vilyaua/AI-01/internal/domain"
)

const maxUsernameLength = 64

// RegisterInput holds parameters for learner registration.
type RegisterInput struct {
	Username       string
	NativeLanguage domain.NativeLanguage
}

// normalized trims the username. The language code must match exactly.
func (i RegisterInput) normalized() RegisterInput {
	i.Username = strings.TrimSpace(i.Username)
	return i
}

// Validate validates the registration input.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	if i.Username == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	} else if utf8.RuneCountInString(i.Username) > maxUsernameLength {
		errs = append(errs, domain.FieldError{Field: "username", Message: "too long"})
	}

	if !i.NativeLanguage.IsValid() {
		errs = append(errs, domain.FieldError{Field: "native_language", Message: "must be 'en' or 'ua'"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
