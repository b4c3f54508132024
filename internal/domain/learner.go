package domain

import (
	"time"

	"github.com/google/uuid"
)

// Learner is a registered user studying Spanish.
type Learner struct {
	ID             uuid.UUID
	Username       string
	NativeLanguage NativeLanguage
	CreatedAt      time.Time
}
