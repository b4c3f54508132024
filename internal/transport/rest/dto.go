package rest

import (
	"time"

	"github.com/vilyaua/AI-01/internal/domain"
	"github.com/vilyaua/AI-01/internal/service/learning"
	"github.com/vilyaua/AI-01/internal/service/vocabulary"
)

type learnerResponse struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	NativeLanguage string    `json:"native_language"`
	CreatedAt      time.Time `json:"created_at"`
}

func toLearnerResponse(l *domain.Learner) learnerResponse {
	return learnerResponse{
		ID:             l.ID.String(),
		Username:       l.Username,
		NativeLanguage: l.NativeLanguage.String(),
		CreatedAt:      l.CreatedAt,
	}
}

type entryResponse struct {
	ID             string     `json:"id"`
	UserID         string     `json:"user_id"`
	WordSpanish    string     `json:"word_spanish"`
	WordNative     string     `json:"word_native"`
	WordType       string     `json:"word_type"`
	IsVerb         bool       `json:"is_verb"`
	TimesCorrect   int        `json:"times_correct"`
	TimesIncorrect int        `json:"times_incorrect"`
	LastReviewed   *time.Time `json:"last_reviewed"`
	CreatedAt      time.Time  `json:"created_at"`
}

func toEntryResponse(e domain.VocabularyEntry) entryResponse {
	return entryResponse{
		ID:             e.ID.String(),
		UserID:         e.LearnerID.String(),
		WordSpanish:    e.WordSpanish,
		WordNative:     e.WordNative,
		WordType:       e.WordType,
		IsVerb:         e.IsVerb,
		TimesCorrect:   e.TimesCorrect,
		TimesIncorrect: e.TimesIncorrect,
		LastReviewed:   e.LastReviewedAt,
		CreatedAt:      e.CreatedAt,
	}
}

func toEntryResponses(entries []domain.VocabularyEntry) []entryResponse {
	out := make([]entryResponse, len(entries))
	for i, e := range entries {
		out[i] = toEntryResponse(e)
	}
	return out
}

type conjugationResponse struct {
	Yo                string `json:"yo"`
	Tu                string `json:"tu"`
	ElEllaUsted       string `json:"el_ella_usted"`
	Nosotros          string `json:"nosotros"`
	Vosotros          string `json:"vosotros"`
	EllosEllasUstedes string `json:"ellos_ellas_ustedes"`
}

func toConjugationResponse(c *domain.Conjugation) *conjugationResponse {
	if c == nil {
		return nil
	}
	return &conjugationResponse{
		Yo:                c.Yo,
		Tu:                c.Tu,
		ElEllaUsted:       c.ElEllaUsted,
		Nosotros:          c.Nosotros,
		Vosotros:          c.Vosotros,
		EllosEllasUstedes: c.EllosEllasUstedes,
	}
}

type addEntryResponse struct {
	entryResponse
	Conjugation *conjugationResponse `json:"conjugation,omitempty"`
	SourceText  string               `json:"source_text,omitempty"`
}

func toAddEntryResponse(res *vocabulary.AddResult) addEntryResponse {
	return addEntryResponse{
		entryResponse: toEntryResponse(res.Entry),
		Conjugation:   toConjugationResponse(res.Conjugation),
		SourceText:    res.SourceText,
	}
}

type questionResponse struct {
	VocabularyID  string `json:"vocabulary_id"`
	Question      string `json:"question"`
	CorrectAnswer string `json:"correct_answer"`
	WordType      string `json:"word_type"`
}

func toQuestionResponse(q *learning.Question) questionResponse {
	return questionResponse{
		VocabularyID:  q.EntryID.String(),
		Question:      q.Question,
		CorrectAnswer: q.CorrectAnswer,
		WordType:      q.WordType,
	}
}

type evaluationResponse struct {
	IsCorrect     bool   `json:"is_correct"`
	CorrectAnswer string `json:"correct_answer"`
	Explanation   string `json:"explanation"`
}

type recordResponse struct {
	ID            string    `json:"id"`
	VocabularyID  string    `json:"vocabulary_id"`
	UserAnswer    string    `json:"user_answer"`
	CorrectAnswer string    `json:"correct_answer"`
	IsCorrect     bool      `json:"is_correct"`
	Explanation   string    `json:"explanation"`
	CreatedAt     time.Time `json:"created_at"`
}

func toRecordResponses(records []domain.EvaluationRecord) []recordResponse {
	out := make([]recordResponse, len(records))
	for i, rec := range records {
		out[i] = recordResponse{
			ID:            rec.ID.String(),
			VocabularyID:  rec.EntryID.String(),
			UserAnswer:    rec.UserAnswer,
			CorrectAnswer: rec.CorrectAnswer,
			IsCorrect:     rec.IsCorrect,
			Explanation:   rec.Explanation,
			CreatedAt:     rec.CreatedAt,
		}
	}
	return out
}

type statsResponse struct {
	Entries        int `json:"entries"`
	Verbs          int `json:"verbs"`
	TimesCorrect   int `json:"times_correct"`
	TimesIncorrect int `json:"times_incorrect"`
	Evaluations    int `json:"evaluations"`
}
