package enrichment

import (
	"fmt"

	"github.com/vilyaua/AI-01/internal/adapter/provider/llm"
	"github.com/vilyaua/AI-01/internal/domain"
)

const (
	enrichSystem    = "You are a Spanish language expert. Respond only with valid JSON."
	conjugateSystem = "You are a Spanish grammar expert. Respond only with valid JSON."
	evaluateSystem  = "You are a helpful Spanish teacher. Respond only with valid JSON."
)

func enrichPrompt(text string, lang domain.NativeLanguage) llm.Prompt {
	return llm.Prompt{
		System:      enrichSystem,
		Temperature: 0.3,
		Accept: func(reply string) error {
			_, err := parseEnrichment(reply)
			return err
		},
		User: fmt.Sprintf(`Analyze this Spanish word/phrase and provide:
1. The Spanish word: %s
2. Translation to %s
3. Word type (noun, verb, adjective, adverb, etc.)
4. If it's a verb, indicate yes

Respond in JSON format:
{
    "word_spanish": "word in Spanish",
    "word_native": "translation",
    "word_type": "type",
    "is_verb": true/false
}`, text, lang.DisplayName()),
	}
}

func conjugatePrompt(infinitive string) llm.Prompt {
	return llm.Prompt{
		System:      conjugateSystem,
		Temperature: 0.2,
		Accept: func(reply string) error {
			_, err := parseConjugation(reply)
			return err
		},
		User: fmt.Sprintf(`Provide the simple present tense conjugation for the Spanish verb: %s

Respond in JSON format:
{
    "yo": "conjugation",
    "tu": "conjugation",
    "el_ella_usted": "conjugation",
    "nosotros": "conjugation",
    "vosotros": "conjugation",
    "ellos_ellas_ustedes": "conjugation"
}`, infinitive),
	}
}

func evaluatePrompt(in EvaluateInput) llm.Prompt {
	lang := in.NativeLanguage.DisplayName()
	return llm.Prompt{
		System:      evaluateSystem,
		Temperature: 0.3,
		Accept: func(reply string) error {
			_, err := parseEvaluation(reply, in.CorrectAnswer)
			return err
		},
		User: fmt.Sprintf(`The user is learning Spanish. They were asked to translate "%s" from %s to Spanish.
The correct answer is: %s
The user answered: %s

Determine if the answer is correct (considering minor spelling variations). If incorrect, provide a helpful explanation.

Respond in JSON format:
{
    "is_correct": true/false,
    "correct_answer": "%s",
    "explanation": "helpful explanation in %s"
}`, in.Question, lang, in.CorrectAnswer, in.UserAnswer, in.CorrectAnswer, lang),
	}
}
