package domain

// NativeLanguage is the learner's declared native language.
type NativeLanguage string

const (
	NativeLanguageEnglish   NativeLanguage = "en"
	NativeLanguageUkrainian NativeLanguage = "ua"
)

func (l NativeLanguage) String() string { return string(l) }

func (l NativeLanguage) IsValid() bool {
	switch l {
	case NativeLanguageEnglish, NativeLanguageUkrainian:
		return true
	}
	return false
}

// DisplayName returns the English name of the language, as used in prompts.
func (l NativeLanguage) DisplayName() string {
	switch l {
	case NativeLanguageUkrainian:
		return "Ukrainian"
	default:
		return "English"
	}
}

// SupportedNativeLanguages lists every accepted NativeLanguage value.
func SupportedNativeLanguages() []NativeLanguage {
	return []NativeLanguage{NativeLanguageEnglish, NativeLanguageUkrainian}
}

// Word type labels with special meaning. Any other label is stored as-is.
const (
	WordTypeVerb    = "verb"
	WordTypeUnknown = "unknown"
)

// IsVerbType reports whether a grammatical category label denotes a verb.
func IsVerbType(wordType string) bool {
	return NormalizeText(wordType) == WordTypeVerb
}
