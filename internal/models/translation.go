package models

import (
	"time"
)

// TranslationResult is the immutable record of one completed translation.
type TranslationResult struct {
	ID              string    `json:"id"`
	OriginalText    string    `json:"original_text"`
	TranslatedText  string    `json:"translated_text"`
	SourceLanguage  string    `json:"source_language"`
	TargetLanguage  string    `json:"target_language"`
	ConfidenceScore float64   `json:"confidence_score"`
	ModelUsed       string    `json:"model_used"`
	Timestamp       time.Time `json:"timestamp"`
}

// Language describes one supported language.
type Language struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	NativeName string `json:"native_name"`
}

// SupportedLanguages returns the languages the service translates between.
func SupportedLanguages() []Language {
	return []Language{
		{Code: "en", Name: "English", NativeName: "English"},
		{Code: "ha", Name: "Hausa", NativeName: "Harshen Hausa"},
	}
}
