package engine

import (
	"strings"

	"hausa-translate/internal/models"
)

var supportedCodes = map[string]bool{
	"en": true,
	"ha": true,
}

// ValidateLanguages normalizes a language pair to lowercase two-letter codes
// and rejects anything outside the supported set.
func ValidateLanguages(sourceLang, targetLang string) (string, string, error) {
	source := strings.ToLower(strings.TrimSpace(sourceLang))
	target := strings.ToLower(strings.TrimSpace(targetLang))

	var invalid []string
	if !supportedCodes[source] {
		invalid = append(invalid, sourceLang)
	}
	if !supportedCodes[target] {
		invalid = append(invalid, targetLang)
	}
	if len(invalid) > 0 {
		return "", "", &models.UnsupportedLanguageError{Codes: invalid}
	}

	return source, target, nil
}
