package models

import (
	"fmt"
	"strings"
)

// UnsupportedLanguageError reports language codes outside the supported set.
type UnsupportedLanguageError struct {
	Codes []string
}

func (e *UnsupportedLanguageError) Error() string {
	return fmt.Sprintf("unsupported language code(s): %s", strings.Join(e.Codes, ", "))
}

// EmptyInputError reports input text that is empty after trimming.
type EmptyInputError struct{}

func (e *EmptyInputError) Error() string {
	return "text must not be empty"
}

// TranslationFailedError reports an internal strategy failure.
type TranslationFailedError struct {
	Cause error
}

func (e *TranslationFailedError) Error() string {
	return fmt.Sprintf("translation failed: %v", e.Cause)
}

func (e *TranslationFailedError) Unwrap() error {
	return e.Cause
}
