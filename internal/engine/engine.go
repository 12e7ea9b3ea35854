package engine

import (
	"strings"

	"github.com/google/uuid"

	"hausa-translate/internal/models"
)

// IdentityName is recorded as model_used when source and target are equal.
const IdentityName = "identity"

// Engine validates language pairs, delegates to a Strategy and records
// every completed translation in its ledger. Construct one with New before
// serving; the zero value is not usable.
type Engine struct {
	strategy Strategy
	ledger   *Ledger
}

func New(strategy Strategy) *Engine {
	return &Engine{
		strategy: strategy,
		ledger:   NewLedger(),
	}
}

// Translate runs the full pipeline for one text: validate, render, record.
func (e *Engine) Translate(text, sourceLang, targetLang string) (models.TranslationResult, error) {
	source, target, err := ValidateLanguages(sourceLang, targetLang)
	if err != nil {
		return models.TranslationResult{}, err
	}

	if strings.TrimSpace(text) == "" {
		return models.TranslationResult{}, &models.EmptyInputError{}
	}

	translated := text
	confidence := 1.0
	model := IdentityName

	// Same-to-same is a defined no-op, not an error.
	if source != target {
		translated, confidence, err = e.strategy.Render(text, source, target)
		if err != nil {
			return models.TranslationResult{}, &models.TranslationFailedError{Cause: err}
		}
		model = e.strategy.Name()
	}

	result := models.TranslationResult{
		ID:              uuid.NewString(),
		OriginalText:    text,
		TranslatedText:  translated,
		SourceLanguage:  source,
		TargetLanguage:  target,
		ConfidenceScore: confidence,
		ModelUsed:       model,
	}

	return e.ledger.Record(result), nil
}

// BatchTranslate applies Translate to each text in input order. The first
// error aborts the whole batch; no partial results are returned. Inputs are
// checked up front so a bad item fails the batch before anything is recorded.
func (e *Engine) BatchTranslate(texts []string, sourceLang, targetLang string) ([]models.TranslationResult, error) {
	if _, _, err := ValidateLanguages(sourceLang, targetLang); err != nil {
		return nil, err
	}
	for _, text := range texts {
		if strings.TrimSpace(text) == "" {
			return nil, &models.EmptyInputError{}
		}
	}

	results := make([]models.TranslationResult, 0, len(texts))
	for _, text := range texts {
		result, err := e.Translate(text, sourceLang, targetLang)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

// Recent returns up to limit ledger entries, newest first.
func (e *Engine) Recent(limit int) []models.TranslationResult {
	return e.ledger.Recent(limit)
}

// StrategyName reports the identifier of the configured strategy.
func (e *Engine) StrategyName() string {
	return e.strategy.Name()
}
