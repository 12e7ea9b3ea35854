package service

import (
	"fmt"
	"time"

	"hausa-translate/internal/config"
	"hausa-translate/internal/engine"
	"hausa-translate/internal/exporter"
	"hausa-translate/internal/models"
	"hausa-translate/internal/storage"
)

// StatsResult holds archive statistics
type StatsResult struct {
	Total          int     `json:"total"`
	EnglishToHausa int     `json:"english_to_hausa"`
	HausaToEnglish int     `json:"hausa_to_english"`
	AvgConfidence  float64 `json:"avg_confidence"`
}

// ExportResult holds the outcome of a history export
type ExportResult struct {
	Path    string `json:"path"`
	Entries int    `json:"entries"`
}

// Service wires the translation engine to the optional SQLite archive and
// the markdown exporter. Both the CLI commands and the HTTP server go
// through it.
type Service struct {
	cfg     *config.Config
	eng     *engine.Engine
	archive *storage.SQLiteArchive
}

// NewService creates a new service instance. archive may be nil when
// persistence is disabled.
func NewService(cfg *config.Config, eng *engine.Engine, archive *storage.SQLiteArchive) *Service {
	return &Service{
		cfg:     cfg,
		eng:     eng,
		archive: archive,
	}
}

// Translate runs one translation and mirrors it to the archive.
func (s *Service) Translate(text, sourceLang, targetLang string) (models.TranslationResult, error) {
	result, err := s.eng.Translate(text, sourceLang, targetLang)
	if err != nil {
		return models.TranslationResult{}, err
	}
	s.archiveResults(result)
	return result, nil
}

// BatchTranslate translates a sequence of texts, failing fast on the first
// bad item.
func (s *Service) BatchTranslate(texts []string, sourceLang, targetLang string) ([]models.TranslationResult, error) {
	results, err := s.eng.BatchTranslate(texts, sourceLang, targetLang)
	if err != nil {
		return nil, err
	}
	s.archiveResults(results...)
	return results, nil
}

// Recent returns the most recent ledger entries, newest first.
func (s *Service) Recent(limit int) []models.TranslationResult {
	return s.eng.Recent(limit)
}

// Languages returns the supported language set.
func (s *Service) Languages() []models.Language {
	return models.SupportedLanguages()
}

// ArchivedHistory reads history from the archive, for CLI use across
// process restarts.
func (s *Service) ArchivedHistory(limit int) ([]models.TranslationResult, error) {
	if s.archive == nil {
		return nil, fmt.Errorf("no database configured")
	}
	return s.archive.RecentTranslations(limit)
}

// Stats returns archive statistics.
func (s *Service) Stats() (*StatsResult, error) {
	if s.archive == nil {
		return nil, fmt.Errorf("no database configured")
	}
	total, enToHa, haToEn, avg, err := s.archive.GetStats()
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}
	return &StatsResult{
		Total:          total,
		EnglishToHausa: enToHa,
		HausaToEnglish: haToEn,
		AvgConfidence:  avg,
	}, nil
}

// Export writes archived history to a markdown report.
func (s *Service) Export(limit int) (*ExportResult, error) {
	history, err := s.ArchivedHistory(limit)
	if err != nil {
		return nil, err
	}

	exp := exporter.NewMarkdownExporter(s.cfg.Export.Dir)
	path, err := exp.Export(history, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	return &ExportResult{Path: path, Entries: len(history)}, nil
}

// archiveResults mirrors results into the archive. Archive failures do not
// fail the translation; the caller already has a completed result.
func (s *Service) archiveResults(results ...models.TranslationResult) {
	if s.archive == nil {
		return
	}
	for _, r := range results {
		if err := s.archive.SaveTranslation(r); err != nil {
			fmt.Printf("Warning: failed to archive translation %s: %v\n", r.ID, err)
		}
	}
}
