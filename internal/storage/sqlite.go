package storage

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"hausa-translate/internal/models"
)

// SQLiteArchive mirrors completed translations to disk so the history
// survives process restarts. The engine's in-memory ledger stays the
// authority for the live /history endpoint; the archive only accumulates.
type SQLiteArchive struct {
	db *sql.DB
}

func NewSQLiteArchive(dbPath string) (*SQLiteArchive, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	archive := &SQLiteArchive{db: db}
	if err := archive.migrate(); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return archive, nil
}

func (a *SQLiteArchive) migrate() error {
	query := `
	CREATE TABLE IF NOT EXISTS translations (
		id TEXT PRIMARY KEY,
		original_text TEXT NOT NULL,
		translated_text TEXT NOT NULL,
		source_language TEXT NOT NULL,
		target_language TEXT NOT NULL,
		confidence_score REAL NOT NULL,
		model_used TEXT NOT NULL,
		created_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_translations_created ON translations(created_at);
	CREATE INDEX IF NOT EXISTS idx_translations_pair ON translations(source_language, target_language);
	`
	_, err := a.db.Exec(query)
	return err
}

func (a *SQLiteArchive) Close() error {
	return a.db.Close()
}

// SaveTranslation appends one completed translation to the archive.
func (a *SQLiteArchive) SaveTranslation(result models.TranslationResult) error {
	query := `
	INSERT INTO translations (
		id, original_text, translated_text, source_language, target_language,
		confidence_score, model_used, created_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := a.db.Exec(query,
		result.ID,
		result.OriginalText,
		result.TranslatedText,
		result.SourceLanguage,
		result.TargetLanguage,
		result.ConfidenceScore,
		result.ModelUsed,
		result.Timestamp,
	)
	return err
}

// RecentTranslations returns the most recently archived translations, newest first.
func (a *SQLiteArchive) RecentTranslations(limit int) ([]models.TranslationResult, error) {
	query := `
	SELECT id, original_text, translated_text, source_language, target_language,
		confidence_score, model_used, created_at
	FROM translations
	ORDER BY created_at DESC, rowid DESC
	LIMIT ?
	`
	rows, err := a.db.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []models.TranslationResult
	for rows.Next() {
		var r models.TranslationResult
		err := rows.Scan(
			&r.ID,
			&r.OriginalText,
			&r.TranslatedText,
			&r.SourceLanguage,
			&r.TargetLanguage,
			&r.ConfidenceScore,
			&r.ModelUsed,
			&r.Timestamp,
		)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}

	return results, rows.Err()
}

// GetStats returns archive statistics.
func (a *SQLiteArchive) GetStats() (total, enToHa, haToEn int, avgConfidence float64, err error) {
	err = a.db.QueryRow("SELECT COUNT(*) FROM translations").Scan(&total)
	if err != nil {
		return
	}
	err = a.db.QueryRow("SELECT COUNT(*) FROM translations WHERE source_language = 'en' AND target_language = 'ha'").Scan(&enToHa)
	if err != nil {
		return
	}
	err = a.db.QueryRow("SELECT COUNT(*) FROM translations WHERE source_language = 'ha' AND target_language = 'en'").Scan(&haToEn)
	if err != nil {
		return
	}
	err = a.db.QueryRow("SELECT COALESCE(AVG(confidence_score), 0) FROM translations").Scan(&avgConfidence)
	return
}
