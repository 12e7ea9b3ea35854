package exporter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gosimple/slug"

	"hausa-translate/internal/models"
)

type MarkdownExporter struct {
	dir string
}

func NewMarkdownExporter(dir string) *MarkdownExporter {
	return &MarkdownExporter{dir: dir}
}

// Format renders translation history as a markdown report.
func (e *MarkdownExporter) Format(results []models.TranslationResult, generatedAt time.Time) string {
	var sb strings.Builder

	sb.WriteString("---\n")
	sb.WriteString("title: \"Translation History\"\n")
	sb.WriteString(fmt.Sprintf("date: %s\n", generatedAt.Format("2006-01-02T15:04:05")))
	sb.WriteString(fmt.Sprintf("entries: %d\n", len(results)))
	sb.WriteString("---\n\n")

	if len(results) == 0 {
		sb.WriteString("No translations recorded.\n")
		return sb.String()
	}

	sb.WriteString("| Time (UTC) | Pair | Original | Translation | Confidence | Model |\n")
	sb.WriteString("|---|---|---|---|---|---|\n")
	for _, r := range results {
		sb.WriteString(fmt.Sprintf("| %s | %s→%s | %s | %s | %.2f | %s |\n",
			r.Timestamp.UTC().Format("2006-01-02 15:04:05"),
			r.SourceLanguage,
			r.TargetLanguage,
			escapeCell(r.OriginalText),
			escapeCell(r.TranslatedText),
			r.ConfidenceScore,
			r.ModelUsed,
		))
	}

	return sb.String()
}

// Export writes the report to the export directory and returns the file path.
func (e *MarkdownExporter) Export(results []models.TranslationResult, generatedAt time.Time) (string, error) {
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	name := slug.Make(fmt.Sprintf("translation-history-%s", generatedAt.Format("2006-01-02-150405"))) + ".md"
	path := filepath.Join(e.dir, name)

	if err := os.WriteFile(path, []byte(e.Format(results, generatedAt)), 0o644); err != nil {
		return "", fmt.Errorf("failed to write export file: %w", err)
	}

	return path, nil
}

func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	return strings.ReplaceAll(s, "\n", " ")
}
