package exporter

import (
	"os"
	"strings"
	"testing"
	"time"

	"hausa-translate/internal/models"
)

var exportTime = time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)

func TestFormat(t *testing.T) {
	e := NewMarkdownExporter(t.TempDir())

	results := []models.TranslationResult{
		{
			OriginalText:    "hello",
			TranslatedText:  "sannu",
			SourceLanguage:  "en",
			TargetLanguage:  "ha",
			ConfidenceScore: 1.0,
			ModelUsed:       "dictionary-v1",
			Timestamp:       exportTime,
		},
	}

	out := e.Format(results, exportTime)
	for _, want := range []string{"entries: 1", "| hello | sannu |", "en→ha", "dictionary-v1"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

func TestFormatEmpty(t *testing.T) {
	e := NewMarkdownExporter(t.TempDir())

	out := e.Format(nil, exportTime)
	if !strings.Contains(out, "No translations recorded.") {
		t.Errorf("empty report unexpected:\n%s", out)
	}
}

func TestFormatEscapesCells(t *testing.T) {
	e := NewMarkdownExporter(t.TempDir())

	results := []models.TranslationResult{{
		OriginalText:   "a|b\nc",
		TranslatedText: "x",
		Timestamp:      exportTime,
	}}

	out := e.Format(results, exportTime)
	if !strings.Contains(out, `a\|b c`) {
		t.Errorf("cell not escaped:\n%s", out)
	}
}

func TestExportWritesFile(t *testing.T) {
	dir := t.TempDir()
	e := NewMarkdownExporter(dir)

	path, err := e.Export(nil, exportTime)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if !strings.HasPrefix(path, dir) || !strings.HasSuffix(path, ".md") {
		t.Errorf("unexpected export path %q", path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("export file missing: %v", err)
	}
}
