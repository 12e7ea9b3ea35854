package service

import (
	"path/filepath"
	"testing"

	"hausa-translate/internal/config"
	"hausa-translate/internal/engine"
	"hausa-translate/internal/storage"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	dir := t.TempDir()

	archive, err := storage.NewSQLiteArchive(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("failed to open archive: %v", err)
	}
	t.Cleanup(func() { archive.Close() })

	cfg := &config.Config{
		Export: config.ExportConfig{Dir: filepath.Join(dir, "exports")},
	}
	eng := engine.New(engine.NewDictionaryStrategy(nil, 0.1))
	return NewService(cfg, eng, archive)
}

func TestTranslateMirrorsToArchive(t *testing.T) {
	svc := newTestService(t)

	result, err := svc.Translate("hello", "en", "ha")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}

	archived, err := svc.ArchivedHistory(10)
	if err != nil {
		t.Fatalf("ArchivedHistory failed: %v", err)
	}
	if len(archived) != 1 {
		t.Fatalf("expected 1 archived entry, got %d", len(archived))
	}
	if archived[0].ID != result.ID || archived[0].TranslatedText != "sannu" {
		t.Errorf("archived entry mismatch: %+v", archived[0])
	}
}

func TestBatchTranslateMirrorsAllResults(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.BatchTranslate([]string{"hello", "water"}, "en", "ha"); err != nil {
		t.Fatalf("BatchTranslate failed: %v", err)
	}

	stats, err := svc.Stats()
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.Total != 2 || stats.EnglishToHausa != 2 {
		t.Errorf("stats = %+v, want 2 en->ha translations", stats)
	}
}

func TestRecentReadsLedgerNotArchive(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.Translate("hello", "en", "ha"); err != nil {
		t.Fatal(err)
	}

	recent := svc.Recent(10)
	if len(recent) != 1 || recent[0].OriginalText != "hello" {
		t.Errorf("unexpected recent entries: %+v", recent)
	}
}

func TestExportWritesReport(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.Translate("hello", "en", "ha"); err != nil {
		t.Fatal(err)
	}

	result, err := svc.Export(50)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if result.Entries != 1 {
		t.Errorf("exported %d entries, want 1", result.Entries)
	}
	if result.Path == "" {
		t.Error("export path empty")
	}
}

func TestArchiveDisabled(t *testing.T) {
	cfg := &config.Config{}
	eng := engine.New(engine.NewDictionaryStrategy(nil, 0.1))
	svc := NewService(cfg, eng, nil)

	// Translation still works without persistence.
	if _, err := svc.Translate("hello", "en", "ha"); err != nil {
		t.Fatalf("Translate failed: %v", err)
	}

	if _, err := svc.ArchivedHistory(10); err == nil {
		t.Error("expected error when no database configured")
	}
	if _, err := svc.Stats(); err == nil {
		t.Error("expected error when no database configured")
	}
}
