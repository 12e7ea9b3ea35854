package engine

import (
	"os"
	"path/filepath"
	"testing"
)

const testFloor = 0.1

func TestRenderKnownWord(t *testing.T) {
	s := NewDictionaryStrategy(nil, testFloor)

	text, confidence, err := s.Render("hello", "en", "ha")
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if text != "sannu" {
		t.Errorf("expected 'sannu', got %q", text)
	}
	if confidence != 1.0 {
		t.Errorf("expected confidence 1.0, got %v", confidence)
	}
}

func TestRenderPartialMatch(t *testing.T) {
	s := NewDictionaryStrategy(nil, testFloor)

	text, confidence, err := s.Render("hello xyzzy", "en", "ha")
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if text != "sannu xyzzy" {
		t.Errorf("expected 'sannu xyzzy', got %q", text)
	}
	if confidence != 0.5 {
		t.Errorf("expected confidence 0.5, got %v", confidence)
	}
}

func TestRenderNoMatchUsesFloor(t *testing.T) {
	s := NewDictionaryStrategy(nil, testFloor)

	text, confidence, err := s.Render("qwfp zxcv", "en", "ha")
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if text != "qwfp zxcv" {
		t.Errorf("unresolved tokens should pass through, got %q", text)
	}
	if confidence != testFloor {
		t.Errorf("expected floor confidence %v, got %v", testFloor, confidence)
	}
}

func TestRenderLongestPhraseWins(t *testing.T) {
	s := NewDictionaryStrategy(nil, testFloor)

	// "good morning" must match as a phrase, not word by word.
	text, confidence, err := s.Render("good morning", "en", "ha")
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if text != "barka da safiya" {
		t.Errorf("expected 'barka da safiya', got %q", text)
	}
	if confidence != 1.0 {
		t.Errorf("expected confidence 1.0, got %v", confidence)
	}
}

func TestRenderPreservesCasingAndPunctuation(t *testing.T) {
	s := NewDictionaryStrategy(nil, testFloor)

	tests := []struct {
		in   string
		want string
	}{
		{"Hello, friend!", "Sannu, aboki!"},
		{"HELLO", "SANNU"},
		{"water?", "ruwa?"},
		{"Thank you.", "Na gode."},
	}

	for _, tt := range tests {
		got, _, err := s.Render(tt.in, "en", "ha")
		if err != nil {
			t.Fatalf("Render(%q) failed: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("Render(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRenderReverseDirection(t *testing.T) {
	s := NewDictionaryStrategy(nil, testFloor)

	text, confidence, err := s.Render("sannu", "ha", "en")
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if text != "hello" {
		t.Errorf("expected 'hello', got %q", text)
	}
	if confidence != 1.0 {
		t.Errorf("expected confidence 1.0, got %v", confidence)
	}
}

func TestRenderPunctuationOnlyInput(t *testing.T) {
	s := NewDictionaryStrategy(nil, testFloor)

	text, confidence, err := s.Render("?!", "en", "ha")
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if text != "?!" {
		t.Errorf("expected input unchanged, got %q", text)
	}
	if confidence != testFloor {
		t.Errorf("expected floor confidence, got %v", confidence)
	}
}

func TestExtraEntriesOverrideLexicon(t *testing.T) {
	s := NewDictionaryStrategy([]Entry{{English: "hello", Hausa: "salama"}}, testFloor)

	text, _, err := s.Render("hello", "en", "ha")
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if text != "salama" {
		t.Errorf("extra entry should override, got %q", text)
	}
}

func TestLoadEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dict.json")
	content := `[{"en": "greetings", "ha": "gaisuwa"}]`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	entries, err := LoadEntries(path)
	if err != nil {
		t.Fatalf("LoadEntries failed: %v", err)
	}
	if len(entries) != 1 || entries[0].English != "greetings" || entries[0].Hausa != "gaisuwa" {
		t.Errorf("unexpected entries: %+v", entries)
	}
}

func TestLoadEntriesBadFile(t *testing.T) {
	if _, err := LoadEntries(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadEntries(path); err == nil {
		t.Error("expected error for malformed file")
	}
}

func TestTokenizeRoundTrip(t *testing.T) {
	inputs := []string{
		"hello world",
		"  leading and trailing  ",
		"a'a, na gode!",
		"multi\nline\ttext",
		"",
	}

	for _, in := range inputs {
		var rebuilt string
		for _, tok := range tokenize(in) {
			rebuilt += tok.text
		}
		if rebuilt != in {
			t.Errorf("tokenize round trip changed %q to %q", in, rebuilt)
		}
	}
}
