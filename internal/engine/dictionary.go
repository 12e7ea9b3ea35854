package engine

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DictionaryName identifies the dictionary strategy in TranslationResult.ModelUsed.
const DictionaryName = "dictionary-v1"

// Entry is one bidirectional term or phrase pair.
type Entry struct {
	English string `json:"en"`
	Hausa   string `json:"ha"`
}

// DictionaryStrategy translates via a bidirectional term/phrase lookup table.
// The table is built once at construction and read-only afterwards, so it is
// safe for concurrent use without locking.
type DictionaryStrategy struct {
	// tables maps target language -> lowercased source phrase -> translation
	tables    map[string]map[string]string
	maxPhrase int
	floor     float64
}

// NewDictionaryStrategy builds a strategy from the built-in lexicon plus any
// extra entries. Later entries override earlier ones for the same phrase.
func NewDictionaryStrategy(extra []Entry, floor float64) *DictionaryStrategy {
	s := &DictionaryStrategy{
		tables: map[string]map[string]string{
			"en": {},
			"ha": {},
		},
		maxPhrase: 1,
		floor:     floor,
	}

	for _, e := range defaultLexicon {
		s.add(e)
	}
	for _, e := range extra {
		s.add(e)
	}

	return s
}

func (s *DictionaryStrategy) add(e Entry) {
	en := strings.ToLower(strings.TrimSpace(e.English))
	ha := strings.ToLower(strings.TrimSpace(e.Hausa))
	if en == "" || ha == "" {
		return
	}
	s.tables["ha"][en] = e.Hausa
	s.tables["en"][ha] = e.English

	if n := wordCount(en); n > s.maxPhrase {
		s.maxPhrase = n
	}
	if n := wordCount(ha); n > s.maxPhrase {
		s.maxPhrase = n
	}
}

func (s *DictionaryStrategy) Name() string {
	return DictionaryName
}

// Render applies longest-match tokenization: at each word position the
// longest known phrase is tried first, falling back to shorter phrases and
// finally to the single token. Unresolved tokens pass through unchanged.
// Confidence is the ratio of resolved word tokens to total word tokens,
// with a fixed floor when nothing resolves.
func (s *DictionaryStrategy) Render(text, source, target string) (string, float64, error) {
	table := s.tables[target]
	if table == nil {
		return "", 0, fmt.Errorf("no lookup table for target language %q", target)
	}

	toks := tokenize(text)

	total := 0
	for _, t := range toks {
		if t.word {
			total++
		}
	}

	var out strings.Builder
	resolved := 0

	for i := 0; i < len(toks); {
		if !toks[i].word {
			out.WriteString(toks[i].text)
			i++
			continue
		}

		matched := false
		for n := s.maxPhrase; n >= 1; n-- {
			next, phrase, ok := phraseAt(toks, i, n)
			if !ok {
				continue
			}
			repl, found := table[strings.ToLower(phrase)]
			if !found {
				continue
			}
			out.WriteString(matchCase(phrase, repl))
			resolved += n
			i = next
			matched = true
			break
		}
		if !matched {
			out.WriteString(toks[i].text)
			i++
		}
	}

	if total == 0 || resolved == 0 {
		return out.String(), s.floor, nil
	}

	score := math.Min(1.0, math.Max(0.0, float64(resolved)/float64(total)))
	return out.String(), score, nil
}

// LoadEntries reads extra dictionary entries from a JSON file containing
// an array of {"en": ..., "ha": ...} pairs.
func LoadEntries(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dictionary file: %w", err)
	}
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse dictionary file %s: %w", path, err)
	}
	return entries, nil
}

type token struct {
	text string
	word bool
}

// tokenize splits text into word runs and everything-else runs, preserving
// the original text exactly when the runs are concatenated back.
func tokenize(text string) []token {
	var toks []token
	var cur strings.Builder
	curWord := false

	flush := func() {
		if cur.Len() > 0 {
			toks = append(toks, token{text: cur.String(), word: curWord})
			cur.Reset()
		}
	}

	for _, r := range text {
		isWord := unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\''
		if cur.Len() > 0 && isWord != curWord {
			flush()
		}
		curWord = isWord
		cur.WriteRune(r)
	}
	flush()

	return toks
}

// phraseAt collects n consecutive word tokens starting at toks[start],
// requiring exactly one space between them. Returns the index past the
// last consumed token and the phrase with its original casing.
func phraseAt(toks []token, start, n int) (int, string, bool) {
	var sb strings.Builder
	i := start
	words := 0
	for {
		sb.WriteString(toks[i].text)
		words++
		if words == n {
			return i + 1, sb.String(), true
		}
		if i+2 >= len(toks) || toks[i+1].text != " " || !toks[i+2].word {
			return 0, "", false
		}
		sb.WriteString(" ")
		i += 2
	}
}

// matchCase carries the casing shape of the original phrase over to the
// replacement: all-caps stays all-caps, a leading capital stays capitalized.
func matchCase(original, repl string) string {
	if original == strings.ToUpper(original) && original != strings.ToLower(original) && utf8.RuneCountInString(original) > 1 {
		return strings.ToUpper(repl)
	}
	first, _ := utf8.DecodeRuneInString(original)
	if unicode.IsUpper(first) {
		r, size := utf8.DecodeRuneInString(repl)
		if r == utf8.RuneError {
			return repl
		}
		return string(unicode.ToUpper(r)) + repl[size:]
	}
	return repl
}

func wordCount(phrase string) int {
	return len(strings.Fields(phrase))
}
