package engine

import (
	"sync"
	"time"

	"hausa-translate/internal/models"
)

// RecentCeiling bounds how many entries a single Recent call may return.
const RecentCeiling = 100

// Ledger is the append-only in-memory record of completed translations.
// Record is the only write operation; entries are never updated or removed
// for the lifetime of the process.
type Ledger struct {
	mu      sync.RWMutex
	entries []models.TranslationResult
}

func NewLedger() *Ledger {
	return &Ledger{}
}

// Record stamps the result with the current UTC time and appends it.
// Stamping under the lock keeps timestamps non-decreasing in append order.
func (l *Ledger) Record(result models.TranslationResult) models.TranslationResult {
	l.mu.Lock()
	defer l.mu.Unlock()

	result.Timestamp = time.Now().UTC()
	l.entries = append(l.entries, result)
	return result
}

// Recent returns up to limit entries, newest first. The limit is clamped
// to RecentCeiling regardless of what the caller asks for.
func (l *Ledger) Recent(limit int) []models.TranslationResult {
	if limit <= 0 {
		return nil
	}
	if limit > RecentCeiling {
		limit = RecentCeiling
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	if limit > len(l.entries) {
		limit = len(l.entries)
	}

	out := make([]models.TranslationResult, limit)
	for i := 0; i < limit; i++ {
		out[i] = l.entries[len(l.entries)-1-i]
	}
	return out
}

// Len reports the number of recorded translations.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}
