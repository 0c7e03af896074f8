package analysis

import (
	"sync"
)

// History is the append-only in-memory log of analysis records owned by one
// orchestrator instance. Index = insertion order. It lives and dies with the
// process; there is no persistence behind it.
//
// Append is the only mutation and is serialized by the mutex so concurrent
// Analyze completions cannot corrupt ordering or lose a record.
type History struct {
	mu      sync.RWMutex
	records []*Record
}

func NewHistory() *History {
	return &History{}
}

// Append adds a record and returns its index. CreatedAt is clamped to the
// previous record's timestamp so the sequence stays monotonically
// non-decreasing even if the clock steps backwards between runs.
func (h *History) Append(r *Record) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	if n := len(h.records); n > 0 && r.CreatedAt.Before(h.records[n-1].CreatedAt) {
		r.CreatedAt = h.records[n-1].CreatedAt
	}
	h.records = append(h.records, r)
	return len(h.records) - 1
}

// Get returns the record at index i.
func (h *History) Get(i int) (*Record, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if i < 0 || i >= len(h.records) {
		return nil, ErrNotFound
	}
	return h.records[i], nil
}

// Latest returns the most recent record and its index.
func (h *History) Latest() (*Record, int, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if len(h.records) == 0 {
		return nil, -1, ErrEmptyHistory
	}
	return h.records[len(h.records)-1], len(h.records) - 1, nil
}

// All returns a view of the history in insertion order. The returned slice is
// a copy of the log header; callers must not mutate the records.
func (h *History) All() []*Record {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]*Record, len(h.records))
	copy(out, h.records)
	return out
}

// Len reports the number of records.
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.records)
}

// Delete is part of the public contract but intentionally unsupported:
// analysis identifiers are plain history indices, so removal would reorder
// the log under callers.
func (h *History) Delete(i int) error {
	return ErrNotImplemented
}

// Reorder is intentionally unsupported for the same reason as Delete.
func (h *History) Reorder(from, to int) error {
	return ErrNotImplemented
}
