package analysis

import (
	"errors"
	"sync"
	"testing"
	"time"
)

func newRecord(createdAt time.Time) *Record {
	return &Record{
		ID:              RecordID("rec"),
		Recommendations: []string{"do the thing"},
		CreatedAt:       createdAt,
	}
}

func TestHistoryAppendAndGet(t *testing.T) {
	h := NewHistory()
	if h.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", h.Len())
	}

	now := time.Now()
	first := newRecord(now)
	second := newRecord(now.Add(time.Second))

	if i := h.Append(first); i != 0 {
		t.Errorf("first Append() index = %d, want 0", i)
	}
	if i := h.Append(second); i != 1 {
		t.Errorf("second Append() index = %d, want 1", i)
	}

	got, err := h.Get(0)
	if err != nil {
		t.Fatalf("Get(0) error: %v", err)
	}
	if got != first {
		t.Errorf("Get(0) returned a different record")
	}
	got, err = h.Get(1)
	if err != nil {
		t.Fatalf("Get(1) error: %v", err)
	}
	if got != second {
		t.Errorf("Get(1) returned a different record")
	}
}

func TestHistoryGetOutOfRange(t *testing.T) {
	h := NewHistory()
	h.Append(newRecord(time.Now()))

	for _, i := range []int{-1, 1, 42} {
		if _, err := h.Get(i); !errors.Is(err, ErrNotFound) {
			t.Errorf("Get(%d) error = %v, want ErrNotFound", i, err)
		}
	}
}

func TestHistoryDeleteAndReorderRejected(t *testing.T) {
	h := NewHistory()
	h.Append(newRecord(time.Now()))

	if err := h.Delete(0); !errors.Is(err, ErrNotImplemented) {
		t.Errorf("Delete(0) error = %v, want ErrNotImplemented", err)
	}
	if err := h.Reorder(0, 0); !errors.Is(err, ErrNotImplemented) {
		t.Errorf("Reorder error = %v, want ErrNotImplemented", err)
	}
	if h.Len() != 1 {
		t.Errorf("Len() after rejected delete = %d, want 1", h.Len())
	}
}

func TestHistoryLatest(t *testing.T) {
	h := NewHistory()
	if _, _, err := h.Latest(); !errors.Is(err, ErrEmptyHistory) {
		t.Errorf("Latest() on empty history error = %v, want ErrEmptyHistory", err)
	}

	h.Append(newRecord(time.Now()))
	last := newRecord(time.Now())
	h.Append(last)

	rec, i, err := h.Latest()
	if err != nil {
		t.Fatalf("Latest() error: %v", err)
	}
	if rec != last || i != 1 {
		t.Errorf("Latest() = (%p, %d), want (%p, 1)", rec, i, last)
	}
}

func TestHistoryMonotonicTimestamps(t *testing.T) {
	h := NewHistory()
	now := time.Now()
	h.Append(newRecord(now))
	// Clock stepped backwards between runs.
	h.Append(newRecord(now.Add(-time.Hour)))

	records := h.All()
	if records[1].CreatedAt.Before(records[0].CreatedAt) {
		t.Errorf("CreatedAt not monotonic: %v before %v", records[1].CreatedAt, records[0].CreatedAt)
	}
}

func TestHistoryConcurrentAppend(t *testing.T) {
	h := NewHistory()
	const n = 50

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			h.Append(newRecord(time.Now()))
		}()
	}
	wg.Wait()

	if h.Len() != n {
		t.Errorf("Len() after %d concurrent appends = %d", n, h.Len())
	}
	records := h.All()
	for i := 1; i < len(records); i++ {
		if records[i].CreatedAt.Before(records[i-1].CreatedAt) {
			t.Errorf("CreatedAt not monotonic at index %d", i)
		}
	}
}
