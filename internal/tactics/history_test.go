package tactics

import (
	"fmt"
	"testing"
	"time"
)

func TestHistoryStoreRestampsID(t *testing.T) {
	fixed := time.Date(2026, 3, 14, 15, 9, 26, 535897932, time.UTC)
	h := &History{now: func() time.Time { return fixed }}

	entry := h.Store(Recommendation{ID: "geometry-width", Title: "Utilize Field Width"})
	want := fmt.Sprintf("geometry-width-%d", fixed.UnixNano())
	if entry.ID != want {
		t.Errorf("entry ID = %q, want %q", entry.ID, want)
	}
	if entry.SourceID != "geometry-width" {
		t.Errorf("source ID = %q, want geometry-width", entry.SourceID)
	}
	if !entry.StoredAt.Equal(fixed) {
		t.Errorf("stored at = %v, want %v", entry.StoredAt, fixed)
	}
}

func TestHistoryFIFOEviction(t *testing.T) {
	h := NewHistory()
	for i := 0; i < HistoryCapacity+10; i++ {
		h.Store(Recommendation{ID: fmt.Sprintf("rec-%d", i)})
	}
	if h.Len() != HistoryCapacity {
		t.Fatalf("len = %d, want %d", h.Len(), HistoryCapacity)
	}
	entries := h.Entries()
	if entries[0].SourceID != "rec-10" {
		t.Errorf("oldest surviving entry = %q, want rec-10", entries[0].SourceID)
	}
	if entries[len(entries)-1].SourceID != fmt.Sprintf("rec-%d", HistoryCapacity+9) {
		t.Errorf("newest entry = %q", entries[len(entries)-1].SourceID)
	}
}

func TestHistoryEntriesReturnsCopy(t *testing.T) {
	h := NewHistory()
	h.Store(Recommendation{ID: "a"})
	entries := h.Entries()
	entries[0].SourceID = "mutated"
	if h.Entries()[0].SourceID != "a" {
		t.Error("Entries exposed internal state")
	}
}
