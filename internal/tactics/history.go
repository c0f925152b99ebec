package tactics

import (
	"fmt"
	"time"
)

// HistoryCapacity bounds the coaching history. Once full, the oldest entry
// is evicted first (FIFO by store time, not by access).
const HistoryCapacity = 50

// HistoryEntry is one stored recommendation, re-stamped with a
// history-unique ID derived from the source recommendation and store time.
type HistoryEntry struct {
	ID             string         `json:"id"`
	SourceID       string         `json:"sourceId"`
	StoredAt       time.Time      `json:"storedAt"`
	Recommendation Recommendation `json:"recommendation"`
}

// History is a bounded FIFO log of applied recommendations. It is a plain
// value object owned by whoever constructs it; the engine never shares one
// implicitly.
type History struct {
	entries []HistoryEntry
	now     func() time.Time
}

// NewHistory creates an empty history with the standard capacity.
func NewHistory() *History {
	return &History{now: time.Now}
}

// Store appends a recommendation, evicting the oldest entry when the
// history is at capacity. The returned entry carries the history-unique ID.
func (h *History) Store(rec Recommendation) HistoryEntry {
	if h.now == nil {
		h.now = time.Now
	}
	t := h.now().UTC()
	entry := HistoryEntry{
		ID:             fmt.Sprintf("%s-%d", rec.ID, t.UnixNano()),
		SourceID:       rec.ID,
		StoredAt:       t,
		Recommendation: rec,
	}
	h.entries = append(h.entries, entry)
	if len(h.entries) > HistoryCapacity {
		h.entries = h.entries[len(h.entries)-HistoryCapacity:]
	}
	return entry
}

// Entries returns a copy of the history, oldest first.
func (h *History) Entries() []HistoryEntry {
	out := make([]HistoryEntry, len(h.entries))
	copy(out, h.entries)
	return out
}

// Len reports the number of stored entries.
func (h *History) Len() int {
	return len(h.entries)
}
