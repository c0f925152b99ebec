package store

import (
	"time"

	"github.com/blackwell-systems/touchline/internal/tactics"
)

// LogEntry is one persisted coaching-log row.
type LogEntry struct {
	ID         string    `json:"id"`
	SourceID   string    `json:"source_id"`
	StoredAt   time.Time `json:"stored_at"`
	Type       string    `json:"type"`
	Title      string    `json:"title"`
	Priority   string    `json:"priority"`
	Confidence float64   `json:"confidence"`
	Impact     string    `json:"impact"`
}

// AppendCoachingLog persists a history entry produced by the engine.
// Re-appending the same entry is a no-op thanks to the unique entry ID.
func (db *DB) AppendCoachingLog(entry tactics.HistoryEntry) error {
	rec := entry.Recommendation
	_, err := db.conn.Exec(
		`INSERT OR IGNORE INTO coaching_log
		 (entry_id, source_id, stored_at, rec_type, title, priority, confidence, impact)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.SourceID, entry.StoredAt.UTC().Format(time.RFC3339Nano),
		string(rec.Type), rec.Title, rec.Priority.String(), rec.Confidence, string(rec.Impact),
	)
	return err
}

// CoachingLog returns up to limit persisted entries, newest first.
func (db *DB) CoachingLog(limit int) ([]LogEntry, error) {
	rows, err := db.conn.Query(
		`SELECT entry_id, source_id, stored_at, rec_type, title, priority, confidence, impact
		 FROM coaching_log ORDER BY stored_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []LogEntry
	for rows.Next() {
		var e LogEntry
		var storedAt string
		if err := rows.Scan(&e.ID, &e.SourceID, &storedAt, &e.Type, &e.Title,
			&e.Priority, &e.Confidence, &e.Impact); err != nil {
			return nil, err
		}
		e.StoredAt, _ = time.Parse(time.RFC3339Nano, storedAt)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
