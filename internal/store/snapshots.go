package store

import (
	"database/sql"
	"time"

	"github.com/blackwell-systems/touchline/internal/tactics"
)

// Snapshot is a point-in-time capture of one analysis pass.
type Snapshot struct {
	ID                  int64     `json:"id"`
	TakenAt             time.Time `json:"taken_at"`
	Formation           string    `json:"formation"`
	Pass                uint64    `json:"pass"`
	Coverage            float64   `json:"coverage"`
	RecommendationCount int       `json:"recommendation_count"`
	AdvisoryUsed        bool      `json:"advisory_used"`
}

// SaveAnalysis persists an analysis pass and its ranked recommendations,
// returning the snapshot ID.
func (db *DB) SaveAnalysis(formationName string, a *tactics.Analysis, advisoryUsed bool) (int64, error) {
	result, err := db.conn.Exec(
		`INSERT INTO snapshots (taken_at, formation, pass, coverage, recommendation_count, advisory_used)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339), formationName, a.Pass,
		a.Coverage, len(a.Recommendations), advisoryUsed,
	)
	if err != nil {
		return 0, err
	}
	snapshotID, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}

	for _, rec := range a.Recommendations {
		if _, err := db.conn.Exec(
			`INSERT INTO recommendations
			 (snapshot_id, rec_id, rec_type, title, description, reasoning, confidence, priority, impact)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			snapshotID, rec.ID, string(rec.Type), rec.Title, rec.Description,
			rec.Reasoning, rec.Confidence, rec.Priority.String(), string(rec.Impact),
		); err != nil {
			return 0, err
		}
	}
	return snapshotID, nil
}

// LatestSnapshot returns the most recent snapshot, or nil if none exist.
func (db *DB) LatestSnapshot() (*Snapshot, error) {
	row := db.conn.QueryRow(
		`SELECT id, taken_at, formation, pass, coverage, recommendation_count, advisory_used
		 FROM snapshots ORDER BY id DESC LIMIT 1`)
	return scanSnapshot(row)
}

// ListSnapshots returns up to limit snapshots, newest first.
func (db *DB) ListSnapshots(limit int) ([]Snapshot, error) {
	rows, err := db.conn.Query(
		`SELECT id, taken_at, formation, pass, coverage, recommendation_count, advisory_used
		 FROM snapshots ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snaps []Snapshot
	for rows.Next() {
		var s Snapshot
		var takenAt string
		if err := rows.Scan(&s.ID, &takenAt, &s.Formation, &s.Pass, &s.Coverage,
			&s.RecommendationCount, &s.AdvisoryUsed); err != nil {
			return nil, err
		}
		s.TakenAt, _ = time.Parse(time.RFC3339, takenAt)
		snaps = append(snaps, s)
	}
	return snaps, rows.Err()
}

// SnapshotRecommendations returns the recommendations stored for a snapshot
// in their ranked order.
func (db *DB) SnapshotRecommendations(snapshotID int64) ([]tactics.Recommendation, error) {
	rows, err := db.conn.Query(
		`SELECT rec_id, rec_type, title, description, reasoning, confidence, priority, impact
		 FROM recommendations WHERE snapshot_id = ? ORDER BY id`, snapshotID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []tactics.Recommendation
	for rows.Next() {
		var rec tactics.Recommendation
		var recType, priority, impact string
		var reasoning sql.NullString
		if err := rows.Scan(&rec.ID, &recType, &rec.Title, &rec.Description,
			&reasoning, &rec.Confidence, &priority, &impact); err != nil {
			return nil, err
		}
		rec.Type = tactics.RecType(recType)
		rec.Reasoning = reasoning.String
		if p, err := tactics.ParsePriority(priority); err == nil {
			rec.Priority = p
		}
		rec.Impact = tactics.Impact(impact)
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

func scanSnapshot(row *sql.Row) (*Snapshot, error) {
	var s Snapshot
	var takenAt string
	err := row.Scan(&s.ID, &takenAt, &s.Formation, &s.Pass, &s.Coverage,
		&s.RecommendationCount, &s.AdvisoryUsed)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	s.TakenAt, _ = time.Parse(time.RFC3339, takenAt)
	return &s, nil
}
