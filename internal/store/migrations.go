package store

import "fmt"

// currentSchemaVersion is the latest schema version.
const currentSchemaVersion = 1

// Migrate runs forward migrations to bring the database schema up to date.
func (db *DB) Migrate() error {
	if _, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER NOT NULL
		)
	`); err != nil {
		return fmt.Errorf("creating schema_version table: %w", err)
	}

	version := 0
	row := db.conn.QueryRow("SELECT version FROM schema_version LIMIT 1")
	if err := row.Scan(&version); err != nil {
		// No rows means version 0 (fresh database).
		version = 0
	}

	if version < 1 {
		if err := db.migrateV1(); err != nil {
			return fmt.Errorf("migration v1: %w", err)
		}
	}

	return nil
}

// migrateV1 creates all initial tables and indexes.
func (db *DB) migrateV1() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS snapshots (
			id                   INTEGER PRIMARY KEY AUTOINCREMENT,
			taken_at             TEXT NOT NULL,
			formation            TEXT NOT NULL,
			pass                 INTEGER NOT NULL,
			coverage             REAL NOT NULL,
			recommendation_count INTEGER NOT NULL,
			advisory_used        BOOLEAN NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS recommendations (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			snapshot_id INTEGER NOT NULL REFERENCES snapshots(id),
			rec_id      TEXT NOT NULL,
			rec_type    TEXT NOT NULL,
			title       TEXT NOT NULL,
			description TEXT NOT NULL,
			reasoning   TEXT,
			confidence  REAL NOT NULL,
			priority    TEXT NOT NULL,
			impact      TEXT NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS coaching_log (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			entry_id   TEXT NOT NULL UNIQUE,
			source_id  TEXT NOT NULL,
			stored_at  TEXT NOT NULL,
			rec_type   TEXT NOT NULL,
			title      TEXT NOT NULL,
			priority   TEXT NOT NULL,
			confidence REAL NOT NULL,
			impact     TEXT NOT NULL
		)`,

		`CREATE INDEX IF NOT EXISTS idx_recommendations_snapshot ON recommendations(snapshot_id)`,
		`CREATE INDEX IF NOT EXISTS idx_coaching_log_stored_at ON coaching_log(stored_at)`,
	}

	for _, stmt := range statements {
		if _, err := db.conn.Exec(stmt); err != nil {
			return fmt.Errorf("executing migration statement: %w", err)
		}
	}

	if _, err := db.conn.Exec("DELETE FROM schema_version"); err != nil {
		return err
	}
	if _, err := db.conn.Exec("INSERT INTO schema_version (version) VALUES (?)", currentSchemaVersion); err != nil {
		return err
	}
	return nil
}
