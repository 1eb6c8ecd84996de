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

// migrateV1 creates the check-in, journal, and meta tables.
func (db *DB) migrateV1() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS checkins (
			id         INTEGER PRIMARY KEY,
			date       TEXT NOT NULL,
			mood       INTEGER NOT NULL,
			activities TEXT NOT NULL DEFAULT '[]',
			notes      TEXT NOT NULL DEFAULT '',
			timestamp  INTEGER NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS journal_entries (
			id              INTEGER PRIMARY KEY,
			date            TEXT NOT NULL,
			text            TEXT NOT NULL,
			sentiment_score REAL NOT NULL,
			sentiment_label TEXT NOT NULL,
			timestamp       INTEGER NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS meta (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,

		`CREATE INDEX IF NOT EXISTS idx_checkins_timestamp ON checkins(timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_journal_timestamp ON journal_entries(timestamp)`,
	}

	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("executing %q: %w", stmt[:40], err)
		}
	}

	if _, err := tx.Exec("DELETE FROM schema_version"); err != nil {
		return err
	}
	if _, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", currentSchemaVersion); err != nil {
		return err
	}

	return tx.Commit()
}
