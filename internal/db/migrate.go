package db

import (
	"database/sql"
	"fmt"
)

// Migrate applies the schema. Every statement is idempotent so the whole set
// is re-run on each open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS breeding_events (
		id            TEXT PRIMARY KEY,
		dam_id        TEXT NOT NULL,
		sire_id       TEXT NOT NULL,
		species       TEXT NOT NULL CHECK(species IN ('cattle','goat','sheep')),
		breeding_date TEXT NOT NULL,
		method        TEXT NOT NULL
		              CHECK(method IN ('natural','artificial_insemination','embryo_transfer')),
		status        TEXT NOT NULL DEFAULT 'unconfirmed'
		              CHECK(status IN ('unconfirmed','confirmed','open')),
		notes         TEXT NOT NULL DEFAULT '',
		decided_at    TEXT,
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_breeding_events_dam ON breeding_events(dam_id)`,
	`CREATE INDEX IF NOT EXISTS idx_breeding_events_status ON breeding_events(status)`,

	`CREATE TABLE IF NOT EXISTS pregnancies (
		id              TEXT PRIMARY KEY,
		breeding_id     TEXT REFERENCES breeding_events(id) ON DELETE SET NULL,
		dam_id          TEXT NOT NULL,
		species         TEXT NOT NULL CHECK(species IN ('cattle','goat','sheep')),
		conception_date TEXT NOT NULL,
		health_status   TEXT NOT NULL DEFAULT 'good'
		                CHECK(health_status IN ('good','attention_needed','critical')),
		birth_status    TEXT NOT NULL DEFAULT 'pregnant'
		                CHECK(birth_status IN ('pregnant','given_birth')),
		last_checkup_at TEXT,
		birth_date      TEXT,
		birth_record_id TEXT NOT NULL DEFAULT '',
		calving_problem TEXT NOT NULL DEFAULT '',
		calving_notes   TEXT NOT NULL DEFAULT '',
		created_at      TEXT NOT NULL,
		updated_at      TEXT NOT NULL
	)`,

	// At most one open pregnancy per dam.
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_pregnancies_open_dam
		ON pregnancies(dam_id) WHERE birth_status = 'pregnant'`,

	`CREATE TABLE IF NOT EXISTS checkups (
		id              TEXT PRIMARY KEY,
		pregnancy_id    TEXT NOT NULL REFERENCES pregnancies(id) ON DELETE CASCADE,
		seq             INTEGER NOT NULL,
		checked_on      TEXT NOT NULL,
		bcs             REAL NOT NULL,
		weight_kg       REAL NOT NULL,
		findings        TEXT NOT NULL DEFAULT '',
		health_status   TEXT NOT NULL
		                CHECK(health_status IN ('good','attention_needed','critical')),
		next_checkup_on TEXT,
		created_at      TEXT NOT NULL,
		UNIQUE(pregnancy_id, seq)
	)`,

	`CREATE TABLE IF NOT EXISTS bcs_entries (
		id           TEXT PRIMARY KEY,
		pregnancy_id TEXT NOT NULL REFERENCES pregnancies(id) ON DELETE CASCADE,
		seq          INTEGER NOT NULL,
		recorded_on  TEXT NOT NULL,
		month_label  TEXT NOT NULL,
		score        REAL NOT NULL,
		notes        TEXT NOT NULL DEFAULT '',
		created_at   TEXT NOT NULL,
		UNIQUE(pregnancy_id, seq)
	)`,

	`CREATE TABLE IF NOT EXISTS offspring (
		id              TEXT PRIMARY KEY,
		pregnancy_id    TEXT NOT NULL REFERENCES pregnancies(id) ON DELETE CASCADE,
		seq             INTEGER NOT NULL,
		tag_id          TEXT NOT NULL UNIQUE,
		sex             TEXT NOT NULL CHECK(sex IN ('male','female')),
		birth_weight_kg REAL NOT NULL,
		condition       TEXT NOT NULL DEFAULT '',
		vigor           TEXT NOT NULL
		                CHECK(vigor IN ('strong','moderate','weak','very_weak')),
		notes           TEXT NOT NULL DEFAULT '',
		created_at      TEXT NOT NULL,
		UNIQUE(pregnancy_id, seq)
	)`,
}
