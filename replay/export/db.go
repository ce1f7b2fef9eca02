// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package export

import (
	"database/sql"

	"github.com/pkg/errors"

	// Registers the "sqlite" database/sql driver.
	_ "modernc.org/sqlite"
)

// SchemaVersion is the latest database schema version.
const SchemaVersion = 1

// Open opens the export database at path, creating it and applying any
// pending migrations.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, errors.Wrap(err, "opening database")
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// UserVersion returns the database's schema version.
func UserVersion(db *sql.DB) (int, error) {
	var v int
	if err := db.QueryRow("PRAGMA user_version;").Scan(&v); err != nil {
		return 0, errors.Wrap(err, "reading user_version")
	}
	return v, nil
}

func migrate(db *sql.DB) error {
	version, err := UserVersion(db)
	if err != nil {
		return err
	}

	if version < 1 {
		const schema = `
		CREATE TABLE IF NOT EXISTS runs (
		  id               TEXT PRIMARY KEY,
		  source           TEXT NOT NULL,
		  created_at       INTEGER NOT NULL,
		  reserved         INTEGER NOT NULL,
		  map_name         TEXT,
		  server_name      TEXT,
		  network_protocol INTEGER,
		  match_id         INTEGER,
		  game_winner      INTEGER,
		  playback_ticks   INTEGER,
		  last_tick        INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS messages (
		  run_id     TEXT NOT NULL REFERENCES runs(id),
		  seq        INTEGER NOT NULL,
		  phase      TEXT NOT NULL,
		  kind       TEXT NOT NULL,
		  tick       INTEGER NOT NULL,
		  byte_offset INTEGER NOT NULL,
		  size       INTEGER NOT NULL,
		  compressed INTEGER NOT NULL,
		  embedded   INTEGER NOT NULL,
		  PRIMARY KEY (run_id, seq)
		);

		CREATE INDEX IF NOT EXISTS idx_messages_phase
		ON messages(run_id, phase, seq);

		CREATE TABLE IF NOT EXISTS string_tables (
		  run_id      TEXT NOT NULL REFERENCES runs(id),
		  position    INTEGER NOT NULL,
		  name        TEXT NOT NULL,
		  max_entries INTEGER NOT NULL,
		  fixed_bits  INTEGER NOT NULL,
		  flags       INTEGER NOT NULL,
		  PRIMARY KEY (run_id, position)
		);

		CREATE TABLE IF NOT EXISTS string_table_rows (
		  run_id      TEXT NOT NULL,
		  position    INTEGER NOT NULL,
		  row_index   INTEGER NOT NULL,
		  row_key     TEXT NOT NULL,
		  value       BLOB,
		  specialized INTEGER NOT NULL,
		  PRIMARY KEY (run_id, position, row_index),
		  FOREIGN KEY (run_id, position) REFERENCES string_tables(run_id, position)
		);

		CREATE TABLE IF NOT EXISTS modifiers (
		  run_id         TEXT NOT NULL REFERENCES runs(id),
		  seq            INTEGER NOT NULL,
		  entry_type     TEXT NOT NULL,
		  parent         INTEGER NOT NULL,
		  idx            INTEGER NOT NULL,
		  serial_num     INTEGER NOT NULL,
		  modifier_class INTEGER NOT NULL,
		  ability_level  INTEGER NOT NULL,
		  stack_count    INTEGER NOT NULL,
		  creation_time  REAL NOT NULL,
		  duration       REAL NOT NULL,
		  caster         INTEGER NOT NULL,
		  ability        INTEGER NOT NULL,
		  PRIMARY KEY (run_id, seq)
		);

		CREATE TABLE IF NOT EXISTS users (
		  run_id      TEXT NOT NULL REFERENCES runs(id),
		  row_index   INTEGER NOT NULL,
		  user_id     INTEGER NOT NULL,
		  xuid        INTEGER NOT NULL,
		  name        TEXT NOT NULL,
		  guid        TEXT NOT NULL,
		  fake_player INTEGER NOT NULL,
		  is_hltv     INTEGER NOT NULL,
		  PRIMARY KEY (run_id, row_index)
		);

		CREATE TABLE IF NOT EXISTS specialization_failures (
		  run_id     TEXT NOT NULL REFERENCES runs(id),
		  table_name TEXT NOT NULL,
		  row_index  INTEGER NOT NULL,
		  error      TEXT NOT NULL
		);
		`
		if _, err := db.Exec(schema); err != nil {
			return errors.Wrap(err, "migration 1 failed")
		}
		if _, err := db.Exec("PRAGMA user_version = 1;"); err != nil {
			return errors.Wrap(err, "setting user_version")
		}
	}

	return nil
}
