package store

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
)

// ErrNewerSchema is returned by Open for a database whose generation is
// ahead of this binary. Downgrades are not supported.
var ErrNewerSchema = errors.New("database schema is newer than this binary")

// step is one additive schema generation.
type step struct {
	gen   int
	name  string
	apply func(tx *sql.Tx) error
}

// steps run in order. Append new generations; never edit a released one.
var steps = []step{
	{1, "playsheet and review tables", migrateToV1},
	{2, "game context", migrateToV2},
	{3, "play side and defensive adjustments", migrateToV3},
}

var currentGeneration = steps[len(steps)-1].gen

// migrate applies every step above the stored generation, up to target.
func migrate(db *sql.DB, target int, logger *slog.Logger) error {
	version, err := generation(db)
	if err != nil {
		return &Error{Code: CodeStorage, Op: "migrate", Err: err}
	}
	if version > currentGeneration {
		return &Error{
			Code: CodeStorage,
			Op:   "migrate",
			Err:  fmt.Errorf("%w: generation %d, binary supports %d", ErrNewerSchema, version, currentGeneration),
		}
	}

	for _, st := range steps {
		if st.gen <= version || st.gen > target {
			continue
		}
		if err := applyStep(db, st); err != nil {
			return &Error{Code: CodeStorage, Op: "migrate", Err: err}
		}
		logger.Debug("schema migrated", "generation", st.gen, "step", st.name)
	}
	return nil
}

func generation(db *sql.DB) (int, error) {
	var version int
	if err := db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return 0, fmt.Errorf("get user_version: %w", err)
	}
	return version, nil
}

// applyStep runs one step and records its generation in the same
// transaction, so a failed step leaves the previous generation intact.
func applyStep(db *sql.DB, st step) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("migrate to v%d: begin: %w", st.gen, err)
	}
	defer tx.Rollback()

	if err := st.apply(tx); err != nil {
		return fmt.Errorf("migrate to v%d: %w", st.gen, err)
	}
	if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", st.gen)); err != nil {
		return fmt.Errorf("migrate to v%d: set user_version: %w", st.gen, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("migrate to v%d: commit: %w", st.gen, err)
	}
	return nil
}

func execAll(tx *sql.Tx, stmts ...string) error {
	for _, stmt := range stmts {
		if _, err := tx.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

func migrateToV1(tx *sql.Tx) error {
	return execAll(tx,
		`CREATE TABLE IF NOT EXISTS my_plays (
			id                    INTEGER PRIMARY KEY AUTOINCREMENT,
			play_id               TEXT NOT NULL,
			playbook              TEXT NOT NULL DEFAULT '',
			formation_group       TEXT NOT NULL DEFAULT '',
			formation             TEXT NOT NULL DEFAULT '',
			play_name             TEXT NOT NULL DEFAULT '',
			play_type             TEXT NOT NULL DEFAULT '',
			tags                  TEXT NOT NULL DEFAULT '[]',
			notes                 TEXT NOT NULL DEFAULT '',
			rating                INTEGER,
			added_at              TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_my_plays_play_id ON my_plays(play_id)`,
		`CREATE INDEX IF NOT EXISTS idx_my_plays_playbook ON my_plays(playbook)`,
		`CREATE INDEX IF NOT EXISTS idx_my_plays_formation_group ON my_plays(formation_group)`,
		`CREATE INDEX IF NOT EXISTS idx_my_plays_formation ON my_plays(formation)`,
		`CREATE TABLE IF NOT EXISTS game_sessions (
			id       INTEGER PRIMARY KEY AUTOINCREMENT,
			opponent TEXT NOT NULL DEFAULT '',
			date     TEXT NOT NULL,
			result   TEXT NOT NULL DEFAULT '',
			notes    TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS play_performance (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id    INTEGER NOT NULL REFERENCES game_sessions(id) ON DELETE CASCADE,
			play_id       TEXT NOT NULL,
			call_count    INTEGER NOT NULL DEFAULT 0,
			success_count INTEGER NOT NULL DEFAULT 0,
			yards_gained  INTEGER NOT NULL DEFAULT 0,
			notes         TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE INDEX IF NOT EXISTS idx_play_performance_session ON play_performance(session_id)`,
		`CREATE INDEX IF NOT EXISTS idx_play_performance_play_id ON play_performance(play_id)`,
	)
}

func migrateToV2(tx *sql.Tx) error {
	return execAll(tx,
		`CREATE TABLE IF NOT EXISTS game_context (
			id         TEXT PRIMARY KEY,
			down       INTEGER NOT NULL,
			distance   INTEGER NOT NULL,
			field_side TEXT NOT NULL,
			yard_line  INTEGER NOT NULL
		)`,
	)
}

// migrateToV3 adds the side and defensive_adjustments columns. Existing rows
// are not back-filled and stay invisible to side queries.
func migrateToV3(tx *sql.Tx) error {
	return execAll(tx,
		`ALTER TABLE my_plays ADD COLUMN side TEXT`,
		`ALTER TABLE my_plays ADD COLUMN defensive_adjustments TEXT`,
		`CREATE INDEX IF NOT EXISTS idx_my_plays_side ON my_plays(side)`,
	)
}
