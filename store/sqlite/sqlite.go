/*
Package sqlite persists the analyzer's saved rule settings.

PURPOSE:
  The engine itself holds no state - every analysis is recomputed from
  the uploaded grid and the rules in force. What survives restarts is the
  operator's rule settings (late-mark threshold, early-leave threshold,
  minimum full-day hours, grace late days), stored as a single row so the
  next upload reuses the last configuration.

CONCURRENCY:
  Guarded with sync.RWMutex; settings writes are rare and reads cheap.

WAL MODE:
  SQLite is opened with WAL so settings reads never block a concurrent
  save.

USAGE:
  store, err := sqlite.New("./data/attendance.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

  settings, err := store.RuleSettings(ctx)

SEE ALSO:
  - factory/rules.go: converts the stored strings into a RuleConfig
  - api/handlers.go:  GET/PUT /api/rules
*/
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/warp/attendance-engine/factory"
)

// Store persists rule settings in SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	-- Single-row settings table; id is fixed at 1.
	CREATE TABLE IF NOT EXISTS rule_settings (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		late_mark_time TEXT NOT NULL,
		early_leave_time TEXT NOT NULL,
		min_full_day_hours TEXT NOT NULL,
		grace_late_days TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// RuleSettings returns the saved settings, or the factory defaults when
// nothing has been saved yet.
func (s *Store) RuleSettings(ctx context.Context) (factory.RuleSettings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var settings factory.RuleSettings
	err := s.db.QueryRowContext(ctx, `
		SELECT late_mark_time, early_leave_time, min_full_day_hours, grace_late_days
		FROM rule_settings WHERE id = 1`).
		Scan(&settings.LateMarkTime, &settings.EarlyLeaveTime,
			&settings.MinFullDayHours, &settings.GraceLateDays)
	if errors.Is(err, sql.ErrNoRows) {
		return factory.DefaultSettings(), nil
	}
	if err != nil {
		return factory.RuleSettings{}, fmt.Errorf("failed to load rule settings: %w", err)
	}
	return settings, nil
}

// SaveRuleSettings upserts the single settings row.
func (s *Store) SaveRuleSettings(ctx context.Context, settings factory.RuleSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO rule_settings (id, late_mark_time, early_leave_time, min_full_day_hours, grace_late_days, updated_at)
		VALUES (1, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			late_mark_time = excluded.late_mark_time,
			early_leave_time = excluded.early_leave_time,
			min_full_day_hours = excluded.min_full_day_hours,
			grace_late_days = excluded.grace_late_days,
			updated_at = excluded.updated_at`,
		settings.LateMarkTime, settings.EarlyLeaveTime,
		settings.MinFullDayHours, settings.GraceLateDays,
		time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to save rule settings: %w", err)
	}
	return nil
}
