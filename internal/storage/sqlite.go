// Package storage provides SQLite-based persistence for planning runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// PlanEntry records one planning run.
type PlanEntry struct {
	ID         int64
	BoardSize  int
	Strategy   string
	Requested  int
	Placed     int
	Solvable   bool
	DurationMS int64
	CreatedAt  time.Time
}

// PlanStats aggregates the recorded runs.
type PlanStats struct {
	Runs          int
	AvgPlaced     float64
	SolvableRuns  int
	AvgDurationMS float64
}

// Open creates or opens a SQLite database at the given path. It creates the
// parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS plans (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			board_size INTEGER NOT NULL,
			strategy TEXT NOT NULL,
			requested INTEGER NOT NULL,
			placed INTEGER NOT NULL,
			solvable INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_plans_created ON plans(created_at DESC);
		CREATE INDEX IF NOT EXISTS idx_plans_strategy ON plans(strategy);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SavePlan records a planning run and returns the inserted ID.
func (s *Store) SavePlan(e PlanEntry) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO plans (board_size, strategy, requested, placed, solvable, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.BoardSize, e.Strategy, e.Requested, e.Placed, e.Solvable, e.DurationMS,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save plan: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// RecentPlans retrieves the most recent planning runs, newest first.
func (s *Store) RecentPlans(limit int) ([]PlanEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, board_size, strategy, requested, placed, solvable, duration_ms, created_at
		 FROM plans
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query plans: %w", err)
	}
	defer rows.Close()

	var entries []PlanEntry
	for rows.Next() {
		var e PlanEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.BoardSize, &e.Strategy, &e.Requested, &e.Placed,
			&e.Solvable, &e.DurationMS, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			e.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.CreatedAt = parsed
			}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// Stats aggregates every recorded run.
func (s *Store) Stats() (PlanStats, error) {
	var stats PlanStats
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(AVG(placed), 0),
		        COALESCE(SUM(solvable), 0),
		        COALESCE(AVG(duration_ms), 0)
		 FROM plans`,
	).Scan(&stats.Runs, &stats.AvgPlaced, &stats.SolvableRuns, &stats.AvgDurationMS)
	if err != nil {
		return stats, fmt.Errorf("storage: cannot aggregate plans: %w", err)
	}
	return stats, nil
}

// ClearPlans deletes every recorded run.
func (s *Store) ClearPlans() error {
	if _, err := s.db.Exec("DELETE FROM plans"); err != nil {
		return fmt.Errorf("storage: cannot clear plans: %w", err)
	}
	return nil
}
