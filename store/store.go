// Package store keeps finished match results in a local SQLite database so
// batches of matches can be tallied after the fact.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// MatchResult is one finished match from the controlled team's side.
type MatchResult struct {
	MatchID      string
	Team         string
	Seed         int64
	GoalsFor     int
	GoalsAgainst int
	Steps        int
	Turnovers    int
	ModeChanges  int
	PhaseChanges int
	FinishedAt   time.Time
}

// Outcome is "W", "D" or "L".
func (r MatchResult) Outcome() string {
	switch {
	case r.GoalsFor > r.GoalsAgainst:
		return "W"
	case r.GoalsFor < r.GoalsAgainst:
		return "L"
	}
	return "D"
}

// Summary tallies every recorded match.
type Summary struct {
	Matches      int
	Wins         int
	Draws        int
	Losses       int
	GoalsFor     int
	GoalsAgainst int
}

type Store struct {
	db *sql.DB
}

// Open creates or opens the results database at path.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("empty db path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	// One writer; sessions finishing at the same time queue on the pool.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := initPragmas(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func initPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("pragma %q: %w", p, err)
		}
	}
	return nil
}

func initSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS matches (
			match_id TEXT PRIMARY KEY,
			team TEXT NOT NULL,
			seed INTEGER NOT NULL,
			goals_for INTEGER NOT NULL,
			goals_against INTEGER NOT NULL,
			steps INTEGER NOT NULL,
			turnovers INTEGER NOT NULL,
			mode_changes INTEGER NOT NULL,
			phase_changes INTEGER NOT NULL,
			finished_ns INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_matches_finished ON matches(finished_ns);`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}
	return nil
}

// RecordMatch stores r. Recording the same match id twice keeps the latest.
func (s *Store) RecordMatch(ctx context.Context, r MatchResult) error {
	if r.FinishedAt.IsZero() {
		r.FinishedAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx, `INSERT OR REPLACE INTO matches
		(match_id, team, seed, goals_for, goals_against, steps, turnovers, mode_changes, phase_changes, finished_ns)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.MatchID, r.Team, r.Seed, r.GoalsFor, r.GoalsAgainst, r.Steps,
		r.Turnovers, r.ModeChanges, r.PhaseChanges, r.FinishedAt.UnixNano())
	if err != nil {
		return fmt.Errorf("record match %s: %w", r.MatchID, err)
	}
	return nil
}

func (s *Store) Summary(ctx context.Context) (Summary, error) {
	var sum Summary
	row := s.db.QueryRowContext(ctx, `SELECT
		COUNT(*),
		COALESCE(SUM(goals_for > goals_against), 0),
		COALESCE(SUM(goals_for = goals_against), 0),
		COALESCE(SUM(goals_for < goals_against), 0),
		COALESCE(SUM(goals_for), 0),
		COALESCE(SUM(goals_against), 0)
		FROM matches`)
	if err := row.Scan(&sum.Matches, &sum.Wins, &sum.Draws, &sum.Losses, &sum.GoalsFor, &sum.GoalsAgainst); err != nil {
		return Summary{}, fmt.Errorf("summary: %w", err)
	}
	return sum, nil
}

// Recent returns up to limit matches, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]MatchResult, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT
		match_id, team, seed, goals_for, goals_against, steps, turnovers, mode_changes, phase_changes, finished_ns
		FROM matches ORDER BY finished_ns DESC, match_id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("recent matches: %w", err)
	}
	defer rows.Close()

	var out []MatchResult
	for rows.Next() {
		var r MatchResult
		var finished int64
		if err := rows.Scan(&r.MatchID, &r.Team, &r.Seed, &r.GoalsFor, &r.GoalsAgainst, &r.Steps,
			&r.Turnovers, &r.ModeChanges, &r.PhaseChanges, &finished); err != nil {
			return nil, fmt.Errorf("scan match: %w", err)
		}
		r.FinishedAt = time.Unix(0, finished).UTC()
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Store) Close() error { return s.db.Close() }
