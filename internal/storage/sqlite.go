// Package storage provides SQLite-based persistence for finished runs.
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

// Store manages the SQLite database connection for run persistence.
type Store struct {
	db *sql.DB
}

// RunRecord represents a single finished run.
type RunRecord struct {
	ID        int64
	Seed      string // 0x-prefixed hex, preserved exactly for replay
	Score     float64
	Ticks     int64
	Collided  bool
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			seed TEXT NOT NULL,
			score REAL NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			collided INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_seed ON runs(seed);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(score DESC);
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

// SaveRun records a finished run.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(rec RunRecord) (int64, error) {
	collided := 0
	if rec.Collided {
		collided = 1
	}
	result, err := s.db.Exec(
		"INSERT INTO runs (seed, score, ticks, collided) VALUES (?, ?, ?, ?)",
		rec.Seed, rec.Score, rec.Ticks, collided,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopRuns retrieves the best N runs across all seeds.
// Results are ordered by score descending.
func (s *Store) TopRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	return s.queryRuns(
		`SELECT id, seed, score, ticks, collided, created_at
		 FROM runs
		 ORDER BY score DESC
		 LIMIT ?`,
		limit,
	)
}

// RunsForSeed retrieves the best N runs recorded for one seed.
func (s *Store) RunsForSeed(seed string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	return s.queryRuns(
		`SELECT id, seed, score, ticks, collided, created_at
		 FROM runs
		 WHERE seed = ?
		 ORDER BY score DESC
		 LIMIT ?`,
		seed, limit,
	)
}

func (s *Store) queryRuns(query string, args ...any) ([]RunRecord, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		var rec RunRecord
		var collided int
		var createdAt any
		if err := rows.Scan(&rec.ID, &rec.Seed, &rec.Score, &rec.Ticks, &collided, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		rec.Collided = collided != 0
		rec.CreatedAt = parseTimestamp(createdAt)
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// parseTimestamp handles both time.Time and string forms the driver returns.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// Seeds returns the distinct seeds that have recorded runs, sorted.
func (s *Store) Seeds() ([]string, error) {
	rows, err := s.db.Query("SELECT DISTINCT seed FROM runs ORDER BY seed")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query seeds: %w", err)
	}
	defer rows.Close()

	var seeds []string
	for rows.Next() {
		var seed string
		if err := rows.Scan(&seed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan seed: %w", err)
		}
		seeds = append(seeds, seed)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return seeds, nil
}

// BestScore returns the highest score recorded for the given seed.
// Returns ok=false if no runs exist for it.
func (s *Store) BestScore(seed string) (float64, bool, error) {
	var score sql.NullFloat64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM runs WHERE seed = ?",
		seed,
	).Scan(&score)

	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot query best score: %w", err)
	}

	if !score.Valid {
		return 0, false, nil
	}

	return score.Float64, true, nil
}

// ClearRuns deletes all runs for the given seed.
func (s *Store) ClearRuns(seed string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE seed = ?", seed)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// SeedStats contains aggregated statistics for one seed.
type SeedStats struct {
	Seed       string
	RunsCount  int
	BestScore  float64
	AvgScore   float64
	LastPlayed time.Time
}

// GetSeedStats retrieves aggregated statistics for a specific seed.
func (s *Store) GetSeedStats(seed string) (*SeedStats, error) {
	stats := &SeedStats{Seed: seed}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0)
		 FROM runs WHERE seed = ?`,
		seed,
	).Scan(&stats.RunsCount, &stats.BestScore, &stats.AvgScore)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get seed stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM runs WHERE seed = ? ORDER BY created_at DESC LIMIT 1`,
		seed,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTimestamp(lastPlayed)
	}

	return stats, nil
}
