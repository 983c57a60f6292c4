// Package storage provides SQLite-based persistence for expedition
// summaries. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
//
// Only end-of-run summaries are stored. World state is never persisted;
// every expedition starts fresh from its seed.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// RunEntry is one recorded expedition summary.
type RunEntry struct {
	ID           int64
	GameID       string
	Tokens       int // Tokens earned over the run
	Scavenged    int
	Sold         int
	Repairs      int
	Logs         int // Data logs owned at quit time
	DurationSecs int
	CreatedAt    time.Time
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
		CREATE TABLE IF NOT EXISTS expeditions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			tokens INTEGER NOT NULL,
			scavenged INTEGER NOT NULL DEFAULT 0,
			sold INTEGER NOT NULL DEFAULT 0,
			repairs INTEGER NOT NULL DEFAULT 0,
			logs INTEGER NOT NULL DEFAULT 0,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_expeditions_game_id ON expeditions(game_id);
		CREATE INDEX IF NOT EXISTS idx_expeditions_top ON expeditions(game_id, tokens DESC);
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

// SaveRun records a finished expedition. Returns the inserted ID.
func (s *Store) SaveRun(e RunEntry) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO expeditions (game_id, tokens, scavenged, sold, repairs, logs, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.GameID, e.Tokens, e.Scavenged, e.Sold, e.Repairs, e.Logs, e.DurationSecs,
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

// scanRun reads one expedition row, tolerating both time.Time and string
// datetime values from the driver.
func scanRun(rows *sql.Rows) (RunEntry, error) {
	var e RunEntry
	var createdAt any
	if err := rows.Scan(&e.ID, &e.GameID, &e.Tokens, &e.Scavenged, &e.Sold,
		&e.Repairs, &e.Logs, &e.DurationSecs, &createdAt); err != nil {
		return e, fmt.Errorf("storage: cannot scan row: %w", err)
	}

	switch v := createdAt.(type) {
	case time.Time:
		e.CreatedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			e.CreatedAt = parsed
		}
	}
	return e, nil
}

const runColumns = "id, game_id, tokens, scavenged, sold, repairs, logs, duration_secs, created_at"

// RecentRuns retrieves the most recent expeditions for the given variant,
// newest first.
func (s *Store) RecentRuns(gameID string, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM expeditions
		 WHERE game_id = ?
		 ORDER BY created_at DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		e, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// TopRuns retrieves the best expeditions by tokens earned.
func (s *Store) TopRuns(gameID string, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM expeditions
		 WHERE game_id = ?
		 ORDER BY tokens DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		e, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// BestTokens returns the highest token total recorded for the variant.
// Returns 0 if no runs exist.
func (s *Store) BestTokens(gameID string) (int, error) {
	var tokens sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(tokens) FROM expeditions WHERE game_id = ?",
		gameID,
	).Scan(&tokens)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best run: %w", err)
	}

	if !tokens.Valid {
		return 0, nil
	}

	return int(tokens.Int64), nil
}

// ClearRuns deletes all recorded expeditions for the variant.
func (s *Store) ClearRuns(gameID string) error {
	_, err := s.db.Exec("DELETE FROM expeditions WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// VariantStats contains aggregated statistics for one variant.
type VariantStats struct {
	GameID     string
	RunCount   int
	BestTokens int
	AvgTokens  float64
	TotalTime  int64 // Seconds across all runs
	LastPlayed time.Time
}

// GetVariantStats retrieves aggregated statistics for a variant.
func (s *Store) GetVariantStats(gameID string) (*VariantStats, error) {
	stats := &VariantStats{GameID: gameID}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(tokens), 0), COALESCE(AVG(tokens), 0), COALESCE(SUM(duration_secs), 0)
		 FROM expeditions WHERE game_id = ?`,
		gameID,
	).Scan(&stats.RunCount, &stats.BestTokens, &stats.AvgTokens, &stats.TotalTime)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get variant stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM expeditions WHERE game_id = ? ORDER BY created_at DESC LIMIT 1`,
		gameID,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		switch v := lastPlayed.(type) {
		case time.Time:
			stats.LastPlayed = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				stats.LastPlayed = parsed
			}
		}
	}

	return stats, nil
}
