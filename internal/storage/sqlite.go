// Package storage keeps the results ledger of finished games.
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

// MemoryDSN opens a ledger that lives only as long as the process.
const MemoryDSN = ":memory:"

// Outcome values stored with each result.
const (
	OutcomeWon  = "won"
	OutcomeLost = "lost"
)

// Store manages the SQLite connection for the results ledger.
type Store struct {
	db *sql.DB
}

// ResultEntry is one finished game.
type ResultEntry struct {
	ID         int64
	SessionID  string
	Player     string
	Outcome    string // OutcomeWon or OutcomeLost
	Level      int
	LevelCount int
	Points     int
	CreatedAt  time.Time
}

// Stats contains aggregated statistics over all recorded games.
type Stats struct {
	GamesCount int
	Wins       int
	Losses     int
	HighScore  int
	AvgPoints  float64
	BestLevel  int
	LastPlayed time.Time
}

// Open creates or opens a ledger. An empty dsn or MemoryDSN keeps everything
// in memory; anything else is a file path whose parent directories are
// created as needed.
func Open(dsn string) (*Store, error) {
	memory := dsn == "" || dsn == MemoryDSN
	if memory {
		dsn = MemoryDSN
	} else {
		// Expand ~ to home directory
		if dsn[0] == '~' {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
			}
			dsn = filepath.Join(home, dsn[1:])
		}

		dir := filepath.Dir(dsn)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Every connection to :memory: is a separate database.
	if memory {
		db.SetMaxOpenConns(1)
		db.SetConnMaxLifetime(0)
		db.SetConnMaxIdleTime(0)
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
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL UNIQUE,
			player TEXT NOT NULL DEFAULT '',
			outcome TEXT NOT NULL,
			level INTEGER NOT NULL,
			level_count INTEGER NOT NULL,
			points INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_top ON results(points DESC);
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

// SaveResult records a finished game and returns its row ID.
// A session ID can only be recorded once.
func (s *Store) SaveResult(e ResultEntry) (int64, error) {
	if e.SessionID == "" {
		return 0, fmt.Errorf("storage: result has no session ID")
	}
	if e.Outcome != OutcomeWon && e.Outcome != OutcomeLost {
		return 0, fmt.Errorf("storage: unknown outcome %q", e.Outcome)
	}

	result, err := s.db.Exec(
		`INSERT INTO results (session_id, player, outcome, level, level_count, points)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.SessionID, e.Player, e.Outcome, e.Level, e.LevelCount, e.Points,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopResults retrieves the best N results, highest points first.
// Equal points rank the deeper level first, then the earlier game.
func (s *Store) TopResults(limit int) ([]ResultEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, session_id, player, outcome, level, level_count, points, created_at
		 FROM results
		 ORDER BY points DESC, level DESC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var entries []ResultEntry
	for rows.Next() {
		var e ResultEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Player, &e.Outcome,
			&e.Level, &e.LevelCount, &e.Points, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the most points ever banked.
// Returns 0 if no results exist.
func (s *Store) HighScore() (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(points) FROM results").Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// Stats aggregates all recorded games.
func (s *Store) Stats() (*Stats, error) {
	stats := &Stats{}
	var lastPlayed any

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
		        COALESCE(MAX(points), 0),
		        COALESCE(AVG(points), 0),
		        COALESCE(MAX(level), 0),
		        MAX(created_at)
		 FROM results`,
		OutcomeWon,
	).Scan(&stats.GamesCount, &stats.Wins, &stats.HighScore, &stats.AvgPoints, &stats.BestLevel, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	stats.Losses = stats.GamesCount - stats.Wins
	stats.LastPlayed = parseTime(lastPlayed)
	return stats, nil
}

// ClearResults deletes every recorded result.
func (s *Store) ClearResults() error {
	if _, err := s.db.Exec("DELETE FROM results"); err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
