// Package storage provides SQLite-based persistence for sandbox session
// history. Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for session history.
type Store struct {
	db *sql.DB
}

// Session is one finished sandbox session.
type Session struct {
	ID        int64
	Preset    string // world preset name, or "custom" for config-defined layers
	Seed      int64
	Width     int
	Height    int
	Ticks     uint64
	Deaths    int
	Duration  int    // Duration in seconds
	Origin    string // "local" or "ssh"
	CreatedAt time.Time
}

// PresetStats contains aggregated statistics for one world preset.
type PresetStats struct {
	Preset     string
	Sessions   int
	TotalTicks int64
	Deaths     int
	LastPlayed time.Time
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
		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			preset TEXT NOT NULL,
			seed INTEGER NOT NULL,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			deaths INTEGER NOT NULL DEFAULT 0,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			origin TEXT NOT NULL DEFAULT 'local',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_preset ON sessions(preset);
		CREATE INDEX IF NOT EXISTS idx_sessions_created ON sessions(created_at DESC);
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

// SaveSession records a finished session.
// Returns the ID of the inserted record.
func (s *Store) SaveSession(sess Session) (int64, error) {
	if sess.Origin == "" {
		sess.Origin = "local"
	}
	result, err := s.db.Exec(
		`INSERT INTO sessions (preset, seed, width, height, ticks, deaths, duration_secs, origin)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		sess.Preset, sess.Seed, sess.Width, sess.Height,
		int64(sess.Ticks), sess.Deaths, sess.Duration, sess.Origin,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentSessions retrieves the most recent sessions, newest first.
// An empty preset matches every preset.
func (s *Store) RecentSessions(preset string, limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, preset, seed, width, height, ticks, deaths, duration_secs, origin, created_at
		 FROM sessions
		 WHERE ? = '' OR preset = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		preset, preset, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var sess Session
		var ticks int64
		var createdAt any
		if err := rows.Scan(
			&sess.ID,
			&sess.Preset,
			&sess.Seed,
			&sess.Width,
			&sess.Height,
			&ticks,
			&sess.Deaths,
			&sess.Duration,
			&sess.Origin,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		sess.Ticks = uint64(ticks)
		sess.CreatedAt = parseTime(createdAt)
		sessions = append(sessions, sess)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return sessions, nil
}

// SessionByID retrieves a session by its ID. Returns nil if it does not exist.
func (s *Store) SessionByID(id int64) (*Session, error) {
	var sess Session
	var ticks int64
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, preset, seed, width, height, ticks, deaths, duration_secs, origin, created_at
		 FROM sessions
		 WHERE id = ?`,
		id,
	).Scan(
		&sess.ID,
		&sess.Preset,
		&sess.Seed,
		&sess.Width,
		&sess.Height,
		&ticks,
		&sess.Deaths,
		&sess.Duration,
		&sess.Origin,
		&createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query session: %w", err)
	}

	sess.Ticks = uint64(ticks)
	sess.CreatedAt = parseTime(createdAt)
	return &sess, nil
}

// PresetStats retrieves aggregated statistics for every preset that has
// been played, keyed by preset name.
func (s *Store) PresetStats() (map[string]*PresetStats, error) {
	rows, err := s.db.Query(
		`SELECT preset, COUNT(*), SUM(ticks), SUM(deaths), MAX(created_at)
		 FROM sessions
		 GROUP BY preset`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get preset stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*PresetStats)
	for rows.Next() {
		var ps PresetStats
		var lastPlayed any
		if err := rows.Scan(&ps.Preset, &ps.Sessions, &ps.TotalTicks, &ps.Deaths, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		ps.LastPlayed = parseTime(lastPlayed)
		stats[ps.Preset] = &ps
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// ClearSessions deletes the history of one preset, or all history when
// preset is empty.
func (s *Store) ClearSessions(preset string) error {
	_, err := s.db.Exec("DELETE FROM sessions WHERE ? = '' OR preset = ?", preset, preset)
	if err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetime values.
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
