// Package storage provides SQLite-based persistence for the game save.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// Persistence is an optimization, not a correctness requirement: save and
// clear are best-effort and swallow failures (logging at most), and load
// treats anything unreadable as an absent save.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/pet-house/internal/game"
)

// SaveKey is the versioned key the current schema is stored under.
// Schema changes must bump this key, never reinterpret an old one.
const SaveKey = "pet-house-state-v2"

// legacySaveKeys are superseded keys that are proactively deleted so an
// incompatible old save can never be resurrected. v1 predates the empty
// default backgrounds for the Kitchen and Bedroom.
var legacySaveKeys = []string{"pet-house-state-v1"}

// Store manages the SQLite database holding the save document.
type Store struct {
	db     *sql.DB
	logger *log.Logger
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

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db, logger: log.Default()}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// SetLogger replaces the logger used for swallowed failures.
func (s *Store) SetLogger(logger *log.Logger) {
	if logger != nil {
		s.logger = logger
	}
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS saves (
			key TEXT PRIMARY KEY,
			data TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
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

// SaveState writes the full state under the current save key.
// Best-effort: serialization or storage failures are logged and
// swallowed, never surfaced to the player.
func (s *Store) SaveState(state game.GameState) {
	data, err := game.EncodeState(state)
	if err != nil {
		s.logger.Warn("could not serialize save", "error", err)
		return
	}

	_, err = s.db.Exec(
		`INSERT INTO saves (key, data, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = CURRENT_TIMESTAMP`,
		SaveKey, string(data),
	)
	if err != nil {
		s.logger.Warn("could not write save", "error", err)
	}
}

// LoadState reads the save under the current key. Returns ok=false for a
// missing key, corrupt JSON, or a payload missing required sections;
// missing rooms inside a valid payload are backfilled with defaults.
func (s *Store) LoadState() (game.GameState, bool) {
	var data string
	err := s.db.QueryRow("SELECT data FROM saves WHERE key = ?", SaveKey).Scan(&data)
	if err == sql.ErrNoRows {
		return game.GameState{}, false
	}
	if err != nil {
		s.logger.Warn("could not read save", "error", err)
		return game.GameState{}, false
	}

	state, ok := game.DecodeState([]byte(data))
	if !ok {
		s.logger.Warn("discarding unreadable save", "key", SaveKey)
		return game.GameState{}, false
	}
	return state, true
}

// ClearState removes the current save. Best-effort.
func (s *Store) ClearState() {
	if _, err := s.db.Exec("DELETE FROM saves WHERE key = ?", SaveKey); err != nil {
		s.logger.Warn("could not clear save", "error", err)
	}
}

// ClearLegacy deletes saves under superseded keys, whether or not the
// current key has data. Called once per session so stale-schema saves
// can never leak back in.
func (s *Store) ClearLegacy() {
	for _, key := range legacySaveKeys {
		if _, err := s.db.Exec("DELETE FROM saves WHERE key = ?", key); err != nil {
			s.logger.Warn("could not clear legacy save", "key", key, "error", err)
		}
	}
}
