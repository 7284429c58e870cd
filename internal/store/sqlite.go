package store

import (
	"database/sql"
	_ "embed"
	"encoding/json"
	"fmt"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/leandrodevsilva/Gestoque/pkg/types"
)

//go:embed schema.sql
var schemaSQL string

// sqliteStore persists each collection as one JSON document row in the
// collections table of gestoque.db.
type sqliteStore struct {
	mu     sync.RWMutex
	db     *sql.DB
	closed bool
}

func newSQLiteStore(dir string) (*sqliteStore, error) {
	dbPath := filepath.Join(dir, "gestoque.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", dbPath, err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}
	return &sqliteStore{db: db}, nil
}

func (s *sqliteStore) Get(key string, out any) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return types.ErrStoreClosed
	}

	var value string
	err := s.db.QueryRow(
		"SELECT value FROM collections WHERE key = ?", key,
	).Scan(&value)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		return fmt.Errorf("querying %s: %w", key, err)
	}
	// Corrupt content falls back to the default silently.
	decodeLenient([]byte(value), out)
	return nil
}

func (s *sqliteStore) Set(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return types.ErrStoreClosed
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", key, err)
	}
	_, err = s.db.Exec(
		"INSERT INTO collections (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, string(data),
	)
	if err != nil {
		return fmt.Errorf("persisting %s: %w", key, err)
	}
	return nil
}

func (s *sqliteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}
