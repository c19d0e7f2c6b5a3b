package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/studiowebux/markpad/internal/migrations"
)

// Fixed keys in the kv table. The draft and the theme preference have
// independent lifecycles but share the store.
const (
	keyDocument = "document"
	keyTheme    = "theme"
)

type Manager struct {
	db *sql.DB
}

func NewManager(dbPath string) (*Manager, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open store database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to store database: %w", err)
	}

	// Run database migrations
	if err := migrations.Run(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Manager{db: db}, nil
}

// SaveDocument writes the draft snapshot under its fixed key.
func (m *Manager) SaveDocument(doc string) error {
	return m.set(keyDocument, doc)
}

// LoadDocument reads the draft snapshot. The second return is false when no
// snapshot has been written yet.
func (m *Manager) LoadDocument() (string, bool, error) {
	return m.get(keyDocument)
}

// SaveTheme writes the theme preference under its fixed key.
func (m *Manager) SaveTheme(theme string) error {
	return m.set(keyTheme, theme)
}

// LoadTheme reads the theme preference. The second return is false when no
// preference has been written yet.
func (m *Manager) LoadTheme() (string, bool, error) {
	return m.get(keyTheme)
}

func (m *Manager) set(key, value string) error {
	query := `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`

	// Format timestamp for SQLite in local time
	timestampStr := time.Now().Local().Format("2006-01-02 15:04:05")

	_, err := m.db.Exec(query, key, value, timestampStr)
	if err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}

	return nil
}

func (m *Manager) get(key string) (string, bool, error) {
	var value string
	err := m.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to load %s: %w", key, err)
	}
	return value, true, nil
}

func (m *Manager) Close() error {
	if m.db != nil {
		return m.db.Close()
	}
	return nil
}
