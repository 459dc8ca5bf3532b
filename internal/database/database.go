package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const (
	// MemoryPath keeps the database inside the process
	MemoryPath = ":memory:"
	// FilePath selects DefaultPath
	FilePath = "file"
)

// DefaultPath returns the path used when favorites should survive restarts
func DefaultPath() string {
	return filepath.Join("data", "area-weather.db")
}

// Open opens the sqlite database at dbPath and ensures the schema exists.
// FilePath opens DefaultPath, creating its directory first.
func Open(dbPath string) (*sql.DB, error) {
	if dbPath == FilePath {
		dbPath = DefaultPath()
		if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Every connection to :memory: is a separate database
	if dbPath == MemoryPath {
		db.SetMaxOpenConns(1)
	}

	if err := EnsureSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// EnsureSchema ensures that the favorites table exists. Safe to call repeatedly.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS favorites (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			weather_id TEXT NOT NULL,
			area_name TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE UNIQUE INDEX IF NOT EXISTS idx_favorites_weather_id ON favorites(weather_id);
	`)
	if err != nil {
		return fmt.Errorf("creating favorites table: %w", err)
	}

	return nil
}
