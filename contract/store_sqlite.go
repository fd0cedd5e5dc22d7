package contract

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// SQLiteState is a Store backed by a single-table SQLite database, for
// deployments of the local runner that need state to survive restarts.
type SQLiteState struct {
	db *sql.DB
}

func NewSQLiteState(path string) (*SQLiteState, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open state db: %w", err)
	}
	schema := `
	CREATE TABLE IF NOT EXISTS state (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate state db: %w", err)
	}
	return &SQLiteState{db: db}, nil
}

func (s *SQLiteState) Set(key, value string) {
	_, err := s.db.Exec(
		`INSERT INTO state (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		panic(fmt.Sprintf("state set %s: %v", key, err))
	}
}

func (s *SQLiteState) Get(key string) *string {
	var value string
	err := s.db.QueryRow(`SELECT value FROM state WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		panic(fmt.Sprintf("state get %s: %v", key, err))
	}
	return &value
}

func (s *SQLiteState) Delete(key string) {
	if _, err := s.db.Exec(`DELETE FROM state WHERE key = ?`, key); err != nil {
		panic(fmt.Sprintf("state delete %s: %v", key, err))
	}
}

func (s *SQLiteState) Close() error {
	return s.db.Close()
}
