package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/LavenderBridge/vocab/internal/models"
	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore keeps the vocabulary in a single SQLite table.
type SQLiteStore struct {
	db *sql.DB
}

// DefaultSQLiteFile returns <home>/.vocab/vocab.db.
func DefaultSQLiteFile() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".vocab", "vocab.db"), nil
}

// NewSQLiteStore opens (creating if needed) the database at path.
// Use ":memory:" for a throwaway database.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("cannot create data directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	// :memory: databases are per connection
	db.SetMaxOpenConns(1)

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

func initSchema(db *sql.DB) error {
	// position keeps insertion order; word is not unique because
	// duplicates are allowed.
	query := `
	CREATE TABLE IF NOT EXISTS entries (
		position INTEGER PRIMARY KEY,
		word TEXT NOT NULL,
		vi TEXT NOT NULL,
		en TEXT NOT NULL
	);
	`
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("create entries table: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Read() (models.Vocabulary, error) {
	rows, err := s.db.Query(`SELECT word, vi, en FROM entries ORDER BY position ASC`)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}
	defer rows.Close()

	v := models.Vocabulary{}
	for rows.Next() {
		var e models.Entry
		if err := rows.Scan(&e.Word, &e.VI, &e.EN); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		v = append(v, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(v) == 0 {
		return nil, ErrNoData
	}
	return v, nil
}

// Save replaces every row in one transaction.
func (s *SQLiteStore) Save(v models.Vocabulary) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM entries`); err != nil {
		return fmt.Errorf("clear entries: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO entries (position, word, vi, en) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, e := range v {
		if _, err := stmt.Exec(i+1, e.Word, e.VI, e.EN); err != nil {
			return fmt.Errorf("insert %q: %w", e.Word, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
