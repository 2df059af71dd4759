// Package solvelog records solve runs in a sqlite database, so repeated
// fills of the same structures can be compared over time.
package solvelog

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS solves (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	structure TEXT NOT NULL,
	words TEXT NOT NULL,
	solved INTEGER NOT NULL,
	nodes INTEGER NOT NULL,
	backtracks INTEGER NOT NULL,
	revisions INTEGER NOT NULL,
	duration_ms INTEGER NOT NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);`

// An Entry is one recorded solve run.
type Entry struct {
	Structure  string
	Words      string
	Solved     bool
	Nodes      int
	Backtracks int
	Revisions  int
	Duration   time.Duration
}

type Logger struct {
	db *sql.DB
}

// Open creates (if needed) and opens the solve log at path.
func Open(path string) (*Logger, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening solve log: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating solve log schema: %w", err)
	}
	return &Logger{db: db}, nil
}

func (l *Logger) Record(e Entry) error {
	_, err := l.db.Exec(
		`INSERT INTO solves (structure, words, solved, nodes, backtracks, revisions, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.Structure, e.Words, e.Solved, e.Nodes, e.Backtracks, e.Revisions,
		e.Duration.Milliseconds(),
	)
	return err
}

// Count returns how many runs have been recorded.
func (l *Logger) Count() (int, error) {
	var n int
	err := l.db.QueryRow(`SELECT COUNT(*) FROM solves`).Scan(&n)
	return n, err
}

func (l *Logger) Close() error {
	return l.db.Close()
}
