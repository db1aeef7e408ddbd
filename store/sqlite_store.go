package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// SQLiteFile is the database file name used inside the data directory.
const SQLiteFile = "smarttask.db"

// SQLiteLineStore implements LineStore on a single SQLite database. Each named
// file is kept as ordered rows, so the stored lines are identical to what
// FlatFileStore would write.
type SQLiteLineStore struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteLineStore opens (or creates) <dir>/smarttask.db. Passing ":memory:"
// as dir opens a private in-memory database.
func NewSQLiteLineStore(dir string) (*SQLiteLineStore, error) {
	dbPath := ":memory:"
	if dir != ":memory:" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, ioErr("mkdir", dir, err)
		}
		dbPath = filepath.Join(dir, SQLiteFile)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, ioErr("open", dbPath, err)
	}
	// An in-memory database lives and dies with its connection.
	db.SetMaxOpenConns(1)

	s := &SQLiteLineStore{db: db, dbPath: dbPath}
	if err := s.initSchema(); err != nil {
		_ = db.Close()
		return nil, ioErr("open", dbPath, fmt.Errorf("init schema: %w", err))
	}
	return s, nil
}

func (s *SQLiteLineStore) initSchema() error {
	_, err := s.db.Exec(`
	CREATE TABLE IF NOT EXISTS lines (
		file TEXT NOT NULL,
		seq  INTEGER NOT NULL,
		body TEXT NOT NULL,
		PRIMARY KEY (file, seq)
	);`)
	return err
}

// Read returns the stored lines of the named file ordered by position.
func (s *SQLiteLineStore) Read(name string) ([]string, error) {
	rows, err := s.db.Query(`SELECT body FROM lines WHERE file = ? ORDER BY seq`, name)
	if err != nil {
		return nil, ioErr("read", name, err)
	}
	defer func() { _ = rows.Close() }()

	lines := []string{}
	for rows.Next() {
		var body string
		if err := rows.Scan(&body); err != nil {
			return nil, ioErr("read", name, err)
		}
		lines = append(lines, body)
	}
	if err := rows.Err(); err != nil {
		return nil, ioErr("read", name, err)
	}
	return lines, nil
}

// Write replaces all rows of the named file in one transaction.
func (s *SQLiteLineStore) Write(name string, lines []string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return ioErr("write", name, err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM lines WHERE file = ?`, name); err != nil {
		return ioErr("write", name, err)
	}
	stmt, err := tx.Prepare(`INSERT INTO lines (file, seq, body) VALUES (?, ?, ?)`)
	if err != nil {
		return ioErr("write", name, err)
	}
	defer func() { _ = stmt.Close() }()

	for i, line := range lines {
		if _, err := stmt.Exec(name, i, line); err != nil {
			return ioErr("write", name, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return ioErr("write", name, err)
	}
	return nil
}

// Backup exports every data file as a plain text file into destDir.
func (s *SQLiteLineStore) Backup(destDir string) error {
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return ioErr("backup", destDir, err)
	}
	for _, name := range DataFiles {
		lines, err := s.Read(name)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			continue
		}
		if err := os.WriteFile(filepath.Join(destDir, name), []byte(joinLines(lines)), 0o644); err != nil {
			return ioErr("backup", name, err)
		}
	}
	return nil
}

// Close closes the database.
func (s *SQLiteLineStore) Close() error {
	return s.db.Close()
}
