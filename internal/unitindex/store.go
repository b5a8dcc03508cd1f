package unitindex

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	_ "modernc.org/sqlite" // SQLite driver
)

// Store persists per-file analysis results between runs so a project
// check can skip files whose sources have not changed.
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id         TEXT PRIMARY KEY,
	started_at INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS files (
	path        TEXT PRIMARY KEY,
	mtime       INTEGER NOT NULL,
	diagnostics INTEGER NOT NULL,
	run_id      TEXT NOT NULL REFERENCES runs(id)
);
`

// Open creates or opens the index database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// BeginRun records a new analysis run and returns its id.
func (s *Store) BeginRun() (string, error) {
	id := uuid.NewString()
	_, err := s.db.Exec(`INSERT INTO runs (id, started_at) VALUES (?, ?)`, id, time.Now().Unix())
	if err != nil {
		return "", err
	}
	return id, nil
}

// RecordFile stores the outcome of analyzing one file.
func (s *Store) RecordFile(runID, path string, mtime int64, diagnostics int) error {
	_, err := s.db.Exec(`
		INSERT INTO files (path, mtime, diagnostics, run_id) VALUES (?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET mtime = excluded.mtime,
			diagnostics = excluded.diagnostics, run_id = excluded.run_id`,
		path, mtime, diagnostics, runID)
	return err
}

// UpToDate reports whether path was already analyzed cleanly at the
// given modification time.
func (s *Store) UpToDate(path string, mtime int64) (bool, error) {
	var storedMtime int64
	var diagnostics int
	err := s.db.QueryRow(
		`SELECT mtime, diagnostics FROM files WHERE path = ?`, path,
	).Scan(&storedMtime, &diagnostics)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return storedMtime == mtime && diagnostics == 0, nil
}
