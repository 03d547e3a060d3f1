package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/npillmayer/artboard/document"
	_ "modernc.org/sqlite"
)

const schema = `CREATE TABLE IF NOT EXISTS projects (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	body       TEXT NOT NULL,
	updated_at INTEGER NOT NULL
)`

var pragmas = []string{
	"PRAGMA journal_mode=WAL",
	"PRAGMA busy_timeout=10000",
	"PRAGMA synchronous=NORMAL",
}

// SQLiteStore stores projects as JSON records in an SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

var _ Store = (*SQLiteStore)(nil)

// OpenSQLite opens (or creates) the database at path. Use ":memory:" for a
// transient store.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if path == ":memory:" {
		// every connection would open its own empty database
		db.SetMaxOpenConns(1)
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("setting pragma: %w", err)
		}
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Close closes the database.
func (sst *SQLiteStore) Close() error {
	return sst.db.Close()
}

// Load reads and validates the project with the given id.
func (sst *SQLiteStore) Load(ctx context.Context, id string) (*document.Project, error) {
	var body string
	err := sst.db.QueryRowContext(ctx, `SELECT body FROM projects WHERE id = ?`, id).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	} else if err != nil {
		return nil, fmt.Errorf("loading project %s: %w", id, err)
	}
	return document.UnmarshalProject([]byte(body))
}

// Save inserts p or replaces its stored version.
func (sst *SQLiteStore) Save(ctx context.Context, p *document.Project) error {
	if p == nil || p.ID == "" {
		return errors.New("cannot save project without id")
	}
	body, err := document.MarshalProject(p)
	if err != nil {
		return fmt.Errorf("encoding project %s: %w", p.ID, err)
	}
	_, err = sst.db.ExecContext(ctx, `INSERT INTO projects (id, name, body, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name, body = excluded.body, updated_at = excluded.updated_at`,
		p.ID, p.Name, string(body), time.Now().UnixMilli())
	if err != nil {
		return fmt.Errorf("saving project %s: %w", p.ID, err)
	}
	tracer().Debugf("saved project %s (%d bytes)", p.ID, len(body))
	return nil
}

// List returns the ids of all stored projects, sorted.
func (sst *SQLiteStore) List(ctx context.Context) ([]string, error) {
	rows, err := sst.db.QueryContext(ctx, `SELECT id FROM projects ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("listing projects: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
