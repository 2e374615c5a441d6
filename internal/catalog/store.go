// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog records generated Markdown files in a SQLite database so a
// content pipeline can list and export what a conversion produced without
// walking the output directories.
package catalog

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/json2md/pkg/types"
)

// Store manages the catalog database.
type Store struct {
	db   *sql.DB
	path string
}

// Entry is one cataloged file.
type Entry struct {
	Path       string         `json:"path" yaml:"path"`
	Collection string         `json:"collection" yaml:"collection"`
	Source     string         `json:"source" yaml:"source"`
	Position   int            `json:"position" yaml:"position"`
	Checksum   string         `json:"checksum" yaml:"checksum"`
	Fields     map[string]any `json:"fields" yaml:"fields"`
}

// Open opens or creates the catalog database at path, creating parent
// directories and the schema as needed.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating catalog directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}

	s := &Store{db: db, path: path}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS entries (
			path TEXT PRIMARY KEY,
			collection TEXT NOT NULL,
			source TEXT NOT NULL,
			position INTEGER NOT NULL,
			fields TEXT NOT NULL,
			checksum TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_entries_collection ON entries(collection, position)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record upserts the catalog row for a written document. Rows are keyed by
// output path, so converting the same input again replaces rather than
// duplicates them.
func (s *Store) Record(ctx context.Context, doc types.Document) error {
	fields, err := json.Marshal(doc.Record)
	if err != nil {
		return fmt.Errorf("encoding fields for %s: %w", doc.Path, err)
	}
	sum := sha256.Sum256(doc.Content)

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO entries (path, collection, source, position, fields, checksum)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(path) DO UPDATE SET
			collection=excluded.collection, source=excluded.source,
			position=excluded.position, fields=excluded.fields,
			checksum=excluded.checksum`,
		filepath.ToSlash(doc.Path), doc.Collection, doc.Source, doc.Position,
		string(fields), hex.EncodeToString(sum[:]),
	)
	if err != nil {
		return fmt.Errorf("recording %s: %w", doc.Path, err)
	}
	return nil
}

// List returns cataloged entries ordered by collection and position. An empty
// collection lists every entry.
func (s *Store) List(ctx context.Context, collection string) ([]Entry, error) {
	query := `SELECT path, collection, source, position, fields, checksum FROM entries`
	var args []any
	if collection != "" {
		query += ` WHERE collection = ?`
		args = append(args, collection)
	}
	query += ` ORDER BY collection, position, path`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying catalog: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e      Entry
			fields string
		)
		if err := rows.Scan(&e.Path, &e.Collection, &e.Source, &e.Position, &fields, &e.Checksum); err != nil {
			return nil, fmt.Errorf("scanning catalog row: %w", err)
		}
		if err := json.Unmarshal([]byte(fields), &e.Fields); err != nil {
			return nil, fmt.Errorf("decoding fields for %s: %w", e.Path, err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
