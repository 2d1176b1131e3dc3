package dataset

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"github.com/gaurav-prasanna/newspipe/core"
)

const createArticles = `
	CREATE TABLE IF NOT EXISTS articles (
		id       INTEGER PRIMARY KEY,
		category TEXT NOT NULL DEFAULT '',
		link     TEXT NOT NULL UNIQUE,
		title    TEXT NOT NULL DEFAULT '',
		body     TEXT NOT NULL DEFAULT '',
		source   TEXT NOT NULL DEFAULT '',
		date     TEXT NOT NULL DEFAULT ''
	)`

// SQLiteStore keeps records in the articles table of a SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens or creates the database at path and ensures the table
// exists.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if err := ensureDir(path); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening SQLite dataset %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging SQLite dataset %s: %w", path, err)
	}
	// One writer, one run.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(createArticles); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating articles table: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Append inserts art. A link already present violates the UNIQUE constraint.
func (s *SQLiteStore) Append(ctx context.Context, art core.Article) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO articles (id, category, link, title, body, source, date) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		art.ID, art.Category, art.Link, art.Title, art.Body, art.Source, art.Date)
	if err != nil {
		return fmt.Errorf("appending %s: %w", art.Link, err)
	}
	return nil
}

func (s *SQLiteStore) Scan(ctx context.Context, fn func(core.Article) error) error {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, category, link, title, body, source, date FROM articles ORDER BY id`)
	if err != nil {
		return fmt.Errorf("querying articles: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var a core.Article
		if err := rows.Scan(&a.ID, &a.Category, &a.Link, &a.Title, &a.Body, &a.Source, &a.Date); err != nil {
			return fmt.Errorf("scanning article: %w", err)
		}
		if err := fn(a); err != nil {
			return err
		}
	}
	return rows.Err()
}

func (s *SQLiteStore) Each(ctx context.Context, fn func(id int, link string) error) error {
	return s.Scan(ctx, func(a core.Article) error { return fn(a.ID, a.Link) })
}

func (s *SQLiteStore) Close() error { return s.db.Close() }
