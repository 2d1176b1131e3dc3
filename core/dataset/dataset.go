// Package dataset persists canonical records. A run opens the dataset once,
// reads the existing rows to rebuild the ledger, then appends one row per
// successfully extracted article.
package dataset

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gaurav-prasanna/newspipe/core"
)

// Store is an append-only article dataset.
type Store interface {
	// Each calls fn with the id and link of every stored row, in file order.
	Each(ctx context.Context, fn func(id int, link string) error) error
	// Scan calls fn with every stored record, in file order.
	Scan(ctx context.Context, fn func(core.Article) error) error
	// Append durably adds one record.
	Append(ctx context.Context, art core.Article) error
	Close() error
}

// Open picks a backend from the file extension: .db, .sqlite and .sqlite3 use
// SQLite, anything else is CSV.
func Open(path string) (Store, error) {
	if path == "" {
		return nil, fmt.Errorf("dataset path is required")
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return OpenSQLite(path)
	default:
		return OpenCSV(path)
	}
}

// ensureDir creates the parent directory of path.
func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating dataset directory: %w", err)
	}
	return nil
}
