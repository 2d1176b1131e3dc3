// Package ledger tracks which links are already in the dataset and which ID
// the next appended record gets. It is rebuilt from the dataset at the start
// of every run and never persisted on its own.
package ledger

import (
	"context"
	"fmt"
)

// Source enumerates the (id, link) pairs of the existing dataset.
type Source interface {
	Each(ctx context.Context, fn func(id int, link string) error) error
}

// Ledger is the in-memory view of what has been ingested.
type Ledger struct {
	seen   map[string]struct{}
	nextID int
}

// New returns an empty ledger: no links, next id 1.
func New() *Ledger {
	return &Ledger{seen: make(map[string]struct{}), nextID: 1}
}

// Load builds a ledger from every row in src. The next id is one past the
// largest id seen, so gaps left by hand-edited datasets are never refilled.
func Load(ctx context.Context, src Source) (*Ledger, error) {
	l := New()
	err := src.Each(ctx, func(id int, link string) error {
		if id < 1 {
			return fmt.Errorf("invalid id %d for %s", id, link)
		}
		l.seen[link] = struct{}{}
		if id >= l.nextID {
			l.nextID = id + 1
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("loading ledger: %w", err)
	}
	return l, nil
}

// ShouldSkip reports whether link is already in the dataset.
func (l *Ledger) ShouldSkip(link string) bool {
	_, ok := l.seen[link]
	return ok
}

// NextID returns the id the next record will get without consuming it.
func (l *Ledger) NextID() int { return l.nextID }

// Assign returns the next id and advances the counter. Call it only once the
// record is about to be written.
func (l *Ledger) Assign() int {
	id := l.nextID
	l.nextID++
	return id
}

// RecordWritten marks link as present in the dataset.
func (l *Ledger) RecordWritten(link string) {
	l.seen[link] = struct{}{}
}

// Len is the number of distinct links known.
func (l *Ledger) Len() int { return len(l.seen) }
