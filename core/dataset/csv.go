package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/gaurav-prasanna/newspipe/core"
)

// CSVStore appends records to a CSV file with the core.Columns header.
// Bodies contain blank lines; encoding/csv quotes them.
type CSVStore struct {
	path string
	file *os.File
	w    *csv.Writer
}

// OpenCSV opens path for appending. The header is written only when the file
// is missing or empty.
func OpenCSV(path string) (*CSVStore, error) {
	if err := ensureDir(path); err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("checking dataset %s: %w", path, err)
	}
	fresh := err != nil || info.Size() == 0

	f, err := os.OpenFile(path, os.O_RDWR|os.O_APPEND|os.O_CREATE, 0644)
	if err != nil {
		return nil, fmt.Errorf("opening dataset %s: %w", path, err)
	}
	s := &CSVStore{path: path, file: f, w: csv.NewWriter(f)}

	if fresh {
		if err := s.writeRow(core.Columns); err != nil {
			f.Close()
			return nil, fmt.Errorf("writing header: %w", err)
		}
		return s, nil
	}
	if err := s.terminateLastLine(info.Size()); err != nil {
		f.Close()
		return nil, err
	}
	return s, nil
}

// terminateLastLine adds a newline if a previous writer left the final row
// unterminated, so the next append starts on its own line.
func (s *CSVStore) terminateLastLine(size int64) error {
	last := make([]byte, 1)
	if _, err := s.file.ReadAt(last, size-1); err != nil {
		return fmt.Errorf("reading dataset %s: %w", s.path, err)
	}
	if last[0] == '\n' {
		return nil
	}
	if _, err := s.file.WriteString("\n"); err != nil {
		return fmt.Errorf("writing dataset %s: %w", s.path, err)
	}
	return nil
}

// writeRow writes and flushes one row. The underlying bufio.Writer keeps its
// first error forever, so a failed row discards the writer and the next row
// starts from a fresh one.
func (s *CSVStore) writeRow(row []string) error {
	if s.w == nil {
		s.w = csv.NewWriter(s.file)
	}
	if err := s.w.Write(row); err != nil {
		s.w = nil
		return err
	}
	s.w.Flush()
	if err := s.w.Error(); err != nil {
		s.w = nil
		return err
	}
	return nil
}

// Append writes art as one row and flushes it.
func (s *CSVStore) Append(_ context.Context, art core.Article) error {
	row := []string{
		strconv.Itoa(art.ID),
		art.Category,
		art.Link,
		art.Title,
		art.Body,
		art.Source,
		art.Date,
	}
	if err := s.writeRow(row); err != nil {
		return fmt.Errorf("appending %s: %w", art.Link, err)
	}
	return nil
}

// Scan reads the file from the start through a separate handle.
func (s *CSVStore) Scan(ctx context.Context, fn func(core.Article) error) error {
	f, err := os.Open(s.path)
	if err != nil {
		return fmt.Errorf("opening dataset %s: %w", s.path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	for line := 1; ; line++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading dataset %s: %w", s.path, err)
		}
		if line == 1 && len(row) > 0 && row[0] == core.Columns[0] {
			continue
		}
		art, err := rowToArticle(row)
		if err != nil {
			return fmt.Errorf("dataset %s record %d: %w", s.path, line, err)
		}
		if err := fn(art); err != nil {
			return err
		}
	}
}

// Each implements ledger.Source.
func (s *CSVStore) Each(ctx context.Context, fn func(id int, link string) error) error {
	return s.Scan(ctx, func(a core.Article) error { return fn(a.ID, a.Link) })
}

// Close flushes pending output and closes the file.
func (s *CSVStore) Close() error {
	if s.w != nil {
		s.w.Flush()
		if err := s.w.Error(); err != nil {
			s.file.Close()
			return err
		}
	}
	return s.file.Close()
}

func rowToArticle(row []string) (core.Article, error) {
	if len(row) < 3 {
		return core.Article{}, fmt.Errorf("expected %d columns, got %d", len(core.Columns), len(row))
	}
	id, err := strconv.Atoi(row[0])
	if err != nil {
		return core.Article{}, fmt.Errorf("invalid ID %q", row[0])
	}
	field := func(i int) string {
		if i < len(row) {
			return row[i]
		}
		return ""
	}
	return core.Article{
		ID:       id,
		Category: field(1),
		Link:     field(2),
		Title:    field(3),
		Body:     field(4),
		Source:   field(5),
		Date:     field(6),
	}, nil
}
