// Package urls reads the line-oriented URL list that drives a run.
package urls

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrInvalidRange is returned for a Range that cannot select any line.
var ErrInvalidRange = errors.New("invalid line range")

// Range selects lines by 1-based, inclusive position in the file. Blank
// lines count toward positions. End == 0 means through the last line.
type Range struct {
	Start int
	End   int
}

// All selects every line.
var All = Range{Start: 1}

// Validate checks that r is well formed.
func (r Range) Validate() error {
	if r.Start < 1 {
		return fmt.Errorf("%w: start %d must be at least 1", ErrInvalidRange, r.Start)
	}
	if r.End != 0 && r.End < r.Start {
		return fmt.Errorf("%w: end %d is before start %d", ErrInvalidRange, r.End, r.Start)
	}
	return nil
}

func (r Range) contains(line int) bool {
	return line >= r.Start && (r.End == 0 || line <= r.End)
}

// Read returns the trimmed, non-blank lines of r within rng, in file order.
func Read(r io.Reader, rng Range) ([]string, error) {
	if err := rng.Validate(); err != nil {
		return nil, err
	}

	var out []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for line := 1; sc.Scan(); line++ {
		if rng.End != 0 && line > rng.End {
			break
		}
		if !rng.contains(line) {
			continue
		}
		u := NormalizeURL(sc.Text())
		if u == "" {
			continue
		}
		out = append(out, u)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading URL list: %w", err)
	}
	return out, nil
}

// ReadFile opens path and calls Read.
func ReadFile(path string, rng Range) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening URL list: %w", err)
	}
	defer f.Close()
	return Read(f, rng)
}

// NormalizeURL trims surrounding whitespace and drops the fragment, which
// never changes the fetched page. The rest of the link is kept byte for byte
// so it matches links already stored in the dataset.
func NormalizeURL(raw string) string {
	link, _, _ := strings.Cut(strings.TrimSpace(raw), "#")
	return link
}
