// Package core defines the canonical article record, the fetch interface and
// the per-URL outcome shared by every stage of the ingestion pipeline.
package core

import "context"

// Columns is the dataset header, in on-disk order.
var Columns = []string{"ID", "CATEGORY", "LINK", "TITLE", "BODY", "SOURCE", "DATE"}

// Article is the canonical record every source maps onto.
type Article struct {
	ID       int    `json:"id"`
	Category string `json:"category"`
	Link     string `json:"link"`
	Title    string `json:"title"`
	Body     string `json:"body"` // paragraphs separated by a blank line
	Source   string `json:"source"`
	Date     string `json:"date"` // YYYY-MM-DD or empty
}

// FetchResult holds the raw HTML and response metadata from a fetch.
type FetchResult struct {
	URL        string
	StatusCode int
	HTML       string
}

// Fetcher retrieves raw HTML from a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*FetchResult, error)
}

// Outcome is the terminal state of a single URL within a run.
type Outcome int

const (
	OutcomeAppended Outcome = iota
	OutcomeDuplicate
	OutcomeUnsupported
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAppended:
		return "appended"
	case OutcomeDuplicate:
		return "duplicate"
	case OutcomeUnsupported:
		return "unsupported"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}
