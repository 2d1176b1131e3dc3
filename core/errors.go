package core

import (
	"errors"
	"fmt"
)

// ErrUnsupportedSource is returned by the router for URLs that match no
// registered source. The batch runner skips these without counting a failure.
var ErrUnsupportedSource = errors.New("unsupported source")

// FetchError reports a network, timeout or HTTP status failure for one URL.
type FetchError struct {
	URL        string
	StatusCode int // 0 when no response was received
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetching %s: status %d: %v", e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ExtractionError reports a failure while parsing markup or locating fields.
type ExtractionError struct {
	URL    string
	Source string
	Err    error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extracting %s (%s): %v", e.URL, e.Source, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }
