package extract

import (
	"fmt"
	"strings"

	"github.com/gaurav-prasanna/newspipe/core"
)

// Router selects the extractor for a URL by domain fragment. Fragments are
// checked in registration order and the first match wins.
type Router struct {
	sources []SourceExtractor
}

// NewRouter creates a Router over the given sources, in priority order.
func NewRouter(sources ...SourceExtractor) *Router {
	return &Router{sources: sources}
}

// DefaultRouter returns a Router over every supported source.
func DefaultRouter() *Router {
	return NewRouter(
		KathmanduPost{},
		Republica{},
		OnlineKhabar{},
		Setopati{},
	)
}

// Route returns the extractor for rawURL, or an error wrapping
// core.ErrUnsupportedSource.
func (r *Router) Route(rawURL string) (SourceExtractor, error) {
	for _, s := range r.sources {
		if strings.Contains(rawURL, s.Domain()) {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", core.ErrUnsupportedSource, rawURL)
}

// Sources returns the registered extractors in priority order.
func (r *Router) Sources() []SourceExtractor {
	out := make([]SourceExtractor, len(r.sources))
	copy(out, r.sources)
	return out
}
