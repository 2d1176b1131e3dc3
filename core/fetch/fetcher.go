// Package fetch implements the Fetcher interface.
// It performs paced HTTP GET requests with a browser-like User-Agent and
// retries transient failures with exponential backoff.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/time/rate"

	"github.com/gaurav-prasanna/newspipe/core"
)

const (
	DefaultTimeout    = 15 * time.Second
	DefaultUserAgent  = "Mozilla/5.0 (Windows NT 10.0; Win64; x64)"
	DefaultMaxRetries = 2

	defaultInitialBackoff = 500 * time.Millisecond
	defaultMaxBackoff     = 5 * time.Second
)

// Options configures an HTTPFetcher. A zero Timeout, UserAgent or
// InitialBackoff takes the default.
type Options struct {
	Timeout    time.Duration
	UserAgent  string
	MaxRetries int
	// RateLimit is the maximum number of requests per second. Zero or less
	// disables pacing.
	RateLimit float64
	// InitialBackoff is the first retry delay.
	InitialBackoff time.Duration
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		Timeout:        DefaultTimeout,
		UserAgent:      DefaultUserAgent,
		MaxRetries:     DefaultMaxRetries,
		InitialBackoff: defaultInitialBackoff,
	}
}

// HTTPFetcher fetches web pages via HTTP.
type HTTPFetcher struct {
	client  *http.Client
	opts    Options
	limiter *rate.Limiter
}

// New creates an HTTPFetcher from opts.
func New(opts Options) *HTTPFetcher {
	def := DefaultOptions()
	if opts.Timeout <= 0 {
		opts.Timeout = def.Timeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = def.UserAgent
	}
	if opts.MaxRetries < 0 {
		opts.MaxRetries = 0
	}
	if opts.InitialBackoff <= 0 {
		opts.InitialBackoff = def.InitialBackoff
	}

	limiter := rate.NewLimiter(rate.Inf, 1)
	if opts.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), 1)
	}

	return &HTTPFetcher{
		client:  &http.Client{Timeout: opts.Timeout},
		opts:    opts,
		limiter: limiter,
	}
}

// Fetch retrieves the HTML content of the given URL. Every failure is
// returned as a *core.FetchError.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (*core.FetchResult, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = f.opts.InitialBackoff
	b.MaxInterval = defaultMaxBackoff
	bo := backoff.WithContext(backoff.WithMaxRetries(b, uint64(f.opts.MaxRetries)), ctx)

	var result *core.FetchResult
	err := backoff.Retry(func() error {
		res, err := f.fetchOnce(ctx, url)
		if err != nil {
			if retryable(ctx, err) {
				return err
			}
			return backoff.Permanent(err)
		}
		result = res
		return nil
	}, bo)
	if err != nil {
		var fe *core.FetchError
		if errors.As(err, &fe) {
			return nil, fe
		}
		return nil, &core.FetchError{URL: url, Err: err}
	}
	return result, nil
}

func (f *HTTPFetcher) fetchOnce(ctx context.Context, url string) (*core.FetchResult, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, &core.FetchError{URL: url, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &core.FetchError{URL: url, Err: fmt.Errorf("creating request: %w", err)}
	}
	req.Header.Set("User-Agent", f.opts.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &core.FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &core.FetchError{
			URL:        url,
			StatusCode: resp.StatusCode,
			Err:        errors.New(http.StatusText(resp.StatusCode)),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &core.FetchError{URL: url, StatusCode: resp.StatusCode, Err: fmt.Errorf("reading response body: %w", err)}
	}

	return &core.FetchResult{
		URL:        url,
		StatusCode: resp.StatusCode,
		HTML:       string(body),
	}, nil
}

// retryable reports whether a failed attempt may succeed if repeated:
// network errors, 408, 429 and 5xx.
func retryable(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return false
	}
	var fe *core.FetchError
	if !errors.As(err, &fe) {
		return false
	}
	switch {
	case fe.StatusCode == 0:
		return !errors.Is(fe.Err, context.Canceled)
	case fe.StatusCode == http.StatusRequestTimeout, fe.StatusCode == http.StatusTooManyRequests:
		return true
	default:
		return fe.StatusCode >= 500
	}
}
