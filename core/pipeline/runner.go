// Package pipeline drives a batch run: one URL at a time through routing,
// fetching, extraction and the ledger, appending every article that makes it
// through. A failing URL is logged and skipped; it never stops the run.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gaurav-prasanna/newspipe/core"
	"github.com/gaurav-prasanna/newspipe/core/dataset"
	"github.com/gaurav-prasanna/newspipe/core/extract"
	"github.com/gaurav-prasanna/newspipe/core/ledger"
	"github.com/gaurav-prasanna/newspipe/logging"
)

const (
	DefaultSuccessPause = 2 * time.Second
	DefaultFailurePause = 5 * time.Second
)

// Throttle holds the pauses taken after each processed URL.
type Throttle struct {
	SuccessPause time.Duration
	FailurePause time.Duration
}

// DefaultThrottle returns the stock 2s/5s pauses.
func DefaultThrottle() Throttle {
	return Throttle{SuccessPause: DefaultSuccessPause, FailurePause: DefaultFailurePause}
}

// SleepFunc waits for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Summary counts the outcomes of one run.
type Summary struct {
	Appended    int
	Duplicates  int
	Unsupported int
	Failed      int
}

// Total is the number of URLs that reached a terminal outcome.
func (s Summary) Total() int {
	return s.Appended + s.Duplicates + s.Unsupported + s.Failed
}

func (s Summary) String() string {
	return fmt.Sprintf("%d appended, %d duplicate, %d unsupported, %d failed",
		s.Appended, s.Duplicates, s.Unsupported, s.Failed)
}

func (s *Summary) add(o core.Outcome) {
	switch o {
	case core.OutcomeAppended:
		s.Appended++
	case core.OutcomeDuplicate:
		s.Duplicates++
	case core.OutcomeUnsupported:
		s.Unsupported++
	case core.OutcomeFailed:
		s.Failed++
	}
}

// Runner processes URL lists against one dataset.
type Runner struct {
	fetcher  core.Fetcher
	store    dataset.Store
	router   *extract.Router
	throttle Throttle
	log      *logging.Logger
	sleep    SleepFunc
}

// Option customizes a Runner.
type Option func(*Runner)

func WithRouter(r *extract.Router) Option { return func(rn *Runner) { rn.router = r } }

func WithThrottle(t Throttle) Option { return func(rn *Runner) { rn.throttle = t } }

func WithLogger(l *logging.Logger) Option { return func(rn *Runner) { rn.log = l } }

// WithSleep replaces the pause implementation. Tests pass a no-op.
func WithSleep(s SleepFunc) Option { return func(rn *Runner) { rn.sleep = s } }

// New creates a Runner that fetches with f and appends to store.
func New(f core.Fetcher, store dataset.Store, opts ...Option) *Runner {
	r := &Runner{
		fetcher:  f,
		store:    store,
		router:   extract.DefaultRouter(),
		throttle: DefaultThrottle(),
		log:      logging.Discard(),
		sleep:    sleepContext,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run processes urls in order. The ledger is rebuilt from the store first;
// if that fails nothing is processed. A canceled ctx stops the run between
// URLs and is returned along with the partial summary.
func (r *Runner) Run(ctx context.Context, urls []string) (Summary, error) {
	var sum Summary

	l, err := ledger.Load(ctx, r.store)
	if err != nil {
		return sum, err
	}
	r.log.Info("run started", "urls", len(urls), "existing", l.Len(), "next_id", l.NextID())

	for _, u := range urls {
		if err := ctx.Err(); err != nil {
			return sum, err
		}

		outcome, id, err := r.process(ctx, l, u)
		sum.add(outcome)

		switch outcome {
		case core.OutcomeDuplicate:
			r.log.Debug("skipping duplicate", "link", u)
			continue
		case core.OutcomeUnsupported:
			r.log.Debug("skipping unsupported source", "link", u)
			continue
		case core.OutcomeAppended:
			r.log.Info("article saved", "id", id, "link", u)
			err = r.sleep(ctx, r.throttle.SuccessPause)
		case core.OutcomeFailed:
			r.log.Error("article failed", "link", u, "error", err)
			err = r.sleep(ctx, r.throttle.FailurePause)
		}
		if err != nil {
			return sum, err
		}
	}

	if sum.Failed > 0 {
		r.log.Warn("run finished with failures", "failed", sum.Failed, "appended", sum.Appended)
	} else {
		r.log.Info("run finished", "appended", sum.Appended, "duplicates", sum.Duplicates)
	}
	return sum, nil
}

// process takes one URL to a terminal outcome. The id is only consumed once
// the record is durably appended.
func (r *Runner) process(ctx context.Context, l *ledger.Ledger, u string) (core.Outcome, int, error) {
	if l.ShouldSkip(u) {
		return core.OutcomeDuplicate, 0, nil
	}

	src, err := r.router.Route(u)
	if errors.Is(err, core.ErrUnsupportedSource) {
		return core.OutcomeUnsupported, 0, nil
	}
	if err != nil {
		return core.OutcomeFailed, 0, err
	}

	res, err := r.fetcher.Fetch(ctx, u)
	if err != nil {
		return core.OutcomeFailed, 0, err
	}

	art, err := extract.ExtractArticle(src, res.HTML, u)
	if err != nil {
		return core.OutcomeFailed, 0, err
	}

	art.ID = l.NextID()
	if err := r.store.Append(ctx, art); err != nil {
		return core.OutcomeFailed, 0, err
	}
	l.Assign()
	l.RecordWritten(u)
	return core.OutcomeAppended, art.ID, nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
