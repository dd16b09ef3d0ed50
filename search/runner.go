package search

import (
	"context"
	"sync"

	"github.com/fwojciec/helpview"
)

// Event is delivered by a Runner for one search run.
// Exactly one of Progress, Results or Err is meaningful; Final marks the
// last event of a run that was not canceled.
type Event struct {
	Generation uint64
	Progress   helpview.SearchProgress
	Results    []helpview.LinkInfo
	Err        error
	Final      bool
}

// Runner runs at most one search at a time. Starting a search cancels the
// one in flight; the canceled run delivers no further events and its
// results are discarded.
type Runner struct {
	Searcher helpview.Searcher

	mu         sync.Mutex
	generation uint64
	cancel     context.CancelFunc
}

// NewRunner creates a new Runner that delegates to searcher.
func NewRunner(searcher helpview.Searcher) *Runner {
	return &Runner{Searcher: searcher}
}

// Start supersedes any running search and starts a new one in the
// background. Events are delivered on the returned channel in the order they
// are produced; the channel is closed when the run ends or is canceled.
func (r *Runner) Start(ctx context.Context, catalog *helpview.Catalog, query string, flags helpview.SearchFlags) (uint64, <-chan Event) {
	r.mu.Lock()
	if r.cancel != nil {
		r.cancel()
	}
	r.generation++
	gen := r.generation
	runCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.mu.Unlock()

	events := make(chan Event)
	go func() {
		defer close(events)
		defer r.finish(gen, cancel)

		send := func(ev Event) bool {
			if !r.Current(gen) {
				return false
			}
			ev.Generation = gen
			select {
			case events <- ev:
				return true
			case <-runCtx.Done():
				return false
			}
		}

		links, err := r.Searcher.Search(runCtx, catalog, query, flags, func(p helpview.SearchProgress) {
			if p.Done {
				return
			}
			send(Event{Progress: p})
		})
		if runCtx.Err() != nil {
			return
		}
		if err != nil {
			send(Event{Err: err, Final: true})
			return
		}
		total := catalog.Units(flags)
		send(Event{
			Progress: helpview.SearchProgress{Completed: total, Total: total, Done: true},
			Results:  links,
			Final:    true,
		})
	}()

	return gen, events
}

// Current reports whether gen is the most recently started run.
func (r *Runner) Current(gen uint64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.generation == gen
}

// Cancel stops the running search, if any. Its channel is closed without
// delivering results.
func (r *Runner) Cancel() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	// Invalidate events still in flight from the canceled run.
	r.generation++
}

// finish releases the run's context once it is no longer current.
func (r *Runner) finish(gen uint64, cancel context.CancelFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.generation == gen {
		r.cancel = nil
	}
	cancel()
}
