package advisor

import (
	"context"
	"sync"

	"github.com/lzhou/pyrostock"
)

// Refresher serializes insight requests so that only the most recent one
// delivers. Starting a refresh cancels any request still in flight; a stale
// result that arrives after a newer refresh started is discarded.
type Refresher struct {
	// Request performs one insight request. Defaults to the advisor's own
	// Request; tests substitute a stub.
	Request func(ctx context.Context, items []pyrostock.Item) []Insight

	mu     sync.Mutex
	cancel context.CancelFunc
	seq    int
}

// NewRefresher wraps an advisor.
func NewRefresher(a *Advisor) *Refresher {
	return &Refresher{Request: a.Request}
}

// Refresh starts a new insight request and delivers the result to deliver,
// unless a newer Refresh supersedes it first. It returns immediately; deliver
// runs on the request's goroutine.
func (r *Refresher) Refresh(ctx context.Context, items []pyrostock.Item, deliver func([]Insight)) {
	r.mu.Lock()
	if r.cancel != nil {
		r.cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.seq++
	seq := r.seq
	r.mu.Unlock()

	go func() {
		defer cancel()
		insights := r.Request(ctx, items)

		r.mu.Lock()
		latest := r.seq == seq
		r.mu.Unlock()
		if latest {
			deliver(insights)
		}
	}()
}

// Stop cancels any request in flight and discards its result.
func (r *Refresher) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.seq++
}
