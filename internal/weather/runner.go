package weather

import (
	"context"
	"sync"
	"time"
)

// Runner hosts an Acquisition on its own event loop for callers without one
// (the HTTP server). Ticks, manual refreshes and task completions are all
// handled on the loop goroutine; readers use Snapshot.
type Runner struct {
	acq      *Acquisition
	interval time.Duration
	events   chan Event
	refresh  chan struct{}

	// OnChange, if set, is called on the loop goroutine after every state change.
	OnChange func(State)

	mu       sync.RWMutex
	snapshot State
}

// NewRunner creates a runner that restarts acq every interval. A zero
// interval disables periodic refresh.
func NewRunner(acq *Acquisition, interval time.Duration) *Runner {
	return &Runner{
		acq:      acq,
		interval: interval,
		events:   make(chan Event),
		refresh:  make(chan struct{}, 1),
		snapshot: acq.State(),
	}
}

// Run blocks until ctx is done.
func (r *Runner) Run(ctx context.Context) error {
	var tick <-chan time.Time
	if r.interval > 0 {
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	r.dispatch(ctx, r.acq.Start())
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-tick:
			r.dispatch(ctx, r.acq.Start())
		case <-r.refresh:
			r.dispatch(ctx, r.acq.Retry())
		case ev := <-r.events:
			task, ok := r.acq.Apply(ev)
			if ok {
				r.dispatch(ctx, task)
			}
		}
	}
}

// Refresh requests a manual retry. Requests made while one is already pending
// are coalesced.
func (r *Runner) Refresh() {
	select {
	case r.refresh <- struct{}{}:
	default:
	}
}

// Snapshot returns the latest published state.
func (r *Runner) Snapshot() State {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot
}

func (r *Runner) dispatch(ctx context.Context, task Task) {
	r.publish()
	if task == nil {
		return
	}
	go func() {
		ev := task(ctx)
		select {
		case r.events <- ev:
		case <-ctx.Done():
		}
	}()
}

func (r *Runner) publish() {
	s := r.acq.State()
	r.mu.Lock()
	r.snapshot = s
	r.mu.Unlock()
	if r.OnChange != nil {
		r.OnChange(s)
	}
}
