package geo

import (
	"context"
	"sync"
	"time"
)

// Cached reuses the last successful fix while it is younger than the
// request's MaximumAge.
type Cached struct {
	Locator Locator
	Now     func() time.Time

	mu   sync.Mutex
	last *Position
}

// NewCached wraps l.
func NewCached(l Locator) *Cached {
	return &Cached{Locator: l, Now: time.Now}
}

// Locate implements Locator.
func (c *Cached) Locate(ctx context.Context, opts Options) (Position, error) {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}

	c.mu.Lock()
	if c.last != nil && opts.MaximumAge > 0 && now().Sub(c.last.Timestamp) <= opts.MaximumAge {
		pos := *c.last
		c.mu.Unlock()
		return pos, nil
	}
	c.mu.Unlock()

	pos, err := c.Locator.Locate(ctx, opts)
	if err != nil {
		return Position{}, err
	}
	if pos.Timestamp.IsZero() {
		pos.Timestamp = now()
	}

	c.mu.Lock()
	c.last = &pos
	c.mu.Unlock()
	return pos, nil
}

// Reset forgets the cached fix.
func (c *Cached) Reset() {
	c.mu.Lock()
	c.last = nil
	c.mu.Unlock()
}
