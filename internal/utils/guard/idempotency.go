package guard

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// IdempotencyCache collapses duplicate submissions of the same logical
// operation. Completed results are retained for a bounded window in an
// expirable LRU; a repeated key within the window returns the cached result
// instead of re-applying. A key observed while its first attempt is still in
// flight waits for that attempt and then replays its committed result.
//
// Failed attempts are not cached: mobile clients retry on timeout, and a retry
// after a rolled-back attempt must be allowed to run.
type IdempotencyCache[V any] struct {
	mu       sync.Mutex
	inflight map[string]*sync.Mutex
	done     *expirable.LRU[string, V]
}

// NewIdempotencyCache creates a cache holding up to size completed results,
// each retained for the given window.
func NewIdempotencyCache[V any](size int, retention time.Duration) *IdempotencyCache[V] {
	return &IdempotencyCache[V]{
		inflight: make(map[string]*sync.Mutex),
		done:     expirable.NewLRU[string, V](size, nil, retention),
	}
}

// Do executes fn under the idempotency key. An empty key disables caching.
// The returned bool reports whether the result was replayed from a previous
// committed attempt rather than produced by this call.
func (c *IdempotencyCache[V]) Do(key string, fn func() (V, error)) (V, bool, error) {
	if key == "" {
		v, err := fn()
		return v, false, err
	}

	for {
		c.mu.Lock()
		if v, ok := c.done.Get(key); ok {
			c.mu.Unlock()
			return v, true, nil
		}
		km, ok := c.inflight[key]
		if !ok {
			km = &sync.Mutex{}
			c.inflight[key] = km
		}
		c.mu.Unlock()

		km.Lock()

		// The attempt we waited on may have finished while we were queued.
		// If it committed, replay its result. If it failed, its inflight
		// entry is gone and the mutex we hold is stale; a later retry may
		// already be running on a fresh entry, so start over instead of
		// executing fn on the dead one.
		c.mu.Lock()
		if v, ok := c.done.Get(key); ok {
			c.mu.Unlock()
			km.Unlock()
			return v, true, nil
		}
		if c.inflight[key] != km {
			c.mu.Unlock()
			km.Unlock()
			continue
		}
		c.mu.Unlock()

		v, err := fn()

		c.mu.Lock()
		if err == nil {
			c.done.Add(key, v)
		}
		delete(c.inflight, key)
		c.mu.Unlock()
		km.Unlock()

		return v, false, err
	}
}
