// Package cache memoizes cost-model evaluations in process memory.
package cache

import (
	"sync"
	"time"

	"davisbacon/internal/metrics"
	"davisbacon/internal/model"
)

// Evaluator is the wrapped computation.
type Evaluator interface {
	Evaluate(p model.ParameterSet) model.CalculationResult
}

type entry struct {
	result    model.CalculationResult
	expiresAt time.Time
}

// ResultCache wraps an Evaluator and remembers results per ParameterSet.
// ParameterSet is comparable, so it is the key as-is.
//
// Entries expire after ttl and a background loop sweeps them; call Close to
// stop it. A zero ttl disables expiry and the sweep loop.
type ResultCache struct {
	next Evaluator
	ttl  time.Duration
	max  int

	mu    sync.RWMutex
	store map[model.ParameterSet]entry

	stop     chan struct{}
	stopOnce sync.Once
	now      func() time.Time
}

// DefaultMaxEntries bounds memory when nothing has expired yet.
const DefaultMaxEntries = 50_000

// New returns a cache in front of next.
func New(next Evaluator, ttl time.Duration) *ResultCache {
	c := &ResultCache{
		next:  next,
		ttl:   ttl,
		max:   DefaultMaxEntries,
		store: make(map[model.ParameterSet]entry),
		stop:  make(chan struct{}),
		now:   time.Now,
	}
	if ttl > 0 {
		go c.cleanupLoop(cleanupInterval(ttl))
	}
	return c
}

func cleanupInterval(ttl time.Duration) time.Duration {
	if ttl < 5*time.Minute {
		return ttl
	}
	return 5 * time.Minute
}

// Evaluate returns the cached result for p, computing it on a miss.
func (c *ResultCache) Evaluate(p model.ParameterSet) model.CalculationResult {
	if res, ok := c.Get(p); ok {
		metrics.CacheLookups.WithLabelValues("hit").Inc()
		return res
	}
	metrics.CacheLookups.WithLabelValues("miss").Inc()
	res := c.next.Evaluate(p)
	c.Set(p, res)
	return res
}

// Get retrieves a cached result if present and not expired.
func (c *ResultCache) Get(p model.ParameterSet) (model.CalculationResult, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.store[p]
	if !ok {
		return model.CalculationResult{}, false
	}
	if c.ttl > 0 && c.now().After(e.expiresAt) {
		return model.CalculationResult{}, false
	}
	return e.result, true
}

// Set stores a result. When the cache is full it is cleared first.
func (c *ResultCache) Set(p model.ParameterSet, res model.CalculationResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.store) >= c.max {
		c.store = make(map[model.ParameterSet]entry)
	}
	c.store[p] = entry{result: res, expiresAt: c.now().Add(c.ttl)}
}

// Len is the number of stored entries, expired or not.
func (c *ResultCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.store)
}

// Clear removes all entries.
func (c *ResultCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store = make(map[model.ParameterSet]entry)
}

// Close stops the sweep loop. Safe to call more than once.
func (c *ResultCache) Close() {
	c.stopOnce.Do(func() { close(c.stop) })
}

func (c *ResultCache) cleanupLoop(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.removeExpired()
		case <-c.stop:
			return
		}
	}
}

func (c *ResultCache) removeExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for key, e := range c.store {
		if now.After(e.expiresAt) {
			delete(c.store, key)
		}
	}
}
