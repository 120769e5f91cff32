package cache

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

const defaultJanitorInterval = time.Minute

type entry struct {
	value     any
	ttl       time.Duration
	expiresAt time.Time
}

// MemoryCache is a Cache held in process memory.
//
// Every hit pushes the entry's expiry ttl into the future (sliding expiration). Concurrent
// callers missing the same key share a single factory call. A background janitor evicts
// expired entries until Close is called.
type MemoryCache struct {
	mu      sync.Mutex
	entries map[string]*entry
	group   singleflight.Group

	now             func() time.Time
	janitorInterval time.Duration
	logger          *slog.Logger

	done      chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// Option configures a MemoryCache.
type Option func(*MemoryCache)

// WithClock replaces time.Now as the source of the current time.
func WithClock(now func() time.Time) Option {
	return func(c *MemoryCache) {
		c.now = now
	}
}

// WithJanitorInterval sets how often expired entries are evicted.
// Zero or less disables the janitor; expired entries are then only dropped on lookup.
func WithJanitorInterval(interval time.Duration) Option {
	return func(c *MemoryCache) {
		c.janitorInterval = interval
	}
}

// WithLogger sets the logger used to report evictions.
func WithLogger(logger *slog.Logger) Option {
	return func(c *MemoryCache) {
		c.logger = logger
	}
}

// NewMemoryCache creates a MemoryCache and starts its janitor.
func NewMemoryCache(opts ...Option) *MemoryCache {
	c := &MemoryCache{
		entries:         make(map[string]*entry),
		now:             time.Now,
		janitorInterval: defaultJanitorInterval,
		logger:          slog.New(slog.DiscardHandler),
		done:            make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.janitorInterval > 0 {
		c.wg.Add(1)
		go c.janitor()
	}
	return c
}

// GetOrSet returns the cached value for key or computes it with factory.
//
// The factory runs detached from the caller's cancellation so that one caller giving up
// does not fail the others waiting on the same key. A caller whose context ends stops
// waiting and gets the context error.
func (c *MemoryCache) GetOrSet(ctx context.Context, key string, factory Factory, ttl time.Duration) (any, error) {
	if value, ok := c.lookup(key); ok {
		return value, nil
	}
	if ttl <= 0 {
		return factory(ctx)
	}

	detached := context.WithoutCancel(ctx)
	ch := c.group.DoChan(key, func() (any, error) {
		if value, ok := c.lookup(key); ok {
			return value, nil
		}

		value, err := factory(detached)
		if err != nil {
			return nil, err
		}
		c.store(key, value, ttl)
		return value, nil
	})

	select {
	case res := <-ch:
		return res.Val, res.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Remove deletes key. An in-flight factory for key is forgotten, so the next caller
// starts a fresh computation.
func (c *MemoryCache) Remove(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()

	c.group.Forget(key)
}

// Len returns the number of stored entries, including expired ones not yet evicted.
func (c *MemoryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Close stops the janitor and waits for it to exit. Safe to call more than once.
func (c *MemoryCache) Close() {
	c.closeOnce.Do(func() {
		close(c.done)
	})
	c.wg.Wait()
}

func (c *MemoryCache) lookup(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}

	now := c.now()
	if !now.Before(e.expiresAt) {
		delete(c.entries, key)
		return nil, false
	}

	e.expiresAt = now.Add(e.ttl)
	return e.value, true
}

func (c *MemoryCache) store(key string, value any, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = &entry{
		value:     value,
		ttl:       ttl,
		expiresAt: c.now().Add(ttl),
	}
}

// evictExpired removes expired entries and returns how many were removed.
func (c *MemoryCache) evictExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	evicted := 0
	for key, e := range c.entries {
		if !now.Before(e.expiresAt) {
			delete(c.entries, key)
			evicted++
		}
	}
	return evicted
}

func (c *MemoryCache) janitor() {
	defer c.wg.Done()

	ticker := time.NewTicker(c.janitorInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.done:
			return
		case <-ticker.C:
			if evicted := c.evictExpired(); evicted > 0 {
				c.logger.Debug("evicted expired cache entries", slog.Int("count", evicted))
			}
		}
	}
}
