// Package cache provides a read-through TTL cache of analysis reports,
// keyed by ticker. Last write wins; entries expire lazily on read. Safe
// for concurrent use by the worker pool without engine-side locking.
package cache

import (
	"sync"
	"time"

	"github.com/RidwanSaja099/alpha-hunter-server/internal/model"
)

type entry struct {
	report    *model.StockReport
	expiresAt time.Time
}

// ReportCache caches per-ticker analysis reports with a fixed TTL.
type ReportCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]entry
	now     func() time.Time // test seam
}

// New creates a cache with the given TTL. A zero or negative TTL disables
// caching entirely.
func New(ttl time.Duration) *ReportCache {
	return &ReportCache{
		ttl:     ttl,
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// Get returns the cached report for a ticker if present and fresh.
func (c *ReportCache) Get(ticker string) (*model.StockReport, bool) {
	if c.ttl <= 0 {
		return nil, false
	}
	c.mu.RLock()
	e, ok := c.entries[ticker]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if c.now().After(e.expiresAt) {
		c.mu.Lock()
		// Re-check under the write lock; a fresher write may have landed.
		if cur, ok := c.entries[ticker]; ok && c.now().After(cur.expiresAt) {
			delete(c.entries, ticker)
		}
		c.mu.Unlock()
		return nil, false
	}
	return e.report, true
}

// Set stores a report, replacing any previous entry for the ticker.
func (c *ReportCache) Set(ticker string, report *model.StockReport) {
	if c.ttl <= 0 {
		return
	}
	c.mu.Lock()
	c.entries[ticker] = entry{report: report, expiresAt: c.now().Add(c.ttl)}
	c.mu.Unlock()
}

// Len reports the number of stored entries, expired or not.
func (c *ReportCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
