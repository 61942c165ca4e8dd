package cache

import (
	"sync"
	"time"

	"github.com/mikey/deliverability-scorer/internal/core"
	"go.uber.org/zap"
)

type entry struct {
	result    *core.ScoreResult
	expiresAt time.Time
}

// MemoryCache is an in-memory implementation of the ScoreCache interface
type MemoryCache struct {
	entries     map[string]entry
	mu          sync.RWMutex
	logger      *zap.Logger
	cleanupFreq time.Duration
	now         func() time.Time
	stopCh      chan struct{}
	stopOnce    sync.Once
}

// NewMemoryCache creates a new in-memory cache and starts its cleanup task
func NewMemoryCache(logger *zap.Logger, cleanupFreq time.Duration) *MemoryCache {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cleanupFreq <= 0 {
		cleanupFreq = time.Minute
	}
	cache := &MemoryCache{
		entries:     make(map[string]entry),
		logger:      logger,
		cleanupFreq: cleanupFreq,
		now:         time.Now,
		stopCh:      make(chan struct{}),
	}

	go cache.startCleanupTask()

	return cache
}

// Get retrieves a cached result
func (c *MemoryCache) Get(key string) (*core.ScoreResult, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if !c.now().Before(e.expiresAt) {
		return nil, false
	}
	return e.result.Clone(), true
}

// Set stores a result until ttl elapses
func (c *MemoryCache) Set(key string, result *core.ScoreResult, ttl time.Duration) {
	if result == nil || ttl <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry{
		result:    result.Clone(),
		expiresAt: c.now().Add(ttl),
	}
}

// Len returns the number of stored entries, expired or not
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Cleanup removes expired entries
func (c *MemoryCache) Cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	expiredCount := 0
	for key, e := range c.entries {
		if !now.Before(e.expiresAt) {
			delete(c.entries, key)
			expiredCount++
		}
	}

	c.logger.Debug("Cleaned up expired cache entries", zap.Int("expired_count", expiredCount))
}

func (c *MemoryCache) startCleanupTask() {
	ticker := time.NewTicker(c.cleanupFreq)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.Cleanup()
		case <-c.stopCh:
			return
		}
	}
}

// Stop stops the background cleanup task
func (c *MemoryCache) Stop() {
	c.stopOnce.Do(func() { close(c.stopCh) })
}
