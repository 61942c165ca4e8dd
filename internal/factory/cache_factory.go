package factory

import (
	"time"

	"github.com/mikey/deliverability-scorer/internal/adapters/cache"
	"github.com/mikey/deliverability-scorer/internal/config"
	"github.com/mikey/deliverability-scorer/internal/core"
	"go.uber.org/zap"
)

// CacheFactory creates score caches based on configuration
type CacheFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewCacheFactory creates a new cache factory
func NewCacheFactory(cfg *config.Config, logger *zap.Logger) *CacheFactory {
	return &CacheFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateScoreCache creates a memory cache, or returns nil when caching is
// disabled.
func (f *CacheFactory) CreateScoreCache() (core.ScoreCache, error) {
	cacheCfg, err := f.cfg.GetCache()
	if err != nil {
		return nil, err
	}
	if !cacheCfg.Enabled {
		return nil, nil
	}
	f.logger.Debug("Score cache enabled",
		zap.Duration("ttl", cacheCfg.TTL),
		zap.Duration("cleanup_frequency", cacheCfg.CleanupFrequency))
	return cache.NewMemoryCache(f.logger, cacheCfg.CleanupFrequency), nil
}

// GetCacheTTL returns the configured cache TTL
func (f *CacheFactory) GetCacheTTL() (time.Duration, error) {
	return f.cfg.GetDuration("cache.ttl")
}

// IsCacheEnabled returns whether caching is enabled
func (f *CacheFactory) IsCacheEnabled() bool {
	return f.cfg.GetBool("cache.enabled")
}
