package config

import "time"

// ScoringConfig represents the configuration for the scorer
type ScoringConfig struct {
	RulesFile   string
	MaxBodySize int
}

// CacheConfig represents the configuration for score memoization
type CacheConfig struct {
	Enabled          bool
	TTL              time.Duration
	CleanupFrequency time.Duration
}

// OutputConfig represents the configuration for result reporting
type OutputConfig struct {
	Format string
	Color  bool
}

// GetScoring returns the scoring configuration
func (c *Config) GetScoring() ScoringConfig {
	return ScoringConfig{
		RulesFile:   c.GetString("scoring.rules_file"),
		MaxBodySize: c.GetInt("scoring.max_body_size"),
	}
}

// GetCache returns the cache configuration
func (c *Config) GetCache() (CacheConfig, error) {
	ttl, err := c.GetDuration("cache.ttl")
	if err != nil {
		return CacheConfig{}, err
	}
	cleanup, err := c.GetDuration("cache.cleanup_frequency")
	if err != nil {
		return CacheConfig{}, err
	}
	return CacheConfig{
		Enabled:          c.GetBool("cache.enabled"),
		TTL:              ttl,
		CleanupFrequency: cleanup,
	}, nil
}

// GetOutput returns the output configuration
func (c *Config) GetOutput() OutputConfig {
	return OutputConfig{
		Format: c.GetString("output.format"),
		Color:  c.GetBool("output.color"),
	}
}
