package core

import (
	"time"
)

// ScoreCache memoizes score results for one call site
type ScoreCache interface {
	// Get retrieves a cached result by key
	Get(key string) (*ScoreResult, bool)

	// Set stores a result for the given TTL
	Set(key string, result *ScoreResult, ttl time.Duration)
}
