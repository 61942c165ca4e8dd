package core

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"time"

	"go.uber.org/zap"
)

// ScoringService is the core service for deliverability scoring
type ScoringService struct {
	scorer       *Scorer
	dict         *Dictionary
	cache        ScoreCache
	logger       *zap.Logger
	cacheEnabled bool
	cacheTTL     time.Duration
}

// NewScoringService creates a new scoring service
func NewScoringService(
	dict *Dictionary,
	cache ScoreCache,
	logger *zap.Logger,
	cacheEnabled bool,
	cacheTTL time.Duration,
) *ScoringService {
	if dict == nil {
		dict = DefaultDictionary()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScoringService{
		scorer:       NewScorer(dict),
		dict:         dict,
		cache:        cache,
		logger:       logger,
		cacheEnabled: cacheEnabled && cache != nil,
		cacheTTL:     cacheTTL,
	}
}

// Dictionary returns the dictionary the service scores against
func (s *ScoringService) Dictionary() *Dictionary {
	return s.dict
}

// Score scores an email, consulting the cache first when enabled
func (s *ScoringService) Score(email *Email) *ScoreResult {
	if email == nil {
		email = &Email{}
	}

	var key string
	if s.cacheEnabled {
		key = cacheKey(email)
		if cached, ok := s.cache.Get(key); ok {
			s.logger.Debug("Cache hit for email", zap.String("key", key))
			return cached.Clone()
		}
	}

	start := time.Now()
	result := s.scorer.Score(email)

	s.logger.Debug("Scored email",
		zap.Int("subject_length", len(email.Subject)),
		zap.Int("body_length", len(email.Body)),
		zap.Int("matches", len(result.Matches)),
		zap.Int("spam_score", result.SpamScore),
		zap.Int("quality_score", result.QualityScore),
		zap.Int("warmth_score", result.WarmthScore),
		zap.Duration("duration", time.Since(start)))

	if s.cacheEnabled {
		s.cache.Set(key, result.Clone(), s.cacheTTL)
	}

	return result
}

// cacheKey digests the scoring inputs. Lengths are written before each
// field so that different splits of the same bytes never collide.
func cacheKey(email *Email) string {
	h := sha256.New()
	var buf [8]byte
	for _, field := range []string{email.Subject, email.Body} {
		binary.BigEndian.PutUint64(buf[:], uint64(len(field)))
		h.Write(buf[:])
		h.Write([]byte(field))
	}
	binary.BigEndian.PutUint64(buf[:], uint64(int64(email.PersonalizationLength)))
	h.Write(buf[:])
	return hex.EncodeToString(h.Sum(nil))
}
