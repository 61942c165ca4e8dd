package core

const (
	baseSpamScore      = 5
	spamPointsPerMatch = 15
	baseQualityScore   = 85
	qualityPenalty     = 10
)

// SpamScore grows 15 points per flagged phrase from a base of 5, capped at 100
func SpamScore(matchCount int) int {
	if matchCount < 0 {
		matchCount = 0
	}
	return min(100, baseSpamScore+spamPointsPerMatch*matchCount)
}

// QualityScore drops 10 points per flagged phrase from 85, floored at 0
func QualityScore(matchCount int) int {
	if matchCount < 0 {
		matchCount = 0
	}
	return max(0, baseQualityScore-qualityPenalty*matchCount)
}

// WarmthScore is a step function of the personalization text length
func WarmthScore(personalizationLength int) int {
	switch {
	case personalizationLength > 50:
		return 80
	case personalizationLength >= 20:
		return 60
	default:
		return 40
	}
}

// Scorer scores emails against a dictionary. It holds no mutable state and
// is safe for concurrent use.
type Scorer struct {
	matcher *Matcher
}

// NewScorer creates a scorer over the given dictionary. A nil dictionary
// means the default one.
func NewScorer(dict *Dictionary) *Scorer {
	return &Scorer{matcher: NewMatcher(dict)}
}

// Score matches the subject and body independently and computes all scores
func (s *Scorer) Score(email *Email) *ScoreResult {
	if email == nil {
		email = &Email{}
	}

	matches := s.matcher.FindMatches(email.Subject, FieldSubject)
	matches = append(matches, s.matcher.FindMatches(email.Body, FieldBody)...)

	return &ScoreResult{
		Matches:      matches,
		SpamScore:    SpamScore(len(matches)),
		QualityScore: QualityScore(len(matches)),
		WarmthScore:  WarmthScore(email.PersonalizationLength),
	}
}

// ScoreEmail scores a subject and body with the default dictionary
func ScoreEmail(subject, body string, personalizationLength int) ScoreResult {
	return *NewScorer(nil).Score(&Email{
		Subject:               subject,
		Body:                  body,
		PersonalizationLength: personalizationLength,
	})
}
