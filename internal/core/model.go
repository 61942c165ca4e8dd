package core

import (
	"fmt"
	"strings"
)

// Severity ranks how risky a flagged phrase is
type Severity int

const (
	SeverityLow Severity = iota + 1
	SeverityMedium
	SeverityHigh
)

// String returns the lowercase name of the severity
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	default:
		return "unknown"
	}
}

// ParseSeverity converts a severity name into a Severity
func ParseSeverity(name string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "low":
		return SeverityLow, nil
	case "medium":
		return SeverityMedium, nil
	case "high":
		return SeverityHigh, nil
	default:
		return 0, fmt.Errorf("unknown severity %q", name)
	}
}

// MarshalText implements encoding.TextMarshaler
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (s *Severity) UnmarshalText(text []byte) error {
	parsed, err := ParseSeverity(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// PhraseRule is a single entry of the flagged-phrase dictionary
type PhraseRule struct {
	Phrase     string   `json:"phrase"`
	Severity   Severity `json:"severity"`
	Rationale  string   `json:"rationale"`
	Suggestion string   `json:"suggestion"`
}

// Field names the part of an email a match was found in
type Field string

const (
	FieldSubject Field = "subject"
	FieldBody    Field = "body"
)

// Match is an occurrence of a PhraseRule in a field of an email.
// Start and End are byte offsets into the field text, End exclusive.
type Match struct {
	Rule  PhraseRule `json:"rule"`
	Field Field      `json:"field"`
	Start int        `json:"start"`
	End   int        `json:"end"`
}

// Email is the typed scoring input
type Email struct {
	From                  string
	To                    []string
	Subject               string
	Body                  string
	PersonalizationLength int
}

// ScoreResult represents the result of scoring an email
type ScoreResult struct {
	Matches      []Match `json:"matches"`
	SpamScore    int     `json:"spam_score"`
	QualityScore int     `json:"quality_score"`
	WarmthScore  int     `json:"warmth_score"`
}

// FieldMatches returns the matches found in the given field, in order
func (r *ScoreResult) FieldMatches(field Field) []Match {
	var out []Match
	for _, m := range r.Matches {
		if m.Field == field {
			out = append(out, m)
		}
	}
	return out
}

// Clone returns a copy that shares no mutable state with r
func (r *ScoreResult) Clone() *ScoreResult {
	c := *r
	if r.Matches != nil {
		c.Matches = make([]Match, len(r.Matches))
		copy(c.Matches, r.Matches)
	}
	return &c
}

// Segment is a contiguous slice of a field prepared for rendering
type Segment struct {
	Start    int
	End      int
	Text     string
	Flagged  bool
	Severity Severity
	Rules    []PhraseRule
}
