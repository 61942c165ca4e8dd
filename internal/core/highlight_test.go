package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func joinSegments(segments []Segment) string {
	var b strings.Builder
	for _, s := range segments {
		b.WriteString(s.Text)
	}
	return b.String()
}

func TestSegmentsWithoutMatches(t *testing.T) {
	assert.Empty(t, Segments("", nil))

	segments := Segments("hello there", nil)
	require.Len(t, segments, 1)
	assert.Equal(t, Segment{Start: 0, End: 11, Text: "hello there"}, segments[0])
}

func TestSegmentsScenario(t *testing.T) {
	body := "This is a free offer, act now! Limited time."
	result := ScoreEmail("", body, 0)

	segments := Segments(body, result.FieldMatches(FieldBody))
	assert.Equal(t, body, joinSegments(segments))

	var flagged []string
	for _, s := range segments {
		if s.Flagged {
			flagged = append(flagged, s.Text)
			assert.Equal(t, SeverityHigh, s.Severity)
		}
	}
	assert.Equal(t, []string{"free", "act now", "Limited time"}, flagged)
}

func TestSegmentsMergeOverlaps(t *testing.T) {
	text := "a risk-free trial"
	segments := Segments(text, NewMatcher(nil).FindMatches(text, FieldBody))

	require.Len(t, segments, 3)
	assert.Equal(t, "a ", segments[0].Text)
	assert.False(t, segments[0].Flagged)

	merged := segments[1]
	assert.True(t, merged.Flagged)
	assert.Equal(t, "risk-free", merged.Text)
	assert.Equal(t, 2, merged.Start)
	assert.Equal(t, 11, merged.End)
	assert.Equal(t, SeverityHigh, merged.Severity)
	assert.Equal(t, []string{"risk-free", "free"}, []string{merged.Rules[0].Phrase, merged.Rules[1].Phrase})

	assert.Equal(t, " trial", segments[2].Text)
}

func TestSegmentsChainedOverlapsExtendUnion(t *testing.T) {
	low := PhraseRule{Phrase: "ab", Severity: SeverityLow}
	medium := PhraseRule{Phrase: "bc", Severity: SeverityMedium}
	text := "xabcdx"
	matches := []Match{
		{Rule: low, Start: 1, End: 3},
		{Rule: medium, Start: 2, End: 4},
		{Rule: low, Start: 3, End: 5},
	}

	segments := Segments(text, matches)
	require.Len(t, segments, 3)
	assert.Equal(t, "abcd", segments[1].Text)
	assert.Equal(t, SeverityMedium, segments[1].Severity)
	assert.Len(t, segments[1].Rules, 3)
}

func TestSegmentsAdjacentMatchesStaySeparate(t *testing.T) {
	rule := PhraseRule{Phrase: "ab", Severity: SeverityLow}
	segments := Segments("abab", []Match{
		{Rule: rule, Start: 2, End: 4},
		{Rule: rule, Start: 0, End: 2},
	})

	require.Len(t, segments, 2)
	assert.True(t, segments[0].Flagged)
	assert.True(t, segments[1].Flagged)
	assert.Equal(t, 0, segments[0].Start)
	assert.Equal(t, 2, segments[1].Start)
}

func TestSegmentsIgnoreInvalidMatches(t *testing.T) {
	rule := PhraseRule{Phrase: "x", Severity: SeverityHigh}
	segments := Segments("short", []Match{
		{Rule: rule, Start: 3, End: 3},
		{Rule: rule, Start: -1, End: 2},
		{Rule: rule, Start: 2, End: 50},
	})

	require.Len(t, segments, 1)
	assert.False(t, segments[0].Flagged)
	assert.Equal(t, "short", segments[0].Text)
}
