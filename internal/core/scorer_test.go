package core

import (
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreEmailCleanText(t *testing.T) {
	result := ScoreEmail("Quick question", "I enjoyed your talk on distributed caching.", 0)

	assert.Empty(t, result.Matches)
	assert.Equal(t, 5, result.SpamScore)
	assert.Equal(t, 85, result.QualityScore)
	assert.Equal(t, 40, result.WarmthScore)
}

func TestScoreEmailEmptyInput(t *testing.T) {
	result := ScoreEmail("", "", 0)

	assert.NotNil(t, result.Matches)
	assert.Empty(t, result.Matches)
	assert.Equal(t, 5, result.SpamScore)
	assert.Equal(t, 85, result.QualityScore)
	assert.Equal(t, 40, result.WarmthScore)
}

func TestScoreEmailScenario(t *testing.T) {
	result := ScoreEmail("Quick question", "This is a free offer, act now! Limited time.", 0)

	require.Len(t, result.Matches, 3)
	assert.Equal(t, []string{"free", "act now", "limited time"}, phrases(result.Matches))

	want := [][2]int{{10, 14}, {22, 29}, {31, 43}}
	for i, m := range result.Matches {
		assert.Equal(t, FieldBody, m.Field)
		assert.Equal(t, want[i], [2]int{m.Start, m.End})
	}

	assert.Equal(t, 50, result.SpamScore)
	assert.Equal(t, 55, result.QualityScore)
}

func TestScoreEmailFieldsAreMatchedIndependently(t *testing.T) {
	result := ScoreEmail("Urgent: your application", "It is free.", 0)

	require.Len(t, result.Matches, 2)
	assert.Equal(t, Match{Rule: result.Matches[0].Rule, Field: FieldSubject, Start: 0, End: 6}, result.Matches[0])
	assert.Equal(t, Match{Rule: result.Matches[1].Rule, Field: FieldBody, Start: 6, End: 10}, result.Matches[1])

	assert.Len(t, result.FieldMatches(FieldSubject), 1)
	assert.Len(t, result.FieldMatches(FieldBody), 1)

	// a phrase never spans the subject and the body
	assert.Empty(t, ScoreEmail("Please act", "now or later", 0).Matches)
}

func TestWarmthScore(t *testing.T) {
	tests := []struct {
		length int
		want   int
	}{
		{-5, 40},
		{0, 40},
		{19, 40},
		{20, 60},
		{35, 60},
		{50, 60},
		{51, 80},
		{75, 80},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, WarmthScore(tt.length), "length %d", tt.length)
		assert.Equal(t, tt.want, ScoreEmail("", "", tt.length).WarmthScore)
	}
}

func TestScoresAreClamped(t *testing.T) {
	for n := -1; n <= 20; n++ {
		spam, quality := SpamScore(n), QualityScore(n)
		assert.GreaterOrEqual(t, spam, 0)
		assert.LessOrEqual(t, spam, 100)
		assert.GreaterOrEqual(t, quality, 0)
		assert.LessOrEqual(t, quality, 100)
	}

	assert.Equal(t, 95, SpamScore(6))
	assert.Equal(t, 100, SpamScore(7))
	assert.Equal(t, 5, QualityScore(8))
	assert.Equal(t, 0, QualityScore(9))

	result := ScoreEmail("", strings.Repeat("free ", 12), 0)
	assert.Len(t, result.Matches, 12)
	assert.Equal(t, 100, result.SpamScore)
	assert.Equal(t, 0, result.QualityScore)
}

func TestScoresAreMonotonic(t *testing.T) {
	body := "Hi Dana, I saw your post about the platform team."
	prev := ScoreEmail("", body, 0)

	for _, phrase := range []string{"free", "act now", "cash", "free", "winner", "urgent", "buy now", "free", "apply now"} {
		body += " " + phrase + "."
		next := ScoreEmail("", body, 0)

		assert.GreaterOrEqual(t, next.SpamScore, prev.SpamScore)
		assert.LessOrEqual(t, next.QualityScore, prev.QualityScore)
		prev = next
	}
}

func TestScoreEmailIsIdempotent(t *testing.T) {
	subject := "Congratulations, you are a winner"
	body := "Click here to claim your cash. Don't miss out!"

	first := ScoreEmail(subject, body, 42)
	second := ScoreEmail(subject, body, 42)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("ScoreEmail() mismatch (-first +second):\n%s", diff)
	}
}

func TestScorerNilEmail(t *testing.T) {
	result := NewScorer(nil).Score(nil)
	assert.Empty(t, result.Matches)
	assert.Equal(t, 5, result.SpamScore)
	assert.Equal(t, 85, result.QualityScore)
	assert.Equal(t, 40, result.WarmthScore)
}

func TestScorerConcurrentUse(t *testing.T) {
	scorer := NewScorer(nil)
	want := scorer.Score(&Email{Body: "free cash, act now"})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got := scorer.Score(&Email{Body: "free cash, act now"})
			assert.Equal(t, want, got)
		}()
	}
	wg.Wait()
}

func TestScoreResultClone(t *testing.T) {
	original := ScoreEmail("", "free", 0)
	clone := original.Clone()

	clone.Matches[0].Start = 99
	clone.SpamScore = 0

	assert.Equal(t, 0, original.Matches[0].Start)
	assert.Equal(t, 20, original.SpamScore)
}
