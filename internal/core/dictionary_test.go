package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/cases"
)

func TestDefaultDictionaryIsUnionOfTables(t *testing.T) {
	dict := DefaultDictionary()

	assert.Equal(t, 27, dict.Len())
	assert.Same(t, dict, DefaultDictionary())

	for _, table := range BuiltinRules() {
		for _, rule := range table {
			_, ok := dict.Lookup(rule.Phrase)
			assert.True(t, ok, "missing %q", rule.Phrase)
		}
	}
}

func TestDefaultDictionaryPhrasesAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, rule := range DefaultDictionary().Rules() {
		key := cases.Fold().String(rule.Phrase)
		assert.False(t, seen[key], "duplicate phrase %q", rule.Phrase)
		seen[key] = true
	}
}

func TestDefaultDictionaryOrder(t *testing.T) {
	rules := DefaultDictionary().Rules()
	require.Len(t, rules, 27)

	assert.Equal(t, "free", rules[0].Phrase)
	assert.Equal(t, "to whom it may concern", rules[11].Phrase)
	assert.Equal(t, "winner", rules[12].Phrase)
	assert.Equal(t, "call now", rules[26].Phrase)
}

func TestDefaultDictionaryTakesMoreSevereRating(t *testing.T) {
	dict := DefaultDictionary()

	tests := []struct {
		phrase    string
		severity  Severity
		rationale string
	}{
		{"free", SeverityHigh, "One of the most common spam trigger words"},
		{"limited time", SeverityHigh, "Scarcity language used by promotional campaigns"},
		{"guaranteed", SeverityHigh, "Guarantees are a strong spam signal"},
		{"urgent", SeverityHigh, "Urgency from a stranger is a classic spam signal"},
		{"act now", SeverityHigh, "Pressure language typical of mass marketing"},
		{"amazing", SeverityLow, "Hype words make the email sound templated"},
	}

	for _, tt := range tests {
		t.Run(tt.phrase, func(t *testing.T) {
			rule, ok := dict.Lookup(tt.phrase)
			require.True(t, ok)
			assert.Equal(t, tt.severity, rule.Severity)
			assert.Equal(t, tt.rationale, rule.Rationale)
		})
	}
}

func TestLookup(t *testing.T) {
	dict := DefaultDictionary()

	rule, ok := dict.Lookup("  LIMITED Time ")
	require.True(t, ok)
	assert.Equal(t, "limited time", rule.Phrase)

	_, ok = dict.Lookup("quick question")
	assert.False(t, ok)

	_, ok = dict.Lookup("")
	assert.False(t, ok)
}

func TestNewDictionaryMerge(t *testing.T) {
	first := []PhraseRule{
		{Phrase: "Hot Lead", Severity: SeverityLow, Rationale: "first"},
		{Phrase: "synergy", Severity: SeverityMedium, Rationale: "first"},
		{Phrase: "   ", Severity: SeverityHigh},
	}
	second := []PhraseRule{
		{Phrase: "hot lead", Severity: SeverityHigh, Rationale: "second"},
		{Phrase: "SYNERGY", Severity: SeverityMedium, Rationale: "second"},
		{Phrase: " circle back ", Severity: SeverityLow},
	}

	dict := NewDictionary(first, second)
	rules := dict.Rules()
	require.Len(t, rules, 3)

	assert.Equal(t, PhraseRule{Phrase: "Hot Lead", Severity: SeverityHigh, Rationale: "second"}, rules[0])
	assert.Equal(t, PhraseRule{Phrase: "synergy", Severity: SeverityMedium, Rationale: "first"}, rules[1])
	assert.Equal(t, "circle back", rules[2].Phrase)
}

func TestRulesReturnsCopy(t *testing.T) {
	dict := NewDictionary([]PhraseRule{{Phrase: "free", Severity: SeverityHigh}})

	rules := dict.Rules()
	rules[0].Severity = SeverityLow

	rule, _ := dict.Lookup("free")
	assert.Equal(t, SeverityHigh, rule.Severity)
}

func TestSeverity(t *testing.T) {
	assert.True(t, SeverityLow < SeverityMedium && SeverityMedium < SeverityHigh)
	assert.Equal(t, "medium", SeverityMedium.String())
	assert.Equal(t, "unknown", Severity(0).String())

	s, err := ParseSeverity(" HIGH ")
	require.NoError(t, err)
	assert.Equal(t, SeverityHigh, s)

	_, err = ParseSeverity("critical")
	assert.Error(t, err)

	var decoded Severity
	require.NoError(t, decoded.UnmarshalText([]byte("low")))
	assert.Equal(t, SeverityLow, decoded)
}
