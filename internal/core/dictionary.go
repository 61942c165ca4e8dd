package core

import (
	"strings"
	"sync"

	"golang.org/x/text/cases"
)

// Dictionary is an immutable, ordered set of phrase rules keyed by their
// case-folded phrase.
type Dictionary struct {
	rules []PhraseRule
	index map[string]int
}

var defaultDictionary = sync.OnceValue(func() *Dictionary {
	return NewDictionary(composeRules, previewRules)
})

// DefaultDictionary returns the built-in dictionary, the union of the
// compose and preview phrase tables.
func DefaultDictionary() *Dictionary {
	return defaultDictionary()
}

// BuiltinRules returns the built-in phrase tables in merge order
func BuiltinRules() [][]PhraseRule {
	return [][]PhraseRule{composeRules, previewRules}
}

// NewDictionary builds a dictionary from the given tables in order. A phrase
// seen again keeps its first position and takes the more severe rating.
func NewDictionary(tables ...[]PhraseRule) *Dictionary {
	d := &Dictionary{index: make(map[string]int)}
	for _, table := range tables {
		for _, rule := range table {
			rule.Phrase = strings.TrimSpace(rule.Phrase)
			if rule.Phrase == "" {
				continue
			}
			key := foldPhrase(rule.Phrase)
			if i, ok := d.index[key]; ok {
				if rule.Severity > d.rules[i].Severity {
					rule.Phrase = d.rules[i].Phrase
					d.rules[i] = rule
				}
				continue
			}
			d.index[key] = len(d.rules)
			d.rules = append(d.rules, rule)
		}
	}
	return d
}

// Lookup finds the rule for a phrase, ignoring case
func (d *Dictionary) Lookup(phrase string) (PhraseRule, bool) {
	i, ok := d.index[foldPhrase(strings.TrimSpace(phrase))]
	if !ok {
		return PhraseRule{}, false
	}
	return d.rules[i], true
}

// Rules returns a copy of the rules in insertion order
func (d *Dictionary) Rules() []PhraseRule {
	out := make([]PhraseRule, len(d.rules))
	copy(out, d.rules)
	return out
}

// Len returns the number of rules
func (d *Dictionary) Len() int {
	return len(d.rules)
}

func foldPhrase(phrase string) string {
	// cases.Caser is stateful, so one is created per call.
	return cases.Fold().String(phrase)
}
