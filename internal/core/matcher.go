package core

import (
	"sort"
	"unicode"
	"unicode/utf8"
)

// Matcher finds dictionary phrases in text
type Matcher struct {
	dict *Dictionary
}

// NewMatcher creates a matcher over the given dictionary. A nil dictionary
// means the default one.
func NewMatcher(dict *Dictionary) *Matcher {
	if dict == nil {
		dict = DefaultDictionary()
	}
	return &Matcher{dict: dict}
}

// FindMatches returns every occurrence of every rule in text, sorted by
// start offset. Ties keep dictionary order.
func (m *Matcher) FindMatches(text string, field Field) []Match {
	matches := []Match{}
	if text == "" {
		return matches
	}

	for _, rule := range m.dict.rules {
		for pos := 0; pos < len(text); {
			n, ok := matchAt(text, pos, rule.Phrase)
			if ok {
				matches = append(matches, Match{
					Rule:  rule,
					Field: field,
					Start: pos,
					End:   pos + n,
				})
				pos += n
				continue
			}
			_, size := utf8.DecodeRuneInString(text[pos:])
			pos += size
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Start < matches[j].Start
	})
	return matches
}

// matchAt reports whether phrase occurs at text[pos:] on word boundaries
// and returns the matched length in bytes.
func matchAt(text string, pos int, phrase string) (int, bool) {
	n, ok := prefixFold(text[pos:], phrase)
	if !ok || n == 0 {
		return 0, false
	}

	first, _ := utf8.DecodeRuneInString(phrase)
	if isWordRune(first) && pos > 0 {
		prev, _ := utf8.DecodeLastRuneInString(text[:pos])
		if isWordRune(prev) {
			return 0, false
		}
	}

	last, _ := utf8.DecodeLastRuneInString(phrase)
	if isWordRune(last) && pos+n < len(text) {
		next, _ := utf8.DecodeRuneInString(text[pos+n:])
		if isWordRune(next) {
			return 0, false
		}
	}

	return n, true
}

// prefixFold reports whether s starts with prefix under simple case folding
// and returns the length of the matching prefix of s in bytes.
func prefixFold(s, prefix string) (int, bool) {
	n := 0
	for _, want := range prefix {
		if n >= len(s) {
			return 0, false
		}
		got, size := utf8.DecodeRuneInString(s[n:])
		if !equalFoldRune(got, want) {
			return 0, false
		}
		n += size
	}
	return n, true
}

func equalFoldRune(a, b rune) bool {
	if a == b {
		return true
	}
	for r := unicode.SimpleFold(a); r != a; r = unicode.SimpleFold(r) {
		if r == b {
			return true
		}
	}
	return false
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
