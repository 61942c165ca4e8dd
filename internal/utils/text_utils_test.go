package utils

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"
)

func TestTruncateText(t *testing.T) {
	tp := NewTextProcessor(zaptest.NewLogger(t))

	assert.Equal(t, "short", tp.TruncateText("short", 10))
	assert.Equal(t, "unlimited", tp.TruncateText("unlimited", 0))
	assert.Equal(t, "abc"+TruncationMarker, tp.TruncateText("abcdef", 3))

	// "é" is two bytes; cutting through it must not leave half a rune
	got := tp.TruncateText("café au lait", 4)
	assert.Equal(t, "caf"+TruncationMarker, got)
	assert.True(t, utf8.ValidString(got))
}

func TestSanitizeUTF8(t *testing.T) {
	tp := NewTextProcessor(nil)

	assert.Equal(t, "valid ✓", tp.SanitizeUTF8("valid ✓"))
	assert.Equal(t, "free offer", tp.SanitizeUTF8("free\xff offer\xfe"))
	assert.Equal(t, "ab", tp.SanitizeUTF8("a\xffb"))
}

func TestNormalizeNewlines(t *testing.T) {
	tp := NewTextProcessor(nil)

	assert.Equal(t, "a\nb\nc\n", tp.NormalizeNewlines("a\r\nb\rc\r\n"))
	assert.Equal(t, "plain\n", tp.NormalizeNewlines("plain\n"))
}

func TestProcessText(t *testing.T) {
	tp := NewTextProcessor(zaptest.NewLogger(t))

	got := tp.ProcessText("Hi\r\nfree\xff"+strings.Repeat("x", 100), 10)
	assert.Equal(t, "Hi\nfreexxx"+TruncationMarker, got)
}
