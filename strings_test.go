package infra

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// corpus holds inputs with every kind of newline, whitespace and surrogate
// arrangement the algorithms care about.
var corpus = []string{
	"",
	" ",
	"\r",
	"\n",
	"\r\n",
	"\n\r",
	"\r\r\n\n",
	"a\r",
	"\ra",
	"    ",
	"\t\n\f\r ",
	"\v",
	" x ",
	"cat dog  hamster \n\r",
	"\r  \n  cat dog  hamster \n\r",
	"a\r\ntttt\r",
	"line one\r\nline two\rline three\n",
	highSurrogate,
	lowSurrogate,
	highSurrogate + lowSurrogate,
	lowSurrogate + highSurrogate,
	encodedPair,
	" " + highSurrogate + " \r\n " + lowSurrogate + "\t",
	"\xff\xfe \x80",
	"日本語\r\nテキスト  ",
	"\U0001f600 \U0001f600",
}

func TestConvertToScalarValue(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{highSurrogate, "�"},
		{lowSurrogate, "�"},
		{"test", "test"},
		{"a" + highSurrogate + "b" + lowSurrogate, "a�b�"},
		{lowSurrogate + highSurrogate, "��"},
		{encodedPair, "\U0001f600"},
		{"\U0001f600", "\U0001f600"},
		{"a\xffb", "a�b"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ConvertToScalarValue(tt.input), "%q", tt.input)
	}

	for _, s := range corpus {
		converted := ConvertToScalarValue(s)
		assert.True(t, utf8.ValidString(converted), "%q", s)
		for _, r := range CodePoints(converted) {
			assert.False(t, IsSurrogate(r), "%q", s)
		}
	}
}

func TestConvertToScalarValueUTF16(t *testing.T) {
	assert.Equal(t, "�", ConvertToScalarValue(FromUTF16([]uint16{0xd800})))
	assert.Equal(t, "a\U0001f600�", ConvertToScalarValue(FromUTF16([]uint16{'a', 0xd83d, 0xde00, 0xdc00})))
}

func TestStripNewlines(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"a\n\n", "a"},
		{"a\r\n\r\n", "a"},
		{"a\r\r", "a"},
		{"apple\nbanana", "applebanana"},
		{"\ttab\fform feed ", "\ttab\fform feed "},
		{highSurrogate + "\n" + lowSurrogate, highSurrogate + lowSurrogate},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, StripNewlines(tt.input), "%q", tt.input)
	}

	for _, s := range corpus {
		assert.NotContains(t, StripNewlines(s), "\n")
		assert.NotContains(t, StripNewlines(s), "\r")
	}
}

func TestNormalizeNewlines(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"\r", "\n"},
		{"\r\n\r\n", "\n\n"},
		{"a\r\ntttt\r", "a\ntttt\n"},
		{"\r\r", "\n\n"},
		{"\n\r", "\n\n"},
		{"\r\r\n", "\n\n"},
		{"no newline", "no newline"},
		{highSurrogate + "\r", highSurrogate + "\n"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, NormalizeNewlines(tt.input), "%q", tt.input)
	}

	for _, s := range corpus {
		normalized := NormalizeNewlines(s)
		assert.NotContains(t, normalized, "\r")
		assert.Equal(t, normalized, NormalizeNewlines(normalized))
		assert.Equal(t, StripNewlines(s), StripNewlines(normalized))
	}
}

func TestStripLeadingAndTrailingASCIIWhitespace(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{" ", ""},
		{"\t\n\f\r ", ""},
		{"  a  ", "a"},
		{"\r\na b\t", "a b"},
		{"\va\v", "\va\v"},
		{"\u00a0a\u00a0", "\u00a0a\u00a0"},
		{"\u3000a", "\u3000a"},
		{" " + highSurrogate + " ", highSurrogate},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, StripLeadingAndTrailingASCIIWhitespace(tt.input), "%q", tt.input)
	}

	for _, s := range corpus {
		stripped := StripLeadingAndTrailingASCIIWhitespace(s)
		require.True(t, strings.Contains(s, stripped), "%q", s)
		if stripped != "" {
			first, _ := DecodeCodePointInString(stripped)
			last := rune(stripped[len(stripped)-1])
			assert.False(t, IsASCIIWhitespace(first), "%q", s)
			assert.False(t, IsASCIIWhitespace(last), "%q", s)
		}
	}
}

func TestStripAndCollapseASCIIWhitespace(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"    ", ""},
		{"cat dog  hamster \n\r", "cat dog hamster"},
		{"\r  \n  cat dog  hamster", "cat dog hamster"},
		{"\r  \n  cat dog  hamster \n\r", "cat dog hamster"},
		{"a\t\tb\f\fc", "a b c"},
		{"a\vb", "a\vb"},
		{"a\u00a0\u00a0b", "a\u00a0\u00a0b"},
		{highSurrogate + " \n " + lowSurrogate, highSurrogate + " " + lowSurrogate},
		{"\xff  \xfe", "\xff \xfe"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, StripAndCollapseASCIIWhitespace(tt.input), "%q", tt.input)
	}

	for _, s := range corpus {
		collapsed := StripAndCollapseASCIIWhitespace(s)
		assert.Equal(t, collapsed, StripAndCollapseASCIIWhitespace(collapsed), "not idempotent for %q", s)
		assert.NotContains(t, collapsed, "  ")
		assert.Equal(t, collapsed, StripLeadingAndTrailingASCIIWhitespace(collapsed))
	}
}

func TestCollectCodePoints(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		position  int
		predicate Predicate
		run       string
		next      int
	}{
		{"prefix", "test1234", 0, IsASCIIAlpha, "test", 4},
		{"past the end", "test", 5, IsASCIIAlpha, "", 5},
		{"at the end", "test", 4, IsASCIIAlpha, "", 4},
		{"empty string", "", 0, func(rune) bool { return true }, "", 0},
		{"middle", "test1234", 4, IsASCIIDigit, "1234", 8},
		{"no match", "test1234", 0, IsASCIIDigit, "", 0},
		{"negative position", "test", -1, IsASCIIAlpha, "", -1},
		{"nil predicate", "test", 0, nil, "", 0},
		{"counts code points", "日本語abc", 1, Predicate(IsASCIIAlpha).Not(), "本語", 3},
		{"after multi-byte", "日本語abc", 3, IsASCIIAlpha, "abc", 6},
		{"surrogates", lowSurrogate + highSurrogate + "x", 0, IsSurrogate, lowSurrogate + highSurrogate, 2},
		{"surrogate pair is one code point", "a" + encodedPair + "b", 1, IsScalarValue, encodedPair + "b", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			run, next := CollectCodePoints(tt.input, tt.position, tt.predicate)
			assert.Equal(t, tt.run, run)
			assert.Equal(t, tt.next, next)
		})
	}
}
