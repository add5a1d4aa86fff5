package infra

import (
	"strings"
	"unicode/utf8"
)

// LF and CR are ASCII, and ASCII bytes never occur inside a multi-byte WTF-8
// sequence, so the newline and whitespace algorithms below may scan bytes
// while still operating on code points.

// ConvertToScalarValue returns s with every surrogate replaced by U+FFFD
// REPLACEMENT CHARACTER. The result is valid UTF-8: bytes that do not form a
// code point are replaced by U+FFFD as well.
//
// See https://infra.spec.whatwg.org/#javascript-string-convert
func ConvertToScalarValue(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range CodePoints(s) {
		if IsSurrogate(r) {
			r = utf8.RuneError
		}
		b.WriteRune(r)
	}
	return b.String()
}

// StripNewlines returns s with every U+000A LF and U+000D CR removed.
//
// See https://infra.spec.whatwg.org/#strip-newlines
func StripNewlines(s string) string {
	if strings.IndexAny(s, "\r\n") < 0 {
		return s
	}
	b := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; c != '\n' && c != '\r' {
			b = append(b, c)
		}
	}
	return string(b)
}

// NormalizeNewlines returns s with every CR LF pair replaced by a single LF,
// and every remaining CR replaced by LF.
//
// See https://infra.spec.whatwg.org/#normalize-newlines
func NormalizeNewlines(s string) string {
	if strings.IndexByte(s, '\r') < 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\r' {
			if i+1 < len(s) && s[i+1] == '\n' {
				i++
			}
			c = '\n'
		}
		b.WriteByte(c)
	}
	return b.String()
}

// StripLeadingAndTrailingASCIIWhitespace returns s without its leading and
// trailing ASCII whitespace. Unlike [strings.TrimSpace], it keeps U+000B, U+0085,
// U+00A0 and all other non-ASCII spaces.
//
// See https://infra.spec.whatwg.org/#strip-leading-and-trailing-ascii-whitespace
func StripLeadingAndTrailingASCIIWhitespace(s string) string {
	start := 0
	for start < len(s) && IsASCIIWhitespace(rune(s[start])) {
		start++
	}
	end := len(s)
	for end > start && IsASCIIWhitespace(rune(s[end-1])) {
		end--
	}
	return s[start:end]
}

var notASCIIWhitespace = Predicate(IsASCIIWhitespace).Not()

// StripAndCollapseASCIIWhitespace replaces every sequence of one or more
// consecutive ASCII whitespace code points in s with a single U+0020 SPACE,
// then strips leading and trailing ASCII whitespace.
//
// See https://infra.spec.whatwg.org/#strip-and-collapse-ascii-whitespace
func StripAndCollapseASCIIWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	var run string
	for position := 0; position < len(s); {
		if run, position, _ = collect(s, position, IsASCIIWhitespace); run != "" {
			b.WriteByte(' ')
			continue
		}
		run, position, _ = collect(s, position, notASCIIWhitespace)
		b.WriteString(run)
	}
	return StripLeadingAndTrailingASCIIWhitespace(b.String())
}

// CollectCodePoints collects the longest sequence of code points of the WTF-8
// text s, starting at the code point with index position, for which p holds.
// It returns the sequence along with the index of the code point that follows
// it. Indices count code points, not bytes.
//
// If position is negative or not less than the number of code points in s,
// or p is nil, the result is "" and position.
//
// See https://infra.spec.whatwg.org/#collect-a-sequence-of-code-points
func CollectCodePoints(s string, position int, p Predicate) (string, int) {
	if position < 0 || p == nil {
		return "", position
	}
	offset := 0
	for skipped := 0; skipped < position; skipped++ {
		if offset >= len(s) {
			return "", position
		}
		_, size := DecodeCodePointInString(s[offset:])
		offset += size
	}
	run, _, n := collect(s, offset, p)
	return run, position + n
}

// collect is CollectCodePoints on byte offsets. It returns the sequence, the
// byte offset following it and the number of code points it contains.
func collect(s string, offset int, p Predicate) (run string, next, n int) {
	next = offset
	for next < len(s) {
		r, size := DecodeCodePointInString(s[next:])
		if !p(r) {
			break
		}
		next += size
		n++
	}
	return s[offset:next], next, n
}
