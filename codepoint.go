package infra

import (
	"iter"
	"unicode/utf16"
	"unicode/utf8"
)

// Generalized UTF-8 encodes a surrogate as 0xED followed by two continuation
// bytes, the first of which lies in [surrogateLead, continuationMax].
const (
	surrogateFirst   = 0xed
	surrogateLead    = 0xa0 // 0xa0..0xaf: high surrogates, 0xb0..0xbf: low surrogates
	lowSurrogateLead = 0xb0
	continuationMin  = 0x80
	continuationMax  = 0xbf
)

// surrogateAt decodes the generalized UTF-8 encoding of a surrogate starting
// at s[i]. It returns -1 if there is none.
func surrogateAt[T ~string | ~[]byte](s T, i int) rune {
	if len(s)-i < 3 ||
		s[i] != surrogateFirst ||
		s[i+1] < surrogateLead || s[i+1] > continuationMax ||
		s[i+2] < continuationMin || s[i+2] > continuationMax {
		return -1
	}
	return 0xd000 | rune(s[i+1]&0x3f)<<6 | rune(s[i+2]&0x3f)
}

// decodeSurrogates decodes an encoded surrogate at the start of s, joining an
// encoded high surrogate with an encoded low surrogate that directly follows
// it. A size of 0 means s does not start with a surrogate.
func decodeSurrogates[T ~string | ~[]byte](s T) (r rune, size int) {
	r = surrogateAt(s, 0)
	if r < 0 {
		return r, 0
	}
	if r < 0xdc00 {
		if low := surrogateAt(s, 3); low >= 0xdc00 {
			return utf16.DecodeRune(r, low), 6
		}
	}
	return r, 3
}

// DecodeCodePoint decodes the first code point of the WTF-8 text in b and
// returns it along with its width in bytes. It behaves like
// [utf8.DecodeRune] except that encoded surrogates decode to the surrogate
// itself, and an encoded surrogate pair decodes to the supplementary code point
// it represents.
//
// If b is empty it returns ([utf8.RuneError], 0). Bytes that do not start a
// valid sequence return ([utf8.RuneError], 1).
func DecodeCodePoint(b []byte) (r rune, size int) {
	if len(b) > 0 && b[0] < utf8.RuneSelf {
		return rune(b[0]), 1
	}
	if r, size = decodeSurrogates(b); size > 0 {
		return r, size
	}
	return utf8.DecodeRune(b)
}

// DecodeCodePointInString is like [DecodeCodePoint] but its input is a string.
func DecodeCodePointInString(s string) (r rune, size int) {
	if len(s) > 0 && s[0] < utf8.RuneSelf {
		return rune(s[0]), 1
	}
	if r, size = decodeSurrogates(s); size > 0 {
		return r, size
	}
	return utf8.DecodeRuneInString(s)
}

// fullCodePoint reports whether b begins with a code point that further input
// cannot change. An encoded high surrogate at the end of b is not full since
// an encoded low surrogate may still follow it.
func fullCodePoint(b []byte) bool {
	if len(b) == 0 {
		return false
	}
	if b[0] != surrogateFirst {
		return utf8.FullRune(b)
	}
	switch {
	case len(b) == 1:
		return false
	case b[1] < surrogateLead || b[1] > continuationMax:
		return utf8.FullRune(b)
	case len(b) == 2:
		return false
	case b[2] < continuationMin || b[2] > continuationMax || b[1] >= lowSurrogateLead:
		return true
	}

	// An encoded high surrogate. See whether the rest may turn into an encoded
	// low surrogate.
	rest := b[3:]
	switch len(rest) {
	case 0:
		return false
	case 1:
		return rest[0] != surrogateFirst
	case 2:
		return rest[0] != surrogateFirst || rest[1] < lowSurrogateLead || rest[1] > continuationMax
	}
	return true
}

// AppendCodePoint appends the WTF-8 encoding of r to the end of b and returns
// the extended buffer. Surrogates are encoded as themselves. Code points that
// are out of range are encoded as U+FFFD.
func AppendCodePoint(b []byte, r rune) []byte {
	if IsSurrogate(r) {
		return append(b, surrogateFirst, byte(continuationMin|(r>>6)&0x3f), byte(continuationMin|r&0x3f))
	}
	return utf8.AppendRune(b, r)
}

// CodePoints returns an iterator over the code points of the WTF-8 text s,
// yielding each code point's byte offset along with the code point.
func CodePoints(s string) iter.Seq2[int, rune] {
	return func(yield func(int, rune) bool) {
		for i := 0; i < len(s); {
			r, size := DecodeCodePointInString(s[i:])
			if !yield(i, r) {
				return
			}
			i += size
		}
	}
}

// CodePointCountInString returns the number of code points in the WTF-8 text
// s. An encoded surrogate pair counts as one code point.
func CodePointCountInString(s string) (n int) {
	for i := 0; i < len(s); n++ {
		_, size := DecodeCodePointInString(s[i:])
		i += size
	}
	return
}
