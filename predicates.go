package infra

import "golang.org/x/text/runes"

// Predicate classifies a single code point. Every predicate in this package
// has this signature and can be converted to a Predicate.
//
// A Predicate is also a [runes.Set], so it can drive the x/text transformers
// in package runes, e.g. runes.Remove(infra.Predicate(infra.IsControl)).
// Those transformers expect valid UTF-8 and replace encoded surrogates.
type Predicate func(r rune) bool

var _ runes.Set = Predicate(nil)

// Contains reports whether p holds for r. A nil Predicate contains nothing.
func (p Predicate) Contains(r rune) bool {
	return p != nil && p(r)
}

// MatchString reports whether p holds for the first code point of the WTF-8
// text s. It returns false if s is empty.
func (p Predicate) MatchString(s string) bool {
	if p == nil || len(s) == 0 {
		return false
	}
	r, _ := DecodeCodePointInString(s)
	return p(r)
}

// Not returns the complement of p.
func (p Predicate) Not() Predicate {
	return func(r rune) bool {
		return !p.Contains(r)
	}
}

// InRange reports whether low <= r <= high.
func InRange(r, low, high rune) bool {
	return low <= r && r <= high
}

// IsCodePointBetween reports whether the first code point of the WTF-8 text s
// lies inclusively between low and high. It returns false if s is empty.
func IsCodePointBetween(s string, low, high rune) bool {
	if len(s) == 0 {
		return false
	}
	r, _ := DecodeCodePointInString(s)
	return InRange(r, low, high)
}

// IsASCIIByte reports whether r is in the range U+0000 NULL to U+007F DELETE,
// inclusive.
//
// See https://infra.spec.whatwg.org/#ascii-code-point
func IsASCIIByte(r rune) bool {
	return InRange(r, 0x00, 0x7f)
}

// IsSurrogate reports whether r is in the range U+D800 to U+DFFF, inclusive.
//
// See https://infra.spec.whatwg.org/#surrogate
func IsSurrogate(r rune) bool {
	return InRange(r, 0xd800, 0xdfff)
}

// IsSurrogateString reports whether every code point of the WTF-8 text s is a
// surrogate. This is vacuously true for the empty string.
func IsSurrogateString(s string) bool {
	for _, r := range CodePoints(s) {
		if !IsSurrogate(r) {
			return false
		}
	}
	return true
}

// IsScalarValue reports whether r is a code point that is not a surrogate.
// Values outside the code point range are not scalar values.
//
// See https://infra.spec.whatwg.org/#scalar-value
func IsScalarValue(r rune) bool {
	return InRange(r, 0, 0x10ffff) && !IsSurrogate(r)
}

// IsScalarValueString is the negation of [IsSurrogateString].
func IsScalarValueString(s string) bool {
	return !IsSurrogateString(s)
}

// IsNonCharacter reports whether r is in the range U+FDD0 to U+FDEF,
// inclusive, or is one of the 34 code points U+nFFFE and U+nFFFF that end
// each of the 17 planes.
//
// See https://infra.spec.whatwg.org/#noncharacter
func IsNonCharacter(r rune) bool {
	if r < 0xfdd0 {
		return false
	}
	return inTable(nonCharacterCodePoints, r)
}

// inTable performs a binary search on a sorted table of inclusive code point
// ranges.
func inTable(table [][2]rune, r rune) bool {
	from := 0
	to := len(table)
	for to > from {
		middle := (from + to) / 2
		cpRange := table[middle]
		if r < cpRange[0] {
			to = middle
			continue
		}
		if r > cpRange[1] {
			from = middle + 1
			continue
		}
		return true
	}
	return false
}

// IsASCIITabOrNewline reports whether r is U+0009 TAB, U+000A LF or U+000D CR.
//
// See https://infra.spec.whatwg.org/#ascii-tab-or-newline
func IsASCIITabOrNewline(r rune) bool {
	return r == '\t' || r == '\n' || r == '\r'
}

// IsASCIIWhitespace reports whether r is an ASCII tab or newline, U+000C FF or
// U+0020 SPACE.
//
// See https://infra.spec.whatwg.org/#ascii-whitespace
func IsASCIIWhitespace(r rune) bool {
	return IsASCIITabOrNewline(r) || r == '\f' || r == ' '
}

// IsC0Control reports whether r is in the range U+0000 NULL to U+001F
// INFORMATION SEPARATOR ONE, inclusive.
//
// See https://infra.spec.whatwg.org/#c0-control
func IsC0Control(r rune) bool {
	return InRange(r, 0x00, 0x1f)
}

// IsC0ControlOrSpace reports whether r is a C0 control or U+0020 SPACE.
//
// See https://infra.spec.whatwg.org/#c0-control-or-space
func IsC0ControlOrSpace(r rune) bool {
	return IsC0Control(r) || r == ' '
}

// IsControl reports whether r is a C0 control or in the range U+007F DELETE to
// U+009F APPLICATION PROGRAM COMMAND, inclusive.
//
// See https://infra.spec.whatwg.org/#control
func IsControl(r rune) bool {
	return IsC0Control(r) || InRange(r, 0x7f, 0x9f)
}

// IsASCIIDigit reports whether r is in the range '0' to '9', inclusive.
//
// See https://infra.spec.whatwg.org/#ascii-digit
func IsASCIIDigit(r rune) bool {
	return InRange(r, '0', '9')
}

// IsASCIIUpperHexDigit reports whether r is in the range 'A' to 'F', inclusive.
//
// See https://infra.spec.whatwg.org/#ascii-upper-hex-digit
func IsASCIIUpperHexDigit(r rune) bool {
	return InRange(r, 'A', 'F')
}

// IsASCIILowerHexDigit reports whether r is in the range 'a' to 'f', inclusive.
//
// See https://infra.spec.whatwg.org/#ascii-lower-hex-digit
func IsASCIILowerHexDigit(r rune) bool {
	return InRange(r, 'a', 'f')
}

// IsASCIIHexDigit reports whether r is an ASCII upper or lower hex digit.
//
// See https://infra.spec.whatwg.org/#ascii-hex-digit
func IsASCIIHexDigit(r rune) bool {
	return IsASCIIUpperHexDigit(r) || IsASCIILowerHexDigit(r)
}

// IsASCIIUpperAlpha reports whether r is in the range 'A' to 'Z', inclusive.
//
// See https://infra.spec.whatwg.org/#ascii-upper-alpha
func IsASCIIUpperAlpha(r rune) bool {
	return InRange(r, 'A', 'Z')
}

// IsASCIILowerAlpha reports whether r is in the range 'a' to 'z', inclusive.
//
// See https://infra.spec.whatwg.org/#ascii-lower-alpha
func IsASCIILowerAlpha(r rune) bool {
	return InRange(r, 'a', 'z')
}

// IsASCIIAlpha reports whether r is an ASCII upper or lower alpha.
//
// See https://infra.spec.whatwg.org/#ascii-alpha
func IsASCIIAlpha(r rune) bool {
	return IsASCIIUpperAlpha(r) || IsASCIILowerAlpha(r)
}

// IsASCIIAlphanumeric reports whether r is an ASCII digit or ASCII alpha.
//
// See https://infra.spec.whatwg.org/#ascii-alphanumeric
func IsASCIIAlphanumeric(r rune) bool {
	return IsASCIIDigit(r) || IsASCIIAlpha(r)
}
