/*
Package infra implements the code point classification and string
manipulation algorithms of the WHATWG Infra Standard for Go.

This package conforms to:
  - Infra Standard, §4.5 Code points (https://infra.spec.whatwg.org/#code-points)
  - Infra Standard, §4.6 Strings (https://infra.spec.whatwg.org/#strings)

# Overview

Parsers for URLs, HTML, MIME types and similar formats are specified in terms
of Infra's primitives: "ASCII whitespace", "strip newlines", "collect a
sequence of code points" and so on. These primitives are subtly different from
their Go counterparts. [strings.TrimSpace] also removes U+000B and U+0085 and
every Unicode space separator, while Infra's ASCII whitespace is exactly TAB,
LF, FF, CR and SPACE. Using this package keeps a parser byte-for-byte aligned
with the standard and with browsers.

# Text

Infra strings are sequences of code points that may contain lone surrogates,
which UTF-8 cannot represent. Functions in this package therefore accept WTF-8
(generalized UTF-8): valid UTF-8 plus three-byte encodings of surrogates, for
example "\xed\xa0\x80" for U+D800. Text is always processed code point by code
point:
  - [DecodeCodePoint] / [DecodeCodePointInString] - Decode the first code point
  - [AppendCodePoint] - Encode any code point, surrogates included
  - [CodePoints] - Iterate over code points and their byte offsets
  - [FromUTF16] / [ToUTF16] - Convert from and to (possibly ill-formed) UTF-16

# Code Points

Every predicate is a plain function of a rune and can be used as a
[Predicate]:
  - [IsSurrogate], [IsScalarValue], [IsNonCharacter]
  - [IsASCIIByte], [IsASCIITabOrNewline], [IsASCIIWhitespace]
  - [IsC0Control], [IsC0ControlOrSpace], [IsControl]
  - [IsASCIIDigit], [IsASCIIHexDigit], [IsASCIIAlpha], [IsASCIIAlphanumeric]

Each category is also available as a [unicode.RangeTable], for example
[ASCIIWhitespace], for use with [unicode.Is] or [strings.TrimFunc].

# Strings

  - [ConvertToScalarValue] - Replace surrogates with U+FFFD
  - [StripNewlines] / [NormalizeNewlines]
  - [StripLeadingAndTrailingASCIIWhitespace]
  - [StripAndCollapseASCIIWhitespace]
  - [CollectCodePoints] - Collect a sequence of code points

For text that arrives through an [io.Reader], [NewlineNormalizer],
[NewlineStripper] and [ScalarValueConverter] provide the same algorithms as
[golang.org/x/text/transform.Transformer] values.

None of the functions in this package panic or return errors on any input.
*/
package infra
