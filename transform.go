package infra

import (
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// NewlineNormalizer returns a transformer that performs [NormalizeNewlines] on
// a stream of text.
func NewlineNormalizer() transform.Transformer {
	return newlineNormalizer{}
}

type newlineNormalizer struct{ transform.NopResetter }

func (newlineNormalizer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		if nDst >= len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		c := src[nSrc]
		if c == '\r' {
			if nSrc+1 == len(src) && !atEOF {
				// An LF may follow in the next chunk.
				return nDst, nSrc, transform.ErrShortSrc
			}
			if nSrc+1 < len(src) && src[nSrc+1] == '\n' {
				nSrc++
			}
			c = '\n'
		}
		dst[nDst] = c
		nDst++
		nSrc++
	}
	return nDst, nSrc, nil
}

// NewlineStripper returns a transformer that performs [StripNewlines] on a
// stream of text.
func NewlineStripper() transform.Transformer {
	return newlineStripper{}
}

type newlineStripper struct{ transform.NopResetter }

func (newlineStripper) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for ; nSrc < len(src); nSrc++ {
		c := src[nSrc]
		if c == '\n' || c == '\r' {
			continue
		}
		if nDst >= len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		dst[nDst] = c
		nDst++
	}
	return nDst, nSrc, nil
}

// ScalarValueConverter returns a transformer that performs
// [ConvertToScalarValue] on a stream of WTF-8 text.
func ScalarValueConverter() transform.Transformer {
	return scalarValueConverter{}
}

type scalarValueConverter struct{ transform.NopResetter }

func (scalarValueConverter) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		if c := src[nSrc]; c < utf8.RuneSelf {
			if nDst >= len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = c
			nDst++
			nSrc++
			continue
		}
		if !atEOF && !fullCodePoint(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}
		r, size := DecodeCodePoint(src[nSrc:])
		if IsSurrogate(r) {
			r = utf8.RuneError
		}
		if nDst+utf8.RuneLen(r) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += utf8.EncodeRune(dst[nDst:], r)
		nSrc += size
	}
	return nDst, nSrc, nil
}
