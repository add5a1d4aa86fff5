package infra

import "unicode/utf16"

// FromUTF16 returns the WTF-8 text for the UTF-16 code units u, such as a
// JavaScript string. Surrogate pairs are joined and lone surrogates are kept,
// so no information is lost.
func FromUTF16(u []uint16) string {
	b := make([]byte, 0, len(u))
	for i := 0; i < len(u); i++ {
		r := rune(u[i])
		if InRange(r, 0xd800, 0xdbff) && i+1 < len(u) {
			if low := rune(u[i+1]); InRange(low, 0xdc00, 0xdfff) {
				r = utf16.DecodeRune(r, low)
				i++
			}
		}
		b = AppendCodePoint(b, r)
	}
	return string(b)
}

// ToUTF16 returns the UTF-16 code units of the WTF-8 text s. Lone surrogates
// are kept as single code units. It is the inverse of [FromUTF16].
func ToUTF16(s string) []uint16 {
	u := make([]uint16, 0, len(s))
	for _, r := range CodePoints(s) {
		if r >= 0x10000 {
			high, low := utf16.EncodeRune(r)
			u = append(u, uint16(high), uint16(low))
			continue
		}
		u = append(u, uint16(r))
	}
	return u
}
