package infra

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// Range tables for the Infra code point categories. Each table contains
// exactly the code points for which the predicate of the same name holds.
var (
	ASCIIByte          = spanTable(0x00, 0x7f)
	Surrogate          = spanTable(0xd800, 0xdfff)
	NonCharacter       = nonCharacterTable()
	ASCIITabOrNewline  = rangetable.New('\t', '\n', '\r')
	ASCIIWhitespace    = rangetable.Merge(ASCIITabOrNewline, rangetable.New('\f', ' '))
	C0Control          = spanTable(0x00, 0x1f)
	C0ControlOrSpace   = rangetable.Merge(C0Control, rangetable.New(' '))
	Control            = rangetable.Merge(C0Control, spanTable(0x7f, 0x9f))
	ASCIIDigit         = spanTable('0', '9')
	ASCIIUpperHexDigit = spanTable('A', 'F')
	ASCIILowerHexDigit = spanTable('a', 'f')
	ASCIIHexDigit      = rangetable.Merge(ASCIIUpperHexDigit, ASCIILowerHexDigit)
	ASCIIUpperAlpha    = spanTable('A', 'Z')
	ASCIILowerAlpha    = spanTable('a', 'z')
	ASCIIAlpha         = rangetable.Merge(ASCIIUpperAlpha, ASCIILowerAlpha)
	ASCIIAlphanumeric  = rangetable.Merge(ASCIIDigit, ASCIIAlpha)
)

// spanTable returns a table holding every code point from low to high,
// inclusive.
func spanTable(low, high rune) *unicode.RangeTable {
	span := make([]rune, 0, high-low+1)
	for r := low; r <= high; r++ {
		span = append(span, r)
	}
	return rangetable.New(span...)
}

func nonCharacterTable() *unicode.RangeTable {
	var tables []*unicode.RangeTable
	for _, cpRange := range nonCharacterCodePoints {
		tables = append(tables, spanTable(cpRange[0], cpRange[1]))
	}
	return rangetable.Merge(tables...)
}
