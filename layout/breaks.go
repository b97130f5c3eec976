package layout

import (
	"strings"
	"unicode"

	"golang.org/x/text/width"

	"github.com/gogpu/styledtext/glyph"
)

// Hyphen- and dash-family codepoints recognized by isBreakChar; Unicode
// spaces are matched separately through unicode.IsSpace (spec §4.4).
const (
	hyphenMinus    = '-'
	softHyphen     = rune(0x00AD)
	hyphenationDot = rune(0x2027)
	enDash         = rune(0x2013)
	emDash         = rune(0x2014)
	figureDash     = rune(0x2012)
	horizontalBar  = rune(0x2015)
)

// isHyphenLike reports whether r is a hyphen/dash-family break character,
// as opposed to a space. The wrap routine only appends a trailing space
// when the break point was NOT hyphen-like (spec §4.4).
func isHyphenLike(r rune) bool {
	switch r {
	case hyphenMinus, softHyphen, hyphenationDot, enDash, emDash, figureDash, horizontalBar:
		return true
	}
	return false
}

// isBreakChar reports whether r is a member of BREAK_CHARS: hyphens,
// dashes, the soft hyphen, the hyphenation point, any Unicode space, or
// the U+200B zero-width space insertCJKZeroWidthSpaces places after
// ideographs (spec §4.4).
func isBreakChar(r rune) bool {
	return isHyphenLike(r) || unicode.IsSpace(r) || r == 0x200B
}

// isBreakGlyph reports whether g is a break opportunity: its codepoint is
// in BREAK_CHARS, or it is a zero-color (typed-effect) marker glyph
// (spec §4.4).
func isBreakGlyph(g glyph.Glyph) bool {
	if glyph.ExtractColor(g) == 0 {
		return true
	}
	return isBreakChar(glyph.ExtractChar(g))
}

// isWideIdeograph reports whether r is an East-Asian-wide rune that isn't
// already whitespace — insertCJKZeroWidthSpaces needs a break opportunity
// after such a rune, since Han/Hangul/Kana text carries no spaces of its
// own (spec §4.4). Classification goes through width.LookupRune rather
// than a hand-picked block list, so Unicode additions to the wide ranges
// are picked up for free.
func isWideIdeograph(r rune) bool {
	if unicode.IsSpace(r) {
		return false
	}
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return true
	default:
		return false
	}
}

// insertCJKZeroWidthSpaces returns text with a U+200B zero-width space
// inserted immediately after every wide CJK rune, giving the wrap
// routine a break opportunity between ideographs that carry no spaces
// of their own (spec §4.4).
func insertCJKZeroWidthSpaces(text string) string {
	var b strings.Builder
	for _, r := range text {
		b.WriteRune(r)
		if isWideIdeograph(r) {
			b.WriteRune(0x200B)
		}
	}
	return b.String()
}
