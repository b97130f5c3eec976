package layout

import (
	"unicode"

	"github.com/gogpu/styledtext/glyph"
)

func isSpaceGlyph(g glyph.Glyph) bool {
	return unicode.IsSpace(glyph.ExtractChar(g))
}

// breakPoint describes where to split a line: glyphs[:keep] stay behind,
// glyphs[tailStart:] move to the new line. The gap between keep and
// tailStart (if any) is a run of spaces collapsed into a single
// trailing space-equivalent (spec §4.4).
type breakPoint struct {
	keep       int
	tailStart  int
	hyphenLike bool
}

// findBreakPoint walks glyphs backward from the end looking for the
// rightmost break opportunity — a BREAK_CHARS member or a zero-color
// typed-effect marker — then, for a space, skips further left past any
// consecutive run of spaces so the whole run collapses to one synthetic
// trailing space (spec §4.4's ordering rule: rightmost candidate wins,
// longest trailing space run is discarded).
func findBreakPoint(glyphs []glyph.Glyph) (breakPoint, bool) {
	for i := len(glyphs) - 1; i >= 0; i-- {
		g := glyphs[i]
		if !isBreakGlyph(g) {
			continue
		}
		ch := glyph.ExtractChar(g)
		if !unicode.IsSpace(ch) {
			// Hyphen-like break char, zero-width space, or a zero-color
			// marker: the line keeps the break character itself, nothing
			// synthesized.
			return breakPoint{keep: i + 1, tailStart: i + 1, hyphenLike: true}, true
		}
		left := i
		for left-1 >= 0 && isSpaceGlyph(glyphs[left-1]) {
			left--
		}
		return breakPoint{keep: left, tailStart: i + 1, hyphenLike: false}, true
	}
	return breakPoint{}, false
}

// Wrap checks the last line's measured width against targetWidth and, if
// it overflows, splits it at the rightmost break opportunity, moving the
// tail glyphs (and their parallel Advances/Sizing entries) onto a freshly
// pushed line. It reports whether a split happened (spec §4.4).
func (l *Layout) Wrap(targetWidth float32) bool {
	if targetWidth <= 0 || len(l.Lines) == 0 {
		return false
	}
	idx := len(l.Lines) - 1
	line := &l.Lines[idx]
	base := l.CountGlyphsBeforeLine(idx)
	if w, _ := l.calculateLineSizeAt(idx, base); w <= targetWidth {
		return false
	}

	origLen := len(line.Glyphs)
	bp, ok := findBreakPoint(line.Glyphs)
	if !ok {
		if origLen <= 1 {
			return false
		}
		bp = breakPoint{keep: origLen - 1, tailStart: origLen - 1}
	}

	kept := append([]glyph.Glyph(nil), line.Glyphs[:bp.keep]...)
	keptAdvances := append([]float32(nil), l.Advances[base:base+bp.keep]...)
	keptSizing := append([][2]float32(nil), l.Sizing[base:base+bp.keep]...)

	if !bp.hyphenLike && bp.keep < bp.tailStart {
		template := line.Glyphs[bp.keep]
		kept = append(kept, glyph.ApplyChar(template, ' '))
		keptAdvances = append(keptAdvances, 1)
		keptSizing = append(keptSizing, [2]float32{1, 1})
	}

	tailGlyphs := append([]glyph.Glyph(nil), line.Glyphs[bp.tailStart:]...)
	tailAdvances := append([]float32(nil), l.Advances[base+bp.tailStart:base+origLen]...)
	tailSizing := append([][2]float32(nil), l.Sizing[base+bp.tailStart:base+origLen]...)

	afterBase := base + origLen
	newAdvances := append([]float32(nil), l.Advances[:base]...)
	newAdvances = append(newAdvances, keptAdvances...)
	newAdvances = append(newAdvances, tailAdvances...)
	newAdvances = append(newAdvances, l.Advances[afterBase:]...)
	l.Advances = newAdvances

	newSizing := append([][2]float32(nil), l.Sizing[:base]...)
	newSizing = append(newSizing, keptSizing...)
	newSizing = append(newSizing, tailSizing...)
	newSizing = append(newSizing, l.Sizing[afterBase:]...)
	l.Sizing = newSizing

	rest := append([]Line(nil), l.Lines[idx+1:]...)
	l.Lines[idx].Glyphs = kept
	l.Lines = append(l.Lines[:idx+1], append([]Line{{Glyphs: tailGlyphs}}, rest...)...)

	CalculateSize(l)
	return true
}
