package layout

import (
	"unicode"

	"github.com/gogpu/styledtext/glyph"
)

// lastStretchableIndex returns the index of the last logical character on
// a line that justification is allowed to stretch, skipping a trailing
// newline or space (spec §4.4).
func lastStretchableIndex(glyphs []glyph.Glyph) int {
	for i := len(glyphs) - 1; i >= 0; i-- {
		ch := glyph.ExtractChar(glyphs[i])
		if ch == '\n' || unicode.IsSpace(ch) {
			continue
		}
		return i
	}
	return -1
}

// ApplyJustification stretches the Advances of every non-final line
// according to l.Justify, so each stretched line's width equals
// targetWidth. It skips the last line and any line whose last
// stretchable glyph index is -1 (spec §4.4).
func (l *Layout) ApplyJustification(targetWidth float32) {
	if l.Justify == JustifyNone || targetWidth <= 0 {
		return
	}
	base := 0
	for i, line := range l.Lines {
		n := len(line.Glyphs)
		if i == len(l.Lines)-1 || n == 0 {
			base += n
			continue
		}
		last := lastStretchableIndex(line.Glyphs)
		if last < 0 {
			base += n
			continue
		}

		width, _ := l.calculateLineSizeAt(i, base)
		lastAdvance := l.Advances[base+last]
		lastGlyphWidth := singleGlyphWidth(l, line.Glyphs[last], lastAdvance)
		withoutLast := width - lastGlyphWidth
		if withoutLast <= 0 {
			base += n
			continue
		}

		factor := (targetWidth - lastGlyphWidth) / withoutLast
		for j := 0; j < n; j++ {
			if j == last {
				continue
			}
			if l.Justify == JustifySpaceOnly && !unicode.IsSpace(glyph.ExtractChar(line.Glyphs[j])) {
				continue
			}
			l.Advances[base+j] *= factor
		}
		base += n
	}
	CalculateSize(l)
}

func singleGlyphWidth(l *Layout, g glyph.Glyph, scale float32) float32 {
	f := l.resolveFont(g)
	if f == nil {
		return 0
	}
	return XAdvance(f, f.ScaleX, g) * scale
}
