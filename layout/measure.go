package layout

import (
	"github.com/gogpu/styledtext/font"
	"github.com/gogpu/styledtext/glyph"
)

// inlineImageStart/End bound the private-use codepoint range an inline
// image's codepoint falls in (spec §3.3, §6.4, GLOSSARY "Inline image").
const (
	inlineImageStart = 0xE000
	inlineImageEnd   = 0xF7FF
)

// isInlineImage reports whether a codepoint is an inline-image glyph.
func isInlineImage(r rune) bool {
	return r >= inlineImageStart && r <= inlineImageEnd
}

// resolveFont picks the Font a glyph's font-index field selects,
// falling back to l.Font when there is no Family (spec §4.2).
func (l *Layout) resolveFont(g glyph.Glyph) *font.Font {
	if l.Family != nil {
		if f := l.Family.At(glyph.ExtractFontIndex(g)); f != nil {
			return f
		}
	}
	return l.Font
}

// XAdvance computes the horizontal step for one glyph: the region's
// x_advance scaled by scaleX, halved for superscript on a variable-width
// font, or — for inline images — cellHeight/region.MaxDimension() times
// the font's inline-image stretch factor (spec §4.6).
func XAdvance(f *font.Font, scaleX float32, g glyph.Glyph) float32 {
	if f == nil {
		return 0
	}
	cp := glyph.ExtractChar(g)
	region, ok := f.Mapping[cp]
	if !ok {
		region = f.Mapping[' ']
	}

	if isInlineImage(cp) && region.MaxDimension() > 0 {
		scale := f.CellHeight / region.MaxDimension() * f.InlineImageStretch
		return region.XAdvance * scale
	}

	adv := region.XAdvance * scaleX
	if glyph.ExtractScript(g) == glyph.ScriptSuperscript && !f.IsMono {
		adv /= 2
	}
	return adv
}

// calculateLineSizeAt measures one line given the index of its first
// glyph in the Layout's flattened Advances/Sizing arrays.
func (l *Layout) calculateLineSizeAt(lineIdx, base int) (width, height float32) {
	line := &l.Lines[lineIdx]
	var prev rune
	havePrev := false
	for j, g := range line.Glyphs {
		f := l.resolveFont(g)
		if f == nil {
			continue
		}
		scale := float32(1)
		if base+j < len(l.Advances) {
			scale = l.Advances[base+j]
		}
		adv := XAdvance(f, f.ScaleX, g)
		if havePrev {
			if k, ok := f.KerningFor(prev, glyph.ExtractChar(g)); ok {
				adv += k
			}
		}
		width += adv * scale
		h := f.CellHeight * scale
		if h > height {
			height = h
		}
		prev = glyph.ExtractChar(g)
		havePrev = true
	}
	return width, height
}

// CalculateSize recomputes Width/Height for every line and returns the
// overall (maximum line) width (spec §4.6).
func CalculateSize(l *Layout) float32 {
	var overall float32
	base := 0
	for i := range l.Lines {
		w, h := l.calculateLineSizeAt(i, base)
		l.Lines[i].Width = w
		l.Lines[i].Height = h
		if w > overall {
			overall = w
		}
		base += len(l.Lines[i].Glyphs)
	}
	return overall
}

// CalculateXAdvances appends to out the absolute, monotonically
// increasing x-offset of every glyph (including invisible ones),
// resetting to 0 at the start of each line, and returns the extended
// slice — used by caret positioning
// in the widget layer, which is itself out of this core's scope (spec
// §4.6).
func CalculateXAdvances(l *Layout, out []float32) []float32 {
	base := 0
	for _, line := range l.Lines {
		var x float32
		for j, g := range line.Glyphs {
			out = append(out, x)
			f := l.resolveFont(g)
			scale := float32(1)
			if base+j < len(l.Advances) {
				scale = l.Advances[base+j]
			}
			if f != nil {
				x += XAdvance(f, f.ScaleX, g) * scale
			}
		}
		base += len(line.Glyphs)
	}
	return out
}
