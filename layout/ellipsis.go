package layout

import "github.com/gogpu/styledtext/glyph"

// ellipsisTemplate selects the glyph fields an ellipsis inherits from
// the glyph at the break point: color, font index, mode, and the
// black-outline flag — never script/strikethrough/underline/oblique/bold
// (spec §4.5, mask 0xFFFFFFFF81FF0000).
func ellipsisTemplate(g glyph.Glyph) glyph.Glyph {
	t := glyph.Pack(glyph.ExtractColor(g), 0, glyph.ExtractMode(g), glyph.ExtractFontIndex(g), 0)
	return glyph.ApplyOutline(t, glyph.HasOutline(g))
}

// HandleEllipsis is invoked once MaxLines has been reached and the last
// line still needs truncating. It looks for a break opportunity, computes
// how much width truncating there frees versus how much the configured
// Ellipsis string would add, and performs the truncate-then-append only
// if the result fits within targetWidth. It reports whether the ellipsis
// was applied (spec §4.5).
func (l *Layout) HandleEllipsis(targetWidth float32) bool {
	l.AtLimit = true
	if len(l.Lines) == 0 {
		return false
	}
	idx := len(l.Lines) - 1
	line := &l.Lines[idx]
	if len(line.Glyphs) == 0 {
		return false
	}
	base := l.CountGlyphsBeforeLine(idx)

	ellipsis := l.Ellipsis
	if ellipsis == "" {
		ellipsis = "…"
	}

	truncateAt := len(line.Glyphs)
	if bp, ok := findBreakPoint(line.Glyphs); ok {
		truncateAt = bp.keep
	}

	templateIdx := truncateAt
	if templateIdx >= len(line.Glyphs) {
		templateIdx = len(line.Glyphs) - 1
	}
	template := ellipsisTemplate(line.Glyphs[templateIdx])
	templateFont := l.resolveFont(template)

	var ellipsisWidth float32
	ellipsisGlyphs := make([]glyph.Glyph, 0, len([]rune(ellipsis)))
	for _, r := range ellipsis {
		g := glyph.ApplyChar(template, r)
		ellipsisGlyphs = append(ellipsisGlyphs, g)
		if templateFont != nil {
			ellipsisWidth += XAdvance(templateFont, templateFont.ScaleX, g)
		}
	}

	lineWidth, _ := l.calculateLineSizeAt(idx, base)
	tailWidthFrom := func(from int) float32 {
		var w float32
		for i := from; i < len(line.Glyphs); i++ {
			f := l.resolveFont(line.Glyphs[i])
			scale := float32(1)
			if base+i < len(l.Advances) {
				scale = l.Advances[base+i]
			}
			if f != nil {
				w += XAdvance(f, f.ScaleX, line.Glyphs[i]) * scale
			}
		}
		return w
	}

	// Walk backward from the break point (or the line's end) a glyph at
	// a time until the truncated line plus the ellipsis fits, matching
	// a single long word with no break opportunity at all.
	fits := false
	for {
		newWidth := lineWidth - tailWidthFrom(truncateAt) + ellipsisWidth
		if targetWidth <= 0 || newWidth <= targetWidth {
			fits = true
			break
		}
		if truncateAt == 0 {
			break
		}
		truncateAt--
	}
	if !fits {
		return false
	}

	keepAdvances := append([]float32(nil), l.Advances[base:base+truncateAt]...)
	keepSizing := append([][2]float32(nil), l.Sizing[base:base+truncateAt]...)
	for range ellipsisGlyphs {
		keepAdvances = append(keepAdvances, 1)
		keepSizing = append(keepSizing, [2]float32{1, 1})
	}

	afterBase := base + len(line.Glyphs)
	newAdvances := append([]float32(nil), l.Advances[:base]...)
	newAdvances = append(newAdvances, keepAdvances...)
	newAdvances = append(newAdvances, l.Advances[afterBase:]...)
	l.Advances = newAdvances

	newSizing := append([][2]float32(nil), l.Sizing[:base]...)
	newSizing = append(newSizing, keepSizing...)
	newSizing = append(newSizing, l.Sizing[afterBase:]...)
	l.Sizing = newSizing

	line.Glyphs = append(append([]glyph.Glyph(nil), line.Glyphs[:truncateAt]...), ellipsisGlyphs...)

	// Any lines after this one are dropped: ellipsis only ever applies to
	// the final visible line once MaxLines is reached.
	l.Lines = l.Lines[:idx+1]

	CalculateSize(l)
	return true
}
