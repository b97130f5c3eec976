package render

import (
	"github.com/gogpu/styledtext/font"
	"github.com/gogpu/styledtext/glyph"
)

// fancyLineSteps is how many xPx/yPx quads draw_fancy_line walks
// through for every decoration — wide enough to span one cell at the
// typical logical-pixel size.
const fancyLineSteps = 10

// fancyLineStep reports whether mode draws a quad at step i, and the
// (x, y) shift — in logical pixels — that step should be drawn at,
// following the per-mode pattern table (spec §4.7).
func fancyLineStep(m glyph.Mode, i int) (dx, dy int, draw bool) {
	switch m {
	case glyph.ModeError:
		return 0, i & 1, true
	case glyph.ModeContext:
		return (i & 2) * -1, -(i & 1), true
	case glyph.ModeWarn:
		w := ^i & 1
		return w, w, true
	case glyph.ModeSuggest:
		if i&(i>>1)&1 != 0 {
			return 0, 0, false
		}
		return 0, 0, true
	case glyph.ModeNote:
		return 0, (i >> 1) & 1, true
	default:
		return 0, 0, false
	}
}

// FancyLineColor resolves the packed color a fancy-line mode draws with.
func FancyLineColor(effects font.EffectColors, m glyph.Mode) uint32 {
	switch m {
	case glyph.ModeError:
		return effects.Error
	case glyph.ModeContext:
		return effects.Context
	case glyph.ModeWarn:
		return effects.Warn
	case glyph.ModeSuggest:
		return effects.Suggest
	case glyph.ModeNote:
		return effects.Note
	default:
		return 0
	}
}

// DrawFancyLine walks fancyLineSteps positions along the decoration
// baseline at (baseX, baseY), each xPx/yPx wide/tall, shifted per
// fancyLineStep, and emits one quad per step that should draw (spec
// §4.7's ERROR/CONTEXT/WARN/SUGGEST/NOTE decoration table).
func DrawFancyLine(m glyph.Mode, baseX, baseY, xPx, yPx float32, emit func(x, y, w, h float32)) {
	for i := 0; i < fancyLineSteps; i++ {
		dx, dy, draw := fancyLineStep(m, i)
		if !draw {
			continue
		}
		x := baseX + float32(i)*xPx + float32(dx)*xPx
		y := baseY + float32(dy)*yPx
		emit(x, y, xPx, yPx)
	}
}
