package render

import (
	"github.com/gogpu/styledtext/font"
	"github.com/gogpu/styledtext/glyph"
)

// drawPrePasses draws every pass that must appear visually behind the
// main glyph quad, in the order spec §4.7's table lists them: drop
// shadow, the black-outline ring, halo/neon, then shiny.
func (r *Renderer) drawPrePasses(f *font.Font, g glyph.Glyph, mode glyph.Mode, tex Texture, region font.Region, xc, yt, w, h, rotX, rotY, rotationDeg float32) {
	if mode == glyph.ModeDropShadow {
		r.Batch.DrawVertices(tex, rotatedQuad(xc+f.DropShadowOffsetX, yt+f.DropShadowOffsetY, w, h, region.U, region.V, region.U2, region.V2, f.Effects.Shadow, rotX, rotY, rotationDeg))
	}

	if glyph.HasOutline(g) {
		r.drawOutlineRing(f, g, mode, tex, region, xc, yt, w, h, rotX, rotY, rotationDeg)
	}

	if mode == glyph.ModeHalo || mode == glyph.ModeNeon {
		r.drawGlowCross(f, tex, region, xc, yt, w, h, rotX, rotY, rotationDeg)
	}

	if mode == glyph.ModeShiny {
		r.Batch.DrawVertices(tex, rotatedQuad(xc, yt-1.5, w, h, region.U, region.V, region.U2, region.V2, f.Effects.White, rotX, rotY, rotationDeg))
	}
}

// outlineColor picks the ring color: a mode-selected override (red,
// yellow, blue, white) or PACKED_BLACK otherwise (spec §4.7).
func outlineColor(f *font.Font, mode glyph.Mode) uint32 {
	switch mode {
	case glyph.ModeRedOutline:
		return f.Effects.Error
	case glyph.ModeYellowOutline:
		return f.Effects.Warn
	case glyph.ModeBlueOutline:
		return f.Effects.Note
	case glyph.ModeWhiteOutline:
		return f.Effects.White
	default:
		return f.Effects.Black
	}
}

func (r *Renderer) drawOutlineRing(f *font.Font, g glyph.Glyph, mode glyph.Mode, tex Texture, region font.Region, xc, yt, w, h, rotX, rotY, rotationDeg float32) {
	color := outlineColor(f, mode)
	radius := f.OutlineStrength
	bold := glyph.ExtractStyle(g)&glyph.StyleBold != 0

	emit := func(dx, dy int) {
		if dx == 0 && dy == 0 {
			return
		}
		r.Batch.DrawVertices(tex, rotatedQuad(xc+float32(dx)*radius, yt+float32(dy)*radius, w, h, region.U, region.V, region.U2, region.V2, color, rotX, rotY, rotationDeg))
	}

	if !bold {
		for _, dy := range []int{-1, 0, 1} {
			for _, dx := range []int{-1, 0, 1} {
				emit(dx, dy)
			}
		}
		return
	}
	for _, dy := range []int{-1, 0, 1} {
		for _, dx := range []int{-2, -1, 0, 1, 2} {
			emit(dx, dy)
		}
	}
}

// drawGlowCross draws the 11x7 cross-shaped halo/neon kernel at 3x the
// outline radius, with alpha scaled by GlowStrength (spec §4.7).
func (r *Renderer) drawGlowCross(f *font.Font, tex Texture, region font.Region, xc, yt, w, h, rotX, rotY, rotationDeg float32) {
	radius := f.OutlineStrength * 3
	color := scaleAlpha(f.Effects.Halo, f.GlowStrength)
	for dx := -5; dx <= 5; dx++ {
		if dx == 0 {
			continue
		}
		r.Batch.DrawVertices(tex, rotatedQuad(xc+float32(dx)*radius, yt, w, h, region.U, region.V, region.U2, region.V2, color, rotX, rotY, rotationDeg))
	}
	for dy := -3; dy <= 3; dy++ {
		if dy == 0 {
			continue
		}
		r.Batch.DrawVertices(tex, rotatedQuad(xc, yt+float32(dy)*radius, w, h, region.U, region.V, region.U2, region.V2, color, rotX, rotY, rotationDeg))
	}
}

func scaleAlpha(color uint32, factor float32) uint32 {
	a := float32(color&0xFF) / 255 * factor
	return (color &^ 0xFF) | clampByte(a)
}

// drawDecorations draws underline, strikethrough, and the five fancy-
// line modes, positioned in line-height fractions from the Zen metrics
// and composed with the glyph's own rotation (spec §4.7).
func (r *Renderer) drawDecorations(f *font.Font, g glyph.Glyph, mode glyph.Mode, xc, yt, w, h, rotX, rotY, rotationDeg float32) {
	style := glyph.ExtractStyle(g)
	color := glyph.ExtractColor(g)

	if style&glyph.StyleUnderline != 0 {
		r.drawZenBar(xc, yt, w, h, rotX, rotY, rotationDeg, color,
			f.Zen.UnderX, f.Zen.UnderY, f.Zen.UnderLength, f.Zen.UnderBreadth)
	}
	if style&glyph.StyleStrikethrough != 0 {
		r.drawZenBar(xc, yt, w, h, rotX, rotY, rotationDeg, color,
			f.Zen.StrikeX, f.Zen.StrikeY, f.Zen.StrikeLength, f.Zen.StrikeBreadth)
	}
	if mode.IsFancyLine() {
		lineColor := FancyLineColor(f.Effects, mode)
		xPx, yPx := w/20, h/20
		baseX := xc + f.Zen.UnderX*w
		baseY := yt + f.Zen.UnderY*h
		DrawFancyLine(mode, baseX, baseY, xPx, yPx, func(x, y, qw, qh float32) {
			r.Batch.DrawVertices(nil, solidQuad(x, y, qw, qh, lineColor))
		})
	}
}

func (r *Renderer) drawZenBar(xc, yt, w, h, rotX, rotY, rotationDeg float32, color uint32, fx, fy, flen, fbreadth float32) {
	x := xc + fx*w
	y := yt + fy*h
	bw := flen * w
	bh := fbreadth * h
	r.Batch.DrawVertices(nil, rotatedQuad(x, y, bw, bh, 0, 0, 1, 1, color, rotX, rotY, rotationDeg))
}
