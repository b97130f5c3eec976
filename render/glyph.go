package render

import (
	"math"
	"unicode"

	"github.com/gogpu/styledtext/font"
	"github.com/gogpu/styledtext/glyph"
)

const (
	inlineImageStart = 0xE000
	inlineImageEnd   = 0xF7FF
)

func isInlineImage(r rune) bool {
	return r >= inlineImageStart && r <= inlineImageEnd
}

// DrawOptions carries every per-call parameter draw_glyph takes besides
// the glyph itself (spec §4.7's signature).
type DrawOptions struct {
	X, Y               float32
	RotationDeg        float32
	SizingX, SizingY   float32
	BackgroundRGBA8888 uint32
	AdvanceMultiplier  float32
}

func resolveFont(fam *font.Family, fallback *font.Font, g glyph.Glyph) *font.Font {
	if fam != nil {
		if f := fam.At(glyph.ExtractFontIndex(g)); f != nil {
			return f
		}
	}
	return fallback
}

// DrawGlyph runs the full draw procedure for one packed glyph: resolving
// its font and region, switching the distance-field shader around
// texture changes, computing scale/tint/rotation origin, dispatching
// box-drawing glyphs to DrawBlockSequence, drawing the background, pre-
// passes (drop shadow, outline ring, halo/neon, shiny), the main quad,
// the bold post-pass, and the underline/strikethrough/fancy-line
// decorations. It returns the width consumed (spec §4.7).
func (r *Renderer) DrawGlyph(fam *font.Family, fallback *font.Font, g glyph.Glyph, opt DrawOptions) (float32, error) {
	if r.Batch == nil {
		return 0, ErrNilBatch
	}
	f := resolveFont(fam, fallback, g)
	if f == nil {
		return 0, nil
	}

	mode := glyph.ExtractMode(g)
	cp := glyph.ExtractChar(g)
	sizingY := opt.SizingY
	if mode == glyph.ModeSmallCaps {
		cp = unicode.ToUpper(cp)
		sizingY *= 0.7
	}

	region, ok := f.Mapping[cp]
	if !ok {
		region = f.Mapping[' ']
	}

	if region.IsComposedBlock() {
		if r.noteTexture(nil) {
			r.PauseDistanceFieldShader()
		}
		cellW, cellH := f.CellWidth*opt.SizingX, f.CellHeight*sizingY
		DrawBlockSequence(cp, opt.X, opt.Y, cellW, cellH, f.BoxDrawingBreadth, opt.RotationDeg, func(x, y, w, h float32) {
			r.Batch.DrawVertices(nil, solidQuad(x, y, w, h, f.Effects.White))
		})
		return f.CellWidth, nil
	}

	tex := Texture(cp) // the codepoint stands in for a texture handle, so each new codepoint counts as a texture change
	if r.noteTexture(tex) {
		if f.DistanceField.IsDistanceField() {
			r.ResumeDistanceFieldShader(f)
		} else {
			r.PauseDistanceFieldShader()
		}
	}

	br, bgc, bb, ba := r.Batch.Color()
	var tint uint32
	if region.IsColor {
		tint = toRGBA8888(1, 1, 1, ba)
	} else {
		tint = tintColor(glyph.ExtractColor(g), br, bgc, bb, ba, glyph.ExtractStyle(g)&glyph.StyleBold != 0)
	}

	scaleX := f.ScaleX
	if isInlineImage(cp) && region.MaxDimension() > 0 {
		scaleX = f.CellHeight / region.MaxDimension() * f.InlineImageStretch
	}
	adv := region.XAdvance * scaleX
	if glyph.ExtractScript(g) == glyph.ScriptSuperscript && !f.IsMono {
		adv /= 2
	}

	w := region.Width * opt.SizingX * scaleX
	h := region.Height * sizingY * f.ScaleY
	rotX, rotY := opt.X+w/2, opt.Y+h/2

	xc := opt.X + region.OffsetX*opt.SizingX*scaleX
	yt := opt.Y - region.OffsetY*sizingY*f.ScaleY - f.Descent
	switch glyph.ExtractScript(g) {
	case glyph.ScriptSubscript:
		w, h = w/2, h/2
		yt += h
	case glyph.ScriptMidscript:
		w, h = w/2, h/2
		yt += h / 2
	case glyph.ScriptSuperscript:
		w, h = w/2, h/2
	}
	if glyph.ExtractStyle(g)&glyph.StyleOblique != 0 {
		xc += h * f.ObliqueStrength * 0.5
	}

	if opt.BackgroundRGBA8888 != 0 {
		r.Batch.DrawVertices(nil, solidQuad(xc, yt, w, h, opt.BackgroundRGBA8888))
	}

	if mode == glyph.ModeJostle {
		dx, dy := jostleOffset(opt.X, opt.Y, cp)
		xc += dx
		yt += dy
	}

	r.drawPrePasses(f, g, mode, tex, region, xc, yt, w, h, rotX, rotY, opt.RotationDeg)

	r.Batch.DrawVertices(tex, rotatedQuad(xc, yt, w, h, region.U, region.V, region.U2, region.V2, tint, rotX, rotY, opt.RotationDeg))

	if glyph.ExtractStyle(g)&glyph.StyleBold != 0 {
		shift := f.BoldStrength * 0.4
		for _, dx := range []float32{-2 * shift, -shift, shift, 2 * shift} {
			r.Batch.DrawVertices(tex, rotatedQuad(xc+dx, yt, w, h, region.U, region.V, region.U2, region.V2, tint, rotX, rotY, opt.RotationDeg))
		}
	}

	r.drawDecorations(f, g, mode, xc, yt, w, h, rotX, rotY, opt.RotationDeg)

	return adv * opt.AdvanceMultiplier, nil
}

func tintColor(glyphColor uint32, br, bg, bb, ba float32, bold bool) uint32 {
	alpha := ba
	if bold {
		alpha = float32(math.Pow(float64(alpha), 1.5))
	}
	gr := float32(glyphColor>>24&0xFF) / 255 * br
	gg := float32(glyphColor>>16&0xFF) / 255 * bg
	gb := float32(glyphColor>>8&0xFF) / 255 * bb
	ga := float32(glyphColor&0xFF) / 255 * alpha
	return toRGBA8888(gr, gg, gb, ga)
}

func toRGBA8888(r, g, b, a float32) uint32 {
	return clampByte(r)<<24 | clampByte(g)<<16 | clampByte(b)<<8 | clampByte(a)
}

func clampByte(v float32) uint32 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint32(v * 255)
}

// jostleOffset deterministically hashes (x, y, codepoint) to an offset
// within +/-2 logical pixels on each axis (spec §4.7 step 9).
func jostleOffset(x, y float32, cp rune) (dx, dy float32) {
	h := uint32(int32(x))*374761393 + uint32(int32(y))*668265263 + uint32(cp)*2246822519
	h = (h ^ (h >> 13)) * 3266489917
	h ^= h >> 16
	dx = float32(h%5) - 2
	dy = float32((h/5)%5) - 2
	return dx, dy
}

func solidQuad(x, y, w, h float32, color uint32) Quad {
	c := colorToFloat(color)
	return Quad{
		{X: x, Y: y, Color: c, U: 0, V: 0},
		{X: x + w, Y: y, Color: c, U: 1, V: 0},
		{X: x + w, Y: y + h, Color: c, U: 1, V: 1},
		{X: x, Y: y + h, Color: c, U: 0, V: 1},
	}
}

func rotatedQuad(x, y, w, h, u, v, u2, v2 float32, color uint32, rotX, rotY, rotationDeg float32) Quad {
	c := colorToFloat(color)
	corners := [4][2]float32{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}}
	uvs := [4][2]float32{{u, v}, {u2, v}, {u2, v2}, {u, v2}}
	var q Quad
	for i, p := range corners {
		px, py := p[0], p[1]
		if rotationDeg != 0 {
			px, py = rotatePoint(px, py, rotX, rotY, rotationDeg)
		}
		q[i] = Vertex{X: px, Y: py, Color: c, U: uvs[i][0], V: uvs[i][1]}
	}
	return q
}

// colorToFloat reinterprets a packed RGBA8888 color as the float32 the
// vertex format stores it as (spec §6.3 "packed_color_f32"): the batch's
// own shader samples the bits back out, so a bit-preserving conversion
// is all that's needed here.
func colorToFloat(c uint32) float32 {
	return math.Float32frombits(c)
}
