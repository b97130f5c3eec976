// Package font implements the Font/FontFamily data model: glyph regions
// within a texture atlas, kerning, per-font effect parameters, and the
// fixed 16-slot family of co-resident fonts a packed glyph's font index
// selects between. It also loads the Structured JSON descriptor format
// (plain, gzip, and LZMA-compressed) into that model and can fill in
// missing advance widths from a parsed TTF/OTF face for hybrid bitmap-
// plus-vector fonts (spec §1, §6.2). The atlas/texture/shader machinery
// that backs a live Font — and other wire formats such as AngelCode
// .fnt or SadConsole .font — are out of scope for this package.
package font

import "math"

// Region is a rectangular sub-region of a texture, plus the offset and
// advance metrics needed to position and step past one glyph.
type Region struct {
	// U, V, U2, V2 are the texture coordinates of the region.
	U, V, U2, V2 float32

	// OffsetX, OffsetY correct for whitespace trimmed during atlas packing.
	// NaN in OffsetX marks this region as a composed box-drawing/block
	// character: draw via the solid-block region and BOX_DRAWING instead.
	OffsetX, OffsetY float32

	// XAdvance is the horizontal cursor step for this glyph.
	XAdvance float32

	// Width, Height are the region's pixel dimensions in the source texture.
	Width, Height float32

	// IsColor marks a region as a full-color pictograph (an inline image
	// registered through AddImage/AddAtlas) rather than a single-channel
	// glyph. DrawGlyph skips the foreground tint multiply for these
	// regions so a color emoji keeps its own colors regardless of the
	// surrounding text's color (spec §3.3).
	IsColor bool
}

// IsComposedBlock reports whether this region is the NaN-offset sentinel
// for a box-drawing/block-element glyph (spec §3.3, §4.8).
func (r Region) IsComposedBlock() bool {
	return math.IsNaN(float64(r.OffsetX))
}

// MaxDimension is max(Width, Height), used to scale inline images to
// line height (spec §3.3).
func (r Region) MaxDimension() float32 {
	if r.Width > r.Height {
		return r.Width
	}
	return r.Height
}

// ComposedBlockRegion returns a Region marked as a composed box-drawing
// glyph (OffsetX = NaN).
func ComposedBlockRegion(xAdvance float32) Region {
	return Region{OffsetX: float32(math.NaN()), XAdvance: xAdvance}
}
