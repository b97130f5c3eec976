package render

import (
	"github.com/gogpu/styledtext/font"
	"github.com/gogpu/styledtext/internal/obslog"
)

// Renderer owns the per-draw scratch state a single render thread needs:
// the batch it submits quads to, the reference backbuffer size distance-
// field crispness is computed against, and the texture/shader state the
// draw procedure must track between calls. None of this is package-level
// mutable state — spec §9's "static mutable latest_texture" note is
// honored by making it a field here instead, so two Renderers (e.g. one
// per window) never interfere with each other.
type Renderer struct {
	Batch Batch

	// BackbufferWidth/Height is the reference resolution
	// ResizeDistanceField's ratio is computed against (spec §4.9).
	BackbufferWidth, BackbufferHeight float32
	// Viewport is an optional (x, y, w, h) sub-rectangle of the
	// backbuffer; zero value means "the whole backbuffer".
	Viewport [4]float32

	lastTexture     Texture
	haveLastTexture bool
	shaderSuspended bool
	suspendedShader Shader
}

// NewRenderer returns a Renderer bound to b, with backbufferW/H recorded
// as the reference resolution for distance-field crispness.
func NewRenderer(b Batch, backbufferW, backbufferH float32) *Renderer {
	return &Renderer{Batch: b, BackbufferWidth: backbufferW, BackbufferHeight: backbufferH}
}

// ResizeDistanceField recomputes f.ActualCrispness after a window or
// render-target resize to (w, h), optionally updating the tracked
// viewport. This MUST be called on every resize or SDF/MSDF text
// becomes blurry or jagged relative to the new backbuffer size (spec
// §4.9).
func (r *Renderer) ResizeDistanceField(f *font.Font, w, h float32, viewport ...[4]float32) float32 {
	if len(viewport) > 0 {
		r.Viewport = viewport[0]
	}
	ratio := ratioOf(w, r.BackbufferWidth)
	if hRatio := ratioOf(h, r.BackbufferHeight); hRatio > ratio {
		ratio = hRatio
	}
	f.ActualCrispness = f.DistanceFieldCrispness * ratio
	obslog.Logger().Debug("render: distance field resized", "width", w, "height", h, "crispness", f.ActualCrispness)
	return f.ActualCrispness
}

func ratioOf(v, reference float32) float32 {
	if reference <= 0 {
		return 1
	}
	return v / reference
}

// smoothing computes the u_smoothing uniform value for f at its current
// cell size: 4x actual crispness scaled by the larger of the two cell-
// size ratios, or 8x for MSDF (spec §4.9).
func smoothing(f *font.Font) float32 {
	ratio := ratioOf(f.CellHeight, f.OriginalCellHeight)
	if wRatio := ratioOf(f.CellWidth, f.OriginalCellWidth); wRatio > ratio {
		ratio = wRatio
	}
	return f.DistanceField.SmoothingMultiplier() * f.ActualCrispness * ratio
}

// EnableShader binds f's shader (nil for Standard rendering) and, for a
// distance-field font, sets the u_smoothing uniform derived from its
// current crispness (spec §4.9, §6.4 "distance_field").
func (r *Renderer) EnableShader(f *font.Font, shader Shader) {
	if !f.DistanceField.IsDistanceField() {
		r.Batch.SetShader(nil)
		return
	}
	r.Batch.SetShader(shader)
	u := smoothing(f)
	r.Batch.SetUniformF("u_smoothing", u)
	obslog.Logger().Debug("render: distance field shader enabled", "type", f.DistanceField.String(), "u_smoothing", u)
}

// PauseDistanceFieldShader temporarily unbinds the distance-field shader
// so a standard (non-SDF) quad — an inline image, typically — renders
// correctly in between SDF glyphs (spec §4.7 step 3).
func (r *Renderer) PauseDistanceFieldShader() {
	if r.shaderSuspended {
		return
	}
	r.suspendedShader = r.Batch.Shader()
	r.Batch.SetShader(nil)
	r.shaderSuspended = true
}

// ResumeDistanceFieldShader restores the shader PauseDistanceFieldShader
// suspended and refreshes its smoothing uniform.
func (r *Renderer) ResumeDistanceFieldShader(f *font.Font) {
	if !r.shaderSuspended {
		return
	}
	r.shaderSuspended = false
	r.EnableShader(f, r.suspendedShader)
}

// noteTexture reports whether tex differs from the texture drawn by the
// previous call (spec §4.7 step 3's "renderer's last-drawn texture"),
// then records tex as the new last-drawn texture.
func (r *Renderer) noteTexture(tex Texture) (changed bool) {
	changed = !r.haveLastTexture || tex != r.lastTexture
	r.lastTexture = tex
	r.haveLastTexture = true
	return changed
}
