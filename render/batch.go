// Package render implements the per-glyph draw procedure: resolving a
// packed glyph to a texture region, composing the outline/shadow/glow/
// shiny/bold passes around it, the decoration (underline, strikethrough,
// fancy-line) passes that follow, box-drawing composition, and the
// distance-field crispness bookkeeping a resize must keep in sync
// (spec §4.7-§4.9).
package render

import "errors"

// ErrNilBatch is returned by DrawGlyph when called with a nil Batch.
var ErrNilBatch = errors.New("render: batch must not be nil")

// Vertex is one corner of a quad: world-space position, a packed
// RGBA8888 color reinterpreted as a float32, and texture coordinates
// (spec §6.3 "four vertices, each (x, y, packed_color_f32, u, v)").
type Vertex struct {
	X, Y  float32
	Color float32
	U, V  float32
}

// Quad is the four vertices draw_vertices submits for one glyph or
// decoration rectangle, in the order top-left, top-right, bottom-right,
// bottom-left.
type Quad [4]Vertex

// Texture identifies what a Quad samples from. DrawGlyph passes the
// glyph's codepoint for atlas glyphs and nil for solid-color quads, since
// a Region carries no texture handle; render only ever compares two
// Textures for equality, to decide whether the distance-field shader
// needs switching (spec §4.7 step 3).
type Texture any

// Shader identifies a bound shader program. Batch implementations are
// free to use any comparable handle.
type Shader any

// Batch is the pluggable drawing backend the renderer submits quads to.
// It mirrors what spec §6.3 requires of a "batch-like primitive":
// shader get/set, a flush hook, float uniform assignment,
// one quad per draw call, and the active tint color (needed to multiply
// in bold's alpha^1.5 adjustment).
//
// Implementations are expected to live in a GPU backend package and be
// supplied by the caller — this package never constructs one itself.
type Batch interface {
	// SetShader binds the shader used for subsequent DrawVertices calls.
	SetShader(s Shader)
	// Shader returns the currently bound shader.
	Shader() Shader
	// Flush dispatches any buffered quads to the GPU.
	Flush()
	// SetUniformF assigns a float uniform on the currently bound shader.
	SetUniformF(name string, v float32)
	// DrawVertices submits one quad sampling the given texture.
	DrawVertices(tex Texture, q Quad)
	// Color returns the batch's current tint color as RGBA in [0,1].
	Color() (r, g, b, a float32)
}
