package render

import (
	"testing"

	"github.com/gogpu/styledtext/font"
	"github.com/gogpu/styledtext/glyph"
)

type fakeBatch struct {
	shader  Shader
	quads   []Quad
	uniform map[string]float32
	flushed int
	r, g, b, a float32
}

func newFakeBatch() *fakeBatch {
	return &fakeBatch{uniform: make(map[string]float32), r: 1, g: 1, b: 1, a: 1}
}

func (b *fakeBatch) SetShader(s Shader)             { b.shader = s }
func (b *fakeBatch) Shader() Shader                  { return b.shader }
func (b *fakeBatch) Flush()                          { b.flushed++ }
func (b *fakeBatch) SetUniformF(name string, v float32) { b.uniform[name] = v }
func (b *fakeBatch) DrawVertices(tex Texture, q Quad) { b.quads = append(b.quads, q) }
func (b *fakeBatch) Color() (float32, float32, float32, float32) {
	return b.r, b.g, b.b, b.a
}

func testFont() *font.Font {
	f := font.New()
	f.CellWidth, f.CellHeight = 16, 16
	f.OriginalCellWidth, f.OriginalCellHeight = 16, 16
	f.Mapping[' '] = font.Region{XAdvance: 16, Width: 16, Height: 16}
	f.Mapping['A'] = font.Region{XAdvance: 16, Width: 16, Height: 16}
	_ = f.EnsureBaseGlyphs()
	return f
}

func TestDrawGlyphReturnsScaledAdvance(t *testing.T) {
	f := testFont()
	b := newFakeBatch()
	r := NewRenderer(b, 800, 600)

	g := glyph.Pack(0xFFFFFFFF, 0, glyph.ModeNone, 0, 'A')
	adv, err := r.DrawGlyph(nil, f, g, DrawOptions{SizingX: 1, SizingY: 1, AdvanceMultiplier: 1})
	if err != nil {
		t.Fatalf("DrawGlyph error: %v", err)
	}
	if adv != 16 {
		t.Errorf("advance = %v, want 16", adv)
	}
	if len(b.quads) == 0 {
		t.Errorf("expected at least one quad drawn")
	}
}

func TestDrawGlyphNilBatchErrors(t *testing.T) {
	r := &Renderer{}
	_, err := r.DrawGlyph(nil, testFont(), glyph.Pack(0, 0, glyph.ModeNone, 0, 'A'), DrawOptions{})
	if err != ErrNilBatch {
		t.Fatalf("err = %v, want ErrNilBatch", err)
	}
}

func TestDrawGlyphBoldDrawsFourExtraQuads(t *testing.T) {
	f := testFont()
	b := newFakeBatch()
	r := NewRenderer(b, 800, 600)

	g := glyph.Pack(0xFFFFFFFF, glyph.StyleBold, glyph.ModeNone, 0, 'A')
	_, _ = r.DrawGlyph(nil, f, g, DrawOptions{SizingX: 1, SizingY: 1, AdvanceMultiplier: 1})
	// main quad + 4 bold offsets = 5
	if len(b.quads) != 5 {
		t.Errorf("quad count = %d, want 5 (main + 4 bold passes)", len(b.quads))
	}
}

func TestDrawGlyphBoxDrawingDispatches(t *testing.T) {
	f := testFont()
	b := newFakeBatch()
	r := NewRenderer(b, 800, 600)

	f.Mapping[0x2502] = font.ComposedBlockRegion(f.CellWidth) // vertical light bar, composed via box-drawing
	g := glyph.Pack(0xFFFFFFFF, 0, glyph.ModeNone, 0, 0x2502)
	adv, err := r.DrawGlyph(nil, f, g, DrawOptions{SizingX: 1, SizingY: 1, AdvanceMultiplier: 1})
	if err != nil {
		t.Fatalf("DrawGlyph error: %v", err)
	}
	if adv != f.CellWidth {
		t.Errorf("box-drawing advance = %v, want CellWidth %v", adv, f.CellWidth)
	}
	if len(b.quads) == 0 {
		t.Errorf("expected box-drawing quads to be emitted")
	}
}

func TestDrawGlyphColorGlyphSkipsTint(t *testing.T) {
	f := testFont()
	code, ok := f.AddImage("parrot", 16, 16)
	if !ok {
		t.Fatalf("AddImage failed")
	}
	b := newFakeBatch()
	b.r, b.g, b.b, b.a = 0, 1, 0, 1 // a foreground tint that would visibly discolor a non-color glyph
	r := NewRenderer(b, 800, 600)

	g := glyph.Pack(0xFFFFFFFF, 0, glyph.ModeNone, 0, code)
	if _, err := r.DrawGlyph(nil, f, g, DrawOptions{SizingX: 1, SizingY: 1, AdvanceMultiplier: 1}); err != nil {
		t.Fatalf("DrawGlyph error: %v", err)
	}
	if len(b.quads) == 0 {
		t.Fatalf("expected a quad to be drawn")
	}
	if b.quads[0][0].Color != colorToFloat(0xFFFFFFFF) {
		t.Errorf("color-glyph tint = %v, want opaque white passthrough", b.quads[0][0].Color)
	}
}

func TestBoxDrawingRectsKnownCodepoints(t *testing.T) {
	if BoxDrawingRects(0x2500) == nil {
		t.Errorf("U+2500 should resolve to rectangles")
	}
	if BoxDrawingRects(0x2588) == nil {
		t.Errorf("full block U+2588 should resolve to rectangles")
	}
	if BoxDrawingRects('A') != nil {
		t.Errorf("'A' should not resolve as a box-drawing glyph")
	}
}

func TestResizeDistanceFieldScalesCrispness(t *testing.T) {
	f := testFont()
	f.DistanceField = font.SDF
	f.DistanceFieldCrispness = 2
	r := NewRenderer(newFakeBatch(), 800, 600)

	got := r.ResizeDistanceField(f, 1600, 1200)
	if got != 4 {
		t.Errorf("ActualCrispness = %v, want 4 (2x backbuffer ratio)", got)
	}
}

func TestFancyLineErrorZigZag(t *testing.T) {
	var ys []float32
	DrawFancyLine(glyph.ModeError, 0, 0, 1, 1, func(x, y, w, h float32) {
		ys = append(ys, y)
	})
	if len(ys) != fancyLineSteps {
		t.Fatalf("expected %d steps, got %d", fancyLineSteps, len(ys))
	}
	if ys[0] != 0 || ys[1] != 1 {
		t.Errorf("zig-zag pattern wrong: ys[0]=%v ys[1]=%v", ys[0], ys[1])
	}
}
