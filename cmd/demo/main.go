// Command demo lays out a markup string and draws it to a PNG through
// the render package's Batch interface, using a small CPU-rasterizing
// Batch implementation as a stand-in for a real GPU backend.
package main

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log"
	"math"
	"os"

	"github.com/gogpu/styledtext/font"
	"github.com/gogpu/styledtext/layout"
	"github.com/gogpu/styledtext/render"
)

// imageBatch rasterizes every quad as a flat-colored rectangle onto an
// *image.RGBA. It ignores texture identity and UV coordinates: without a
// real atlas there is nothing to sample, so every quad becomes a solid
// fill in its tint color, which is enough to see layout and decoration
// placement.
type imageBatch struct {
	img       *image.RGBA
	shader    render.Shader
	r, g, b, a float32
}

func newImageBatch(img *image.RGBA) *imageBatch {
	return &imageBatch{img: img, r: 1, g: 1, b: 1, a: 1}
}

func (b *imageBatch) SetShader(s render.Shader) { b.shader = s }
func (b *imageBatch) Shader() render.Shader      { return b.shader }
func (b *imageBatch) Flush()                     {}
func (b *imageBatch) SetUniformF(string, float32) {}

func (b *imageBatch) DrawVertices(_ render.Texture, q render.Quad) {
	minX, minY, maxX, maxY := q[0].X, q[0].Y, q[0].X, q[0].Y
	for _, v := range q[1:] {
		minX, maxX = minf(minX, v.X), maxf(maxX, v.X)
		minY, maxY = minf(minY, v.Y), maxf(maxY, v.Y)
	}
	c := colorFromPacked(q[0].Color)
	draw.Draw(b.img, image.Rect(int(minX), int(minY), int(maxX)+1, int(maxY)+1), &image.Uniform{C: c}, image.Point{}, draw.Over)
}

func (b *imageBatch) Color() (float32, float32, float32, float32) { return b.r, b.g, b.b, b.a }

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func colorFromPacked(bits float32) color.RGBA {
	packed := math.Float32bits(bits)
	return color.RGBA{
		R: uint8(packed >> 24),
		G: uint8(packed >> 16),
		B: uint8(packed >> 8),
		A: uint8(packed),
	}
}

func demoMonoFont() *font.Font {
	f := font.New()
	f.IsMono = true
	f.CellWidth, f.CellHeight = 14, 24
	f.OriginalCellWidth, f.OriginalCellHeight = 14, 24
	for r := rune(' '); r <= '~'; r++ {
		f.Mapping[r] = font.Region{Width: 12, Height: 20, XAdvance: 14}
	}
	_ = f.EnsureBaseGlyphs()
	return f
}

func main() {
	f := demoMonoFont()
	l := layout.NewLayout(f, nil)
	l.TargetWidth = 320

	layout.Markup(f, "Hello [RED]world[]! [*]bold[*] and [/]oblique[/] text wraps at the target width.", l)

	img := image.NewRGBA(image.Rect(0, 0, 360, 160))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: color.RGBA{A: 255}}, image.Point{}, draw.Src)

	batch := newImageBatch(img)
	r := render.NewRenderer(batch, 360, 160)

	y := float32(8)
	base := 0
	for _, line := range l.Lines {
		x := float32(4)
		for i, g := range line.Glyphs {
			scale := l.Advances[base+i]
			adv, err := r.DrawGlyph(l.Family, l.Font, g, render.DrawOptions{
				X: x, Y: y, SizingX: scale, SizingY: scale, AdvanceMultiplier: 1,
			})
			if err != nil {
				log.Fatalf("draw glyph %d: %v", i, err)
			}
			x += adv
		}
		base += len(line.Glyphs)
		y += line.Height
	}

	out, err := os.Create("demo.png")
	if err != nil {
		log.Fatalf("create demo.png: %v", err)
	}
	defer out.Close()
	if err := png.Encode(out, img); err != nil {
		log.Fatalf("encode demo.png: %v", err)
	}
	log.Printf("wrote demo.png: %d lines, %d glyphs", len(l.Lines), l.TotalGlyphs())
}
