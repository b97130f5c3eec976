package font

import (
	"bytes"
	"compress/gzip"
	"testing"

	"github.com/ulikunitz/xz"

	gotext "github.com/go-text/typesetting/font"
)

const sampleStructuredJSON = `{
	"atlas": {"type": "msdf", "distanceRange": 4, "size": 32, "width": 512, "height": 512},
	"metrics": {"lineHeight": 1.2, "descender": -0.3},
	"glyphs": [
		{"unicode": 32, "advance": 0.25},
		{"unicode": 65, "advance": 0.6,
			"planeBounds": {"left": 0.1, "bottom": 0, "right": 0.5, "top": 0.6},
			"atlasBounds": {"left": 10, "bottom": 20, "right": 42, "top": 70}}
	],
	"kerning": [
		{"unicode1": 65, "unicode2": 86, "advance": -0.05}
	]
}`

func TestDecodeStructuredJSON(t *testing.T) {
	f, err := DecodeStructuredJSON([]byte(sampleStructuredJSON))
	if err != nil {
		t.Fatalf("DecodeStructuredJSON: %v", err)
	}
	if f.DistanceField != MSDF {
		t.Errorf("DistanceField = %v, want MSDF", f.DistanceField)
	}
	if f.CellWidth != 32 || f.CellHeight != 1.2*32 {
		t.Fatalf("cell metrics = %v/%v, want 32/%v", f.CellWidth, f.CellHeight, 1.2*32)
	}
	region, ok := f.Mapping['A']
	if !ok {
		t.Fatalf("missing region for 'A'")
	}
	if region.Width != 32 || region.Height != 50 {
		t.Errorf("region size = %v/%v, want 32/50", region.Width, region.Height)
	}
	if region.U != 10.0/512 || region.U2 != 42.0/512 {
		t.Errorf("region UV = %v/%v, want %v/%v", region.U, region.U2, 10.0/512, 42.0/512)
	}
	if v, ok := f.KerningFor('A', 'V'); !ok || v != -0.05*32 {
		t.Errorf("KerningFor('A','V') = %v, %v, want %v, true", v, ok, -0.05*32)
	}
}

func TestDecodeStructuredJSONMissingAtlasBoundsIsZeroSized(t *testing.T) {
	const doc = `{"atlas": {"type": "sdf", "size": 16}, "glyphs": [{"unicode": 32, "advance": 0.2}]}`
	f, err := DecodeStructuredJSON([]byte(doc))
	if err != nil {
		t.Fatalf("DecodeStructuredJSON: %v", err)
	}
	region, ok := f.Mapping[' ']
	if !ok {
		t.Fatalf("missing region for space")
	}
	if region.Width != 0 || region.Height != 0 || region.U != 0 || region.U2 != 0 {
		t.Errorf("region = %+v, want zero-sized per the missing-atlasBounds compatibility quirk", region)
	}
}

func TestDecodeStructuredJSONUnsupportedType(t *testing.T) {
	const doc = `{"atlas": {"type": "vectortiles"}}`
	if _, err := DecodeStructuredJSON([]byte(doc)); err != ErrUnsupportedFormat {
		t.Fatalf("err = %v, want ErrUnsupportedFormat", err)
	}
}

func TestDecodeStructuredJSONGzip(t *testing.T) {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if _, err := gz.Write([]byte(sampleStructuredJSON)); err != nil {
		t.Fatalf("gzip write: %v", err)
	}
	if err := gz.Close(); err != nil {
		t.Fatalf("gzip close: %v", err)
	}
	f, err := DecodeStructuredJSONGzip(buf.Bytes())
	if err != nil {
		t.Fatalf("DecodeStructuredJSONGzip: %v", err)
	}
	if _, ok := f.Mapping[' ']; !ok {
		t.Errorf("missing space region after gzip round-trip")
	}
}

func TestLoadStructuredJSONLZMA(t *testing.T) {
	var buf bytes.Buffer
	w, err := xz.NewWriter(&buf)
	if err != nil {
		t.Fatalf("xz.NewWriter: %v", err)
	}
	if _, err := w.Write([]byte(sampleStructuredJSON)); err != nil {
		t.Fatalf("xz write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("xz close: %v", err)
	}
	f, err := LoadStructuredJSONLZMA(buf.Bytes())
	if err != nil {
		t.Fatalf("LoadStructuredJSONLZMA: %v", err)
	}
	if _, ok := f.Mapping['A']; !ok {
		t.Errorf("missing region for 'A' after xz round-trip")
	}
}

func TestLoadStructuredJSONMissingFile(t *testing.T) {
	if _, err := LoadStructuredJSON("/nonexistent/does-not-exist.json"); err != ErrFontFileNotFound {
		t.Fatalf("err = %v, want ErrFontFileNotFound", err)
	}
}

// fakeVectorFace is a minimal vectorFace for FillAdvancesFromFace, avoiding
// the need for real TTF bytes in this test.
type fakeVectorFace struct {
	glyphs   map[rune]gotext.GID
	advances map[gotext.GID]float32
}

func (f *fakeVectorFace) NominalGlyph(r rune) (gotext.GID, bool) {
	gid, ok := f.glyphs[r]
	return gid, ok
}

func (f *fakeVectorFace) HorizontalAdvance(glyph gotext.GID, _ []float32) float32 {
	return f.advances[glyph]
}

func TestFillAdvancesFromFace(t *testing.T) {
	f := New()
	f.CellWidth = 16
	f.Mapping['A'] = Region{XAdvance: 0}
	f.Mapping['B'] = Region{XAdvance: 0}

	fake := &fakeVectorFace{
		glyphs:   map[rune]gotext.GID{'A': 3},
		advances: map[gotext.GID]float32{3: 1000},
	}
	src := &VectorAdvanceSource{face: fake}

	f.FillAdvancesFromFace(src, []rune{'A', 'B'}, 2000)

	if got := f.Mapping['A'].XAdvance; got != 8 {
		t.Errorf("'A' XAdvance = %v, want 8 (1000/2000 * 16)", got)
	}
	if got := f.Mapping['B'].XAdvance; got != 0 {
		t.Errorf("'B' XAdvance = %v, want unchanged 0 (face has no glyph for it)", got)
	}
}
