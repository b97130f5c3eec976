package font

import "testing"

func monoFont() *Font {
	f := New()
	f.IsMono = true
	f.CellWidth, f.CellHeight = 8, 16
	f.OriginalCellWidth, f.OriginalCellHeight = 8, 16
	f.Mapping[' '] = Region{XAdvance: 8}
	for r := 'a'; r <= 'z'; r++ {
		f.Mapping[r] = Region{XAdvance: 8}
	}
	for r := 'A'; r <= 'Z'; r++ {
		f.Mapping[r] = Region{XAdvance: 8}
	}
	return f
}

func TestEnsureBaseGlyphs(t *testing.T) {
	f := monoFont()
	if err := f.EnsureBaseGlyphs(); err != nil {
		t.Fatalf("EnsureBaseGlyphs: %v", err)
	}
	if f.Mapping['\r'] != f.Mapping[' '] {
		t.Errorf("'\\r' should alias ' '")
	}
	zw, ok := f.Mapping[0x200B]
	if !ok || zw.XAdvance != 0 {
		t.Errorf("zero-width space missing or has nonzero advance: %+v", zw)
	}
	nl, ok := f.Mapping['\n']
	if !ok || nl.XAdvance != 0 {
		t.Errorf("newline glyph missing or has nonzero advance")
	}
	if _, ok := f.Mapping[f.SolidBlock]; !ok {
		t.Errorf("solid block glyph missing")
	}
}

func TestEnsureBaseGlyphsMissingSpaceIsFatal(t *testing.T) {
	f := New()
	if err := f.EnsureBaseGlyphs(); err != ErrMissingSpaceGlyph {
		t.Fatalf("EnsureBaseGlyphs() = %v, want ErrMissingSpaceGlyph", err)
	}
}

func TestAtlasLookupCaseInsensitive(t *testing.T) {
	f := New()
	code, ok := f.AddAtlas("saxophone", Region{Width: 32, Height: 32})
	if !ok || code != 0xE000 {
		t.Fatalf("AddAtlas = (%#x, %v), want (0xE000, true)", code, ok)
	}
	got, ok := f.AtlasLookup("SAXOPHONE")
	if !ok || got != code {
		t.Fatalf("AtlasLookup(SAXOPHONE) = (%#x, %v), want (%#x, true)", got, ok, code)
	}
}

func TestAtlasOverflowDropsSilently(t *testing.T) {
	f := New()
	f.nextAtlasCode = atlasEnd - 1
	_, ok := f.AddAtlas("last", Region{})
	if !ok {
		t.Fatalf("last valid slot should succeed")
	}
	_, ok = f.AddAtlas("overflow", Region{})
	if ok {
		t.Fatalf("AddAtlas past atlasEnd should report ok=false")
	}
}

func TestSharingAliasesUntilBroken(t *testing.T) {
	base := New()
	base.Mapping['a'] = Region{XAdvance: 1}

	clone := base.Copy()
	if !clone.Sharing() {
		t.Fatalf("Copy() should produce a sharing clone")
	}

	clone.Mapping['b'] = Region{XAdvance: 2}
	if _, ok := base.Mapping['b']; !ok {
		t.Fatalf("mutation through shared map should be visible on the source")
	}

	clone.SetSharing(false)
	clone.Mapping['c'] = Region{XAdvance: 3}
	if _, ok := base.Mapping['c']; ok {
		t.Fatalf("mutation after SetSharing(false) leaked back to the source")
	}
	if clone.Sharing() {
		t.Fatalf("Sharing() should be false after SetSharing(false)")
	}
}

func TestKerningRoundTrip(t *testing.T) {
	f := New()
	f.SetKerning('A', 'V', -1.5)
	got, ok := f.KerningFor('A', 'V')
	if !ok || got != -1.5 {
		t.Fatalf("KerningFor(A,V) = (%v, %v), want (-1.5, true)", got, ok)
	}
	if _, ok := f.KerningFor('V', 'A'); ok {
		t.Fatalf("kerning pairs should not be symmetric")
	}
}

func TestFitCellUpdatesScaleAndCrispness(t *testing.T) {
	f := New()
	f.OriginalCellWidth, f.OriginalCellHeight = 8, 16
	f.DistanceField = SDF
	f.DistanceFieldCrispness = 2

	f.FitCell(16, 32)
	if f.ScaleX != 2 || f.ScaleY != 2 {
		t.Fatalf("ScaleX/Y = %v/%v, want 2/2", f.ScaleX, f.ScaleY)
	}
	if f.ActualCrispness != 4 {
		t.Fatalf("ActualCrispness = %v, want 4", f.ActualCrispness)
	}
}
