package layout

import (
	"testing"

	"github.com/gogpu/styledtext/font"
	"github.com/gogpu/styledtext/glyph"
)

func markupMonoFont() *font.Font {
	f := font.New()
	f.IsMono = true
	f.CellWidth, f.CellHeight = 8, 16
	f.OriginalCellWidth, f.OriginalCellHeight = 8, 16
	for _, r := range "Hiabcdefghijk- " {
		f.Mapping[r] = font.Region{XAdvance: 8}
	}
	_ = f.EnsureBaseGlyphs()
	return f
}

func TestMarkupScenarioANoWrapNoMarkup(t *testing.T) {
	f := markupMonoFont()
	l := NewLayout(f, nil)
	Markup(f, "Hi", l)

	if len(l.Lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(l.Lines))
	}
	if got := lineText(l.Lines[0]); got != "Hi" {
		t.Fatalf("line text = %q, want %q", got, "Hi")
	}
	if l.Lines[0].Width != 16 || l.Lines[0].Height != 16 {
		t.Errorf("size = (%v,%v), want (16,16)", l.Lines[0].Width, l.Lines[0].Height)
	}
	for i, g := range l.Lines[0].Glyphs {
		if glyph.ExtractColor(g) != 0xFFFFFFFF {
			t.Errorf("glyph %d color = %#x, want white", i, glyph.ExtractColor(g))
		}
	}
	if len(l.Advances) != 2 || l.Advances[0] != 1 || l.Advances[1] != 1 {
		t.Errorf("Advances = %v, want [1 1]", l.Advances)
	}
}

func TestMarkupEscapeLiteralBrackets(t *testing.T) {
	f := markupMonoFont()
	for _, r := range "[]bold" {
		f.Mapping[r] = font.Region{XAdvance: 8}
	}
	l := NewLayout(f, nil)
	Markup(f, "[[bold]]", l)

	// "[[" is the only escape rule: it collapses to one literal '['. A
	// lone ']' carries no special meaning outside an open tag scan, so
	// both trailing brackets survive as literal text.
	if got := lineText(l.Lines[0]); got != "[bold]]" {
		t.Fatalf("text = %q, want %q", got, "[bold]]")
	}
}

func TestMarkupBoldObliqueRedStack(t *testing.T) {
	f := markupMonoFont()
	f.Mapping['o'] = font.Region{XAdvance: 8}
	f.Mapping['k'] = font.Region{XAdvance: 8}
	l := NewLayout(f, nil)
	Markup(f, "[RED][*][/]ok[]", l)

	if got := lineText(l.Lines[0]); got != "ok" {
		t.Fatalf("text = %q, want %q", got, "ok")
	}
	for i, g := range l.Lines[0].Glyphs {
		st := glyph.ExtractStyle(g)
		if st&glyph.StyleBold == 0 || st&glyph.StyleOblique == 0 {
			t.Errorf("glyph %d style = %v, want bold|oblique", i, st)
		}
		c := glyph.ExtractColor(g)
		if c&0xFFFFFF00 != 0xFF000000 {
			t.Errorf("glyph %d color = %#x, want red-ish", i, c)
		}
	}
}

func TestMarkupColorResetStack(t *testing.T) {
	f := markupMonoFont()
	for _, r := range "rbn" {
		f.Mapping[r] = font.Region{XAdvance: 8}
	}
	l := NewLayout(f, nil)
	Markup(f, "[RED]r[*]b[]r[]n", l)

	glyphs := l.Lines[0].Glyphs
	if len(glyphs) != 4 {
		t.Fatalf("expected 4 glyphs, got %d", len(glyphs))
	}
	redLike := func(g glyph.Glyph) bool {
		return glyph.ExtractColor(g)&0xFFFFFF00 == 0xFF000000
	}
	for i := 0; i < 3; i++ {
		if !redLike(glyphs[i]) {
			t.Errorf("glyph %d should still be red", i)
		}
	}
	if redLike(glyphs[3]) {
		t.Errorf("glyph 3 should have popped back to base color")
	}
}

func TestMarkupScaleTagSetsAdvanceEntry(t *testing.T) {
	f := markupMonoFont()
	f.Mapping['x'] = font.Region{XAdvance: 8}
	l := NewLayout(f, nil)
	Markup(f, "[%200]x", l)

	if len(l.Advances) != 1 || l.Advances[0] != 2 {
		t.Fatalf("Advances = %v, want [2]", l.Advances)
	}
}

func TestMarkupWrapAtSpacePreservesTrailingSpace(t *testing.T) {
	f := markupMonoFont()
	for _, r := range "abcdefg " {
		f.Mapping[r] = font.Region{XAdvance: 8}
	}
	l := NewLayout(f, nil)
	l.TargetWidth = 40
	Markup(f, "abc defg", l)

	if len(l.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(l.Lines))
	}
	if got := lineText(l.Lines[0]); got != "abc " {
		t.Errorf("line 0 = %q, want %q", got, "abc ")
	}
	if got := lineText(l.Lines[1]); got != "defg" {
		t.Errorf("line 1 = %q, want %q", got, "defg")
	}
}

func TestMarkupInlineImageAdvance(t *testing.T) {
	f := markupMonoFont()
	for _, r := range "Playnow " {
		f.Mapping[r] = font.Region{XAdvance: 8}
	}
	f.InlineImageStretch = 1
	code, ok := f.AddImage("sax", 32, 32)
	if !ok {
		t.Fatalf("AddImage failed")
	}
	l := NewLayout(f, nil)
	Markup(f, "Play [+sax] now", l)

	var found bool
	for i, g := range l.Lines[0].Glyphs {
		if glyph.ExtractChar(g) == code {
			found = true
			adv := XAdvance(f, f.ScaleX, g)
			want := f.CellHeight / 32 * f.InlineImageStretch * 32
			if adv != want {
				t.Errorf("inline image advance = %v, want %v", adv, want)
			}
			_ = i
		}
	}
	if !found {
		t.Fatalf("inline image glyph not found in output")
	}
}
