// Package layout implements the markup parser and line breaker: the
// single-pass state machine that turns a string of text plus square-
// bracket (and optional curly-brace) markup into a fully measured,
// word-wrapped, optionally-justified Layout of packed glyphs (spec §1,
// §4.3-§4.6).
package layout

import (
	"github.com/gogpu/styledtext/font"
	"github.com/gogpu/styledtext/glyph"
)

// Justification selects how a wrapped line's advances are stretched to
// exactly fill TargetWidth (spec §4.4).
type Justification uint8

const (
	// JustifyNone performs no stretching.
	JustifyNone Justification = iota
	// JustifyFull stretches every glyph's advance.
	JustifyFull
	// JustifySpaceOnly stretches only space glyphs' advances.
	JustifySpaceOnly
)

// Line is one wrapped row of glyphs with its measured width and height
// (spec §3.5).
type Line struct {
	Glyphs []glyph.Glyph
	Width  float32
	Height float32
}

// Layout is an ordered sequence of Lines plus parallel Advances/Sizing
// arrays over the flattened glyph sequence in reading order (spec §3.5).
//
// Advances[i] scales the i-th glyph's horizontal step; Sizing[i] scales
// its draw x/y. Markup sets both to the scale in effect when the glyph is
// added (1.0 unless a "[%N]" tag changed it), and an upstream typing-effect
// layer may mutate them in place between layout and draw. This package
// reads Advances when measuring, wrapping, truncating and justifying lines
// (justification also rewrites them), and only moves Sizing entries
// along with their glyphs.
type Layout struct {
	Lines []Line

	Advances []float32
	Sizing   [][2]float32

	BaseColor uint32
	Font      *font.Font
	Family    *font.Family

	TargetWidth float32
	MaxLines    int
	Ellipsis    string
	AtLimit     bool
	Justify     Justification
}

// NewLayout returns an empty Layout bound to the given base font/family.
// MaxLines of 0 means unlimited; TargetWidth of 0 means no wrapping.
func NewLayout(f *font.Font, fam *font.Family) *Layout {
	return &Layout{Font: f, Family: fam, Ellipsis: "…"}
}

// CountGlyphsBeforeLine returns the number of glyphs in all lines before
// lineIndex, letting a caller recover a flat Advances/Sizing index from
// (lineIndex, indexWithinLine) (spec §3.5 invariant).
func (l *Layout) CountGlyphsBeforeLine(lineIndex int) int {
	count := 0
	for i := 0; i < lineIndex && i < len(l.Lines); i++ {
		count += len(l.Lines[i].Glyphs)
	}
	return count
}

// TotalGlyphs returns the total glyph count across all lines, which
// must always equal len(Advances) and len(Sizing) (spec §8.8).
func (l *Layout) TotalGlyphs() int {
	return l.CountGlyphsBeforeLine(len(l.Lines))
}

// appendGlyph appends g to the last line (creating one if none exists)
// and appends matching Advances/Sizing entries, keeping the two arrays
// in lockstep with the flattened glyph sequence.
func (l *Layout) appendGlyph(g glyph.Glyph, scale float32) {
	if len(l.Lines) == 0 {
		l.Lines = append(l.Lines, Line{})
	}
	last := &l.Lines[len(l.Lines)-1]
	last.Glyphs = append(last.Glyphs, g)
	l.Advances = append(l.Advances, scale)
	l.Sizing = append(l.Sizing, [2]float32{scale, scale})
}

// pushLine starts a new, empty line.
func (l *Layout) pushLine() {
	l.Lines = append(l.Lines, Line{})
}

// LabelStore is the scratch map of saved formatting words used by
// "[(label)]"/"[ label]" (spec §3.4, §4.3). It is a plain map so a
// Font's NamedStates field can be used directly as one.
type LabelStore map[string]uint64

// Save stores g (with its codepoint bits cleared) under name.
func (ls LabelStore) Save(name string, g glyph.Glyph) {
	ls[name] = uint64(glyph.ApplyChar(g, 0))
}

// Restore returns the formatting word saved under name, if any.
func (ls LabelStore) Restore(name string) (glyph.Glyph, bool) {
	v, ok := ls[name]
	return glyph.Glyph(v), ok
}
