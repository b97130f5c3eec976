package layout

import (
	"image/color"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/image/colornames"

	"github.com/gogpu/styledtext/font"
	"github.com/gogpu/styledtext/glyph"
)

// parser carries the push-down formatting state for one Markup call
// (spec §4.3).
type parser struct {
	layout *Layout

	current   glyph.Glyph
	baseState glyph.Glyph
	fontIndex uint8
	scale     float32

	capitalize, capsLock, lowerCase bool
	previousWasLetter               bool
	initial                         bool

	// needHistoryPush is true right after a literal glyph (or the start
	// of parsing): the next formatting tag pushes one history frame.
	// Consecutive tags with no literal glyph between them share that one
	// frame, so a single trailing "[]" undoes a whole run of tags at
	// once (spec §4.3, Scenario B).
	needHistoryPush bool

	history []glyph.Glyph
	labels  LabelStore
}

// Markup interprets text's square-bracket (and, if the font enables it,
// curly-brace) markup against f, appending packed glyphs — with parallel
// Advances/Sizing entries — to l, wrapping and ellipsis-truncating against
// l.TargetWidth/l.MaxLines as it goes, and justifying at the end
// (spec §4.3-§4.5).
func Markup(f *font.Font, text string, l *Layout) {
	if l.BaseColor == 0 {
		l.BaseColor = 0xFFFFFFFF
	}
	base := glyph.Pack(l.BaseColor, 0, glyph.ModeNone, 0, 0)

	labels := LabelStore(f.NamedStates)
	if labels == nil {
		labels = make(LabelStore)
	}

	p := &parser{
		layout:           l,
		current:          base,
		baseState:        base,
		scale:            1,
		initial:          true,
		needHistoryPush:  true,
		labels:           labels,
	}

	runes := []rune(insertCJKZeroWidthSpaces(text))
	i := 0
	for i < len(runes) && !l.AtLimit {
		ch := runes[i]
		switch {
		case f.OmitCurlyBraces && ch == '{' && (i+1 >= len(runes) || runes[i+1] != '{'):
			j := i + 1
			for j < len(runes) && runes[j] != '}' {
				j++
			}
			p.handleCurly(string(runes[i+1 : j]))
			i = j + 1
		case f.EnableSquareBrackets && ch == '[':
			i += p.handleTag(runes, i)
		default:
			p.emit(ch)
			i++
		}
	}

	l.ApplyJustification(l.TargetWidth)
}

// handleCurly processes the contents of a "{...}" typing-tag region. It
// acts on "{RESET}" (scale back to 1), "{%N}" (scale N/100) and "{+name}"
// (an inline image, expanded to its codepoint); "@font" and "=", ".", "^"
// script directives are recognized but change nothing here. The region's
// text is not added to the Layout, and a "[+name]" tag written inside the
// braces is not expanded (spec §4.3a).
func (p *parser) handleCurly(content string) {
	if content == "RESET" {
		p.scale = 1
		return
	}
	switch {
	case strings.HasPrefix(content, "@"):
		// Font directive: recorded by the typing layer, not this parser.
	case strings.HasPrefix(content, "%"):
		if n, err := strconv.Atoi(content[1:]); err == nil {
			p.scale = float32(n) / 100
		}
	case content == "=" || content == "." || content == "^":
		// Script directive: recorded by the typing layer, not this parser.
	case strings.HasPrefix(content, "+"):
		name := content[1:]
		if code, ok := p.fontForCurrent().AtlasLookup(name); ok {
			p.emitInlineImage(code)
		}
	}
}

// fontForCurrent resolves the Font the current formatting word's font
// index selects, falling back to the Layout's base font.
func (p *parser) fontForCurrent() *font.Font {
	return p.layout.resolveFont(p.current)
}

// handleTag processes one "[...]" markup tag starting at runes[i] and
// returns how many runes (including both brackets) it consumed.
func (p *parser) handleTag(runes []rune, i int) int {
	if i+1 < len(runes) && runes[i+1] == '[' {
		p.emit('[')
		return 2
	}
	j := i + 1
	for j < len(runes) && runes[j] != ']' {
		j++
	}
	if j >= len(runes) {
		p.emit('[')
		return 1
	}
	tag := string(runes[i+1 : j])
	p.applyTag(tag)
	return j - i + 1
}

func (p *parser) pushHistory() {
	if !p.needHistoryPush {
		return
	}
	p.history = append(p.history, p.current)
	p.needHistoryPush = false
}

func (p *parser) popHistory() {
	if len(p.history) == 0 {
		p.current = p.baseState
	} else {
		p.current = p.history[len(p.history)-1]
		p.history = p.history[:len(p.history)-1]
	}
	p.needHistoryPush = true
}

func (p *parser) hardReset() {
	p.current = p.baseState
	p.history = p.history[:0]
	p.scale = 1
	p.fontIndex = 0
	p.capitalize, p.capsLock, p.lowerCase = false, false, false
	p.needHistoryPush = true
}

// applyTag dispatches one tag body (the text between "[" and "]") per
// spec §4.3b.
func (p *parser) applyTag(tag string) {
	switch {
	case tag == "":
		p.popHistory()
	case tag == " ":
		p.hardReset()
	case strings.HasPrefix(tag, "+"):
		name := tag[1:]
		if code, ok := p.fontForCurrent().AtlasLookup(name); ok {
			p.emitInlineImage(code)
		}
	case strings.HasPrefix(tag, "(") && strings.HasSuffix(tag, ")") && len(tag) >= 2:
		p.labels.Save(tag[1:len(tag)-1], p.current)
	case strings.HasPrefix(tag, " ") && len(tag) > 1:
		if v, ok := p.labels.Restore(tag[1:]); ok {
			p.current = v
		}
	case len(tag) == 1 && isToggleRune(rune(tag[0])):
		p.applyToggle(rune(tag[0]))
	case strings.HasPrefix(tag, "%"):
		p.applyScaleOrMode(tag[1:])
	case strings.HasPrefix(tag, "?"):
		p.pushHistory()
		p.applyMode(tag[1:])
	case strings.HasPrefix(tag, "@"):
		p.pushHistory()
		p.applyFontIndex(tag[1:])
	case strings.HasPrefix(tag, "#"):
		p.pushHistory()
		p.applyHexColor(tag[1:])
	case strings.HasPrefix(tag, "|"):
		p.pushHistory()
		p.applyNamedColor(tag[1:])
	default:
		p.pushHistory()
		p.applyNamedColor(tag)
	}
}

func isToggleRune(r rune) bool {
	switch r {
	case '*', '/', '^', '=', '.', '_', '~', ';', '!', ',':
		return true
	}
	return false
}

func (p *parser) applyToggle(r rune) {
	p.pushHistory()
	switch r {
	case '*':
		p.current = glyph.ToggleBold(p.current)
	case '/':
		p.current = glyph.ToggleOblique(p.current)
	case '^':
		p.current = toggleScript(p.current, glyph.ScriptSuperscript)
	case '=':
		p.current = toggleScript(p.current, glyph.ScriptMidscript)
	case '.':
		p.current = toggleScript(p.current, glyph.ScriptSubscript)
	case '_':
		p.current = glyph.ToggleUnderline(p.current)
	case '~':
		p.current = glyph.ToggleStrikethrough(p.current)
	case ';':
		p.capitalize = !p.capitalize
	case '!':
		p.capsLock = !p.capsLock
	case ',':
		p.lowerCase = !p.lowerCase
	}
}

// toggleScript sets the script field to s, or clears it to Normal if it
// is already s — toggling one of sub/mid/superscript always clears the
// other two, since they share one 2-bit field (spec §4.3).
func toggleScript(g glyph.Glyph, s glyph.Script) glyph.Glyph {
	if glyph.ExtractScript(g) == s {
		return glyph.ApplyScript(g, glyph.ScriptNormal)
	}
	return glyph.ApplyScript(g, s)
}

// applyScaleOrMode handles everything after a leading "%": "%N" sets
// scale, "%" alone resets it, "%?MODE" and "%^MODE" are equivalent
// spellings of the plain "?MODE" mode selector (spec §4.3).
func (p *parser) applyScaleOrMode(rest string) {
	if rest == "" {
		p.scale = 1
		return
	}
	if strings.HasPrefix(rest, "?") || strings.HasPrefix(rest, "^") {
		p.pushHistory()
		p.applyMode(rest[1:])
		return
	}
	if n, err := strconv.Atoi(rest); err == nil {
		p.scale = float32(n) / 100
	}
}

// applyMode resolves name through glyph.ModeFromName. A name whose alias
// sets only the outline flag (e.g. "B"/"Black Outline") never touches the
// mode field; an empty or unrecognized name clears the mode field,
// leaving the outline flag untouched (spec §4.3).
func (p *parser) applyMode(name string) {
	m, outline, ok := glyph.ModeFromName(name)
	if !ok {
		p.current = glyph.ApplyMode(p.current, glyph.ModeNone)
		return
	}
	if m != glyph.ModeNone {
		p.current = glyph.ApplyMode(p.current, m)
	}
	if outline {
		p.current = glyph.ApplyOutline(p.current, true)
	}
}

// applyFontIndex handles "@Name"/"@": an empty name resets to slot 0.
func (p *parser) applyFontIndex(name string) {
	fam := p.layout.Family
	if name == "" || fam == nil {
		p.fontIndex = 0
		p.current = glyph.ApplyFontIndex(p.current, 0)
		return
	}
	_, slot := fam.Get(name)
	p.fontIndex = slot
	p.current = glyph.ApplyFontIndex(p.current, slot)
}

// applyHexColor handles "#HHHHHHHH"/"#HHHHHH"/"#HHHH"/"#HHH", "#" alone
// (toggles the black-outline flag), and any other length (resets color
// to the Layout's base color) (spec §4.3).
func (p *parser) applyHexColor(hex string) {
	if hex == "" {
		p.current = glyph.ApplyOutline(p.current, !glyph.HasOutline(p.current))
		return
	}
	if c, ok := parseHexColor(hex); ok {
		p.current = glyph.ApplyColor(p.current, c)
		return
	}
	p.current = glyph.ApplyColor(p.current, p.layout.BaseColor)
}

func parseHexColor(hex string) (uint32, bool) {
	expand := func(nibble byte) string {
		return string([]byte{nibble, nibble})
	}
	var full string
	switch len(hex) {
	case 8:
		full = hex
	case 6:
		full = hex + "ff"
	case 4:
		full = expand(hex[0]) + expand(hex[1]) + expand(hex[2]) + expand(hex[3])
	case 3:
		full = expand(hex[0]) + expand(hex[1]) + expand(hex[2]) + "ff"
	default:
		return 0, false
	}
	v, err := strconv.ParseUint(full, 16, 32)
	if err != nil {
		return 0, false
	}
	return uint32(v), true
}

// applyNamedColor looks a color up by name (allowing punctuation, which
// is stripped before matching) via the CSS color-name table, setting the
// Layout's base color on failure (spec §4.3).
func (p *parser) applyNamedColor(name string) {
	if c, ok := lookupNamedColor(name); ok {
		p.current = glyph.ApplyColor(p.current, colorToRGBA8888(c))
		return
	}
	p.current = glyph.ApplyColor(p.current, p.layout.BaseColor)
}

func lookupNamedColor(name string) (color.RGBA, bool) {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	c, ok := colornames.Map[b.String()]
	return c, ok
}

func colorToRGBA8888(c color.RGBA) uint32 {
	return uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A)
}

// emitInlineImage appends an inline-image glyph at unit scale: XAdvance's
// inline-image branch derives the correct on-line size from the font's
// cell height and the region's max dimension, so no extra per-glyph
// scale override is needed here (spec §4.3, §4.6).
func (p *parser) emitInlineImage(code rune) {
	g := glyph.ApplyChar(p.current, code)
	p.appendAndWrapCheck(g, 1)
}

// emit appends one literal character after applying case-folding
// (capsLock wins over lowerCase wins over capitalize-first-letter), and
// starts a new line on '\n' (spec §4.3c).
func (p *parser) emit(ch rune) {
	if ch == '\n' {
		g := glyph.ApplyChar(p.current, '\n')
		p.layout.appendGlyph(g, p.scale)
		p.layout.pushLine()
		p.initial = true
		p.previousWasLetter = false
		p.needHistoryPush = true
		return
	}

	switch {
	case p.capsLock:
		ch = unicode.ToUpper(ch)
	case p.lowerCase:
		ch = unicode.ToLower(ch)
	case p.capitalize && !p.previousWasLetter && unicode.IsLetter(ch):
		ch = unicode.ToUpper(ch)
	}
	p.previousWasLetter = unicode.IsLetter(ch)

	g := glyph.ApplyChar(p.current, ch)
	p.appendAndWrapCheck(g, p.scale)
}

// appendAndWrapCheck appends g (with its advance/sizing scale) to the
// Layout, then checks the running line width against TargetWidth,
// invoking the wrap routine or, once MaxLines has been reached, the
// ellipsis routine (spec §4.3, §4.4, §4.5).
func (p *parser) appendAndWrapCheck(g glyph.Glyph, scale float32) {
	l := p.layout
	l.appendGlyph(g, scale)
	p.initial = false
	p.needHistoryPush = true

	if l.TargetWidth <= 0 {
		return
	}
	idx := len(l.Lines) - 1
	base := l.CountGlyphsBeforeLine(idx)
	width, _ := l.calculateLineSizeAt(idx, base)
	if width <= l.TargetWidth {
		return
	}
	if l.MaxLines > 0 && len(l.Lines) >= l.MaxLines {
		l.HandleEllipsis(l.TargetWidth)
		return
	}
	if l.Wrap(l.TargetWidth) {
		p.initial = true
	}
}
