package glyph

import "testing"

func TestApplyCharLiteralBracket(t *testing.T) {
	var g Glyph
	g = ApplyChar(g, '[')
	if got := ExtractChar(g); got != '[' {
		t.Fatalf("ExtractChar(ApplyChar(g, '[')) = %q, want '['", got)
	}
	if cp := (g & codepointMask) >> codepointShift; cp != literalBracketCodepoint {
		t.Fatalf("literal '[' stored as codepoint %#x, want %#x", cp, literalBracketCodepoint)
	}
}

func TestCodecRoundTrip(t *testing.T) {
	colors := []uint32{0, 0xFFFFFFFF, 0xFE000000, 0x12345678}
	styles := []Style{0, StyleBold, StyleOblique, StyleUnderline, StyleStrikethrough,
		StyleBold | StyleOblique, StyleBold | StyleOblique | StyleUnderline | StyleStrikethrough}
	modes := []Mode{ModeNone, ModeSmallCaps, ModeJostle, ModeError, ModeWhiteOutline}
	fontIdxs := []uint8{0, 1, 15}
	chars := []rune{'A', ' ', '[', 0, 0xFFFF, 0x02}

	for _, c := range colors {
		for _, st := range styles {
			for _, m := range modes {
				for _, fi := range fontIdxs {
					for _, ch := range chars {
						g := Pack(c, st, m, fi, ch)
						if got := ExtractColor(g); got != c {
							t.Fatalf("color round trip: got %#x want %#x", got, c)
						}
						if got := ExtractStyle(g); got != st {
							t.Fatalf("style round trip: got %#x want %#x", got, st)
						}
						if got := ExtractMode(g); got != m {
							t.Fatalf("mode round trip: got %v want %v", got, m)
						}
						if got := ExtractFontIndex(g); got != fi {
							t.Fatalf("font index round trip: got %d want %d", got, fi)
						}
						want := ch
						if ch == '[' || ch == 0x02 {
							want = '['
						}
						if got := ExtractChar(g); got != want {
							t.Fatalf("char round trip: got %q want %q", got, want)
						}
						if g&alphaExtMask == 0 {
							t.Fatalf("alpha-extend bit not set")
						}
					}
				}
			}
		}
	}
}

func TestApplySettersOnlyTouchNamedField(t *testing.T) {
	base := Pack(0x11223344, StyleBold, ModeShiny, 3, 'x')

	if got := ApplyChar(base, 'y'); ExtractColor(got) != ExtractColor(base) ||
		ExtractStyle(got) != ExtractStyle(base) || ExtractMode(got) != ExtractMode(base) ||
		ExtractFontIndex(got) != ExtractFontIndex(base) {
		t.Fatalf("ApplyChar mutated an unrelated field")
	}

	if got := ApplyColor(base, 0x99887766); ExtractChar(got) != ExtractChar(base) ||
		ExtractStyle(got) != ExtractStyle(base) || ExtractMode(got) != ExtractMode(base) {
		t.Fatalf("ApplyColor mutated an unrelated field")
	}

	if got := ApplyMode(base, ModeHalo); ExtractChar(got) != ExtractChar(base) ||
		ExtractColor(got) != ExtractColor(base) || ExtractStyle(got) != ExtractStyle(base) {
		t.Fatalf("ApplyMode mutated an unrelated field")
	}
}

func TestApplyScaleIsNoOp(t *testing.T) {
	g := Pack(0xFF00FF00, StyleBold, ModeNeon, 2, 'q')
	if got := ApplyScale(g, 2.5); got != g {
		t.Fatalf("ApplyScale mutated the glyph: got %#x want %#x", got, g)
	}
}

func TestToggleBoldFlipsOnlyItsBit(t *testing.T) {
	g := Pack(0, 0, ModeNone, 0, 'a')
	toggled := ToggleBold(g)
	if ExtractStyle(toggled) != StyleBold {
		t.Fatalf("ToggleBold did not set bold")
	}
	toggled = ToggleBold(toggled)
	if toggled != g {
		t.Fatalf("ToggleBold twice did not restore original")
	}
}

func TestApplyOutlineFlag(t *testing.T) {
	g := Pack(0, 0, ModeNone, 0, 'a')
	if HasOutline(g) {
		t.Fatalf("fresh glyph should not have outline set")
	}
	g = ApplyOutline(g, true)
	if !HasOutline(g) {
		t.Fatalf("ApplyOutline(true) did not set the flag")
	}
	g = ApplyOutline(g, false)
	if HasOutline(g) {
		t.Fatalf("ApplyOutline(false) did not clear the flag")
	}
}

func TestModeFromName(t *testing.T) {
	tests := []struct {
		name        string
		wantMode    Mode
		wantOutline bool
		wantOK      bool
	}{
		{"", ModeNone, false, false},
		{"B", ModeNone, true, true},
		{"Black Outline", ModeNone, true, true},
		{"blu", ModeBlueOutline, true, true},
		{"RED", ModeRedOutline, true, true},
		{"YEL", ModeYellowOutline, true, true},
		{"shiny", ModeShiny, false, true},
		{"SHAD", ModeDropShadow, false, true},
		{"drop", ModeDropShadow, false, true},
		{"D", ModeDropShadow, false, true},
		{"neo", ModeNeon, false, true},
		{"HAL", ModeHalo, false, true},
		{"SM", ModeSmallCaps, false, true},
		{"jostle", ModeJostle, false, true},
		{"J", ModeJostle, false, true},
		{"error", ModeError, false, true},
		{"E", ModeError, false, true},
		{"WARN", ModeWarn, false, true},
		{"WH", ModeWhiteOutline, true, true},
		{"Note", ModeNote, false, true},
		{"N", ModeNote, false, true},
		{"CON", ModeContext, false, true},
		{"SUG", ModeSuggest, false, true},
		{"nonsense", ModeNone, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, outline, ok := ModeFromName(tt.name)
			if m != tt.wantMode || outline != tt.wantOutline || ok != tt.wantOK {
				t.Errorf("ModeFromName(%q) = (%v, %v, %v), want (%v, %v, %v)",
					tt.name, m, outline, ok, tt.wantMode, tt.wantOutline, tt.wantOK)
			}
		})
	}
}
