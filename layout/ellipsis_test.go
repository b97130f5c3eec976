package layout

import "testing"

func TestHandleEllipsisTruncatesWhenItFits(t *testing.T) {
	f := wrapTestFont()
	f.Mapping['…'] = f.Mapping['a']
	l := buildLine(f, "alphabet")
	l.MaxLines = 1

	if !l.HandleEllipsis(65) {
		t.Fatalf("HandleEllipsis should have fit the truncated line")
	}
	if !l.AtLimit {
		t.Fatalf("AtLimit should be set once the ellipsis path runs")
	}
	got := lineText(l.Lines[0])
	if got == "alphabet" {
		t.Fatalf("line should have been truncated")
	}
	if got[len(got)-len("…"):] != "…" {
		t.Errorf("line %q should end with the ellipsis", got)
	}
}

func TestHandleEllipsisLeavesLineWhenEllipsisDoesNotFit(t *testing.T) {
	f := wrapTestFont()
	f.Mapping['…'] = f.Mapping['a']
	l := buildLine(f, "alphabet")
	l.MaxLines = 1

	if l.HandleEllipsis(1) {
		t.Fatalf("HandleEllipsis should report false when nothing fits")
	}
}
