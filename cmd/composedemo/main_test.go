package main

import (
	"testing"

	"github.com/gogpu/compose"
	"github.com/gogpu/compose/text"
)

func TestBreakLines(t *testing.T) {
	m := text.FixedMeasurer(1)
	lines := breakLines("aaa bbb ccc", 8, 10, m, text.AlignLeft)

	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(lines))
	}
	if n := len(lines[0].Inlines); n != 2 {
		t.Errorf("first line inlines = %d, want 2", n)
	}
	if lines[0].LastLineInParagraph || !lines[1].LastLineInParagraph {
		t.Error("only the last line must end the paragraph")
	}
	for _, l := range lines {
		if l.Width() > 8 {
			t.Errorf("line width %v exceeds 8", l.Width())
		}
	}
}

func TestBreakLinesDirection(t *testing.T) {
	m := text.FixedMeasurer(1)
	lines := breakLines("مرحبا abc", 100, 10, m, text.AlignLeft)

	if len(lines) != 1 || !lines[0].IsRTL() {
		t.Fatal("paragraph starting with Arabic must be an RTL line")
	}
	in := lines[0].Inlines
	if in[0].Direction != text.RunRTL || !in[0].RTL || in[1].Direction != text.RunLTR {
		t.Errorf("run tags = %v, %v, want rtl, ltr", in[0].Direction, in[1].Direction)
	}
}

func TestParseAlignment(t *testing.T) {
	tests := []struct {
		in   string
		want text.Alignment
		err  bool
	}{
		{"left", text.AlignLeft, false},
		{"center", text.AlignCenter, false},
		{"right", text.AlignRight, false},
		{"justify", text.AlignJustify, false},
		{"middle", text.AlignLeft, true},
	}
	for _, tt := range tests {
		got, err := parseAlignment(tt.in)
		if (err != nil) != tt.err || got != tt.want {
			t.Errorf("parseAlignment(%q) = %v, %v", tt.in, got, err)
		}
	}
}

func TestAddBanner(t *testing.T) {
	page := compose.PageSize{Width: 220, Height: 200}
	ctx := compose.NewContext(page, compose.Margins{Left: 10, Top: 10, Right: 10, Bottom: 10})
	w := compose.NewWriter(ctx)

	if err := addBanner(w, "Title", 12, text.FixedMeasurer(1)); err != nil {
		t.Fatalf("addBanner() error = %v", err)
	}
	if w.Depth() != 0 {
		t.Fatalf("Depth() = %d, want 0 after commit", w.Depth())
	}

	want := []compose.ItemKind{
		compose.ItemVector, compose.ItemBeginClip, compose.ItemLine,
		compose.ItemEndClip, compose.ItemVector,
	}
	items := ctx.CurrentPage().Items
	if len(items) != len(want) {
		t.Fatalf("items = %d, want %d", len(items), len(want))
	}
	for i, k := range want {
		if items[i].Kind() != k {
			t.Errorf("item %d kind = %s, want %s", i, items[i].Kind(), k)
		}
	}

	bg := items[0].(compose.VectorItem).Vector
	if bg.Color != compose.Hex("#dde7f5") || bg.UnbreakableBackground {
		t.Errorf("background = %+v, want replayed #dde7f5 fill", bg)
	}
	if c := items[1].(compose.BeginClipItem); c.Rect != compose.NewRect(10, 16, 200, 12) {
		t.Errorf("clip = %v, want (10, 16) 200x12", c.Rect)
	}
	if ctx.Y != 34 {
		t.Errorf("cursor Y = %v, want 34", ctx.Y)
	}
}
