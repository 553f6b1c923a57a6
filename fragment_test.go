package compose

import (
	"errors"
	"testing"

	"github.com/gogpu/compose/text"
)

// newTestFragment returns a 30pt fragment with one item of each kind,
// all at the fragment origin.
func newTestFragment(t *testing.T) *Fragment {
	t.Helper()
	line := text.NewLine(100)
	line.AddInline(&text.Inline{Text: "abc", Width: 10, Height: 12, Direction: text.RunLTR})
	return &Fragment{
		Items: []Item{
			LineItem{Line: line},
			VectorItem{Vector: rect(0, 0, 5, 5)},
			ImageItem{Image: &Image{Y: 5, Width: 10, Height: 10}, SVG: true},
			BeginClipItem{Rect: NewRect(0, 0, 10, 10)},
			EndClipItem{},
		},
		Height: 30,
	}
}

func TestAddFragment(t *testing.T) {
	w, ctx := newTestWriter(t)
	frag := newTestFragment(t)

	if err := w.AddFragment(frag); err != nil {
		t.Fatalf("AddFragment() error = %v", err)
	}
	if ctx.Y != 40 {
		t.Errorf("cursor Y = %v, want 40", ctx.Y)
	}

	items := ctx.CurrentPage().Items
	if len(items) != len(frag.Items) {
		t.Fatalf("items = %d, want %d", len(items), len(frag.Items))
	}
	if l := items[0].(LineItem).Line; l.X != 10 || l.Y != 10 {
		t.Errorf("line at (%v, %v), want (10, 10)", l.X, l.Y)
	}
	if v := items[1].(VectorItem).Vector; v.X != 10 || v.Y != 10 {
		t.Errorf("vector at (%v, %v), want (10, 10)", v.X, v.Y)
	}
	img := items[2].(ImageItem)
	if img.Image.X != 10 || img.Image.Y != 15 || img.Kind() != ItemSVG {
		t.Errorf("image = %+v at (%v, %v), want svg at (10, 15)", img, img.Image.X, img.Image.Y)
	}
	if c := items[3].(BeginClipItem); c.Rect != NewRect(10, 10, 10, 10) {
		t.Errorf("clip = %v, want (10, 10) 10x10", c.Rect)
	}
	if items[4].Kind() != ItemEndClip {
		t.Errorf("last item kind = %s, want endClip", items[4].Kind())
	}
}

func TestAddFragmentNonMutation(t *testing.T) {
	w, ctx := newTestWriter(t)
	frag := newTestFragment(t)

	if err := w.AddFragment(frag); err != nil {
		t.Fatal(err)
	}
	ctx.MoveDown(50)
	if err := w.AddFragment(frag); err != nil {
		t.Fatal(err)
	}

	if l := frag.Items[0].(LineItem).Line; l.X != 0 || l.Y != 0 {
		t.Errorf("stored line moved to (%v, %v)", l.X, l.Y)
	}
	if v := frag.Items[1].(VectorItem).Vector; v.X != 0 || v.Y != 0 {
		t.Errorf("stored vector moved to (%v, %v)", v.X, v.Y)
	}
	if img := frag.Items[2].(ImageItem).Image; img.X != 0 || img.Y != 5 {
		t.Errorf("stored image moved to (%v, %v)", img.X, img.Y)
	}
	if c := frag.Items[3].(BeginClipItem); c.Rect != NewRect(0, 0, 10, 10) {
		t.Errorf("stored clip moved to %v", c.Rect)
	}

	items := ctx.CurrentPage().Items
	first := items[0].(LineItem).Line
	second := items[5].(LineItem).Line
	if first == second {
		t.Fatal("replays share one line")
	}
	if first.Y != 10 || second.Y != 90 {
		t.Errorf("replayed lines at Y %v and %v, want 10 and 90", first.Y, second.Y)
	}
}

func TestAddFragmentAnchor(t *testing.T) {
	w, ctx := newTestWriter(t)
	ctx.AddPage(testPage)

	frag := newTestFragment(t)
	anchor := &text.Anchor{ID: "toc-1"}
	frag.Items[0].(LineItem).Line.Anchor = anchor

	if err := w.AddFragment(frag); err != nil {
		t.Fatal(err)
	}
	if anchor.PageNumber != 2 {
		t.Errorf("anchor page = %d, want 2", anchor.PageNumber)
	}
}

func TestAddFragmentFit(t *testing.T) {
	w, ctx := newTestWriter(t)
	frag := newTestFragment(t)
	frag.Height = 300
	frag.XOffset, frag.YOffset = 3, 4

	if err := w.AddFragment(frag); !errors.Is(err, ErrInsufficientSpace) {
		t.Fatalf("AddFragment() error = %v, want ErrInsufficientSpace", err)
	}
	if len(ctx.CurrentPage().Items) != 0 {
		t.Fatal("failed replay added items")
	}

	if err := w.AddFragment(frag, UseBlockOffset(), KeepPosition()); err != nil {
		t.Fatalf("AddFragment(UseBlockOffset) error = %v", err)
	}
	if l := ctx.CurrentPage().Items[0].(LineItem).Line; l.X != 3 || l.Y != 4 {
		t.Errorf("line at (%v, %v), want (3, 4)", l.X, l.Y)
	}
	if ctx.Y != 10 {
		t.Errorf("cursor Y = %v, want 10", ctx.Y)
	}
}

func TestAddFragmentBackground(t *testing.T) {
	w, ctx := newTestWriter(t)

	pageBg := rect(0, 0, 200, 300)
	if _, err := w.AddVector(pageBg, IgnoreContextX(), IgnoreContextY()); err != nil {
		t.Fatal(err)
	}
	w.MarkBackground()
	for _, s := range []string{"one", "two"} {
		if _, err := w.AddLine(newTestLine(t, 12, s)); err != nil {
			t.Fatal(err)
		}
	}

	fill := rect(0, 0, 180, 40)
	fill.Color = Hex("#eeeeee")
	fill.UnbreakableBackground = true
	frag := &Fragment{Items: []Item{VectorItem{Vector: fill}}, Height: 40}

	if err := w.AddFragment(frag); err != nil {
		t.Fatal(err)
	}

	items := ctx.CurrentPage().Items
	if len(items) != 4 {
		t.Fatalf("items = %d, want 4", len(items))
	}
	if items[0].(VectorItem).Vector != pageBg {
		t.Error("page background is no longer first")
	}
	v, ok := items[1].(VectorItem)
	if !ok || v.Vector.W != 180 {
		t.Fatalf("item 1 = %#v, want the block background", items[1])
	}
	if v.Vector.UnbreakableBackground {
		t.Error("replayed background keeps the unbreakable flag")
	}
	if !fill.UnbreakableBackground {
		t.Error("stored background lost its flag")
	}
	for i := 2; i < 4; i++ {
		if items[i].Kind() != ItemLine {
			t.Errorf("item %d kind = %s, want line", i, items[i].Kind())
		}
	}
}

func TestAddFragmentNestedBackgrounds(t *testing.T) {
	w, ctx := newTestWriter(t)
	w.MarkBackground()
	if _, err := w.AddLine(newTestLine(t, 12, "body")); err != nil {
		t.Fatal(err)
	}

	outer := rect(0, 0, 180, 40)
	outer.UnbreakableBackground = true
	inner := rect(0, 0, 50, 20)
	inner.UnbreakableBackground = true
	frag := &Fragment{
		Items:  []Item{VectorItem{Vector: outer}, VectorItem{Vector: inner}},
		Height: 40,
	}

	if err := w.AddFragment(frag); err != nil {
		t.Fatal(err)
	}

	items := ctx.CurrentPage().Items
	if len(items) != 3 {
		t.Fatalf("items = %d, want 3", len(items))
	}
	wantW := []float64{180, 50}
	for i, want := range wantW {
		v, ok := items[i].(VectorItem)
		if !ok || v.Vector.W != want {
			t.Errorf("item %d = %#v, want background of width %v", i, items[i], want)
		}
	}
	if items[2].Kind() != ItemLine {
		t.Errorf("item 2 kind = %s, want line", items[2].Kind())
	}
	if ctx.BackgroundLength[0] != 0 {
		t.Errorf("BackgroundLength = %v, want [0]", ctx.BackgroundLength)
	}
}

func TestBlockCommit(t *testing.T) {
	w, root := newTestWriter(t)

	b := w.BeginUnbreakable()
	if w.Depth() != 1 {
		t.Fatalf("Depth() = %d, want 1", w.Depth())
	}
	if _, err := w.AddLine(newTestLine(t, 12, "kept together")); err != nil {
		t.Fatal(err)
	}
	if _, err := w.AddVector(rect(0, 0, 5, 5)); err != nil {
		t.Fatal(err)
	}

	frag, err := b.Commit()
	if err != nil {
		t.Fatalf("Commit() error = %v", err)
	}
	if w.Depth() != 0 || w.Context() != root {
		t.Fatal("Commit did not restore the root frame")
	}
	if frag.Height != 12 {
		t.Errorf("fragment height = %v, want 12", frag.Height)
	}

	items := root.CurrentPage().Items
	if len(items) != 2 {
		t.Fatalf("root items = %d, want 2", len(items))
	}
	if l := items[0].(LineItem).Line; l.X != 10 || l.Y != 10 {
		t.Errorf("line at (%v, %v), want (10, 10)", l.X, l.Y)
	}
	if v := items[1].(VectorItem).Vector; v.X != 10 || v.Y != 22 {
		t.Errorf("vector at (%v, %v), want (10, 22)", v.X, v.Y)
	}
	if root.Y != 22 {
		t.Errorf("root cursor Y = %v, want 22", root.Y)
	}

	b.Release()
	if w.Depth() != 0 {
		t.Error("Release after Commit changed the stack")
	}
	if _, err := b.Commit(); !errors.Is(err, ErrBlockReleased) {
		t.Errorf("second Commit() error = %v, want ErrBlockReleased", err)
	}
}

func TestBlockCommitMultiPage(t *testing.T) {
	w, root := newTestWriter(t)

	b := w.BeginUnbreakable()
	if _, err := w.AddLine(newTestLine(t, 12, "page one")); err != nil {
		t.Fatal(err)
	}
	w.Context().AddPage(testPage)

	frag, err := b.Commit()
	if err != nil {
		t.Fatalf("Commit() error = %v", err)
	}
	if frag.Height != 280 {
		t.Errorf("fragment height = %v, want the inner page height 280", frag.Height)
	}
	if root.AvailableHeight != 0 {
		t.Errorf("root available height = %v, want 0", root.AvailableHeight)
	}
}

func TestBlockCommitRetry(t *testing.T) {
	w, root := newTestWriter(t)
	root.AvailableHeight = 5

	b := w.BeginUnbreakable()
	if _, err := w.AddLine(newTestLine(t, 12, "too tall here")); err != nil {
		t.Fatal(err)
	}
	frag, err := b.Commit()
	if !errors.Is(err, ErrInsufficientSpace) {
		t.Fatalf("Commit() error = %v, want ErrInsufficientSpace", err)
	}
	if frag == nil {
		t.Fatal("Commit() returned no fragment to retry with")
	}

	root.AddPage(testPage)
	if err := w.AddFragment(frag); err != nil {
		t.Fatalf("retry AddFragment() error = %v", err)
	}
	if len(root.Pages[0].Items) != 0 || len(root.Pages[1].Items) != 1 {
		t.Errorf("items per page = %d, %d, want 0, 1", len(root.Pages[0].Items), len(root.Pages[1].Items))
	}
}

func TestBlockCommitAt(t *testing.T) {
	w, root := newTestWriter(t)

	b := w.BeginUnbreakable()
	if _, err := w.AddLine(newTestLine(t, 12, "footer")); err != nil {
		t.Fatal(err)
	}
	if _, err := b.CommitAt(40, 280); err != nil {
		t.Fatalf("CommitAt() error = %v", err)
	}

	l := root.CurrentPage().Items[0].(LineItem).Line
	if l.X != 40 || l.Y != 280 {
		t.Errorf("line at (%v, %v), want (40, 280)", l.X, l.Y)
	}
	if root.Y != 10 {
		t.Errorf("root cursor Y = %v, want 10", root.Y)
	}
}

func TestBlockRelease(t *testing.T) {
	w, root := newTestWriter(t)

	func() {
		b := w.BeginUnbreakable()
		defer b.Release()
		if _, err := w.AddLine(newTestLine(t, 12, "discarded")); err != nil {
			t.Fatal(err)
		}
	}()

	if w.Depth() != 0 || w.Context() != root {
		t.Fatal("Release did not restore the root frame")
	}
	if len(root.CurrentPage().Items) != 0 {
		t.Error("released block placed items")
	}
}

func TestBlockNested(t *testing.T) {
	w, root := newTestWriter(t)

	outer := w.BeginUnbreakable()
	inner := w.BeginUnbreakable()
	if w.Depth() != 1 {
		t.Errorf("Depth() = %d, want 1 (nested blocks share a frame)", w.Depth())
	}
	if _, err := w.AddLine(newTestLine(t, 12, "inner")); err != nil {
		t.Fatal(err)
	}
	frag, err := inner.Commit()
	if frag != nil || err != nil {
		t.Errorf("inner Commit() = %v, %v, want nil, nil", frag, err)
	}
	if w.Depth() != 1 {
		t.Error("inner Commit popped the shared frame")
	}

	if _, err := w.AddLine(newTestLine(t, 12, "outer")); err != nil {
		t.Fatal(err)
	}
	frag, err = outer.Commit()
	if err != nil {
		t.Fatal(err)
	}
	if frag.Height != 24 || len(root.CurrentPage().Items) != 2 {
		t.Errorf("fragment height %v with %d root items, want 24 and 2",
			frag.Height, len(root.CurrentPage().Items))
	}
}
