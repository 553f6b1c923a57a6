package compose

// Fragment is a block of already placed items that can be replayed at
// another position. Replay copies every item; the fragment itself is never
// modified.
type Fragment struct {
	Items  []Item
	Height float64

	// XOffset and YOffset are used instead of the cursor when the fragment
	// is replayed with UseBlockOffset.
	XOffset, YOffset float64
}

// AddFragment replays frag onto the current page.
//
// Items are offset by the cursor, or by frag.XOffset/YOffset with
// UseBlockOffset. Lines are cloned and their anchor is moved to the
// current page. Vectors flagged UnbreakableBackground are inserted at the
// page's background boundary, in fragment order, so they paint beneath
// items already on the page. The boundary itself does not move. The cursor advances by frag.Height unless KeepPosition is given.
//
// Without UseBlockOffset, AddFragment fails with ErrInsufficientSpace if
// frag is taller than the remaining height.
func (w *Writer) AddFragment(frag *Fragment, opts ...PlaceOption) error {
	o := newPlaceOptions(opts)
	ctx := w.ctx
	page := ctx.CurrentPage()

	if page == nil {
		return ErrNoPage
	}
	if !o.useBlockOffset && frag.Height > ctx.AvailableHeight {
		Logger().Warn("compose: fragment does not fit",
			"height", frag.Height, "available", ctx.AvailableHeight, "page", ctx.Page+1)
		return ErrInsufficientSpace
	}

	dx, dy := ctx.X, ctx.Y
	if o.useBlockOffset {
		dx, dy = frag.XOffset, frag.YOffset
	}

	// Backgrounds of one fragment keep their relative order: an inner
	// fill stays above the fill of its enclosing block.
	bg := ctx.backgroundIndex()

	for _, it := range frag.Items {
		switch it := it.(type) {
		case LineItem:
			l := it.Line.Clone()
			if l.Anchor != nil {
				l.Anchor.PageNumber = ctx.Page + 1
			}
			l.X += dx
			l.Y += dy
			page.Items = append(page.Items, LineItem{Line: l})

		case VectorItem:
			v := it.Vector.Clone()
			v.Offset(dx, dy)
			if v.UnbreakableBackground {
				v.UnbreakableBackground = false
				page.insert(VectorItem{Vector: v}, bg)
				bg++
				continue
			}
			page.Items = append(page.Items, VectorItem{Vector: v})

		case ImageItem:
			img := it.Image.Clone()
			img.X += dx
			img.Y += dy
			page.Items = append(page.Items, ImageItem{Image: img, SVG: it.SVG})

		case BeginClipItem:
			it.Rect = it.Rect.Translate(dx, dy)
			page.Items = append(page.Items, it)

		case EndClipItem:
			page.Items = append(page.Items, it)
		}
	}

	Logger().Debug("compose: fragment replayed",
		"items", len(frag.Items), "height", frag.Height, "page", ctx.Page+1)

	if !o.keepPosition {
		ctx.MoveDown(frag.Height)
	}
	return nil
}

// Block is an open unbreakable block: content composed in an isolated
// frame and committed to the enclosing frame as a whole.
//
// Blocks nest; only the outermost block owns a frame, inner blocks commit
// into it.
type Block struct {
	w      *Writer
	frame  *Frame
	closed bool
}

// BeginUnbreakable opens an unbreakable block. Until the block is
// committed or released, placement goes to an isolated frame as wide as
// the available width and as tall as the page's inner height.
//
//	b := w.BeginUnbreakable()
//	defer b.Release()
//	...
//	frag, err := b.Commit()
func (w *Writer) BeginUnbreakable() *Block {
	b := &Block{w: w}
	if w.unbreakable == 0 {
		b.frame = w.PushUnbreakableContext()
	}
	w.unbreakable++
	return b
}

// Commit closes the block and replays its content at the cursor of the
// enclosing frame. opts apply to the replay.
//
// The returned fragment holds the block's content. If the replay fails
// with ErrInsufficientSpace the fragment is still returned, so the caller
// can retry with AddFragment on a new page. A nested block returns a nil
// fragment: its content stays in the enclosing block.
func (b *Block) Commit(opts ...PlaceOption) (*Fragment, error) {
	frag, err := b.close(false)
	if frag == nil || err != nil {
		return frag, err
	}
	return frag, b.w.AddFragment(frag, opts...)
}

// CommitAt closes the block and replays its content at (x, y) without
// checking the remaining height and without moving the cursor. It is used
// for out-of-flow content such as headers, footers and backgrounds.
func (b *Block) CommitAt(x, y float64) (*Fragment, error) {
	frag, err := b.close(true)
	if frag == nil || err != nil {
		return frag, err
	}
	frag.XOffset, frag.YOffset = x, y
	return frag, b.w.AddFragment(frag, UseBlockOffset(), KeepPosition())
}

// Release closes the block without committing it. It is a no-op after
// Commit, CommitAt or a previous Release.
func (b *Block) Release() {
	if b.closed {
		return
	}
	b.closed = true
	b.w.unbreakable--
	if b.frame != nil {
		b.frame.Pop()
	}
}

// close pops the block's frame and captures its first page as a fragment.
func (b *Block) close(outOfFlow bool) (*Fragment, error) {
	if b.closed {
		return nil, ErrBlockReleased
	}
	b.closed = true
	b.w.unbreakable--
	if b.frame == nil {
		return nil, nil
	}

	iso := b.frame.Context()
	b.frame.Pop()

	frag := &Fragment{Items: iso.Pages[0].Items, Height: iso.Y}
	if len(iso.Pages) > 1 {
		// Multi-page blocks are not split: the fragment claims a full page.
		if outOfFlow {
			frag.Height = iso.innerHeight()
		} else {
			frag.Height = b.w.ctx.innerHeight()
		}
	}
	Logger().Debug("compose: unbreakable block closed",
		"items", len(frag.Items), "height", frag.Height, "pages", len(iso.Pages))
	return frag, nil
}
