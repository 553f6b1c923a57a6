package compose

import (
	"github.com/gogpu/compose/internal/clip"
	"github.com/gogpu/compose/text"
)

// Rect is a rectangle in page coordinates.
type Rect = clip.Rect

// NewRect creates a Rect from position and size.
func NewRect(x, y, w, h float64) Rect {
	return clip.NewRect(x, y, w, h)
}

// Writer places lines, images, vectors and clip markers on the pages of
// its current Context frame and advances the frame's cursor.
//
// A Writer is not safe for concurrent use.
type Writer struct {
	ctx   *Context
	stack []*Context

	bidi    *text.Bidi
	tracker Tracker

	unbreakable int
}

// NewWriter creates a Writer working on ctx.
func NewWriter(ctx *Context, opts ...Option) *Writer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Writer{
		ctx:     ctx,
		bidi:    o.bidi,
		tracker: o.tracker,
	}
}

// AddLine offsets line by the cursor, aligns and reorders it, and inserts
// it into the current page. It returns the position before placement.
//
// AddLine fails with ErrNoPage if the frame has no current page and with
// ErrInsufficientSpace if the line is taller than the remaining height.
// A line exactly as tall as the remaining height fits.
func (w *Writer) AddLine(line *text.Line, opts ...PlaceOption) (Position, error) {
	o := newPlaceOptions(opts)
	ctx := w.ctx
	page := ctx.CurrentPage()
	pos := w.CurrentPosition()
	height := line.Height()

	if page == nil {
		Logger().Warn("compose: no page for line", "depth", len(w.stack))
		return Position{}, ErrNoPage
	}
	if ctx.AvailableHeight < height {
		Logger().Warn("compose: line does not fit",
			"height", height, "available", ctx.AvailableHeight, "page", ctx.Page+1)
		return Position{}, ErrInsufficientSpace
	}

	line.X += ctx.X
	line.Y += ctx.Y
	w.bidi.Align(line, ctx.AvailableWidth)

	page.insert(LineItem{Line: line}, o.index)
	w.tracker.LineAdded(line)

	if !o.keepPosition {
		ctx.MoveDown(height)
	}
	return pos, nil
}

// AddImage places a raster image at the cursor.
//
// It fails with ErrNoPage if the frame has no current page. A non-absolute
// image taller than the remaining height fails with ErrInsufficientSpace,
// unless the page is still empty: an oversized image on an empty page is
// placed anyway, as no other page would hold it either.
func (w *Writer) AddImage(img *Image, opts ...PlaceOption) (Position, error) {
	return w.addImage(img, false, newPlaceOptions(opts))
}

// AddSVG places an SVG image at the cursor. See AddImage.
func (w *Writer) AddSVG(img *Image, opts ...PlaceOption) (Position, error) {
	return w.addImage(img, true, newPlaceOptions(opts))
}

func (w *Writer) addImage(img *Image, svg bool, o placeOptions) (Position, error) {
	ctx := w.ctx
	page := ctx.CurrentPage()
	pos := w.CurrentPosition()

	if page == nil {
		return Position{}, ErrNoPage
	}
	if !img.Absolute && ctx.AvailableHeight < img.Height && len(page.Items) > 0 {
		Logger().Warn("compose: image does not fit",
			"height", img.Height, "available", ctx.AvailableHeight, "page", ctx.Page+1)
		return Position{}, ErrInsufficientSpace
	}

	img.resolve(ctx)
	page.insert(ImageItem{Image: img, SVG: svg}, o.index)

	if !o.keepPosition {
		ctx.MoveDown(img.Height)
	}
	return pos, nil
}

// AddQR places a QR code at the cursor. Each vector of qr.Canvas is
// copied, moved to the resolved position of the code and added to the
// current page; qr.Canvas itself is left untouched.
//
// The fit rules are those of AddImage, without the empty-page exemption.
func (w *Writer) AddQR(qr *QR, opts ...PlaceOption) (Position, error) {
	o := newPlaceOptions(opts)
	ctx := w.ctx
	page := ctx.CurrentPage()
	pos := w.CurrentPosition()

	if page == nil {
		return Position{}, ErrNoPage
	}
	if !qr.Absolute && ctx.AvailableHeight < qr.Height {
		Logger().Warn("compose: qr does not fit",
			"height", qr.Height, "available", ctx.AvailableHeight, "page", ctx.Page+1)
		return Position{}, ErrInsufficientSpace
	}

	qr.resolve(ctx)
	for i, v := range qr.Canvas {
		c := v.Clone()
		c.Offset(qr.X, qr.Y)
		index := o.index
		if index >= 0 {
			index += i
		}
		page.insert(VectorItem{Vector: c}, index)
	}

	if !o.keepPosition {
		ctx.MoveDown(qr.Height)
	}
	return pos, nil
}

// AddVector offsets v by the cursor and adds it to the current page.
// IgnoreContextX and IgnoreContextY keep v's own coordinates on that axis;
// OnPage targets an earlier page of the frame.
func (w *Writer) AddVector(v *Vector, opts ...PlaceOption) (Position, error) {
	o := newPlaceOptions(opts)
	ctx := w.ctx
	page := ctx.CurrentPage()
	if o.page >= 0 {
		page = ctx.pageAt(o.page)
	}
	pos := w.CurrentPosition()

	if page == nil {
		return Position{}, ErrNoPage
	}

	var dx, dy float64
	if !o.ignoreX {
		dx = ctx.X
	}
	if !o.ignoreY {
		dy = ctx.Y
	}
	v.Offset(dx, dy)
	page.insert(VectorItem{Vector: v}, o.index)
	return pos, nil
}

// AlignCanvas shifts the vectors of c horizontally so that a canvas of
// c.MinWidth is aligned within the available width.
func (w *Writer) AlignCanvas(c *Canvas) {
	offset := c.Alignment.Offset(w.ctx.AvailableWidth, c.MinWidth)
	if offset == 0 {
		return
	}
	for _, v := range c.Vectors {
		v.Offset(offset, 0)
	}
}

// BeginClip opens a clip region of the given size at the cursor.
// Every BeginClip must be balanced by an EndClip.
func (w *Writer) BeginClip(width, height float64) error {
	ctx := w.ctx
	page := ctx.CurrentPage()
	if page == nil {
		return ErrNoPage
	}
	r := NewRect(ctx.X, ctx.Y, width, height)
	page.Items = append(page.Items, BeginClipItem{Rect: r})
	ctx.clipStack().PushRect(r)
	return nil
}

// EndClip closes the innermost clip region opened by BeginClip.
// It returns ErrClipUnderflow if no region is open.
func (w *Writer) EndClip() error {
	ctx := w.ctx
	page := ctx.CurrentPage()
	if page == nil {
		return ErrNoPage
	}
	r, ok := ctx.clipStack().Pop()
	if !ok {
		Logger().Warn("compose: clip underflow", "page", ctx.Page+1)
		return ErrClipUnderflow
	}
	Logger().Debug("compose: clip closed", "rect", r, "depth", ctx.clipStack().Depth())
	page.Items = append(page.Items, EndClipItem{})
	return nil
}

// ClipBounds returns the effective clip rectangle of the current frame:
// the intersection of all open clip regions, or the page if none is open.
func (w *Writer) ClipBounds() Rect {
	return w.ctx.clipStack().Bounds()
}

// ClipDepth returns the number of open clip regions in the current frame.
func (w *Writer) ClipDepth() int {
	if w.ctx.clips == nil {
		return 0
	}
	return w.ctx.clips.Depth()
}

// MarkBackground records the current item count of the current page as
// the boundary below which unbreakable-block backgrounds are inserted.
func (w *Writer) MarkBackground() {
	w.ctx.MarkBackground()
}
