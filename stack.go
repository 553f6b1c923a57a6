package compose

// Frame is a handle on a Context pushed onto a Writer's frame stack.
// Pop restores the previous frame.
//
//	f := w.PushContextSize(200, 400)
//	defer f.Pop()
type Frame struct {
	w        *Writer
	ctx      *Context
	depth    int
	released bool
}

// Context returns the frame's coordinate context.
func (f *Frame) Context() *Context {
	return f.ctx
}

// Pop releases the frame and restores the frame below it.
// Pop is a no-op if the frame was already released, including through
// Writer.PopContext. It panics if frames pushed after f are still on the
// stack.
func (f *Frame) Pop() {
	if f.released {
		return
	}
	if !f.onStack() {
		f.released = true
		return
	}
	if len(f.w.stack) > f.depth {
		panic("compose: Frame.Pop with nested frames still pushed")
	}
	f.w.PopContext()
	f.released = true
}

// onStack reports whether f is still on its writer's frame stack.
func (f *Frame) onStack() bool {
	w := f.w
	switch {
	case f.depth > len(w.stack):
		return false
	case f.depth == len(w.stack):
		return w.ctx == f.ctx
	default:
		return w.stack[f.depth] == f.ctx
	}
}

// PushContext makes ctx the current frame.
func (w *Writer) PushContext(ctx *Context) *Frame {
	w.stack = append(w.stack, w.ctx)
	w.ctx = ctx
	Logger().Debug("compose: push frame", "depth", len(w.stack))
	return &Frame{w: w, ctx: ctx, depth: len(w.stack)}
}

// PushContextSize pushes a new frame with one page of the given size,
// zero margins and the cursor at the origin.
func (w *Writer) PushContextSize(width, height float64) *Frame {
	return w.PushContext(NewContext(PageSize{Width: width, Height: height}, Margins{}))
}

// PushUnbreakableContext pushes a frame for measuring content in
// isolation: as wide as the current available width and as tall as the
// current page between its top and bottom margins.
func (w *Writer) PushUnbreakableContext() *Frame {
	height := w.ctx.innerHeight()
	if w.ctx.CurrentPage() == nil {
		height = w.ctx.AvailableHeight
	}
	return w.PushContextSize(w.ctx.AvailableWidth, height)
}

// PopContext removes the current frame and returns it. It panics if no
// frame was pushed.
func (w *Writer) PopContext() *Context {
	n := len(w.stack)
	if n == 0 {
		panic("compose: PopContext without matching PushContext")
	}
	top := w.ctx
	w.ctx = w.stack[n-1]
	w.stack[n-1] = nil
	w.stack = w.stack[:n-1]
	Logger().Debug("compose: pop frame", "depth", len(w.stack))
	return top
}

// Context returns the current frame.
func (w *Writer) Context() *Context {
	return w.ctx
}

// Depth returns the number of frames pushed on top of the root frame.
func (w *Writer) Depth() int {
	return len(w.stack)
}

// CurrentPosition returns the cursor position of the root frame.
//
// Nested frames are local coordinate systems used for isolated
// measurement; positions reported to callers always refer to the real
// page, so they are read from the bottom of the stack.
func (w *Writer) CurrentPosition() Position {
	if len(w.stack) > 0 {
		return w.stack[0].CurrentPosition()
	}
	return w.ctx.CurrentPosition()
}
