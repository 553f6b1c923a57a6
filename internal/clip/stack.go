package clip

// ClipStack manages nested clip regions with push/pop operations.
// Each pushed rectangle narrows the effective bounds to its intersection
// with the enclosing region; Pop restores the enclosing region.
type ClipStack struct {
	entries []clipEntry
	bounds  Rect
}

// clipEntry represents a single clip operation in the stack.
type clipEntry struct {
	prevBounds Rect
	rect       Rect
}

// NewClipStack creates a new clip stack with the given bounds.
// The bounds represent the maximum clipping area (typically the page).
func NewClipStack(bounds Rect) *ClipStack {
	return &ClipStack{
		entries: make([]clipEntry, 0, 4),
		bounds:  bounds,
	}
}

// PushRect pushes a rectangular clip region onto the stack.
// The new clip bounds are the intersection of the current bounds and the given rectangle.
func (cs *ClipStack) PushRect(r Rect) {
	cs.entries = append(cs.entries, clipEntry{
		prevBounds: cs.bounds,
		rect:       r,
	})
	cs.bounds = cs.bounds.Intersect(r)
}

// Pop removes the most recent clip region from the stack and returns it.
// ok is false if the stack is empty.
func (cs *ClipStack) Pop() (r Rect, ok bool) {
	if len(cs.entries) == 0 {
		return Rect{}, false
	}

	lastIdx := len(cs.entries) - 1
	entry := cs.entries[lastIdx]
	cs.bounds = entry.prevBounds
	cs.entries = cs.entries[:lastIdx]

	return entry.rect, true
}

// Bounds returns the current effective clip bounds.
// This is the intersection of all pushed clip regions.
func (cs *ClipStack) Bounds() Rect {
	return cs.bounds
}

// Depth returns the current depth of the clip stack.
func (cs *ClipStack) Depth() int {
	return len(cs.entries)
}
