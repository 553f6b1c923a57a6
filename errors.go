package compose

import "errors"

// Sentinel errors for placement operations.
var (
	// ErrNoPage is returned when the current frame has no page to place on.
	ErrNoPage = errors.New("compose: no current page")

	// ErrInsufficientSpace is returned when an element does not fit into the
	// remaining height of the current page.
	ErrInsufficientSpace = errors.New("compose: insufficient space on page")

	// ErrClipUnderflow is returned by EndClip without a matching BeginClip.
	ErrClipUnderflow = errors.New("compose: EndClip without matching BeginClip")

	// ErrBlockReleased is returned when an unbreakable block is committed
	// after it was already committed or released.
	ErrBlockReleased = errors.New("compose: unbreakable block already closed")
)
