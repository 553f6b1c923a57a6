package compose

import "github.com/gogpu/compose/text"

// Option configures a Writer during creation.
//
// Example:
//
//	w := compose.NewWriter(ctx,
//	    compose.WithBidi(text.NewBidi(text.WithShaper(arabicShaper))),
//	    compose.WithTracker(compose.TrackerFunc(onLine)),
//	)
type Option func(*writerOptions)

// writerOptions holds optional configuration for Writer creation.
type writerOptions struct {
	bidi    *text.Bidi
	tracker Tracker
}

// defaultOptions returns the default writer options.
func defaultOptions() writerOptions {
	return writerOptions{
		bidi:    text.NewBidi(),
		tracker: nopTracker{},
	}
}

// WithBidi sets the reordering engine used to align committed lines.
func WithBidi(b *text.Bidi) Option {
	return func(o *writerOptions) {
		if b != nil {
			o.bidi = b
		}
	}
}

// WithTracker sets the observer notified of committed lines.
func WithTracker(t Tracker) Option {
	return func(o *writerOptions) {
		if t != nil {
			o.tracker = t
		}
	}
}

// PlaceOption adjusts a single placement operation.
type PlaceOption func(*placeOptions)

// placeOptions holds per-call placement options.
type placeOptions struct {
	index          int
	keepPosition   bool
	ignoreX        bool
	ignoreY        bool
	page           int
	useBlockOffset bool
}

// newPlaceOptions applies opts over the defaults: append to the current
// page and advance the cursor.
func newPlaceOptions(opts []PlaceOption) placeOptions {
	o := placeOptions{index: -1, page: -1}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// AtIndex inserts the item at index i of the page's item list instead of
// appending it. An index out of range appends.
func AtIndex(i int) PlaceOption {
	return func(o *placeOptions) {
		o.index = i
	}
}

// KeepPosition leaves the cursor where it is after placement.
func KeepPosition() PlaceOption {
	return func(o *placeOptions) {
		o.keepPosition = true
	}
}

// IgnoreContextX places a vector at its own X, without adding the cursor X.
func IgnoreContextX() PlaceOption {
	return func(o *placeOptions) {
		o.ignoreX = true
	}
}

// IgnoreContextY places a vector at its own Y, without adding the cursor Y.
func IgnoreContextY() PlaceOption {
	return func(o *placeOptions) {
		o.ignoreY = true
	}
}

// OnPage targets page index p (0-based) of the current frame instead of
// the current page. Used to backfill content onto an earlier page.
func OnPage(p int) PlaceOption {
	return func(o *placeOptions) {
		o.page = p
	}
}

// UseBlockOffset replays a fragment at its stored XOffset/YOffset instead
// of at the cursor, without checking the remaining height.
func UseBlockOffset() PlaceOption {
	return func(o *placeOptions) {
		o.useBlockOffset = true
	}
}
