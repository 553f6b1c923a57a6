package compose

import "github.com/gogpu/compose/text"

// Tracker observes committed lines. Upstream layout uses it to resolve
// deferred references such as page numbers in a table of contents.
type Tracker interface {
	LineAdded(line *text.Line)
}

// TrackerFunc adapts an ordinary function to the Tracker interface.
type TrackerFunc func(line *text.Line)

// LineAdded implements Tracker.
func (f TrackerFunc) LineAdded(line *text.Line) { f(line) }

type nopTracker struct{}

func (nopTracker) LineAdded(*text.Line) {}
