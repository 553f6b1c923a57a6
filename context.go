package compose

import "github.com/gogpu/compose/internal/clip"

// Orientation is the orientation of a page.
type Orientation uint8

const (
	// Portrait pages are taller than wide.
	Portrait Orientation = iota
	// Landscape pages are wider than tall.
	Landscape
)

// String returns the string representation of the orientation.
func (o Orientation) String() string {
	switch o {
	case Portrait:
		return "portrait"
	case Landscape:
		return "landscape"
	default:
		return "Unknown"
	}
}

// PageSize is the size of a page in points.
type PageSize struct {
	Width, Height float64
	Orientation   Orientation
}

// Standard page sizes.
var (
	A4     = PageSize{Width: 595.28, Height: 841.89}
	Letter = PageSize{Width: 612, Height: 792}
)

// Margins are the page margins in points.
type Margins struct {
	Left, Top, Right, Bottom float64
}

// Page is an ordered list of placed items.
type Page struct {
	Size  PageSize
	Items []Item
}

// insert adds it at index, or appends it when index is out of range.
func (p *Page) insert(it Item, index int) {
	if index < 0 || index > len(p.Items) {
		p.Items = append(p.Items, it)
		return
	}
	p.Items = append(p.Items, nil)
	copy(p.Items[index+1:], p.Items[index:])
	p.Items[index] = it
}

// Position is a snapshot of the cursor on its page. Placement operations
// return it so callers can resolve cross-references (table of contents,
// links) to the spot an element was placed at.
type Position struct {
	PageNumber      int // 1-based
	Orientation     Orientation
	PageInnerWidth  float64
	PageInnerHeight float64
	Left, Top       float64

	// Ratios of the cursor within the page's inner area, from the top-left
	// margin corner.
	VerticalRatio   float64
	HorizontalRatio float64
}

// Context is a coordinate frame: a set of pages, the current page, the
// cursor on it and the space remaining below and to the right of it.
//
// AvailableWidth and AvailableHeight never go negative; they shrink as the
// cursor advances and are reset by AddPage.
type Context struct {
	Pages []*Page
	Page  int // index of the current page

	X, Y            float64
	AvailableWidth  float64
	AvailableHeight float64
	Margins         Margins

	// BackgroundLength holds, per page, the number of leading items that
	// are page backgrounds. Unbreakable-block backgrounds are inserted at
	// this index.
	BackgroundLength []int

	clips *clip.ClipStack
}

// NewContext creates a frame with one page of the given size.
func NewContext(size PageSize, margins Margins) *Context {
	c := &Context{Margins: margins}
	c.AddPage(size)
	return c
}

// AddPage appends a page, makes it current and moves the cursor to its
// top-left margin corner.
func (c *Context) AddPage(size PageSize) *Page {
	p := &Page{Size: size}
	c.Pages = append(c.Pages, p)
	c.BackgroundLength = append(c.BackgroundLength, 0)
	c.Page = len(c.Pages) - 1

	c.X = c.Margins.Left
	c.Y = c.Margins.Top
	c.AvailableWidth = nonNegative(size.Width - c.Margins.Left - c.Margins.Right)
	c.AvailableHeight = nonNegative(size.Height - c.Margins.Top - c.Margins.Bottom)
	return p
}

// CurrentPage returns the current page, or nil if the frame has none.
func (c *Context) CurrentPage() *Page {
	return c.pageAt(c.Page)
}

// pageAt returns page i, or nil if i is out of range.
func (c *Context) pageAt(i int) *Page {
	if i < 0 || i >= len(c.Pages) {
		return nil
	}
	return c.Pages[i]
}

// MoveDown advances the cursor by dy and shrinks the available height.
func (c *Context) MoveDown(dy float64) {
	c.Y += dy
	c.AvailableHeight = nonNegative(c.AvailableHeight - dy)
}

// MarkBackground records the current item count of the current page as
// its background boundary.
func (c *Context) MarkBackground() {
	if c.CurrentPage() == nil {
		return
	}
	c.BackgroundLength[c.Page] = len(c.Pages[c.Page].Items)
}

// backgroundIndex returns the background boundary of the current page.
func (c *Context) backgroundIndex() int {
	if c.Page < 0 || c.Page >= len(c.BackgroundLength) {
		return 0
	}
	return c.BackgroundLength[c.Page]
}

// innerHeight returns the height of the current page between its top and
// bottom margins.
func (c *Context) innerHeight() float64 {
	p := c.CurrentPage()
	if p == nil {
		return 0
	}
	return p.Size.Height - c.Margins.Top - c.Margins.Bottom
}

// CurrentPosition returns a snapshot of the cursor on the current page.
// It returns the zero Position if the frame has no page.
func (c *Context) CurrentPosition() Position {
	p := c.CurrentPage()
	if p == nil {
		return Position{}
	}
	innerW := p.Size.Width - c.Margins.Left - c.Margins.Right
	innerH := p.Size.Height - c.Margins.Top - c.Margins.Bottom

	pos := Position{
		PageNumber:      c.Page + 1,
		Orientation:     p.Size.Orientation,
		PageInnerWidth:  innerW,
		PageInnerHeight: innerH,
		Left:            c.X,
		Top:             c.Y,
	}
	if innerH > 0 {
		pos.VerticalRatio = (c.Y - c.Margins.Top) / innerH
	}
	if innerW > 0 {
		pos.HorizontalRatio = (c.X - c.Margins.Left) / innerW
	}
	return pos
}

// clipStack returns the clip stack of the frame, creating it on first use
// with the current page as its outer bounds.
func (c *Context) clipStack() *clip.ClipStack {
	if c.clips == nil {
		var bounds clip.Rect
		if p := c.CurrentPage(); p != nil {
			bounds = clip.NewRect(0, 0, p.Size.Width, p.Size.Height)
		}
		c.clips = clip.NewClipStack(bounds)
	}
	return c.clips
}

func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
