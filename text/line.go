package text

// Inline is a measured run of text with uniform direction.
// X is relative to the origin of the containing Line.
type Inline struct {
	Text       string
	Width      float64
	Height     float64
	LineHeight float64 // multiplier applied to Height; 0 means 1
	X          float64

	Direction RunDirection
	RTL       bool

	// Alignment is only consulted on the first inline of a line.
	Alignment Alignment

	// JustifyShift is the per-gap spacing applied by justification.
	JustifyShift float64

	// boundaryMoved is set once a boundary character was transferred off
	// this run, so repeated transfers never move a second character.
	boundaryMoved bool
}

// Anchor is a cross-reference target attached to a line (table of contents
// entries, internal links). Its page number is fixed up when the line is
// committed through fragment replay.
type Anchor struct {
	ID         string
	PageNumber int
}

// Line is a measured line of inline runs.
//
// Lines are mutated in place by Bidi and by placement. A caller that needs
// the pre-reordering state must keep a Clone.
type Line struct {
	MaxWidth float64
	X, Y     float64

	// Direction is the base direction of the line.
	Direction Direction
	Inlines   []*Inline

	NewLineForced       bool
	LastLineInParagraph bool

	// Anchor is shared between a line and its clones.
	Anchor *Anchor
}

// NewLine creates an empty line of the given maximum width.
func NewLine(maxWidth float64) *Line {
	return &Line{MaxWidth: maxWidth}
}

// AddInline appends in at the end of the line, placing it right after the
// current last inline.
func (l *Line) AddInline(in *Inline) {
	in.X = l.Width()
	l.Inlines = append(l.Inlines, in)
}

// IsRTL reports whether the base direction of the line is right-to-left.
func (l *Line) IsRTL() bool {
	return l.Direction == DirectionRTL
}

// Width returns the extent of the line: the end of its last inline.
func (l *Line) Width() float64 {
	if len(l.Inlines) == 0 {
		return 0
	}
	last := l.Inlines[len(l.Inlines)-1]
	return last.X + last.Width
}

// Height returns the tallest inline height, scaled by its line height.
func (l *Line) Height() float64 {
	var h float64
	for _, in := range l.Inlines {
		lh := in.LineHeight
		if lh == 0 {
			lh = 1
		}
		if v := in.Height * lh; v > h {
			h = v
		}
	}
	return h
}

// Clone returns a deep copy of l. The Anchor is shared.
func (l *Line) Clone() *Line {
	c := *l
	if l.Inlines != nil {
		c.Inlines = make([]*Inline, len(l.Inlines))
		for i, in := range l.Inlines {
			cp := *in
			c.Inlines[i] = &cp
		}
	}
	return &c
}
