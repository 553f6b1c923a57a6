package text

// Shaper applies contextual glyph shaping to right-to-left text before it
// is committed. The default shaper returns its input unchanged.
type Shaper func(s string) string

// BidiOption configures a Bidi.
type BidiOption func(*bidiConfig)

// bidiConfig holds configuration for Bidi.
type bidiConfig struct {
	classify Classifier
	shape    Shaper
	measure  Measurer
}

// defaultBidiConfig returns the default bidi configuration.
func defaultBidiConfig() bidiConfig {
	return bidiConfig{
		classify: ContainsRTL,
		shape:    func(s string) string { return s },
		measure:  FixedMeasurer(DefaultCharWidth),
	}
}

// WithClassifier sets the function deciding whether an inline holds
// right-to-left text. The default is ContainsRTL.
func WithClassifier(c Classifier) BidiOption {
	return func(cfg *bidiConfig) {
		if c != nil {
			cfg.classify = c
		}
	}
}

// WithShaper sets the RTL shaping function applied to reordered RTL runs.
func WithShaper(s Shaper) BidiOption {
	return func(cfg *bidiConfig) {
		if s != nil {
			cfg.shape = s
		}
	}
}

// WithMeasurer sets the measurer used to re-balance widths when boundary
// punctuation moves between inlines. The default charges DefaultCharWidth
// per character; a FaceMeasurer measures with a real font.
func WithMeasurer(m Measurer) BidiOption {
	return func(cfg *bidiConfig) {
		if m != nil {
			cfg.measure = m
		}
	}
}

// Bidi repairs the visual order of mixed-direction inline runs within a
// measured line. It is not a Unicode Bidirectional Algorithm
// implementation: it works on whole inlines, never inside one.
//
// Reordering mutates the line in place. Clone the line first to keep the
// logical order.
type Bidi struct {
	classify Classifier
	shape    Shaper
	measure  Measurer
}

// NewBidi creates a Bidi with the given options.
func NewBidi(opts ...BidiOption) *Bidi {
	cfg := defaultBidiConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Bidi{
		classify: cfg.classify,
		shape:    cfg.shape,
		measure:  cfg.measure,
	}
}

// HasEmbeddedRTL reports whether any inline of the line holds
// right-to-left text.
func (b *Bidi) HasEmbeddedRTL(line *Line) bool {
	for _, in := range line.Inlines {
		if b.classify(in.Text) {
			return true
		}
	}
	return false
}

// ReorderRTL reorders the inlines of a right-to-left line.
//
// Boundary punctuation of every LTR run that precedes an RTL run is moved
// to the front of that LTR run. The line is then cut into groups (one per
// LTR run, split at bracketed spans, one per other inline), the group order
// is reversed and the inlines are laid out again from the X of the first
// inline. RTL inlines are shaped and get their trailing punctuation
// whitespace normalized.
func (b *Bidi) ReorderRTL(line *Line) {
	if len(line.Inlines) == 0 {
		return
	}
	b.transferBoundary(line.Inlines, RunLTR, RunRTL)

	groups := groupInlines(line.Inlines)
	out := make([]*Inline, 0, len(line.Inlines))
	for i := len(groups) - 1; i >= 0; i-- {
		out = append(out, groups[i]...)
	}

	slogger().Debug("text: reorder rtl line", "inlines", len(out), "groups", len(groups))

	x := line.Inlines[0].X
	for _, in := range out {
		in.X = x
		x += in.Width
		if in.Direction == RunRTL {
			in.Text = fixTrailingSymbols(b.shape(in.Text))
		}
	}
	line.Inlines = out
}

// ReorderMixed reorders a left-to-right line with embedded right-to-left
// runs.
//
// Every inline holding RTL text is tagged RunRTL. Boundary punctuation of
// every RTL run that precedes an LTR run is moved to the front of that RTL
// run. Each maximal sequence of RTL inlines is then reversed in place while
// LTR inlines keep their order, and the line is laid out again from the X
// of the first inline. RTL inlines are shaped.
func (b *Bidi) ReorderMixed(line *Line) {
	if len(line.Inlines) == 0 {
		return
	}
	for _, in := range line.Inlines {
		if b.classify(in.Text) {
			in.Direction = RunRTL
			in.RTL = true
		}
	}
	b.transferBoundary(line.Inlines, RunRTL, RunLTR)

	out := make([]*Inline, 0, len(line.Inlines))
	var buf []*Inline
	flush := func() {
		for i := len(buf) - 1; i >= 0; i-- {
			out = append(out, buf[i])
		}
		buf = buf[:0]
	}
	for _, in := range line.Inlines {
		if in.Direction == RunRTL {
			buf = append(buf, in)
			continue
		}
		flush()
		out = append(out, in)
	}
	flush()

	slogger().Debug("text: reorder mixed line", "inlines", len(out))

	x := line.Inlines[0].X
	for _, in := range out {
		in.X = x
		x += in.Width
		if in.Direction == RunRTL {
			in.Text = b.shape(in.Text)
		}
	}
	line.Inlines = out
}
