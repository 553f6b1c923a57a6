package text

// Align positions a line within availableWidth and repairs its visual
// order.
//
// The alignment is taken from the first inline. A right-to-left line
// treats unset or left alignment as right and is reordered with
// ReorderRTL. A left-to-right line holding RTL text treats unset or right
// alignment as left and is reordered with ReorderMixed.
//
// Right and center alignment shift line.X. Justify spreads the remaining
// space evenly between inlines, except on a forced line break, on the last
// line of a paragraph, and on a line with a single inline.
//
// The line width is taken before reordering.
func (b *Bidi) Align(line *Line, availableWidth float64) {
	if len(line.Inlines) == 0 {
		return
	}
	width := line.Width()
	align := line.Inlines[0].Alignment

	switch {
	case line.IsRTL():
		if align == AlignLeft {
			align = AlignRight
		}
		b.ReorderRTL(line)
	case b.HasEmbeddedRTL(line):
		if align == AlignRight {
			align = AlignLeft
		}
		b.ReorderMixed(line)
	}

	line.X += align.Offset(availableWidth, width)

	if align != AlignJustify || line.NewLineForced || line.LastLineInParagraph || len(line.Inlines) < 2 {
		return
	}
	gap := (availableWidth - width) / float64(len(line.Inlines)-1)
	for i := 1; i < len(line.Inlines); i++ {
		in := line.Inlines[i]
		in.X += float64(i) * gap
		in.JustifyShift = gap
	}
}
