// Package text provides the line model and the bidirectional reordering
// used by compose when lines are committed to a page.
//
// Upstream layout measures text and breaks it into lines of inline runs.
// Each run has a width and a direction tag. This package does not measure
// or break text. It fixes the visual order of runs within one line:
//
//   - Line, Inline: the measured line model
//   - ContainsRTL: direction classifier backed by Unicode bidi classes
//   - Bidi: run grouping and reordering for right-to-left lines (ReorderRTL)
//     and for left-to-right lines with embedded RTL runs (ReorderMixed)
//   - Bidi.Align: alignment and justification within the available width
//
// # Example usage
//
//	line := text.NewLine(200)
//	line.Direction = text.DirectionRTL
//	line.AddInline(&text.Inline{Text: "مرحبا", Width: 40, Height: 12, Direction: text.RunRTL})
//	line.AddInline(&text.Inline{Text: "world.", Width: 36, Height: 12, Direction: text.RunLTR})
//
//	b := text.NewBidi()
//	b.Align(line, 200) // right aligned, runs in visual order
//
// # Boundary punctuation
//
// Punctuation that closes an LTR run ahead of an RTL run (and the reverse
// for mixed lines) would end up on the wrong side after reordering. Bidi
// moves it to the front of its run and re-balances the widths with a
// Measurer. FixedMeasurer charges a constant per character; FaceMeasurer
// measures with a real font through go-text/typesetting:
//
//	m, err := text.NewFaceMeasurer(goregular.TTF, 12)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	b := text.NewBidi(text.WithMeasurer(m))
package text
