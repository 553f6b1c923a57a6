// Package compose commits measured layout primitives onto pages.
//
// # Overview
//
// compose is the placement stage of a page-layout pipeline. An upstream
// layout pass measures text into lines of inline runs and sizes images,
// SVGs, vectors and QR codes. compose takes those primitives, checks that
// they fit, places them at concrete page coordinates and advances a cursor.
// Lines are aligned and, for right-to-left or mixed-direction content,
// reordered by the text package on the way in.
//
// # Quick Start
//
//	import "github.com/gogpu/compose"
//
//	ctx := compose.NewContext(compose.A4, compose.Margins{Left: 40, Top: 40, Right: 40, Bottom: 40})
//	w := compose.NewWriter(ctx)
//
//	line := text.NewLine(ctx.AvailableWidth)
//	line.Direction = text.DirectionRTL
//	line.AddInline(&text.Inline{Text: "مرحبا", Width: 40, Height: 12, Direction: text.RunRTL})
//
//	if _, err := w.AddLine(line); errors.Is(err, compose.ErrInsufficientSpace) {
//	    ctx.AddPage(compose.A4)
//	    _, err = w.AddLine(line)
//	}
//
// # Coordinate System
//
// Uses page coordinates in points:
//   - Origin (0,0) at the top-left corner of the page
//   - X increases right
//   - Y increases down
//
// # Frames
//
// A Writer works on a stack of Context frames. Content that must not be
// split across pages is composed in an isolated frame and committed later
// as a Fragment:
//
//	b := w.BeginUnbreakable()
//	defer b.Release()
//	// ... add lines and vectors to the isolated frame ...
//	frag, err := b.Commit()
//
// Positions returned by placement operations always refer to the root
// frame, so cross-references resolve to the real page position.
//
// # Errors
//
// Placement fails with ErrNoPage or ErrInsufficientSpace. The caller is
// expected to start a new page or frame and retry; compose never retries
// on its own. Misuse of the frame stack panics.
package compose
