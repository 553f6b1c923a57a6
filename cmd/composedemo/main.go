// Command composedemo lays out a few mixed Arabic and Latin paragraphs and
// prints the placed items of every page.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/compose"
	"github.com/gogpu/compose/text"
)

var paragraphs = []string{
	"Left-to-Right (English) text: This is normal English text that flows from left to right.",
	"هذا النص العربي يجب أن يظهر من اليمين إلى اليسار تلقائياً مع الخط العربي المناسب.",
	"فحص مستوى سائل التبريد(زيت)",
	"فحص نظام (التكييف) والتدفئة",
	"فحص البطارية (Battery Condition) {Voltage Test} [12.5V] <نتيجة طبيعية>.",
	"Mixed line with an embedded phrase مرحبا بالعالم in the middle.",
}

func main() {
	var (
		width   = flag.Float64("width", 420, "page width")
		height  = flag.Float64("height", 200, "page height")
		margin  = flag.Float64("margin", 20, "page margin")
		size    = flag.Float64("size", 12, "font size")
		useFont = flag.Bool("font", false, "measure with the Go Regular face instead of fixed widths")
		align   = flag.String("align", "left", "paragraph alignment: left, center, right or justify")
		verbose = flag.Bool("v", false, "log placement decisions")
		output  = flag.String("png", "", "also render the pages to this PNG file")
	)
	flag.Parse()

	if *verbose {
		compose.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	var m text.Measurer = text.FixedMeasurer(text.DefaultCharWidth)
	if *useFont {
		fm, err := text.NewFaceMeasurer(goregular.TTF, *size)
		if err != nil {
			log.Fatalf("Failed to load font: %v", err)
		}
		m = fm
	}

	alignment, err := parseAlignment(*align)
	if err != nil {
		log.Fatal(err)
	}

	page := compose.PageSize{Width: *width, Height: *height}
	ctx := compose.NewContext(page, compose.Margins{Left: *margin, Top: *margin, Right: *margin, Bottom: *margin})
	w := compose.NewWriter(ctx, compose.WithBidi(text.NewBidi(text.WithMeasurer(m))))

	if err := addBanner(w, "Arabic RTL Support Demo", *size, m); err != nil {
		log.Fatalf("Failed to place banner: %v", err)
	}

	for _, p := range paragraphs {
		lines := breakLines(p, ctx.AvailableWidth, *size, m, alignment)
		for _, line := range lines {
			if _, err := w.AddLine(line); err != nil {
				ctx.AddPage(page)
				if _, err := w.AddLine(line); err != nil {
					log.Fatalf("Failed to place line: %v", err)
				}
			}
		}
		ctx.MoveDown(*size / 2)
	}

	for i, pg := range ctx.Pages {
		fmt.Printf("page %d\n", i+1)
		for _, it := range pg.Items {
			li, ok := it.(compose.LineItem)
			if !ok {
				fmt.Printf("  %s\n", it.Kind())
				continue
			}
			fmt.Printf("  line (%.1f, %.1f) %s\n", li.Line.X, li.Line.Y, render(li.Line))
		}
	}

	if *output != "" {
		if err := renderPNG(ctx, *output, *size); err != nil {
			log.Fatalf("Failed to render: %v", err)
		}
		log.Printf("Pages saved to %s\n", *output)
	}
}

// addBanner commits a title as one unbreakable block: a tinted
// background, the clipped title lines and a rule below them.
func addBanner(w *compose.Writer, title string, size float64, m text.Measurer) error {
	b := w.BeginUnbreakable()
	defer b.Release()

	ctx := w.Context()
	lines := breakLines(title, ctx.AvailableWidth, size, m, text.AlignCenter)
	height := float64(len(lines)+1) * size

	bg := &compose.Vector{
		Kind:                  compose.VectorRect,
		W:                     ctx.AvailableWidth,
		H:                     height,
		Color:                 compose.Hex("#dde7f5"),
		UnbreakableBackground: true,
	}
	if _, err := w.AddVector(bg); err != nil {
		return err
	}

	ctx.MoveDown(size / 2)
	if err := w.BeginClip(ctx.AvailableWidth, float64(len(lines))*size); err != nil {
		return err
	}
	for _, line := range lines {
		if _, err := w.AddLine(line); err != nil {
			return err
		}
	}
	if err := w.EndClip(); err != nil {
		return err
	}
	ctx.MoveDown(size / 2)

	rule := &compose.Vector{
		Kind:      compose.VectorLine,
		X2:        ctx.AvailableWidth,
		Color:     compose.Hex("#4a6fa5"),
		LineWidth: 1,
	}
	if _, err := w.AddVector(rule); err != nil {
		return err
	}

	_, err := b.Commit()
	return err
}

// breakLines splits p into words and fills lines up to maxWidth.
func breakLines(p string, maxWidth, size float64, m text.Measurer, align text.Alignment) []*text.Line {
	words := strings.Fields(p)
	base := text.DirectionLTR
	if len(words) > 0 && text.ContainsRTL(words[0]) {
		base = text.DirectionRTL
	}

	var lines []*text.Line
	line := text.NewLine(maxWidth)
	line.Direction = base
	space := m.Measure(" ")

	for _, word := range words {
		in := &text.Inline{
			Text:      word + " ",
			Width:     m.Measure(word) + space,
			Height:    size,
			Alignment: align,
		}
		if text.ContainsRTL(word) {
			in.Direction = text.RunRTL
			in.RTL = true
		} else {
			in.Direction = text.RunLTR
		}
		if len(line.Inlines) > 0 && line.Width()+in.Width > maxWidth {
			lines = append(lines, line)
			line = text.NewLine(maxWidth)
			line.Direction = base
		}
		line.AddInline(in)
	}
	if len(line.Inlines) > 0 {
		line.LastLineInParagraph = true
		lines = append(lines, line)
	}
	return lines
}

// render prints the inlines in visual order.
func render(l *text.Line) string {
	parts := make([]string, 0, len(l.Inlines))
	for _, in := range l.Inlines {
		parts = append(parts, fmt.Sprintf("[%.1f %q]", in.X, strings.TrimSpace(in.Text)))
	}
	return strings.Join(parts, " ")
}

func parseAlignment(s string) (text.Alignment, error) {
	switch s {
	case "left":
		return text.AlignLeft, nil
	case "center":
		return text.AlignCenter, nil
	case "right":
		return text.AlignRight, nil
	case "justify":
		return text.AlignJustify, nil
	default:
		return text.AlignLeft, fmt.Errorf("unknown alignment %q", s)
	}
}
