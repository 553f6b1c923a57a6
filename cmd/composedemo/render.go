package main

import (
	"fmt"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/gogpu/compose"
)

// pageGap is the vertical space between pages in the rendered image.
const pageGap = 16

// renderPNG draws the pages of ctx one below the other and saves the
// result to path. Lines are drawn run by run at their placed offsets, with
// a faint box around every inline.
func renderPNG(ctx *compose.Context, path string, size float64) error {
	if len(ctx.Pages) == 0 {
		return fmt.Errorf("no pages to render")
	}
	width := 0.0
	height := 0.0
	for _, p := range ctx.Pages {
		width = max(width, p.Size.Width)
		height += p.Size.Height + pageGap
	}

	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: size, DPI: 72})
	if err != nil {
		return fmt.Errorf("create face: %w", err)
	}
	defer func() {
		_ = face.Close()
	}()

	dc := gg.NewContext(int(width)+2*pageGap, int(height)+pageGap)
	dc.SetRGB(0.85, 0.85, 0.85)
	dc.Clear()
	dc.SetFontFace(face)

	top := float64(pageGap)
	for _, p := range ctx.Pages {
		dc.Push()
		dc.Translate(pageGap, top)
		drawPage(dc, p, ctx.Margins, size)
		dc.Pop()
		top += p.Size.Height + pageGap
	}
	return dc.SavePNG(path)
}

func drawPage(dc *gg.Context, p *compose.Page, m compose.Margins, size float64) {
	dc.SetRGB(1, 1, 1)
	dc.DrawRectangle(0, 0, p.Size.Width, p.Size.Height)
	dc.Fill()

	dc.SetRGBA(0, 0, 1, 0.2)
	dc.SetLineWidth(0.5)
	dc.DrawRectangle(m.Left, m.Top, p.Size.Width-m.Left-m.Right, p.Size.Height-m.Top-m.Bottom)
	dc.Stroke()

	for _, it := range p.Items {
		switch it := it.(type) {
		case compose.LineItem:
			l := it.Line
			for _, in := range l.Inlines {
				x, y := l.X+in.X, l.Y
				dc.SetRGBA(1, 0, 0, 0.25)
				dc.DrawRectangle(x, y, in.Width, in.Height)
				dc.Stroke()
				dc.SetRGB(0, 0, 0)
				dc.DrawString(in.Text, x, y+size)
			}
		case compose.VectorItem:
			drawVector(dc, it.Vector)
		case compose.BeginClipItem:
			dc.Push()
			r := it.Rect
			dc.DrawRectangle(r.X, r.Y, r.W, r.H)
			dc.Clip()
		case compose.EndClipItem:
			dc.Pop()
		}
	}
}

func drawVector(dc *gg.Context, v *compose.Vector) {
	dc.SetColor(v.Color.Color())
	switch v.Kind {
	case compose.VectorRect:
		dc.DrawRectangle(v.X, v.Y, v.W, v.H)
		dc.Fill()
	case compose.VectorEllipse:
		dc.DrawEllipse(v.X, v.Y, v.R1, v.R2)
		dc.Fill()
	case compose.VectorLine:
		dc.SetLineWidth(max(v.LineWidth, 1))
		dc.DrawLine(v.X1, v.Y1, v.X2, v.Y2)
		dc.Stroke()
	case compose.VectorPolyline:
		for i, pt := range v.Points {
			if i == 0 {
				dc.MoveTo(pt.X, pt.Y)
				continue
			}
			dc.LineTo(pt.X, pt.Y)
		}
		dc.SetLineWidth(max(v.LineWidth, 1))
		dc.Stroke()
	}
}
