package compose

import "github.com/gogpu/compose/text"

// VectorKind identifies the shape of a Vector.
type VectorKind uint8

const (
	// VectorRect is an axis-aligned rectangle at (X, Y) of size W x H.
	VectorRect VectorKind = iota
	// VectorLine is a segment from (X1, Y1) to (X2, Y2).
	VectorLine
	// VectorPolyline is an open or closed sequence of Points.
	VectorPolyline
	// VectorEllipse is an ellipse centered at (X, Y) with radii R1, R2.
	VectorEllipse
)

// vectorKindNames maps VectorKind values to their string representation.
var vectorKindNames = [...]string{
	VectorRect:     "Rect",
	VectorLine:     "Line",
	VectorPolyline: "Polyline",
	VectorEllipse:  "Ellipse",
}

// String returns the string representation of a VectorKind.
func (k VectorKind) String() string {
	if int(k) < len(vectorKindNames) {
		return vectorKindNames[k]
	}
	return "Unknown"
}

// Vector is a vector primitive: a canvas shape, a table border, a cell
// background or one module of a QR code.
type Vector struct {
	Kind VectorKind

	X, Y, W, H     float64
	X1, Y1, X2, Y2 float64
	R1, R2         float64
	Points         []Point

	Color     RGBA
	LineWidth float64

	// UnbreakableBackground marks a fill that belongs to an unbreakable
	// block. Fragment replay inserts such vectors at the page's background
	// boundary instead of appending them.
	UnbreakableBackground bool
}

// Offset moves v by (dx, dy). Only the coordinates used by v.Kind move.
func (v *Vector) Offset(dx, dy float64) {
	switch v.Kind {
	case VectorRect, VectorEllipse:
		v.X += dx
		v.Y += dy
	case VectorLine:
		v.X1 += dx
		v.X2 += dx
		v.Y1 += dy
		v.Y2 += dy
	case VectorPolyline:
		for i := range v.Points {
			v.Points[i] = v.Points[i].Add(Pt(dx, dy))
		}
	}
}

// Clone returns a deep copy of v.
func (v *Vector) Clone() *Vector {
	c := *v
	if v.Points != nil {
		c.Points = append([]Point(nil), v.Points...)
	}
	return &c
}

// Canvas is a group of vectors drawn as one block, aligned as a unit.
type Canvas struct {
	Vectors   []*Vector
	MinWidth  float64
	Alignment text.Alignment
}
