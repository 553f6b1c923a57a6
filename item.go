package compose

import "github.com/gogpu/compose/text"

// ItemKind identifies the type of a placed item.
type ItemKind uint8

const (
	ItemLine      ItemKind = iota // Text line
	ItemVector                    // Vector primitive
	ItemImage                     // Raster image
	ItemSVG                       // SVG image
	ItemBeginClip                 // Start of a clip region
	ItemEndClip                   // End of the innermost clip region
)

// itemKindNames maps ItemKind values to their string representation.
var itemKindNames = [...]string{
	ItemLine:      "line",
	ItemVector:    "vector",
	ItemImage:     "image",
	ItemSVG:       "svg",
	ItemBeginClip: "beginClip",
	ItemEndClip:   "endClip",
}

// String returns the string representation of an ItemKind.
func (k ItemKind) String() string {
	if int(k) < len(itemKindNames) {
		return itemKindNames[k]
	}
	return "Unknown"
}

// Item is a placement record on a page. Items hold final page coordinates
// and are consumed in order by a renderer.
type Item interface {
	// Kind returns the ItemKind for this item.
	Kind() ItemKind
}

// LineItem is a committed text line.
type LineItem struct {
	Line *text.Line
}

// Kind implements Item.
func (LineItem) Kind() ItemKind { return ItemLine }

// VectorItem is a committed vector primitive.
type VectorItem struct {
	Vector *Vector
}

// Kind implements Item.
func (VectorItem) Kind() ItemKind { return ItemVector }

// ImageItem is a committed raster or SVG image.
type ImageItem struct {
	Image *Image
	SVG   bool
}

// Kind implements Item.
func (it ImageItem) Kind() ItemKind {
	if it.SVG {
		return ItemSVG
	}
	return ItemImage
}

// BeginClipItem opens a rectangular clip region.
type BeginClipItem struct {
	Rect Rect
}

// Kind implements Item.
func (BeginClipItem) Kind() ItemKind { return ItemBeginClip }

// EndClipItem closes the innermost clip region.
type EndClipItem struct{}

// Kind implements Item.
func (EndClipItem) Kind() ItemKind { return ItemEndClip }

// Image is a sized raster or SVG image.
type Image struct {
	X, Y          float64
	Width, Height float64

	// Alignment positions the image horizontally within the available width.
	Alignment text.Alignment

	// Absolute images are placed regardless of the remaining page height.
	Absolute bool

	baseX  float64
	placed bool
}

// Clone returns a copy of img.
func (img *Image) Clone() *Image {
	c := *img
	return &c
}

// resolve positions img at the cursor of ctx. The intrinsic X offset is
// captured on the first call so that re-placement does not compound it.
func (img *Image) resolve(ctx *Context) {
	if !img.placed {
		img.baseX = img.X
		img.placed = true
	}
	img.X = ctx.X + img.baseX + img.Alignment.Offset(ctx.AvailableWidth, img.Width)
	img.Y = ctx.Y
}

// QR is a QR code decomposed into vector primitives. Canvas coordinates
// are relative to the code's top-left corner.
type QR struct {
	Image
	Canvas []*Vector
}
