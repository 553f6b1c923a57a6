package text

import (
	"bytes"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// DefaultCharWidth is the width unit applied to a transferred boundary
// character when no font is available to measure it.
const DefaultCharWidth = 4.0

// Measurer returns the advance width of a short piece of text.
// Bidi uses it to re-balance inline widths when a boundary character
// moves from one end of a run to the other.
type Measurer interface {
	Measure(s string) float64
}

// FixedMeasurer measures every character as the same width.
type FixedMeasurer float64

// Measure implements Measurer.
func (m FixedMeasurer) Measure(s string) float64 {
	n := 0
	for range s {
		n++
	}
	return float64(m) * float64(n)
}

// FaceMeasurer measures text with HarfBuzz shaping via go-text/typesetting.
//
// FaceMeasurer is not safe for concurrent use: the underlying font.Face and
// shaper keep mutable caches.
type FaceMeasurer struct {
	face   *font.Face
	size   fixed.Int26_6
	shaper shaping.HarfbuzzShaper
}

// NewFaceMeasurer parses TrueType/OpenType data and returns a measurer at
// the given size.
func NewFaceMeasurer(data []byte, size float64) (*FaceMeasurer, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return &FaceMeasurer{face: face, size: floatToFixed(size)}, nil
}

// Measure implements Measurer.
func (m *FaceMeasurer) Measure(s string) float64 {
	if s == "" {
		return 0
	}
	runes := []rune(s)
	dir := di.DirectionLTR
	if ContainsRTL(s) {
		dir = di.DirectionRTL
	}
	out := m.shaper.Shape(shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: dir,
		Face:      m.face,
		Size:      m.size,
		Script:    detectScript(s),
		Language:  language.NewLanguage("und"),
	})
	return fixedToFloat(out.Advance)
}

// floatToFixed converts a float64 font size to fixed.Int26_6.
func floatToFixed(size float64) fixed.Int26_6 {
	return fixed.Int26_6(size * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
