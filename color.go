package compose

import (
	"image/color"
	"strconv"
	"strings"
)

// RGBA is the color of a vector primitive. Each component is in [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// Black is opaque black, the color of a malformed hex string.
var Black = RGBA{A: 1}

// Color converts c to a color.Color for a renderer.
func (c RGBA) Color() color.Color {
	return color.NRGBA{R: channel(c.R), G: channel(c.G), B: channel(c.B), A: channel(c.A)}
}

// channel scales a [0, 1] component to a byte, clamping out-of-range values.
func channel(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	default:
		return uint8(v*255 + 0.5)
	}
}

// Hex parses a color as written in document definitions: "#rgb", "#rgba",
// "#rrggbb" or "#rrggbbaa", with or without the leading '#'. Malformed
// input yields Black.
func Hex(s string) RGBA {
	s = strings.TrimPrefix(s, "#")

	ch := [4]uint64{3: 255}
	switch len(s) {
	case 3, 4:
		for i := 0; i < len(s); i++ {
			v, err := strconv.ParseUint(s[i:i+1], 16, 8)
			if err != nil {
				return Black
			}
			ch[i] = v * 17
		}
	case 6, 8:
		for i := 0; i < len(s)/2; i++ {
			v, err := strconv.ParseUint(s[2*i:2*i+2], 16, 8)
			if err != nil {
				return Black
			}
			ch[i] = v
		}
	default:
		return Black
	}

	return RGBA{
		R: float64(ch[0]) / 255,
		G: float64(ch[1]) / 255,
		B: float64(ch[2]) / 255,
		A: float64(ch[3]) / 255,
	}
}
