package text

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// Direction specifies the base direction of a line.
type Direction int

const (
	// DirectionLTR is left-to-right text (English, French, etc.)
	DirectionLTR Direction = iota
	// DirectionRTL is right-to-left text (Arabic, Hebrew)
	DirectionRTL
)

// String returns the string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionLTR:
		return "LTR"
	case DirectionRTL:
		return "RTL"
	default:
		return unknownStr
	}
}

// RunDirection is the direction tag carried by a single inline run.
// Unlike Direction it has an explicit unset state: upstream layout only
// tags runs it has classified.
type RunDirection uint8

const (
	// RunUnset means the run was never classified.
	RunUnset RunDirection = iota
	// RunLTR tags a left-to-right run.
	RunLTR
	// RunRTL tags a right-to-left run.
	RunRTL
)

// String returns the string representation of the run direction.
func (d RunDirection) String() string {
	switch d {
	case RunUnset:
		return "unset"
	case RunLTR:
		return "ltr"
	case RunRTL:
		return "rtl"
	default:
		return unknownStr
	}
}

// Alignment specifies horizontal alignment of a line or an image within the
// available width.
type Alignment int

const (
	// AlignLeft aligns to the left edge. It is also the unset value.
	AlignLeft Alignment = iota
	// AlignCenter centers horizontally.
	AlignCenter
	// AlignRight aligns to the right edge.
	AlignRight
	// AlignJustify distributes the remaining width across inline gaps.
	AlignJustify
)

// String returns the string representation of the alignment.
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "Left"
	case AlignCenter:
		return "Center"
	case AlignRight:
		return "Right"
	case AlignJustify:
		return "Justify"
	default:
		return unknownStr
	}
}

// Offset returns the horizontal offset that places content of the given
// width inside avail according to a. Left and justify yield 0.
func (a Alignment) Offset(avail, width float64) float64 {
	switch a {
	case AlignRight:
		return avail - width
	case AlignCenter:
		return (avail - width) / 2
	default:
		return 0
	}
}
