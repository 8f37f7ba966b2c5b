package style

import (
	"fmt"
	"strconv"
)

// LengthKind selects how a dimension is resolved by a backend.
type LengthKind int

const (
	// LengthShrink sizes an element to its content. It is the zero value.
	LengthShrink LengthKind = iota
	// LengthFill expands an element to the space its parent offers.
	LengthFill
	// LengthFixed pins an element to Value logical units.
	LengthFixed
)

// Length is a width or height policy.
type Length struct {
	Kind  LengthKind
	Value float64
}

// Shrink and Fill are the two non-numeric policies.
var (
	Shrink = Length{Kind: LengthShrink}
	Fill   = Length{Kind: LengthFill}
)

// Fixed returns a fixed length. Negative values clamp to zero.
func Fixed(v float64) Length {
	if v < 0 {
		v = 0
	}
	return Length{Kind: LengthFixed, Value: v}
}

// IsFixed reports whether the length carries a numeric value.
func (l Length) IsFixed() bool { return l.Kind == LengthFixed }

// Resolve returns the concrete size of the length inside available space.
// Shrink lengths resolve to content.
func (l Length) Resolve(available, content float64) float64 {
	switch l.Kind {
	case LengthFixed:
		return l.Value
	case LengthFill:
		if available > 0 {
			return available
		}
		return content
	default:
		return content
	}
}

func (l Length) String() string {
	switch l.Kind {
	case LengthFixed:
		return "fixed(" + strconv.FormatFloat(l.Value, 'f', -1, 64) + ")"
	case LengthFill:
		return "fill"
	default:
		return "shrink"
	}
}

// Padding is an inset on four sides.
type Padding struct {
	Top, Right, Bottom, Left float64
}

// Uniform returns a padding with the same inset on every side.
func Uniform(v float64) Padding {
	return Padding{Top: v, Right: v, Bottom: v, Left: v}
}

// Symmetric returns a padding with vertical and horizontal insets.
func Symmetric(vertical, horizontal float64) Padding {
	return Padding{Top: vertical, Right: horizontal, Bottom: vertical, Left: horizontal}
}

// Horizontal is the sum of left and right insets.
func (p Padding) Horizontal() float64 { return p.Left + p.Right }

// Vertical is the sum of top and bottom insets.
func (p Padding) Vertical() float64 { return p.Top + p.Bottom }

// IsZero reports whether every inset is zero.
func (p Padding) IsZero() bool { return p == Padding{} }

// Alignment positions content along one axis.
type Alignment int

const (
	AlignStart Alignment = iota
	AlignCenter
	AlignEnd
)

func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignEnd:
		return "end"
	default:
		return "start"
	}
}

// ScrollDirection is the axis a scroll view pans along.
type ScrollDirection int

const (
	ScrollVertical ScrollDirection = iota
	ScrollHorizontal
	ScrollBoth
)

func (d ScrollDirection) String() string {
	switch d {
	case ScrollHorizontal:
		return "horizontal"
	case ScrollBoth:
		return "both"
	default:
		return "vertical"
	}
}

// Size is a width and height in logical units.
type Size struct {
	Width, Height float64
}

func (s Size) String() string {
	return fmt.Sprintf("%gx%g", s.Width, s.Height)
}
