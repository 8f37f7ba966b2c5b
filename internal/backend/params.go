package backend

import (
	"math"

	"github.com/five82/facet/internal/style"
)

// StackParams configure vertical and horizontal stacks.
type StackParams struct {
	Spacing float64
	Padding style.Padding
	Width   style.Length
	Height  style.Length
	AlignX  style.Alignment
	AlignY  style.Alignment
}

// WrapParams configure a flow layout that breaks into runs.
type WrapParams struct {
	StackParams
	RunSpacing float64
}

// ZStackParams configure a depth stack.
type ZStackParams struct {
	Width     style.Length
	Height    style.Length
	Alignment style.Alignment
}

// GridParams configure a grid with an already resolved column count.
type GridParams struct {
	Columns int
	Spacing float64
}

// TextParams configure a run of plain text.
type TextParams struct {
	Content   string
	Size      float64
	Color     style.Color
	Bold      bool
	Dim       bool
	Intent    *style.Intent
	Monospace bool
	Width     style.Length
	Alignment style.Alignment
}

// Span is one styled piece of rich text.
type Span struct {
	Content   string
	Color     style.Color
	Size      float64
	Bold      bool
	Dim       bool
	Monospace bool
}

// RichTextParams configure a paragraph built from spans.
type RichTextParams struct {
	Spans     []Span
	Size      float64
	Width     style.Length
	Alignment style.Alignment
}

// PlainText concatenates the span contents.
func (p RichTextParams) PlainText() string {
	var n int
	for _, s := range p.Spans {
		n += len(s.Content)
	}
	buf := make([]byte, 0, n)
	for _, s := range p.Spans {
		buf = append(buf, s.Content...)
	}
	return string(buf)
}

// MarkdownParams configure a block of Markdown source.
type MarkdownParams struct {
	Source string
	Width  float64
}

// IconParams configure a named icon.
type IconParams struct {
	Name  string
	Size  float64
	Color style.Color
}

// SpaceParams configure empty space.
type SpaceParams struct {
	Width  style.Length
	Height style.Length
}

// CircleParams configure a filled circle.
type CircleParams struct {
	Radius float64
	Color  style.Color
}

// ArcParams configure a circular arc. Angles are in radians.
type ArcParams struct {
	Radius     float64
	StartAngle float64
	EndAngle   float64
	Color      style.Color
}

// Sweep returns the absolute angular extent of the arc.
func (p ArcParams) Sweep() float64 { return math.Abs(p.EndAngle - p.StartAngle) }

// Point is a 2D coordinate in logical units.
type Point struct {
	X, Y float64
}

// PathParams configure a stroked polyline.
type PathParams struct {
	Points []Point
	Color  style.Color
	Width  float64
}

// CapsuleParams configure a fully rounded rectangle.
type CapsuleParams struct {
	Width  style.Length
	Height style.Length
	Color  style.Color
}

// RectangleParams configure a rectangle.
type RectangleParams struct {
	Width       style.Length
	Height      style.Length
	Color       style.Color
	Radius      float64
	BorderWidth float64
	BorderColor style.Color
}

// ButtonParams configure a pressable control wrapping rendered content.
type ButtonParams[M any] struct {
	ID      string
	OnPress *M
	Variant style.Variant
	Intent  style.Intent
	Width   style.Length
	Height  style.Length
	Compact bool
}

// SidebarItemParams configure a navigation row.
type SidebarItemParams[M any] struct {
	Title    string
	Icon     string
	Selected bool
	OnSelect *M
}

// TextInputParams configure a single line text field.
type TextInputParams[M any] struct {
	ID          string
	Value       string
	Placeholder string
	OnChange    func(string) M
	OnSubmit    *M
	Secure      bool
	Variant     style.Variant
}

// SliderParams configure a continuous value picker.
type SliderParams[M any] struct {
	Min, Max float64
	Value    float64
	OnChange func(float64) M
}

// Fraction returns the value's position within the range, clamped to [0, 1].
func (p SliderParams[M]) Fraction() float64 {
	span := p.Max - p.Min
	if !(span > 0) {
		return 0
	}
	f := (p.Value - p.Min) / span
	if math.IsNaN(f) {
		return 0
	}
	return math.Max(0, math.Min(1, f))
}

// ToggleParams configure an on/off switch.
type ToggleParams[M any] struct {
	Label    string
	Active   bool
	OnToggle func(bool) M
}

// MediaParams configure images and videos.
type MediaParams struct {
	Path   string
	Width  style.Length
	Height style.Length
	Radius float64
}

// WebViewParams configure an embedded web page.
type WebViewParams struct {
	URL    string
	Width  style.Length
	Height style.Length
	Radius float64
}

// Shadow is a drop shadow.
type Shadow struct {
	Color   style.Color
	OffsetX float64
	OffsetY float64
	Blur    float64
}

// ContainerParams configure a decorated box around one child.
type ContainerParams struct {
	Padding     style.Padding
	Width       style.Length
	Height      style.Length
	Background  style.Color
	Radius      float64
	BorderWidth float64
	BorderColor style.Color
	Shadow      *Shadow
	AlignX      style.Alignment
	AlignY      style.Alignment
}

// ScrollParams configure a scroll view.
type ScrollParams struct {
	ID             string
	Width          style.Length
	Height         style.Length
	ShowIndicators bool
	Direction      style.ScrollDirection
}

// MouseAreaParams attach pointer handlers to content.
type MouseAreaParams[M any] struct {
	OnPress   *M
	OnRelease *M
	OnMove    func(Point) M
}

// CardParams configure a frosted glass card.
type CardParams struct {
	Padding style.Padding
	Width   style.Length
	Height  style.Length
}

// SectionParams configure a titled section.
type SectionParams struct {
	Width  style.Length
	Height style.Length
}
