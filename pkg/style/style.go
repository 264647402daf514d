// Package style defines the declarative style value types consumed by
// elements: paddings, alignments, text properties and quad (filled
// rectangle) descriptions.
//
// Style structs are plain comparable values. A full widget style is shared
// by pointer and treated as immutable once published; restyling a widget is
// always a pointer swap, never an in-place mutation.
package style

import "github.com/murl-digital/Yarrow/pkg/graphics"

// Padding describes the space between content and its bounding rectangle.
type Padding struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// NewPadding constructs a Padding from top, right, bottom, left values.
func NewPadding(top, right, bottom, left float64) Padding {
	return Padding{Top: top, Right: right, Bottom: bottom, Left: left}
}

// UniformPadding constructs a Padding with the same value on every side.
func UniformPadding(v float64) Padding {
	return Padding{Top: v, Right: v, Bottom: v, Left: v}
}

// Horizontal returns the combined left and right padding.
func (p Padding) Horizontal() float64 { return p.Left + p.Right }

// Vertical returns the combined top and bottom padding.
func (p Padding) Vertical() float64 { return p.Top + p.Bottom }

// Align is a one-dimensional alignment.
type Align int

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
)

// Align2 is a two-dimensional alignment, used to anchor tooltips and other
// floating content to an element's bounds.
type Align2 struct {
	Horizontal Align
	Vertical   Align
}

var (
	AlignTopCenter    = Align2{Horizontal: AlignCenter, Vertical: AlignStart}
	AlignCenterCenter = Align2{Horizontal: AlignCenter, Vertical: AlignCenter}
	AlignBottomCenter = Align2{Horizontal: AlignCenter, Vertical: AlignEnd}
)

// TextProperties carries the font parameters an element needs for
// measurement and primitive assembly. LineHeight is a per-style constant:
// row layout derives heights from it, not from shaping results.
type TextProperties struct {
	FontSize   float64
	LineHeight float64
	Align      Align
}

// DefaultTextProperties returns the text properties used by the default
// widget styles.
func DefaultTextProperties() TextProperties {
	return TextProperties{FontSize: 14, LineHeight: 20}
}

// Background describes how a quad is filled. Only solid fills are modeled;
// gradient fills belong to the rendering backend.
type Background struct {
	Color graphics.Color
}

// SolidBackground constructs a solid color background.
func SolidBackground(c graphics.Color) Background {
	return Background{Color: c}
}

// BorderStyle describes a quad border.
type BorderStyle struct {
	Color  graphics.Color
	Width  float64
	Radius float64
}

// QuadStyle describes a filled rectangle with an optional border.
type QuadStyle struct {
	Bg     Background
	Border BorderStyle
}

// Primitive resolves the quad style against a rectangle into a
// paint-ready primitive.
func (q QuadStyle) Primitive(rect graphics.Rect) graphics.SolidQuadPrimitive {
	return graphics.SolidQuadPrimitive{
		Rect:         rect,
		Color:        q.Bg.Color,
		BorderColor:  q.Border.Color,
		BorderWidth:  q.Border.Width,
		BorderRadius: q.Border.Radius,
	}
}
