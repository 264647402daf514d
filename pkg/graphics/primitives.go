package graphics

// Primitive is a paint-ready drawing operation. Widgets never draw
// directly; they describe their appearance as primitives and hand them
// to a PrimitiveGroup for the rendering backend to consume.
type Primitive interface {
	isPrimitive()
}

// SolidQuadPrimitive is a filled rectangle with an optional border.
type SolidQuadPrimitive struct {
	Rect         Rect
	Color        Color
	BorderColor  Color
	BorderWidth  float64
	BorderRadius float64
}

func (SolidQuadPrimitive) isPrimitive() {}

// TextPrimitive is a run of shaped text anchored at Origin.
type TextPrimitive struct {
	Text     string
	Origin   Offset
	Color    Color
	FontSize float64
}

func (TextPrimitive) isPrimitive() {}
