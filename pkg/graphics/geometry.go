package graphics

// Offset represents a 2D point or vector in pixel coordinates.
type Offset struct {
	X float64
	Y float64
}

// Add returns the component-wise sum of two offsets.
func (o Offset) Add(other Offset) Offset {
	return Offset{X: o.X + other.X, Y: o.Y + other.Y}
}

// Size represents width and height dimensions in pixels.
type Size struct {
	Width  float64
	Height float64
}

// IsEmpty returns true if either dimension is zero or negative.
func (s Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Rect represents a rectangle using an origin point and a size.
type Rect struct {
	Origin Offset
	Size   Size
}

// RectFromXYWH constructs a Rect from origin coordinates, width and height.
func RectFromXYWH(x, y, width, height float64) Rect {
	return Rect{Origin: Offset{X: x, Y: y}, Size: Size{Width: width, Height: height}}
}

// RectFromSize constructs a Rect at the window origin with the given size.
func RectFromSize(size Size) Rect {
	return Rect{Size: size}
}

// MinX returns the left edge of the rectangle.
func (r Rect) MinX() float64 { return r.Origin.X }

// MinY returns the top edge of the rectangle.
func (r Rect) MinY() float64 { return r.Origin.Y }

// MaxX returns the right edge of the rectangle.
func (r Rect) MaxX() float64 { return r.Origin.X + r.Size.Width }

// MaxY returns the bottom edge of the rectangle.
func (r Rect) MaxY() float64 { return r.Origin.Y + r.Size.Height }

// Width returns the width of the rectangle.
func (r Rect) Width() float64 { return r.Size.Width }

// Height returns the height of the rectangle.
func (r Rect) Height() float64 { return r.Size.Height }

// Contains reports whether the point lies inside the rectangle.
// The left and top edges are inclusive, the right and bottom exclusive.
func (r Rect) Contains(p Offset) bool {
	return p.X >= r.MinX() && p.X < r.MaxX() && p.Y >= r.MinY() && p.Y < r.MaxY()
}

// WithSize returns a copy of the rectangle with the given size.
func (r Rect) WithSize(size Size) Rect {
	return Rect{Origin: r.Origin, Size: size}
}

// WithOrigin returns a copy of the rectangle with the given origin.
func (r Rect) WithOrigin(origin Offset) Rect {
	return Rect{Origin: origin, Size: r.Size}
}

// Translate returns a new rect offset by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{Origin: Offset{X: r.Origin.X + dx, Y: r.Origin.Y + dy}, Size: r.Size}
}
