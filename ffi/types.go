package ffi

// Vector2f mirrors sfVector2f.
type Vector2f struct {
	X, Y float32
}

// Add returns v + o.
func (v Vector2f) Add(o Vector2f) Vector2f {
	return Vector2f{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vector2f) Sub(o Vector2f) Vector2f {
	return Vector2f{v.X - o.X, v.Y - o.Y}
}

// Mul returns v scaled by f.
func (v Vector2f) Mul(f float32) Vector2f {
	return Vector2f{v.X * f, v.Y * f}
}

// Vector2i mirrors sfVector2i.
type Vector2i struct {
	X, Y int32
}

// Vector2u mirrors sfVector2u.
type Vector2u struct {
	X, Y uint32
}

// Color mirrors sfColor: 8-bit RGBA, not premultiplied.
type Color struct {
	R, G, B, A uint8
}

// FloatRect mirrors sfFloatRect.
type FloatRect struct {
	Position Vector2f
	Size     Vector2f
}

// Contains reports whether the point p lies inside the rectangle.
// Points on the edge are considered inside.
func (r FloatRect) Contains(p Vector2f) bool {
	return p.X >= r.Position.X && p.X <= r.Position.X+r.Size.X &&
		p.Y >= r.Position.Y && p.Y <= r.Position.Y+r.Size.Y
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r FloatRect) Intersects(other FloatRect) bool {
	return r.Position.X <= other.Position.X+other.Size.X &&
		r.Position.X+r.Size.X >= other.Position.X &&
		r.Position.Y <= other.Position.Y+other.Size.Y &&
		r.Position.Y+r.Size.Y >= other.Position.Y
}

// IntRect mirrors sfIntRect.
type IntRect struct {
	Position Vector2i
	Size     Vector2i
}

// Transform mirrors the memory layout of sf::Transform: a 4x4 matrix stored
// column-major. Entry points that take a transform take a pointer to this.
type Transform struct {
	Matrix [16]float32
}

// ContextSettings mirrors sf::ContextSettings.
type ContextSettings struct {
	DepthBits         uint32
	StencilBits       uint32
	AntiAliasingLevel uint32
	MajorVersion      uint32
	MinorVersion      uint32
	AttributeFlags    uint32
	SRGBCapable       bool
}
