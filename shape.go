package sfml

import "github.com/phanxgames/sfml/ffi"

// shape holds what every shape class shares: the owning box, the accessor
// set for its foreign class, and the borrowed texture.
type shape[T any] struct {
	box     *FBox[T]
	abi     func(*ffi.Library) *ffi.ShapeABI[T]
	texture *Texture
}

func (s *shape[T]) api() (*ffi.ShapeABI[T], *T) {
	return s.abi(lib()), s.box.Raw()
}

// Disposed reports whether the shape has been disposed.
func (s *shape[T]) Disposed() bool { return s.box.Disposed() }

// Position returns the position of the origin in world coordinates.
func (s *shape[T]) Position() Vector2f {
	a, p := s.api()
	return a.Position(p)
}

// SetPosition moves the origin to position.
func (s *shape[T]) SetPosition(position Vector2f) {
	a, p := s.api()
	a.SetPosition(p, position)
}

// Rotation returns the rotation in degrees, in [0, 360).
func (s *shape[T]) Rotation() float32 {
	a, p := s.api()
	return a.Rotation(p)
}

// SetRotation sets the rotation in degrees.
func (s *shape[T]) SetRotation(degrees float32) {
	a, p := s.api()
	a.SetRotation(p, degrees)
}

// Scale returns the scale factors.
func (s *shape[T]) Scale() Vector2f {
	a, p := s.api()
	return a.Scale(p)
}

// SetScale sets the scale factors.
func (s *shape[T]) SetScale(factors Vector2f) {
	a, p := s.api()
	a.SetScale(p, factors)
}

// Origin returns the local point that position, rotation and scale refer to.
func (s *shape[T]) Origin() Vector2f {
	a, p := s.api()
	return a.Origin(p)
}

// SetOrigin sets the local point that position, rotation and scale refer to.
func (s *shape[T]) SetOrigin(origin Vector2f) {
	a, p := s.api()
	a.SetOrigin(p, origin)
}

// Move offsets the position.
func (s *shape[T]) Move(offset Vector2f) {
	a, p := s.api()
	a.Move(p, offset)
}

// Rotate adds degrees to the rotation.
func (s *shape[T]) Rotate(degrees float32) {
	a, p := s.api()
	a.Rotate(p, degrees)
}

// ScaleBy multiplies the scale by factors.
func (s *shape[T]) ScaleBy(factors Vector2f) {
	a, p := s.api()
	a.ScaleBy(p, factors)
}

// Transform returns a copy of the local-to-world transform.
func (s *shape[T]) Transform() Transform {
	a, p := s.api()
	return Transform(*a.Transform(p))
}

// InverseTransform returns a copy of the world-to-local transform.
func (s *shape[T]) InverseTransform() Transform {
	a, p := s.api()
	return Transform(*a.InverseTransform(p))
}

// Texture returns the bound texture, or nil.
func (s *shape[T]) Texture() *Texture { return s.texture }

// SetTexture binds tex, or unbinds with nil. The shape borrows tex until it
// is unbound, replaced, or the shape is disposed. With resetRect the texture
// rect becomes the full texture.
func (s *shape[T]) SetTexture(tex *Texture, resetRect bool) {
	a, p := s.api()
	var raw *ffi.Texture
	if tex != nil {
		raw = tex.raw()
	}
	a.SetTexture(p, raw, resetRect)
	if tex == s.texture {
		return
	}
	if s.texture != nil {
		s.texture.release()
	}
	if tex != nil {
		tex.borrow()
	}
	s.texture = tex
}

// TextureRect returns the sub-rectangle of the texture drawn.
func (s *shape[T]) TextureRect() IntRect {
	a, p := s.api()
	return a.TextureRect(p)
}

// SetTextureRect sets the sub-rectangle of the texture drawn.
func (s *shape[T]) SetTextureRect(rect IntRect) {
	a, p := s.api()
	a.SetTextureRect(p, rect)
}

// FillColor returns the interior color.
func (s *shape[T]) FillColor() Color {
	a, p := s.api()
	return a.FillColor(p)
}

// SetFillColor sets the interior color.
func (s *shape[T]) SetFillColor(c Color) {
	a, p := s.api()
	a.SetFillColor(p, c)
}

// OutlineColor returns the outline color.
func (s *shape[T]) OutlineColor() Color {
	a, p := s.api()
	return a.OutlineColor(p)
}

// SetOutlineColor sets the outline color.
func (s *shape[T]) SetOutlineColor(c Color) {
	a, p := s.api()
	a.SetOutlineColor(p, c)
}

// OutlineThickness returns the outline thickness.
func (s *shape[T]) OutlineThickness() float32 {
	a, p := s.api()
	return a.OutlineThickness(p)
}

// SetOutlineThickness sets the outline thickness. Negative values grow the
// outline inward.
func (s *shape[T]) SetOutlineThickness(thickness float32) {
	a, p := s.api()
	a.SetOutlineThickness(p, thickness)
}

// PointCount returns the number of outline points.
func (s *shape[T]) PointCount() int {
	a, p := s.api()
	return int(a.PointCount(p))
}

// Point returns outline point i in local coordinates.
func (s *shape[T]) Point(i int) Vector2f {
	a, p := s.api()
	return a.Point(p, uintptr(i))
}

// GeometricCenter returns the center of the outline in local coordinates.
func (s *shape[T]) GeometricCenter() Vector2f {
	a, p := s.api()
	return a.GeometricCenter(p)
}

// LocalBounds returns the bounds in local coordinates.
func (s *shape[T]) LocalBounds() FloatRect {
	a, p := s.api()
	return a.LocalBounds(p)
}

// GlobalBounds returns the bounds in world coordinates.
func (s *shape[T]) GlobalBounds() FloatRect {
	a, p := s.api()
	return a.GlobalBounds(p)
}

// dispose returns the texture borrow and destroys the foreign shape.
func (s *shape[T]) dispose() {
	if s.box.Disposed() {
		return
	}
	if s.texture != nil {
		s.texture.release()
		s.texture = nil
	}
	s.box.Dispose()
}
