package sfml

import "github.com/phanxgames/sfml/ffi"

// DefaultCirclePointCount is the number of points a circle is approximated
// with unless told otherwise.
const DefaultCirclePointCount = 30

var circleShapeClass = &Class[ffi.CircleShape]{
	Name:    "CircleShape",
	Destroy: func(c *ffi.CircleShape) { lib().CircleShapeDelete(c) },
	Copy:    func(c *ffi.CircleShape) *ffi.CircleShape { return lib().CircleShapeCopy(c) },
}

func circleShapeABI(l *ffi.Library) *ffi.ShapeABI[ffi.CircleShape] { return &l.CircleShape }

// CircleShape is a circle approximated by a regular polygon. Its local
// bounds start at (0, 0) and span twice the radius.
type CircleShape struct {
	shape[ffi.CircleShape]
}

// NewCircleShape creates a circle. It panics if the foreign allocation fails.
func NewCircleShape(radius float32, pointCount int) *CircleShape {
	box, err := Acquire(circleShapeClass, lib().CircleShapeNew())
	if err != nil {
		panic(err)
	}
	c := &CircleShape{shape[ffi.CircleShape]{box: box, abi: circleShapeABI}}
	c.SetRadius(radius)
	c.SetPointCount(pointCount)
	return c
}

// NewCircleShapeWithTexture creates a circle drawn with tex.
func NewCircleShapeWithTexture(radius float32, pointCount int, tex *Texture) *CircleShape {
	c := NewCircleShape(radius, pointCount)
	c.SetTexture(tex, true)
	return c
}

// Radius returns the radius.
func (c *CircleShape) Radius() float32 {
	return lib().CircleShapeRadius(c.box.Raw())
}

// SetRadius sets the radius.
func (c *CircleShape) SetRadius(radius float32) {
	lib().CircleShapeSetRadius(c.box.Raw(), radius)
}

// SetPointCount sets how many points approximate the circle. Negative counts
// are treated as zero.
func (c *CircleShape) SetPointCount(n int) {
	lib().CircleShapeSetPointCount(c.box.Raw(), uintptr(max(n, 0)))
}

// Clone returns an independent copy. The copy borrows the same texture. It
// panics if the foreign copy fails.
func (c *CircleShape) Clone() *CircleShape {
	cp := &CircleShape{shape[ffi.CircleShape]{box: c.box.Clone(), abi: circleShapeABI}}
	if c.texture != nil {
		c.texture.borrow()
		cp.texture = c.texture
	}
	return cp
}

// Dispose destroys the circle and returns its texture borrow. Subsequent
// calls are no-ops.
func (c *CircleShape) Dispose() { c.dispose() }
