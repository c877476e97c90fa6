package sfml

import "github.com/phanxgames/sfml/ffi"

// CustomShapePoints supplies the outline of a CustomShape. The foreign side
// calls it whenever it needs the geometry, possibly from another thread.
type CustomShapePoints interface {
	PointCount() int
	Point(index int) Vector2f
}

var customShapeClass = &Class[ffi.CustomShape]{
	Name:    "CustomShape",
	Destroy: func(s *ffi.CustomShape) { lib().CustomShapeDelete(s) },
}

func customShapeABI(l *ffi.Library) *ffi.ShapeABI[ffi.CustomShape] { return &l.CustomShape }

// CustomShape is a shape whose outline comes from a Go value. It owns the
// value's registration, so it cannot be cloned.
type CustomShape struct {
	shape[ffi.CustomShape]
	ud     ffi.UserData
	points CustomShapePoints
}

// NewCustomShape creates a shape backed by points and computes its geometry.
// It panics if the foreign allocation fails.
func NewCustomShape(points CustomShapePoints) *CustomShape {
	ud := ffi.Bind(points)
	box, err := Acquire(customShapeClass, lib().CustomShapeNew(ud))
	if err != nil {
		ffi.Release(ud)
		panic(err)
	}
	s := &CustomShape{shape: shape[ffi.CustomShape]{box: box, abi: customShapeABI}, ud: ud, points: points}
	s.Update()
	return s
}

// NewCustomShapeWithTexture creates a shape backed by points and drawn with
// tex.
func NewCustomShapeWithTexture(points CustomShapePoints, tex *Texture) *CustomShape {
	s := NewCustomShape(points)
	s.SetTexture(tex, true)
	return s
}

// Points returns the value backing the outline.
func (s *CustomShape) Points() CustomShapePoints { return s.points }

// Update recomputes the geometry. Call it whenever the outline changes.
func (s *CustomShape) Update() {
	lib().CustomShapeUpdate(s.box.Raw())
}

// Dispose destroys the foreign shape, then releases the outline value.
// Subsequent calls are no-ops.
func (s *CustomShape) Dispose() {
	if s.box.Disposed() {
		return
	}
	s.dispose()
	ffi.Release(s.ud)
}
