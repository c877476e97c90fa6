package sfml

import "github.com/phanxgames/sfml/ffi"

var viewClass = &Class[ffi.View]{
	Name:    "View",
	Destroy: func(v *ffi.View) { lib().ViewDelete(v) },
	Copy:    func(v *ffi.View) *ffi.View { return lib().ViewCopy(v) },
}

// View is a 2D camera: the region of the world shown, and where on the
// render target it is shown. Angles are in degrees.
type View struct {
	box *FBox[ffi.View]
}

// NewView creates a view showing the rectangle (0, 0, 1000, 1000).
func NewView() (*View, error) {
	box, err := Acquire(viewClass, lib().ViewNew())
	if err != nil {
		return nil, err
	}
	return &View{box: box}, nil
}

// NewViewWithCenterAndSize creates a view centered on center showing size.
// It panics if the foreign allocation fails.
func NewViewWithCenterAndSize(center, size Vector2f) *View {
	v, err := NewView()
	if err != nil {
		panic(err)
	}
	v.SetCenter(center)
	v.SetSize(size)
	return v
}

// NewViewFromRect creates a view showing rect.
func NewViewFromRect(rect FloatRect) (*View, error) {
	v, err := NewView()
	if err != nil {
		return nil, err
	}
	v.Reset(rect)
	return v, nil
}

func (v *View) raw() *ffi.View { return v.box.Raw() }

// Clone returns an independent copy of the view. It panics if the foreign
// copy fails.
func (v *View) Clone() *View { return &View{box: v.box.Clone()} }

// Disposed reports whether the view has been disposed.
func (v *View) Disposed() bool { return v.box.Disposed() }

// Dispose frees the foreign view.
func (v *View) Dispose() { v.box.Dispose() }

// Center returns the center of the shown region.
func (v *View) Center() Vector2f { return lib().ViewCenter(v.raw()) }

// Size returns the size of the shown region.
func (v *View) Size() Vector2f { return lib().ViewSize(v.raw()) }

// Rotation returns the rotation in degrees, in [0, 360).
func (v *View) Rotation() float32 { return lib().ViewRotation(v.raw()) }

// Viewport returns the target area, as fractions of the render target.
func (v *View) Viewport() FloatRect { return lib().ViewViewport(v.raw()) }

// Scissor returns the clipping area, as fractions of the render target.
func (v *View) Scissor() FloatRect { return lib().ViewScissor(v.raw()) }

// SetCenter moves the shown region so it is centered on center.
func (v *View) SetCenter(center Vector2f) { lib().ViewSetCenter(v.raw(), center) }

// SetSize resizes the shown region.
func (v *View) SetSize(size Vector2f) { lib().ViewSetSize(v.raw(), size) }

// SetRotation sets the rotation in degrees.
func (v *View) SetRotation(degrees float32) { lib().ViewSetRotation(v.raw(), degrees) }

// SetViewport sets the target area, as fractions of the render target.
func (v *View) SetViewport(viewport FloatRect) { lib().ViewSetViewport(v.raw(), viewport) }

// SetScissor sets the clipping area, as fractions of the render target.
func (v *View) SetScissor(scissor FloatRect) { lib().ViewSetScissor(v.raw(), scissor) }

// Move offsets the center.
func (v *View) Move(offset Vector2f) { lib().ViewMove(v.raw(), offset) }

// Rotate adds degrees to the rotation.
func (v *View) Rotate(degrees float32) { lib().ViewRotate(v.raw(), degrees) }

// Zoom multiplies the size by factor: 2 shows twice the area, 0.5 half.
func (v *View) Zoom(factor float32) { lib().ViewZoom(v.raw(), factor) }

// Reset makes the view show rect, with no rotation.
func (v *View) Reset(rect FloatRect) { lib().ViewReset(v.raw(), rect) }
