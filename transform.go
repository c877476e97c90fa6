package sfml

import "github.com/phanxgames/sfml/ffi"

// Transform is a 3x3 affine transform stored as the 4x4 column-major matrix
// the foreign side uses. All arithmetic is delegated to the foreign library.
type Transform ffi.Transform

// IdentityTransform leaves points unchanged.
var IdentityTransform = Transform{Matrix: [16]float32{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 1, 0,
	0, 0, 0, 1,
}}

// NewTransform builds a transform from the rows of a 3x3 matrix.
func NewTransform(a00, a01, a02, a10, a11, a12, a20, a21, a22 float32) Transform {
	return Transform{Matrix: [16]float32{
		a00, a10, 0, a20,
		a01, a11, 0, a21,
		0, 0, 1, 0,
		a02, a12, 0, a22,
	}}
}

// Matrix3 returns the 3x3 matrix in row-major order.
func (t Transform) Matrix3() [9]float32 {
	m := &t.Matrix
	return [9]float32{
		m[0], m[4], m[12],
		m[1], m[5], m[13],
		m[3], m[7], m[15],
	}
}

func (t *Transform) abi() *ffi.Transform { return (*ffi.Transform)(t) }

// TransformPoint applies the transform to p.
func (t Transform) TransformPoint(p Vector2f) Vector2f {
	return lib().TransformPoint(t.abi(), p)
}

// TransformRect returns the axis-aligned bounds of rect after transformation.
func (t Transform) TransformRect(rect FloatRect) FloatRect {
	return lib().TransformRect(t.abi(), rect)
}

// Combine sets t to t * other, so other is applied first.
func (t *Transform) Combine(other Transform) {
	lib().TransformCombine(t.abi(), other.abi())
}

// Translate combines t with a translation.
func (t *Transform) Translate(offset Vector2f) {
	lib().TransformTranslate(t.abi(), offset)
}

// Rotate combines t with a rotation in degrees around the origin.
func (t *Transform) Rotate(degrees float32) {
	lib().TransformRotate(t.abi(), degrees)
}

// RotateWithCenter combines t with a rotation in degrees around center.
func (t *Transform) RotateWithCenter(degrees float32, center Vector2f) {
	lib().TransformRotateWithCenter(t.abi(), degrees, center)
}

// Scale combines t with a scaling around the origin.
func (t *Transform) Scale(factors Vector2f) {
	lib().TransformScale(t.abi(), factors)
}

// ScaleWithCenter combines t with a scaling around center.
func (t *Transform) ScaleWithCenter(factors, center Vector2f) {
	lib().TransformScaleWithCenter(t.abi(), factors, center)
}
