package ffitest

import (
	"math"

	"github.com/phanxgames/sfml/ffi"
)

// mat3 is a row-major 3x3 affine matrix.
type mat3 [3][3]float32

var identity3 = mat3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

func fromTransform(t *ffi.Transform) mat3 {
	m := &t.Matrix
	return mat3{
		{m[0], m[4], m[12]},
		{m[1], m[5], m[13]},
		{m[3], m[7], m[15]},
	}
}

func (a mat3) transform() ffi.Transform {
	return ffi.Transform{Matrix: [16]float32{
		a[0][0], a[1][0], 0, a[2][0],
		a[0][1], a[1][1], 0, a[2][1],
		0, 0, 1, 0,
		a[0][2], a[1][2], 0, a[2][2],
	}}
}

func (a mat3) mul(b mat3) mat3 {
	var r mat3
	for i := range 3 {
		for j := range 3 {
			r[i][j] = a[i][0]*b[0][j] + a[i][1]*b[1][j] + a[i][2]*b[2][j]
		}
	}
	return r
}

func (a mat3) apply(p ffi.Vector2f) ffi.Vector2f {
	return ffi.Vector2f{
		X: a[0][0]*p.X + a[0][1]*p.Y + a[0][2],
		Y: a[1][0]*p.X + a[1][1]*p.Y + a[1][2],
	}
}

func (a mat3) applyRect(r ffi.FloatRect) ffi.FloatRect {
	corners := [4]ffi.Vector2f{
		a.apply(r.Position),
		a.apply(ffi.Vector2f{X: r.Position.X, Y: r.Position.Y + r.Size.Y}),
		a.apply(ffi.Vector2f{X: r.Position.X + r.Size.X, Y: r.Position.Y}),
		a.apply(r.Position.Add(r.Size)),
	}
	return bounds(corners[:])
}

// inverse returns the inverse of a, or the identity if a is singular.
func (a mat3) inverse() mat3 {
	det := a[0][0]*(a[1][1]*a[2][2]-a[1][2]*a[2][1]) -
		a[0][1]*(a[1][0]*a[2][2]-a[1][2]*a[2][0]) +
		a[0][2]*(a[1][0]*a[2][1]-a[1][1]*a[2][0])
	if det == 0 {
		return identity3
	}
	inv := 1 / det
	return mat3{
		{
			(a[1][1]*a[2][2] - a[1][2]*a[2][1]) * inv,
			(a[0][2]*a[2][1] - a[0][1]*a[2][2]) * inv,
			(a[0][1]*a[1][2] - a[0][2]*a[1][1]) * inv,
		},
		{
			(a[1][2]*a[2][0] - a[1][0]*a[2][2]) * inv,
			(a[0][0]*a[2][2] - a[0][2]*a[2][0]) * inv,
			(a[0][2]*a[1][0] - a[0][0]*a[1][2]) * inv,
		},
		{
			(a[1][0]*a[2][1] - a[1][1]*a[2][0]) * inv,
			(a[0][1]*a[2][0] - a[0][0]*a[2][1]) * inv,
			(a[0][0]*a[1][1] - a[0][1]*a[1][0]) * inv,
		},
	}
}

func sincos(degrees float32) (sin, cos float32) {
	s, c := math.Sincos(float64(degrees) * math.Pi / 180)
	return float32(s), float32(c)
}

func translation(off ffi.Vector2f) mat3 {
	return mat3{{1, 0, off.X}, {0, 1, off.Y}, {0, 0, 1}}
}

func rotation(degrees float32, center ffi.Vector2f) mat3 {
	sin, cos := sincos(degrees)
	return mat3{
		{cos, -sin, center.X*(1-cos) + center.Y*sin},
		{sin, cos, center.Y*(1-cos) - center.X*sin},
		{0, 0, 1},
	}
}

func scaling(s, center ffi.Vector2f) mat3 {
	return mat3{
		{s.X, 0, center.X * (1 - s.X)},
		{0, s.Y, center.Y * (1 - s.Y)},
		{0, 0, 1},
	}
}

// transformable builds the matrix of a positioned, rotated, scaled object
// around origin.
func transformable(position ffi.Vector2f, degrees float32, scale, origin ffi.Vector2f) mat3 {
	sin, cos := sincos(-degrees)
	sxc, syc := scale.X*cos, scale.Y*cos
	sxs, sys := scale.X*sin, scale.Y*sin
	tx := -origin.X*sxc - origin.Y*sys + position.X
	ty := origin.X*sxs - origin.Y*syc + position.Y
	return mat3{{sxc, sys, tx}, {-sxs, syc, ty}, {0, 0, 1}}
}

func bounds(points []ffi.Vector2f) ffi.FloatRect {
	if len(points) == 0 {
		return ffi.FloatRect{}
	}
	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY
	for _, p := range points[1:] {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}
	return ffi.FloatRect{
		Position: ffi.Vector2f{X: minX, Y: minY},
		Size:     ffi.Vector2f{X: maxX - minX, Y: maxY - minY},
	}
}

func normalizeDegrees(a float32) float32 {
	a = float32(math.Mod(float64(a), 360))
	if a < 0 {
		a += 360
	}
	return a
}
