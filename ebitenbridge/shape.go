package ebitenbridge

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/sfml"
)

// Shape is the part of a sfml shape needed to triangulate it. CircleShape and
// CustomShape satisfy it.
type Shape interface {
	PointCount() int
	Point(i int) sfml.Vector2f
	GeometricCenter() sfml.Vector2f
	Transform() sfml.Transform
	FillColor() sfml.Color
}

// AppendShape appends a triangle fan covering s, in world coordinates, to
// verts and inds. Shapes are convex, so the fan around the geometric center
// covers the outline exactly. src is the source rectangle of the image the
// triangles will be drawn with; every vertex samples its center.
//
// Indices are 16-bit. If the shape does not fit in the batch, verts and inds
// are returned unchanged; draw the batch and start a new one.
func AppendShape(verts []ebiten.Vertex, inds []uint16, s Shape, src sfml.IntRect) ([]ebiten.Vertex, []uint16) {
	n := s.PointCount()
	if n < 3 || len(verts)+n+1 > math.MaxUint16+1 {
		return verts, inds
	}
	m := GeoM(s.Transform())
	c := NRGBA(s.FillColor())
	r, g, b, a := float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255
	sx := float32(src.Position.X) + float32(src.Size.X)/2
	sy := float32(src.Position.Y) + float32(src.Size.Y)/2

	vertex := func(p sfml.Vector2f) ebiten.Vertex {
		x, y := m.Apply(float64(p.X), float64(p.Y))
		return ebiten.Vertex{
			DstX: float32(x), DstY: float32(y),
			SrcX: sx, SrcY: sy,
			ColorR: r, ColorG: g, ColorB: b, ColorA: a,
		}
	}

	base := uint16(len(verts))
	verts = append(verts, vertex(s.GeometricCenter()))
	for i := 0; i < n; i++ {
		verts = append(verts, vertex(s.Point(i)))
	}
	for i := 0; i < n; i++ {
		next := (i+1)%n + 1
		inds = append(inds, base, base+uint16(i)+1, base+uint16(next))
	}
	return verts, inds
}

// DrawShape fills s onto dst using a white source image.
func DrawShape(dst *ebiten.Image, s Shape, white *ebiten.Image) {
	b := white.Bounds()
	src := sfml.IntRect{
		Position: sfml.Vector2i{X: int32(b.Min.X), Y: int32(b.Min.Y)},
		Size:     sfml.Vector2i{X: int32(b.Dx()), Y: int32(b.Dy())},
	}
	verts, inds := AppendShape(nil, nil, s, src)
	if len(inds) == 0 {
		return
	}
	dst.DrawTriangles(verts, inds, white, &ebiten.DrawTrianglesOptions{})
}
