package ffitest

import (
	"math"

	"github.com/phanxgames/sfml/ffi"
)

type fakeShape struct {
	position    ffi.Vector2f
	rotation    float32
	scale       ffi.Vector2f
	origin      ffi.Vector2f
	texture     *ffi.Texture
	textureRect ffi.IntRect
	fill        ffi.Color
	outline     ffi.Color
	thickness   float32
	transform   ffi.Transform
	inverse     ffi.Transform
}

func newFakeShape() fakeShape {
	white := ffi.Color{R: 255, G: 255, B: 255, A: 255}
	return fakeShape{scale: ffi.Vector2f{X: 1, Y: 1}, fill: white, outline: white}
}

func (s *fakeShape) boundTexture() *ffi.Texture { return s.texture }

func (s *fakeShape) matrix() mat3 {
	return transformable(s.position, s.rotation, s.scale, s.origin)
}

type fakeCircle struct {
	fakeShape
	radius float32
	count  uintptr
}

func (c *fakeCircle) point(i uintptr) ffi.Vector2f {
	angle := float64(i)/float64(c.count)*2*math.Pi - math.Pi/2
	sin, cos := math.Sincos(angle)
	return ffi.Vector2f{X: c.radius + c.radius*float32(cos), Y: c.radius + c.radius*float32(sin)}
}

func (c *fakeCircle) points() []ffi.Vector2f {
	out := make([]ffi.Vector2f, c.count)
	for i := range out {
		out[i] = c.point(uintptr(i))
	}
	return out
}

type fakeCustom struct {
	fakeShape
	ud     ffi.UserData
	cached []ffi.Vector2f
}

// shapeABI builds the accessor set shared by the shape classes. points
// returns the outline the bounds are computed from.
func shapeABI[T any](
	l *Library,
	base func(*T) *fakeShape,
	count func(*T) uintptr,
	point func(*T, uintptr) ffi.Vector2f,
	points func(*T) []ffi.Vector2f,
) ffi.ShapeABI[T] {
	localBounds := func(p *T) ffi.FloatRect {
		pts := points(p)
		if len(pts) == 0 {
			return ffi.FloatRect{}
		}
		b := bounds(pts)
		t := float32(math.Abs(float64(base(p).thickness)))
		b.Position = b.Position.Sub(ffi.Vector2f{X: t, Y: t})
		b.Size = b.Size.Add(ffi.Vector2f{X: 2 * t, Y: 2 * t})
		return b
	}
	return ffi.ShapeABI[T]{
		SetPosition: func(p *T, v ffi.Vector2f) { base(p).position = v },
		SetRotation: func(p *T, a float32) { base(p).rotation = normalizeDegrees(a) },
		SetScale:    func(p *T, v ffi.Vector2f) { base(p).scale = v },
		SetOrigin:   func(p *T, v ffi.Vector2f) { base(p).origin = v },
		Position:    func(p *T) ffi.Vector2f { return base(p).position },
		Rotation:    func(p *T) float32 { return base(p).rotation },
		Scale:       func(p *T) ffi.Vector2f { return base(p).scale },
		Origin:      func(p *T) ffi.Vector2f { return base(p).origin },
		Move: func(p *T, v ffi.Vector2f) {
			s := base(p)
			s.position = s.position.Add(v)
		},
		Rotate: func(p *T, a float32) {
			s := base(p)
			s.rotation = normalizeDegrees(s.rotation + a)
		},
		ScaleBy: func(p *T, f ffi.Vector2f) {
			s := base(p)
			s.scale = ffi.Vector2f{X: s.scale.X * f.X, Y: s.scale.Y * f.Y}
		},
		Transform: func(p *T) *ffi.Transform {
			s := base(p)
			s.transform = s.matrix().transform()
			return &s.transform
		},
		InverseTransform: func(p *T) *ffi.Transform {
			s := base(p)
			s.inverse = s.matrix().inverse().transform()
			return &s.inverse
		},
		SetTexture: func(p *T, t *ffi.Texture, resetRect bool) {
			s := base(p)
			if t != nil {
				ft := get[fakeTexture](l, ClassTexture, t)
				if resetRect || (s.texture == nil && s.textureRect == (ffi.IntRect{})) {
					s.textureRect = ffi.IntRect{Size: ffi.Vector2i{X: int32(ft.size.X), Y: int32(ft.size.Y)}}
				}
			}
			s.texture = t
		},
		SetTextureRect:      func(p *T, r ffi.IntRect) { base(p).textureRect = r },
		SetFillColor:        func(p *T, c ffi.Color) { base(p).fill = c },
		SetOutlineColor:     func(p *T, c ffi.Color) { base(p).outline = c },
		SetOutlineThickness: func(p *T, f float32) { base(p).thickness = f },
		Texture:             func(p *T) *ffi.Texture { return base(p).texture },
		TextureRect:         func(p *T) ffi.IntRect { return base(p).textureRect },
		FillColor:           func(p *T) ffi.Color { return base(p).fill },
		OutlineColor:        func(p *T) ffi.Color { return base(p).outline },
		OutlineThickness:    func(p *T) float32 { return base(p).thickness },
		PointCount:          count,
		Point:               point,
		GeometricCenter: func(p *T) ffi.Vector2f {
			pts := points(p)
			if len(pts) == 0 {
				return ffi.Vector2f{}
			}
			var sum ffi.Vector2f
			for _, v := range pts {
				sum = sum.Add(v)
			}
			return sum.Mul(1 / float32(len(pts)))
		},
		LocalBounds: localBounds,
		GlobalBounds: func(p *T) ffi.FloatRect {
			return base(p).matrix().applyRect(localBounds(p))
		},
	}
}

func (l *Library) wireShapes() {
	circle := func(p *ffi.CircleShape) *fakeCircle { return get[fakeCircle](l, ClassCircleShape, p) }

	l.CircleShapeNew = func() *ffi.CircleShape {
		return alloc[ffi.CircleShape](l, ClassCircleShape, &fakeCircle{fakeShape: newFakeShape(), count: 30})
	}
	l.CircleShapeCopy = func(p *ffi.CircleShape) *ffi.CircleShape {
		cp := *circle(p)
		return alloc[ffi.CircleShape](l, ClassCircleShape, &cp)
	}
	l.CircleShapeDelete = func(p *ffi.CircleShape) { free(l, ClassCircleShape, p) }
	l.CircleShapeSetRadius = func(p *ffi.CircleShape, r float32) { circle(p).radius = r }
	l.CircleShapeRadius = func(p *ffi.CircleShape) float32 { return circle(p).radius }
	l.CircleShapeSetPointCount = func(p *ffi.CircleShape, n uintptr) { circle(p).count = n }
	l.CircleShape = shapeABI(l,
		func(p *ffi.CircleShape) *fakeShape { return &circle(p).fakeShape },
		func(p *ffi.CircleShape) uintptr { return circle(p).count },
		func(p *ffi.CircleShape, i uintptr) ffi.Vector2f {
			c := circle(p)
			if i >= c.count {
				l.violate("%s: point %d out of range [0,%d)", ClassCircleShape, i, c.count)
				return ffi.Vector2f{}
			}
			return c.point(i)
		},
		func(p *ffi.CircleShape) []ffi.Vector2f { return circle(p).points() },
	)

	custom := func(p *ffi.CustomShape) *fakeCustom { return get[fakeCustom](l, ClassCustomShape, p) }

	l.CustomShapeNew = func(ud ffi.UserData) *ffi.CustomShape {
		return alloc[ffi.CustomShape](l, ClassCustomShape, &fakeCustom{fakeShape: newFakeShape(), ud: ud})
	}
	l.CustomShapeDelete = func(p *ffi.CustomShape) { free(l, ClassCustomShape, p) }
	l.CustomShapeUpdate = func(p *ffi.CustomShape) {
		c := custom(p)
		n := ffi.PointCountTrampoline(c.ud)
		pts := make([]ffi.Vector2f, n)
		for i := range pts {
			pts[i] = ffi.PointTrampoline(uintptr(i), c.ud)
		}
		c.cached = pts
	}
	l.CustomShape = shapeABI(l,
		func(p *ffi.CustomShape) *fakeShape { return &custom(p).fakeShape },
		func(p *ffi.CustomShape) uintptr { return ffi.PointCountTrampoline(custom(p).ud) },
		func(p *ffi.CustomShape, i uintptr) ffi.Vector2f { return ffi.PointTrampoline(i, custom(p).ud) },
		func(p *ffi.CustomShape) []ffi.Vector2f { return custom(p).cached },
	)
}

// Binders returns how many live shapes currently have t set as their texture.
func (l *Library) Binders(t *ffi.Texture) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, o := range l.live {
		if s, ok := o.value.(interface{ boundTexture() *ffi.Texture }); ok && s.boundTexture() == t {
			n++
		}
	}
	return n
}
