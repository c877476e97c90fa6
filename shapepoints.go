package sfml

import "math"

// Polygon is a fixed outline usable as CustomShapePoints. The points should
// describe a convex polygon in order.
type Polygon []Vector2f

// PointCount implements CustomShapePoints.
func (p Polygon) PointCount() int { return len(p) }

// Point implements CustomShapePoints.
func (p Polygon) Point(i int) Vector2f { return p[i] }

// RegularPolygon returns a regular polygon with the given number of sides
// inscribed in a circle of radius. Like a CircleShape, its bounds start at
// (0, 0) and the first point is at the top.
func RegularPolygon(sides int, radius float32) Polygon {
	if sides < 3 {
		return nil
	}
	pts := make(Polygon, sides)
	for i := range pts {
		pts[i] = polarPoint(radius, radius, float64(i)/float64(sides))
	}
	return pts
}

// Star returns a star outline with the given number of points, alternating
// between the outer and inner radius. The bounds start at (0, 0).
func Star(points int, outer, inner float32) Polygon {
	if points < 2 {
		return nil
	}
	n := points * 2
	pts := make(Polygon, n)
	for i := range pts {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		pts[i] = polarPoint(outer, r, float64(i)/float64(n))
	}
	return pts
}

// polarPoint returns the point at fraction turn of a full circle of radius r
// around (center, center), starting from the top.
func polarPoint(center, r float32, turn float64) Vector2f {
	angle := turn*2*math.Pi - math.Pi/2
	sin, cos := math.Sincos(angle)
	return Vector2f{X: center + r*float32(cos), Y: center + r*float32(sin)}
}
