// Package geom provides the geometric predicates used by the cave
// simulation: point-to-segment distance, point-in-polygon tests, and
// circle-vs-polygon intersection. All functions are pure and hold no
// state, so call order never affects results.
package geom

import "math"

// Point is a position in world units.
type Point struct {
	X, Y float64
}

// Polygon is an ordered ring of vertices forming a simple closed loop.
// The closing edge from the last vertex back to the first is implicit.
type Polygon []Point

// rayEps avoids division by zero on exactly horizontal edges during the
// ray-casting parity test.
const rayEps = 1e-9

// DistPointSegment returns the shortest distance from p to the segment
// a-b. A zero-length segment degenerates to the distance to a.
func DistPointSegment(p, a, b Point) float64 {
	c := ClosestOnSegment(p, a, b)
	return math.Hypot(p.X-c.X, p.Y-c.Y)
}

// ClosestOnSegment returns the point on segment a-b nearest to p.
// The projection parameter is clamped to [0, 1] so the result always
// lies on the segment.
func ClosestOnSegment(p, a, b Point) Point {
	abx, aby := b.X-a.X, b.Y-a.Y
	len2 := abx*abx + aby*aby
	if len2 == 0 {
		return a
	}
	t := ((p.X-a.X)*abx + (p.Y-a.Y)*aby) / len2
	t = math.Max(0, math.Min(1, t))
	return Point{X: a.X + t*abx, Y: a.Y + t*aby}
}

// PointInPolygon reports whether p lies inside the simple polygon poly
// using the standard ray-casting parity test. The polygon need not be
// convex.
func PointInPolygon(p Point, poly Polygon) bool {
	inside := false
	n := len(poly)
	for i := 0; i < n; i++ {
		a := poly[i]
		b := poly[(i+1)%n]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			xAtY := a.X + (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y+rayEps)
			if xAtY > p.X {
				inside = !inside
			}
		}
	}
	return inside
}

// CirclePolygonCollision reports whether a circle at center with the
// given radius intersects poly. The center-inside test alone misses a
// circle whose body overlaps an edge or a thin spike tip from outside,
// so every edge segment is also checked. Exact tangency counts as a
// collision.
func CirclePolygonCollision(center Point, radius float64, poly Polygon) bool {
	if PointInPolygon(center, poly) {
		return true
	}
	n := len(poly)
	for i := 0; i < n; i++ {
		if DistPointSegment(center, poly[i], poly[(i+1)%n]) <= radius {
			return true
		}
	}
	return false
}

// PolygonClosestPoint returns the point on the polygon's edges nearest
// to p. A degenerate empty polygon returns p itself.
func PolygonClosestPoint(p Point, poly Polygon) Point {
	best := p
	bestD2 := math.Inf(1)
	n := len(poly)
	for i := 0; i < n; i++ {
		c := ClosestOnSegment(p, poly[i], poly[(i+1)%n])
		d2 := (c.X-p.X)*(c.X-p.X) + (c.Y-p.Y)*(c.Y-p.Y)
		if d2 < bestD2 {
			bestD2 = d2
			best = c
		}
	}
	return best
}

// SegmentsIntersect reports whether the open segments p1-p2 and p3-p4
// properly cross. Shared endpoints do not count as an intersection.
func SegmentsIntersect(p1, p2, p3, p4 Point) bool {
	d1 := cross(p3, p4, p1)
	d2 := cross(p3, p4, p2)
	d3 := cross(p1, p2, p3)
	d4 := cross(p1, p2, p4)
	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}

// IsSimple reports whether the polygon has no two non-adjacent edges
// that cross each other.
func IsSimple(poly Polygon) bool {
	n := len(poly)
	if n < 3 {
		return false
	}
	for i := 0; i < n; i++ {
		a1 := poly[i]
		a2 := poly[(i+1)%n]
		for j := i + 1; j < n; j++ {
			// Skip adjacent edges, which always share a vertex.
			if j == i || (j+1)%n == i || (i+1)%n == j {
				continue
			}
			b1 := poly[j]
			b2 := poly[(j+1)%n]
			if SegmentsIntersect(a1, a2, b1, b2) {
				return false
			}
		}
	}
	return true
}

func cross(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}
