package geom2d

import "math"

// Polygon is an ordered, closed loop of vertices (implicitly closed — the
// last vertex connects back to the first). It does not own or interpret
// holes; a face with holes is represented at the mesh level as a single
// pinched loop (see the root package's Bridge operation).
type Polygon struct {
	Points []Vector2
}

// segmentCount returns the number of edges in the closed loop.
func (p Polygon) segmentCount() int { return len(p.Points) }

// Vertex returns the i'th vertex, wrapping modulo the polygon length in
// either direction (mirrors PolyLine::ClampVertIndex for closed polylines).
func (p Polygon) Vertex(i int) Vector2 {
	n := len(p.Points)
	i %= n
	if i < 0 {
		i += n
	}
	return p.Points[i]
}

// Segment returns the i'th edge, from Vertex(i) to Vertex(i+1).
func (p Polygon) Segment(i int) Segment {
	return Segment{A: p.Vertex(i), B: p.Vertex(i + 1)}
}

// BBox returns the axis-aligned bounding box of the polygon's vertices.
func (p Polygon) BBox() Rect { return FromPoints(p.Points) }

// SignedArea returns twice the polygon's signed area (positive for CW loops
// under this package's convention of "next keeps the face on the left",
// matching spec.md §3's face orientation rule with a Y-down screen
// coordinate system; see IsCW).
func (p Polygon) SignedArea() float64 {
	var total float64
	n := len(p.Points)
	for i := 0; i < n; i++ {
		a := p.Points[i]
		b := p.Points[(i+1)%n]
		total += a.X*b.Y - b.X*a.Y
	}
	return total
}

// IsCW reports whether the loop is wound clockwise. Mirrors
// PolyLine::IsCW, which sums signed per-vertex turning angles; summing the
// shoelace area is equivalent and avoids a trig call per vertex.
func (p Polygon) IsCW() bool { return p.SignedArea() > 0 }

// Reversed returns the polygon with vertex order flipped, used to flip
// orientation without mutating the receiver (mirrors PolyLine::MakeCW,
// split into a pure query + pure transform instead of an in-place mutator).
func (p Polygon) Reversed() Polygon {
	n := len(p.Points)
	out := make([]Vector2, n)
	for i, v := range p.Points {
		out[n-1-i] = v
	}
	return Polygon{Points: out}
}

// IsSelfIntersecting reports whether any two non-adjacent edges of the loop
// cross.
func (p Polygon) IsSelfIntersecting() bool {
	n := p.segmentCount()
	if n < 4 {
		return false
	}
	for i := 0; i < n; i++ {
		si := p.Segment(i)
		for j := i + 2; j < n; j++ {
			if i == 0 && j == n-1 {
				continue // adjacent wrap-around
			}
			if _, ok := si.Intersect(p.Segment(j)); ok {
				return true
			}
		}
	}
	return false
}

// PointInPolygon reports whether point lies inside the polygon using a
// horizontal ray-cast parity test, ported from Geometry::PointInPolygon
// (http://geomalgorithms.com/a03-_inclusion.html in the original comment).
// A point equal to one of the polygon's vertices is treated as inside; other
// points exactly on an edge are not detected, so whether they count as
// inside depends on which edge they lie on.
func PointInPolygon(p Polygon, point Vector2) bool {
	inside := false
	test := Horizontal(point.Y)
	onTestRay := func(v Vector2) bool {
		return v.X > point.X && math.Abs(v.Y-point.Y) < Epsilon
	}

	n := p.segmentCount()
	for i := 0; i < n; i++ {
		a, b := p.Vertex(i), p.Vertex(i+1)
		if point.Equal(a) {
			return true
		}
		if math.Abs(a.Y-b.Y) < Epsilon {
			continue // horizontal edge contributes nothing to the parity count
		}
		if a.Y < b.Y {
			a, b = b, a
		}
		if onTestRay(b) {
			continue
		}
		if onTestRay(a) {
			inside = !inside
			continue
		}
		if ip, ok := LineThrough(a, b).Intersect(test); ok && ip.X > point.X {
			inside = !inside
		}
	}
	return inside
}
