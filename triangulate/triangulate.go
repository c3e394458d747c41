// Package triangulate builds a fully-triangulated jigmesh.Mesh from a
// polygon and its holes (spec.md §4.8, "Triangulator adapter"). Ported
// from original_source/Jig/Triangulator.cpp, which delegates the actual
// triangulation to poly2tri: no constrained-Delaunay library appears
// anywhere in the retrieved example pack, so the cut-and-bridge step is a
// straight ear-clipping implementation on top of geom2d instead (see
// DESIGN.md). The output-mesh assembly — one vert per input point, one
// triangle per ear, twins discovered via a map keyed on the ordered vert
// pair — mirrors the source's vertsToEdge map exactly.
package triangulate

import (
	"github.com/pkg/errors"

	"jigmesh"
	"jigmesh/geom2d"
)

// ErrTooFewPoints is returned when the outer polygon has fewer than 3
// points once degenerate holes are bridged in.
var ErrTooFewPoints = errors.New("polygon has fewer than 3 points")

// Triangulator accumulates an outer polygon and its holes, then builds a
// triangulated mesh from them (spec.md §4.8). The zero value is not
// usable; build one with New.
type Triangulator struct {
	poly  geom2d.Polygon
	holes []geom2d.Polygon
}

// New starts a Triangulator for poly, which must be wound clockwise (the
// package's face-orientation convention; see geom2d.Polygon.IsCW).
func New(poly geom2d.Polygon) *Triangulator {
	return &Triangulator{poly: poly}
}

// AddHole registers an interior hole polygon, wound counter-clockwise
// relative to the outer polygon (mirrors Triangulator::AddHole).
func (t *Triangulator) AddHole(hole geom2d.Polygon) {
	t.holes = append(t.holes, hole)
}

// vertRef is a point tagged with the mesh vert that will represent it.
type vertRef struct {
	pos  geom2d.Vector2
	vert jigmesh.VertHandle
}

// Go triangulates the accumulated polygon and holes into a new mesh: every
// input vertex becomes a mesh vert, every resulting triangle becomes a
// face, and adjacent triangles are twinned (spec.md §4.8). Mirrors
// Triangulator::Go.
func (t *Triangulator) Go() (*jigmesh.Mesh, error) {
	loop := bridgeHoles(t.poly, t.holes)
	if len(loop) < 3 {
		return nil, ErrTooFewPoints
	}

	m := jigmesh.New()
	refs := make([]vertRef, len(loop))
	for i, p := range loop {
		refs[i] = vertRef{pos: p, vert: m.PushVert(p)}
	}

	tris := earClip(refs)

	type vertPair struct{ a, b jigmesh.VertHandle }
	pendingTwin := map[vertPair]jigmesh.EdgeHandle{}

	for _, tri := range tris {
		edges := make([]jigmesh.EdgeHandle, 3)
		for i, v := range tri {
			edges[i] = m.NewEdge(v, jigmesh.NoFace)
		}
		for i := range edges {
			m.Link(edges[i], edges[(i+1)%3])
		}
		m.PushFace(edges[0])

		for i, e := range edges {
			v0 := tri[i]
			v1 := tri[(i+1)%3]
			if twin, ok := pendingTwin[vertPair{v1, v0}]; ok {
				m.Pair(e, twin)
				delete(pendingTwin, vertPair{v1, v0})
			} else {
				pendingTwin[vertPair{v0, v1}] = e
			}
		}
	}

	m.Update()
	return m, nil
}

// bridgeHoles flattens poly and its holes into one simple loop by cutting
// a zero-width channel from the outer loop to each hole's nearest vertex
// (mirrors the coincident-point seam poly2tri itself produces when fed a
// polygon-with-holes via repeated AddHole calls, without requiring a CDT
// library to resolve the seam).
func bridgeHoles(poly geom2d.Polygon, holes []geom2d.Polygon) []geom2d.Vector2 {
	loop := append([]geom2d.Vector2(nil), poly.Points...)
	for _, hole := range holes {
		if len(hole.Points) < 3 {
			continue
		}
		loop = bridgeOne(loop, hole.Points)
	}
	return loop
}

// bridgeOne splices hole into loop at the pair of vertices (one per loop)
// with the shortest connecting segment that crosses no edge of either
// loop, duplicating both endpoints to open and close the seam (spec.md
// §C.2's coincident-seam construction).
func bridgeOne(loop []geom2d.Vector2, hole []geom2d.Vector2) []geom2d.Vector2 {
	bestI, bestJ := -1, -1
	bestDist := -1.0

	for i, a := range loop {
		for j, b := range hole {
			if !segmentCrossesEither(loop, hole, a, b) {
				d := a.Sub(b).LengthSquared()
				if bestI < 0 || d < bestDist {
					bestI, bestJ, bestDist = i, j, d
				}
			}
		}
	}

	if bestI < 0 {
		// No crossing-free bridge found; fall back to the closest pair
		// regardless, matching the source's unconditional splice (it
		// trusts its caller to supply a simple, non-overlapping hole).
		for i, a := range loop {
			for j, b := range hole {
				d := a.Sub(b).LengthSquared()
				if bestI < 0 || d < bestDist {
					bestI, bestJ, bestDist = i, j, d
				}
			}
		}
	}

	out := make([]geom2d.Vector2, 0, len(loop)+len(hole)+2)
	out = append(out, loop[:bestI+1]...)
	n := len(hole)
	for k := 0; k <= n; k++ {
		out = append(out, hole[(bestJ+k)%n])
	}
	out = append(out, loop[bestI])
	out = append(out, loop[bestI+1:]...)
	return out
}

// segmentCrossesEither reports whether segment a-b crosses any edge of
// loop or hole other than one touching a or b.
func segmentCrossesEither(loop, hole []geom2d.Vector2, a, b geom2d.Vector2) bool {
	seg := geom2d.Segment{A: a, B: b}
	check := func(ring []geom2d.Vector2) bool {
		n := len(ring)
		for i := 0; i < n; i++ {
			p, q := ring[i], ring[(i+1)%n]
			if p.Equal(a) || p.Equal(b) || q.Equal(a) || q.Equal(b) {
				continue
			}
			if _, ok := (geom2d.Segment{A: p, B: q}).Intersect(seg); ok {
				return true
			}
		}
		return false
	}
	return check(loop) || check(hole)
}

// earClip triangulates a simple polygon (given as a closed loop of
// refs, CW) by repeatedly removing convex "ears" whose triangle contains
// no other remaining vertex, the textbook O(n^2) ear-clipping algorithm.
func earClip(refs []vertRef) [][3]jigmesh.VertHandle {
	n := len(refs)
	if n < 3 {
		return nil
	}

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	var tris [][3]jigmesh.VertHandle
	guard := 0
	for len(idx) > 3 && guard < n*n+16 {
		guard++
		m := len(idx)
		clipped := false
		for k := 0; k < m; k++ {
			prev := idx[(k-1+m)%m]
			cur := idx[k]
			next := idx[(k+1)%m]

			if !isConvexCW(refs[prev].pos, refs[cur].pos, refs[next].pos) {
				continue
			}
			if anyOtherInside(refs, idx, prev, cur, next) {
				continue
			}

			tris = append(tris, [3]jigmesh.VertHandle{refs[prev].vert, refs[cur].vert, refs[next].vert})
			idx = append(append([]int{}, idx[:k]...), idx[k+1:]...)
			clipped = true
			break
		}
		if !clipped {
			break // degenerate input; stop rather than loop forever
		}
	}

	if len(idx) == 3 {
		tris = append(tris, [3]jigmesh.VertHandle{refs[idx[0]].vert, refs[idx[1]].vert, refs[idx[2]].vert})
	}
	return tris
}

// isConvexCW reports whether the corner at b (in a CW loop a->b->c, this
// package's orientation convention — see geom2d.Polygon.IsCW) is convex,
// i.e. is a candidate ear tip.
func isConvexCW(a, b, c geom2d.Vector2) bool {
	return b.Sub(a).Cross(c.Sub(b)) > 0
}

func anyOtherInside(refs []vertRef, idx []int, prev, cur, next int) bool {
	tri := geom2d.Polygon{Points: []geom2d.Vector2{refs[prev].pos, refs[cur].pos, refs[next].pos}}
	for _, i := range idx {
		if i == prev || i == cur || i == next {
			continue
		}
		if geom2d.PointInPolygon(tri, refs[i].pos) {
			return true
		}
	}
	return false
}
