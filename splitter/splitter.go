// Package splitter decomposes a jigmesh face into convex pieces by
// repeatedly bridging each concave corner to a suitable non-adjacent edge,
// and can attach a detached hole loop to an outer face before
// convexifying the result (spec.md §4.3). Grounded on
// original_source/Jig/ShapeSplitter.{h,cpp}: the deviation-cone angle
// finder and the candidate-ranking/intersection-guard structure are kept,
// translated from pointer-chasing Edge* to jigmesh's handles.
package splitter

import (
	"math"
	"sort"

	"github.com/pkg/errors"

	"jigmesh"
	"jigmesh/geom2d"
)

// ErrNoBridge is returned by AddHole when no candidate edge pair connects
// the hole to the face without crossing an existing edge.
var ErrNoBridge = errors.New("no valid bridge edge could be found")

// deviationCone captures the admissible bearing range for a bridge
// originating at edge's vert, mirroring ShapeSplitter.cpp's
// DeviantAngleFinder: the bisector of the reflex corner at edge, and the
// open (min,max) angular window either side of it that a candidate target must
// fall within.
type deviationCone struct {
	origin          geom2d.Vector2
	normal          geom2d.Vector2
	minAngle, maxAngle float64
}

func newDeviationCone(m *jigmesh.Mesh, edge jigmesh.EdgeHandle, reverse bool) deviationCone {
	fromPrev, _ := m.EdgeVec(m.EdgePrev(edge)).Normalised()
	fromNext, _ := m.EdgeVec(edge).Normalised()
	fromNext = fromNext.Scale(-1)

	if reverse {
		fromPrev = fromPrev.Scale(-1)
		fromNext = fromNext.Scale(-1)
	}

	normal := fromPrev.Add(fromNext).Scale(0.5)
	if n, ok := normal.Normalised(); ok {
		normal = n
	} else {
		normal = geom2d.Vector2{X: -fromPrev.Y, Y: fromPrev.X}
	}

	maxAngle := normal.Angle(fromPrev.Scale(-1))
	minAngle := normal.Angle(fromNext.Scale(-1))
	if maxAngle < minAngle {
		maxAngle, minAngle = minAngle, maxAngle
	}

	return deviationCone{origin: m.Pos(m.EdgeVert(edge)), normal: normal, minAngle: minAngle, maxAngle: maxAngle}
}

// angleTo returns the absolute deviation from the cone's bisector to
// point, and whether point falls within the admissible window.
func (d deviationCone) angleTo(point geom2d.Vector2) (float64, bool) {
	toPoint, ok := point.Sub(d.origin).Normalised()
	if !ok {
		return 0, false
	}
	angle := d.normal.Angle(toPoint)
	return math.Abs(angle), angle > d.minAngle && angle < d.maxAngle
}

type candidate struct {
	angle float64
	edge  jigmesh.EdgeHandle
}

// sharesVert reports whether a and b have a vert in common, which
// disqualifies b as a bridge target for a (they're already connected).
func sharesVert(m *jigmesh.Mesh, a, b jigmesh.EdgeHandle) bool {
	aV, aV2 := m.EdgeVert(a), m.EdgeVert(m.EdgeNext(a))
	bV, bV2 := m.EdgeVert(b), m.EdgeVert(m.EdgeNext(b))
	return aV == bV || aV == bV2 || aV2 == bV || aV2 == bV2
}

// candidatesFor ranks every edge of dstFace as a bridge target for
// srcEdge, nearest-bisector-deviation first, keeping only those inside the
// deviation cone.
func candidatesFor(m *jigmesh.Mesh, srcEdge jigmesh.EdgeHandle, dstFace jigmesh.FaceHandle, reverse bool) []candidate {
	cone := newDeviationCone(m, srcEdge, reverse)
	var out []candidate
	for _, e := range m.GetEdges(dstFace) {
		if sharesVert(m, srcEdge, e) {
			continue
		}
		if angle, ok := cone.angleTo(m.Pos(m.EdgeVert(e))); ok {
			out = append(out, candidate{angle: angle, edge: e})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].angle < out[j].angle })
	return out
}

// canConnect reports whether the straight bridge from e0's vert to e1's
// vert stays interior to e0's face: no other edge of that face (besides
// e0, e1, and edges already touching either endpoint) may cross it.
func canConnect(m *jigmesh.Mesh, e0, e1 jigmesh.EdgeHandle) bool {
	v0, v1 := m.Pos(m.EdgeVert(e0)), m.Pos(m.EdgeVert(e1))
	diag := geom2d.Segment{A: v0, B: v1}
	endA, endB := m.EdgeVert(e0), m.EdgeVert(e1)

	for _, e := range m.GetEdges(m.EdgeFace(e0)) {
		if e == e0 || e == e1 {
			continue
		}
		ev, evNext := m.EdgeVert(e), m.EdgeVert(m.EdgeNext(e))
		if ev == endA || ev == endB || evNext == endA || evNext == endB {
			continue
		}
		seg := geom2d.Segment{A: m.Pos(ev), B: m.Pos(evNext)}
		if _, ok := seg.Intersect(diag); ok {
			return false
		}
	}
	return true
}

// Convexify recursively splits face along bridges from each concave
// corner to a non-adjacent edge within the same face, until every
// resulting face is convex or no valid bridge can be found (spec.md
// §4.3). It mirrors ShapeSplitter::Convexify: examine edges in order,
// act on the first concave one found, recurse on both halves, and stop.
func Convexify(m *jigmesh.Mesh, face jigmesh.FaceHandle) {
	if m.FaceEdgeCount(face) < 4 {
		return
	}

	for _, e := range m.GetEdges(face) {
		if !m.IsConcave(e) {
			continue
		}

		var connect jigmesh.EdgeHandle = jigmesh.NoEdge
		for _, c := range candidatesFor(m, e, face, false) {
			if canConnect(m, e, c.edge) {
				connect = c.edge
				break
			}
		}
		if connect == jigmesh.NoEdge {
			return
		}

		newFace, err := m.SplitFace(face, e, connect)
		if err != nil {
			return
		}

		Convexify(m, face)
		Convexify(m, newFace)
		return
	}
}

// AddHole attaches a detached hole face to an outer face by bridging the
// pair of edges (one on each loop) with the smallest combined
// bisector-angle deviation, subject to the bridge crossing no existing
// edge on either side, then convexifies the merged result (spec.md §4.3,
// "Hole attachment"). hole is consumed: after a successful call its loop
// has been merged into face and its face handle no longer exists.
func AddHole(m *jigmesh.Mesh, face, hole jigmesh.FaceHandle) error {
	type pair struct {
		angle  float64
		faceE  jigmesh.EdgeHandle
		holeE  jigmesh.EdgeHandle
	}
	var pairs []pair

	for _, fe := range m.GetEdges(face) {
		for _, c := range candidatesFor(m, fe, hole, true) {
			back := newDeviationCone(m, c.edge, false)
			backAngle, ok := back.angleTo(m.Pos(m.EdgeVert(fe)))
			if !ok {
				continue
			}
			pairs = append(pairs, pair{angle: c.angle + backAngle, faceE: fe, holeE: c.edge})
		}
	}

	sort.Slice(pairs, func(i, j int) bool { return pairs[i].angle < pairs[j].angle })

	for _, p := range pairs {
		if canConnect(m, p.faceE, p.holeE) && canConnect(m, p.holeE, p.faceE) {
			if err := m.Bridge(p.faceE, p.holeE); err != nil {
				continue
			}
			Convexify(m, face)
			return nil
		}
	}
	return ErrNoBridge
}
