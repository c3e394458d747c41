package jigmesh

import (
	"iter"

	"jigmesh/geom2d"
)

// EdgeLoop walks a face's loop starting at start, following next, yielding
// start again would mean stopping — the loop ends once next returns to
// start without yielding it twice (spec.md §4.1 iterator table).
func (m *Mesh) EdgeLoop(start EdgeHandle) iter.Seq[EdgeHandle] {
	return func(yield func(EdgeHandle) bool) {
		if start == NoEdge {
			return
		}
		e := start
		for {
			if !yield(e) {
				return
			}
			e = m.EdgeNext(e)
			if e == start {
				return
			}
		}
	}
}

// nextOuterEdge advances from a twin-less edge e to the next twin-less edge
// along the same boundary, rotating around e's far vert through twins
// (spec.md §4.1, OuterEdgeLoop step rule).
func (m *Mesh) nextOuterEdge(e EdgeHandle) EdgeHandle {
	cand := m.EdgeNext(e)
	for {
		twin := m.EdgeTwin(cand)
		if twin == NoEdge {
			return cand
		}
		cand = m.EdgeNext(twin)
	}
}

// NextOuterEdge exposes nextOuterEdge to other packages (command, in
// particular, needs it to walk a boundary range edge-by-edge rather than
// through the whole loop).
func (m *Mesh) NextOuterEdge(e EdgeHandle) EdgeHandle { return m.nextOuterEdge(e) }

// OuterEdgeLoop walks the outer (twin-less) boundary that start belongs to,
// in order. start itself must be twin-less.
func (m *Mesh) OuterEdgeLoop(start EdgeHandle) iter.Seq[EdgeHandle] {
	return func(yield func(EdgeHandle) bool) {
		if start == NoEdge {
			return
		}
		e := start
		for {
			if !yield(e) {
				return
			}
			e = m.nextOuterEdge(e)
			if e == start {
				return
			}
		}
	}
}

// SharedEdges fans CW around e's origin vert (e.prev.twin, repeated),
// stopping once it cycles back to e or hits a twin-less edge (spec.md
// §4.1, SharedEdges step rule) — the set of edges incident to a single
// vert.
func (m *Mesh) SharedEdges(e EdgeHandle) iter.Seq[EdgeHandle] {
	return func(yield func(EdgeHandle) bool) {
		if e == NoEdge {
			return
		}
		cur := e
		for {
			if !yield(cur) {
				return
			}
			twin := m.EdgeTwin(m.EdgePrev(cur))
			if twin == NoEdge {
				return
			}
			cur = twin
			if cur == e {
				return
			}
		}
	}
}

// LineLoop maps EdgeLoop onto the segment each edge forms with its
// successor's origin.
func (m *Mesh) LineLoop(start EdgeHandle) iter.Seq[geom2d.Segment] {
	return func(yield func(geom2d.Segment) bool) {
		for e := range m.EdgeLoop(start) {
			seg := geom2d.Segment{A: m.Pos(m.EdgeVert(e)), B: m.Pos(m.EdgeVert(m.EdgeNext(e)))}
			if !yield(seg) {
				return
			}
		}
	}
}

// PointLoop maps EdgeLoop onto each edge's origin position.
func (m *Mesh) PointLoop(start EdgeHandle) iter.Seq[geom2d.Vector2] {
	return func(yield func(geom2d.Vector2) bool) {
		for e := range m.EdgeLoop(start) {
			if !yield(m.Pos(m.EdgeVert(e))) {
				return
			}
		}
	}
}

// PointPairLoop maps OuterEdgeLoop onto the segment each outer edge forms
// with the next outer edge's origin — the boundary polyline, skipping any
// interior diagonal edges a hole-pinch might have introduced.
func (m *Mesh) PointPairLoop(start EdgeHandle) iter.Seq[geom2d.Segment] {
	return func(yield func(geom2d.Segment) bool) {
		for e := range m.OuterEdgeLoop(start) {
			seg := geom2d.Segment{A: m.Pos(m.EdgeVert(e)), B: m.Pos(m.EdgeVert(m.nextOuterEdge(e)))}
			if !yield(seg) {
				return
			}
		}
	}
}

// GetEdges returns every edge in f's loop, in order.
func (m *Mesh) GetEdges(f FaceHandle) []EdgeHandle {
	var out []EdgeHandle
	for e := range m.EdgeLoop(m.faces[f].start) {
		out = append(out, e)
	}
	return out
}
