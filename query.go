package jigmesh

import "jigmesh/geom2d"

// HitTest returns the face containing point, using the quadtree built by
// the last Update call if one exists, else falling back to a brute-force
// scan (spec.md §4.1, HitTest). The zero value of the second return is
// false when point lies outside every face.
func (m *Mesh) HitTest(point geom2d.Vector2) (FaceHandle, bool) {
	contains := func(f FaceHandle) bool {
		return geom2d.PointInPolygon(m.FacePolygon(f), point)
	}
	if m.qt != nil {
		return m.qt.HitTest(point, contains)
	}
	for _, f := range m.Faces() {
		if contains(f) {
			return f, true
		}
	}
	return NoFace, false
}

// FindNearestVert returns the live vert closest to point, subject to being
// within tolerance (tolerance <= 0 disables the threshold). Brute force
// over every vert — spec.md doesn't call for quadtree acceleration here,
// since the index is keyed on face bboxes, not individual verts.
func (m *Mesh) FindNearestVert(point geom2d.Vector2, tolerance float64) (VertHandle, bool) {
	best := NoVert
	bestDist := 0.0
	for _, v := range m.Verts() {
		d := m.Pos(v).Sub(point).LengthSquared()
		if best == NoVert || d < bestDist {
			best, bestDist = v, d
		}
	}
	if best == NoVert {
		return NoVert, false
	}
	if tolerance > 0 && bestDist > tolerance*tolerance {
		return NoVert, false
	}
	return best, true
}

// FindOuterEdge returns any one twin-less edge in the mesh, or NoEdge if
// the mesh has no boundary (every edge is twinned, which can only happen
// for an empty mesh).
func (m *Mesh) FindOuterEdge() EdgeHandle {
	for i, s := range m.edges {
		if s.alive && s.twin == NoEdge {
			return EdgeHandle(i)
		}
	}
	return NoEdge
}

// FindOuterEdgeWithVert returns the twin-less edge whose origin is v, if
// any.
func (m *Mesh) FindOuterEdgeWithVert(v VertHandle) EdgeHandle {
	for i, s := range m.edges {
		if s.alive && s.twin == NoEdge && s.vert == v {
			return EdgeHandle(i)
		}
	}
	return NoEdge
}

// FindEdgeWithVert returns any edge (twinned or not) whose origin is v.
func (m *Mesh) FindEdgeWithVert(v VertHandle) EdgeHandle {
	for i, s := range m.edges {
		if s.alive && s.vert == v {
			return EdgeHandle(i)
		}
	}
	return NoEdge
}

// EdgesAtVert returns every live edge whose origin is v, across every face
// incident to v — one entry per face touching v. Used by command.DeleteVert
// to enumerate the full fan of edges that must be rewired or removed.
func (m *Mesh) EdgesAtVert(v VertHandle) []EdgeHandle {
	var out []EdgeHandle
	for i, s := range m.edges {
		if s.alive && s.vert == v {
			out = append(out, EdgeHandle(i))
		}
	}
	return out
}

// GetOuterEdges returns every twin-less edge in the mesh, unordered —
// callers that want a single ordered boundary walk should use
// OuterEdgeLoop(FindOuterEdge()).
func (m *Mesh) GetOuterEdges() []EdgeHandle {
	var out []EdgeHandle
	for i, s := range m.edges {
		if s.alive && s.twin == NoEdge {
			out = append(out, EdgeHandle(i))
		}
	}
	return out
}

// GetOuterPolygon returns the polygon traced by the mesh's outer boundary,
// starting from an arbitrary twin-less edge. Returns an empty polygon if
// the mesh has no boundary.
func (m *Mesh) GetOuterPolygon() geom2d.Polygon {
	start := m.FindOuterEdge()
	if start == NoEdge {
		return geom2d.Polygon{}
	}
	var pts []geom2d.Vector2
	for e := range m.OuterEdgeLoop(start) {
		pts = append(pts, m.Pos(m.EdgeVert(e)))
	}
	return geom2d.Polygon{Points: pts}
}
