package jigmesh

import "jigmesh/geom2d"

// NewFaceFromPolygon builds a single-face mesh from poly: one vert per
// point, one edge per side, wired into a closed CW loop with no twins
// (grounded on original_source/Jig/EdgeMesh.cpp's Face(const Polygon&)
// constructor). poly must have at least 3 points and be wound clockwise;
// callers that aren't sure should check with poly.IsCW() first.
func NewFaceFromPolygon(poly geom2d.Polygon) *Mesh {
	m := New()
	m.addFaceFromPolygon(poly)
	return m
}

// AddOuterFace adds a new, twin-less face built from poly to an existing
// mesh and returns its handle, growing the mesh with a disjoint region
// (spec.md §4.4). command.AddOuterFace does not call it; it builds its
// face itself.
func (m *Mesh) AddOuterFace(poly geom2d.Polygon) FaceHandle {
	return m.addFaceFromPolygon(poly)
}

func (m *Mesh) addFaceFromPolygon(poly geom2d.Polygon) FaceHandle {
	n := len(poly.Points)
	edges := make([]EdgeHandle, n)
	for i, p := range poly.Points {
		v := m.PushVert(p)
		edges[i] = m.NewEdge(v, NoFace)
	}
	for i, e := range edges {
		next := edges[(i+1)%n]
		m.Link(e, next)
	}
	return m.PushFace(edges[0])
}

// SplitFace cuts face along the diagonal from e0's origin to e1's origin.
// face keeps e1 through e0's old predecessor, closed by e0 itself, which
// now runs along the diagonal. A new face takes the edges strictly between
// e0 and e1 (in next order), a new edge newStart on e0's old segment, and a
// new edge newEnd running back along the diagonal as e0's twin. e0 and e1
// must belong to face, be distinct, and not be
// adjacent (e0.next == e1 or e1.next == e0 would leave one side with fewer
// than 3 edges — ErrWouldCollapseFace).
//
// Grounded on original_source/Jig/EdgeMesh.cpp's Face::Split: the clone-and
// splice-by-pointer-search there becomes two fresh handles plus four Link
// calls here, since handles don't need the old-edge list search the source
// does to find which unique_ptrs to transfer. newStart inherits e0's old
// twin (if any), since e0 itself is re-twinned to newEnd.
func (m *Mesh) SplitFace(face FaceHandle, e0, e1 EdgeHandle) (FaceHandle, error) {
	if !m.edgeAlive(e0) || !m.edgeAlive(e1) {
		return NoFace, ErrNotAdjacent
	}
	if m.EdgeFace(e0) != face || m.EdgeFace(e1) != face {
		return NoFace, ErrWrongFace
	}
	if e0 == e1 || m.EdgeNext(e0) == e1 || m.EdgeNext(e1) == e0 {
		return NoFace, ErrWouldCollapseFace
	}

	origE0Next := m.EdgeNext(e0)
	origE1Prev := m.EdgePrev(e1)
	oldTwin := m.EdgeTwin(e0)

	newStart := m.NewEdge(m.EdgeVert(e0), NoFace)
	newEnd := m.NewEdge(m.EdgeVert(e1), NoFace)

	m.Link(newEnd, newStart)
	m.Link(newStart, origE0Next)
	m.Link(origE1Prev, newEnd)

	m.Pair(e0, newEnd)
	if oldTwin != NoEdge {
		m.Pair(newStart, oldTwin)
	}

	m.Link(e0, e1)

	m.faces[face].start = e0
	newFace := m.PushFace(newStart)

	if m.StrictMode {
		if err := m.AssertValid(); err != nil {
			panic(err)
		}
	}

	return newFace, nil
}
