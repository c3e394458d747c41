package command

import "jigmesh"

// DeleteVert removes vert and every half-edge incident to it, splicing each
// face's loop directly from the predecessor edge to the successor so the
// vert simply disappears from the boundary (spec.md §4.4, DeleteVert).
//
// Permitted only when every face touching vert still has at least 4 edges
// (so none collapses below 3 after the merge) and the merge would not
// leave two consecutive edges of the same face bordering the same
// neighbouring face — the "only twin" situation spec.md calls out as a
// precondition failure.
//
// Twinning after the merge follows spec.md's rule directly: if vert has
// exactly two incident half-edges (it sits mid-way along what was a single
// shared edge between two faces, the common case after an earlier
// InsertVerts, so each predecessor is the twin of the other face's incident
// edge), the two surviving predecessor edges are re-twinned to each other.
// Otherwise (vert is a corner of a single face, a corner where two faces
// meet on the outer boundary, or a point where three or more faces meet)
// every surviving predecessor is de-twinned, becoming an outer edge at that
// point, since there is no single correct partner to re-pair it with.
type DeleteVert struct {
	mesh *jigmesh.Mesh
	vert jigmesh.VertHandle

	vertSnap vertSnap
	incident []jigmesh.EdgeHandle // e_i, in EdgesAtVert order
	predSnap []edgeSnap           // snapshot of EdgePrev(e_i) before Do
	edgeSnap []edgeSnap           // snapshot of e_i before Do
}

// NewDeleteVert builds the command; call Do to apply it.
func NewDeleteVert(mesh *jigmesh.Mesh, vert jigmesh.VertHandle) *DeleteVert {
	return &DeleteVert{mesh: mesh, vert: vert}
}

func snapEdge(m *jigmesh.Mesh, e jigmesh.EdgeHandle) edgeSnap {
	return edgeSnap{
		handle: e,
		vert:   m.EdgeVert(e),
		face:   m.EdgeFace(e),
		prev:   m.EdgePrev(e),
		next:   m.EdgeNext(e),
		twin:   m.EdgeTwin(e),
	}
}

func applyEdgeSnap(m *jigmesh.Mesh, s edgeSnap) {
	if !m.EdgeExists(s.handle) {
		m.ReviveEdge(s.handle, s.vert, s.face, s.prev, s.next, s.twin)
		return
	}
	m.SetEdgeVert(s.handle, s.vert)
	m.SetEdgeFace(s.handle, s.face)
	m.SetEdgePrev(s.handle, s.prev)
	m.SetEdgeNext(s.handle, s.next)
	m.SetEdgeTwin(s.handle, s.twin)
}

func (c *DeleteVert) CanDo() (bool, error) {
	m := c.mesh
	if !m.VertExists(c.vert) {
		return false, nil
	}
	incident := m.EdgesAtVert(c.vert)
	if len(incident) == 0 {
		return false, nil
	}
	for _, e := range incident {
		if m.FaceEdgeCount(m.EdgeFace(e)) < 4 {
			return false, jigmesh.ErrWouldCollapseFace
		}
		p := m.EdgePrev(e)
		newNext := m.EdgeNext(e)
		pTwin := m.EdgeTwin(p)
		nTwin := m.EdgeTwin(newNext)
		if pTwin != jigmesh.NoEdge && nTwin != jigmesh.NoEdge && m.EdgeFace(pTwin) == m.EdgeFace(nTwin) {
			return false, jigmesh.ErrWouldCollapseFace
		}
	}
	return true, nil
}

func (c *DeleteVert) Do() error {
	m := c.mesh
	c.vertSnap = vertSnap{handle: c.vert, pos: m.Pos(c.vert), data: m.Data(c.vert)}
	c.incident = m.EdgesAtVert(c.vert)

	c.predSnap = nil
	c.edgeSnap = nil
	preds := make([]jigmesh.EdgeHandle, len(c.incident))
	for i, e := range c.incident {
		p := m.EdgePrev(e)
		preds[i] = p
		c.predSnap = append(c.predSnap, snapEdge(m, p))
		c.edgeSnap = append(c.edgeSnap, snapEdge(m, e))
	}

	for i, e := range c.incident {
		m.Link(preds[i], m.EdgeNext(e))
		if m.FaceEdge(m.EdgeFace(e)) == e {
			m.RelinkFaceStart(m.EdgeFace(e), preds[i])
		}
	}

	if len(preds) == 2 && m.EdgeTwin(preds[0]) == c.incident[1] && m.EdgeTwin(preds[1]) == c.incident[0] {
		m.Pair(preds[0], preds[1])
	} else {
		for _, p := range preds {
			m.Unpair(p)
		}
	}

	for _, e := range c.incident {
		m.DeleteEdge(e)
	}
	m.RemoveVert(c.vert)

	if m.StrictMode {
		return m.AssertValid()
	}
	return nil
}

func (c *DeleteVert) Undo() error {
	m := c.mesh
	m.InsertVertAt(c.vertSnap.handle, c.vertSnap.pos, c.vertSnap.data)
	for _, s := range c.edgeSnap {
		applyEdgeSnap(m, s)
	}
	for _, s := range c.predSnap {
		applyEdgeSnap(m, s)
	}
	for _, e := range c.incident {
		m.RelinkFaceStart(m.EdgeFace(e), e)
	}

	if m.StrictMode {
		return m.AssertValid()
	}
	return nil
}
