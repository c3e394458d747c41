package command

import "jigmesh"

// DeleteFace detaches face from the mesh: every twin pointing into it is
// nulled (its neighbour becomes an outer edge), every vert that was only
// referenced by face is removed, and face itself is dropped (spec.md §4.4,
// DeleteFace). Undo restores the face, its edges, the nulled twins, and
// the removed verts.
type DeleteFace struct {
	mesh *jigmesh.Mesh
	face jigmesh.FaceHandle

	origStart jigmesh.EdgeHandle
	edgeSnaps []edgeSnap
	twinSnaps []edgeSnap // the neighbouring edges whose twin got nulled
	vertSnaps []vertSnap
}

// NewDeleteFace builds the command; call Do to apply it.
func NewDeleteFace(mesh *jigmesh.Mesh, face jigmesh.FaceHandle) *DeleteFace {
	return &DeleteFace{mesh: mesh, face: face}
}

func (c *DeleteFace) CanDo() (bool, error) {
	return c.mesh.FaceExists(c.face), nil
}

func (c *DeleteFace) Do() error {
	m := c.mesh
	c.origStart = m.FaceEdge(c.face)
	edges := m.GetEdges(c.face)

	c.edgeSnaps = nil
	c.twinSnaps = nil
	c.vertSnaps = nil

	inFace := map[jigmesh.EdgeHandle]bool{}
	for _, e := range edges {
		inFace[e] = true
	}

	for _, e := range edges {
		c.edgeSnaps = append(c.edgeSnaps, snapEdge(m, e))
		if t := m.EdgeTwin(e); t != jigmesh.NoEdge {
			c.twinSnaps = append(c.twinSnaps, snapEdge(m, t))
		}
	}

	for _, e := range edges {
		v := m.EdgeVert(e)
		onlyHere := true
		for _, other := range m.EdgesAtVert(v) {
			if !inFace[other] {
				onlyHere = false
				break
			}
		}
		if onlyHere {
			c.vertSnaps = append(c.vertSnaps, vertSnap{handle: v, pos: m.Pos(v), data: m.Data(v)})
		}
	}

	for _, e := range edges {
		m.Unpair(e)
	}
	for _, v := range c.vertSnaps {
		m.RemoveVert(v.handle)
	}
	m.DeleteFace(c.face)
	for _, e := range edges {
		m.DeleteEdge(e)
	}

	if m.StrictMode {
		return m.AssertValid()
	}
	return nil
}

func (c *DeleteFace) Undo() error {
	m := c.mesh
	for _, v := range c.vertSnaps {
		m.InsertVertAt(v.handle, v.pos, v.data)
	}
	for _, s := range c.edgeSnaps {
		applyEdgeSnap(m, s)
	}
	for _, s := range c.twinSnaps {
		applyEdgeSnap(m, s)
	}
	m.ReviveFace(c.face, c.origStart)

	if m.StrictMode {
		return m.AssertValid()
	}
	return nil
}
