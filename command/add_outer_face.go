package command

import (
	"jigmesh"
	"jigmesh/geom2d"
)

// AddOuterFace attaches a new face to the mesh's exterior, spanning the
// boundary from start to end and closing with a fresh polyline (spec.md
// §4.4, AddOuterFace). start and end must both be twin-less (outer)
// edges. The boundary edges from start up to (but not including) end are
// given twin counterparts reused by the new face; the polyline supplies
// brand-new, still-outer edges for the rest of the new face's loop.
//
// Grounded on original_source/Jig/EdgeMeshAddFace.cpp's MakeTwinFace: the
// orientation check against the rest of the boundary, and reusing existing
// edges as twins rather than cloning the whole loop, are both carried
// over; "face.AddAndConnectEdge" becomes a plain NewEdge+Link chain here.
type AddOuterFace struct {
	mesh     *jigmesh.Mesh
	start    jigmesh.EdgeHandle
	end      jigmesh.EdgeHandle
	polyline []geom2d.Vector2

	newFace  jigmesh.FaceHandle
	rangeEdges []jigmesh.EdgeHandle
	twins      []jigmesh.EdgeHandle
	fwdEdges   []jigmesh.EdgeHandle
	newVerts   []jigmesh.VertHandle
}

// NewAddOuterFace builds the command; call Do to apply it.
func NewAddOuterFace(mesh *jigmesh.Mesh, start, end jigmesh.EdgeHandle, polyline []geom2d.Vector2) *AddOuterFace {
	return &AddOuterFace{mesh: mesh, start: start, end: end, polyline: polyline}
}

// NewFace returns the face created by the last Do call.
func (c *AddOuterFace) NewFace() jigmesh.FaceHandle { return c.newFace }

func (c *AddOuterFace) CanDo() (bool, error) {
	m := c.mesh
	if !m.EdgeExists(c.start) || !m.EdgeExists(c.end) {
		return false, nil
	}
	if m.EdgeTwin(c.start) != jigmesh.NoEdge || m.EdgeTwin(c.end) != jigmesh.NoEdge {
		return false, nil
	}
	return true, nil
}

func (c *AddOuterFace) Do() error {
	m := c.mesh
	start, end := c.start, c.end
	polyline := append([]geom2d.Vector2(nil), c.polyline...)

	testPts := append([]geom2d.Vector2(nil), polyline...)
	for e := range m.OuterEdgeLoop(end) {
		if e == start {
			break
		}
		testPts = append(testPts, m.Pos(m.EdgeVert(e)))
	}
	if !(geom2d.Polygon{Points: testPts}).IsCW() {
		start, end = end, start
		for i, j := 0, len(polyline)-1; i < j; i, j = i+1, j-1 {
			polyline[i], polyline[j] = polyline[j], polyline[i]
		}
	}

	var rangeEdges []jigmesh.EdgeHandle
	cur := start
	for cur != end {
		rangeEdges = append(rangeEdges, cur)
		cur = m.NextOuterEdge(cur)
	}
	n := len(rangeEdges)

	dest := func(i int) jigmesh.VertHandle {
		if i+1 < n {
			return m.EdgeVert(rangeEdges[i+1])
		}
		return m.EdgeVert(end)
	}

	twins := make([]jigmesh.EdgeHandle, n)
	for i := n - 1; i >= 0; i-- {
		twins[i] = m.NewEdge(dest(i), jigmesh.NoFace)
	}
	for i := n - 1; i > 0; i-- {
		m.Link(twins[i], twins[i-1])
	}
	for i := 0; i < n; i++ {
		m.Pair(twins[i], rangeEdges[i])
	}

	fwdOrigins := []jigmesh.VertHandle{m.EdgeVert(rangeEdges[0])}
	newVerts := make([]jigmesh.VertHandle, len(polyline))
	for i, p := range polyline {
		newVerts[i] = m.PushVert(p)
		fwdOrigins = append(fwdOrigins, newVerts[i])
	}

	fwdEdges := make([]jigmesh.EdgeHandle, len(fwdOrigins))
	for i, v := range fwdOrigins {
		fwdEdges[i] = m.NewEdge(v, jigmesh.NoFace)
	}
	for i := 0; i+1 < len(fwdEdges); i++ {
		m.Link(fwdEdges[i], fwdEdges[i+1])
	}

	m.Link(twins[0], fwdEdges[0])
	m.Link(fwdEdges[len(fwdEdges)-1], twins[n-1])

	c.rangeEdges = rangeEdges
	c.twins = twins
	c.fwdEdges = fwdEdges
	c.newVerts = newVerts
	c.newFace = m.PushFace(twins[n-1])

	if m.StrictMode {
		return m.AssertValid()
	}
	return nil
}

func (c *AddOuterFace) Undo() error {
	m := c.mesh
	for _, e := range c.rangeEdges {
		m.Unpair(e)
	}
	for _, e := range c.twins {
		m.DeleteEdge(e)
	}
	for _, e := range c.fwdEdges {
		m.DeleteEdge(e)
	}
	for _, v := range c.newVerts {
		m.RemoveVert(v)
	}
	m.DeleteFace(c.newFace)

	if m.StrictMode {
		return m.AssertValid()
	}
	return nil
}
