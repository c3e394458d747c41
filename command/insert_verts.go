package command

import (
	"jigmesh"
	"jigmesh/geom2d"
)

// InsertVerts splits edge by inserting one or more new verts, in order,
// between edge.vert and edge.next.vert. If edge has a twin, the same
// sequence is mirrored in reverse on the twin side and the new edges are
// re-paired across the split (spec.md §4.4, InsertVerts). Grounded on
// EdgeMeshCommand::InsertVert's Item{oldEdge,newEdge} capture pattern,
// generalised here to a whole chain of insertions in a single command.
type InsertVerts struct {
	mesh      *jigmesh.Mesh
	edge      jigmesh.EdgeHandle
	positions []geom2d.Vector2

	origNext     jigmesh.EdgeHandle
	origTwinNext jigmesh.EdgeHandle
	twin         jigmesh.EdgeHandle
	hadTwin      bool

	newVerts      []jigmesh.VertHandle
	newEdges      []jigmesh.EdgeHandle
	newTwinEdges  []jigmesh.EdgeHandle
}

// NewInsertVerts builds the command; call Do to apply it.
func NewInsertVerts(mesh *jigmesh.Mesh, edge jigmesh.EdgeHandle, positions []geom2d.Vector2) *InsertVerts {
	return &InsertVerts{mesh: mesh, edge: edge, positions: positions}
}

// NewVerts returns the verts created by the last Do call, in order.
func (c *InsertVerts) NewVerts() []jigmesh.VertHandle { return c.newVerts }

func (c *InsertVerts) CanDo() (bool, error) {
	if !c.mesh.EdgeExists(c.edge) || len(c.positions) == 0 {
		return false, nil
	}
	return true, nil
}

func (c *InsertVerts) Do() error {
	m := c.mesh
	twin := m.EdgeTwin(c.edge)
	c.twin = twin
	c.hadTwin = twin != jigmesh.NoEdge

	c.origNext = m.EdgeNext(c.edge)
	c.newVerts = nil
	c.newEdges = nil
	c.newTwinEdges = nil

	cur := c.edge
	for _, pos := range c.positions {
		v := m.PushVert(pos)
		e := m.NewEdge(v, m.EdgeFace(cur))
		next := m.EdgeNext(cur)
		m.Link(cur, e)
		m.Link(e, next)
		c.newVerts = append(c.newVerts, v)
		c.newEdges = append(c.newEdges, e)
		cur = e
	}

	if c.hadTwin {
		c.origTwinNext = m.EdgeNext(twin)
		curT := twin
		for i := len(c.positions) - 1; i >= 0; i-- {
			e := m.NewEdge(c.newVerts[i], m.EdgeFace(curT))
			next := m.EdgeNext(curT)
			m.Link(curT, e)
			m.Link(e, next)
			c.newTwinEdges = append(c.newTwinEdges, e)
			curT = e
		}

		a := append([]jigmesh.EdgeHandle{c.edge}, c.newEdges...)
		b := append([]jigmesh.EdgeHandle{twin}, c.newTwinEdges...)
		n := len(c.positions)
		for i := 0; i <= n; i++ {
			m.Pair(a[i], b[n-i])
		}
	}

	if m.StrictMode {
		return m.AssertValid()
	}
	return nil
}

func (c *InsertVerts) Undo() error {
	m := c.mesh
	m.Link(c.edge, c.origNext)
	if c.hadTwin {
		m.Link(c.twin, c.origTwinNext)
		m.Pair(c.edge, c.twin)
	}

	for _, e := range c.newEdges {
		m.DeleteEdge(e)
	}
	for _, e := range c.newTwinEdges {
		m.DeleteEdge(e)
	}
	for _, v := range c.newVerts {
		m.RemoveVert(v)
	}

	if m.StrictMode {
		return m.AssertValid()
	}
	return nil
}
