package command

import "jigmesh"

// MergeFace absorbs a neighbouring face into edge's face: it finds the
// maximal consecutive run of edges on edge's face whose twins all lie on
// the same neighbour G (walking prev and next while the twin's face stays
// G), removes that run, adopts G's remaining edges into edge's face, drops
// any vert whose only incidence was on the removed run, and deletes G
// (spec.md §4.4, MergeFace).
type MergeFace struct {
	mesh *jigmesh.Mesh
	edge jigmesh.EdgeHandle

	face, g           jigmesh.FaceHandle
	origFaceStart     jigmesh.EdgeHandle
	origGStart        jigmesh.EdgeHandle
	fullyAbsorbed     bool
	edgeSnaps         []edgeSnap
	vertSnaps         []vertSnap
}

// NewMergeFace builds the command; call Do to apply it.
func NewMergeFace(mesh *jigmesh.Mesh, edge jigmesh.EdgeHandle) *MergeFace {
	return &MergeFace{mesh: mesh, edge: edge}
}

func (c *MergeFace) CanDo() (bool, error) {
	m := c.mesh
	if !m.EdgeExists(c.edge) {
		return false, nil
	}
	if m.EdgeTwin(c.edge) == jigmesh.NoEdge {
		return false, jigmesh.ErrNoTwin
	}
	return true, nil
}

// run returns the maximal consecutive slice of face's loop, containing
// edge, whose twins all border g.
func (c *MergeFace) run() []jigmesh.EdgeHandle {
	m := c.mesh
	g := m.EdgeFace(m.EdgeTwin(c.edge))

	run := []jigmesh.EdgeHandle{c.edge}

	for cur := m.EdgePrev(c.edge); ; cur = m.EdgePrev(cur) {
		t := m.EdgeTwin(cur)
		if t == jigmesh.NoEdge || m.EdgeFace(t) != g {
			break
		}
		run = append([]jigmesh.EdgeHandle{cur}, run...)
		if len(run) >= m.FaceEdgeCount(m.EdgeFace(c.edge)) {
			break
		}
	}
	for cur := m.EdgeNext(c.edge); ; cur = m.EdgeNext(cur) {
		if cur == run[0] {
			break
		}
		t := m.EdgeTwin(cur)
		if t == jigmesh.NoEdge || m.EdgeFace(t) != g {
			break
		}
		run = append(run, cur)
	}
	return run
}

func (c *MergeFace) Do() error {
	m := c.mesh
	c.face = m.EdgeFace(c.edge)
	c.g = m.EdgeFace(m.EdgeTwin(c.edge))
	c.origFaceStart = m.FaceEdge(c.face)
	c.origGStart = m.FaceEdge(c.g)

	run := c.run()
	beforeRun := m.EdgePrev(run[0])
	afterRun := m.EdgeNext(run[len(run)-1])
	t0 := m.EdgeTwin(run[0])
	tLast := m.EdgeTwin(run[len(run)-1])

	c.fullyAbsorbed = len(run) == m.FaceEdgeCount(c.g)

	seen := map[jigmesh.EdgeHandle]bool{}
	seenVert := map[jigmesh.VertHandle]bool{}
	snapshot := func(e jigmesh.EdgeHandle) {
		if seen[e] {
			return
		}
		seen[e] = true
		c.edgeSnaps = append(c.edgeSnaps, snapEdge(m, e))
		v := m.EdgeVert(e)
		if !seenVert[v] {
			seenVert[v] = true
			c.vertSnaps = append(c.vertSnaps, vertSnap{handle: v, pos: m.Pos(v), data: m.Data(v)})
		}
	}
	for _, e := range m.GetEdges(c.face) {
		snapshot(e)
	}
	for _, e := range m.GetEdges(c.g) {
		snapshot(e)
	}

	var gKeepStart, gKeepEnd jigmesh.EdgeHandle
	if !c.fullyAbsorbed {
		gKeepStart = m.EdgeNext(t0)
		gKeepEnd = m.EdgePrev(tLast)
		for e := gKeepStart; ; e = m.EdgeNext(e) {
			m.SetEdgeFace(e, c.face)
			if e == gKeepEnd {
				break
			}
		}
		m.Link(beforeRun, gKeepStart)
		m.Link(gKeepEnd, afterRun)
	} else {
		m.Link(beforeRun, afterRun)
	}

	m.RelinkFaceStart(c.face, beforeRun)

	for i := 1; i < len(run); i++ {
		m.RemoveVert(m.EdgeVert(run[i]))
	}
	for _, e := range run {
		t := m.EdgeTwin(e)
		m.Unpair(e)
		m.DeleteEdge(e)
		if t != jigmesh.NoEdge {
			m.DeleteEdge(t)
		}
	}
	m.DeleteFace(c.g)

	if m.StrictMode {
		return m.AssertValid()
	}
	return nil
}

func (c *MergeFace) Undo() error {
	m := c.mesh
	for _, v := range c.vertSnaps {
		m.InsertVertAt(v.handle, v.pos, v.data)
	}
	for _, s := range c.edgeSnaps {
		applyEdgeSnap(m, s)
	}
	m.ReviveFace(c.g, c.origGStart)
	m.RelinkFaceStart(c.face, c.origFaceStart)

	if m.StrictMode {
		return m.AssertValid()
	}
	return nil
}
