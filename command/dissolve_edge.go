package command

import (
	"jigmesh"
	"jigmesh/geom2d"
)

// edgeSnap is a full pre-mutation snapshot of one edge, enough to restore
// it byte-identical with jigmesh.Mesh.ReviveEdge.
type edgeSnap struct {
	handle           jigmesh.EdgeHandle
	vert             jigmesh.VertHandle
	face             jigmesh.FaceHandle
	prev, next, twin jigmesh.EdgeHandle
}

type vertSnap struct {
	handle jigmesh.VertHandle
	pos    geom2d.Vector2
	data   any
}

// DissolveEdge removes edge and its twin, merging whatever they separated
// back into one face (spec.md §4.2, §4.4). It is a thin reversible shell
// around jigmesh.Mesh.DissolveEdge: rather than re-deriving the four-
// neighbour splice mutate.go performs, it snapshots every edge and vert of
// the two faces edge touches before Do and replays those snapshots
// verbatim on Undo — the same "capture enough to restore exactly" approach
// as command.AddOuterFace, just driven by the root package's own mutation
// instead of hand-rolled splicing.
type DissolveEdge struct {
	mesh *jigmesh.Mesh
	edge jigmesh.EdgeHandle

	face, twinFace       jigmesh.FaceHandle
	origFaceStart        jigmesh.EdgeHandle
	origTwinFaceStart    jigmesh.EdgeHandle
	hadDistinctTwinFace  bool
	edgeSnaps            []edgeSnap
	vertSnaps            []vertSnap

	result *jigmesh.DissolveResult
}

// NewDissolveEdge builds the command; call Do to apply it.
func NewDissolveEdge(mesh *jigmesh.Mesh, edge jigmesh.EdgeHandle) *DissolveEdge {
	return &DissolveEdge{mesh: mesh, edge: edge}
}

// Result returns the side effects reported by the last Do call (spec.md
// §4.2's DeletedFace / NewHole pair).
func (c *DissolveEdge) Result() *jigmesh.DissolveResult { return c.result }

func (c *DissolveEdge) CanDo() (bool, error) {
	m := c.mesh
	if !m.EdgeExists(c.edge) {
		return false, nil
	}
	if m.EdgeTwin(c.edge) == jigmesh.NoEdge {
		return false, jigmesh.ErrNoTwin
	}
	return true, nil
}

func (c *DissolveEdge) Do() error {
	m := c.mesh
	twin := m.EdgeTwin(c.edge)
	c.face = m.EdgeFace(c.edge)
	c.twinFace = m.EdgeFace(twin)
	c.hadDistinctTwinFace = c.twinFace != c.face
	c.origFaceStart = m.FaceEdge(c.face)
	if c.hadDistinctTwinFace {
		c.origTwinFaceStart = m.FaceEdge(c.twinFace)
	}

	seen := map[jigmesh.EdgeHandle]bool{}
	c.edgeSnaps = nil
	c.vertSnaps = nil
	seenVert := map[jigmesh.VertHandle]bool{}

	snapshotLoop := func(start jigmesh.EdgeHandle) {
		for _, e := range m.GetEdges(m.EdgeFace(start)) {
			if seen[e] {
				continue
			}
			seen[e] = true
			c.edgeSnaps = append(c.edgeSnaps, edgeSnap{
				handle: e,
				vert:   m.EdgeVert(e),
				face:   m.EdgeFace(e),
				prev:   m.EdgePrev(e),
				next:   m.EdgeNext(e),
				twin:   m.EdgeTwin(e),
			})
			v := m.EdgeVert(e)
			if !seenVert[v] {
				seenVert[v] = true
				c.vertSnaps = append(c.vertSnaps, vertSnap{handle: v, pos: m.Pos(v), data: m.Data(v)})
			}
		}
	}
	snapshotLoop(c.edge)
	if c.hadDistinctTwinFace {
		snapshotLoop(twin)
	}

	result, err := m.DissolveEdge(c.edge)
	if err != nil {
		return err
	}
	c.result = result
	return nil
}

func (c *DissolveEdge) Undo() error {
	m := c.mesh
	for _, v := range c.vertSnaps {
		m.InsertVertAt(v.handle, v.pos, v.data)
	}
	for _, s := range c.edgeSnaps {
		if !m.EdgeExists(s.handle) {
			m.ReviveEdge(s.handle, s.vert, s.face, s.prev, s.next, s.twin)
		} else {
			m.SetEdgeVert(s.handle, s.vert)
			m.SetEdgeFace(s.handle, s.face)
			m.SetEdgePrev(s.handle, s.prev)
			m.SetEdgeNext(s.handle, s.next)
			m.SetEdgeTwin(s.handle, s.twin)
		}
	}
	if c.hadDistinctTwinFace {
		m.ReviveFace(c.twinFace, c.origTwinFaceStart)
	}
	m.RelinkFaceStart(c.face, c.origFaceStart)

	if m.StrictMode {
		return m.AssertValid()
	}
	return nil
}
