package jigmesh

import "jigmesh/geom2d"

// Bridge joins e0's face (this) to e1's face by splicing their two loops
// into one, the way original_source/Jig/EdgeMeshAddFace.cpp's MakeTwinFace
// attaches a detached loop to an existing boundary. Unlike SplitFace it
// needs no new edges: e0 and e1 simply become the two directions of the
// seam, exactly undoing the four-pointer splice SplitFace performs (spec.md
// §4.2, Bridge). Precondition: e1.face != e0's face.
func (m *Mesh) Bridge(e0, e1 EdgeHandle) error {
	face := m.EdgeFace(e0)
	otherFace := m.EdgeFace(e1)
	if otherFace == face {
		return ErrWrongFace
	}

	for e := range m.EdgeLoop(m.faces[otherFace].start) {
		m.edges[e].face = face
	}

	origE0Next := m.EdgeNext(e0)
	origE1Next := m.EdgeNext(e1)

	m.Link(e0, origE1Next)
	m.Link(e1, origE0Next)

	m.faces[face].start = e0
	m.DeleteFace(otherFace)

	if m.StrictMode {
		if err := m.AssertValid(); err != nil {
			panic(err)
		}
	}
	return nil
}

// DissolveResult reports the side effects of a DissolveEdge call: the face
// (if any) that no longer exists and should be dropped by any external
// index, and the polygon (if any) of a lobe that was separated out of a
// pinch but discarded rather than kept as a mesh face (spec.md §4.2,
// DissolveEdge).
type DissolveResult struct {
	DeletedFace FaceHandle
	NewHole     *geom2d.Polygon
}

// DissolveEdge removes edge and its twin, merging whatever they separated
// back into a single loop (spec.md §4.2). edge must have a twin
// (ErrNoTwin).
func (m *Mesh) DissolveEdge(edge EdgeHandle) (*DissolveResult, error) {
	twin := m.EdgeTwin(edge)
	if twin == NoEdge {
		return nil, ErrNoTwin
	}
	face := m.EdgeFace(edge)
	twinFace := m.EdgeFace(twin)

	if twinFace == face {
		return m.dissolvePinch(face, edge, twin)
	}
	return m.dissolveBetweenFaces(face, twinFace, edge, twin)
}

// dissolveBetweenFaces handles the common case: edge and twin separate two
// distinct faces, so dissolving merges twinFace's loop into face and
// deletes twinFace.
func (m *Mesh) dissolveBetweenFaces(face, twinFace FaceHandle, edge, twin EdgeHandle) (*DissolveResult, error) {
	for e := range m.EdgeLoop(m.faces[twinFace].start) {
		m.edges[e].face = face
	}

	a := m.EdgeNext(edge)
	b := m.EdgePrev(edge)
	c := m.EdgeNext(twin)
	d := m.EdgePrev(twin)

	m.Link(b, c)
	m.Link(d, a)

	m.faces[face].start = a
	m.DeleteEdge(edge)
	m.DeleteEdge(twin)
	m.DeleteFace(twinFace)

	if m.StrictMode {
		if err := m.AssertValid(); err != nil {
			panic(err)
		}
	}
	return &DissolveResult{DeletedFace: twinFace, NewHole: nil}, nil
}

// dissolvePinch handles the case where edge and its twin are both part of
// the same face's loop (a pinch): removing them splits that single loop
// into two separate cycles. The larger (by edge count) stays as face; the
// smaller is reported as a CW hole polygon and its edges and now-unused
// verts are removed from the mesh entirely — it was never a face of its
// own, just a seam the caller may want drawn as a hole.
func (m *Mesh) dissolvePinch(face FaceHandle, edge, twin EdgeHandle) (*DissolveResult, error) {
	a := m.EdgeNext(edge)
	b := m.EdgePrev(twin)
	c := m.EdgeNext(twin)
	d := m.EdgePrev(edge)

	m.Link(b, a)
	m.Link(d, c)

	var loopA, loopC []EdgeHandle
	for e := range m.EdgeLoop(a) {
		loopA = append(loopA, e)
	}
	for e := range m.EdgeLoop(c) {
		loopC = append(loopC, e)
	}

	keep, drop := a, loopC
	if len(loopC) > len(loopA) {
		keep, drop = c, loopA
	}

	pts := make([]geom2d.Vector2, len(drop))
	dropped := make(map[VertHandle]bool, len(drop))
	for i, e := range drop {
		pts[i] = m.Pos(m.EdgeVert(e))
		dropped[m.EdgeVert(e)] = true
	}
	hole := geom2d.Polygon{Points: pts}
	if !hole.IsCW() {
		hole = hole.Reversed()
	}

	for _, e := range drop {
		m.DeleteEdge(e)
	}
	for v := range dropped {
		m.RemoveVert(v)
	}

	for e := range m.EdgeLoop(keep) {
		m.edges[e].face = face
	}
	m.faces[face].start = keep
	m.DeleteEdge(edge)
	m.DeleteEdge(twin)

	if m.StrictMode {
		if err := m.AssertValid(); err != nil {
			panic(err)
		}
	}
	return &DissolveResult{DeletedFace: NoFace, NewHole: &hole}, nil
}

// isRedundantEdge reports whether e separates two convex corners that
// would both remain convex if e and its twin were dissolved away (spec.md
// §4.1, "Redundant edge test").
func (m *Mesh) isRedundantEdge(e EdgeHandle) bool {
	twin := m.EdgeTwin(e)
	if twin == NoEdge {
		return false
	}

	prev, next := m.EdgePrev(e), m.EdgeNext(e)
	tPrev, tNext := m.EdgePrev(twin), m.EdgeNext(twin)

	a, ok1 := m.EdgeVec(prev).Normalised()
	b, ok2 := m.EdgeVec(tNext).Normalised()
	c, ok3 := m.EdgeVec(tPrev).Normalised()
	d, ok4 := m.EdgeVec(next).Normalised()
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return false
	}
	return a.Angle(b) >= 0 && c.Angle(d) >= 0
}

// DissolveRedundantEdges repeatedly dissolves every redundant edge in the
// mesh until a full pass finds none left, and returns the count dissolved
// (spec.md §4.1: "Fixed-point: repeat full pass until no change").
func (m *Mesh) DissolveRedundantEdges() int {
	total := 0
	for {
		changed := false
		for i := range m.edges {
			e := EdgeHandle(i)
			if !m.edgeAlive(e) || !m.isRedundantEdge(e) {
				continue
			}
			if _, err := m.DissolveEdge(e); err == nil {
				total++
				changed = true
				break
			}
		}
		if !changed {
			return total
		}
	}
}

// DissolveToFit greedily merges face with its neighbours, by dissolving
// whichever of its twinned boundary edges crosses the given open polyline,
// until no twinned face edge crosses it any more (spec.md §4.1,
// DissolveToFit). Crossing edges with no twin are skipped, not dissolved,
// so the polyline may still cross face when this returns with a nil error.
// It returns every face deleted and every hole polygon surfaced along the
// way.
func (m *Mesh) DissolveToFit(face FaceHandle, polyline []geom2d.Vector2) ([]FaceHandle, []geom2d.Polygon, error) {
	var deletedFaces []FaceHandle
	var newHoles []geom2d.Polygon

	for {
		hit := m.findCrossingEdge(face, polyline)
		if hit == NoEdge {
			return deletedFaces, newHoles, nil
		}
		res, err := m.DissolveEdge(hit)
		if err != nil {
			return deletedFaces, newHoles, err
		}
		if res.DeletedFace != NoFace {
			deletedFaces = append(deletedFaces, res.DeletedFace)
		}
		if res.NewHole != nil {
			newHoles = append(newHoles, *res.NewHole)
		}
	}
}

func (m *Mesh) findCrossingEdge(face FaceHandle, polyline []geom2d.Vector2) EdgeHandle {
	for _, e := range m.GetEdges(face) {
		if m.EdgeTwin(e) == NoEdge {
			continue
		}
		seg := geom2d.Segment{A: m.Pos(m.EdgeVert(e)), B: m.Pos(m.EdgeVert(m.EdgeNext(e)))}
		for i := 0; i+1 < len(polyline); i++ {
			pseg := geom2d.Segment{A: polyline[i], B: polyline[i+1]}
			if _, ok := seg.Intersect(pseg); ok {
				return e
			}
		}
	}
	return NoEdge
}
