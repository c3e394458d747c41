package jigmesh

import (
	"jigmesh/geom2d"
	"jigmesh/jlog"
	"jigmesh/quadtree"
)

// Mesh is the half-edge mesh: the owner of every Vert, Edge, and Face
// (spec.md §3, "Ownership summary"). The zero value is not usable; build
// one with New or NewFromVertPool.
type Mesh struct {
	verts []vertSlot
	edges []edgeSlot
	faces []faceSlot

	bbox geom2d.Rect
	qt   *quadtree.Tree[FaceHandle]

	log jlog.Logger

	// StrictMode gates the AssertValid traversal run at the end of
	// SplitFace, Bridge, DissolveEdge and most commands' Do and Undo
	// (spec.md §7, "Invariant breach (a bug)"). New(), NewWithLogger and
	// NewFromVertPool all turn it on; callers building up a mesh
	// incrementally may turn it off during a multi-step construction and
	// back on afterwards.
	StrictMode bool
}

// New returns an empty mesh with a no-op logger.
func New() *Mesh {
	return &Mesh{log: jlog.Nop(), StrictMode: true}
}

// NewWithLogger returns an empty mesh that logs mutations through l.
func NewWithLogger(l jlog.Logger) *Mesh {
	return &Mesh{log: l, StrictMode: true}
}

// NewFromVertPool returns an empty mesh pre-seeded with the given vert
// positions, in order, so that indices handed out by a triangulator
// correspond 1:1 with VertHandle values (spec.md §4.8, "Store verts in a
// stable order").
func NewFromVertPool(positions []geom2d.Vector2) *Mesh {
	m := New()
	m.verts = make([]vertSlot, len(positions))
	for i, p := range positions {
		m.verts[i] = vertSlot{alive: true, pos: p}
	}
	return m
}

// SetLogger replaces the mesh's logger.
func (m *Mesh) SetLogger(l jlog.Logger) { m.log = l }

// --- Vert accessors -------------------------------------------------------

func (m *Mesh) vertAlive(v VertHandle) bool {
	return v >= 0 && int(v) < len(m.verts) && m.verts[v].alive
}

// Pos returns v's position. Panics if v is not a live vert handle — callers
// that accept untrusted handles should check VertExists first.
func (m *Mesh) Pos(v VertHandle) geom2d.Vector2 {
	return m.verts[v].pos
}

// SetPos updates v's position directly (used by the MoveVert command).
func (m *Mesh) SetPos(v VertHandle, pos geom2d.Vector2) {
	m.verts[v].pos = pos
}

// VertExists reports whether v references a live vert.
func (m *Mesh) VertExists(v VertHandle) bool { return m.vertAlive(v) }

// Data returns v's payload slot (spec.md §4.8 collaborator interface,
// "Vert payload"). The core never inspects its contents.
func (m *Mesh) Data(v VertHandle) any { return m.verts[v].data }

// SetData replaces v's payload slot.
func (m *Mesh) SetData(v VertHandle, data any) { m.verts[v].data = data }

// VertCount returns the number of live verts.
func (m *Mesh) VertCount() int {
	n := 0
	for _, s := range m.verts {
		if s.alive {
			n++
		}
	}
	return n
}

// Verts returns every live vert handle.
func (m *Mesh) Verts() []VertHandle {
	out := make([]VertHandle, 0, len(m.verts))
	for i, s := range m.verts {
		if s.alive {
			out = append(out, VertHandle(i))
		}
	}
	return out
}

// AddVert creates and appends a new vert with no topology change (spec.md
// §4.1). Equivalent to PushVert; kept as a distinct name because spec.md
// lists both "AddVert", used by mutation code that is growing the mesh, and
// "PushVert", the low-level stack primitive commands pair with PopVert.
func (m *Mesh) AddVert(pos geom2d.Vector2) VertHandle { return m.PushVert(pos) }

// PushVert appends a new vert at the end of the vert arena.
func (m *Mesh) PushVert(pos geom2d.Vector2) VertHandle {
	m.verts = append(m.verts, vertSlot{alive: true, pos: pos})
	return VertHandle(len(m.verts) - 1)
}

// PopVert removes the most recently pushed vert. It is the caller's
// responsibility to have already detached any edges referencing it.
func (m *Mesh) PopVert() VertHandle {
	v := VertHandle(len(m.verts) - 1)
	m.verts[v].alive = false
	return v
}

// RemoveVert tombstones v without shrinking the arena, returning its prior
// position and its handle (the "index" spec.md's RemoveVert/InsertVert pair
// threads through — in a handle-addressed arena the index a command must
// remember to restore on Undo is simply the handle itself).
func (m *Mesh) RemoveVert(v VertHandle) (geom2d.Vector2, VertHandle) {
	pos := m.verts[v].pos
	m.verts[v].alive = false
	return pos, v
}

// InsertVertAt revives a tombstoned vert slot at the given handle (the
// counterpart to RemoveVert, used by Undo).
func (m *Mesh) InsertVertAt(v VertHandle, pos geom2d.Vector2, data any) {
	m.verts[v] = vertSlot{alive: true, pos: pos, data: data}
}

// --- Edge accessors --------------------------------------------------------

func (m *Mesh) edgeAlive(e EdgeHandle) bool {
	return e >= 0 && int(e) < len(m.edges) && m.edges[e].alive
}

// EdgeExists reports whether e references a live edge.
func (m *Mesh) EdgeExists(e EdgeHandle) bool { return m.edgeAlive(e) }

func (m *Mesh) EdgeVert(e EdgeHandle) VertHandle  { return m.edges[e].vert }
func (m *Mesh) EdgeFace(e EdgeHandle) FaceHandle  { return m.edges[e].face }
func (m *Mesh) EdgeNext(e EdgeHandle) EdgeHandle  { return m.edges[e].next }
func (m *Mesh) EdgePrev(e EdgeHandle) EdgeHandle  { return m.edges[e].prev }
func (m *Mesh) EdgeTwin(e EdgeHandle) EdgeHandle  { return m.edges[e].twin }

func (m *Mesh) SetEdgeVert(e EdgeHandle, v VertHandle) { m.edges[e].vert = v }
func (m *Mesh) SetEdgeFace(e EdgeHandle, f FaceHandle) { m.edges[e].face = f }
func (m *Mesh) SetEdgeNext(e, next EdgeHandle)         { m.edges[e].next = next }
func (m *Mesh) SetEdgePrev(e, prev EdgeHandle)         { m.edges[e].prev = prev }
func (m *Mesh) SetEdgeTwin(e, twin EdgeHandle)         { m.edges[e].twin = twin }

// Link sets a.next = b and b.prev = a, the usual way two edges are spliced
// into the same face loop.
func (m *Mesh) Link(a, b EdgeHandle) {
	m.edges[a].next = b
	m.edges[b].prev = a
}

// Pair sets a.twin = b and b.twin = a.
func (m *Mesh) Pair(a, b EdgeHandle) {
	m.edges[a].twin = b
	m.edges[b].twin = a
}

// Unpair clears a's twin link and, if it had one, the reverse link too.
func (m *Mesh) Unpair(a EdgeHandle) {
	if t := m.edges[a].twin; t != NoEdge {
		m.edges[t].twin = NoEdge
	}
	m.edges[a].twin = NoEdge
}

// NewEdge appends a raw edge (no prev/next/twin wiring) and returns its
// handle; callers splice it into a loop with Link and (optionally) Pair.
func (m *Mesh) NewEdge(vert VertHandle, face FaceHandle) EdgeHandle {
	m.edges = append(m.edges, edgeSlot{alive: true, vert: vert, face: face, prev: NoEdge, next: NoEdge, twin: NoEdge})
	return EdgeHandle(len(m.edges) - 1)
}

// DeleteEdge tombstones e. Callers must have already unlinked it from any
// loop and twin pairing.
func (m *Mesh) DeleteEdge(e EdgeHandle) {
	m.edges[e].alive = false
}

// ReviveEdge restores a tombstoned edge slot at handle e with the given
// fields — the Undo counterpart to DeleteEdge.
func (m *Mesh) ReviveEdge(e EdgeHandle, vert VertHandle, face FaceHandle, prev, next, twin EdgeHandle) {
	m.edges[e] = edgeSlot{alive: true, vert: vert, face: face, prev: prev, next: next, twin: twin}
}

// EdgeVec returns the displacement from e's origin to e.next's origin.
func (m *Mesh) EdgeVec(e EdgeHandle) geom2d.Vector2 {
	return m.Pos(m.edges[m.edges[e].next].vert).Sub(m.Pos(m.edges[e].vert))
}

// EdgeAngle returns the signed interior turning angle at e's origin: the
// angle from the incoming edge's direction to this edge's direction.
// Negative means the corner at e.vert is concave (spec.md §3, Edge).
func (m *Mesh) EdgeAngle(e EdgeHandle) float64 {
	prevVec, ok1 := m.EdgeVec(m.edges[e].prev).Normalised()
	thisVec, ok2 := m.EdgeVec(e).Normalised()
	if !ok1 || !ok2 {
		return 0
	}
	return prevVec.Angle(thisVec)
}

// IsConcave reports whether the corner at e's origin is concave.
func (m *Mesh) IsConcave(e EdgeHandle) bool { return m.EdgeAngle(e) < 0 }

// --- Face accessors --------------------------------------------------------

func (m *Mesh) faceAlive(f FaceHandle) bool {
	return f >= 0 && int(f) < len(m.faces) && m.faces[f].alive
}

// FaceExists reports whether f references a live face.
func (m *Mesh) FaceExists(f FaceHandle) bool { return m.faceAlive(f) }

// FaceEdge returns a representative edge of f's loop.
func (m *Mesh) FaceEdge(f FaceHandle) EdgeHandle { return m.faces[f].start }

// FaceBBox returns f's cached bounding box, last computed by Update.
func (m *Mesh) FaceBBox(f FaceHandle) geom2d.Rect { return m.faces[f].bbox }

// FaceCount returns the number of live faces.
func (m *Mesh) FaceCount() int {
	n := 0
	for _, s := range m.faces {
		if s.alive {
			n++
		}
	}
	return n
}

// Faces returns every live face handle.
func (m *Mesh) Faces() []FaceHandle {
	out := make([]FaceHandle, 0, len(m.faces))
	for i, s := range m.faces {
		if s.alive {
			out = append(out, FaceHandle(i))
		}
	}
	return out
}

// FaceEdgeCount returns the number of edges in f's loop.
func (m *Mesh) FaceEdgeCount(f FaceHandle) int {
	n := 0
	start := m.faces[f].start
	e := start
	for {
		n++
		e = m.edges[e].next
		if e == start {
			break
		}
	}
	return n
}

// PushFace appends a new face whose loop is rooted at start, and sets the
// face field of every edge in that loop to the new handle.
func (m *Mesh) PushFace(start EdgeHandle) FaceHandle {
	m.faces = append(m.faces, faceSlot{alive: true, start: start})
	f := FaceHandle(len(m.faces) - 1)
	m.adoptLoop(f, start)
	return f
}

// PopFace removes the most recently pushed face. Callers must have already
// detached its edges.
func (m *Mesh) PopFace() FaceHandle {
	f := FaceHandle(len(m.faces) - 1)
	m.faces[f].alive = false
	return f
}

// DeleteFace tombstones f. Callers must have already reassigned or removed
// every edge in its loop.
func (m *Mesh) DeleteFace(f FaceHandle) {
	m.faces[f].alive = false
}

// ReviveFace restores a tombstoned face slot at handle f — the Undo
// counterpart to DeleteFace.
func (m *Mesh) ReviveFace(f FaceHandle, start EdgeHandle) {
	m.faces[f] = faceSlot{alive: true, start: start}
	m.adoptLoop(f, start)
}

// adoptLoop walks the loop rooted at start via next and sets every edge's
// face field to f.
func (m *Mesh) adoptLoop(f FaceHandle, start EdgeHandle) {
	e := start
	for {
		m.edges[e].face = f
		e = m.edges[e].next
		if e == start {
			break
		}
	}
}

// RelinkFaceStart updates f's cached representative edge. Mutations outside
// the root package (package command, in particular) call this after
// splicing an edge out of f's loop, in case the face's cached start was
// that very edge.
func (m *Mesh) RelinkFaceStart(f FaceHandle, start EdgeHandle) {
	m.faces[f].start = start
}

// FacePolygon returns f's loop as a Polygon, CW per spec.md §3's
// orientation convention.
func (m *Mesh) FacePolygon(f FaceHandle) geom2d.Polygon {
	var pts []geom2d.Vector2
	start := m.faces[f].start
	e := start
	for {
		pts = append(pts, m.Pos(m.edges[e].vert))
		e = m.edges[e].next
		if e == start {
			break
		}
	}
	return geom2d.Polygon{Points: pts}
}
