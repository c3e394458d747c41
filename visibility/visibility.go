// Package visibility computes, for a point inside a jigmesh.Mesh, the set
// of mesh verts reachable by a straight line that stays inside the union
// of the mesh's faces, and the boolean line-of-sight test between two
// arbitrary points (spec.md §4.5). Both are ported from
// original_source/Jig/GetVisiblePoints.cpp: the recursive cone-narrowing
// descent through twin faces becomes an explicit frame stack here (per
// spec.md §9, "Recursive visibility traversal → explicit stack of
// (entering-edge, left-limit, right-limit) frames"), trading C++ recursion
// depth for a bounded Go slice.
package visibility

import (
	"jigmesh"
	"jigmesh/geom2d"
)

// frame is one level of the cone-narrowing descent: enteringEdge is the
// twin half-edge we just crossed into, and limit0/limit1 bound the open
// angular cone (as unit bearings from point) within which further edges of
// enteringEdge's face may still be visible.
type frame struct {
	enteringEdge jigmesh.EdgeHandle
	limit0       geom2d.Vector2
	hasLimit0    bool
	limit1       geom2d.Vector2
	hasLimit1    bool
}

// From returns every mesh vert visible from point: reachable by a straight
// segment that stays inside the mesh, counting a shared edge as interior
// (spec.md §4.5, "Per-vertex visible set"). Returns nil if point lies
// outside every face.
func From(m *jigmesh.Mesh, point geom2d.Vector2) []jigmesh.VertHandle {
	startFace, ok := m.HitTest(point)
	if !ok {
		return nil
	}

	seen := map[jigmesh.VertHandle]bool{}
	visitedFrame := map[jigmesh.EdgeHandle]bool{}

	addFaceEdges(m, startFace, jigmesh.NoEdge, point, seen, visitedFrame)

	out := make([]jigmesh.VertHandle, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	return out
}

// addFaceEdges marks every vert of face visible, then — for each twinned
// edge — opens a cone between the bearings to its two endpoints and
// descends into the neighbouring face through the twin (spec.md §4.5,
// steps 2-3). enteringEdge, if not NoEdge, is skipped (the caller already
// accounted for it, and GetOtherEdges in the source mirrors this).
func addFaceEdges(m *jigmesh.Mesh, face jigmesh.FaceHandle, enteringEdge jigmesh.EdgeHandle, point geom2d.Vector2, seen map[jigmesh.VertHandle]bool, visited map[jigmesh.EdgeHandle]bool) {
	for _, e := range m.GetEdges(face) {
		if e == enteringEdge {
			continue
		}
		seen[m.EdgeVert(e)] = true

		twin := m.EdgeTwin(e)
		if twin == jigmesh.NoEdge {
			continue
		}

		limit0, ok0 := m.Pos(m.EdgeVert(e)).Sub(point).Normalised()
		limit1, ok1 := m.Pos(m.EdgeVert(m.EdgeNext(e))).Sub(point).Normalised()
		if ok0 && ok1 {
			descend(m, frame{enteringEdge: twin, limit0: limit0, hasLimit0: true, limit1: limit1, hasLimit1: true}, point, seen, visited)
		} else {
			// point lies exactly on this edge — original_source's
			// degenerate branch: descend with no angular limits rather
			// than refusing (spec.md §C.3).
			addFaceEdges(m, m.EdgeFace(twin), twin, point, seen, visited)
		}
	}
}

// descend walks a single cone-narrowing frame and recurses through further
// twins, using an explicit work stack so a long corridor of faces cannot
// grow the Go call stack unboundedly.
func descend(m *jigmesh.Mesh, start frame, point geom2d.Vector2, seen map[jigmesh.VertHandle]bool, visited map[jigmesh.EdgeHandle]bool) {
	stack := []frame{start}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if visited[f.enteringEdge] {
			continue
		}
		visited[f.enteringEdge] = true

		face := m.EdgeFace(f.enteringEdge)
		for _, e := range m.GetEdges(face) {
			if e == f.enteringEdge {
				continue
			}

			toStart, ok := m.Pos(m.EdgeVert(e)).Sub(point).Normalised()
			if !ok {
				continue
			}
			if f.hasLimit1 && f.limit1.Angle(toStart) > 0 {
				break // past the right limit: rest of the loop is out of cone
			}

			toEnd, okEnd := m.Pos(m.EdgeVert(m.EdgeNext(e))).Sub(point).Normalised()
			if !okEnd {
				continue
			}
			if f.hasLimit0 && f.limit0.Angle(toEnd) < 0 {
				continue // not yet in range
			}

			newLimit0, hasNewLimit0 := f.limit0, f.hasLimit0
			if !f.hasLimit0 || f.limit0.Angle(toStart) >= 0 {
				seen[m.EdgeVert(e)] = true
				newLimit0, hasNewLimit0 = toStart, true
			}

			twin := m.EdgeTwin(e)
			if twin == jigmesh.NoEdge {
				continue
			}
			newLimit1, hasNewLimit1 := f.limit1, f.hasLimit1
			if !f.hasLimit1 || f.limit1.Angle(toEnd) < 0 {
				newLimit1, hasNewLimit1 = toEnd, true
			}

			stack = append(stack, frame{enteringEdge: twin, limit0: newLimit0, hasLimit0: hasNewLimit0, limit1: newLimit1, hasLimit1: hasNewLimit1})
		}
	}
}

// IsVisible reports whether a straight segment from p to q lies entirely
// inside the mesh (spec.md §4.5, "Line-of-sight"). Ported from
// original_source/Jig/GetVisiblePoints.cpp's IsVisible, including its
// TryNeighbour degenerate branch for when p coincides with an edge
// endpoint (spec.md §C.4).
func IsVisible(m *jigmesh.Mesh, p, q geom2d.Vector2) bool {
	target, ok := q.Sub(p).Normalised()
	if !ok {
		return true
	}

	face, faceOK := m.HitTest(p)
	endFace, endOK := m.HitTest(q)
	if !faceOK || !endOK {
		return false
	}

	tryNeighbour := func(edge jigmesh.EdgeHandle) bool {
		twin := m.EdgeTwin(edge)
		if twin == jigmesh.NoEdge {
			return false
		}
		limit0, ok := m.EdgeVec(twin).Normalised()
		if !ok {
			return false
		}
		if target.Angle(limit0) <= 0 {
			limit1, ok := m.EdgeVec(m.EdgePrev(twin)).Scale(-1).Normalised()
			if !ok {
				return false
			}
			return target.Angle(limit1) > 0
		}
		return false
	}

	for face != jigmesh.NoFace {
		if face == endFace {
			return true
		}

		var nextEdge jigmesh.EdgeHandle = jigmesh.NoEdge
		for _, edge := range m.GetEdges(face) {
			ok := false

			limit0, normOK := m.Pos(m.EdgeVert(edge)).Sub(p).Normalised()
			if !normOK {
				ok = tryNeighbour(edge)
			} else if target.Angle(limit0) <= 0 {
				limit1, normOK1 := m.Pos(m.EdgeVert(m.EdgeNext(edge))).Sub(p).Normalised()
				if !normOK1 {
					ok = tryNeighbour(edge)
				} else {
					ok = target.Angle(limit1) > 0
				}
			}

			if ok {
				nextEdge = edge
				break
			}
		}

		if nextEdge == jigmesh.NoEdge {
			return false
		}
		twin := m.EdgeTwin(nextEdge)
		if twin == jigmesh.NoEdge {
			return false
		}
		face = m.EdgeFace(twin)
	}
	return false
}
