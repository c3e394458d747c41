package jigmesh

import "github.com/pkg/errors"

// AssertValid walks every live face and checks the topological invariants
// spec.md §3 and §8 require of a well-formed mesh (mirrors
// original_source/Jig/EdgeMesh.cpp's Face::IsValid, generalised to the
// whole mesh rather than one face). It is run automatically after every
// mutation when Mesh.StrictMode is set, and callers can invoke it directly
// in tests.
func (m *Mesh) AssertValid() error {
	for _, f := range m.Faces() {
		if err := m.assertFaceValid(f); err != nil {
			return errors.Wrapf(err, "face %d", f)
		}
	}
	for i, s := range m.edges {
		if !s.alive {
			continue
		}
		e := EdgeHandle(i)
		if s.twin != NoEdge && m.EdgeTwin(s.twin) != e {
			return errors.Errorf("edge %d: twin %d does not point back", e, s.twin)
		}
		if !m.vertAlive(s.vert) {
			return errors.Errorf("edge %d: vert %d is not alive", e, s.vert)
		}
	}
	return nil
}

func (m *Mesh) assertFaceValid(f FaceHandle) error {
	n := m.FaceEdgeCount(f)
	if n < 3 {
		return errors.Errorf("fewer than 3 edges (%d)", n)
	}

	start := m.faces[f].start
	e := start
	seen := 0
	for {
		if m.EdgeNext(m.EdgePrev(e)) != e {
			return errors.Errorf("edge %d: prev.next != self", e)
		}
		if m.EdgePrev(m.EdgeNext(e)) != e {
			return errors.Errorf("edge %d: next.prev != self", e)
		}
		if m.EdgeFace(e) != f {
			return errors.Errorf("edge %d: face field does not match owning face", e)
		}
		seen++
		e = m.EdgeNext(e)
		if e == start {
			break
		}
		if seen > len(m.edges) {
			return errors.New("loop does not close: possible corrupted next chain")
		}
	}
	if seen != n {
		return errors.Errorf("loop walk visited %d edges, FaceEdgeCount reports %d", seen, n)
	}

	if !m.FacePolygon(f).IsCW() {
		return errors.New("face polygon is not wound clockwise")
	}
	return nil
}
