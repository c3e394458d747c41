package jigmesh_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jigmesh"
	"jigmesh/command"
	"jigmesh/geom2d"
)

func square() geom2d.Polygon {
	return geom2d.Polygon{Points: []geom2d.Vector2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}}
}

// Scenario 1: square split, then DissolveRedundantEdges merges it back to
// one face whose outer polygon matches the input up to rotation.
func TestSquareSplitAndDissolve(t *testing.T) {
	m := jigmesh.NewFaceFromPolygon(square())
	require.NoError(t, m.AssertValid())

	face := m.Faces()[0]
	edges := m.GetEdges(face)
	require.Len(t, edges, 4)

	// Split along the diagonal from (0,0) to (10,10).
	var e0, e1 jigmesh.EdgeHandle
	for _, e := range edges {
		switch m.Pos(m.EdgeVert(e)) {
		case (geom2d.Vector2{X: 0, Y: 0}):
			e0 = e
		case (geom2d.Vector2{X: 10, Y: 10}):
			e1 = e
		}
	}
	_, err := m.SplitFace(face, e0, e1)
	require.NoError(t, err)
	require.Equal(t, 2, m.FaceCount())

	n := m.DissolveRedundantEdges()
	assert.Equal(t, 1, n)
	require.Equal(t, 1, m.FaceCount())
	require.NoError(t, m.AssertValid())

	outer := m.GetOuterPolygon()
	assertSameRing(t, square().Points, outer.Points)
}

// Round-trip law: polygon -> mesh -> GetOuterPolygon reproduces the input
// up to rotation.
func TestGetOuterPolygonRoundTrip(t *testing.T) {
	m := jigmesh.NewFaceFromPolygon(square())
	outer := m.GetOuterPolygon()
	assertSameRing(t, square().Points, outer.Points)
}

// Scenario 5: InsertVerts at each edge's midpoint, then Undo restores the
// starting mesh exactly.
func TestInsertVertsUndoRoundTrip(t *testing.T) {
	m := jigmesh.NewFaceFromPolygon(square())
	face := m.Faces()[0]
	beforeVerts, beforeFaces := m.VertCount(), m.FaceCount()
	beforeOuter := m.GetOuterPolygon()

	var cmds []*command.InsertVerts
	for _, e := range m.GetEdges(face) {
		mid := m.Pos(m.EdgeVert(e)).Add(m.Pos(m.EdgeVert(m.EdgeNext(e)))).Scale(0.5)
		c := command.NewInsertVerts(m, e, []geom2d.Vector2{mid})
		ok, err := c.CanDo()
		require.True(t, ok)
		require.NoError(t, err)
		require.NoError(t, c.Do())
		cmds = append(cmds, c)
	}
	require.NoError(t, m.AssertValid())
	assert.Equal(t, beforeVerts+4, m.VertCount())

	for i := len(cmds) - 1; i >= 0; i-- {
		require.NoError(t, cmds[i].Undo())
	}
	require.NoError(t, m.AssertValid())

	assert.Equal(t, beforeVerts, m.VertCount())
	assert.Equal(t, beforeFaces, m.FaceCount())
	assertSameRing(t, beforeOuter.Points, m.GetOuterPolygon().Points)
}

// Scenario 6: add a triangular outer face atop the square, then Undo
// restores the square exactly.
func TestAddOuterFaceUndo(t *testing.T) {
	m := jigmesh.NewFaceFromPolygon(square())
	beforeVerts, beforeFaces := m.VertCount(), m.FaceCount()
	beforeOuter := m.GetOuterPolygon()

	start := m.FindOuterEdgeWithVert(findVert(t, m, geom2d.Vector2{X: 0, Y: 10}))
	end := m.FindOuterEdgeWithVert(findVert(t, m, geom2d.Vector2{X: 10, Y: 10}))
	require.NotEqual(t, jigmesh.NoEdge, start)
	require.NotEqual(t, jigmesh.NoEdge, end)

	c := command.NewAddOuterFace(m, start, end, []geom2d.Vector2{{X: 5, Y: 15}})
	ok, err := c.CanDo()
	require.True(t, ok)
	require.NoError(t, err)
	require.NoError(t, c.Do())
	require.NoError(t, m.AssertValid())

	assert.Equal(t, beforeFaces+1, m.FaceCount())
	assert.Equal(t, beforeVerts+1, m.VertCount())

	newFacePoly := m.FacePolygon(c.NewFace())
	assert.Len(t, newFacePoly.Points, 3)

	outer := m.GetOuterPolygon()
	assert.Len(t, outer.Points, 6)

	require.NoError(t, c.Undo())
	require.NoError(t, m.AssertValid())
	assert.Equal(t, beforeVerts, m.VertCount())
	assert.Equal(t, beforeFaces, m.FaceCount())
	assertSameRing(t, beforeOuter.Points, m.GetOuterPolygon().Points)
}

func TestHitTest(t *testing.T) {
	m := jigmesh.NewFaceFromPolygon(square())
	m.Update()
	face := m.Faces()[0]

	got, ok := m.HitTest(geom2d.Vector2{X: 5, Y: 5})
	require.True(t, ok)
	assert.Equal(t, face, got)

	_, ok = m.HitTest(geom2d.Vector2{X: 50, Y: 50})
	assert.False(t, ok)
}

func findVert(t *testing.T, m *jigmesh.Mesh, pos geom2d.Vector2) jigmesh.VertHandle {
	t.Helper()
	for _, v := range m.Verts() {
		if m.Pos(v).Equal(pos) {
			return v
		}
	}
	t.Fatalf("no vert at %v", pos)
	return jigmesh.NoVert
}

// assertSameRing checks that got matches want up to rotation (or rotation
// of the reversal), per spec.md §8's round-trip law.
func assertSameRing(t *testing.T, want, got []geom2d.Vector2) {
	t.Helper()
	require.Equal(t, len(want), len(got))
	if ringMatches(want, got) || ringMatches(want, reversedRing(got)) {
		return
	}
	t.Fatalf("rings do not match up to rotation/reversal: want %v got %v", want, got)
}

func ringMatches(want, got []geom2d.Vector2) bool {
	n := len(want)
	for shift := 0; shift < n; shift++ {
		match := true
		for i := 0; i < n; i++ {
			if !want[i].Equal(got[(i+shift)%n]) {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

func reversedRing(pts []geom2d.Vector2) []geom2d.Vector2 {
	n := len(pts)
	out := make([]geom2d.Vector2, n)
	for i, p := range pts {
		out[n-1-i] = p
	}
	return out
}
