package command_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jigmesh"
	"jigmesh/command"
	"jigmesh/geom2d"
)

// twoSquares builds two unit squares side by side, sharing the vertical
// edge from (1,0) to (1,1) as a twinned pair — the minimal fixture for
// exercising DissolveEdge, MergeFace, and DeleteFace across a real face
// boundary.
func twoSquares(t *testing.T) (m *jigmesh.Mesh, faceA, faceB jigmesh.FaceHandle, shared jigmesh.EdgeHandle) {
	t.Helper()
	m = jigmesh.New()

	v00 := m.PushVert(geom2d.Vector2{X: 0, Y: 0})
	v10 := m.PushVert(geom2d.Vector2{X: 1, Y: 0})
	v11 := m.PushVert(geom2d.Vector2{X: 1, Y: 1})
	v01 := m.PushVert(geom2d.Vector2{X: 0, Y: 1})
	v20 := m.PushVert(geom2d.Vector2{X: 2, Y: 0})
	v21 := m.PushVert(geom2d.Vector2{X: 2, Y: 1})

	ea1 := m.NewEdge(v00, jigmesh.NoFace) // (0,0)->(1,0)
	ea2 := m.NewEdge(v10, jigmesh.NoFace) // (1,0)->(1,1)
	ea3 := m.NewEdge(v11, jigmesh.NoFace) // (1,1)->(0,1)
	ea4 := m.NewEdge(v01, jigmesh.NoFace) // (0,1)->(0,0)
	m.Link(ea1, ea2)
	m.Link(ea2, ea3)
	m.Link(ea3, ea4)
	m.Link(ea4, ea1)
	faceA = m.PushFace(ea1)

	eb1 := m.NewEdge(v10, jigmesh.NoFace) // (1,0)->(2,0)
	eb2 := m.NewEdge(v20, jigmesh.NoFace) // (2,0)->(2,1)
	eb3 := m.NewEdge(v21, jigmesh.NoFace) // (2,1)->(1,1)
	eb4 := m.NewEdge(v11, jigmesh.NoFace) // (1,1)->(1,0)
	m.Link(eb1, eb2)
	m.Link(eb2, eb3)
	m.Link(eb3, eb4)
	m.Link(eb4, eb1)
	faceB = m.PushFace(eb1)

	m.Pair(ea2, eb4)

	require.NoError(t, m.AssertValid())
	return m, faceA, faceB, ea2
}

// SplitFace on a face whose bridge-start edge already has a live twin
// (faceA's shared edge with faceB) must carry that twin over to the new
// edge that inherits the old boundary position, not drop it — otherwise
// the twin's own reciprocal link (pointing back at the original edge)
// goes stale and AssertValid's reciprocity check fails.
func TestSplitFacePreservesExistingTwin(t *testing.T) {
	m, faceA, faceB, shared := twoSquares(t)

	var other jigmesh.EdgeHandle
	for _, e := range m.GetEdges(faceA) {
		if e != shared && m.EdgeNext(e) != shared && m.EdgeNext(shared) != e {
			other = e
			break
		}
	}
	require.NotEqual(t, jigmesh.NoEdge, other)
	oldTwin := m.EdgeTwin(shared)
	require.NotEqual(t, jigmesh.NoEdge, oldTwin)

	c := command.NewSplitFace(m, faceA, shared, other, nil)
	ok, err := c.CanDo()
	require.True(t, ok)
	require.NoError(t, err)
	require.NoError(t, c.Do())
	require.NoError(t, m.AssertValid())

	require.Equal(t, 3, m.FaceCount())
	assert.True(t, m.FaceExists(faceB))

	newFace := c.NewFace()
	newStart := m.FaceEdge(newFace)
	assert.Equal(t, oldTwin, m.EdgeTwin(newStart))
	assert.Equal(t, newStart, m.EdgeTwin(oldTwin))

	require.NoError(t, c.Undo())
	require.NoError(t, m.AssertValid())
	assert.Equal(t, 2, m.FaceCount())
	assert.NotEqual(t, jigmesh.NoEdge, m.EdgeTwin(oldTwin))
}

func TestDissolveEdgeBetweenFaces(t *testing.T) {
	m, faceA, _, shared := twoSquares(t)
	beforeVerts := m.VertCount()

	c := command.NewDissolveEdge(m, shared)
	ok, err := c.CanDo()
	require.True(t, ok)
	require.NoError(t, err)
	require.NoError(t, c.Do())
	require.NoError(t, m.AssertValid())

	require.Equal(t, 1, m.FaceCount())
	res := c.Result()
	require.NotNil(t, res)
	assert.Nil(t, res.NewHole)

	poly := m.FacePolygon(m.Faces()[0])
	assert.Len(t, poly.Points, 6)

	require.NoError(t, c.Undo())
	require.NoError(t, m.AssertValid())
	assert.Equal(t, 2, m.FaceCount())
	assert.Equal(t, beforeVerts, m.VertCount())
	assert.True(t, m.FaceExists(faceA))
}

func TestMergeFaceAcrossSharedEdge(t *testing.T) {
	m, faceA, faceB, shared := twoSquares(t)
	beforeVerts := m.VertCount()

	c := command.NewMergeFace(m, shared)
	ok, err := c.CanDo()
	require.True(t, ok)
	require.NoError(t, err)
	require.NoError(t, c.Do())
	require.NoError(t, m.AssertValid())

	assert.Equal(t, 1, m.FaceCount())
	assert.True(t, m.FaceExists(faceA))
	assert.False(t, m.FaceExists(faceB))

	require.NoError(t, c.Undo())
	require.NoError(t, m.AssertValid())
	assert.Equal(t, 2, m.FaceCount())
	assert.Equal(t, beforeVerts, m.VertCount())
}

func TestDeleteFaceOrphansUnsharedVerts(t *testing.T) {
	m, faceA, faceB, shared := twoSquares(t)
	beforeVerts := m.VertCount()

	c := command.NewDeleteFace(m, faceB)
	ok, err := c.CanDo()
	require.True(t, ok)
	require.NoError(t, err)
	require.NoError(t, c.Do())
	require.NoError(t, m.AssertValid())

	assert.Equal(t, 1, m.FaceCount())
	assert.True(t, m.FaceExists(faceA))
	assert.Equal(t, jigmesh.NoEdge, m.EdgeTwin(shared))
	assert.Equal(t, beforeVerts-2, m.VertCount()) // (2,0) and (2,1) were only in faceB

	require.NoError(t, c.Undo())
	require.NoError(t, m.AssertValid())
	assert.Equal(t, 2, m.FaceCount())
	assert.Equal(t, beforeVerts, m.VertCount())
	assert.NotEqual(t, jigmesh.NoEdge, m.EdgeTwin(shared))
}

func TestDeleteVertOnSingleFaceCorner(t *testing.T) {
	m := jigmesh.NewFaceFromPolygon(geom2d.Polygon{Points: []geom2d.Vector2{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10},
	}})
	face := m.Faces()[0]

	var corner jigmesh.VertHandle
	for _, v := range m.Verts() {
		if m.Pos(v).Equal(geom2d.Vector2{X: 10, Y: 0}) {
			corner = v
		}
	}
	require.NotEqual(t, jigmesh.NoVert, corner)

	c := command.NewDeleteVert(m, corner)
	ok, err := c.CanDo()
	require.True(t, ok)
	require.NoError(t, err)
	require.NoError(t, c.Do())
	require.NoError(t, m.AssertValid())

	assert.Equal(t, 3, m.FaceEdgeCount(face))
	assert.False(t, m.VertExists(corner))

	require.NoError(t, c.Undo())
	require.NoError(t, m.AssertValid())
	assert.Equal(t, 4, m.FaceEdgeCount(face))
	assert.True(t, m.VertExists(corner))
}

// DeleteVert on a vert with exactly two incident edges (a midpoint inserted
// on a previously shared boundary) re-twins the survivors directly,
// restoring the original single shared edge.
func TestDeleteVertRestoresSharedEdge(t *testing.T) {
	m, _, _, shared := twoSquares(t)

	mid := geom2d.Vector2{X: 1, Y: 0.5}
	insert := command.NewInsertVerts(m, shared, []geom2d.Vector2{mid})
	ok, err := insert.CanDo()
	require.True(t, ok)
	require.NoError(t, err)
	require.NoError(t, insert.Do())
	require.NoError(t, m.AssertValid())

	midVert := insert.NewVerts()[0]
	beforeVerts := m.VertCount()

	del := command.NewDeleteVert(m, midVert)
	ok, err = del.CanDo()
	require.True(t, ok)
	require.NoError(t, err)
	require.NoError(t, del.Do())
	require.NoError(t, m.AssertValid())

	assert.Equal(t, beforeVerts-1, m.VertCount())
	assert.Equal(t, 2, m.FaceCount())

	require.NoError(t, del.Undo())
	require.NoError(t, m.AssertValid())
	assert.Equal(t, beforeVerts, m.VertCount())
}
