package splitter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jigmesh"
	"jigmesh/geom2d"
	"jigmesh/splitter"
)

func lShape(t *testing.T) (*jigmesh.Mesh, jigmesh.FaceHandle) {
	t.Helper()
	m := jigmesh.NewFaceFromPolygon(geom2d.Polygon{Points: []geom2d.Vector2{
		{X: 0, Y: 0}, {X: 20, Y: 0}, {X: 20, Y: 10}, {X: 10, Y: 10}, {X: 10, Y: 20}, {X: 0, Y: 20},
	}})
	return m, m.Faces()[0]
}

// Scenario 2: the L-shape's single reflex corner is bridged to a
// non-adjacent vertex, producing exactly two convex faces.
func TestConvexifyLShape(t *testing.T) {
	m, face := lShape(t)

	splitter.Convexify(m, face)
	require.NoError(t, m.AssertValid())
	require.Equal(t, 2, m.FaceCount())

	for _, f := range m.Faces() {
		poly := m.FacePolygon(f)
		for i := 0; i < len(poly.Points); i++ {
			a := poly.Points[i]
			b := poly.Points[(i+1)%len(poly.Points)]
			c := poly.Points[(i+2)%len(poly.Points)]
			cross := b.Sub(a).Cross(c.Sub(b))
			assert.GreaterOrEqual(t, cross, 0.0, "face %v is not convex at %v", f, b)
		}
	}
}

// A face with fewer than 4 edges is already convex by construction;
// Convexify must leave it untouched.
func TestConvexifyNoOpOnTriangle(t *testing.T) {
	m := jigmesh.NewFaceFromPolygon(geom2d.Polygon{Points: []geom2d.Vector2{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 10},
	}})
	face := m.Faces()[0]

	splitter.Convexify(m, face)
	assert.Equal(t, 1, m.FaceCount())
	assert.True(t, m.FaceExists(face))
}

// AddHole bridges a detached hole face into an outer face, consuming the
// hole's face handle and leaving a single connected boundary.
func TestAddHoleMergesAndConvexifies(t *testing.T) {
	m := jigmesh.NewFaceFromPolygon(geom2d.Polygon{Points: []geom2d.Vector2{
		{X: 0, Y: 0}, {X: 20, Y: 0}, {X: 20, Y: 20}, {X: 0, Y: 20},
	}})
	outer := m.Faces()[0]

	hole := m.AddOuterFace(geom2d.Polygon{Points: []geom2d.Vector2{
		{X: 5, Y: 5}, {X: 15, Y: 5}, {X: 15, Y: 15}, {X: 5, Y: 15},
	}})

	require.NoError(t, splitter.AddHole(m, outer, hole))
	require.NoError(t, m.AssertValid())

	assert.False(t, m.FaceExists(hole))
	assert.True(t, m.FaceExists(outer))
}
