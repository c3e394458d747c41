package triangulate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jigmesh/geom2d"
	"jigmesh/triangulate"
)

func square() geom2d.Polygon {
	return geom2d.Polygon{Points: []geom2d.Vector2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}}
}

// A square triangulates into two triangles whose shared diagonal is
// twinned, and the resulting mesh's outer boundary reproduces the input
// square up to rotation.
func TestTriangulateSquare(t *testing.T) {
	tri := triangulate.New(square())
	m, err := tri.Go()
	require.NoError(t, err)
	require.NoError(t, m.AssertValid())

	assert.Equal(t, 2, m.FaceCount())
	assert.Equal(t, 4, m.VertCount())

	outer := m.GetOuterPolygon()
	assertSameRing(t, square().Points, outer.Points)
}

// A square with a smaller square hole bridges the hole into the outer loop
// before ear-clipping, producing a mesh with no untwinned interior edges
// other than the boundary.
func TestTriangulateSquareWithHole(t *testing.T) {
	tri := triangulate.New(square())
	tri.AddHole(geom2d.Polygon{Points: []geom2d.Vector2{
		{X: 3, Y: 3}, {X: 3, Y: 7}, {X: 7, Y: 7}, {X: 7, Y: 3},
	}})

	m, err := tri.Go()
	require.NoError(t, err)
	require.NoError(t, m.AssertValid())

	assert.True(t, m.FaceCount() > 2)

	outer := m.GetOuterEdges()
	assert.NotEmpty(t, outer)
}

// Too few points after bridging (a degenerate 2-point "polygon") is
// reported rather than producing a broken mesh.
func TestTriangulateTooFewPoints(t *testing.T) {
	tri := triangulate.New(geom2d.Polygon{Points: []geom2d.Vector2{{X: 0, Y: 0}, {X: 1, Y: 0}}})
	_, err := tri.Go()
	assert.ErrorIs(t, err, triangulate.ErrTooFewPoints)
}

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
