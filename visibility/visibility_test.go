package visibility_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jigmesh"
	"jigmesh/geom2d"
	"jigmesh/splitter"
	"jigmesh/visibility"
)

// lShape builds the concave L-shape used throughout: a 20x20 square with
// the upper-right 10x10 quadrant missing.
func lShape(t *testing.T) *jigmesh.Mesh {
	t.Helper()
	m := jigmesh.NewFaceFromPolygon(geom2d.Polygon{Points: []geom2d.Vector2{
		{X: 0, Y: 0}, {X: 20, Y: 0}, {X: 20, Y: 10}, {X: 10, Y: 10}, {X: 10, Y: 20}, {X: 0, Y: 20},
	}})
	require.NoError(t, m.AssertValid())
	return m
}

func vertAt(t *testing.T, m *jigmesh.Mesh, pos geom2d.Vector2) jigmesh.VertHandle {
	t.Helper()
	for _, v := range m.Verts() {
		if m.Pos(v).Equal(pos) {
			return v
		}
	}
	t.Fatalf("no vert at %v", pos)
	return jigmesh.NoVert
}

// Scenario 2: the concave decomposition splits the L-shape into exactly two
// convex faces, both sharing the bridge built at the one reflex corner.
func TestConvexifySplitsLShapeIntoTwoConvexFaces(t *testing.T) {
	m := lShape(t)
	face := m.Faces()[0]

	splitter.Convexify(m, face)
	require.NoError(t, m.AssertValid())

	require.Equal(t, 2, m.FaceCount())
	for _, f := range m.Faces() {
		for _, e := range m.GetEdges(f) {
			assert.False(t, m.IsConcave(e), "face %v has a concave corner", f)
		}
	}
}

// Scenario 3: from (2,18) inside the L-shape, exactly the four corners of
// the convex lobe containing the point are visible; the far vert at
// (20,0), across the bridge, is not.
func TestVisibilityInLShape(t *testing.T) {
	m := lShape(t)
	face := m.Faces()[0]
	splitter.Convexify(m, face)
	m.Update()

	from := geom2d.Vector2{X: 2, Y: 18}
	visible := visibility.From(m, from)

	want := map[geom2d.Vector2]bool{
		{X: 0, Y: 0}:   true,
		{X: 10, Y: 10}: true,
		{X: 10, Y: 20}: true,
		{X: 0, Y: 20}:  true,
	}
	got := map[geom2d.Vector2]bool{}
	for _, v := range visible {
		got[m.Pos(v)] = true
	}
	assert.Equal(t, want, got)

	assert.False(t, visibility.IsVisible(m, from, geom2d.Vector2{X: 20, Y: 0}))
}

// Visibility symmetry: if v is visible from u, u is visible from v.
func TestVisibilitySymmetry(t *testing.T) {
	m := lShape(t)
	face := m.Faces()[0]
	splitter.Convexify(m, face)
	m.Update()

	visibility.Update(m)

	for _, u := range m.Verts() {
		for _, v := range m.Verts() {
			if u == v {
				continue
			}
			uData := visibility.GetData(m, u)
			vData := visibility.GetData(m, v)
			require.NotNil(t, uData)
			require.NotNil(t, vData)

			uSeesV := contains(uData.Visible, v)
			vSeesU := contains(vData.Visible, u)
			assert.Equal(t, uSeesV, vSeesU, "visibility not symmetric between %v and %v", m.Pos(u), m.Pos(v))
		}
	}
}

func contains(hs []jigmesh.VertHandle, v jigmesh.VertHandle) bool {
	for _, h := range hs {
		if h == v {
			return true
		}
	}
	return false
}
