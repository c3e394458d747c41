package pathfinder_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jigmesh"
	"jigmesh/geom2d"
	"jigmesh/pathfinder"
	"jigmesh/splitter"
	"jigmesh/visibility"
)

func lShape(t *testing.T) *jigmesh.Mesh {
	t.Helper()
	m := jigmesh.NewFaceFromPolygon(geom2d.Polygon{Points: []geom2d.Vector2{
		{X: 0, Y: 0}, {X: 20, Y: 0}, {X: 20, Y: 10}, {X: 10, Y: 10}, {X: 10, Y: 20}, {X: 0, Y: 20},
	}})
	splitter.Convexify(m, m.Faces()[0])
	m.Update()
	visibility.Update(m)
	require.NoError(t, m.AssertValid())
	return m
}

// Scenario 4: shortest path in the L-shape bends around the reflex corner
// at (10,10), with length equal to the two straight legs either side of it.
func TestShortestPathInLShape(t *testing.T) {
	m := lShape(t)
	start := geom2d.Vector2{X: 2, Y: 18}
	end := geom2d.Vector2{X: 18, Y: 2}

	f := pathfinder.New(m, start, end)
	f.Go()

	want := 16 * math.Sqrt2
	assert.InDelta(t, want, f.Length(), 1e-9)

	path := f.Path()
	require.Len(t, path, 3)
	assert.True(t, path[0].Equal(start))
	assert.True(t, path[1].Equal(geom2d.Vector2{X: 10, Y: 10}))
	assert.True(t, path[2].Equal(end))

	sum := 0.0
	for i := 1; i < len(path); i++ {
		sum += path[i].Sub(path[i-1]).Length()
	}
	assert.InDelta(t, f.Length(), sum, 1e-9)
}

// Optimality: the trivial direct path (two points already mutually
// visible) has length equal to the straight-line distance.
func TestDirectlyVisibleEndpointsGiveStraightLinePath(t *testing.T) {
	m := lShape(t)
	start := geom2d.Vector2{X: 1, Y: 1}
	end := geom2d.Vector2{X: 5, Y: 1}

	f := pathfinder.New(m, start, end)
	assert.True(t, f.IsFinished())
	assert.InDelta(t, end.Sub(start).Length(), f.Length(), 1e-9)
	path := f.Path()
	require.Len(t, path, 2)
	assert.True(t, path[0].Equal(start))
	assert.True(t, path[1].Equal(end))
}

// Path-finder monotonicity: Step's popped node g is non-decreasing across
// the search (an A* invariant given an admissible, consistent heuristic).
func TestStepMonotonicity(t *testing.T) {
	m := lShape(t)
	start := geom2d.Vector2{X: 2, Y: 18}
	end := geom2d.Vector2{X: 19, Y: 1}

	f := pathfinder.New(m, start, end)
	last := -1.0
	for !f.IsFinished() {
		f.Step()
		g := f.Length()
		if g == 0 {
			continue
		}
		assert.GreaterOrEqual(t, g+1e-9, last)
		last = g
	}
}
