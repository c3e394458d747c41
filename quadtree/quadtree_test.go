package quadtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jigmesh/geom2d"
)

func box(minX, minY, maxX, maxY float64) geom2d.Rect {
	return geom2d.Rect{Min: geom2d.Vector2{X: minX, Y: minY}, Max: geom2d.Vector2{X: maxX, Y: maxY}}
}

func TestHitTestFindsContainingItem(t *testing.T) {
	tree := New[string](box(0, 0, 20, 20))
	tree.Insert(box(0, 0, 10, 10), "bottom-left")
	tree.Insert(box(10, 10, 20, 20), "top-right")

	contains := func(string) bool { return true }

	v, ok := tree.HitTest(geom2d.Vector2{X: 2, Y: 2}, contains)
	require.True(t, ok)
	assert.Equal(t, "bottom-left", v)

	v, ok = tree.HitTest(geom2d.Vector2{X: 15, Y: 15}, contains)
	require.True(t, ok)
	assert.Equal(t, "top-right", v)

	_, ok = tree.HitTest(geom2d.Vector2{X: 100, Y: 100}, contains)
	assert.False(t, ok)
}

func TestHitTestUsesPreciseContainsCallback(t *testing.T) {
	tree := New[int](box(0, 0, 10, 10))
	tree.Insert(box(0, 0, 10, 10), 1)

	// The bbox matches, but the precise test always rejects — HitTest must
	// honour that and report no match, not fall back to the box test.
	_, ok := tree.HitTest(geom2d.Vector2{X: 5, Y: 5}, func(int) bool { return false })
	assert.False(t, ok)
}

func TestInsertDescendsIntoQuadrants(t *testing.T) {
	tree := New[int](box(0, 0, 10, 10))
	tree.Insert(box(0, 5, 5, 10), 1) // NW quadrant
	tree.Insert(box(5, 0, 10, 5), 2) // SE quadrant
	tree.Insert(box(4, 4, 6, 6), 3)  // straddles center, stays at root

	require.NotNil(t, tree.root.children[0])
	require.NotNil(t, tree.root.children[3])
	assert.Len(t, tree.root.items, 1)
	assert.Equal(t, 3, tree.root.items[0].Value)
}

func TestAllReturnsEveryItem(t *testing.T) {
	tree := New[int](box(0, 0, 10, 10))
	tree.Insert(box(0, 5, 5, 10), 1)
	tree.Insert(box(5, 0, 10, 5), 2)
	tree.Insert(box(4, 4, 6, 6), 3)

	assert.ElementsMatch(t, []int{1, 2, 3}, tree.All())
}
