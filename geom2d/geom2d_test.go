package geom2d

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVector2Angle(t *testing.T) {
	a, ok := Vector2{1, 0}.Normalised()
	require.True(t, ok)
	b, ok := Vector2{0, 1}.Normalised()
	require.True(t, ok)

	assert.InDelta(t, 1.5707963267948966, a.Angle(b), 1e-9)
	assert.InDelta(t, -1.5707963267948966, b.Angle(a), 1e-9)
}

func TestSegmentIntersect(t *testing.T) {
	s := Segment{A: Vector2{0, 0}, B: Vector2{10, 10}}
	tline := Segment{A: Vector2{0, 10}, B: Vector2{10, 0}}
	p, ok := s.Intersect(tline)
	require.True(t, ok)
	assert.InDelta(t, 5, p.X, 1e-6)
	assert.InDelta(t, 5, p.Y, 1e-6)

	// Adjacent segments sharing an endpoint must not register as crossing.
	adjacent := Segment{A: Vector2{10, 10}, B: Vector2{20, 20}}
	_, ok = s.Intersect(adjacent)
	assert.False(t, ok)
}

func TestPolygonIsCW(t *testing.T) {
	square := Polygon{Points: []Vector2{{0, 0}, {10, 0}, {10, 10}, {0, 10}}}
	assert.True(t, square.IsCW())
	assert.False(t, square.Reversed().IsCW())
}

func TestPointInPolygonSquare(t *testing.T) {
	square := Polygon{Points: []Vector2{{0, 0}, {10, 0}, {10, 10}, {0, 10}}}
	assert.True(t, PointInPolygon(square, Vector2{5, 5}))
	assert.False(t, PointInPolygon(square, Vector2{15, 5}))
}

func TestPolygonIsSelfIntersecting(t *testing.T) {
	bowtie := Polygon{Points: []Vector2{{0, 0}, {10, 10}, {10, 0}, {0, 10}}}
	assert.True(t, bowtie.IsSelfIntersecting())

	square := Polygon{Points: []Vector2{{0, 0}, {10, 0}, {10, 10}, {0, 10}}}
	assert.False(t, square.IsSelfIntersecting())
}
