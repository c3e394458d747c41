package geom2d

// Rect is an axis-aligned bounding rectangle. The zero value is degenerate
// (Min and Max both zero); use Empty to build one ready to Expand into.
type Rect struct {
	Min, Max Vector2
}

// Empty returns a rectangle with no area, positioned so that the first
// Expand call establishes real bounds.
func Empty() Rect {
	inf := 1e308
	return Rect{Min: Vector2{inf, inf}, Max: Vector2{-inf, -inf}}
}

// Width returns the rectangle's extent along X.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns the rectangle's extent along Y.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vector2 {
	return Vector2{(r.Min.X + r.Max.X) / 2, (r.Min.Y + r.Max.Y) / 2}
}

// Expand grows r (in place semantics via return value) to also cover p.
func (r Rect) Expand(p Vector2) Rect {
	if p.X < r.Min.X {
		r.Min.X = p.X
	}
	if p.Y < r.Min.Y {
		r.Min.Y = p.Y
	}
	if p.X > r.Max.X {
		r.Max.X = p.X
	}
	if p.Y > r.Max.Y {
		r.Max.Y = p.Y
	}
	return r
}

// Union returns the smallest rectangle covering both r and s.
func (r Rect) Union(s Rect) Rect {
	return r.Expand(s.Min).Expand(s.Max)
}

// Contains reports whether p lies within r, inclusive of the boundary.
func (r Rect) Contains(p Vector2) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Intersects reports whether r and s overlap (including touching).
func (r Rect) Intersects(s Rect) bool {
	return r.Min.X <= s.Max.X && r.Max.X >= s.Min.X &&
		r.Min.Y <= s.Max.Y && r.Max.Y >= s.Min.Y
}

// FromPoints builds the bounding rectangle of a non-empty point set.
func FromPoints(pts []Vector2) Rect {
	r := Empty()
	for _, p := range pts {
		r = r.Expand(p)
	}
	return r
}
