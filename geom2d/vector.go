// Package geom2d provides the 2D vector, line, rectangle, and polygon
// primitives used by the half-edge mesh and its algorithms. It intentionally
// stays small: no arbitrary precision, no 3D, no SIMD — the mesh only ever
// needs a few dozen scalar operations on points.
package geom2d

import "math"

// Epsilon is the default tolerance used for equality and normalisation
// checks across the package.
const Epsilon = 1e-9

// Vector2 is a 2D point or displacement. Two Vector2 values compare equal
// (via Equal) when within Epsilon of each other; identity of the mesh
// vertex that carries a Vector2 is tracked separately by the mesh, never by
// this type.
type Vector2 struct {
	X, Y float64
}

// Add returns v+w.
func (v Vector2) Add(w Vector2) Vector2 { return Vector2{v.X + w.X, v.Y + w.Y} }

// Sub returns v-w.
func (v Vector2) Sub(w Vector2) Vector2 { return Vector2{v.X - w.X, v.Y - w.Y} }

// Scale returns v scaled by f.
func (v Vector2) Scale(f float64) Vector2 { return Vector2{v.X * f, v.Y * f} }

// Dot returns the cosine-like dot product of v and w.
func (v Vector2) Dot(w Vector2) float64 { return v.X*w.X + v.Y*w.Y }

// Cross returns the z-component of the 3D cross product, i.e. the signed
// sine of the angle from v to w (positive when w is CCW from v).
func (v Vector2) Cross(w Vector2) float64 { return v.X*w.Y - v.Y*w.X }

// Length returns the Euclidean length of v.
func (v Vector2) Length() float64 { return math.Hypot(v.X, v.Y) }

// LengthSquared avoids the sqrt when only relative magnitude matters.
func (v Vector2) LengthSquared() float64 { return v.X*v.X + v.Y*v.Y }

// IsZero reports whether v is the zero vector within Epsilon.
func (v Vector2) IsZero() bool { return v.LengthSquared() < Epsilon*Epsilon }

// Normalised returns v scaled to unit length and true, or the zero vector
// and false if v is (near) zero length — mirroring the source's
// Vec2::Normalise, which returns a bool rather than asserting.
func (v Vector2) Normalised() (Vector2, bool) {
	l := v.Length()
	if l < Epsilon {
		return Vector2{}, false
	}
	return Vector2{v.X / l, v.Y / l}, true
}

// Equal reports approximate equality within Epsilon.
func (v Vector2) Equal(w Vector2) bool {
	return math.Abs(v.X-w.X) < Epsilon && math.Abs(v.Y-w.Y) < Epsilon
}

// Angle returns the signed angle (radians) from unit vector v to unit
// vector w, in (-pi, pi], positive when w is CCW from v. Both operands must
// already be normalised; this mirrors Vec2::GetAngle, which asserts the
// same precondition in the source.
func (v Vector2) Angle(w Vector2) float64 {
	dot := v.Dot(w)
	if dot > 1 {
		dot = 1
	} else if dot < -1 {
		dot = -1
	}
	return math.Copysign(math.Acos(dot), v.Cross(w))
}

// Bearing returns the angle of v measured CCW from the positive X axis, in
// (-pi, pi]. Used when computing visibility cones from a point to a target.
func (v Vector2) Bearing() float64 { return math.Atan2(v.Y, v.X) }
