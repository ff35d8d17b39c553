// Package linalg provides the Vec3 primitive for ray tracing and
// simulation code.
package linalg

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Scalar is the set of numeric types New and the scalar operators accept.
// Values are converted to float64 before use; the conversion is exact over
// the ranges a double can represent.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Vec3 is a point or direction in R3. Whether a value means one or the
// other is up to the call site; the type does not distinguish them.
//
// Vec3 is a plain value: every operator returns a new vector and never
// mutates its operands. Go's == gives exact component-wise IEEE-754
// equality (-0 == 0 holds, NaN == NaN does not), which is only safe on
// values built from the same literals. Compare computed results with
// IsClose instead.
type Vec3 struct {
	X float64
	Y float64
	Z float64
}

// Zero returns the additive identity (0, 0, 0).
func Zero() Vec3 {
	return Vec3{}
}

// New builds a vector from any mix of numeric types, one type parameter
// per axis, so integer and floating literals can be combined freely.
func New[X, Y, Z Scalar](x X, y Y, z Z) Vec3 {
	return Vec3{
		X: float64(x),
		Y: float64(y),
		Z: float64(z),
	}
}

// Add returns the component-wise sum v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{
		X: v.X + o.X,
		Y: v.Y + o.Y,
		Z: v.Z + o.Z,
	}
}

// Sub returns the component-wise difference v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{
		X: v.X - o.X,
		Y: v.Y - o.Y,
		Z: v.Z - o.Z,
	}
}

// Mul returns the Hadamard (component-wise) product of v and o. It is not
// a geometric product; for those use Dot and Cross.
func (v Vec3) Mul(o Vec3) Vec3 {
	return Vec3{
		X: v.X * o.X,
		Y: v.Y * o.Y,
		Z: v.Z * o.Z,
	}
}

// Div returns the component-wise quotient v / o.
//
// No component of the divisor may be zero. This is asserted with the
// product test o.X*o.Y*o.Z != 0, which rejects the divisor without
// pinpointing the offending axis. On failure Div panics with
// ErrDivisionByZero; DivChecked is the recoverable form.
func (v Vec3) Div(o Vec3) Vec3 {
	if o.X*o.Y*o.Z == 0 {
		panic(ErrDivisionByZero)
	}
	return Vec3{
		X: v.X / o.X,
		Y: v.Y / o.Y,
		Z: v.Z / o.Z,
	}
}

// Neg returns -v.
func (v Vec3) Neg() Vec3 {
	return Vec3{
		X: -v.X,
		Y: -v.Y,
		Z: -v.Z,
	}
}

// IsClose reports whether o lies within CloseEpsilon of v. The threshold
// applies to the Euclidean distance between the two vectors, not to each
// component: a vector (1e-7, 1e-7, 1e-7) away passes, one (1e-3, 0, 0)
// away does not.
func (v Vec3) IsClose(o Vec3) bool {
	return Distance(v, o) < CloseEpsilon
}

func (v Vec3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}
