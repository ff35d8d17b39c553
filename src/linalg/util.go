package linalg

import "math"

// Scale returns v with every component multiplied by s.
func Scale[S Scalar](v Vec3, s S) Vec3 {
	f := float64(s)
	return Vec3{
		X: v.X * f,
		Y: v.Y * f,
		Z: v.Z * f,
	}
}

// Div returns v with every component divided by s. A scalar that converts
// to zero panics with ErrDivisionByZero; DivChecked is the recoverable
// form.
func Div[S Scalar](v Vec3, s S) Vec3 {
	f := float64(s)
	if f == 0 {
		panic(ErrDivisionByZero)
	}
	return Vec3{
		X: v.X / f,
		Y: v.Y / f,
		Z: v.Z / f,
	}
}

// Length returns the Euclidean norm of v. It is zero only for the zero
// vector.
func Length(v Vec3) float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// LengthSq returns the squared norm, skipping the square root.
func LengthSq(v Vec3) float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Normalize returns the unit vector along v. The zero vector has no
// direction and panics with ErrDivisionByZero; there is no fallback
// direction. NormalizeChecked is the recoverable form.
func Normalize(v Vec3) Vec3 {
	return Div(v, Length(v))
}

// Dot returns the dot product of v1 and v2.
func Dot(v1, v2 Vec3) float64 {
	return v1.X*v2.X + v1.Y*v2.Y + v1.Z*v2.Z
}

// Cross returns the right-handed cross product of v1 and v2. It is zero
// exactly when v1 and v2 are parallel.
func Cross(v1, v2 Vec3) Vec3 {
	return Vec3{
		X: v1.Y*v2.Z - v2.Y*v1.Z,
		Y: v1.Z*v2.X - v2.Z*v1.X,
		Z: v1.X*v2.Y - v2.X*v1.Y,
	}
}

// Reflect returns the reflection of v about the axis n. The normal is
// normalized on every call; ReflectOpt skips that cost when n is already
// unit length.
func Reflect(v, n Vec3) Vec3 {
	n = Normalize(n)
	return Scale(n, 2*Dot(n, v)).Sub(v)
}

// ReflectOpt returns the reflection of v about the axis n, which MUST
// already be unit length. The precondition is not checked: a non-unit n
// silently yields a well-formed but wrong vector. Call sites that cannot
// guarantee a normalized n should use Reflect.
func ReflectOpt(v, n Vec3) Vec3 {
	return Scale(n, 2*Dot(n, v)).Sub(v)
}

// Lerp interpolates component-wise from v1 (t = 0) to v2 (t = 1). t is
// not clamped, so values outside [0, 1] extrapolate along the same line.
func Lerp(v1, v2 Vec3, t float64) Vec3 {
	return Vec3{
		X: v1.X*(1-t) + v2.X*t,
		Y: v1.Y*(1-t) + v2.Y*t,
		Z: v1.Z*(1-t) + v2.Z*t,
	}
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Vec3) float64 {
	return Length(a.Sub(b))
}
