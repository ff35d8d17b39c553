package linalg

import "math/rand"

// RandInUnitCube returns a vector whose components are independent
// uniform draws from [-1, 1]. It uses math/rand's shared source, whose
// locking makes the samplers safe for concurrent use.
func RandInUnitCube() Vec3 {
	return Vec3{
		X: 2*rand.Float64() - 1,
		Y: 2*rand.Float64() - 1,
		Z: 2*rand.Float64() - 1,
	}
}

// RandOnUnitSphere returns a uniformly distributed unit vector. It draws
// from the unit cube until a sample lands inside the unit ball, then
// divides the sample by its own length. The retry loop is unbounded: a
// draw is accepted with probability pi/6, so it terminates almost surely
// after ~1.9 attempts on average.
func RandOnUnitSphere() Vec3 {
	for {
		a := RandInUnitCube()
		l := Length(a)
		if l < 1 {
			return Div(a, l)
		}
	}
}

// RandInUnitDisk returns a vector uniformly distributed in the unit disk
// on the z = 0 plane.
func RandInUnitDisk() Vec3 {
	for {
		p := Vec3{
			X: 2*rand.Float64() - 1,
			Y: 2*rand.Float64() - 1,
		}
		if LengthSq(p) < 1 {
			return p
		}
	}
}

// RandOnHemisphere returns a uniformly distributed unit vector in the
// hemisphere around n, flipping sphere samples that point away from it.
func RandOnHemisphere(n Vec3) Vec3 {
	p := RandOnUnitSphere()
	if Dot(p, n) > 0 {
		return p
	}
	return p.Neg()
}
