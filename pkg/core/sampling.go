package core

import (
	"math"
	"math/rand"
)

// ortho returns an arbitrary vector orthogonal to v. Ported from pyrite's
// math::utils::ortho, which special-cases near-axis-aligned vectors to
// avoid a degenerate cross product.
func ortho(v Vec3) Vec3 {
	const eps = 0.0001
	var unit Vec3
	switch {
	case math.Abs(v.X) < eps:
		unit = NewVec3(1, 0, 0)
	case math.Abs(v.Y) < eps:
		unit = NewVec3(0, 1, 0)
	case math.Abs(v.Z) < eps:
		unit = NewVec3(0, 0, 1)
	default:
		unit = NewVec3(-v.Y, v.X, 0)
	}
	return v.Cross(unit)
}

// RandomCosineDirection draws a cosine-weighted direction in the hemisphere
// around normal, used by Lambertian-style reflectance.
func RandomCosineDirection(normal Vec3, rng *rand.Rand) Vec3 {
	o1 := ortho(normal).Normalize()
	o2 := normal.Cross(o1).Normalize()

	r1 := rng.Float64()
	r2 := rng.Float64()
	phi := 2 * math.Pi * r1
	cosTheta := math.Sqrt(1 - r2)
	sinTheta := math.Sqrt(r2)

	dir := o1.Multiply(sinTheta * math.Cos(phi)).
		Add(o2.Multiply(sinTheta * math.Sin(phi))).
		Add(normal.Multiply(cosTheta))
	return dir.Normalize()
}

// RandomOnUnitSphere draws a direction uniformly distributed over the unit
// sphere, used for sampling points on spherical light sources.
func RandomOnUnitSphere(rng *rand.Rand) Vec3 {
	u := rng.Float64()
	v := rng.Float64()
	theta := 2 * math.Pi * u
	phi := math.Acos(2*v - 1)
	return NewVec3(
		math.Sin(phi)*math.Cos(theta),
		math.Sin(phi)*math.Sin(theta),
		math.Cos(phi),
	)
}
