package scene

import (
	"math"
	"math/rand"

	"github.com/kallisthenes/spectrace/pkg/core"
	"github.com/kallisthenes/spectrace/pkg/material"
)

// Sphere is a reference Shape/LightSource implementation, adapted from the
// teacher's BVH-backed geometry.Sphere down to a standalone quadratic
// intersection test with no acceleration structure.
type Sphere struct {
	Center core.Vec3
	Radius float64
	Mat    material.Material
}

// NewSphere creates a sphere with the given material.
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Mat: mat}
}

// Hit implements Shape.
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (float64, core.Hit, material.Material, bool) {
	oc := ray.Origin.Subtract(s.Center)
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return 0, core.Hit{}, nil, false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return 0, core.Hit{}, nil, false
		}
	}

	point := ray.At(root)
	normal := point.Subtract(s.Center).Multiply(1.0 / s.Radius)
	return root, core.NewHit(point, normal), s.Mat, true
}

// SamplePoint implements LightSource with uniform sampling over the
// sphere's surface.
func (s *Sphere) SamplePoint(rng *rand.Rand) core.Hit {
	dir := core.RandomOnUnitSphere(rng)
	point := s.Center.Add(dir.Multiply(s.Radius))
	return core.NewHit(point, dir)
}

// SurfaceArea implements LightSource.
func (s *Sphere) SurfaceArea() float64 {
	return 4 * math.Pi * s.Radius * s.Radius
}

// Material implements LightSource.
func (s *Sphere) Material() material.Material {
	return s.Mat
}
