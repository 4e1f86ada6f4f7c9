package scene

import (
	"math"
	"math/rand"

	"github.com/kallisthenes/spectrace/pkg/core"
	"github.com/kallisthenes/spectrace/pkg/material"
)

// Quad is a planar parallelogram defined by a corner and two edge vectors,
// adapted from the teacher's axis-aligned geometry.Quad down to a single
// general plane-intersection test (no AABB/axis-alignment fast path; that
// belongs to a real acceleration structure, out of scope here).
type Quad struct {
	Corner core.Vec3
	U, V   core.Vec3
	Mat    material.Material

	normal core.Vec3
	area   float64
}

// NewQuad creates a quad spanning corner, corner+u, corner+v, corner+u+v.
func NewQuad(corner, u, v core.Vec3, mat material.Material) *Quad {
	n := u.Cross(v)
	return &Quad{
		Corner: corner,
		U:      u,
		V:      v,
		Mat:    mat,
		normal: n.Normalize(),
		area:   n.Length(),
	}
}

// Hit implements Shape.
func (q *Quad) Hit(ray core.Ray, tMin, tMax float64) (float64, core.Hit, material.Material, bool) {
	denom := q.normal.Dot(ray.Direction)
	if math.Abs(denom) < 1e-9 {
		return 0, core.Hit{}, nil, false
	}

	t := q.normal.Dot(q.Corner.Subtract(ray.Origin)) / denom
	if t < tMin || t > tMax {
		return 0, core.Hit{}, nil, false
	}

	point := ray.At(t)
	p := point.Subtract(q.Corner)

	uu := q.U.Dot(q.U)
	vv := q.V.Dot(q.V)
	uv := q.U.Dot(q.V)
	pu := p.Dot(q.U)
	pv := p.Dot(q.V)

	det := uu*vv - uv*uv
	alpha := (vv*pu - uv*pv) / det
	beta := (uu*pv - uv*pu) / det
	if alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return 0, core.Hit{}, nil, false
	}

	return t, core.NewHit(point, q.normal), q.Mat, true
}

// SamplePoint implements LightSource with uniform sampling over the quad's
// area.
func (q *Quad) SamplePoint(rng *rand.Rand) core.Hit {
	point := q.Corner.Add(q.U.Multiply(rng.Float64())).Add(q.V.Multiply(rng.Float64()))
	return core.NewHit(point, q.normal)
}

// SurfaceArea implements LightSource.
func (q *Quad) SurfaceArea() float64 {
	return q.area
}

// Material implements LightSource.
func (q *Quad) Material() material.Material {
	return q.Mat
}
