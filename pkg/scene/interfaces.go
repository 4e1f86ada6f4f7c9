// Package scene adapts a concrete geometry/camera implementation to the
// narrow read-only surface the path tracer needs: intersect, light list,
// and sky. Real scene-file parsing, camera-ray generation for arbitrary
// lens models, and BVH/BKD-tree acceleration live outside this package;
// the interfaces here are the seam a full implementation plugs into.
package scene

import (
	"math/rand"

	"github.com/kallisthenes/spectrace/pkg/core"
	"github.com/kallisthenes/spectrace/pkg/material"
	"github.com/kallisthenes/spectrace/pkg/spectral"
)

// Intersector finds the nearest surface a ray hits.
type Intersector interface {
	Intersect(ray core.Ray) (core.Hit, material.Material, bool)
}

// LightSource is any scene shape whose material is emissive.
type LightSource interface {
	SamplePoint(rng *rand.Rand) core.Hit
	SurfaceArea() float64
	Material() material.Material
}

// Camera generates camera rays toward a pixel. Lens models, depth of
// field, and projection are an external collaborator's concern; this
// interface is the seam the tracer calls through.
type Camera interface {
	RayTowards(pixelX, pixelY float64, rng *rand.Rand) core.Ray
}

// Sky supplies radiance for rays that miss every object.
type Sky interface {
	Color(direction core.Vec3) spectral.Value
}

// World bundles the read-only scene surface the path tracer consumes.
// Immutable for the duration of a render, so it is safe to share across
// worker goroutines without synchronization.
type World struct {
	Sky     Sky
	Lights  []LightSource
	Objects Intersector
}

// Intersect finds the nearest surface a ray hits.
func (w World) Intersect(ray core.Ray) (core.Hit, material.Material, bool) {
	return w.Objects.Intersect(ray)
}
