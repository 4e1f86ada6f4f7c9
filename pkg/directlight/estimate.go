// Package directlight implements next-event estimation: sampling emitters
// directly at a scattering vertex rather than waiting for a bounce to find
// them by chance.
package directlight

import (
	"math"
	"math/rand"

	"github.com/kallisthenes/spectrace/pkg/core"
	"github.com/kallisthenes/spectrace/pkg/material"
	"github.com/kallisthenes/spectrace/pkg/scene"
	"github.com/kallisthenes/spectrace/pkg/spectral"
)

// distEpsilon is the shadow-ray acceptance slack, named after pyrite's
// DIST_EPSILON: a shadow ray's first hit counts as "reaching the light" if
// it lands within this fraction of the light distance, absorbing floating
// point error in the intersection test.
const distEpsilon = 1e-7

// Estimate samples one light uniformly, draws `samples` points on it, and
// returns the accumulated direct-light contribution for each wavelength in
// wavelengths (same order, same length). Returns an all-zero slice if
// world.Lights is empty.
func Estimate(rng *rand.Rand, samples int, wavelengths []float64, rayIn core.Ray, hit core.Hit, world scene.World, brdf material.BRDF) []float64 {
	sum := make([]float64, len(wavelengths))

	if len(world.Lights) == 0 {
		return sum
	}

	normal := hit.NormalDirection
	if rayIn.Direction.Dot(normal) >= 0 {
		normal = normal.Negate()
	}
	shadingPoint := core.NewHit(hit.Origin, normal)

	light := world.Lights[rng.Intn(len(world.Lights))]
	weight := light.SurfaceArea() * float64(len(world.Lights)) / (float64(samples) * 2 * math.Pi)

	for i := 0; i < samples; i++ {
		lightPoint := light.SamplePoint(rng)

		toLight := lightPoint.Origin.Subtract(shadingPoint.Origin)
		distSquared := toLight.LengthSquared()
		dir := toLight.Normalize()
		shadowRay := core.NewRay(shadingPoint.Origin, dir)

		cosOut := math.Max(0, shadingPoint.NormalDirection.Dot(dir))
		if cosOut <= 0 {
			continue
		}
		cosIn := math.Abs(lightPoint.NormalDirection.Dot(dir.Negate()))

		emission, ok := light.Material().Emission(wavelengths, shadowRay, lightPoint, rng)
		if !ok {
			continue
		}

		if !unoccluded(world, shadowRay, shadingPoint.Origin, distSquared) {
			continue
		}

		scale := weight * cosIn * brdf(rayIn.Direction, shadingPoint.NormalDirection, dir) / distSquared
		for wi, wl := range wavelengths {
			ctx := buildContext(wl, lightPoint.NormalDirection, dir)
			sum[wi] += emission.Get(ctx) * scale
		}
	}

	return sum
}

func buildContext(wavelength float64, normal, incident core.Vec3) spectral.RenderContext {
	return spectral.RenderContext{Wavelength: wavelength, Normal: normal, Incident: incident}
}

func unoccluded(world scene.World, shadowRay core.Ray, from core.Vec3, distSquared float64) bool {
	hit, _, ok := world.Intersect(shadowRay)
	if !ok {
		return true
	}
	hitDistSquared := hit.Origin.Subtract(from).LengthSquared()
	return hitDistSquared >= distSquared-distEpsilon*distSquared
}
