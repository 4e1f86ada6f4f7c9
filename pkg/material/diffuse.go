package material

import (
	"math"
	"math/rand"

	"github.com/kallisthenes/spectrace/pkg/core"
	"github.com/kallisthenes/spectrace/pkg/spectral"
)

// Diffuse is a perfectly Lambertian material: it scatters incoming light
// uniformly over the hemisphere, weighted by Color.
type Diffuse struct {
	Color spectral.Value
}

// NewDiffuse creates a diffuse material with the given spectral albedo.
func NewDiffuse(color spectral.Value) *Diffuse {
	return &Diffuse{Color: color}
}

// Reflect samples a cosine-weighted direction and pairs it with a brdf
// that bakes in the outgoing cosine, so the cosine-weighted sampling
// density and the brdf's cosine term cancel: throughput updates by exactly
// Color, independent of the sampled direction.
func (d *Diffuse) Reflect(wavelengths []float64, rayIn core.Ray, hit core.Hit, rng *rand.Rand) Reflection {
	normal := orientedNormal(hit.NormalDirection, rayIn.Direction)
	dir := core.RandomCosineDirection(normal, rng)

	cosOut := normal.Dot(dir)
	if cosOut <= 0 {
		cosOut = 1e-7
	}
	scale := math.Pi / cosOut

	outRay := core.NewRay(hit.Origin, dir)
	return ReflectReflection(outRay, d.Color, scale, lambertianBRDF)
}

// Emission: diffuse surfaces do not emit.
func (d *Diffuse) Emission(wavelengths []float64, rayIn core.Ray, hit core.Hit, rng *rand.Rand) (spectral.Value, bool) {
	return nil, false
}

func lambertianBRDF(incomingDir, normal, outgoingDir core.Vec3) float64 {
	cosOut := normal.Dot(outgoingDir)
	if cosOut < 0 {
		cosOut = 0
	}
	return cosOut / math.Pi
}
