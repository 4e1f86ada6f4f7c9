package material

import (
	"math"
	"math/rand"

	"github.com/kallisthenes/spectrace/pkg/core"
	"github.com/kallisthenes/spectrace/pkg/spectral"
)

// Glass is a dispersive dielectric: its index of refraction is a function
// of wavelength (commonly a Spectrum over a Cauchy-like table), so a single
// hit fans out into one independent specular branch per wavelength.
type Glass struct {
	IOR    spectral.Value
	EnvIOR spectral.Value
}

// NewGlass creates a dispersive glass material. envIOR may be nil, in which
// case it defaults to Constant(1) (vacuum/air).
func NewGlass(ior, envIOR spectral.Value) *Glass {
	if envIOR == nil {
		envIOR = spectral.Constant(1.0)
	}
	return &Glass{IOR: ior, EnvIOR: envIOR}
}

func (g *Glass) Reflect(wavelengths []float64, rayIn core.Ray, hit core.Hit, rng *rand.Rand) Reflection {
	branches := make([]Reflection, len(wavelengths))
	for i, wl := range wavelengths {
		branches[i] = g.reflectAt(wl, rayIn, hit, rng)
	}
	return DisperseReflection(branches)
}

func (g *Glass) Emission(wavelengths []float64, rayIn core.Ray, hit core.Hit, rng *rand.Rand) (spectral.Value, bool) {
	return nil, false
}

func (g *Glass) reflectAt(wavelength float64, rayIn core.Ray, hit core.Hit, rng *rand.Rand) Reflection {
	normal := hit.NormalDirection
	incident := rayIn.Direction.Normalize()
	ctx := spectral.RenderContext{Wavelength: wavelength, Normal: normal, Incident: incident}

	fresnel := spectral.NewFresnel(g.IOR, g.EnvIOR)
	reflectance := fresnel.Get(ctx)

	entering := incident.Dot(normal) < 0
	n := normal
	eta := g.EnvIOR.Get(ctx) / g.IOR.Get(ctx)
	if !entering {
		n = normal.Negate()
		eta = g.IOR.Get(ctx) / g.EnvIOR.Get(ctx)
	}

	var dir core.Vec3
	if rng.Float64() < reflectance {
		dir = reflectVector(incident, n)
	} else if refracted, ok := refractVector(incident, n, eta); ok {
		dir = refracted
	} else {
		dir = reflectVector(incident, n)
	}

	outRay := core.NewRay(hit.Origin, dir)
	return ReflectReflection(outRay, spectral.Constant(1), 1, nil)
}

// refractVector applies Snell's law; ok is false on total internal
// reflection.
func refractVector(uv, n core.Vec3, eta float64) (core.Vec3, bool) {
	cosTheta := math.Min(-uv.Dot(n), 1.0)
	rOutPerp := uv.Add(n.Multiply(cosTheta)).Multiply(eta)
	k := 1.0 - rOutPerp.LengthSquared()
	if k < 0 {
		return core.Vec3{}, false
	}
	rOutParallel := n.Multiply(-math.Sqrt(k))
	return rOutPerp.Add(rOutParallel), true
}
