package material

import (
	"math/rand"

	"github.com/kallisthenes/spectrace/pkg/core"
	"github.com/kallisthenes/spectrace/pkg/spectral"
)

// Iridescent is a perfectly specular reflector whose tint shifts with the
// viewing angle: the Fresnel reflectance at the hit point (a value in
// [0,1], not a wavelength) is fed through a Curve into a Spectrum-shaped
// tint table, the way a thin-film coating's apparent color shifts with
// incidence angle.
type Iridescent struct {
	Tint *spectral.Curve
}

// NewIridescent builds an iridescent mirror from an index of refraction
// pair and a tint table indexed by Fresnel reflectance rather than
// wavelength. envIOR may be nil, defaulting to Constant(1) (vacuum/air).
func NewIridescent(ior, envIOR spectral.Value, tint *spectral.Spectrum) *Iridescent {
	if envIOR == nil {
		envIOR = spectral.Constant(1.0)
	}
	fresnel := spectral.NewFresnel(ior, envIOR)
	return &Iridescent{Tint: spectral.NewCurve(fresnel, tint)}
}

func (m *Iridescent) Reflect(wavelengths []float64, rayIn core.Ray, hit core.Hit, rng *rand.Rand) Reflection {
	normal := orientedNormal(hit.NormalDirection, rayIn.Direction)
	dir := reflectVector(rayIn.Direction.Normalize(), normal)
	outRay := core.NewRay(hit.Origin, dir)
	return ReflectReflection(outRay, m.Tint, 1, nil)
}

func (m *Iridescent) Emission(wavelengths []float64, rayIn core.Ray, hit core.Hit, rng *rand.Rand) (spectral.Value, bool) {
	return nil, false
}
