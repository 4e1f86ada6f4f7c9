package material

import (
	"math/rand"

	"github.com/kallisthenes/spectrace/pkg/core"
	"github.com/kallisthenes/spectrace/pkg/spectral"
)

// Mirror is a perfectly specular reflector: it always bounces along the
// ideal reflection direction and carries no brdf, so next-event estimation
// is skipped for it.
type Mirror struct {
	Color spectral.Value
}

// NewMirror creates a mirror material with the given spectral reflectance.
func NewMirror(color spectral.Value) *Mirror {
	return &Mirror{Color: color}
}

func (m *Mirror) Reflect(wavelengths []float64, rayIn core.Ray, hit core.Hit, rng *rand.Rand) Reflection {
	normal := orientedNormal(hit.NormalDirection, rayIn.Direction)
	dir := reflectVector(rayIn.Direction.Normalize(), normal)
	outRay := core.NewRay(hit.Origin, dir)
	return ReflectReflection(outRay, m.Color, 1, nil)
}

func (m *Mirror) Emission(wavelengths []float64, rayIn core.Ray, hit core.Hit, rng *rand.Rand) (spectral.Value, bool) {
	return nil, false
}
