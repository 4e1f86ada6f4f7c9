package material

import (
	"math/rand"

	"github.com/kallisthenes/spectrace/pkg/core"
	"github.com/kallisthenes/spectrace/pkg/spectral"
)

// Emissive is a light-emitting material. By default it terminates the path
// it is hit by (Emit); setting PassThrough makes it instead return
// Reflect{scale: 0}, which still ends the path's throughput contribution
// but goes through the tracer's ordinary bounce bookkeeping rather than its
// short-circuit return.
type Emissive struct {
	Color       spectral.Value
	PassThrough bool
}

// NewEmissive creates an emissive material with the given spectral
// radiance.
func NewEmissive(color spectral.Value) *Emissive {
	return &Emissive{Color: color}
}

func (e *Emissive) Reflect(wavelengths []float64, rayIn core.Ray, hit core.Hit, rng *rand.Rand) Reflection {
	if e.PassThrough {
		outRay := core.NewRay(hit.Origin, rayIn.Direction)
		return ReflectReflection(outRay, spectral.Constant(0), 0, nil)
	}
	return EmitReflection(e.Color)
}

func (e *Emissive) Emission(wavelengths []float64, rayIn core.Ray, hit core.Hit, rng *rand.Rand) (spectral.Value, bool) {
	return e.Color, true
}
