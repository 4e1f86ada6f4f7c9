// Package material describes how surfaces reflect and emit light.
//
// It defines only the shape of the protocol between a surface and the path
// tracer: the Material interface and the Reflection sum type. Concrete
// materials (Diffuse, Mirror, Glass, Emissive) are built-ins; user-defined
// materials need only satisfy the interface.
package material

import (
	"math/rand"

	"github.com/kallisthenes/spectrace/pkg/core"
	"github.com/kallisthenes/spectrace/pkg/spectral"
)

// BRDF scores a specific (incoming, normal, outgoing) direction triple. It
// is shared between the direct-lighting estimator and the path tracer's
// indirect throughput update, so its return value already folds in the
// outgoing cosine term — callers never multiply by cos_out separately.
type BRDF func(incomingDir, normal, outgoingDir core.Vec3) float64

// Material mediates between a surface and the tracer.
type Material interface {
	// Reflect describes how the surface handles an incoming ray at hit,
	// for the given set of candidate wavelengths.
	Reflect(wavelengths []float64, rayIn core.Ray, hit core.Hit, rng *rand.Rand) Reflection

	// Emission returns the surface's emitted radiance as a function of
	// wavelength, if this material emits light at all. Queried by the
	// direct-lighting estimator when this surface is sampled as a light.
	Emission(wavelengths []float64, rayIn core.Ray, hit core.Hit, rng *rand.Rand) (spectral.Value, bool)
}
