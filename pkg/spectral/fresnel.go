package spectral

import (
	"math"

	"github.com/kallisthenes/spectrace/pkg/core"
)

// Fresnel evaluates the Schlick approximation to the Fresnel reflectance
// between two media, swapping the index of refraction pair (and flipping
// the normal) on a back-face hit, per spec.md §4.A.
type Fresnel struct {
	ior    Value
	envIOR Value
}

// NewFresnel builds a Fresnel node. envIOR defaults to Constant(1.0) at the
// call site when absent, per spec.md §6.
func NewFresnel(ior, envIOR Value) *Fresnel {
	return &Fresnel{ior: ior, envIOR: envIOR}
}

// Get implements Value.
func (f *Fresnel) Get(ctx RenderContext) float64 {
	normal := ctx.Normal
	incident := ctx.Incident

	if incident.Dot(normal) < 0 {
		return schlick(f.envIOR.Get(ctx), f.ior.Get(ctx), normal, incident)
	}
	return schlick(f.ior.Get(ctx), f.envIOR.Get(ctx), normal.Negate(), incident)
}

// schlick implements the Schlick approximation to the Fresnel equations.
// ref1/ref2 are the indices of refraction of the incident and transmitted
// media; normal points out of the surface on the incident side.
//
// Ported from pyrite's math::utils::schlick.
func schlick(ref1, ref2 float64, normal, incident core.Vec3) float64 {
	cosPsi := -normal.Dot(incident)
	r0 := (ref1 - ref2) / (ref1 + ref2)

	if ref1 > ref2 {
		n := ref1 / ref2
		sinT2 := n * n * (1 - cosPsi*cosPsi)
		if sinT2 > 1 {
			return 1 // total internal reflection
		}
		cosPsi = math.Sqrt(1 - sinT2)
	}

	invCos := 1 - cosPsi
	return r0*r0 + (1-r0*r0)*invCos*invCos*invCos*invCos*invCos
}
