package spectral

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/kallisthenes/spectrace/pkg/core"
)

func TestSchlickSymmetry(t *testing.T) {
	// property 3, spec.md §8: entering a denser medium and tracing the same
	// light path backward out of it (indices swapped, normal flipped, the
	// incident ray being the reversed transmitted ray) give the same
	// reflectance when there is no total internal reflection.
	normal := core.NewVec3(0, 0, 1)
	incident := core.NewVec3(0.3, 0, -0.95).Normalize()

	eta := 1.0 / 1.5
	cosI := -normal.Dot(incident)
	transmitted := incident.Multiply(eta).Add(normal.Multiply(eta*cosI - math.Sqrt(1-eta*eta*(1-cosI*cosI))))

	a := schlick(1.0, 1.5, normal, incident)
	b := schlick(1.5, 1.0, normal.Negate(), transmitted.Negate())

	require.InDelta(t, a, b, 1e-9)
}

func TestFresnelBackfaceSwapsIOR(t *testing.T) {
	ior := Constant(1.5)
	envIOR := Constant(1.0)
	f := NewFresnel(ior, envIOR)

	normal := core.NewVec3(0, 0, 1)

	front := f.Get(RenderContext{Normal: normal, Incident: core.NewVec3(0, 0, -1)})
	back := f.Get(RenderContext{Normal: normal, Incident: core.NewVec3(0, 0, 1)})

	require.GreaterOrEqual(t, front, 0.0)
	require.GreaterOrEqual(t, back, 0.0)
}

func TestFresnelTotalInternalReflection(t *testing.T) {
	// A steep grazing angle exiting a denser medium triggers TIR, which
	// must return reflectance 1 rather than a complex/NaN value.
	ior := Constant(1.5)
	envIOR := Constant(1.0)
	f := NewFresnel(ior, envIOR)

	normal := core.NewVec3(0, 0, 1)
	incident := core.NewVec3(0.999, 0, 0.045) // nearly grazing, exiting

	got := f.Get(RenderContext{Normal: normal, Incident: incident})
	require.Equal(t, 1.0, got)
}
