package material

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kallisthenes/spectrace/pkg/core"
	"github.com/kallisthenes/spectrace/pkg/spectral"
)

func TestDiffuseThroughputIsAlbedoIndependentOfDirection(t *testing.T) {
	d := NewDiffuse(spectral.Constant(0.8))
	hit := core.NewHit(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))
	rayIn := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0.3, -1, 0).Normalize())

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		refl := d.Reflect([]float64{550}, rayIn, hit, rng)
		require.Equal(t, Reflect, refl.Kind)
		require.NotNil(t, refl.BRDF)

		ctx := spectral.RenderContext{Wavelength: 550}
		throughput := refl.Color.Get(ctx) * refl.Scale * refl.BRDF(rayIn.Direction, hit.NormalDirection, refl.OutRay.Direction)
		require.InDelta(t, 0.8, throughput, 1e-9)
	}
}

func TestDiffuseScattersIntoUpperHemisphere(t *testing.T) {
	d := NewDiffuse(spectral.Constant(1))
	hit := core.NewHit(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))
	rayIn := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	rng := rand.New(rand.NewSource(7))
	refl := d.Reflect([]float64{500}, rayIn, hit, rng)
	require.Greater(t, refl.OutRay.Direction.Dot(hit.NormalDirection), 0.0)
}

func TestDiffuseDoesNotEmit(t *testing.T) {
	d := NewDiffuse(spectral.Constant(1))
	_, ok := d.Emission(nil, core.Ray{}, core.Hit{}, nil)
	require.False(t, ok)
}
