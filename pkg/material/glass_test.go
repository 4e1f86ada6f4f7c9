package material

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kallisthenes/spectrace/pkg/core"
	"github.com/kallisthenes/spectrace/pkg/spectral"
)

func TestGlassFansOutIntoOneBranchPerWavelength(t *testing.T) {
	g := NewGlass(spectral.Constant(1.5), nil)
	hit := core.NewHit(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))
	rayIn := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0.1, -1, 0).Normalize())

	wavelengths := []float64{450, 550, 650}
	refl := g.Reflect(wavelengths, rayIn, hit, rand.New(rand.NewSource(3)))

	require.Equal(t, Disperse, refl.Kind)
	require.Len(t, refl.Branches, len(wavelengths))
	for _, b := range refl.Branches {
		require.Equal(t, Reflect, b.Kind)
		require.Nil(t, b.BRDF)
	}
}

func TestGlassDoesNotEmit(t *testing.T) {
	g := NewGlass(spectral.Constant(1.5), nil)
	_, ok := g.Emission(nil, core.Ray{}, core.Hit{}, nil)
	require.False(t, ok)
}

func TestGlassDefaultsEnvIORToOne(t *testing.T) {
	g := NewGlass(spectral.Constant(1.5), nil)
	require.Equal(t, 1.0, g.EnvIOR.Get(spectral.RenderContext{}))
}
