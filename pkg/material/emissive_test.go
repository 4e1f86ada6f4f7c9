package material

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kallisthenes/spectrace/pkg/core"
	"github.com/kallisthenes/spectrace/pkg/spectral"
)

func TestEmissiveEmitsAndTerminatesByDefault(t *testing.T) {
	e := NewEmissive(spectral.Constant(2.0))

	refl := e.Reflect(nil, core.Ray{}, core.Hit{}, nil)
	require.Equal(t, Emit, refl.Kind)
	require.Equal(t, 2.0, refl.Color.Get(spectral.RenderContext{}))

	color, ok := e.Emission(nil, core.Ray{}, core.Hit{}, nil)
	require.True(t, ok)
	require.Equal(t, 2.0, color.Get(spectral.RenderContext{}))
}

func TestEmissivePassThroughReturnsZeroScaleReflect(t *testing.T) {
	e := NewEmissive(spectral.Constant(2.0))
	e.PassThrough = true

	refl := e.Reflect(nil, core.Ray{}, core.Hit{}, nil)
	require.Equal(t, Reflect, refl.Kind)
	require.Equal(t, 0.0, refl.Scale)
}
