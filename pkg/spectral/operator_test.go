package spectral

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOperatorPurity(t *testing.T) {
	ctx := RenderContext{Wavelength: 510}
	a, b := Constant(3), Constant(5)

	require.Equal(t, 8.0, Add(a, b).Get(ctx))
	require.Equal(t, -2.0, Sub(a, b).Get(ctx))
	require.Equal(t, 15.0, Mul(a, b).Get(ctx))
	require.Equal(t, 0.6, Div(a, b).Get(ctx))
}

func TestMixClampsFactor(t *testing.T) {
	ctx := RenderContext{Wavelength: 510}
	a, b := Constant(0), Constant(10)

	require.Equal(t, Mix(a, b, Constant(0.5)).Get(ctx), Mix(a, b, Constant(0.5)).Get(ctx))
	require.Equal(t, Mix(a, b, Constant(1)).Get(ctx), Mix(a, b, Constant(5)).Get(ctx))
	require.Equal(t, Mix(a, b, Constant(0)).Get(ctx), Mix(a, b, Constant(-5)).Get(ctx))
	require.Equal(t, 10.0, Mix(a, b, Constant(5)).Get(ctx))
	require.Equal(t, 0.0, Mix(a, b, Constant(-5)).Get(ctx))
}
