package spectral

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildConstant(t *testing.T) {
	v, err := Build(Number(2.5))
	require.NoError(t, err)
	require.Equal(t, 2.5, v.Get(RenderContext{}))
}

func TestBuildRejectsBoolean(t *testing.T) {
	_, err := Build(Boolean(true))
	require.Error(t, err)
}

func TestBuildRejectsVectorWithVariantName(t *testing.T) {
	expr := Complex(ComplexExpression{Kind: ExprVector, Vector: &VectorExpr{X: 1}})
	_, err := Build(expr)
	require.ErrorContains(t, err, "vectors cannot be used in this context")
}

func TestBuildRejectsLightSourceAndTexture(t *testing.T) {
	_, err := Build(Complex(ComplexExpression{Kind: ExprLightSource}))
	require.ErrorContains(t, err, "light sources cannot be used in this context")

	_, err = Build(Complex(ComplexExpression{Kind: ExprTexture}))
	require.ErrorContains(t, err, "textures cannot be used in this context")
}

func TestBuildAddSubMulDiv(t *testing.T) {
	bin := func(kind ComplexExpressionKind, a, b float64) Expression {
		return Complex(ComplexExpression{Kind: kind, Binary: &BinaryExpr{A: Number(a), B: Number(b)}})
	}

	ctx := RenderContext{}
	v, err := Build(bin(ExprAdd, 2, 3))
	require.NoError(t, err)
	require.Equal(t, 5.0, v.Get(ctx))

	v, err = Build(bin(ExprMul, 2, 3))
	require.NoError(t, err)
	require.Equal(t, 6.0, v.Get(ctx))
}

func TestBuildMixClampsAtEvaluationNotConstruction(t *testing.T) {
	expr := Complex(ComplexExpression{
		Kind: ExprMix,
		Mix: &MixExpr{
			A:      Number(0),
			B:      Number(10),
			Factor: Number(5), // out of [0,1] — must still build successfully
		},
	})

	v, err := Build(expr)
	require.NoError(t, err, "Mix.factor is clamped at evaluation, not construction (spec.md §6)")
	require.Equal(t, 10.0, v.Get(RenderContext{}))
}

func TestBuildFresnelDefaultsEnvIOR(t *testing.T) {
	expr := Complex(ComplexExpression{
		Kind:    ExprFresnel,
		Fresnel: &FresnelExpr{IOR: Number(1.5)},
	})

	v, err := Build(expr)
	require.NoError(t, err)

	f, ok := v.(*Fresnel)
	require.True(t, ok)
	require.Equal(t, 1.0, f.envIOR.Get(RenderContext{}))
}

func TestBuildSpectrumPropagatesFieldPath(t *testing.T) {
	expr := Complex(ComplexExpression{
		Kind:     ExprSpectrum,
		Spectrum: &SpectrumExpr{Points: []Point{{500, 1}, {400, 0}}},
	})

	_, err := Build(expr)
	require.ErrorContains(t, err, "points:")
}

func TestBuildRgb(t *testing.T) {
	expr := Complex(ComplexExpression{Kind: ExprRgb, Rgb: &RgbExpr{R: 1}})
	v, err := Build(expr)
	require.NoError(t, err)

	got := v.Get(RenderContext{Wavelength: ResponseRed.points[6].Wavelength})
	require.Greater(t, got, 0.0)
}
