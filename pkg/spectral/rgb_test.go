package spectral

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// E5: evaluating Rgb(1,0,0) over the visible range and projecting it back
// through the same response curves reproduces (1,0,0) to within the
// basis's reconstruction error. The matching channel is exactly
// recoverable by construction (a curve dotted with itself, normalized by
// its own self-overlap integral, is 1 regardless of its shape); the other
// two channels pick up whatever leakage the curves' overlap introduces,
// so they're bounded loosely rather than pinned to zero.
func TestRgbRoundTripRed(t *testing.T) {
	red := Rgb{R: 1}
	r, g, b := ProjectRGB(func(wl float64) float64 { return red.Get(RenderContext{Wavelength: wl}) })

	require.InDelta(t, 1.0, r, 0.02)
	require.GreaterOrEqual(t, g, 0.0)
	require.GreaterOrEqual(t, b, 0.0)
	require.Less(t, g, r)
	require.Less(t, b, r)
}

func TestRgbRoundTripGreen(t *testing.T) {
	green := Rgb{G: 1}
	r, g, b := ProjectRGB(func(wl float64) float64 { return green.Get(RenderContext{Wavelength: wl}) })

	require.InDelta(t, 1.0, g, 0.02)
	require.Less(t, r, g)
	require.Less(t, b, g)
}

func TestRgbRoundTripBlue(t *testing.T) {
	blue := Rgb{B: 1}
	r, g, b := ProjectRGB(func(wl float64) float64 { return blue.Get(RenderContext{Wavelength: wl}) })

	require.InDelta(t, 1.0, b, 0.02)
	require.Less(t, r, b)
	require.Less(t, g, b)
}

// White reconstructs to roughly equal, near-unit channels since the three
// curves are authored to sum to a near-flat response.
func TestRgbRoundTripWhiteIsApproximatelyBalanced(t *testing.T) {
	white := Rgb{R: 1, G: 1, B: 1}
	r, g, b := ProjectRGB(func(wl float64) float64 { return white.Get(RenderContext{Wavelength: wl}) })

	require.InDelta(t, r, g, 0.5)
	require.InDelta(t, g, b, 0.5)
	require.InDelta(t, r, b, 0.5)
}
