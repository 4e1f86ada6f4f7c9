package filmplane

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSampleWavelengthStaysInRange(t *testing.T) {
	f := NewFilm(1, 1)
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		wl := f.SampleWavelength(rng)
		require.GreaterOrEqual(t, wl, f.VisibleMin)
		require.LessOrEqual(t, wl, f.VisibleMax)
	}
}

func TestExposeAccumulatesAcrossSamples(t *testing.T) {
	f := NewFilm(2, 2)
	f.Expose(0, 0, Sample{Wavelength: 610, Brightness: 1, Weight: 1})
	f.Expose(0, 0, Sample{Wavelength: 610, Brightness: 1, Weight: 1})

	r, _, _ := f.pixels[0].average()
	require.Greater(t, r, 0.0)
}

func TestExposeDiscardsNonFiniteContributions(t *testing.T) {
	f := NewFilm(1, 1)
	f.Expose(0, 0, Sample{Wavelength: 550, Brightness: math.NaN(), Weight: 1})
	f.Expose(0, 0, Sample{Wavelength: 550, Brightness: math.Inf(1), Weight: 1})

	r, g, b := f.pixels[0].average()
	require.Equal(t, 0.0, r)
	require.Equal(t, 0.0, g)
	require.Equal(t, 0.0, b)
}

func TestExposeIgnoresOutOfBoundsPixels(t *testing.T) {
	f := NewFilm(1, 1)
	require.NotPanics(t, func() {
		f.Expose(-1, 0, Sample{Wavelength: 550, Brightness: 1, Weight: 1})
		f.Expose(0, 5, Sample{Wavelength: 550, Brightness: 1, Weight: 1})
	})
}

func TestImageProducesOpaquePixels(t *testing.T) {
	f := NewFilm(3, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			f.Expose(x, y, Sample{Wavelength: 550, Brightness: 1, Weight: 1})
		}
	}

	img := f.Image()
	require.Equal(t, 3, img.Bounds().Dx())
	require.Equal(t, 3, img.Bounds().Dy())
	_, _, _, a := img.At(1, 1).RGBA()
	require.Equal(t, uint32(0xffff), a)
}

func TestImageWithoutGammaSkipsCorrection(t *testing.T) {
	f := NewFilm(1, 1)
	f.Gamma = 0
	f.Expose(0, 0, Sample{Wavelength: 550, Brightness: 0.5, Weight: 1})

	img := f.Image()
	require.NotNil(t, img)
}
