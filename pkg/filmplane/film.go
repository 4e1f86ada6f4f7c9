package filmplane

import (
	"image"
	"image/color"
	"math"
	"math/rand"

	"github.com/anthonynsimon/bild/adjust"

	"github.com/kallisthenes/spectrace/pkg/spectral"
)

// Film is a 2D grid of pixel accumulators, generalized from the teacher's
// renderer.PixelStats grid from a single RGB running sum per pixel to a
// per-wavelength spectral accumulator (spec.md §4.B/§9).
type Film struct {
	width, height int
	pixels        []pixelAccumulator

	// VisibleMin and VisibleMax bound the uniform wavelength draw used by
	// SampleWavelength; defaults to spectral.VisibleMin/VisibleMax.
	VisibleMin, VisibleMax float64
	// Gamma is the output gamma applied by Image; 0 disables correction.
	Gamma float64
}

// NewFilm allocates a width x height film with the default visible range
// and a gamma of 2.2, the teacher's convention for vec3ToColor.
func NewFilm(width, height int) *Film {
	return &Film{
		width:      width,
		height:     height,
		pixels:     make([]pixelAccumulator, width*height),
		VisibleMin: spectral.VisibleMin,
		VisibleMax: spectral.VisibleMax,
		Gamma:      2.2,
	}
}

// Width and Height report the film's pixel dimensions.
func (f *Film) Width() int  { return f.width }
func (f *Film) Height() int { return f.height }

// SampleWavelength draws a wavelength uniformly from the film's visible
// range, the prior every uniform spectral sample is drawn against.
func (f *Film) SampleWavelength(rng *rand.Rand) float64 {
	return f.VisibleMin + rng.Float64()*(f.VisibleMax-f.VisibleMin)
}

// Expose deposits sample.Brightness*sample.Weight into the pixel at
// (x, y) using a spectral-to-RGB integration: a matmul with the same
// three response curves used for RGB inputs, scaled by the inverse of
// the uniform wavelength prior so repeated samples converge to the
// spectral integral. Non-finite contributions are discarded rather than
// poisoning the running sum.
func (f *Film) Expose(x, y int, sample Sample) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	contribution := sample.Brightness * sample.Weight
	if math.IsNaN(contribution) || math.IsInf(contribution, 0) {
		return
	}

	rangeWidth := f.VisibleMax - f.VisibleMin
	scaled := contribution * rangeWidth

	r := scaled * spectral.ResponseRed.Get(sample.Wavelength)
	g := scaled * spectral.ResponseGreen.Get(sample.Wavelength)
	b := scaled * spectral.ResponseBlue.Get(sample.Wavelength)

	px := &f.pixels[y*f.width+x]
	px.add(r, g, b, sample.Weight)
}

// Image averages each pixel's RGB sums (already projected from the
// spectrum at Expose time), clamps to displayable range, and applies gamma
// encoding via bild/adjust rather than a hand-rolled math.Pow loop.
func (f *Film) Image() *image.RGBA {
	raw := image.NewRGBA(image.Rect(0, 0, f.width, f.height))
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			r, g, b := f.pixels[y*f.width+x].average()
			r, g, b = clamp01(r), clamp01(g), clamp01(b)
			raw.SetRGBA(x, y, rgba8(r, g, b))
		}
	}

	if f.Gamma <= 0 {
		return raw
	}
	return adjust.Gamma(raw, f.Gamma)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func rgba8(r, g, b float64) color.RGBA {
	return color.RGBA{
		R: uint8(255 * r),
		G: uint8(255 * g),
		B: uint8(255 * b),
		A: 255,
	}
}
