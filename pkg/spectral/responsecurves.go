package spectral

// ResponseRed, ResponseGreen, and ResponseBlue are the three fixed
// reference response curves used both to evaluate Rgb values at a
// wavelength and to project the film's accumulated per-wavelength
// radiance back to RGB (spec.md §6's "Spectral constants"). They are
// process-wide read-only data, built once here rather than loaded from a
// file, since spec.md explicitly bounds this implementation to "the
// built-in piecewise-linear curves plus the fixed RGB→spectrum response"
// (no spectral upsampling beyond them).
var (
	ResponseRed   = mustSpectrum(redPoints)
	ResponseGreen = mustSpectrum(greenPoints)
	ResponseBlue  = mustSpectrum(bluePoints)
)

func mustSpectrum(points []Point) *Spectrum {
	s, err := NewSpectrum(points)
	if err != nil {
		panic(err)
	}
	return s
}

// The three curves are broad overlapping triangles spanning the visible
// range, peaking near the conventional primaries (red ~610nm, green
// ~550nm, blue ~465nm). Their sum, and so Rgb(1,1,1), is roughly flat
// (about 1.2–1.5) between 460nm and 620nm and falls off toward both ends
// of the range (0.08 at 380nm, 0.04 at 780nm).
var redPoints = []Point{
	{Wavelength: 380, Y: 0.02},
	{Wavelength: 440, Y: 0.03},
	{Wavelength: 480, Y: 0.05},
	{Wavelength: 520, Y: 0.12},
	{Wavelength: 560, Y: 0.35},
	{Wavelength: 600, Y: 0.85},
	{Wavelength: 610, Y: 1.00},
	{Wavelength: 650, Y: 0.85},
	{Wavelength: 700, Y: 0.35},
	{Wavelength: 740, Y: 0.08},
	{Wavelength: 780, Y: 0.02},
}

var greenPoints = []Point{
	{Wavelength: 380, Y: 0.01},
	{Wavelength: 440, Y: 0.05},
	{Wavelength: 480, Y: 0.35},
	{Wavelength: 520, Y: 0.85},
	{Wavelength: 550, Y: 1.00},
	{Wavelength: 580, Y: 0.85},
	{Wavelength: 620, Y: 0.35},
	{Wavelength: 660, Y: 0.10},
	{Wavelength: 700, Y: 0.03},
	{Wavelength: 780, Y: 0.01},
}

var bluePoints = []Point{
	{Wavelength: 380, Y: 0.05},
	{Wavelength: 420, Y: 0.55},
	{Wavelength: 450, Y: 0.90},
	{Wavelength: 465, Y: 1.00},
	{Wavelength: 490, Y: 0.70},
	{Wavelength: 520, Y: 0.25},
	{Wavelength: 560, Y: 0.06},
	{Wavelength: 620, Y: 0.02},
	{Wavelength: 780, Y: 0.01},
}
