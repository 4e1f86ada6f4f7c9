package spectral

// projectionSamples is the trapezoid resolution used to numerically
// integrate against the response curves; the visible range is 400nm wide,
// so this is roughly 1 sample per nanometer.
const projectionSamples = 400

// ProjectRGB numerically integrates f(wavelength) against the three
// reference response curves over the visible range, normalizing each by
// the curve's self-overlap integral so that projecting a response curve
// onto itself reproduces exactly 1. This is the reverse of Rgb's
// r·R(λ) + g·G(λ) + b·B(λ) construction, turning a whole spectrum back
// into a color. The film does not call it: filmplane projects each
// sample through the response curves itself at Expose time.
func ProjectRGB(f func(wavelength float64) float64) (r, g, b float64) {
	r = integrateProduct(f, ResponseRed.Get, VisibleMin, VisibleMax, projectionSamples) / redNorm
	g = integrateProduct(f, ResponseGreen.Get, VisibleMin, VisibleMax, projectionSamples) / greenNorm
	b = integrateProduct(f, ResponseBlue.Get, VisibleMin, VisibleMax, projectionSamples) / blueNorm
	return r, g, b
}

var (
	redNorm   = integrateProduct(ResponseRed.Get, ResponseRed.Get, VisibleMin, VisibleMax, projectionSamples)
	greenNorm = integrateProduct(ResponseGreen.Get, ResponseGreen.Get, VisibleMin, VisibleMax, projectionSamples)
	blueNorm  = integrateProduct(ResponseBlue.Get, ResponseBlue.Get, VisibleMin, VisibleMax, projectionSamples)
)

func integrateProduct(f, g func(float64) float64, min, max float64, n int) float64 {
	width := (max - min) / float64(n)
	var sum float64
	prev := f(min) * g(min)
	for i := 1; i <= n; i++ {
		wl := min + float64(i)*width
		cur := f(wl) * g(wl)
		sum += (prev + cur) / 2 * width
		prev = cur
	}
	return sum
}
