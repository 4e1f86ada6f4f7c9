package spectral

// Rgb is a linear-space RGB triple reprojected into the wavelength domain
// by dotting with the three fixed reference response curves.
type Rgb struct {
	R, G, B float64
}

// Get implements Value: r·R(λ) + g·G(λ) + b·B(λ).
func (c Rgb) Get(ctx RenderContext) float64 {
	return c.R*ResponseRed.Get(ctx.Wavelength) +
		c.G*ResponseGreen.Get(ctx.Wavelength) +
		c.B*ResponseBlue.Get(ctx.Wavelength)
}
