package spectral

// Curve evaluates input, then looks the result up in a Spectrum-shaped
// table — e.g. mapping a Fresnel term through a tinted reflectance curve.
type Curve struct {
	input  Value
	lookup *Spectrum
}

// NewCurve builds a Curve node from an already-evaluated input node and a
// lookup table.
func NewCurve(input Value, lookup *Spectrum) *Curve {
	return &Curve{input: input, lookup: lookup}
}

// Get implements Value.
func (c *Curve) Get(ctx RenderContext) float64 {
	return c.lookup.Get(c.input.Get(ctx))
}
