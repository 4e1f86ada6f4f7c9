package spectral

// Build translates an Expression into a Value graph, rejecting any Complex
// variant that has no numeric meaning (Vector, LightSource, Texture) with
// an error naming the variant, per spec.md §6.
func Build(expr Expression) (Value, error) {
	switch expr.kind {
	case exprNumber:
		return Constant(expr.number), nil
	case exprBoolean:
		return nil, errBoolean
	case exprComplex:
		return buildComplex(*expr.complex)
	default:
		return nil, errBadType
	}
}

func buildComplex(c ComplexExpression) (Value, error) {
	switch c.Kind {
	case ExprAdd:
		return buildBinary(c.Binary, Add)
	case ExprSub:
		return buildBinary(c.Binary, Sub)
	case ExprMul:
		return buildBinary(c.Binary, Mul)
	case ExprDiv:
		return buildBinary(c.Binary, Div)
	case ExprMix:
		return buildMix(c.Mix)
	case ExprFresnel:
		return buildFresnel(c.Fresnel)
	case ExprSpectrum:
		return buildSpectrum(c.Spectrum)
	case ExprRgb:
		return buildRgb(c.Rgb)
	case ExprVector:
		return nil, rejected(ExprVector.String())
	case ExprLightSource:
		return nil, rejected(ExprLightSource.String())
	case ExprTexture:
		return nil, rejected(ExprTexture.String())
	default:
		return nil, errNoDecoder
	}
}

func buildBinary(b *BinaryExpr, make func(a, b Value) Value) (Value, error) {
	if b == nil {
		return nil, errEmpty
	}
	a, err := Build(b.A)
	if err != nil {
		return nil, wrapPath("a", err)
	}
	bb, err := Build(b.B)
	if err != nil {
		return nil, wrapPath("b", err)
	}
	return make(a, bb), nil
}

func buildMix(m *MixExpr) (Value, error) {
	if m == nil {
		return nil, errEmpty
	}
	a, err := Build(m.A)
	if err != nil {
		return nil, wrapPath("a", err)
	}
	b, err := Build(m.B)
	if err != nil {
		return nil, wrapPath("b", err)
	}
	f, err := Build(m.Factor)
	if err != nil {
		return nil, wrapPath("factor", err)
	}
	return Mix(a, b, f), nil
}

func buildFresnel(f *FresnelExpr) (Value, error) {
	if f == nil {
		return nil, errEmpty
	}
	ior, err := Build(f.IOR)
	if err != nil {
		return nil, wrapPath("ior", err)
	}

	var envIOR Value = Constant(1.0)
	if f.EnvIOR != nil {
		envIOR, err = Build(*f.EnvIOR)
		if err != nil {
			return nil, wrapPath("env_ior", err)
		}
	}

	return NewFresnel(ior, envIOR), nil
}

func buildSpectrum(s *SpectrumExpr) (Value, error) {
	if s == nil {
		return nil, errEmpty
	}
	spectrum, err := NewSpectrum(s.Points)
	if err != nil {
		return nil, wrapPath("points", err)
	}
	return spectrumValue{spectrum}, nil
}

// spectrumValue adapts *Spectrum (whose Get takes a wavelength) to Value
// (whose Get takes a RenderContext).
type spectrumValue struct {
	*Spectrum
}

func (s spectrumValue) Get(ctx RenderContext) float64 {
	return s.Spectrum.Get(ctx.Wavelength)
}

func buildRgb(r *RgbExpr) (Value, error) {
	if r == nil {
		return nil, errEmpty
	}
	return Rgb{R: r.R, G: r.G, B: r.B}, nil
}
