package spectral

// Expression is the declarative scene input handed to this package by the
// (out-of-scope) configuration/expression loader: a small tree of numbers,
// booleans, and "complex" nodes that Build translates into a Value graph.
//
// Expression is a closed sum type, encoded the way the rest of this
// codebase encodes sum types: a tagged struct rather than an interface,
// since every variant is known in advance and none carries behavior of its
// own — only data for Build to interpret.
type Expression struct {
	kind    expressionKind
	number  float64
	boolean bool
	complex *ComplexExpression
}

type expressionKind int

const (
	exprNumber expressionKind = iota
	exprBoolean
	exprComplex
)

// Number builds a numeric Expression leaf.
func Number(n float64) Expression { return Expression{kind: exprNumber, number: n} }

// Boolean builds a boolean Expression leaf. Booleans are accepted by the
// grammar but always rejected wherever a numeric value is required.
func Boolean(b bool) Expression { return Expression{kind: exprBoolean, boolean: b} }

// Complex wraps a ComplexExpression as an Expression.
func Complex(c ComplexExpression) Expression { return Expression{kind: exprComplex, complex: &c} }

// ComplexExpressionKind tags which variant a ComplexExpression holds.
type ComplexExpressionKind int

const (
	ExprVector ComplexExpressionKind = iota
	ExprFresnel
	ExprLightSource
	ExprSpectrum
	ExprRgb
	ExprTexture
	ExprAdd
	ExprSub
	ExprMul
	ExprDiv
	ExprMix
)

func (k ComplexExpressionKind) String() string {
	switch k {
	case ExprVector:
		return "vectors"
	case ExprFresnel:
		return "Fresnel"
	case ExprLightSource:
		return "light sources"
	case ExprSpectrum:
		return "spectra"
	case ExprRgb:
		return "RGB"
	case ExprTexture:
		return "textures"
	case ExprAdd:
		return "addition"
	case ExprSub:
		return "subtraction"
	case ExprMul:
		return "multiplication"
	case ExprDiv:
		return "division"
	case ExprMix:
		return "mix"
	default:
		return "expression"
	}
}

// BinaryExpr holds the two operands of Add/Sub/Mul/Div.
type BinaryExpr struct {
	A, B Expression
}

// MixExpr holds the two operands and blend factor of Mix.
type MixExpr struct {
	A, B, Factor Expression
}

// FresnelExpr holds a Fresnel node's index-of-refraction expressions.
// EnvIOR is nil when absent; Build defaults it to Constant(1.0).
type FresnelExpr struct {
	IOR    Expression
	EnvIOR *Expression
}

// SpectrumExpr holds a Spectrum node's control points.
type SpectrumExpr struct {
	Points []Point
}

// RgbExpr holds an Rgb node's three linear-space components.
type RgbExpr struct {
	R, G, B float64
}

// VectorExpr holds a Vector node's three components. Always rejected by
// Build when it appears in a numeric context — vectors belong to shape or
// direction fields owned by the external scene loader, not the value graph.
type VectorExpr struct {
	X, Y, Z float64
}

// ComplexExpression is one non-trivial node of the scene's expression
// grammar (spec.md §6). Exactly one of the variant fields is populated,
// selected by Kind.
type ComplexExpression struct {
	Kind ComplexExpressionKind

	Vector   *VectorExpr
	Fresnel  *FresnelExpr
	Spectrum *SpectrumExpr
	Rgb      *RgbExpr
	Binary   *BinaryExpr // Add, Sub, Mul, Div
	Mix      *MixExpr

	// LightSource and Texture carry no payload here: both are out of
	// scope for the value graph (light source construction belongs to
	// the external scene loader; textures operate in UV space, not
	// wavelength space) and Build always rejects them.
}
