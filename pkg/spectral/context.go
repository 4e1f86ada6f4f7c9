// Package spectral implements the parametric value graph: a lazily
// evaluated, per-wavelength scalar expression tree built from spectra,
// RGB-to-spectrum reprojection, arithmetic operators, lookup curves, and
// Fresnel reflectance.
package spectral

import "github.com/kallisthenes/spectrace/pkg/core"

// VisibleMin and VisibleMax bound the default visible wavelength range, in
// nanometers, used both for uniform wavelength sampling and for the baked
// RGB response curves.
const (
	VisibleMin = 380.0
	VisibleMax = 780.0
)

// RenderContext is the evaluation environment passed to every node of the
// value graph. It is immutable for the duration of a single Get call.
type RenderContext struct {
	Wavelength float64
	Normal     core.Vec3
	Incident   core.Vec3
}

// Value is a node in the parametric value graph: a pure function from a
// render context to a scalar. Get must never fail once the graph has been
// built, and must have no side effects beyond float arithmetic.
type Value interface {
	Get(ctx RenderContext) float64
}

// Constant is a scalar independent of wavelength.
type Constant float64

// Get implements Value.
func (c Constant) Get(ctx RenderContext) float64 { return float64(c) }
