package material

import (
	"github.com/kallisthenes/spectrace/pkg/core"
	"github.com/kallisthenes/spectrace/pkg/spectral"
)

// ReflectionKind tags the variant held by a Reflection value.
type ReflectionKind int

const (
	// Emit terminates the path; Color contributes per the tracer's
	// sample_light policy.
	Emit ReflectionKind = iota
	// Reflect continues the path along OutRay.
	Reflect
	// Disperse fans the path out into one independent branch per
	// wavelength in the current sample set.
	Disperse
)

// Reflection is the sum type returned by Material.Reflect. Exactly one
// group of fields is meaningful, selected by Kind.
type Reflection struct {
	Kind ReflectionKind

	// Emit, Reflect: the color evaluated against each sample's render
	// context.
	Color spectral.Value

	// Reflect only.
	OutRay core.Ray
	Scale  float64
	// BRDF is nil for specular reflection: next-event estimation must be
	// skipped and the tracer forces sample_light = true for the bounce.
	BRDF BRDF

	// Disperse only: one Reflection per wavelength of the current sample
	// set, in the same order. A Disperse branch may itself be Disperse;
	// by convention the tracer collapses nested Disperse values to their
	// last branch (see pathtracer).
	Branches []Reflection
}

// EmitReflection builds an Emit reflection.
func EmitReflection(color spectral.Value) Reflection {
	return Reflection{Kind: Emit, Color: color}
}

// ReflectReflection builds a Reflect reflection. brdf may be nil for
// specular (delta) reflection.
func ReflectReflection(outRay core.Ray, color spectral.Value, scale float64, brdf BRDF) Reflection {
	return Reflection{Kind: Reflect, OutRay: outRay, Color: color, Scale: scale, BRDF: brdf}
}

// DisperseReflection builds a Disperse reflection from branches parallel to
// the calling wavelength set.
func DisperseReflection(branches []Reflection) Reflection {
	return Reflection{Kind: Disperse, Branches: branches}
}
