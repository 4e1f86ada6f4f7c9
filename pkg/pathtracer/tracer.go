package pathtracer

import (
	"math/rand"

	"github.com/kallisthenes/spectrace/pkg/core"
	"github.com/kallisthenes/spectrace/pkg/directlight"
	"github.com/kallisthenes/spectrace/pkg/material"
	"github.com/kallisthenes/spectrace/pkg/scene"
	"github.com/kallisthenes/spectrace/pkg/spectral"
)

// Tracer runs the bounce loop for one camera ray, grounded on
// original_source/src/tracer.rs's trace/trace_branch/trace_direct trio.
type Tracer struct {
	MaxBounces   int
	LightSamples int
}

// NewTracer creates a Tracer with the given bounce budget and shadow-ray
// sample count.
func NewTracer(maxBounces, lightSamples int) *Tracer {
	return &Tracer{MaxBounces: maxBounces, LightSamples: lightSamples}
}

// Trace follows ray through world, returning one completed WavelengthSample
// per entry in wavelengths.
func (tr *Tracer) Trace(rng *rand.Rand, ray core.Ray, wavelengths []float64, world scene.World) []WavelengthSample {
	traced := make([]WavelengthSample, len(wavelengths))
	for i, wl := range wavelengths {
		traced[i] = newWavelengthSample(wl)
	}
	var completed []WavelengthSample

	for bounce := 0; bounce < tr.MaxBounces; bounce++ {
		hit, mat, ok := world.Intersect(ray)
		if !ok {
			for _, sample := range traced {
				ctx := spectral.RenderContext{Wavelength: sample.Wavelength, Normal: core.Vec3{}, Incident: ray.Direction}
				sample.Brightness += sample.Reflectance * world.Sky.Color(ray.Direction).Get(ctx)
				completed = append(completed, sample)
			}
			return completed
		}

		reflection := mat.Reflect(sampleWavelengths(traced), ray, hit, rng)

		switch reflection.Kind {
		case material.Emit:
			for _, sample := range traced {
				if sample.SampleLight {
					ctx := spectral.RenderContext{Wavelength: sample.Wavelength, Normal: hit.NormalDirection, Incident: ray.Direction}
					sample.Brightness += sample.Reflectance * reflection.Color.Get(ctx)
				}
				completed = append(completed, sample)
			}
			return completed

		case material.Reflect:
			for i := range traced {
				ctx := spectral.RenderContext{Wavelength: traced[i].Wavelength, Normal: hit.NormalDirection, Incident: ray.Direction}
				traced[i].Reflectance *= reflection.Color.Get(ctx) * reflection.Scale
			}

			if reflection.BRDF != nil {
				sums := directlight.Estimate(rng, tr.LightSamples, sampleWavelengths(traced), ray, hit, world, reflection.BRDF)
				for i := range traced {
					if sums[i] > 0 {
						traced[i].Brightness += traced[i].Reflectance * sums[i]
						traced[i].SampleLight = false
					} else {
						traced[i].SampleLight = true
					}
				}
			}

			brdfScale := 1.0
			if reflection.BRDF != nil {
				brdfScale = reflection.BRDF(ray.Direction, hit.NormalDirection, reflection.OutRay.Direction)
			}

			i := 0
			for i < len(traced) {
				newReflectance := traced[i].Reflectance * brdfScale
				if newReflectance == 0 {
					completed = append(completed, traced[i])
					last := len(traced) - 1
					traced[i] = traced[last]
					traced = traced[:last]
					continue
				}
				traced[i].Reflectance = newReflectance
				traced[i].SampleLight = reflection.BRDF == nil || traced[i].SampleLight
				i++
			}

			if len(traced) == 0 {
				return completed
			}
			ray = reflection.OutRay

		case material.Disperse:
			remainingBounces := tr.MaxBounces - (bounce + 1)
			for i, sample := range traced {
				branch := collapseDisperse(reflection.Branches[i])
				ctx := spectral.RenderContext{Wavelength: sample.Wavelength, Normal: hit.NormalDirection, Incident: ray.Direction}

				switch branch.Kind {
				case material.Emit:
					if sample.SampleLight {
						sample.Brightness += sample.Reflectance * branch.Color.Get(ctx)
					}
					completed = append(completed, sample)

				case material.Reflect:
					sample.Reflectance *= branch.Color.Get(ctx) * branch.Scale

					if branch.BRDF != nil {
						sums := directlight.Estimate(rng, tr.LightSamples, []float64{sample.Wavelength}, ray, hit, world, branch.BRDF)
						if sums[0] > 0 {
							sample.Brightness += sample.Reflectance * sums[0]
							sample.SampleLight = false
						} else {
							sample.SampleLight = true
						}
					}

					brdfScale := 1.0
					if branch.BRDF != nil {
						brdfScale = branch.BRDF(ray.Direction, hit.NormalDirection, branch.OutRay.Direction)
					}
					sample.Reflectance *= brdfScale
					sample.SampleLight = branch.BRDF == nil || sample.SampleLight

					completed = append(completed, tr.traceBranch(rng, branch.OutRay, sample, world, remainingBounces))
				}
			}
			return completed
		}
	}

	completed = append(completed, traced...)
	return completed
}

// traceBranch continues a single wavelength after a Disperse split, the
// tail-recursive counterpart of Trace restricted to one sample.
func (tr *Tracer) traceBranch(rng *rand.Rand, ray core.Ray, sample WavelengthSample, world scene.World, bounces int) WavelengthSample {
	for b := 0; b < bounces; b++ {
		hit, mat, ok := world.Intersect(ray)
		if !ok {
			ctx := spectral.RenderContext{Wavelength: sample.Wavelength, Normal: core.Vec3{}, Incident: ray.Direction}
			sample.Brightness += sample.Reflectance * world.Sky.Color(ray.Direction).Get(ctx)
			return sample
		}

		reflection := collapseDisperse(mat.Reflect([]float64{sample.Wavelength}, ray, hit, rng))
		ctx := spectral.RenderContext{Wavelength: sample.Wavelength, Normal: hit.NormalDirection, Incident: ray.Direction}

		switch reflection.Kind {
		case material.Emit:
			if sample.SampleLight {
				sample.Brightness += sample.Reflectance * reflection.Color.Get(ctx)
			}
			return sample

		case material.Reflect:
			sample.Reflectance *= reflection.Color.Get(ctx) * reflection.Scale

			if reflection.BRDF != nil {
				sums := directlight.Estimate(rng, tr.LightSamples, []float64{sample.Wavelength}, ray, hit, world, reflection.BRDF)
				if sums[0] > 0 {
					sample.Brightness += sample.Reflectance * sums[0]
					sample.SampleLight = false
				} else {
					sample.SampleLight = true
				}
			}

			brdfScale := 1.0
			if reflection.BRDF != nil {
				brdfScale = reflection.BRDF(ray.Direction, hit.NormalDirection, reflection.OutRay.Direction)
			}
			sample.Reflectance *= brdfScale
			sample.SampleLight = reflection.BRDF == nil || sample.SampleLight

			if sample.Reflectance == 0 {
				return sample
			}
			ray = reflection.OutRay
		}
	}
	return sample
}

// collapseDisperse walks nested Disperse reflections by taking the last
// branch until it reaches a leaf. Nested dispersion is thus reduced to its
// final branch rather than randomly selected — a known bias carried over
// unchanged from the source this was derived from.
func collapseDisperse(r material.Reflection) material.Reflection {
	for r.Kind == material.Disperse {
		r = r.Branches[len(r.Branches)-1]
	}
	return r
}

func sampleWavelengths(samples []WavelengthSample) []float64 {
	wls := make([]float64, len(samples))
	for i, s := range samples {
		wls[i] = s.Wavelength
	}
	return wls
}
