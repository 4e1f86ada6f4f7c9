package scene

import (
	"fmt"

	"github.com/kallisthenes/spectrace/pkg/core"
	"github.com/kallisthenes/spectrace/pkg/material"
	"github.com/kallisthenes/spectrace/pkg/spectral"
)

// Example is a small, fully in-memory scene built directly through the
// package's reference adapters rather than loaded from a scene file —
// standing in for the external scene loader named in spec.md §1's
// out-of-scope list. These exist to exercise the pipeline end to end, the
// way the teacher's pkg/scene/*.go built-in scenes do for the RGB
// renderer (NewDefaultScene, NewCornellScene, ...).
type Example struct {
	World  World
	Camera Camera
	Width  int
	Height int
}

// NewSphereExample is spec.md §8's E3 scenario promoted to a full scene: a
// diffuse sphere under a constant sky.
func NewSphereExample(width, height int) Example {
	world := World{
		Objects: NewShapeList(
			NewSphere(core.NewVec3(0, 0, -3), 1, material.NewDiffuse(spectral.Constant(0.8))),
		),
		Sky: NewConstantSky(spectral.Constant(1.0)),
	}
	camera := NewPinholeCamera(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), core.NewVec3(0, 1, 0), 60, width, height)
	return Example{World: world, Camera: camera, Width: width, Height: height}
}

// NewCornellExample builds a small box-shaped room lit by an overhead
// quad light, the same idea as the teacher's NewCornellScene translated
// to wavelength-domain materials built from an explicit RGB→spectrum
// Expression tree rather than Go struct literals, exercising the
// Expression/Build translator spec.md §6 names as the external interface.
func NewCornellExample(width, height int) Example {
	red := mustBuildRgb(0.65, 0.05, 0.05)
	green := mustBuildRgb(0.12, 0.45, 0.15)
	white := mustBuildRgb(0.73, 0.73, 0.73)
	lightColor := mustBuildRgb(15, 15, 15)

	const size = 5.0
	objects := NewShapeList(
		// Left wall (red), right wall (green), floor/ceiling/back (white).
		NewQuad(core.NewVec3(-size/2, -size/2, -size), core.NewVec3(0, size, 0), core.NewVec3(0, 0, size), material.NewDiffuse(red)),
		NewQuad(core.NewVec3(size/2, -size/2, -size), core.NewVec3(0, size, 0), core.NewVec3(0, 0, size), material.NewDiffuse(green)),
		NewQuad(core.NewVec3(-size/2, -size/2, -size), core.NewVec3(size, 0, 0), core.NewVec3(0, 0, size), material.NewDiffuse(white)),
		NewQuad(core.NewVec3(-size/2, size/2, -size), core.NewVec3(size, 0, 0), core.NewVec3(0, 0, size), material.NewDiffuse(white)),
		NewQuad(core.NewVec3(-size/2, -size/2, -size), core.NewVec3(size, 0, 0), core.NewVec3(0, size, 0), material.NewDiffuse(white)),
		NewSphere(core.NewVec3(-1.2, -size/2+1, -size+2), 1, material.NewMirror(spectral.Constant(0.95))),
	)

	light := NewQuad(core.NewVec3(-1, size/2-0.01, -size+1.5), core.NewVec3(2, 0, 0), core.NewVec3(0, 0, 2), material.NewEmissive(lightColor))
	objects.Shapes = append(objects.Shapes, light)

	world := World{
		Objects: objects,
		Lights:  []LightSource{light},
		Sky:     NewConstantSky(spectral.Constant(0)),
	}
	camera := NewPinholeCamera(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1), core.NewVec3(0, 1, 0), 50, width, height)
	return Example{World: world, Camera: camera, Width: width, Height: height}
}

// NewIridescentExample places a specular sphere whose tint is looked up
// from the Fresnel reflectance at the hit point rather than from
// wavelength, the way a thin-film coating's apparent color shifts with
// viewing angle: grazing and head-on reflections off the same sphere come
// back tinted differently.
func NewIridescentExample(width, height int) Example {
	tint, err := spectral.NewSpectrum([]spectral.Point{
		{Wavelength: 0, Y: 0},
		{Wavelength: 0.5, Y: 0.6},
		{Wavelength: 1, Y: 1},
	})
	if err != nil {
		panic(fmt.Sprintf("built-in example scene has an invalid tint table: %v", err))
	}
	mirror := material.NewIridescent(spectral.Constant(1.5), spectral.Constant(1.0), tint)

	world := World{
		Objects: NewShapeList(
			NewSphere(core.NewVec3(0, 0, -4), 1.2, mirror),
		),
		Sky: NewConstantSky(spectral.Constant(1.0)),
	}
	camera := NewPinholeCamera(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), core.NewVec3(0, 1, 0), 60, width, height)
	return Example{World: world, Camera: camera, Width: width, Height: height}
}

// NewDispersiveGlassExample is spec.md §8's E6 dispersion scenario
// promoted to a full scene: a dispersive glass sphere over a lit
// backdrop, so different wavelengths bend by different amounts on their
// way through the sphere.
func NewDispersiveGlassExample(width, height int) Example {
	ior := mustBuildSpectrum([]spectral.Point{
		{Wavelength: 400, Y: 1.56},
		{Wavelength: 550, Y: 1.52},
		{Wavelength: 700, Y: 1.49},
	})
	glass := material.NewGlass(ior, spectral.Constant(1.0))

	world := World{
		Objects: NewShapeList(
			NewSphere(core.NewVec3(0, 0, -4), 1.2, glass),
		),
		Sky: NewConstantSky(spectral.Constant(1.2)),
	}
	camera := NewPinholeCamera(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), core.NewVec3(0, 1, 0), 60, width, height)
	return Example{World: world, Camera: camera, Width: width, Height: height}
}

func mustBuildRgb(r, g, b float64) spectral.Value {
	v, err := spectral.Build(spectral.Complex(spectral.ComplexExpression{
		Kind: spectral.ExprRgb,
		Rgb:  &spectral.RgbExpr{R: r, G: g, B: b},
	}))
	if err != nil {
		panic(fmt.Sprintf("built-in example scene has an invalid RGB expression: %v", err))
	}
	return v
}

func mustBuildSpectrum(points []spectral.Point) spectral.Value {
	v, err := spectral.Build(spectral.Complex(spectral.ComplexExpression{
		Kind:     spectral.ExprSpectrum,
		Spectrum: &spectral.SpectrumExpr{Points: points},
	}))
	if err != nil {
		panic(fmt.Sprintf("built-in example scene has an invalid spectrum expression: %v", err))
	}
	return v
}
