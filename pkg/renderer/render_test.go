package renderer

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kallisthenes/spectrace/pkg/core"
	"github.com/kallisthenes/spectrace/pkg/filmplane"
	"github.com/kallisthenes/spectrace/pkg/material"
	"github.com/kallisthenes/spectrace/pkg/pathtracer"
	"github.com/kallisthenes/spectrace/pkg/scene"
	"github.com/kallisthenes/spectrace/pkg/spectral"
)

func TestRenderExposesEveryPixelOfAnEmptyLitScene(t *testing.T) {
	world := scene.World{
		Objects: scene.NewShapeList(),
		Sky:     scene.NewConstantSky(spectral.Constant(0.6)),
	}
	camera := scene.NewPinholeCamera(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), core.NewVec3(0, 1, 0), 60, 4, 4)
	film := filmplane.NewFilm(4, 4)
	tracer := pathtracer.NewTracer(2, 1)

	r := NewRenderer(world, camera, film, tracer, 2, 4, 1, nil)

	var results []TileResult
	for res := range r.Render(rand.New(rand.NewSource(1)), 2) {
		results = append(results, res)
	}

	require.Len(t, results, 4) // 4x4 image in 2x2 tiles -> 4 tiles
	for _, res := range results {
		require.NoError(t, res.Error)
	}

	img := film.Image()
	require.Equal(t, 4, img.Bounds().Dx())
	_, _, _, a := img.At(0, 0).RGBA()
	require.Equal(t, uint32(0xffff), a)
}

func TestRenderReportsNoTileErrorsForAValidScene(t *testing.T) {
	world := scene.World{
		Objects: scene.NewShapeList(scene.NewSphere(core.NewVec3(0, 0, -5), 1, material.NewEmissive(spectral.Constant(1)))),
		Sky:     scene.NewConstantSky(spectral.Constant(0)),
	}
	camera := scene.NewPinholeCamera(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), core.NewVec3(0, 1, 0), 60, 2, 2)
	film := filmplane.NewFilm(2, 2)
	tracer := pathtracer.NewTracer(2, 1)

	r := NewRenderer(world, camera, film, tracer, 2, 1, 1, nil)

	var errCount int
	for res := range r.Render(rand.New(rand.NewSource(2)), 1) {
		if res.Error != nil {
			errCount++
		}
	}
	require.Equal(t, 0, errCount)
}
