package renderer

import (
	"math/rand"

	"github.com/kallisthenes/spectrace/pkg/core"
	"github.com/kallisthenes/spectrace/pkg/filmplane"
	"github.com/kallisthenes/spectrace/pkg/pathtracer"
	"github.com/kallisthenes/spectrace/pkg/scene"
)

// Renderer ties the tile driver to the path tracer and film, the
// generalized counterpart of the teacher's ProgressiveRaytracer: instead
// of accumulating RGB samples per pass, each tile's per_item callback
// invokes the spectral tracer pixel_samples times per pixel, with
// spectrum_samples wavelengths per call.
type Renderer struct {
	World  scene.World
	Camera scene.Camera
	Film   *filmplane.Film
	Tracer *pathtracer.Tracer

	TileSize        int
	PixelSamples    int
	SpectrumSamples int

	Logger core.Logger
}

// NewRenderer builds a Renderer. When logger is nil it falls back to a
// logger that discards every message.
func NewRenderer(world scene.World, camera scene.Camera, film *filmplane.Film, tracer *pathtracer.Tracer, tileSize, pixelSamples, spectrumSamples int, logger core.Logger) *Renderer {
	if logger == nil {
		logger = noopLogger{}
	}
	return &Renderer{
		World:           world,
		Camera:          camera,
		Film:            film,
		Tracer:          tracer,
		TileSize:        tileSize,
		PixelSamples:    pixelSamples,
		SpectrumSamples: spectrumSamples,
		Logger:          logger,
	}
}

// Render partitions the film into tiles, dispatches them across a worker
// pool sized to numWorkers (<=0 means runtime.NumCPU()), and streams tile
// completions over the returned channel. The channel is buffered to hold
// every tile up front so a slow or absent reader never blocks a worker —
// spec.md §5's "may block, and only briefly on an unbounded queue".
func (r *Renderer) Render(seed *rand.Rand, numWorkers int) <-chan TileResult {
	tiles := NewTileGrid(r.Film.Width(), r.Film.Height(), r.TileSize, seed)
	progress := make(chan TileResult, len(tiles))

	pool := NewWorkerPool(numWorkers)
	go func() {
		defer close(progress)
		pool.DoWork(tiles, r.renderTile, func(result TileResult) {
			if result.Error != nil {
				r.Logger.Printf("tile %d failed: %v", result.Tile.ID, result.Error)
			}
			progress <- result
		})
	}()
	return progress
}

// renderTile is the per-tile work function handed to the worker pool.
func (r *Renderer) renderTile(tile *Tile) error {
	wavelengths := make([]float64, r.SpectrumSamples)
	for y := tile.Bounds.Min.Y; y < tile.Bounds.Max.Y; y++ {
		for x := tile.Bounds.Min.X; x < tile.Bounds.Max.X; x++ {
			r.renderPixel(tile, x, y, wavelengths)
		}
	}
	return nil
}

func (r *Renderer) renderPixel(tile *Tile, x, y int, wavelengths []float64) {
	weight := 1.0 / float64(r.PixelSamples)

	for s := 0; s < r.PixelSamples; s++ {
		for i := range wavelengths {
			wavelengths[i] = r.Film.SampleWavelength(tile.RNG)
		}

		jitterX := float64(x) + tile.RNG.Float64()
		jitterY := float64(y) + tile.RNG.Float64()
		ray := r.Camera.RayTowards(jitterX, jitterY, tile.RNG)
		completed := r.Tracer.Trace(tile.RNG, ray, wavelengths, r.World)

		for _, sample := range completed {
			r.Film.Expose(x, y, filmplane.Sample{
				Wavelength: sample.Wavelength,
				Brightness: sample.Brightness,
				Weight:     weight,
			})
		}
	}
}

type noopLogger struct{}

func (noopLogger) Printf(format string, args ...interface{}) {}
