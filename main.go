package main

import (
	"flag"
	"fmt"
	"image/png"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/kallisthenes/spectrace/pkg/filmplane"
	"github.com/kallisthenes/spectrace/pkg/pathtracer"
	"github.com/kallisthenes/spectrace/pkg/renderer"
	"github.com/kallisthenes/spectrace/pkg/scene"
)

// Flags holds the command-line overrides for a RendererConfig, mirroring
// the teacher's own Config/parseFlags split.
type Flags struct {
	ConfigFile string
	Scene      string
	Width      int
	Height     int
	Samples    int
	Workers    int
	Help       bool
}

func main() {
	flags := parseFlags()
	if flags.Help {
		showHelp()
		return
	}

	config := DefaultRendererConfig()
	if flags.ConfigFile != "" {
		loaded, err := LoadRendererConfig(flags.ConfigFile)
		if err != nil {
			fmt.Printf("Error loading config %q: %v\n", flags.ConfigFile, err)
			os.Exit(1)
		}
		config = loaded
	}
	applyFlags(&config, flags)

	fmt.Println("Starting spectral path tracer...")
	startTime := time.Now()

	example, err := createScene(config)
	if err != nil {
		fmt.Printf("Error creating scene: %v\n", err)
		os.Exit(1)
	}

	logger, err := renderer.NewZapLogger(false)
	if err != nil {
		fmt.Printf("Error creating logger: %v\n", err)
		os.Exit(1)
	}

	film := filmplane.NewFilm(example.Width, example.Height)
	if config.WavelengthRangeNM[0] != 0 || config.WavelengthRangeNM[1] != 0 {
		film.VisibleMin, film.VisibleMax = config.WavelengthRangeNM[0], config.WavelengthRangeNM[1]
	}

	tracer := pathtracer.NewTracer(config.Bounces, config.LightSamples)
	r := renderer.NewRenderer(example.World, example.Camera, film, tracer, config.TileSize, config.PixelSamples, config.SpectrumSamples, logger)

	seed := rand.New(rand.NewSource(time.Now().UnixNano()))
	tileCount := 0
	for result := range r.Render(seed, config.NumWorkers) {
		if result.Error != nil {
			fmt.Printf("tile %d failed: %v\n", result.Tile.ID, result.Error)
			os.Exit(1)
		}
		tileCount++
	}

	renderTime := time.Since(startTime)
	fmt.Printf("Render completed in %v (%d tiles)\n", renderTime, tileCount)

	outputDir := createOutputDir(config.Scene)
	timestamp := time.Now().Format("20060102_150405")
	outputPath := filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))
	if err := saveImageToFile(film, outputPath); err != nil {
		fmt.Printf("Error saving image: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Render saved as %s\n", outputPath)
}

func parseFlags() Flags {
	f := Flags{}
	flag.StringVar(&f.ConfigFile, "config", "", "Path to a TOML renderer config file")
	flag.StringVar(&f.Scene, "scene", "", "Built-in scene: sphere, cornell, glass, iridescent (overrides config)")
	flag.IntVar(&f.Width, "width", 0, "Image width in pixels (overrides config)")
	flag.IntVar(&f.Height, "height", 0, "Image height in pixels (overrides config)")
	flag.IntVar(&f.Samples, "samples", 0, "Samples per pixel (overrides config)")
	flag.IntVar(&f.Workers, "workers", 0, "Number of parallel workers (0 = auto-detect CPU count)")
	flag.BoolVar(&f.Help, "help", false, "Show help information")
	flag.Parse()
	return f
}

func applyFlags(config *RendererConfig, f Flags) {
	if f.Scene != "" {
		config.Scene = f.Scene
	}
	if f.Width > 0 {
		config.Width = f.Width
	}
	if f.Height > 0 {
		config.Height = f.Height
	}
	if f.Samples > 0 {
		config.PixelSamples = f.Samples
	}
	if f.Workers != 0 {
		config.NumWorkers = f.Workers
	}
}

func showHelp() {
	fmt.Println("spectrace - spectral path tracer")
	fmt.Println("Usage: spectrace [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Built-in scenes:")
	fmt.Println("  sphere   - single diffuse sphere under a constant sky")
	fmt.Println("  cornell  - small box room with a quad light and a mirror sphere")
	fmt.Println("  glass    - dispersive glass sphere over a lit backdrop")
	fmt.Println("  iridescent - specular sphere tinted by its own Fresnel reflectance")
	fmt.Println()
	fmt.Println("Output will be saved to output/<scene>/render_<timestamp>.png")
}

// createScene builds a scene.Example for config.Scene, the generalized
// counterpart of the teacher's createScene switch.
func createScene(config RendererConfig) (scene.Example, error) {
	width, height := config.Width, config.Height
	switch config.Scene {
	case "", "sphere":
		return scene.NewSphereExample(width, height), nil
	case "cornell":
		return scene.NewCornellExample(width, height), nil
	case "glass":
		return scene.NewDispersiveGlassExample(width, height), nil
	case "iridescent":
		return scene.NewIridescentExample(width, height), nil
	default:
		return scene.Example{}, fmt.Errorf("unknown scene: %s", config.Scene)
	}
}

func createOutputDir(sceneName string) string {
	if sceneName == "" {
		sceneName = "sphere"
	}
	outputDir := filepath.Join("output", sceneName)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		os.Exit(1)
	}
	return outputDir
}

func saveImageToFile(film *filmplane.Film, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, film.Image())
}
