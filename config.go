package main

import (
	"os"

	"github.com/pelletier/go-toml/v2"
)

// RendererConfig is the renderer configuration file format (spec.md §6),
// decodable from TOML the way cogentcore-core's tomlx package decodes its
// settings files. CLI flags parsed by parseFlags override whatever this
// loads, the teacher's main.go convention for its own flag.*Var calls.
type RendererConfig struct {
	Scene string `toml:"scene"`

	Width  int `toml:"width"`
	Height int `toml:"height"`

	TileSize        int `toml:"tile_size"`
	PixelSamples    int `toml:"pixel_samples"`
	SpectrumSamples int `toml:"spectrum_samples"`
	Bounces         int `toml:"bounces"`
	LightSamples    int `toml:"light_samples"`

	// WavelengthRangeNM is [min, max] in nanometers; defaults to
	// spectral.VisibleMin/VisibleMax (spec.md §3) when both are zero.
	WavelengthRangeNM [2]float64 `toml:"wavelength_range_nm"`

	NumWorkers int `toml:"num_workers"`
}

// DefaultRendererConfig returns the configuration main falls back to when
// no TOML file is given.
func DefaultRendererConfig() RendererConfig {
	return RendererConfig{
		Scene:           "sphere",
		Width:           400,
		Height:          300,
		TileSize:        32,
		PixelSamples:    16,
		SpectrumSamples: 4,
		Bounces:         8,
		LightSamples:    4,
		NumWorkers:      0,
	}
}

// LoadRendererConfig reads and decodes a TOML config file, starting from
// DefaultRendererConfig so any field the file omits keeps its default.
func LoadRendererConfig(path string) (RendererConfig, error) {
	cfg := DefaultRendererConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
