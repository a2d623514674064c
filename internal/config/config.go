// Package config loads mesher settings from defaults, a YAML file and flags.
package config

import (
	"fmt"
	"runtime"

	"voxmesh/internal/voxel"
	"voxmesh/internal/world"
)

// Source kinds.
const (
	SourceTerrain = "terrain"
	SourceLayers  = "layers"
)

// Config holds all settings of a meshing run.
type Config struct {
	Region  RegionConfig  `yaml:"region"`
	Source  SourceConfig  `yaml:"source"`
	Meshing MeshingConfig `yaml:"meshing"`
	Output  OutputConfig  `yaml:"output"`
	Viewer  ViewerConfig  `yaml:"viewer"`
	Logging LoggingConfig `yaml:"logging"`
}

// RegionConfig is the half-open box to mesh.
type RegionConfig struct {
	From [3]int32 `yaml:"from"`
	To   [3]int32 `yaml:"to"`
}

// SourceConfig selects the voxel sampler.
type SourceConfig struct {
	Kind    string              `yaml:"kind"`
	Terrain world.TerrainParams `yaml:"terrain"`
}

// MeshingConfig controls the worker pool. A zero tile size meshes the
// whole region in one pass.
type MeshingConfig struct {
	Workers   int      `yaml:"workers"`
	QueueSize int      `yaml:"queue_size"`
	TileSize  [3]int32 `yaml:"tile_size"`
}

// OutputConfig controls the exported file.
type OutputConfig struct {
	Path   string `yaml:"path"`
	Binary bool   `yaml:"binary"`
}

// ViewerConfig holds window settings for the viewer.
type ViewerConfig struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	VSync  bool    `yaml:"vsync"`
	FOV    float32 `yaml:"fov"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config meshing a 64x64x64 patch of noise terrain.
func Default() *Config {
	return &Config{
		Region: RegionConfig{
			From: [3]int32{0, 0, 0},
			To:   [3]int32{64, 64, 64},
		},
		Source: SourceConfig{
			Kind:    SourceTerrain,
			Terrain: world.DefaultTerrainParams(),
		},
		Meshing: MeshingConfig{
			Workers:   runtime.NumCPU(),
			QueueSize: 64,
		},
		Output: OutputConfig{
			Path:   "voxels.glb",
			Binary: true,
		},
		Viewer: ViewerConfig{
			Width:  1280,
			Height: 720,
			VSync:  true,
			FOV:    60,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Bounds converts the region to voxel bounds.
func (r RegionConfig) Bounds() (voxel.Bounds, error) {
	return voxel.NewBounds(
		voxel.Vec3i{X: r.From[0], Y: r.From[1], Z: r.From[2]},
		voxel.Vec3i{X: r.To[0], Y: r.To[1], Z: r.To[2]},
	)
}

// Tiled reports whether the region is split across the pool.
func (m MeshingConfig) Tiled() bool {
	return m.TileSize != [3]int32{}
}

// Tile returns the tile size as a vector.
func (m MeshingConfig) Tile() voxel.Vec3i {
	return voxel.Vec3i{X: m.TileSize[0], Y: m.TileSize[1], Z: m.TileSize[2]}
}

// Validate checks the settings a run cannot recover from.
func (c *Config) Validate() error {
	if _, err := c.Region.Bounds(); err != nil {
		return fmt.Errorf("region: %w", err)
	}
	switch c.Source.Kind {
	case SourceTerrain, SourceLayers:
	default:
		return fmt.Errorf("source: unknown kind %q", c.Source.Kind)
	}
	if c.Meshing.Tiled() {
		for i, s := range c.Meshing.TileSize {
			if s <= 0 {
				return fmt.Errorf("meshing: tile_size[%d] = %d, must be positive", i, s)
			}
		}
	}
	if c.Meshing.Workers < 1 {
		return fmt.Errorf("meshing: workers = %d, must be at least 1", c.Meshing.Workers)
	}
	if c.Output.Path == "" {
		return fmt.Errorf("output: path is empty")
	}
	return nil
}
