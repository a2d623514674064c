package config

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
)

// vec3Flag parses "x,y,z".
type vec3Flag struct {
	v   [3]int32
	set bool
}

func (f *vec3Flag) String() string {
	if f == nil || !f.set {
		return ""
	}
	return fmt.Sprintf("%d,%d,%d", f.v[0], f.v[1], f.v[2])
}

func (f *vec3Flag) Set(s string) error {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return fmt.Errorf("want x,y,z, got %q", s)
	}
	for i, p := range parts {
		n, err := strconv.ParseInt(strings.TrimSpace(p), 10, 32)
		if err != nil {
			return fmt.Errorf("component %d: %w", i, err)
		}
		f.v[i] = int32(n)
	}
	f.set = true
	return nil
}

var (
	flagConfig  = flag.String("config", "", "Path to config file")
	flagDebug   = flag.Bool("debug", false, "Enable debug logging")
	flagOut     = flag.String("out", "", "Output file (.glb or .gltf)")
	flagSource  = flag.String("source", "", "Voxel source: terrain or layers")
	flagSeed    = flag.Int64("seed", 0, "Terrain seed (0 keeps the configured seed)")
	flagWorkers = flag.Int("workers", 0, "Mesh worker count")
	flagFrom    = &vec3Flag{}
	flagTo      = &vec3Flag{}
	flagTile    = &vec3Flag{}
)

func init() {
	flag.Var(flagFrom, "from", "Region start x,y,z (inclusive)")
	flag.Var(flagTo, "to", "Region end x,y,z (exclusive)")
	flag.Var(flagTile, "tile", "Tile size x,y,z for pooled meshing")
}

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagOut != "" {
		cfg.Output.Path = *flagOut
		cfg.Output.Binary = !strings.HasSuffix(strings.ToLower(*flagOut), ".gltf")
	}
	if *flagSource != "" {
		cfg.Source.Kind = *flagSource
	}
	if *flagSeed != 0 {
		cfg.Source.Terrain.Seed = *flagSeed
	}
	if *flagWorkers > 0 {
		cfg.Meshing.Workers = *flagWorkers
	}
	if flagFrom.set {
		cfg.Region.From = flagFrom.v
	}
	if flagTo.set {
		cfg.Region.To = flagTo.v
	}
	if flagTile.set {
		cfg.Meshing.TileSize = flagTile.v
	}
}
