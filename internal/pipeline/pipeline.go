// Package pipeline turns a Config into a mesh: it builds the voxel sampler,
// meshes the region directly or across the worker pool, and logs the result.
package pipeline

import (
	"context"
	"time"

	"voxmesh/internal/config"
	"voxmesh/internal/logger"
	"voxmesh/internal/meshing"
	"voxmesh/internal/profiling"
	"voxmesh/internal/voxel"
	"voxmesh/internal/world"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Sampler returns the voxel source selected by cfg.
func Sampler(cfg *config.Config) (voxel.SamplerFunc[world.Block], error) {
	switch cfg.Source.Kind {
	case config.SourceTerrain:
		return world.NewTerrain(cfg.Source.Terrain).Sampler(), nil
	case config.SourceLayers:
		return world.Layers, nil
	default:
		return nil, errors.Errorf("pipeline: unknown source %q", cfg.Source.Kind)
	}
}

// Run meshes the configured region. Tiled configs go through a worker pool
// that lives for the duration of the call.
func Run(ctx context.Context, cfg *config.Config) (meshing.Mesh, error) {
	log := logger.Named("pipeline")

	bounds, err := cfg.Region.Bounds()
	if err != nil {
		return meshing.Mesh{}, err
	}
	sample, err := Sampler(cfg)
	if err != nil {
		return meshing.Mesh{}, err
	}

	log.Info("meshing",
		zap.Stringer("from", bounds.From),
		zap.Stringer("to", bounds.To),
		zap.String("source", cfg.Source.Kind),
		zap.Bool("tiled", cfg.Meshing.Tiled()),
	)

	start := time.Now()
	var mesh meshing.Mesh
	if cfg.Meshing.Tiled() {
		mesh, err = runTiled(ctx, cfg, bounds, sample)
	} else {
		mesh, err = runSingle(bounds, sample)
	}
	if err != nil {
		return meshing.Mesh{}, err
	}

	lo, hi := mesh.Bounds()
	log.Info("meshed",
		zap.Int("faces", mesh.FaceCount()),
		zap.Int("vertices", len(mesh.Vertices)),
		zap.Int("triangles", mesh.TriangleCount()),
		zap.Any("min", lo),
		zap.Any("max", hi),
		zap.Duration("elapsed", time.Since(start)),
	)
	return mesh, nil
}

func runSingle(bounds voxel.Bounds, sample voxel.SamplerFunc[world.Block]) (meshing.Mesh, error) {
	defer profiling.Track("pipeline.Mesh")()

	mesher, err := meshing.NewBlockyMesher[world.Block](bounds, nil)
	if err != nil {
		return meshing.Mesh{}, err
	}
	return mesher.Mesh(sample), nil
}

func runTiled(ctx context.Context, cfg *config.Config, bounds voxel.Bounds, sample voxel.SamplerFunc[world.Block]) (meshing.Mesh, error) {
	defer profiling.Track("pipeline.MeshTiled")()

	pool := meshing.NewWorkerPool[world.Block](cfg.Meshing.Workers, cfg.Meshing.QueueSize, nil)
	defer pool.Shutdown()

	logger.Debug("worker pool started",
		zap.Int("workers", pool.Workers()),
		zap.Stringer("tile", cfg.Meshing.Tile()),
	)
	return meshing.MeshTiled(ctx, pool, bounds, cfg.Meshing.Tile(), sample)
}
