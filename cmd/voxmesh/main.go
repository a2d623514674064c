// Command voxmesh meshes a voxel region and writes it as glTF.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"voxmesh/internal/config"
	"voxmesh/internal/export"
	"voxmesh/internal/logger"
	"voxmesh/internal/pipeline"
	"voxmesh/internal/profiling"

	"go.uber.org/zap"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.Logging.Level, cfg.Logging.LogFile)
	defer logger.Sync()

	logger.Sugar.Debugf("Config: %+v", cfg)

	if err := run(cfg); err != nil {
		logger.Error("voxmesh failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	mesh, err := pipeline.Run(ctx, cfg)
	if err != nil {
		return err
	}

	stopExport := profiling.Track("export.SaveGLTF")
	err = export.SaveGLTFAs(cfg.Output.Path, mesh, cfg.Output.Binary)
	stopExport()
	if err != nil {
		return err
	}

	logger.Info("wrote mesh", zap.String("path", cfg.Output.Path), zap.Bool("binary", cfg.Output.Binary))
	logger.Debug("timings", zap.String("top", profiling.TopN(5)))
	return nil
}
