// Package main is the entry point for the stance fitment tool. It builds a
// vehicle configuration, fits wheels and tires to it, simulates the body
// settling onto its suspension and prints the result as YAML.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/stance/internal/assets"
	"github.com/Faultbox/stance/internal/catalog"
	"github.com/Faultbox/stance/internal/config"
	"github.com/Faultbox/stance/internal/logger"
	"github.com/Faultbox/stance/internal/rig"
	"github.com/Faultbox/stance/internal/vehicle"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Sugar.Debugf("Config: %+v", cfg)

	cat, err := loadCatalog(cfg.Catalog.Path)
	if err != nil {
		logger.Error("failed to load catalog", zap.Error(err))
		os.Exit(1)
	}

	switch flag.Arg(0) {
	case "", "fit":
		err = fit(cfg, cat, os.Stdout)
	case "catalog":
		err = listCatalog(cat, os.Stdout)
	case "fields":
		err = writeYAML(os.Stdout, vehicle.Fields())
	case "init":
		err = initConfig(cfg, flag.Arg(1))
	default:
		err = fmt.Errorf("unknown command %q (want fit, catalog, fields or init)", flag.Arg(0))
	}
	if err != nil {
		logger.Error("command failed", zap.Error(err))
		os.Exit(1)
	}
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	return catalog.LoadFile(path)
}

// loadVehicle returns the catalog defaults with the optional patch file
// merged on top.
func loadVehicle(cat *catalog.Catalog, patchPath string) (vehicle.Config, error) {
	vc, err := vehicle.Default(cat)
	if err != nil {
		return vc, err
	}
	if patchPath == "" {
		return vc, nil
	}

	f, err := os.Open(patchPath)
	if err != nil {
		return vc, err
	}
	defer f.Close()

	vc, err = vc.Patch(f)
	if err != nil {
		return vc, fmt.Errorf("patch %s: %w", patchPath, err)
	}
	return vc, nil
}

// fit runs the pipeline once and simulates the settle.
func fit(cfg *config.Config, cat *catalog.Catalog, w io.Writer) error {
	vc, err := loadVehicle(cat, cfg.Vehicle.Patch)
	if err != nil {
		return err
	}

	meshes := assets.NewManager(logger.Component("assets"))
	defer meshes.Close()
	assets.Procedural(meshes, cat)

	r := rig.New(cat, meshes, rig.Options{
		Logger:      logger.Component("rig"),
		StartOffset: cfg.Animation.StartOffset,
	})

	frame, err := r.Apply(vc)
	if err != nil {
		return err
	}
	logger.Info("configuration applied",
		zap.String("vehicle", frame.Vehicle.Name),
		zap.Int("wheels", len(frame.Wheels)),
		zap.Float64("target_height", frame.TargetHeight))

	anim := simulate(r, cfg.Simulation)
	rep := newReport(frame, anim)
	rep.Cache.ProfileHits, rep.Cache.ProfileMisses = r.ProfileStats()
	rep.Cache.MeshHits, rep.Cache.MeshMisses = meshes.Stats()

	return writeYAML(w, rep)
}

func simulate(r *rig.Rig, sim config.SimulationConfig) animationReport {
	rep := animationReport{
		Frames: sim.Frames(),
		Start:  r.Animation().Height,
	}
	rep.Peak, rep.Trough = rep.Start, rep.Start

	dt := sim.FrameTime()
	for i := 0; i < rep.Frames; i++ {
		h := r.Tick(dt)
		rep.Peak = max(rep.Peak, h)
		rep.Trough = min(rep.Trough, h)
	}

	state := r.Animation()
	rep.Final = state.Height
	rep.Settled = state.Settled()
	return rep
}

// initConfig writes the effective configuration to path, or to the user
// config directory when path is empty.
func initConfig(cfg *config.Config, path string) error {
	var err error
	if path == "" {
		path, err = cfg.Save()
	} else {
		err = cfg.SaveTo(path)
	}
	if err != nil {
		return err
	}
	logger.Info("configuration written", zap.String("path", path))
	return nil
}

func listCatalog(cat *catalog.Catalog, w io.Writer) error {
	return writeYAML(w, map[string]map[string][]string{
		"vehicles": cat.VehiclesByMake(),
		"rims":     cat.RimsByMake(),
		"tires":    cat.TiresByMake(),
	})
}
