package main

import (
	"path/filepath"
	"runtime"

	"github.com/lintang-b-s/tilenav/pkg"
	"github.com/lintang-b-s/tilenav/pkg/builder"
	"github.com/lintang-b-s/tilenav/pkg/concurrent"
	"github.com/lintang-b-s/tilenav/pkg/logger"
	"github.com/lintang-b-s/tilenav/pkg/osmfeature"
	"github.com/lintang-b-s/tilenav/pkg/util"
	"go.uber.org/zap"
)

type tileJob struct {
	country string
}

func main() {
	log, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	cfg, err := util.ReadConfig()
	if err != nil {
		log.Fatal("read config", zap.Error(err))
	}

	leapProfiles := make([]pkg.VehicleType, 0, len(cfg.LeapProfiles))
	for _, name := range cfg.LeapProfiles {
		switch name {
		case "pedestrian":
			leapProfiles = append(leapProfiles, pkg.PEDESTRIAN)
		case "bicycle":
			leapProfiles = append(leapProfiles, pkg.BICYCLE)
		case "car":
			leapProfiles = append(leapProfiles, pkg.CAR)
		}
	}

	workers := cfg.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}
	workers = util.MinInt(workers, len(cfg.Countries))

	// tiles build in parallel; each tile build is strictly sequential
	pool := concurrent.NewWorkerPool[tileJob, error](workers, len(cfg.Countries))
	for _, country := range cfg.Countries {
		pool.AddJob(tileJob{country: country})
	}
	pool.Close()

	pool.Start(func(job tileJob) error {
		return buildTile(cfg.DataDir, job.country, leapProfiles, log)
	})
	pool.Wait()

	failed := 0
	for err := range pool.CollectResults() {
		if err != nil {
			log.Error("tile build failed", zap.Error(err))
			failed++
		}
	}
	if failed > 0 {
		log.Fatal("index build finished with failures", zap.Int("failed", failed))
	}
	log.Info("index build finished", zap.Int("tiles", len(cfg.Countries)))
}

func buildTile(dataDir, country string, leapProfiles []pkg.VehicleType, log *zap.Logger) error {
	mapFile := filepath.Join(dataDir, country+".osm.pbf")
	mwmFile := filepath.Join(dataDir, country+".mwm")

	source, err := osmfeature.NewSourceFromPbf(mapFile, nil, log)
	if err != nil {
		return err
	}

	if !builder.BuildRoutingIndex(mwmFile, country, source, log) {
		return util.WrapErrorf(nil, util.ErrIOFailure, "routing index of %q", country)
	}

	return builder.BuildCrossMwmSection(dataDir, mwmFile, country, source, leapProfiles, log)
}
