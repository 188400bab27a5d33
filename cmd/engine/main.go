package main

import (
	"context"
	"flag"

	"github.com/gridnav/gridrouter/pkg/http"
	"github.com/gridnav/gridrouter/pkg/http/usecases"
	"github.com/gridnav/gridrouter/pkg/logger"
	"github.com/gridnav/gridrouter/pkg/spatialindex"
	"github.com/gridnav/gridrouter/pkg/terrain"
	"github.com/gridnav/gridrouter/pkg/util"
	"go.uber.org/zap"
)

var (
	terrainFile  = flag.String("terrain", "./data/terrain.map.bz2", "bzip2 compressed terrain map file")
	snapRadius   = flag.Float64("snap_radius", 3.0, "max snapping distance (in cells) from an impassable cell to a passable one")
	useRateLimit = flag.Bool("rate_limit", false, "enable global request rate limiting")
)

func main() {
	flag.Parse()
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}

	if err := util.ReadConfig(); err != nil {
		logger.Warn("no config file found, using defaults", zap.Error(err))
	}

	gridTerrain, err := terrain.ReadGridMap(*terrainFile)
	if err != nil {
		panic(err)
	}
	logger.Info("terrain map loaded",
		zap.String("file", *terrainFile), zap.Int("gridSide", gridTerrain.GridSide()))

	rtree := spatialindex.NewRtree()
	rtree.Build(gridTerrain, logger)

	navigationService, err := usecases.NewNavigationService(logger, gridTerrain, rtree, *snapRadius)
	if err != nil {
		panic(err)
	}

	api := http.NewServer(logger)

	ctx, cleanup := NewContext()
	_, err = api.Use(ctx, logger, *useRateLimit, navigationService)
	if err != nil {
		panic(err)
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- api.Wait()
	}()

	select {
	case sig := <-http.ShutdownSignal():
		logger.Info("Gridrouter Navigation Server Stopped", zap.String("signal", sig.String()))
		cleanup()
		if err := <-serverErr; err != nil {
			logger.Error("server shutdown error", zap.Error(err))
		}
	case err := <-serverErr:
		logger.Error("navigation server failed", zap.Error(err))
		cleanup()
	}
}

func NewContext() (context.Context, func()) {
	ctx, cancel := context.WithCancel(context.Background())
	cb := func() {
		cancel()
	}

	return ctx, cb
}
