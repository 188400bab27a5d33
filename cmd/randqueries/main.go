// random-query stress tool: runs many start/goal queries over one terrain map
// through a worker pool and reports aggregate search statistics.
package main

import (
	"flag"
	"math"
	"math/rand"
	"runtime"

	"github.com/gridnav/gridrouter/pkg/concurrent"
	da "github.com/gridnav/gridrouter/pkg/datastructure"
	"github.com/gridnav/gridrouter/pkg/engine/routing"
	"github.com/gridnav/gridrouter/pkg/logger"
	"github.com/gridnav/gridrouter/pkg/terrain"
	"github.com/gridnav/gridrouter/pkg/util"
	"go.uber.org/zap"
)

var (
	terrainFile     = flag.String("terrain", "./data/terrain.map.bz2", "bzip2 compressed terrain map file")
	numQueries      = flag.Int("n", 1000, "number of random queries")
	heuristicWeight = flag.Float64("weight", 1.0, "heuristic weight for every query")
	seed            = flag.Int64("seed", 42, "rng seed")
)

type query struct {
	start, goal da.Coordinate
}

type queryResult struct {
	found      bool
	cost       float64
	searchSize int
}

func main() {
	flag.Parse()
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}

	gridTerrain, err := terrain.ReadGridMap(*terrainFile)
	if err != nil {
		panic(err)
	}
	side := gridTerrain.GridSide()
	logger.Info("terrain map loaded", zap.Int("gridSide", side))

	rng := rand.New(rand.NewSource(*seed))

	pool := concurrent.NewWorkerPool[query, queryResult](runtime.NumCPU(), *numQueries)

	pool.Start(func(q query) queryResult {
		// one engine per job, a search engine instance is single-search
		search := routing.NewAstarSearch(gridTerrain, nil)
		search.SetPathStart(q.start)
		search.SetPathEnd(q.goal)
		search.SetHeuristicWeight(*heuristicWeight)
		if err := search.ComputePath(); err != nil {
			return queryResult{}
		}
		return queryResult{
			found:      search.PathFound(),
			cost:       search.PathCost(),
			searchSize: search.SearchSize(),
		}
	})

	for i := 0; i < *numQueries; i++ {
		pool.AddJob(query{
			start: da.NewCoordinate(rng.Intn(side), rng.Intn(side)),
			goal:  da.NewCoordinate(rng.Intn(side), rng.Intn(side)),
		})
	}
	pool.Close()
	pool.Wait()

	var (
		found, totalSearchSize int
		totalCost, maxCost     float64
	)
	for res := range pool.CollectResults() {
		if !res.found {
			continue
		}
		found++
		totalSearchSize += res.searchSize
		totalCost += res.cost
		maxCost = math.Max(maxCost, res.cost)
	}

	logger.Info("random query run finished",
		zap.Int("queries", *numQueries),
		zap.Int("found", found),
		zap.Float64("avgCost", totalCost/math.Max(float64(found), 1)),
		zap.Float64("maxCost", maxCost),
		zap.Int("avgSearchSize", totalSearchSize/util.Max(found, 1)))
}
