package usecases

import (
	"errors"

	da "github.com/gridnav/gridrouter/pkg/datastructure"
	"github.com/gridnav/gridrouter/pkg/engine/routing"
	"github.com/gridnav/gridrouter/pkg/geo"
	"github.com/gridnav/gridrouter/pkg/util"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
)

var (
	ErrPathNotFound   = errors.New("no path between the requested cells")
	ErrOutsideGrid    = errors.New("requested cell lies outside the grid")
	ErrNoPassableCell = errors.New("no passable cell near the requested cell")
)

const routeCacheSize = 256

type routeCacheKey struct {
	start, goal     da.Coordinate
	heuristicWeight float64
	includeVisited  bool
}

type RouteResult struct {
	Path         []da.Coordinate
	Polyline     string
	Cost         float64
	SearchSize   int
	SnappedStart da.Coordinate
	SnappedGoal  da.Coordinate
	Visited      []da.Coordinate // only when requested
}

// NavigationService answers point-to-point grid routing queries. Each query
// runs on a fresh engine, the engine itself is single-search and not safe for
// concurrent use. Results are memoized in a process-local LRU cache.
type NavigationService struct {
	log          *zap.Logger
	terrain      Terrain
	spatialIndex SpatialIndex
	snapRadius   float64

	routeCache *lru.Cache[routeCacheKey, *RouteResult]
}

func NewNavigationService(log *zap.Logger, terrain Terrain, spatialIndex SpatialIndex,
	snapRadius float64) (*NavigationService, error) {
	cache, err := lru.New[routeCacheKey, *RouteResult](routeCacheSize)
	if err != nil {
		return nil, err
	}
	return &NavigationService{
		log:          log,
		terrain:      terrain,
		spatialIndex: spatialIndex,
		snapRadius:   snapRadius,
		routeCache:   cache,
	}, nil
}

func (ns *NavigationService) ShortestPath(startRow, startCol, goalRow, goalCol int,
	heuristicWeight float64, includeVisited bool) (*RouteResult, error) {

	start, err := ns.snap(startRow, startCol)
	if err != nil {
		return nil, err
	}
	goal, err := ns.snap(goalRow, goalCol)
	if err != nil {
		return nil, err
	}

	key := routeCacheKey{start: start, goal: goal,
		heuristicWeight: heuristicWeight, includeVisited: includeVisited}
	if cached, ok := ns.routeCache.Get(key); ok {
		return cached, nil
	}

	search := routing.NewAstarSearch(ns.terrain, ns.log)
	search.SetPathStart(start)
	search.SetPathEnd(goal)
	search.SetHeuristicWeight(heuristicWeight)

	if err := search.ComputePath(); err != nil {
		return nil, util.WrapErrorf(err, util.ErrBadParamInput, "grid search rejected the query")
	}

	if !search.PathFound() {
		return nil, util.WrapErrorf(ErrPathNotFound, util.ErrNotFound,
			"no path from (%d,%d) to (%d,%d)",
			start.GetRow(), start.GetCol(), goal.GetRow(), goal.GetCol())
	}

	path := search.SolutionPath()
	result := &RouteResult{
		Path:         path,
		Polyline:     geo.PolylineFromPath(path),
		Cost:         search.PathCost(),
		SearchSize:   search.SearchSize(),
		SnappedStart: start,
		SnappedGoal:  goal,
	}
	if includeVisited {
		result.Visited = ns.collectVisited(search)
	}

	ns.log.Info("grid route computed",
		zap.Int("pathLength", len(path)),
		zap.Float64("cost", result.Cost),
		zap.Int("searchSize", result.SearchSize))

	ns.routeCache.Add(key, result)
	return result, nil
}

// snap reject out-of-grid cells, move impassable cells to the nearest
// passable one within the snap radius.
func (ns *NavigationService) snap(row, col int) (da.Coordinate, error) {
	side := ns.terrain.GridSide()
	if row < 0 || row >= side || col < 0 || col >= side {
		return da.Coordinate{}, util.WrapErrorf(ErrOutsideGrid, util.ErrBadParamInput,
			"cell (%d,%d) outside %dx%d grid", row, col, side, side)
	}

	c := da.NewCoordinate(row, col)
	if ns.terrain.Passable(row, col) {
		return c, nil
	}

	snapped, ok := ns.spatialIndex.NearestPassable(c, ns.snapRadius)
	if !ok {
		return da.Coordinate{}, util.WrapErrorf(ErrNoPassableCell, util.ErrBadParamInput,
			"no passable cell within %.1f cells of (%d,%d)", ns.snapRadius, row, col)
	}
	return snapped, nil
}

func (ns *NavigationService) collectVisited(search *routing.AstarSearch) []da.Coordinate {
	side := ns.terrain.GridSide()
	visited := make([]da.Coordinate, 0)
	for row := 0; row < side; row++ {
		for col := 0; col < side; col++ {
			c := da.NewCoordinate(row, col)
			if search.WasVisited(c) {
				visited = append(visited, c)
			}
		}
	}
	return visited
}

// TerrainSnapshot grid side and one rune-string per row, for front-ends that
// render the map.
func (ns *NavigationService) TerrainSnapshot() (int, []string) {
	side := ns.terrain.GridSide()
	rows := make([]string, 0, side)
	for row := 0; row < side; row++ {
		line := make([]rune, 0, side)
		for col := 0; col < side; col++ {
			line = append(line, ns.terrain.SurfaceAt(row, col).Rune())
		}
		rows = append(rows, string(line))
	}
	return side, rows
}
