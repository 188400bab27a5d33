package controllers

import (
	"github.com/gridnav/gridrouter/pkg/http/usecases"
)

type NavigationService interface {
	ShortestPath(startRow, startCol, goalRow, goalCol int,
		heuristicWeight float64, includeVisited bool) (*usecases.RouteResult, error)
	TerrainSnapshot() (int, []string)
}
