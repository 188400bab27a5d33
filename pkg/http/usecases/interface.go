package usecases

import (
	"github.com/gridnav/gridrouter/pkg"
	da "github.com/gridnav/gridrouter/pkg/datastructure"
)

// Terrain what the navigation service needs from the terrain: the search
// engine contract plus per-cell surface data for snapping and rendering.
type Terrain interface {
	GridSide() int
	TravelCost(from, to da.Coordinate) float64
	HeuristicDistance(rowA, colA, rowB, colB float64) float64
	Passable(row, col int) bool
	SurfaceAt(row, col int) pkg.SurfaceClass
}

// SpatialIndex snaps query coordinates onto passable terrain.
type SpatialIndex interface {
	NearestPassable(c da.Coordinate, maxRadius float64) (da.Coordinate, bool)
}
