package routing

import (
	da "github.com/gridnav/gridrouter/pkg/datastructure"
)

// Terrain is the external collaborator supplying the grid dimension, the cost
// of a single step between adjacent cells, and the geometric distance used as
// the heuristic basis. +Inf travel cost marks an impassable edge.
type Terrain interface {
	GridSide() int
	TravelCost(from, to da.Coordinate) float64
	HeuristicDistance(rowA, colA, rowB, colB float64) float64
}
