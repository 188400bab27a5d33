package geo

import (
	"math"

	"github.com/gridnav/gridrouter/pkg/util"
)

const (
	sqrt2 = math.Sqrt2
)

// EuclideanDistance straight-line distance between two grid cells, in cell
// units.
func EuclideanDistance(rowA, colA, rowB, colB float64) float64 {
	dr := rowA - rowB
	dc := colA - colB
	return math.Sqrt(dr*dr + dc*dc)
}

// ManhattanDistance taxicab distance, 4-directional movement lower bound.
func ManhattanDistance(rowA, colA, rowB, colB int) int {
	return util.Abs(rowA-rowB) + util.Abs(colA-colB)
}

// ChebyshevDistance number of 8-directional king moves between two cells.
func ChebyshevDistance(rowA, colA, rowB, colB int) int {
	return util.Max(util.Abs(rowA-rowB), util.Abs(colA-colB))
}

// OctileDistance exact 8-directional path length on an empty grid: diagonal
// steps cost sqrt(2), straight steps cost 1.
func OctileDistance(rowA, colA, rowB, colB int) float64 {
	dr := util.Abs(rowA - rowB)
	dc := util.Abs(colA - colB)
	diag := util.Min(dr, dc)
	straight := util.Max(dr, dc) - diag

	return sqrt2*float64(diag) + float64(straight)
}
