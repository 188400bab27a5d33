package terrain

import (
	"errors"
	"fmt"

	"github.com/gridnav/gridrouter/pkg"
	"github.com/gridnav/gridrouter/pkg/datastructure"
	"github.com/gridnav/gridrouter/pkg/geo"
)

var (
	ErrNotSquare = errors.New("terrain map must be a non-empty square grid")
)

// GridTerrain is a square grid of surface classes. It supplies the grid side
// length, the travel cost between two adjacent cells, and the geometric
// distance used as the heuristic basis for the search engine.
//
// The travel cost of one step is the Euclidean step length (1 for orthogonal,
// sqrt(2) for diagonal) times the mean movement weight of the two endpoint
// cells. A step into or out of an impassable cell costs +Inf, which is how
// obstacles are modelled: an impassable cell has infinite cost on every
// incident edge and can never be settled.
type GridTerrain struct {
	side  int
	cells []pkg.SurfaceClass // row-major

	minWeight float64 // cheapest passable weight present in the map
}

func NewGridTerrain(rows [][]pkg.SurfaceClass) (*GridTerrain, error) {
	side := len(rows)
	if side == 0 {
		return nil, ErrNotSquare
	}

	t := &GridTerrain{
		side:      side,
		cells:     make([]pkg.SurfaceClass, 0, side*side),
		minWeight: pkg.INF_WEIGHT,
	}

	for _, row := range rows {
		if len(row) != side {
			return nil, ErrNotSquare
		}
		for _, sc := range row {
			if sc.Passable() && sc.Weight() < t.minWeight {
				t.minWeight = sc.Weight()
			}
			t.cells = append(t.cells, sc)
		}
	}

	if t.minWeight == pkg.INF_WEIGHT {
		// every cell is impassable, keep the heuristic finite
		t.minWeight = pkg.MIN_SURFACE_WEIGHT
	}

	return t, nil
}

// NewUniformTerrain all-PLAIN square terrain, mostly for tests and tools.
func NewUniformTerrain(side int) *GridTerrain {
	rows := make([][]pkg.SurfaceClass, side)
	for i := range rows {
		rows[i] = make([]pkg.SurfaceClass, side)
		for j := range rows[i] {
			rows[i][j] = pkg.PLAIN
		}
	}
	t, _ := NewGridTerrain(rows)
	return t
}

// ParseGridMap build a terrain from ASCII map lines, one rune per cell.
// See pkg.GetSurfaceClass for the rune set.
func ParseGridMap(lines []string) (*GridTerrain, error) {
	rows := make([][]pkg.SurfaceClass, 0, len(lines))
	for i, line := range lines {
		row := make([]pkg.SurfaceClass, 0, len(line))
		for j, cell := range line {
			sc := pkg.GetSurfaceClass(cell)
			if sc == pkg.UNKNOWN {
				return nil, fmt.Errorf("unknown surface rune %q at row %d col %d", cell, i, j)
			}
			row = append(row, sc)
		}
		rows = append(rows, row)
	}
	return NewGridTerrain(rows)
}

func (t *GridTerrain) GridSide() int {
	return t.side
}

func (t *GridTerrain) SurfaceAt(row, col int) pkg.SurfaceClass {
	return t.cells[row*t.side+col]
}

func (t *GridTerrain) Passable(row, col int) bool {
	return t.SurfaceAt(row, col).Passable()
}

// TravelCost cost of a single step between two adjacent cells.
func (t *GridTerrain) TravelCost(from, to datastructure.Coordinate) float64 {
	fromWeight := t.SurfaceAt(from.GetRow(), from.GetCol()).Weight()
	toWeight := t.SurfaceAt(to.GetRow(), to.GetCol()).Weight()

	stepLength := geo.EuclideanDistance(
		float64(from.GetRow()), float64(from.GetCol()),
		float64(to.GetRow()), float64(to.GetCol()))

	return stepLength * (fromWeight + toWeight) / 2
}

// HeuristicDistance lower bound on the remaining travel cost: Euclidean
// distance scaled by the cheapest movement weight in the map. Never
// overestimates, so the search stays admissible at heuristic weight 1.
func (t *GridTerrain) HeuristicDistance(rowA, colA, rowB, colB float64) float64 {
	return geo.EuclideanDistance(rowA, colA, rowB, colB) * t.minWeight
}
