package spatialindex

import (
	"math"

	da "github.com/gridnav/gridrouter/pkg/datastructure"
	"github.com/gridnav/gridrouter/pkg/geo"
	"github.com/tidwall/rtree"
	"go.uber.org/zap"
)

// TerrainGrid is the slice of the terrain the index needs: the grid side and
// per-cell passability.
type TerrainGrid interface {
	GridSide() int
	Passable(row, col int) bool
}

// Rtree spatial index over the centers of passable cells. Query coordinates
// that land on impassable terrain are snapped to the nearest passable cell
// before a search runs.
type Rtree struct {
	tr *rtree.RTreeG[da.Coordinate]
}

func NewRtree() *Rtree {
	var tr rtree.RTreeG[da.Coordinate]
	return &Rtree{
		tr: &tr,
	}
}

// Build index every passable cell as a point (col, row).
func (rt *Rtree) Build(terrain TerrainGrid, log *zap.Logger) {
	log.Info("Building R-tree spatial index over passable cells...")

	side := terrain.GridSide()
	inserted := 0
	for row := 0; row < side; row++ {
		for col := 0; col < side; col++ {
			if !terrain.Passable(row, col) {
				continue
			}
			p := [2]float64{float64(col), float64(row)}
			rt.tr.Insert(p, p, da.NewCoordinate(row, col))
			inserted++
		}
	}

	log.Info("R-tree spatial index built.", zap.Int("passableCells", inserted))
}

// SearchWithinRadius all passable cells within radius (in cell units, L-inf
// box) of the query point.
func (rt *Rtree) SearchWithinRadius(row, col, radius float64) []da.Coordinate {
	results := make([]da.Coordinate, 0, 10)
	rt.tr.Search(
		[2]float64{col - radius, row - radius},
		[2]float64{col + radius, row + radius},
		func(min, max [2]float64, data da.Coordinate) bool {
			results = append(results, data)
			return true
		})
	return results
}

// NearestPassable snap a coordinate to the closest passable cell within
// maxRadius, by Euclidean distance. Returns false when nothing passable is
// near enough.
func (rt *Rtree) NearestPassable(c da.Coordinate, maxRadius float64) (da.Coordinate, bool) {
	candidates := rt.SearchWithinRadius(float64(c.GetRow()), float64(c.GetCol()), maxRadius)

	best := da.Coordinate{}
	bestDist := math.Inf(1)
	for _, cand := range candidates {
		d := geo.EuclideanDistance(
			float64(c.GetRow()), float64(c.GetCol()),
			float64(cand.GetRow()), float64(cand.GetCol()))
		if d < bestDist {
			best = cand
			bestDist = d
		}
	}

	if math.IsInf(bestDist, 1) {
		return da.Coordinate{}, false
	}
	return best, true
}
