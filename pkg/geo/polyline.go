package geo

import (
	"github.com/gridnav/gridrouter/pkg/datastructure"
	"github.com/twpayne/go-polyline"
)

// PolylineFromPath encode an ordered cell path as a google polyline string,
// (row, col) pairs in place of (lat, lon). Compact transfer format for the
// visualization front-end.
func PolylineFromPath(path []datastructure.Coordinate) string {
	coords := make([][]float64, 0, len(path))
	for _, c := range path {
		coords = append(coords, []float64{float64(c.GetRow()), float64(c.GetCol())})
	}
	return string(polyline.EncodeCoords(coords))
}
