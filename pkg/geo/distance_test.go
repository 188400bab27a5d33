package geo

import (
	"math"
	"testing"
)

func TestGridDistances(t *testing.T) {
	testCases := []struct {
		name                   string
		rowA, colA, rowB, colB int
		wantEuclid             float64
		wantManhattan          int
		wantChebyshev          int
		wantOctile             float64
	}{
		{
			name: "3-4-5 triangle",
			rowA: 0, colA: 0, rowB: 3, colB: 4,
			wantEuclid:    5,
			wantManhattan: 7,
			wantChebyshev: 4,
			wantOctile:    3*math.Sqrt2 + 1,
		},
		{
			name: "pure diagonal",
			rowA: 1, colA: 1, rowB: 4, colB: 4,
			wantEuclid:    3 * math.Sqrt2,
			wantManhattan: 6,
			wantChebyshev: 3,
			wantOctile:    3 * math.Sqrt2,
		},
		{
			name: "same cell",
			rowA: 2, colA: 2, rowB: 2, colB: 2,
			wantEuclid:    0,
			wantManhattan: 0,
			wantChebyshev: 0,
			wantOctile:    0,
		},
		{
			name: "negative direction",
			rowA: 5, colA: 5, rowB: 5, colB: 1,
			wantEuclid:    4,
			wantManhattan: 4,
			wantChebyshev: 4,
			wantOctile:    4,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			gotEuclid := EuclideanDistance(float64(tt.rowA), float64(tt.colA), float64(tt.rowB), float64(tt.colB))
			if math.Abs(gotEuclid-tt.wantEuclid) > 1e-9 {
				t.Errorf("EuclideanDistance = %v, want %v", gotEuclid, tt.wantEuclid)
			}
			if got := ManhattanDistance(tt.rowA, tt.colA, tt.rowB, tt.colB); got != tt.wantManhattan {
				t.Errorf("ManhattanDistance = %v, want %v", got, tt.wantManhattan)
			}
			if got := ChebyshevDistance(tt.rowA, tt.colA, tt.rowB, tt.colB); got != tt.wantChebyshev {
				t.Errorf("ChebyshevDistance = %v, want %v", got, tt.wantChebyshev)
			}
			if got := OctileDistance(tt.rowA, tt.colA, tt.rowB, tt.colB); math.Abs(got-tt.wantOctile) > 1e-9 {
				t.Errorf("OctileDistance = %v, want %v", got, tt.wantOctile)
			}
		})
	}
}
